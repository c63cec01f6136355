package events

import (
	"context"
	"log/slog"
	"time"

	"guarupark-checkout/internal/pkg/errs"
	"guarupark-checkout/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt commands.ReservationEvent) error {
	body, err := encode(evt)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(routingKey(evt)),
		Value: body,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "write kafka message")
	}
	p.logger.DebugContext(ctx, "published reservation event", "driver", DriverKafka, "type", evt.Type)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

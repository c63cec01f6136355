package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"guarupark-checkout/internal/pkg/config"
	"guarupark-checkout/internal/pkg/errs"
	"guarupark-checkout/internal/usecase/commands"
)

const (
	DriverNone  = "none"
	DriverKafka = "kafka"
	DriverAMQP  = "amqp"
)

// Publisher sends reservation events to a broker and releases it on Close.
type Publisher interface {
	commands.EventPublisher
	io.Closer
}

// New picks the publisher for cfg.Driver. Unknown drivers fall back to logging only.
func New(cfg config.EventsConfig, logger *slog.Logger) (Publisher, error) {
	switch cfg.Driver {
	case DriverKafka:
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger), nil
	case DriverAMQP:
		return NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, logger)
	case DriverNone, "":
		return NewLogPublisher(logger), nil
	default:
		logger.Warn("unknown events driver, falling back to log publisher", "driver", cfg.Driver)
		return NewLogPublisher(logger), nil
	}
}

func encode(evt commands.ReservationEvent) ([]byte, error) {
	body, err := json.Marshal(evt)
	if err != nil {
		return nil, errs.Wrap(err, "encode reservation event")
	}
	return body, nil
}

// routingKey keys messages by reservation where known so one reservation stays ordered.
func routingKey(evt commands.ReservationEvent) string {
	if evt.ReservationID != "" {
		return evt.ReservationID
	}
	return evt.TransactionID
}

type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, evt commands.ReservationEvent) error {
	p.logger.DebugContext(ctx, "reservation event", "type", evt.Type, "key", routingKey(evt), "status", evt.Status)
	return nil
}

func (p *LogPublisher) Close() error { return nil }

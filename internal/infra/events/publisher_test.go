//go:build unit

package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"guarupark-checkout/internal/pkg/config"
	"guarupark-checkout/internal/usecase/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "GP00000001", routingKey(commands.ReservationEvent{ReservationID: "GP00000001", TransactionID: "tx_1"}))
	assert.Equal(t, "tx_1", routingKey(commands.ReservationEvent{TransactionID: "tx_1"}))
}

func TestEncode(t *testing.T) {
	evt := commands.ReservationEvent{
		Type:          commands.EventReservationConfirmed,
		ReservationID: "GP00000001",
		TransactionID: "tx_1",
		Status:        commands.StatusConfirmed,
		PaymentMethod: "pix",
		AmountCents:   5700,
		OccurredAt:    time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}

	body, err := encode(evt)
	require.NoError(t, err)

	var got commands.ReservationEvent
	require.NoError(t, json.Unmarshal(body, &got))
	if diff := cmp.Diff(evt, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, string(body), `"reservationId":"GP00000001"`)
}

func TestNew_FallsBackToLogPublisher(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	for _, driver := range []string{"", DriverNone, "carrier-pigeon"} {
		t.Run("driver="+driver, func(t *testing.T) {
			pub, err := New(config.EventsConfig{Driver: driver}, logger)
			require.NoError(t, err)
			assert.IsType(t, &LogPublisher{}, pub)
			assert.NoError(t, pub.Publish(context.Background(), commands.ReservationEvent{Type: commands.EventReservationConfirmed}))
			assert.NoError(t, pub.Close())
		})
	}
}

func TestNew_Kafka(t *testing.T) {
	// the kafka writer dials lazily, so construction needs no broker
	pub, err := New(config.EventsConfig{Driver: DriverKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "t"}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.IsType(t, &KafkaPublisher{}, pub)
	assert.NoError(t, pub.Close())
}

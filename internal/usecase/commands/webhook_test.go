//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"guarupark-checkout/internal/pkg/clock"
	"guarupark-checkout/internal/usecase/commands"
	commandsmock "guarupark-checkout/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type webhookMocks struct {
	store  *commandsmock.MockReservationStore
	dedup  *commandsmock.MockDeliveryDeduper
	events *commandsmock.MockEventPublisher
}

func newWebhookCommands(t *testing.T) (commands.WebhookCommands, webhookMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := webhookMocks{
		store:  commandsmock.NewMockReservationStore(ctrl),
		dedup:  commandsmock.NewMockDeliveryDeduper(ctrl),
		events: commandsmock.NewMockEventPublisher(ctrl),
	}
	uc := commands.NewWebhookCommands(m.store, m.dedup, m.events, clock.NewMockClock(fixedNow), slog.New(slog.DiscardHandler))
	return uc, m
}

func TestHandlePaymentStatus(t *testing.T) {
	ctx := context.Background()
	evt := commands.WebhookEvent{TransactionID: " tx_1 ", Status: "PAID", PaymentMethod: "pix"}

	t.Run("first delivery updates and publishes", func(t *testing.T) {
		uc, m := newWebhookCommands(t)

		m.dedup.EXPECT().FirstDelivery(gomock.Any(), "webhook:tx_1:paid").Return(true, nil).Times(1)
		m.store.EXPECT().UpdateStatusByTransactionID(gomock.Any(), "tx_1", "paid", fixedNow).Return(int64(1), nil).Times(1)
		m.events.EXPECT().Publish(gomock.Any(), commands.ReservationEvent{
			Type:          commands.EventReservationStatusChanged,
			TransactionID: "tx_1",
			Status:        "paid",
			PaymentMethod: "pix",
			OccurredAt:    fixedNow,
		}).Return(nil).Times(1)

		res, err := uc.HandlePaymentStatus(ctx, evt)
		require.NoError(t, err)
		assert.False(t, res.Duplicate)
		assert.Equal(t, int64(1), res.Updated)
	})

	t.Run("redelivery is acknowledged without effect", func(t *testing.T) {
		uc, m := newWebhookCommands(t)

		m.dedup.EXPECT().FirstDelivery(gomock.Any(), gomock.Any()).Return(false, nil).Times(1)

		res, err := uc.HandlePaymentStatus(ctx, evt)
		require.NoError(t, err)
		assert.True(t, res.Duplicate)
	})

	t.Run("dedup outage fails open", func(t *testing.T) {
		uc, m := newWebhookCommands(t)

		m.dedup.EXPECT().FirstDelivery(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down")).Times(1)
		m.store.EXPECT().UpdateStatusByTransactionID(gomock.Any(), "tx_1", "paid", gomock.Any()).Return(int64(1), nil).Times(1)
		m.events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		res, err := uc.HandlePaymentStatus(ctx, evt)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Updated)
	})

	t.Run("unknown transaction publishes nothing", func(t *testing.T) {
		uc, m := newWebhookCommands(t)

		m.dedup.EXPECT().FirstDelivery(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
		m.store.EXPECT().UpdateStatusByTransactionID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(1)
		m.dedup.EXPECT().Forget(gomock.Any(), "webhook:tx_1:paid").Return(nil).Times(1)

		res, err := uc.HandlePaymentStatus(ctx, evt)
		require.NoError(t, err)
		assert.Zero(t, res.Updated)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		uc, m := newWebhookCommands(t)

		m.dedup.EXPECT().FirstDelivery(gomock.Any(), gomock.Any()).Return(true, nil).Times(1)
		m.store.EXPECT().UpdateStatusByTransactionID(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("db down")).Times(1)
		m.dedup.EXPECT().Forget(gomock.Any(), "webhook:tx_1:paid").Return(nil).Times(1)

		_, err := uc.HandlePaymentStatus(ctx, evt)
		assert.Error(t, err)
	})

	t.Run("blank transaction id", func(t *testing.T) {
		uc, _ := newWebhookCommands(t)

		_, err := uc.HandlePaymentStatus(ctx, commands.WebhookEvent{TransactionID: "  ", Status: "paid"})
		assert.ErrorIs(t, err, commands.ErrMissingTransactionID)
	})
}

// memoryDeduper is a map-backed DeliveryDeduper.
type memoryDeduper struct{ seen map[string]bool }

func (d *memoryDeduper) FirstDelivery(_ context.Context, key string) (bool, error) {
	if d.seen[key] {
		return false, nil
	}
	d.seen[key] = true
	return true, nil
}

func (d *memoryDeduper) Forget(_ context.Context, key string) error {
	delete(d.seen, key)
	return nil
}

func TestHandlePaymentStatus_RedeliveryAfterFailure(t *testing.T) {
	ctx := context.Background()
	evt := commands.WebhookEvent{TransactionID: "tx-1", Status: "paid"}

	t.Run("store failure then redelivery applies the status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockReservationStore(ctrl)
		events := commandsmock.NewMockEventPublisher(ctrl)
		uc := commands.NewWebhookCommands(store, &memoryDeduper{seen: map[string]bool{}}, events, clock.NewMockClock(fixedNow), slog.New(slog.DiscardHandler))

		gomock.InOrder(
			store.EXPECT().UpdateStatusByTransactionID(gomock.Any(), "tx-1", "paid", fixedNow).Return(int64(0), errors.New("db down")),
			store.EXPECT().UpdateStatusByTransactionID(gomock.Any(), "tx-1", "paid", fixedNow).Return(int64(1), nil),
		)
		events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := uc.HandlePaymentStatus(ctx, evt)
		require.Error(t, err)

		res, err := uc.HandlePaymentStatus(ctx, evt)
		require.NoError(t, err)
		assert.False(t, res.Duplicate)
		assert.Equal(t, int64(1), res.Updated)
	})

	t.Run("unknown transaction then redelivery applies the status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockReservationStore(ctrl)
		events := commandsmock.NewMockEventPublisher(ctrl)
		uc := commands.NewWebhookCommands(store, &memoryDeduper{seen: map[string]bool{}}, events, clock.NewMockClock(fixedNow), slog.New(slog.DiscardHandler))

		gomock.InOrder(
			store.EXPECT().UpdateStatusByTransactionID(gomock.Any(), "tx-1", "paid", fixedNow).Return(int64(0), nil),
			store.EXPECT().UpdateStatusByTransactionID(gomock.Any(), "tx-1", "paid", fixedNow).Return(int64(1), nil),
		)
		events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		res, err := uc.HandlePaymentStatus(ctx, evt)
		require.NoError(t, err)
		assert.Zero(t, res.Updated)

		res, err = uc.HandlePaymentStatus(ctx, evt)
		require.NoError(t, err)
		assert.False(t, res.Duplicate)
		assert.Equal(t, int64(1), res.Updated)
	})

	t.Run("applied status is not applied twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := commandsmock.NewMockReservationStore(ctrl)
		events := commandsmock.NewMockEventPublisher(ctrl)
		uc := commands.NewWebhookCommands(store, &memoryDeduper{seen: map[string]bool{}}, events, clock.NewMockClock(fixedNow), slog.New(slog.DiscardHandler))

		store.EXPECT().UpdateStatusByTransactionID(gomock.Any(), "tx-1", "paid", fixedNow).Return(int64(1), nil).Times(1)
		events.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := uc.HandlePaymentStatus(ctx, evt)
		require.NoError(t, err)

		res, err := uc.HandlePaymentStatus(ctx, evt)
		require.NoError(t, err)
		assert.True(t, res.Duplicate)
	})
}

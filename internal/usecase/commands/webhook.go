package commands

import (
	"context"
	"log/slog"
	"strings"

	"guarupark-checkout/internal/pkg/clock"
	"guarupark-checkout/internal/pkg/errs"
)

var ErrMissingTransactionID = errs.New("transaction id is required")

type WebhookEvent struct {
	TransactionID string
	Status        string
	PaymentMethod string
}

type WebhookResult struct {
	Duplicate bool
	Updated   int64
}

type WebhookCommands interface {
	HandlePaymentStatus(ctx context.Context, evt WebhookEvent) (*WebhookResult, error)
}

type webhookCommandsImpl struct {
	store  ReservationStore
	dedup  DeliveryDeduper
	events EventPublisher
	clock  clock.Clock
	logger *slog.Logger
}

func NewWebhookCommands(store ReservationStore, dedup DeliveryDeduper, events EventPublisher, clk clock.Clock, logger *slog.Logger) WebhookCommands {
	return &webhookCommandsImpl{store: store, dedup: dedup, events: events, clock: clk, logger: logger}
}

// HandlePaymentStatus applies a gateway status notification once per
// transaction and status pair. Redeliveries are acknowledged without effect.
func (uc *webhookCommandsImpl) HandlePaymentStatus(ctx context.Context, evt WebhookEvent) (*WebhookResult, error) {
	txID := strings.TrimSpace(evt.TransactionID)
	if txID == "" {
		return nil, ErrMissingTransactionID
	}
	status := strings.ToLower(strings.TrimSpace(evt.Status))

	key := "webhook:" + txID + ":" + status
	first, err := uc.dedup.FirstDelivery(ctx, key)
	if err != nil {
		// fail open: the status update itself is idempotent
		uc.logger.WarnContext(ctx, "webhook dedup unavailable", "transaction_id", txID, "error", err)
		first = true
	}
	if !first {
		return &WebhookResult{Duplicate: true}, nil
	}

	now := uc.clock.Now()
	n, err := uc.store.UpdateStatusByTransactionID(ctx, txID, status, now)
	if err != nil {
		uc.forget(ctx, key)
		return nil, errs.Wrap(err, "update reservation status")
	}
	if n == 0 {
		// the row may not be stored yet; a redelivery must get another try
		uc.forget(ctx, key)
		uc.logger.WarnContext(ctx, "webhook for unknown transaction", "transaction_id", txID, "status", status)
		return &WebhookResult{}, nil
	}

	pub := ReservationEvent{
		Type:          EventReservationStatusChanged,
		TransactionID: txID,
		Status:        status,
		PaymentMethod: evt.PaymentMethod,
		OccurredAt:    now,
	}
	if err := uc.events.Publish(ctx, pub); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish reservation event", "type", pub.Type, "error", err)
	}
	return &WebhookResult{Updated: n}, nil
}

func (uc *webhookCommandsImpl) forget(ctx context.Context, key string) {
	if err := uc.dedup.Forget(ctx, key); err != nil {
		uc.logger.WarnContext(ctx, "failed to release webhook dedup key", "key", key, "error", err)
	}
}

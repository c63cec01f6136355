package commands

import (
	"context"
	"time"

	"guarupark-checkout/internal/domain/checkout"

	"github.com/google/uuid"
)

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
)

// ReservationRecord is the write-side snapshot of a paid reservation.
type ReservationRecord struct {
	Code          string
	TransactionID string
	Status        string
	PaymentMethod checkout.PaymentMethod
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Document      string
	VehiclePlate  string
	VehicleType   string
	EntryDate     string
	EntryTime     string
	ExitDate      string
	ExitTime      string
	ParkingType   checkout.ParkingType
	Insurance     bool
	AmountCents   int64
	Installments  int
	CreatedAt     time.Time
}

type PaymentGateway interface {
	CreateTransaction(ctx context.Context, req checkout.PaymentRequest) (checkout.GatewayResponse, error)
}

type ReservationStore interface {
	Create(ctx context.Context, rec ReservationRecord) (uuid.UUID, error)
	UpdateStatusByTransactionID(ctx context.Context, transactionID, status string, at time.Time) (int64, error)
}

// DeliveryDeduper reports whether a key is seen for the first time.
// Forget releases a key so the next delivery is treated as new again.
type DeliveryDeduper interface {
	FirstDelivery(ctx context.Context, key string) (bool, error)
	Forget(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, evt ReservationEvent) error
}

const (
	EventReservationConfirmed     = "reservation.confirmed"
	EventReservationPending       = "reservation.pending"
	EventReservationStatusChanged = "reservation.status_changed"
)

// createdEventType names the event for a freshly stored reservation.
func createdEventType(status string) string {
	if status == StatusPending {
		return EventReservationPending
	}
	return EventReservationConfirmed
}

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservationId"`
	TransactionID string    `json:"transactionId"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	AmountCents   int64     `json:"amountCents,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView is the read-side shape of a stored reservation.
type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	TransactionID *string   `json:"transaction_id,omitempty"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CustomerPhone string    `json:"customer_phone"`
	VehiclePlate  string    `json:"vehicle_plate"`
	VehicleType   string    `json:"vehicle_type"`
	EntryDate     string    `json:"entry_date"`
	EntryTime     string    `json:"entry_time"`
	ExitDate      string    `json:"exit_date"`
	ExitTime      string    `json:"exit_time"`
	ParkingType   string    `json:"parking_type"`
	Insurance     bool      `json:"insurance"`
	AmountCents   int64     `json:"amount_cents"`
	Installments  int32     `json:"installments"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	CustomerName  string    `json:"customer_name"`
	VehiclePlate  string    `json:"vehicle_plate"`
	EntryDate     string    `json:"entry_date"`
	AmountCents   int64     `json:"amount_cents"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
}

package checkout

import (
	"strconv"
	"strings"
	"time"
)

const (
	Currency          = "BRL"
	descriptionPrefix = "Reserva de Estacionamento - "
)

// PaymentRequest is the transaction body sent to the gateway.
type PaymentRequest struct {
	Amount        int64           `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Customer      Customer        `json:"customer"`
	Metadata      PaymentMetadata `json:"metadata"`
	PixKey        string          `json:"pixKey,omitempty"`
	Card          *Card           `json:"card,omitempty"`
	Installments  int             `json:"installments,omitempty"`
	DueDate       string          `json:"dueDate,omitempty"`
}

type Customer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Document string `json:"document"`
}

type PaymentMetadata struct {
	ReservationID string `json:"reservationId"`
	VehiclePlate  string `json:"vehiclePlate"`
	VehicleType   string `json:"vehicleType"`
	EntryDate     string `json:"entryDate"`
	ExitDate      string `json:"exitDate"`
	ParkingType   string `json:"parkingType"`
	Insurance     bool   `json:"insurance"`
}

type Card struct {
	Number      string `json:"number"`
	HolderName  string `json:"holderName"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`
}

// Method maps the wire name back to the checkout method.
func (r PaymentRequest) Method() PaymentMethod {
	if r.PaymentMethod == "credit_card" {
		return MethodCredit
	}
	return PaymentMethod(r.PaymentMethod)
}

type IDGenerator interface {
	Next(now time.Time) string
}

type PayloadBuilder struct {
	PixKey        string
	BoletoDueDays int
	IDs           IDGenerator
}

func NewPayloadBuilder(pixKey string, boletoDueDays int, ids IDGenerator) *PayloadBuilder {
	if boletoDueDays <= 0 {
		boletoDueDays = 3
	}
	return &PayloadBuilder{PixKey: pixKey, BoletoDueDays: boletoDueDays, IDs: ids}
}

// Build assembles the request for an already validated form.
func (b *PayloadBuilder) Build(method PaymentMethod, form CustomerForm, res ReservationData, total Money, now time.Time) (PaymentRequest, error) {
	if !method.IsValid() {
		return PaymentRequest{}, ErrUnknownMethod
	}
	plate := form.Value(FieldPlate)
	req := PaymentRequest{
		Amount:        total.Cents(),
		Currency:      Currency,
		Description:   descriptionPrefix + plate,
		PaymentMethod: method.GatewayName(),
		Customer: Customer{
			Name:     form.Value(FieldFullName),
			Email:    form.Value(FieldEmail),
			Phone:    form.Value(FieldPhone),
			Document: form.Value(FieldCPF),
		},
		Metadata: PaymentMetadata{
			ReservationID: b.IDs.Next(now),
			VehiclePlate:  plate,
			VehicleType:   form.Value(FieldVehicleType),
			EntryDate:     stayDate(res.Entry(), res.EntryDate()),
			ExitDate:      stayDate(res.Exit(), res.ExitDate()),
			ParkingType:   string(res.ParkingType()),
			Insurance:     res.Insurance(),
		},
	}

	switch method {
	case MethodPix:
		req.PixKey = b.PixKey
	case MethodCredit:
		month, year := splitExpiry(form.Value(FieldCardExpiry))
		req.Card = &Card{
			Number:      Digits(form.Value(FieldCardNumber)),
			HolderName:  form.Value(FieldCardHolder),
			ExpiryMonth: month,
			ExpiryYear:  year,
			CVV:         form.Value(FieldCardCVV),
		}
		req.Installments = parseInstallments(form.Value(FieldInstallments))
	case MethodBoleto:
		req.DueDate = ISODate(now.AddDate(0, 0, b.BoletoDueDays))
	}
	return req, nil
}

func stayDate(t time.Time, raw string) string {
	if t.IsZero() {
		return raw
	}
	return ISODate(t)
}

// splitExpiry turns "MM/YY" into ("MM", "20YY").
func splitExpiry(expiry string) (string, string) {
	month, year, ok := strings.Cut(expiry, "/")
	if !ok {
		return expiry, ""
	}
	return month, "20" + year
}

func parseInstallments(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

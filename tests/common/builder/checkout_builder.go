//go:build unit || e2e

package builder

import (
	"strconv"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	reqdto "guarupark-checkout/internal/handler/dto/request"
)

var SaoPaulo = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

type CheckoutBuilder struct {
	EntryDate   string
	EntryTime   string
	ExitDate    string
	ExitTime    string
	ParkingType string
	Insurance   string
	TotalDays   string
	TotalPrice  string

	Method checkout.PaymentMethod
	Fields map[checkout.FieldID]string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		EntryDate:   "2026-01-15",
		EntryTime:   "14:00",
		ExitDate:    "2026-01-18",
		ExitTime:    "14:00",
		ParkingType: "covered",
		Insurance:   "false",
		TotalDays:   "3",
		TotalPrice:  "57.00",
		Method:      checkout.MethodPix,
		Fields: map[checkout.FieldID]string{
			checkout.FieldFullName:     "João Silva",
			checkout.FieldCPF:          "123.456.789-09",
			checkout.FieldPhone:        "(13) 99876-5432",
			checkout.FieldEmail:        "joao@example.com",
			checkout.FieldPlate:        "ABC1D23",
			checkout.FieldVehicleType:  "sedan",
			checkout.FieldInstallments: "1",
		},
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) WithMethod(m checkout.PaymentMethod) *CheckoutBuilder {
	b.Method = m
	return b
}

func (b *CheckoutBuilder) WithField(id checkout.FieldID, raw string) *CheckoutBuilder {
	b.Fields[id] = raw
	return b
}

func (b *CheckoutBuilder) WithStay(entryDate, entryTime, exitDate, exitTime string) *CheckoutBuilder {
	b.EntryDate, b.EntryTime = entryDate, entryTime
	b.ExitDate, b.ExitTime = exitDate, exitTime
	return b
}

func (b *CheckoutBuilder) WithParkingType(t string) *CheckoutBuilder {
	b.ParkingType = t
	return b
}

func (b *CheckoutBuilder) WithInsurance(included bool) *CheckoutBuilder {
	b.Insurance = "false"
	if included {
		b.Insurance = "true"
	}
	return b
}

func (b *CheckoutBuilder) AsCredit() *CheckoutBuilder {
	b.Method = checkout.MethodCredit
	b.Fields[checkout.FieldCardNumber] = "4111 1111 1111 1111"
	b.Fields[checkout.FieldCardHolder] = "JOAO SILVA"
	b.Fields[checkout.FieldCardExpiry] = "12/29"
	b.Fields[checkout.FieldCardCVV] = "123"
	return b
}

func (b *CheckoutBuilder) BuildParams() checkout.ReservationParams {
	return checkout.ReservationParams{
		EntryDate:   b.EntryDate,
		EntryTime:   b.EntryTime,
		ExitDate:    b.ExitDate,
		ExitTime:    b.ExitTime,
		ParkingType: b.ParkingType,
		Insurance:   b.Insurance,
		TotalDays:   b.TotalDays,
		TotalPrice:  b.TotalPrice,
	}
}

func (b *CheckoutBuilder) BuildReservation() checkout.ReservationData {
	return checkout.NewReservationData(b.BuildParams(), SaoPaulo)
}

func (b *CheckoutBuilder) BuildForm() checkout.CustomerForm {
	form := checkout.NewCustomerForm()
	for _, id := range checkout.AllFields() {
		if raw, ok := b.Fields[id]; ok {
			form, _ = form.Set(id, raw)
		}
	}
	return form
}

// BuildSession returns a collecting session with the builder's form and method.
func (b *CheckoutBuilder) BuildSession(o *checkout.Orchestrator, now time.Time) checkout.Session {
	s := o.Start(b.BuildReservation(), now).Session
	s.Form = b.BuildForm()
	return o.SelectMethod(s, b.Method).Session
}

// BuildPaymentRequestDTO flattens the builder into the one-shot payment body.
func (b *CheckoutBuilder) BuildPaymentRequestDTO() reqdto.PaymentRequest {
	total, _ := strconv.ParseFloat(b.TotalPrice, 64)
	return reqdto.PaymentRequest{
		FirstName:    b.Fields[checkout.FieldFullName],
		Email:        b.Fields[checkout.FieldEmail],
		Phone:        b.Fields[checkout.FieldPhone],
		CPF:          b.Fields[checkout.FieldCPF],
		VehiclePlate: b.Fields[checkout.FieldPlate],
		VehicleType:  b.Fields[checkout.FieldVehicleType],
		EntryDate:    b.EntryDate,
		EntryTime:    b.EntryTime,
		ExitDate:     b.ExitDate,
		ExitTime:     b.ExitTime,
		ParkingType:  b.ParkingType,
		Insurance:    reqdto.FlexString(b.Insurance),
		CardNumber:   b.Fields[checkout.FieldCardNumber],
		CardName:     b.Fields[checkout.FieldCardHolder],
		CardExpiry:   b.Fields[checkout.FieldCardExpiry],
		CardCVV:      b.Fields[checkout.FieldCardCVV],
		Installments: reqdto.FlexString(b.Fields[checkout.FieldInstallments]),
		TotalAmount:  total,
	}
}

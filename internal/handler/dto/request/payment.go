package request

import (
	"strconv"
	"time"

	"guarupark-checkout/internal/domain/checkout"
)

// PaymentRequest is the flattened checkout form plus the stay it pays for.
type PaymentRequest struct {
	FirstName    string     `json:"firstName"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	CPF          string     `json:"cpf"`
	VehiclePlate string     `json:"vehiclePlate"`
	VehicleType  string     `json:"vehicleType"`
	EntryDate    string     `json:"entryDate"`
	EntryTime    string     `json:"entryTime"`
	ExitDate     string     `json:"exitDate"`
	ExitTime     string     `json:"exitTime"`
	ParkingType  string     `json:"parkingType"`
	Insurance    FlexString `json:"insurance"`
	CardNumber   string     `json:"cardNumber"`
	CardName     string     `json:"cardName"`
	CardExpiry   string     `json:"cardExpiry"`
	CardCVV      string     `json:"cardCvv"`
	Installments FlexString `json:"installments"`
	TotalAmount  float64    `json:"totalAmount"`
}

func (r PaymentRequest) HasRequiredFields() bool {
	return r.Email != "" && r.FirstName != "" && r.CPF != ""
}

func (r PaymentRequest) ToForm() checkout.CustomerForm {
	return FormFromMap(map[checkout.FieldID]string{
		checkout.FieldFullName:     r.FirstName,
		checkout.FieldEmail:        r.Email,
		checkout.FieldPhone:        r.Phone,
		checkout.FieldCPF:          r.CPF,
		checkout.FieldPlate:        r.VehiclePlate,
		checkout.FieldVehicleType:  r.VehicleType,
		checkout.FieldCardNumber:   r.CardNumber,
		checkout.FieldCardHolder:   r.CardName,
		checkout.FieldCardExpiry:   r.CardExpiry,
		checkout.FieldCardCVV:      r.CardCVV,
		checkout.FieldInstallments: r.Installments.String(),
	})
}

func (r PaymentRequest) ToReservation(loc *time.Location) checkout.ReservationData {
	return checkout.NewReservationData(checkout.ReservationParams{
		EntryDate:   r.EntryDate,
		EntryTime:   r.EntryTime,
		ExitDate:    r.ExitDate,
		ExitTime:    r.ExitTime,
		ParkingType: r.ParkingType,
		Insurance:   r.Insurance.String(),
		TotalPrice:  strconv.FormatFloat(r.TotalAmount, 'f', 2, 64),
	}, loc)
}

// FormFromMap fills a fresh form; empty values keep the field defaults.
func FormFromMap(values map[checkout.FieldID]string) checkout.CustomerForm {
	form := checkout.NewCustomerForm()
	for _, id := range checkout.AllFields() {
		v, ok := values[id]
		if !ok || v == "" {
			continue
		}
		form, _ = form.Set(id, v)
	}
	return form
}

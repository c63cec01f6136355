package request

import (
	"time"

	"guarupark-checkout/internal/domain/checkout"
)

// StartCheckoutRequest binds the booking step's query string or JSON body.
type StartCheckoutRequest struct {
	EntryDate   string     `json:"entryDate" form:"entryDate"`
	EntryTime   string     `json:"entryTime" form:"entryTime"`
	ExitDate    string     `json:"exitDate" form:"exitDate"`
	ExitTime    string     `json:"exitTime" form:"exitTime"`
	ParkingType string     `json:"parkingType" form:"parkingType"`
	Insurance   FlexString `json:"insurance" form:"insurance"`
	TotalDays   FlexString `json:"totalDays" form:"totalDays"`
	TotalPrice  FlexString `json:"totalPrice" form:"totalPrice"`
}

func (r StartCheckoutRequest) ToReservation(loc *time.Location) checkout.ReservationData {
	return checkout.NewReservationData(checkout.ReservationParams{
		EntryDate:   r.EntryDate,
		EntryTime:   r.EntryTime,
		ExitDate:    r.ExitDate,
		ExitTime:    r.ExitTime,
		ParkingType: r.ParkingType,
		Insurance:   r.Insurance.String(),
		TotalDays:   r.TotalDays.String(),
		TotalPrice:  r.TotalPrice.String(),
	}, loc)
}

type UpdateFieldsRequest struct {
	Fields map[string]string `json:"fields" binding:"required"`
}

// FieldIDs rejects the whole update when any key is unknown.
func (r UpdateFieldsRequest) FieldIDs() (map[checkout.FieldID]string, error) {
	out := make(map[checkout.FieldID]string, len(r.Fields))
	for k, v := range r.Fields {
		id, err := checkout.ParseFieldID(k)
		if err != nil {
			return nil, err
		}
		out[id] = v
	}
	return out, nil
}

type SelectMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

type WebhookRequest struct {
	TransactionID string `json:"transactionId" binding:"required"`
	Status        string `json:"status" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

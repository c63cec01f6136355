package response

import (
	"time"

	"guarupark-checkout/internal/domain/checkout"
	"guarupark-checkout/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	TransactionID  *string   `json:"transactionId,omitempty"`
	Status         string    `json:"status"`
	PaymentMethod  string    `json:"paymentMethod"`
	CustomerName   string    `json:"customerName"`
	CustomerEmail  string    `json:"customerEmail"`
	CustomerPhone  string    `json:"customerPhone"`
	VehiclePlate   string    `json:"vehiclePlate"`
	VehicleType    string    `json:"vehicleType"`
	EntryDate      string    `json:"entryDate"`
	EntryTime      string    `json:"entryTime"`
	ExitDate       string    `json:"exitDate"`
	ExitTime       string    `json:"exitTime"`
	ParkingType    string    `json:"parkingType"`
	ParkingLabel   string    `json:"parkingLabel"`
	Insurance      bool      `json:"insurance"`
	InsuranceLabel string    `json:"insuranceLabel"`
	AmountCents    int64     `json:"amountCents"`
	Amount         string    `json:"amount"`
	Installments   int32     `json:"installments"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ReservationListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	CustomerName  string    `json:"customerName"`
	VehiclePlate  string    `json:"vehiclePlate"`
	EntryDate     string    `json:"entryDate"`
	AmountCents   int64     `json:"amountCents"`
	Amount        string    `json:"amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ReservationListResponse struct {
	Items      []*ReservationListItemResponse `json:"items"`
	NextCursor string                         `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var out ReservationResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	out.Amount = checkout.NewMoney(v.AmountCents).BRL()
	out.ParkingLabel = checkout.ParkingType(v.ParkingType).Label()
	out.InsuranceLabel = checkout.InsuranceLabel(v.Insurance)
	return &out, nil
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) (*ReservationListResponse, error) {
	out := &ReservationListResponse{Items: make([]*ReservationListItemResponse, 0, len(items))}
	for _, it := range items {
		var dst ReservationListItemResponse
		if err := copier.Copy(&dst, it); err != nil {
			return nil, err
		}
		dst.Amount = checkout.NewMoney(it.AmountCents).BRL()
		out.Items = append(out.Items, &dst)
	}
	if next != nil {
		out.NextCursor = next.After
	}
	return out, nil
}

package response

import (
	"strconv"
	"time"

	"guarupark-checkout/internal/domain/checkout"
)

type CheckoutSessionResponse struct {
	ID            string                  `json:"id"`
	Phase         string                  `json:"phase"`
	Method        string                  `json:"method"`
	Summary       StaySummary             `json:"summary"`
	Quote         *QuoteResponse          `json:"quote,omitempty"`
	QuoteError    string                  `json:"quoteError,omitempty"`
	Fields        map[string]FieldValue   `json:"fields"`
	Errors        map[string]string       `json:"errors,omitempty"`
	LastFailure   string                  `json:"lastFailure,omitempty"`
	ReservationID string                  `json:"reservationId,omitempty"`
	TransactionID string                  `json:"transactionId,omitempty"`
	Pix           *PixInstructionResponse `json:"pix,omitempty"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

type StaySummary struct {
	EntryDate string `json:"entryDate"`
	EntryTime string `json:"entryTime"`
	ExitDate  string `json:"exitDate"`
	ExitTime  string `json:"exitTime"`
	Parking   string `json:"parking"`
	Insurance string `json:"insurance"`
	Days      int    `json:"days"`
}

type QuoteResponse struct {
	Days         int                   `json:"days"`
	BaseCents    int64                 `json:"baseCents"`
	FeeCents     int64                 `json:"feeCents"`
	TotalCents   int64                 `json:"totalCents"`
	Total        string                `json:"total"`
	Installments []InstallmentResponse `json:"installments,omitempty"`
}

type InstallmentResponse struct {
	Count         int    `json:"count"`
	PerMonthCents int64  `json:"perMonthCents"`
	Label         string `json:"label"`
	TotalCents    int64  `json:"totalCents"`
}

type FieldValue struct {
	Value   string `json:"value"`
	Display string `json:"display"`
}

type PixInstructionResponse struct {
	Code             string `json:"code"`
	QRCodeURL        string `json:"qrCodeUrl,omitempty"`
	RemainingSeconds int    `json:"remainingSeconds"`
	Remaining        string `json:"remaining"`
	Expired          bool   `json:"expired"`
}

func FromSession(s checkout.Session, fieldErrs checkout.ValidationResult) *CheckoutSessionResponse {
	res := s.Reservation
	out := &CheckoutSessionResponse{
		ID:     s.ID,
		Phase:  string(s.Phase),
		Method: string(s.Method),
		Summary: StaySummary{
			EntryDate: checkout.FormatISODate(res.EntryDate()),
			EntryTime: res.EntryTime(),
			ExitDate:  checkout.FormatISODate(res.ExitDate()),
			ExitTime:  res.ExitTime(),
			Parking:   res.ParkingType().Label(),
			Insurance: checkout.InsuranceLabel(res.Insurance()),
			Days:      s.Quote.Days,
		},
		Fields:        make(map[string]FieldValue, len(checkout.AllFields())),
		LastFailure:   s.LastFailure,
		ReservationID: s.ReservationID,
		TransactionID: s.TransactionID(),
		UpdatedAt:     s.UpdatedAt,
	}
	if s.QuoteErr != nil {
		out.QuoteError = s.QuoteErr.Error()
	} else {
		out.Quote = fromQuote(s.Quote, s.Method)
	}
	for _, id := range checkout.AllFields() {
		out.Fields[string(id)] = FieldValue{Value: s.Form.Value(id), Display: s.Form.Display(id)}
	}
	if len(fieldErrs) > 0 {
		out.Errors = make(map[string]string, len(fieldErrs))
		for k, v := range fieldErrs {
			out.Errors[string(k)] = v
		}
	}
	if code := s.PixCode(); code != "" && (s.Phase == checkout.PhasePixPending || s.Phase == checkout.PhaseExpired) {
		out.Pix = &PixInstructionResponse{
			Code:             code,
			QRCodeURL:        s.Outcome.Response.PixQRCodeURL,
			RemainingSeconds: s.PixRemaining,
			Remaining:        checkout.FormatCountdown(s.PixRemaining),
			Expired:          s.Phase == checkout.PhaseExpired,
		}
	}
	return out
}

func fromQuote(q checkout.Quote, method checkout.PaymentMethod) *QuoteResponse {
	total := q.TotalFor(method)
	out := &QuoteResponse{
		Days:       q.Days,
		BaseCents:  q.Base.Cents(),
		TotalCents: total.Cents(),
		Total:      total.BRL(),
	}
	if method.IsCard() {
		out.FeeCents = q.Fee.Cents()
	}
	for _, in := range q.Schedule {
		out.Installments = append(out.Installments, InstallmentResponse{
			Count:         in.Count,
			PerMonthCents: in.PerMonth.Cents(),
			Label:         installmentLabel(in),
			TotalCents:    in.Financed.Cents(),
		})
	}
	return out
}

func installmentLabel(in checkout.Installment) string {
	label := strconv.Itoa(in.Count) + "x de " + in.PerMonth.BRL()
	if in.Multiplier == 10000 {
		return label + " sem juros"
	}
	return label
}

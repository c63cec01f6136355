package checkout

import "time"

type Phase string

const (
	PhaseCollecting      Phase = "collecting"
	PhaseSubmitting      Phase = "submitting"
	PhaseAwaitingGateway Phase = "awaiting_gateway"
	PhasePixPending      Phase = "pix_pending"
	PhaseConfirmed       Phase = "confirmed"
	PhaseExpired         Phase = "expired"
)

// IsTerminal reports whether no further payment can happen in this phase.
func (p Phase) IsTerminal() bool {
	return p == PhaseConfirmed
}

// Session is the whole state of one checkout. Transitions take and return it by value.
type Session struct {
	ID            string
	Phase         Phase
	Reservation   ReservationData
	Form          CustomerForm
	Method        PaymentMethod
	Quote         Quote
	QuoteErr      error
	ReservationID string
	Request       *PaymentRequest
	Outcome       *PaymentOutcome
	LastFailure   string
	PixRemaining  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (s Session) PixCode() string {
	if s.Outcome == nil || s.Outcome.Response == nil {
		return ""
	}
	return s.Outcome.Response.PixCode
}

func (s Session) TransactionID() string {
	if s.Outcome == nil || s.Outcome.Response == nil {
		return ""
	}
	return s.Outcome.Response.TransactionID
}

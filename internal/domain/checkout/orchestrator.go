package checkout

import (
	"time"
)

const DefaultPixExpirySeconds = 3600

type OrchestratorConfig struct {
	Pricer           *Pricer
	Validator        FormValidator
	Payloads         *PayloadBuilder
	PixExpirySeconds int
	NewSessionID     func() string
}

// Orchestrator holds the checkout state machine. It keeps no per-session state:
// every transition maps a Session value to a Transition.
type Orchestrator struct {
	pricer     *Pricer
	validator  FormValidator
	payloads   *PayloadBuilder
	pixExpiry  int
	newSession func() string
}

func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	if cfg.PixExpirySeconds <= 0 {
		cfg.PixExpirySeconds = DefaultPixExpirySeconds
	}
	if cfg.NewSessionID == nil {
		cfg.NewSessionID = func() string { return "" }
	}
	return &Orchestrator{
		pricer:     cfg.Pricer,
		validator:  cfg.Validator,
		payloads:   cfg.Payloads,
		pixExpiry:  cfg.PixExpirySeconds,
		newSession: cfg.NewSessionID,
	}
}

func (o *Orchestrator) Start(res ReservationData, now time.Time) Transition {
	s := Session{
		ID:          o.newSession(),
		Phase:       PhaseCollecting,
		Reservation: res,
		Form:        NewCustomerForm(),
		Method:      MethodPix,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.Quote, s.QuoteErr = o.pricer.Quote(res, s.Method)
	return Transition{Session: s}
}

func (o *Orchestrator) FieldChanged(s Session, field FieldID, raw string) Transition {
	if s.Phase != PhaseCollecting {
		return Transition{Session: s, Err: ErrFormLocked}
	}
	form, err := s.Form.Set(field, raw)
	if err != nil {
		return Transition{Session: s, Err: err}
	}
	s.Form = form
	t := Transition{Session: s}
	if msg := o.validator.ValidateField(form, field); msg != "" {
		t.Errors = ValidationResult{field: msg}
	}
	return t
}

func (o *Orchestrator) SelectMethod(s Session, method PaymentMethod) Transition {
	if s.Phase != PhaseCollecting {
		return Transition{Session: s, Err: ErrFormLocked}
	}
	if !method.IsValid() {
		return Transition{Session: s, Err: ErrUnknownMethod}
	}
	s.Method = method
	s.Quote, s.QuoteErr = o.pricer.Quote(s.Reservation, method)
	return Transition{Session: s}
}

func (o *Orchestrator) Submit(s Session, now time.Time) Transition {
	switch s.Phase {
	case PhaseSubmitting, PhaseAwaitingGateway:
		return Transition{Session: s, Err: ErrSubmissionInFlight}
	case PhaseCollecting:
	default:
		return Transition{Session: s, Err: ErrInvalidTransition}
	}

	if err := s.Reservation.Validate(); err != nil {
		return Transition{Session: s, Err: err}
	}
	if errs := o.validator.Validate(s.Form, s.Method); !errs.IsValid() {
		return Transition{Session: s, Errors: errs, Err: errs.Err()}
	}

	quote, err := o.pricer.Quote(s.Reservation, s.Method)
	if err != nil {
		return Transition{Session: s, Err: err}
	}
	s.Quote, s.QuoteErr = quote, nil

	amount := quote.Charge(s.Method, parseInstallments(s.Form.Value(FieldInstallments)))
	req, err := o.payloads.Build(s.Method, s.Form, s.Reservation, amount, now)
	if err != nil {
		return Transition{Session: s, Err: err}
	}
	s.Request = &req
	s.ReservationID = req.Metadata.ReservationID
	s.Outcome = nil
	s.LastFailure = ""
	s.Phase = PhaseSubmitting
	s.UpdatedAt = now
	return Transition{Session: s, Intents: []Intent{CallGateway{Request: req}}}
}

func (o *Orchestrator) GatewayDispatched(s Session) Transition {
	if s.Phase != PhaseSubmitting {
		return Transition{Session: s, Err: ErrInvalidTransition}
	}
	s.Phase = PhaseAwaitingGateway
	return Transition{Session: s}
}

func (o *Orchestrator) GatewayResponded(s Session, outcome PaymentOutcome) Transition {
	if s.Phase != PhaseSubmitting && s.Phase != PhaseAwaitingGateway {
		return Transition{Session: s, Err: ErrInvalidTransition}
	}
	s.Outcome = &outcome

	if !outcome.OK() {
		s.Phase = PhaseCollecting
		s.LastFailure = outcome.FailureMessage()
		return Transition{Session: s}
	}

	if s.Method != MethodPix {
		s.Phase = PhaseConfirmed
		return Transition{Session: s}
	}
	if outcome.Response.PixCode == "" {
		s.Phase = PhaseCollecting
		s.LastFailure = DefaultGatewayMessage
		return Transition{Session: s}
	}
	s.Phase = PhasePixPending
	s.PixRemaining = o.pixExpiry
	return Transition{Session: s, Intents: []Intent{StartCountdown{Seconds: o.pixExpiry}}}
}

func (o *Orchestrator) Tick(s Session) Transition {
	if s.Phase != PhasePixPending {
		return Transition{Session: s}
	}
	s.PixRemaining--
	if s.PixRemaining > 0 {
		return Transition{Session: s}
	}
	s.PixRemaining = 0
	s.Phase = PhaseExpired
	return Transition{Session: s, Intents: []Intent{StopCountdown{}}}
}

func (o *Orchestrator) Confirm(s Session) Transition {
	switch s.Phase {
	case PhasePixPending:
		s.Phase = PhaseConfirmed
		return Transition{Session: s, Intents: []Intent{StopCountdown{}}}
	case PhaseExpired:
		return Transition{Session: s, Err: ErrPixExpired}
	default:
		return Transition{Session: s, Err: ErrInvalidTransition}
	}
}

func (o *Orchestrator) Abort(s Session) Transition {
	switch s.Phase {
	case PhasePixPending:
		s.Phase = PhaseCollecting
		s.PixRemaining = 0
		return Transition{Session: s, Intents: []Intent{StopCountdown{}}}
	case PhaseExpired:
		s.Phase = PhaseCollecting
		return Transition{Session: s}
	default:
		return Transition{Session: s, Err: ErrInvalidTransition}
	}
}

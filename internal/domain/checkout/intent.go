package checkout

// Intent is a side effect the caller must perform after a transition.
type Intent interface {
	intent()
}

// CallGateway asks the shell to send Request to the payment gateway.
type CallGateway struct {
	Request PaymentRequest
}

// StartCountdown asks for a one-second ticker feeding Tick.
type StartCountdown struct {
	Seconds int
}

type StopCountdown struct{}

func (CallGateway) intent()    {}
func (StartCountdown) intent() {}
func (StopCountdown) intent()  {}

// Transition is the result of applying one event to a session.
type Transition struct {
	Session Session
	Intents []Intent
	Errors  ValidationResult
	Err     error
}

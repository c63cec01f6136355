package checkout

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrInvalidStayOrder   = errors.New("exit must be after entry")
	ErrMissingInstant     = errors.New("missing entry or exit date")
	ErrUnknownMethod      = errors.New("unknown payment method")
	ErrUnknownField       = errors.New("unknown form field")
	ErrFormLocked         = errors.New("form cannot be edited in the current phase")
	ErrSubmissionInFlight = errors.New("a payment submission is already in progress")
	ErrPixExpired         = errors.New("pix code expired")
	ErrInvalidTransition  = errors.New("transition not allowed in the current phase")
	ErrInvalidInstallment = errors.New("installment count out of range")
)

// DefaultGatewayMessage is shown when the gateway fails without a message.
const DefaultGatewayMessage = "Erro ao processar pagamento"

// ValidationError carries one message per failing field.
type ValidationError struct {
	Fields ValidationResult
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return "validation failed: " + strings.Join(keys, ", ")
}

type GatewayErrorKind string

const (
	GatewayClientError    GatewayErrorKind = "client"
	GatewayServerError    GatewayErrorKind = "server"
	GatewayTransportError GatewayErrorKind = "transport"
)

// GatewayError is a non-2xx answer or a transport failure from the payment gateway.
type GatewayError struct {
	Status  int
	Message string
	Body    []byte
	Cause   error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gateway error (%d): %s: %v", e.Status, e.UserMessage(), e.Cause)
	}
	return fmt.Sprintf("gateway error (%d): %s", e.Status, e.UserMessage())
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

func (e *GatewayError) UserMessage() string {
	if strings.TrimSpace(e.Message) == "" {
		return DefaultGatewayMessage
	}
	return e.Message
}

func (e *GatewayError) Kind() GatewayErrorKind {
	switch {
	case e.Status == 0:
		return GatewayTransportError
	case e.Status >= 500:
		return GatewayServerError
	default:
		return GatewayClientError
	}
}

// HTTPStatus is the status relayed to the caller; transport failures map to 502.
func (e *GatewayError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadGateway
	}
	return e.Status
}

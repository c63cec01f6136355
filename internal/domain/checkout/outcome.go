package checkout

import (
	"encoding/json"
	"errors"
)

// GatewayResponse is the part of a successful gateway answer the checkout reads.
type GatewayResponse struct {
	TransactionID string
	Status        string
	PixCode       string
	PixQRCodeURL  string
	Raw           json.RawMessage
}

// PaymentOutcome is either a successful response or a gateway error.
type PaymentOutcome struct {
	Response *GatewayResponse
	Err      error
}

func Succeeded(resp GatewayResponse) PaymentOutcome {
	return PaymentOutcome{Response: &resp}
}

func Failed(err error) PaymentOutcome {
	if err == nil {
		err = &GatewayError{}
	}
	return PaymentOutcome{Err: err}
}

func (o PaymentOutcome) OK() bool {
	return o.Err == nil && o.Response != nil
}

// FailureMessage is the user-facing text for a failed outcome.
func (o PaymentOutcome) FailureMessage() string {
	var gwErr *GatewayError
	if errors.As(o.Err, &gwErr) {
		return gwErr.UserMessage()
	}
	return DefaultGatewayMessage
}

// AsGatewayError normalises any error into a GatewayError.
func AsGatewayError(err error) *GatewayError {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}
	return &GatewayError{Cause: err}
}

package checkout

import "strings"

type PaymentMethod string

const (
	MethodPix    PaymentMethod = "pix"
	MethodCredit PaymentMethod = "credit"
	MethodBoleto PaymentMethod = "boleto"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", ErrUnknownMethod
	}
	return m, nil
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodPix, MethodCredit, MethodBoleto:
		return true
	default:
		return false
	}
}

// GatewayName is the identifier the gateway expects in paymentMethod.
func (m PaymentMethod) GatewayName() string {
	if m == MethodCredit {
		return "credit_card"
	}
	return string(m)
}

func (m PaymentMethod) IsCard() bool {
	return m == MethodCredit
}

func (m PaymentMethod) String() string {
	return string(m)
}

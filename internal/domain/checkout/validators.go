package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	legacyPlate     = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlate   = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)
	cardExpiryShape = regexp.MustCompile(`^\d{2}/\d{2}$`)
)

const (
	MsgNameRequired        = "Nome completo é obrigatório"
	MsgNameSurname         = "Informe nome e sobrenome"
	MsgCPFRequired         = "CPF é obrigatório"
	MsgCPFLength           = "CPF deve conter 11 dígitos"
	MsgCPFInvalid          = "CPF inválido"
	MsgEmailRequired       = "E-mail é obrigatório"
	MsgEmailInvalid        = "E-mail inválido"
	MsgPhoneRequired       = "Telefone é obrigatório"
	MsgPhoneLength         = "Telefone deve conter 10 ou 11 dígitos"
	MsgPlateRequired       = "Placa do veículo é obrigatória"
	MsgPlateInvalid        = "Placa inválida (use ABC-1234 ou ABC1D23)"
	MsgVehicleRequired     = "Tipo de veículo é obrigatório"
	MsgCardNumberRequired  = "Número do cartão é obrigatório"
	MsgCardNumberInvalid   = "Número do cartão deve conter 16 dígitos"
	MsgCardHolderRequired  = "Nome no cartão é obrigatório"
	MsgCardExpiryRequired  = "Validade é obrigatória"
	MsgCardExpiryInvalid   = "Validade inválida (use MM/AA)"
	MsgCardCVVRequired     = "CVV é obrigatório"
	MsgCardCVVInvalid      = "CVV deve conter 3 ou 4 dígitos"
	MsgInstallmentsInvalid = "Número de parcelas inválido"
)

// Digits keeps only ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UpperAlnum keeps letters and digits, upper-cased.
func UpperAlnum(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func ValidateName(raw string, requireSurname bool) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return MsgNameRequired
	}
	if requireSurname && len(strings.FieldsFunc(name, unicode.IsSpace)) < 2 {
		return MsgNameSurname
	}
	return ""
}

// ValidateCPF checks shape only; check digits are not verified.
func ValidateCPF(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgCPFRequired
	}
	d := Digits(raw)
	if len(d) != 11 {
		return MsgCPFLength
	}
	if strings.Count(d, d[:1]) == len(d) {
		return MsgCPFInvalid
	}
	return ""
}

func ValidateEmail(raw string) string {
	email := strings.TrimSpace(raw)
	if email == "" {
		return MsgEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return MsgEmailInvalid
	}
	return ""
}

func ValidatePhone(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgPhoneRequired
	}
	if n := len(Digits(raw)); n != 10 && n != 11 {
		return MsgPhoneLength
	}
	return ""
}

// CanonicalPlate upper-cases a plate and drops the one dash allowed after
// the letters. Any other separator is kept so validation rejects it.
func CanonicalPlate(raw string) string {
	p := strings.ToUpper(strings.TrimSpace(raw))
	if len(p) == 8 && p[3] == '-' {
		p = p[:3] + p[4:]
	}
	return p
}

func ValidatePlate(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgPlateRequired
	}
	p := CanonicalPlate(raw)
	if !legacyPlate.MatchString(p) && !mercosulPlate.MatchString(p) {
		return MsgPlateInvalid
	}
	return ""
}

func ValidateVehicleType(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgVehicleRequired
	}
	return ""
}

func ValidateCardNumber(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgCardNumberRequired
	}
	d := strings.ReplaceAll(raw, " ", "")
	if len(d) != 16 || Digits(d) != d {
		return MsgCardNumberInvalid
	}
	return ""
}

func ValidateCardHolder(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return MsgCardHolderRequired
	}
	return ""
}

// ValidateCardExpiry checks the MM/YY shape; it does not reject past dates.
func ValidateCardExpiry(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return MsgCardExpiryRequired
	}
	if !cardExpiryShape.MatchString(v) {
		return MsgCardExpiryInvalid
	}
	return ""
}

func ValidateCardCVV(raw string) string {
	v := strings.TrimSpace(raw)
	if v == "" {
		return MsgCardCVVRequired
	}
	if len(v) < 3 || len(v) > 4 || Digits(v) != v {
		return MsgCardCVVInvalid
	}
	return ""
}

func ValidateInstallments(raw string, max int) string {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 || n > max {
		return MsgInstallmentsInvalid
	}
	return ""
}

package checkout

import (
	"strings"
)

type FieldID string

const (
	FieldFullName     FieldID = "fullName"
	FieldCPF          FieldID = "cpf"
	FieldPhone        FieldID = "phone"
	FieldEmail        FieldID = "email"
	FieldPlate        FieldID = "vehiclePlate"
	FieldVehicleType  FieldID = "vehicleType"
	FieldCardNumber   FieldID = "cardNumber"
	FieldCardHolder   FieldID = "cardName"
	FieldCardExpiry   FieldID = "cardExpiry"
	FieldCardCVV      FieldID = "cardCvv"
	FieldInstallments FieldID = "installments"
)

const DefaultVehicleType = "sedan"

var (
	identityFields = []FieldID{FieldFullName, FieldCPF, FieldPhone, FieldEmail, FieldPlate, FieldVehicleType}
	cardFields     = []FieldID{FieldCardNumber, FieldCardHolder, FieldCardExpiry, FieldCardCVV, FieldInstallments}
	fieldIndex     = map[FieldID]int{}
)

func init() {
	for i, id := range append(append([]FieldID{}, identityFields...), cardFields...) {
		fieldIndex[id] = i
	}
}

func ParseFieldID(s string) (FieldID, error) {
	id := FieldID(strings.TrimSpace(s))
	if _, ok := fieldIndex[id]; !ok {
		return "", ErrUnknownField
	}
	return id, nil
}

// AllFields lists every form field in display order.
func AllFields() []FieldID {
	return append(append([]FieldID{}, identityFields...), cardFields...)
}

// RequiredFields is the set a method validates on submit.
func RequiredFields(method PaymentMethod) []FieldID {
	if method == MethodCredit {
		return AllFields()
	}
	return append([]FieldID{}, identityFields...)
}

type Field struct {
	Raw       string
	Canonical string
}

// CustomerForm is a value type; Set returns an updated copy.
type CustomerForm struct {
	fields [11]Field
}

func NewCustomerForm() CustomerForm {
	var f CustomerForm
	f, _ = f.Set(FieldVehicleType, DefaultVehicleType)
	f, _ = f.Set(FieldInstallments, "1")
	return f
}

func (f CustomerForm) Set(id FieldID, raw string) (CustomerForm, error) {
	i, ok := fieldIndex[id]
	if !ok {
		return f, ErrUnknownField
	}
	f.fields[i] = Field{Raw: raw, Canonical: Canonicalize(id, raw)}
	return f, nil
}

func (f CustomerForm) Field(id FieldID) Field {
	i, ok := fieldIndex[id]
	if !ok {
		return Field{}
	}
	return f.fields[i]
}

func (f CustomerForm) Value(id FieldID) string {
	return f.Field(id).Canonical
}

// Values returns the canonical value of every field.
func (f CustomerForm) Values() map[FieldID]string {
	out := make(map[FieldID]string, len(fieldIndex))
	for id, i := range fieldIndex {
		out[id] = f.fields[i].Canonical
	}
	return out
}

func Canonicalize(id FieldID, raw string) string {
	switch id {
	case FieldCPF, FieldPhone:
		return Digits(raw)
	case FieldPlate:
		return CanonicalPlate(raw)
	case FieldCardNumber:
		return strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	case FieldFullName, FieldCardHolder:
		return strings.Join(strings.Fields(raw), " ")
	default:
		return strings.TrimSpace(raw)
	}
}

// Display renders a field the way the form shows it while typing.
func (f CustomerForm) Display(id FieldID) string {
	v := f.Value(id)
	switch id {
	case FieldCPF:
		return FormatCPF(v)
	case FieldPhone:
		return FormatPhone(v)
	case FieldPlate:
		return FormatPlate(v)
	case FieldCardNumber:
		return FormatCardNumber(v)
	default:
		return f.Field(id).Raw
	}
}

// FormatCPF masks up to 11 digits as 000.000.000-00.
func FormatCPF(s string) string {
	d := Digits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	var b strings.Builder
	for i, r := range d {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatPhone masks as (00) 00000-0000, or (00) 0000-0000 for landlines.
func FormatPhone(s string) string {
	d := Digits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

func FormatPlate(s string) string {
	p := UpperAlnum(s)
	if len(p) > 7 {
		p = p[:7]
	}
	if len(p) <= 3 {
		return p
	}
	return p[:3] + "-" + p[3:]
}

func FormatCardNumber(s string) string {
	d := Digits(s)
	if len(d) > 16 {
		d = d[:16]
	}
	var b strings.Builder
	for i, r := range d {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ValidationResult maps each failing field to its message.
type ValidationResult map[FieldID]string

func (v ValidationResult) IsValid() bool {
	return len(v) == 0
}

func (v ValidationResult) Err() error {
	if v.IsValid() {
		return nil
	}
	return &ValidationError{Fields: v}
}

type FormValidator struct {
	RequireSurname  bool
	MaxInstallments int
}

func NewFormValidator(requireSurname bool, maxInstallments int) FormValidator {
	if maxInstallments < 1 {
		maxInstallments = 1
	}
	return FormValidator{RequireSurname: requireSurname, MaxInstallments: maxInstallments}
}

// ValidateField returns "" when the field is valid.
func (fv FormValidator) ValidateField(form CustomerForm, id FieldID) string {
	v := form.Value(id)
	switch id {
	case FieldFullName:
		return ValidateName(v, fv.RequireSurname)
	case FieldCPF:
		return ValidateCPF(v)
	case FieldPhone:
		return ValidatePhone(v)
	case FieldEmail:
		return ValidateEmail(v)
	case FieldPlate:
		return ValidatePlate(v)
	case FieldVehicleType:
		return ValidateVehicleType(v)
	case FieldCardNumber:
		return ValidateCardNumber(v)
	case FieldCardHolder:
		return ValidateCardHolder(v)
	case FieldCardExpiry:
		return ValidateCardExpiry(v)
	case FieldCardCVV:
		return ValidateCardCVV(v)
	case FieldInstallments:
		return ValidateInstallments(v, fv.MaxInstallments)
	}
	return ""
}

func (fv FormValidator) Validate(form CustomerForm, method PaymentMethod) ValidationResult {
	out := ValidationResult{}
	for _, id := range RequiredFields(method) {
		if msg := fv.ValidateField(form, id); msg != "" {
			out[id] = msg
		}
	}
	return out
}

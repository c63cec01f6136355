//go:build unit

package checkout_test

import (
	"testing"

	"guarupark-checkout/internal/domain/checkout"
	"guarupark-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValidators(t *testing.T) {
	cases := []struct {
		name string
		fn   func(string) string
		raw  string
		want string
	}{
		{name: "cpf all identical", fn: checkout.ValidateCPF, raw: "111.111.111-11", want: checkout.MsgCPFInvalid},
		{name: "cpf valid", fn: checkout.ValidateCPF, raw: "123.456.789-09"},
		{name: "cpf short", fn: checkout.ValidateCPF, raw: "123.456.789", want: checkout.MsgCPFLength},
		{name: "cpf empty", fn: checkout.ValidateCPF, raw: "  ", want: checkout.MsgCPFRequired},
		{name: "email valid", fn: checkout.ValidateEmail, raw: "a@b.co"},
		{name: "email no domain dot", fn: checkout.ValidateEmail, raw: "a@b", want: checkout.MsgEmailInvalid},
		{name: "email with space", fn: checkout.ValidateEmail, raw: "a b@c.com", want: checkout.MsgEmailInvalid},
		{name: "email empty", fn: checkout.ValidateEmail, raw: "", want: checkout.MsgEmailRequired},
		{name: "phone mobile", fn: checkout.ValidatePhone, raw: "(13) 99876-5432"},
		{name: "phone landline", fn: checkout.ValidatePhone, raw: "1332345678"},
		{name: "phone short", fn: checkout.ValidatePhone, raw: "99876-5432", want: checkout.MsgPhoneLength},
		{name: "plate legacy with dash", fn: checkout.ValidatePlate, raw: "abc-1234"},
		{name: "plate mercosul", fn: checkout.ValidatePlate, raw: "ABC1D23"},
		{name: "plate bad", fn: checkout.ValidatePlate, raw: "AB12345", want: checkout.MsgPlateInvalid},
		{name: "plate mercosul with dash", fn: checkout.ValidatePlate, raw: "abc-1d23"},
		{name: "plate scattered separators", fn: checkout.ValidatePlate, raw: "A-B-C 1.2.3.4", want: checkout.MsgPlateInvalid},
		{name: "plate inner space", fn: checkout.ValidatePlate, raw: "ABC 1234", want: checkout.MsgPlateInvalid},
		{name: "plate dash misplaced", fn: checkout.ValidatePlate, raw: "AB-C1234", want: checkout.MsgPlateInvalid},
		{name: "plate empty", fn: checkout.ValidatePlate, raw: "", want: checkout.MsgPlateRequired},
		{name: "card 16 digits spaced", fn: checkout.ValidateCardNumber, raw: "4111 1111 1111 1111"},
		{name: "card 15 digits", fn: checkout.ValidateCardNumber, raw: "411111111111111", want: checkout.MsgCardNumberInvalid},
		{name: "card letters", fn: checkout.ValidateCardNumber, raw: "4111x11111111111", want: checkout.MsgCardNumberInvalid},
		{name: "expiry valid", fn: checkout.ValidateCardExpiry, raw: "07/27"},
		{name: "expiry bad shape", fn: checkout.ValidateCardExpiry, raw: "7/27", want: checkout.MsgCardExpiryInvalid},
		{name: "cvv three", fn: checkout.ValidateCardCVV, raw: "123"},
		{name: "cvv four", fn: checkout.ValidateCardCVV, raw: "1234"},
		{name: "cvv two", fn: checkout.ValidateCardCVV, raw: "12", want: checkout.MsgCardCVVInvalid},
		{name: "vehicle type empty", fn: checkout.ValidateVehicleType, raw: " ", want: checkout.MsgVehicleRequired},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.fn(c.raw))
		})
	}

	t.Run("name strictness", func(t *testing.T) {
		assert.Equal(t, "", checkout.ValidateName("João", false))
		assert.Equal(t, checkout.MsgNameSurname, checkout.ValidateName("João", true))
		assert.Equal(t, "", checkout.ValidateName("João Silva", true))
		assert.Equal(t, checkout.MsgNameRequired, checkout.ValidateName("   ", false))
	})

	t.Run("installments range", func(t *testing.T) {
		assert.Equal(t, "", checkout.ValidateInstallments("12", 12))
		assert.Equal(t, checkout.MsgInstallmentsInvalid, checkout.ValidateInstallments("13", 12))
		assert.Equal(t, checkout.MsgInstallmentsInvalid, checkout.ValidateInstallments("0", 12))
		assert.Equal(t, checkout.MsgInstallmentsInvalid, checkout.ValidateInstallments("x", 12))
	})
}

func TestFormValidator(t *testing.T) {
	v := checkout.NewFormValidator(false, 12)

	t.Run("credit with empty card fields is invalid, same form valid for pix", func(t *testing.T) {
		form := builder.NewCheckoutBuilder().BuildForm()

		credit := v.Validate(form, checkout.MethodCredit)
		assert.False(t, credit.IsValid())
		assert.Contains(t, credit, checkout.FieldCardNumber)
		assert.Contains(t, credit, checkout.FieldCardHolder)
		assert.Contains(t, credit, checkout.FieldCardExpiry)
		assert.Contains(t, credit, checkout.FieldCardCVV)

		assert.True(t, v.Validate(form, checkout.MethodPix).IsValid())
		assert.True(t, v.Validate(form, checkout.MethodBoleto).IsValid())
	})

	t.Run("complete credit form is valid", func(t *testing.T) {
		form := builder.NewCheckoutBuilder().AsCredit().BuildForm()
		res := v.Validate(form, checkout.MethodCredit)
		assert.True(t, res.IsValid(), "%v", res)
		assert.NoError(t, res.Err())
	})

	t.Run("invalid cpf reports only cpf", func(t *testing.T) {
		form := builder.NewCheckoutBuilder().WithField(checkout.FieldCPF, "111.111.111-11").BuildForm()
		res := v.Validate(form, checkout.MethodPix)
		assert.Equal(t, checkout.ValidationResult{checkout.FieldCPF: checkout.MsgCPFInvalid}, res)

		var vErr *checkout.ValidationError
		require.ErrorAs(t, res.Err(), &vErr)
		assert.Equal(t, res, vErr.Fields)
	})

	t.Run("surname required when configured", func(t *testing.T) {
		strict := checkout.NewFormValidator(true, 12)
		form := builder.NewCheckoutBuilder().WithField(checkout.FieldFullName, "João").BuildForm()
		assert.Equal(t, checkout.MsgNameSurname, strict.Validate(form, checkout.MethodPix)[checkout.FieldFullName])
	})
}

func TestCustomerForm(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		form := checkout.NewCustomerForm()
		assert.Equal(t, "sedan", form.Value(checkout.FieldVehicleType))
		assert.Equal(t, "1", form.Value(checkout.FieldInstallments))
	})

	t.Run("canonical values", func(t *testing.T) {
		form := builder.NewCheckoutBuilder().AsCredit().BuildForm()
		assert.Equal(t, "12345678909", form.Value(checkout.FieldCPF))
		assert.Equal(t, "13998765432", form.Value(checkout.FieldPhone))
		assert.Equal(t, "4111111111111111", form.Value(checkout.FieldCardNumber))
		assert.Equal(t, "(13) 99876-5432", form.Field(checkout.FieldPhone).Raw)

		plated, err := form.Set(checkout.FieldPlate, " abc-1234 ")
		require.NoError(t, err)
		assert.Equal(t, "ABC1234", plated.Value(checkout.FieldPlate))

		junk, err := form.Set(checkout.FieldPlate, "A-B-C 1.2.3.4")
		require.NoError(t, err)
		assert.Equal(t, checkout.MsgPlateInvalid,
			checkout.NewFormValidator(false, 12).ValidateField(junk, checkout.FieldPlate))
	})

	t.Run("set returns a copy", func(t *testing.T) {
		a := checkout.NewCustomerForm()
		b, err := a.Set(checkout.FieldEmail, "x@y.com")
		require.NoError(t, err)
		assert.Empty(t, a.Value(checkout.FieldEmail))
		assert.Equal(t, "x@y.com", b.Value(checkout.FieldEmail))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := checkout.NewCustomerForm().Set("nickname", "x")
		require.ErrorIs(t, err, checkout.ErrUnknownField)
	})

	t.Run("masks", func(t *testing.T) {
		assert.Equal(t, "123.456.789-09", checkout.FormatCPF("12345678909"))
		assert.Equal(t, "123.45", checkout.FormatCPF("12345"))
		assert.Equal(t, "(13) 99876-5432", checkout.FormatPhone("13998765432"))
		assert.Equal(t, "(13) 3234-5678", checkout.FormatPhone("1332345678"))
		assert.Equal(t, "ABC-1D23", checkout.FormatPlate("abc1d23"))
		assert.Equal(t, "AB", checkout.FormatPlate("ab"))
		assert.Equal(t, "4111 1111 1111 1111", checkout.FormatCardNumber("4111111111111111"))
	})
}

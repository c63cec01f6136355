//go:build unit

package checkout_test

import (
	"testing"
	"time"

	"guarupark-checkout/internal/domain/checkout"
	"guarupark-checkout/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2026, 1, 15, 14, 0, 0, 0, builder.SaoPaulo)

	cases := []struct {
		name  string
		exit  time.Time
		want  int
		errIs error
	}{
		{name: "exact three days", exit: base.Add(72 * time.Hour), want: 3},
		{name: "one minute counts as a day", exit: base.Add(time.Minute), want: 1},
		{name: "partial day rounds up", exit: base.Add(49 * time.Hour), want: 3},
		{name: "exactly one day", exit: base.Add(24 * time.Hour), want: 1},
		{name: "same instant refused", exit: base, errIs: checkout.ErrInvalidStayOrder},
		{name: "exit before entry refused", exit: base.Add(-time.Hour), errIs: checkout.ErrInvalidStayOrder},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := checkout.DaysBetween(base, c.exit)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	t.Run("matches ceil of hours over 24", func(t *testing.T) {
		for hours := 1; hours <= 24*10; hours++ {
			got, err := checkout.DaysBetween(base, base.Add(time.Duration(hours)*time.Hour))
			require.NoError(t, err)
			want := (hours + 23) / 24
			assert.Equal(t, want, got, "hours=%d", hours)
			assert.GreaterOrEqual(t, got, 1)
		}
	})
}

func TestPricer(t *testing.T) {
	pricer := checkout.NewPricer(checkout.DefaultRates())

	t.Run("reference scenario covered three days", func(t *testing.T) {
		res := builder.NewCheckoutBuilder().BuildReservation()

		q, err := pricer.Quote(res, checkout.MethodPix)
		require.NoError(t, err)

		assert.Equal(t, 3, q.Days)
		assert.Equal(t, int64(5700), q.Base.Cents())
		assert.Equal(t, "57.00", q.Total.Decimal())
		assert.Equal(t, "R$ 57,00", q.Total.BRL())
		assert.Empty(t, q.Schedule)
	})

	t.Run("uncovered rate", func(t *testing.T) {
		res := builder.NewCheckoutBuilder().WithParkingType("uncovered").BuildReservation()

		q, err := pricer.Quote(res, checkout.MethodBoleto)
		require.NoError(t, err)
		assert.Equal(t, int64(3600), q.Total.Cents())
	})

	t.Run("credit adds five percent and pix equals boleto", func(t *testing.T) {
		for _, stay := range [][4]string{
			{"2026-01-15", "14:00", "2026-01-18", "14:00"},
			{"2026-02-01", "08:00", "2026-02-01", "09:30"},
			{"2026-03-10", "23:59", "2026-04-02", "00:01"},
		} {
			for _, pt := range []string{"covered", "uncovered"} {
				res := builder.NewCheckoutBuilder().WithStay(stay[0], stay[1], stay[2], stay[3]).WithParkingType(pt).BuildReservation()

				pix, err := pricer.Quote(res, checkout.MethodPix)
				require.NoError(t, err)
				boleto, err := pricer.Quote(res, checkout.MethodBoleto)
				require.NoError(t, err)
				credit, err := pricer.Quote(res, checkout.MethodCredit)
				require.NoError(t, err)

				assert.Equal(t, pix.Total, boleto.Total)
				want := (pix.Total.Cents()*10500 + 5000) / 10000
				assert.Equal(t, want, credit.Total.Cents())
			}
		}
	})

	t.Run("installment schedule", func(t *testing.T) {
		res := builder.NewCheckoutBuilder().BuildReservation()
		q, err := pricer.Quote(res, checkout.MethodCredit)
		require.NoError(t, err)
		require.Len(t, q.Schedule, 12)

		for _, inst := range q.Schedule {
			n := int64(inst.Count)
			exact := float64(q.Total.Cents()) * float64(inst.Multiplier) / 10000
			diff := float64(inst.PerMonth.Cents()*n) - exact
			assert.LessOrEqual(t, diff, float64(n), "n=%d", n)
			assert.GreaterOrEqual(t, diff, -float64(n), "n=%d", n)
		}

		first, ok := q.Installment(1)
		require.True(t, ok)
		assert.Equal(t, q.Total, first.Financed)

		six, _ := q.Installment(6)
		assert.Equal(t, int64(10000), six.Multiplier)
		seven, _ := q.Installment(7)
		assert.Equal(t, int64(10200), seven.Multiplier)
		twelve, _ := q.Installment(12)
		assert.Equal(t, int64(11200), twelve.Multiplier)

		_, ok = q.Installment(13)
		assert.False(t, ok)
	})

	t.Run("insurance surcharge", func(t *testing.T) {
		rates := checkout.DefaultRates()
		rates.InsuranceDailyCents = 500
		p := checkout.NewPricer(rates)

		res := builder.NewCheckoutBuilder().WithInsurance(true).BuildReservation()
		q, err := p.Quote(res, checkout.MethodPix)
		require.NoError(t, err)
		assert.Equal(t, int64(3*1900+3*500), q.Total.Cents())

		res = builder.NewCheckoutBuilder().WithInsurance(false).BuildReservation()
		q, err = p.Quote(res, checkout.MethodPix)
		require.NoError(t, err)
		assert.Equal(t, int64(5700), q.Total.Cents())
	})

	t.Run("unordered stay is refused", func(t *testing.T) {
		res := builder.NewCheckoutBuilder().WithStay("2026-01-18", "14:00", "2026-01-15", "14:00").BuildReservation()
		_, err := pricer.Quote(res, checkout.MethodPix)
		require.ErrorIs(t, err, checkout.ErrInvalidStayOrder)
	})

	t.Run("missing dates are refused", func(t *testing.T) {
		res := builder.NewCheckoutBuilder().WithStay("", "", "2026-01-15", "14:00").BuildReservation()
		_, err := pricer.Quote(res, checkout.MethodPix)
		require.ErrorIs(t, err, checkout.ErrMissingInstant)
	})
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", checkout.NewMoney(123456).BRL())
	assert.Equal(t, "R$ 0,05", checkout.NewMoney(5).BRL())
	assert.Equal(t, "1234567.89", checkout.NewMoney(123456789).Decimal())
	assert.Equal(t, int64(5700), checkout.MoneyFromReais(57.0).Cents())
	assert.Equal(t, int64(1999), checkout.MoneyFromReais(19.99).Cents())
	assert.Zero(t, checkout.NewMoney(-10).Cents())
	// 0.5 cent rounds up
	assert.Equal(t, int64(3), checkout.NewMoney(5).DivideBy(2).Cents())
	assert.Equal(t, int64(1), checkout.NewMoney(10).ScaleBP(500).Cents())
}

func TestFormatting(t *testing.T) {
	ts := time.Date(2026, 1, 15, 14, 5, 0, 0, builder.SaoPaulo)
	assert.Equal(t, "15/01/2026", checkout.FormatLocalDate(ts))
	assert.Equal(t, "15/01/2026 14:05", checkout.FormatLocalDateTime(ts))
	assert.Equal(t, "15/01/2026", checkout.FormatISODate("2026-01-15"))
	assert.Equal(t, "--", checkout.FormatISODate(""))
	assert.Equal(t, "60:00", checkout.FormatCountdown(3600))
	assert.Equal(t, "00:09", checkout.FormatCountdown(9))
	assert.Equal(t, "00:00", checkout.FormatCountdown(-3))

	got, err := checkout.ParseLocalInstant("2026-01-15", "", builder.SaoPaulo)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())

	_, err = checkout.ParseLocalInstant("15/01/2026", "14:00", builder.SaoPaulo)
	require.Error(t, err)
}

package checkout

import (
	"strconv"
	"strings"
)

const basisPoints = 10000

// Money is an amount in centavos.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	if cents < 0 {
		cents = 0
	}
	return Money{cents: cents}
}

// MoneyFromReais converts a decimal amount, rounding half-up to the cent.
func MoneyFromReais(v float64) Money {
	if v <= 0 {
		return Money{}
	}
	return Money{cents: int64(v*100 + 0.5)}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Reais() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return NewMoney(m.cents * int64(n))
}

// ScaleBP multiplies by bp/10000, rounding half-up.
func (m Money) ScaleBP(bp int64) Money {
	return NewMoney(divRoundHalfUp(m.cents*bp, basisPoints))
}

// DivideBy splits the amount into n parts, rounding half-up.
func (m Money) DivideBy(n int) Money {
	if n <= 0 {
		return m
	}
	return NewMoney(divRoundHalfUp(m.cents, int64(n)))
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// Decimal renders "57.00".
func (m Money) Decimal() string {
	return strconv.FormatInt(m.cents/100, 10) + "." + twoDigits(m.cents%100)
}

// BRL renders the pt-BR currency form, e.g. "R$ 1.234,56".
func (m Money) BRL() string {
	whole := strconv.FormatInt(m.cents/100, 10)
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return "R$ " + b.String() + "," + twoDigits(m.cents%100)
}

func twoDigits(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}

// divRoundHalfUp assumes non-negative numerator and positive denominator.
func divRoundHalfUp(num, den int64) int64 {
	return (num + den/2) / den
}

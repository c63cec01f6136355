package checkout

// Rates holds the tariff and credit-card financing settings, all integer.
type Rates struct {
	CoveredDailyCents   int64
	UncoveredDailyCents int64
	InsuranceDailyCents int64
	CreditFeeBP         int64
	InterestFree        int
	InstallmentStepBP   int64
	MaxInstallments     int
}

func DefaultRates() Rates {
	return Rates{
		CoveredDailyCents:   1900,
		UncoveredDailyCents: 1200,
		CreditFeeBP:         500,
		InterestFree:        6,
		InstallmentStepBP:   200,
		MaxInstallments:     12,
	}
}

type Installment struct {
	Count      int
	Multiplier int64 // basis points, 10000 = 1.00
	Financed   Money
	PerMonth   Money
}

type Quote struct {
	Days     int
	Base     Money
	Fee      Money
	Total    Money
	Schedule []Installment
}

// TotalFor returns what the given method charges for this quote.
func (q Quote) TotalFor(method PaymentMethod) Money {
	if method == MethodCredit {
		return q.Base.Add(q.Fee)
	}
	return q.Base
}

// Charge is the amount sent to the gateway: the financed total for credit
// installments, the method total otherwise.
func (q Quote) Charge(method PaymentMethod, installments int) Money {
	if method == MethodCredit {
		if inst, ok := q.Installment(installments); ok {
			return inst.Financed
		}
	}
	return q.TotalFor(method)
}

func (q Quote) Installment(n int) (Installment, bool) {
	if n < 1 || n > len(q.Schedule) {
		return Installment{}, false
	}
	return q.Schedule[n-1], true
}

type Pricer struct {
	rates Rates
}

func NewPricer(rates Rates) *Pricer {
	if rates.MaxInstallments < 1 {
		rates.MaxInstallments = 1
	}
	if rates.InterestFree < 0 {
		rates.InterestFree = 0
	}
	return &Pricer{rates: rates}
}

func (p *Pricer) Rates() Rates {
	return p.rates
}

func (p *Pricer) DailyRate(t ParkingType) Money {
	base := p.rates.UncoveredDailyCents
	if t == ParkingCovered {
		base = p.rates.CoveredDailyCents
	}
	return NewMoney(base)
}

// BasePrice is days times the parking rate, plus the insurance surcharge if taken.
func (p *Pricer) BasePrice(r ReservationData) (int, Money, error) {
	days, err := r.TotalDays()
	if err != nil {
		return 0, Money{}, err
	}
	total := p.DailyRate(r.ParkingType()).Times(days)
	if r.Insurance() {
		total = total.Add(NewMoney(p.rates.InsuranceDailyCents).Times(days))
	}
	return days, total, nil
}

func (p *Pricer) CreditFee(base Money) Money {
	return base.ScaleBP(p.rates.CreditFeeBP)
}

// Multiplier returns the financing factor for n installments in basis points.
func (p *Pricer) Multiplier(n int) int64 {
	if n <= p.rates.InterestFree {
		return basisPoints
	}
	return basisPoints + p.rates.InstallmentStepBP*int64(n-p.rates.InterestFree)
}

func (p *Pricer) Schedule(total Money) []Installment {
	out := make([]Installment, 0, p.rates.MaxInstallments)
	for n := 1; n <= p.rates.MaxInstallments; n++ {
		mult := p.Multiplier(n)
		financed := total.ScaleBP(mult)
		out = append(out, Installment{
			Count:      n,
			Multiplier: mult,
			Financed:   financed,
			PerMonth:   financed.DivideBy(n),
		})
	}
	return out
}

// Quote prices a stay. The schedule is only filled for credit.
func (p *Pricer) Quote(r ReservationData, method PaymentMethod) (Quote, error) {
	days, base, err := p.BasePrice(r)
	if err != nil {
		return Quote{}, err
	}
	q := Quote{Days: days, Base: base, Fee: p.CreditFee(base)}
	q.Total = q.TotalFor(method)
	if method == MethodCredit {
		q.Schedule = p.Schedule(q.Total)
	}
	return q, nil
}

// QuoteAmount builds a quote around an externally supplied total, used when the
// stay cannot be priced.
func (p *Pricer) QuoteAmount(total Money, method PaymentMethod) Quote {
	q := Quote{Base: total, Total: total}
	if method == MethodCredit {
		q.Schedule = p.Schedule(total)
	}
	return q
}

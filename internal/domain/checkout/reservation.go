package checkout

import (
	"strconv"
	"strings"
	"time"
)

type ParkingType string

const (
	ParkingCovered   ParkingType = "covered"
	ParkingUncovered ParkingType = "uncovered"
)

// ParseParkingType falls back to uncovered for anything it does not recognise.
func ParseParkingType(s string) ParkingType {
	if ParkingType(strings.ToLower(strings.TrimSpace(s))) == ParkingCovered {
		return ParkingCovered
	}
	return ParkingUncovered
}

func (p ParkingType) Label() string {
	if p == ParkingCovered {
		return "Coberta"
	}
	return "Descoberta"
}

// ReservationParams is the raw intake from the booking step.
type ReservationParams struct {
	EntryDate   string
	EntryTime   string
	ExitDate    string
	ExitTime    string
	ParkingType string
	Insurance   string
	TotalDays   string
	TotalPrice  string
}

// ReservationData is the immutable stay snapshot a checkout works on.
type ReservationData struct {
	entry       time.Time
	exit        time.Time
	parkingType ParkingType
	insurance   bool

	entryDate, entryTime string
	exitDate, exitTime   string

	quotedDays  int
	quotedPrice Money
}

// NewReservationData never fails: missing or unparsable instants leave the stay
// unordered, which Pricer and Submit reject.
func NewReservationData(p ReservationParams, loc *time.Location) ReservationData {
	r := ReservationData{
		parkingType: ParseParkingType(p.ParkingType),
		insurance:   strings.TrimSpace(p.Insurance) == "true",
		entryDate:   strings.TrimSpace(p.EntryDate),
		entryTime:   strings.TrimSpace(p.EntryTime),
		exitDate:    strings.TrimSpace(p.ExitDate),
		exitTime:    strings.TrimSpace(p.ExitTime),
	}
	if t, err := ParseLocalInstant(p.EntryDate, p.EntryTime, loc); err == nil {
		r.entry = t
	}
	if t, err := ParseLocalInstant(p.ExitDate, p.ExitTime, loc); err == nil {
		r.exit = t
	}
	if d, err := strconv.Atoi(strings.TrimSpace(p.TotalDays)); err == nil && d > 0 {
		r.quotedDays = d
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(p.TotalPrice), 64); err == nil {
		r.quotedPrice = MoneyFromReais(v)
	}
	return r
}

// NewStay builds reservation data from already parsed instants.
func NewStay(entry, exit time.Time, parkingType ParkingType, insurance bool) ReservationData {
	return ReservationData{
		entry:       entry,
		exit:        exit,
		parkingType: parkingType,
		insurance:   insurance,
		entryDate:   ISODate(entry),
		entryTime:   entry.Format(clockLayout),
		exitDate:    ISODate(exit),
		exitTime:    exit.Format(clockLayout),
	}
}

func (r ReservationData) Entry() time.Time         { return r.entry }
func (r ReservationData) Exit() time.Time          { return r.exit }
func (r ReservationData) ParkingType() ParkingType { return r.parkingType }
func (r ReservationData) Insurance() bool          { return r.insurance }
func (r ReservationData) EntryDate() string        { return r.entryDate }
func (r ReservationData) EntryTime() string        { return r.entryTime }
func (r ReservationData) ExitDate() string         { return r.exitDate }
func (r ReservationData) ExitTime() string         { return r.exitTime }
func (r ReservationData) QuotedDays() int          { return r.quotedDays }
func (r ReservationData) QuotedPrice() Money       { return r.quotedPrice }

// IsOrdered reports whether both instants are known and exit is after entry.
func (r ReservationData) IsOrdered() bool {
	return !r.entry.IsZero() && !r.exit.IsZero() && r.exit.After(r.entry)
}

func (r ReservationData) Validate() error {
	if r.entry.IsZero() || r.exit.IsZero() {
		return ErrMissingInstant
	}
	if !r.exit.After(r.entry) {
		return ErrInvalidStayOrder
	}
	return nil
}

func (r ReservationData) TotalDays() (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return DaysBetween(r.entry, r.exit)
}

func InsuranceLabel(included bool) string {
	if included {
		return "Incluído"
	}
	return "Não incluído"
}

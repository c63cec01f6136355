package checkout

import (
	"fmt"
	"strings"
	"time"
)

const (
	isoDateLayout   = "2006-01-02"
	clockLayout     = "15:04"
	localDateLayout = "02/01/2006"
	localDTLayout   = "02/01/2006 15:04"
	day             = 24 * time.Hour
)

// DaysBetween returns the number of charged days for a stay. Any started day
// counts as a full day and an ordered stay is never shorter than one day.
func DaysBetween(entry, exit time.Time) (int, error) {
	if !exit.After(entry) {
		return 0, ErrInvalidStayOrder
	}
	elapsed := exit.Sub(entry)
	days := int(elapsed / day)
	if elapsed%day != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days, nil
}

// ParseLocalInstant combines an ISO date and an optional HH:MM time-of-day in loc.
func ParseLocalInstant(date, clock string, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" {
		return time.Time{}, ErrMissingInstant
	}
	if clock == "" {
		clock = "00:00"
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(isoDateLayout+" "+clockLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant %q %q: %w", date, clock, err)
	}
	return t, nil
}

func FormatLocalDate(t time.Time) string {
	return t.Format(localDateLayout)
}

func FormatLocalDateTime(t time.Time) string {
	return t.Format(localDTLayout)
}

// FormatISODate turns "2026-01-15" into "15/01/2026". Empty input renders "--".
func FormatISODate(s string) string {
	if s == "" {
		return "--"
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return s
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

func ISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// FormatCountdown renders remaining seconds as mm:ss.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

package checkout

import (
	"fmt"
	"sync"
	"time"
)

const (
	reservationPrefix = "GP"
	suffixSpace       = 100_000_000
)

// ReservationIDGenerator issues GP + 8-digit codes taken from the millisecond
// clock. Codes never repeat within a process, even for calls in the same
// millisecond; uniqueness across processes is enforced by the store.
type ReservationIDGenerator struct {
	mu   sync.Mutex
	last int64
	used bool
}

func NewReservationIDGenerator() *ReservationIDGenerator {
	return &ReservationIDGenerator{}
}

func (g *ReservationIDGenerator) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := now.UnixMilli() % suffixSpace
	if g.used && n <= g.last && g.last-n < suffixSpace/2 {
		n = (g.last + 1) % suffixSpace
	}
	g.last = n
	g.used = true
	return fmt.Sprintf("%s%08d", reservationPrefix, n)
}

func IsReservationCode(s string) bool {
	if len(s) != len(reservationPrefix)+8 || s[:2] != reservationPrefix {
		return false
	}
	return Digits(s[2:]) == s[2:]
}

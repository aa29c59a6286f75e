package trade

import (
	"crypto/rand"
	"fmt"
	"time"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewOrderNumber generates a human-readable order number of the form
// PEGI-<year>-<4 random base36 chars>. The random suffix is not
// guaranteed unique; the ledger relies on a database constraint and
// regenerates on collision.
func NewOrderNumber(now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure is effectively unreachable; fall back to clock bits
		nano := now.UnixNano()
		for i := range buf {
			buf[i] = byte(nano >> (8 * i))
		}
	}
	for i := range buf {
		buf[i] = orderNumberAlphabet[int(buf[i])%len(orderNumberAlphabet)]
	}
	return fmt.Sprintf("PEGI-%d-%s", now.Year(), string(buf))
}

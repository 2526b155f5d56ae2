package billing

import (
	"fmt"
	"math/rand"
	"time"
)

const gstinLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const gstinCheckChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateInvoiceNumber returns a bill number of the form INV/<year>/<nnnn>.
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV/%d/%04d", now.Year(), 1000+rand.Intn(9000))
}

// GenerateGSTIN builds a synthetic but format-valid GSTIN: two-digit state
// code, ten letters, an entity digit, the literal 'Z' and a check character.
// It is meant for generated bills where the seller has no registered GSTIN.
func GenerateGSTIN() string {
	b := make([]byte, 0, 15)
	b = append(b, fmt.Sprintf("%02d", 1+rand.Intn(37))...)
	for i := 0; i < 10; i++ {
		b = append(b, gstinLetters[rand.Intn(len(gstinLetters))])
	}
	b = append(b, byte('1'+rand.Intn(9)))
	b = append(b, 'Z')
	b = append(b, gstinCheckChars[rand.Intn(len(gstinCheckChars))])
	return string(b)
}

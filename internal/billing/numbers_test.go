package billing

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	re := regexp.MustCompile(`^INV/2024/\d{4}$`)
	for i := 0; i < 50; i++ {
		n := GenerateInvoiceNumber(now)
		require.Regexp(t, re, n)
	}
}

func TestGenerateGSTIN(t *testing.T) {
	// format: state code, 5+5 letters/10 letters, entity digit, Z, check char
	re := regexp.MustCompile(`^[0-9]{2}[A-Z]{10}[1-9]Z[A-Z0-9]$`)
	for i := 0; i < 100; i++ {
		g := GenerateGSTIN()
		require.Len(t, g, 15)
		require.Regexp(t, re, g)
	}
}

func TestGenerateGSTINStateCodeRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		g := GenerateGSTIN()
		code := int(g[0]-'0')*10 + int(g[1]-'0')
		assert.GreaterOrEqual(t, code, 1)
		assert.LessOrEqual(t, code, 37)
	}
}

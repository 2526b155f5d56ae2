package hsn

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatcher(t *testing.T) *Matcher {
	t.Helper()
	entries, err := LoadCSV(strings.NewReader(referenceCSV))
	require.NoError(t, err)
	return NewMatcher(entries)
}

func TestMatcherExact(t *testing.T) {
	m := testMatcher(t)

	e, ok := m.Resolve("Rice")
	require.True(t, ok)
	assert.Equal(t, "1006", e.HSNCode)
	assert.Equal(t, 5.0, e.GSTRate)
}

func TestMatcherNormalization(t *testing.T) {
	m := testMatcher(t)

	tests := []struct {
		in   string
		want string
	}{
		{in: "rice", want: "1006"},
		{in: "  RICE  ", want: "1006"},
		{in: "mobile-phone", want: "8517"},
		{in: "Mobile  Phone", want: "8517"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, ok := m.Resolve(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, e.HSNCode)
		})
	}
}

func TestMatcherFuzzy(t *testing.T) {
	m := testMatcher(t)

	// OCR-style near miss
	e, ok := m.Resolve("Mobile Phon")
	require.True(t, ok)
	assert.Equal(t, "8517", e.HSNCode)
}

func TestMatcherBelowThreshold(t *testing.T) {
	m := testMatcher(t)

	_, ok := m.Resolve("Industrial Lathe Machine")
	assert.False(t, ok)

	_, ok = m.Resolve("")
	assert.False(t, ok)
}

func TestMatcherDeterministic(t *testing.T) {
	entries, err := LoadCSV(strings.NewReader(referenceCSV))
	require.NoError(t, err)

	a := NewMatcher(entries)
	// reversed input order must not change results
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	b := NewMatcher(entries)

	for _, q := range []string{"Rice", "sugar", "Mobile Phon", "soap"} {
		ea, oka := a.Resolve(q)
		eb, okb := b.Resolve(q)
		assert.Equal(t, oka, okb, q)
		assert.Equal(t, ea, eb, q)
	}
}

func TestMatcherCategories(t *testing.T) {
	m := testMatcher(t)

	cats := m.Categories()
	assert.Equal(t, []string{"Electronics", "Grocery", "Toiletries"}, cats)

	grocery := m.ItemsInCategory("Grocery")
	require.Len(t, grocery, 2)
	assert.Equal(t, "Rice", grocery[0].ItemName)
	assert.Equal(t, "Sugar", grocery[1].ItemName)
}

package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicConfidence(t *testing.T) {
	tests := []struct {
		name string
		txt  string
		min  float32
		max  float32
	}{
		{
			name: "empty text scores base only",
			txt:  "",
			min:  0.2, max: 0.2,
		},
		{
			name: "gst invoice text scores high",
			txt: "GSTIN: 27AAPFU0939F1ZV\nInvoice Date: 15/03/2024\n" +
				"Rice Bag 25kg 2 x 1200.00 2400.00\nCGST 60.00 SGST 60.00\nGrand Total ₹2520.00",
			min: 0.8, max: 1.0,
		},
		{
			name: "prose without invoice artifacts stays low",
			txt:  "hello there, nothing to see",
			min:  0.2, max: 0.35,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := heuristicConfidence(tt.txt)
			assert.GreaterOrEqual(t, got, tt.min)
			assert.LessOrEqual(t, got, tt.max)
		})
	}
}

func TestHeuristicConfidenceCapped(t *testing.T) {
	long := "GST CGST SGST HSN ₹ 1,200.00 15/03/2024 "
	for len(long) < 200 {
		long += long
	}
	assert.LessOrEqual(t, heuristicConfidence(long), float32(1.0))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "crlf", in: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "tabs and runs of spaces", in: "a\t\tb    c", want: "a b c"},
		{name: "blank line collapse", in: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "trailing spaces", in: "a   \nb  ", want: "a\nb"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTextIsSparse(t *testing.T) {
	assert.True(t, textIsSparse("short", 1, 64))
	assert.True(t, textIsSparse("", 0, 64))

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'x'
	}
	assert.False(t, textIsSparse(string(long), 1, 64))
	// same text across 4 pages drops below the per-page floor
	assert.True(t, textIsSparse(string(long), 4, 64))
}

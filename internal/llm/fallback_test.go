package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "already normalized", in: "2024-03-15", want: "2024-03-15"},
		{name: "indian slashes", in: "15/03/2024", want: "2024-03-15"},
		{name: "indian dashes", in: "15-03-2024", want: "2024-03-15"},
		{name: "dots", in: "15.03.2024", want: "2024-03-15"},
		{name: "short year", in: "15-03-24", want: "2024-03-15"},
		{name: "text month", in: "15 Mar 2024", want: "2024-03-15"},
		{name: "text month comma", in: "Mar 15, 2024", want: "2024-03-15"},
		{name: "full month", in: "15 March 2024", want: "2024-03-15"},
		{name: "whitespace", in: "  15/03/2024  ", want: "2024-03-15"},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "not a date", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

const sampleInvoiceText = `
SHREE TRADERS
GSTIN: 27AAPFU0939F1ZV
Invoice No: ST/2024/0042
Invoice Date: 15/03/2024
Place of Supply: Pune
Maharashtra

Rice Bag 25kg    1804    2 x 1200.00    2400.00
CGST @ 2.5%: 60.00
SGST @ 2.5%: 60.00
Grand Total: 2520.00
`

func TestApplyTextFallbacks(t *testing.T) {
	f := InvoiceFields{SellerName: "Shree Traders"}
	filled := ApplyTextFallbacks(&f, sampleInvoiceText)

	assert.Equal(t, "ST/2024/0042", f.InvoiceNo)
	assert.Equal(t, "27AAPFU0939F1ZV", f.GstinNo)
	assert.Equal(t, "2520.00", f.GrandTotal)
	assert.Equal(t, "120.00", f.TotalGST)
	assert.Equal(t, "2024-03-15", f.Date)
	assert.Equal(t, "Pune", f.Place)
	assert.Equal(t, "Maharashtra", f.State)
	assert.ElementsMatch(t,
		[]string{"invoice_no", "gstin_no", "grand_total", "total_gst", "date", "place", "state"},
		filled)
}

func TestApplyTextFallbacksKeepsModelValues(t *testing.T) {
	f := InvoiceFields{
		InvoiceNo:  "MODEL-1",
		GstinNo:    "29ABCDE1234F1Z5",
		GrandTotal: "99.00",
		TotalGST:   "9.00",
		Date:       "2024-01-01",
		Place:      "Mysore",
		State:      "Karnataka",
	}
	filled := ApplyTextFallbacks(&f, sampleInvoiceText)
	assert.Empty(t, filled)
	assert.Equal(t, "MODEL-1", f.InvoiceNo)
	assert.Equal(t, "99.00", f.GrandTotal)
}

func TestApplyTextFallbacksTreatsNAAsMissing(t *testing.T) {
	f := InvoiceFields{InvoiceNo: "N/A", GrandTotal: "0"}
	filled := ApplyTextFallbacks(&f, sampleInvoiceText)
	assert.Contains(t, filled, "invoice_no")
	assert.Contains(t, filled, "grand_total")
	assert.Equal(t, "ST/2024/0042", f.InvoiceNo)
}

func TestSumGSTFromText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "explicit total wins",
			text: "CGST: 10.00\nSGST: 10.00\nTotal GST: 50.00",
			want: 50,
		},
		{
			name: "cgst plus sgst",
			text: "CGST @ 9%: 45.00\nSGST @ 9%: 45.00",
			want: 90,
		},
		{
			name: "igst only",
			text: "IGST @ 18%: 180.00",
			want: 180,
		},
		{
			name: "comma grouped",
			text: "Total Tax: 1,250.50",
			want: 1250.50,
		},
		{
			name: "nothing",
			text: "no taxes mentioned here",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SumGSTFromText(tt.text), 0.001)
		})
	}
}

package export

import "github.com/gstsuite/invoice-analyzer/internal/entity"

// Summary aggregates a set of invoices. TaxableAmount is the grand total
// net of GST.
type Summary struct {
	TotalInvoices   int     `json:"total_invoices"`
	TotalGrandTotal float64 `json:"total_grand_total"`
	TotalGSTAmount  float64 `json:"total_gst_amount"`
	TaxableAmount   float64 `json:"taxable_amount"`
}

func Summarize(invoices []*entity.Invoice) Summary {
	s := Summary{TotalInvoices: len(invoices)}
	for _, inv := range invoices {
		s.TotalGrandTotal += inv.GrandTotal
		s.TotalGSTAmount += inv.TotalGST
	}
	s.TaxableAmount = s.TotalGrandTotal - s.TotalGSTAmount
	return s
}

package billing

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// RenderPDF writes the bill as a single-page A4 PDF.
func RenderPDF(w io.Writer, bill *Bill) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(bill.InvoiceNo, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "TAX INVOICE", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, bill.SellerName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, "GSTIN: "+bill.GSTIN, "", 1, "L", false, 0, "")
	if bill.Place != "" || bill.State != "" {
		pdf.CellFormat(0, 5, joinNonEmpty(bill.Place, bill.State), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.CellFormat(95, 5, "Invoice No: "+bill.InvoiceNo, "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, "Date: "+bill.Date.Format("02-01-2006"), "", 1, "R", false, 0, "")
	if bill.BuyerName != "" {
		pdf.CellFormat(0, 5, "Billed To: "+bill.BuyerName, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// items table
	head := []struct {
		label string
		width float64
		align string
	}{
		{"Item", 58, "L"},
		{"HSN", 22, "C"},
		{"Qty", 14, "C"},
		{"Rate", 24, "R"},
		{"GST %", 16, "C"},
		{"GST Amt", 26, "R"},
		{"Amount", 30, "R"},
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range head {
		pdf.CellFormat(h.width, 7, h.label, "1", 0, h.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range bill.Items {
		pdf.CellFormat(head[0].width, 6, it.ItemName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(head[1].width, 6, it.HSNCode, "1", 0, "C", false, 0, "")
		pdf.CellFormat(head[2].width, 6, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(head[3].width, 6, it.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(head[4].width, 6, it.GSTRate.StringFixed(1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(head[5].width, 6, it.GSTAmount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(head[6].width, 6, it.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// totals block, right-aligned under the table
	labelW := head[0].width + head[1].width + head[2].width + head[3].width + head[4].width
	valueW := head[5].width + head[6].width
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(labelW, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 7, bill.Subtotal.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.CellFormat(labelW, 7, "Total GST", "", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 7, bill.TotalGST.StringFixed(2), "1", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelW, 8, "Grand Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 8, bill.GrandTotal.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 5, "This is a computer generated invoice.", "", 1, "C", false, 0, "")

	return pdf.Output(w)
}

func joinNonEmpty(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += p
	}
	return out
}

package llm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gstsuite/invoice-analyzer/constants"
)

// Direct pattern recovery for critical fields the model missed. The raw
// invoice text is usually noisy OCR output, so every pattern is anchored on
// a printed label rather than position.
var (
	reInvoiceNo = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Invoice No\.?\s*:?\s*([A-Z0-9/\-]+)`),
		regexp.MustCompile(`(?i)Invoice Number\s*:?\s*([A-Z0-9/\-]+)`),
		regexp.MustCompile(`(?i)Bill No\.?\s*:?\s*([A-Z0-9/\-]+)`),
		regexp.MustCompile(`(?i)Inv\.?\s*No\.?\s*:?\s*([A-Z0-9/\-]+)`),
	}
	reGSTIN = regexp.MustCompile(`[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]`)

	reGrandTotal = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Grand Total\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`),
		regexp.MustCompile(`(?i)Total Amount\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`),
		regexp.MustCompile(`(?i)Amount Payable\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`),
		regexp.MustCompile(`(?i)Net Amount\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`),
	}

	reDateLabel = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Invoice Date\s*:?\s*(\d{2}[-/]\d{2}[-/]\d{4})`),
		regexp.MustCompile(`(?i)Bill Date\s*:?\s*(\d{2}[-/]\d{2}[-/]\d{4})`),
		regexp.MustCompile(`(?i)Date\s*:?\s*(\d{2}[-/]\d{2}[-/]\d{4})`),
	}

	rePlace = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Place of Supply\s*:?\s*([A-Za-z ]+)`),
		regexp.MustCompile(`(?i)Delivery At\s*:?\s*([A-Za-z ]+)`),
		regexp.MustCompile(`(?i)City\s*:?\s*([A-Za-z ]+)`),
	}

	reTotalGST = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total GST\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`),
		regexp.MustCompile(`(?i)Total Tax\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`),
		regexp.MustCompile(`(?i)GST Total\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`),
	}
	reCGST = regexp.MustCompile(`(?i)CGST\s*@?\s*[0-9.%]*\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`)
	reSGST = regexp.MustCompile(`(?i)SGST\s*@?\s*[0-9.%]*\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`)
	reIGST = regexp.MustCompile(`(?i)IGST\s*@?\s*[0-9.%]*\s*:?\s*[₹\s]*([0-9,]+\.?[0-9]*)`)
)

// ApplyTextFallbacks fills fields the model left empty using label patterns
// on the raw text. Returns the names of fields it recovered.
func ApplyTextFallbacks(f *InvoiceFields, text string) []string {
	var filled []string

	if missing(f.InvoiceNo) {
		for _, re := range reInvoiceNo {
			if m := re.FindStringSubmatch(text); m != nil {
				f.InvoiceNo = strings.TrimSpace(m[1])
				filled = append(filled, "invoice_no")
				break
			}
		}
	}

	if missing(f.GstinNo) {
		if m := reGSTIN.FindString(text); m != "" {
			f.GstinNo = m
			filled = append(filled, "gstin_no")
		}
	}

	if missingAmount(f.GrandTotal) {
		for _, re := range reGrandTotal {
			if m := re.FindStringSubmatch(text); m != nil {
				if v, err := parseDecimal(strings.ReplaceAll(m[1], ",", "")); err == nil {
					f.GrandTotal = fmt.Sprintf("%.2f", v)
					filled = append(filled, "grand_total")
					break
				}
			}
		}
	}

	if missingAmount(f.TotalGST) {
		if gst := SumGSTFromText(text); gst > 0 {
			f.TotalGST = fmt.Sprintf("%.2f", gst)
			filled = append(filled, "total_gst")
		}
	}

	if missing(f.Date) {
		for _, re := range reDateLabel {
			if m := re.FindStringSubmatch(text); m != nil {
				if d, err := NormalizeDate(m[1]); err == nil {
					f.Date = d
					filled = append(filled, "date")
					break
				}
			}
		}
	}

	if missing(f.Place) {
		for _, re := range rePlace {
			if m := re.FindStringSubmatch(text); m != nil {
				f.Place = strings.TrimSpace(m[1])
				filled = append(filled, "place")
				break
			}
		}
	}

	if missing(f.State) {
		lower := strings.ToLower(text)
		for _, state := range constants.IndianStates {
			if strings.Contains(lower, strings.ToLower(state)) {
				f.State = state
				filled = append(filled, "state")
				break
			}
		}
	}

	return filled
}

// SumGSTFromText recovers the total GST amount from invoice text. It prefers
// an explicit total, then CGST+SGST, then IGST.
func SumGSTFromText(text string) float64 {
	var total float64
	for _, re := range reTotalGST {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v, err := parseDecimal(strings.ReplaceAll(m[1], ",", "")); err == nil {
				total += v
			}
		}
	}
	if total > 0 {
		return total
	}

	for _, re := range []*regexp.Regexp{reCGST, reSGST} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if v, err := parseDecimal(strings.ReplaceAll(m[1], ",", "")); err == nil {
				total += v
			}
		}
	}
	if total > 0 {
		return total
	}

	for _, m := range reIGST.FindAllStringSubmatch(text, -1) {
		if v, err := parseDecimal(strings.ReplaceAll(m[1], ",", "")); err == nil {
			total += v
		}
	}
	return total
}

func missing(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "N/A")
}

func missingAmount(s string) bool {
	if missing(s) {
		return true
	}
	v, err := parseDecimal(s)
	return err != nil || v == 0
}

func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"02-01-06",
	"01-02-2006", // US-style, last resort before text months
	"02-Jan-2006",
	"02-Jan-06",
	"2-Jan-2006",
	"02-January-2006",
	"Jan-02-2006",
	"January-02-2006",
	"2006-Jan-02",
}

// NormalizeDate converts the date formats seen on Indian invoices
// (DD-MM-YYYY, DD/MM/YYYY, "02 Jan 2006", …) to YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	// collapse separators so one layout list covers / . and space variants
	s = strings.NewReplacer("/", "-", ".", "-", ",", "", " ", "-").Replace(s)
	s = strings.Trim(s, "-")

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %q", s)
}

package llm

import (
	"strings"
)

// BuildSystemPrompt composes the system message with GST-specific field rules
// and strict-but-practical formatting rules.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a GST invoice parser for Indian tax invoices. Return ONLY JSON that matches the provided JSON Schema.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"All money amounts are plain decimal strings without currency symbols or thousands separators.",
		"'gstin_no' is the seller's 15-character GSTIN (2 digits, 5 letters, 4 digits, 1 letter, 1 alphanumeric, 'Z', 1 alphanumeric). Omit it if not visible.",
		"'grand_total' is the final amount payable including all taxes.",
		"'total_gst' is the sum of all GST amounts: CGST + SGST, or IGST where the invoice is inter-state.",
		"'place' is the place of supply or delivery city; 'state' is the Indian state name.",
		"List every visible line item under 'items' with its name, HSN code if printed, quantity, unit price, line amount and GST rate percent.",
		"Do not invent values. If a field is not present, omit it.",
		"Never output null.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the filename hint and the extracted invoice text.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder
	if filename := strings.TrimSpace(req.FilenameHint); filename != "" {
		b.WriteString("Filename: ")
		b.WriteString(filename)
		b.WriteString("\n")
	}

	text := strings.TrimSpace(req.OCRText)
	b.WriteString("\nInvoice text (first ~6k chars):\n")
	if len(text) > 6000 {
		b.WriteString(text[:6000])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(text)
	}
	return b.String()
}

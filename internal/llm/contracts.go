package llm

import (
	"context"
	"errors"
)

// InvoiceItem is one line item as returned by the model.
type InvoiceItem struct {
	ItemName  string  `json:"item_name"`
	HSNCode   string  `json:"hsn_code,omitempty"`
	Quantity  float64 `json:"quantity"`
	UnitPrice string  `json:"unit_price,omitempty"` // decimal
	Amount    string  `json:"amount"`               // decimal
	GSTRate   float64 `json:"gst_rate,omitempty"`   // percent
}

// InvoiceFields is the normalized shape we want from the LLM.
type InvoiceFields struct {
	InvoiceNo       string        `json:"invoice_no"`
	GstinNo         string        `json:"gstin_no,omitempty"` // 15-char GSTIN
	SellerName      string        `json:"seller_name"`
	CustomerName    string        `json:"customer_name,omitempty"`
	Place           string        `json:"place,omitempty"`
	State           string        `json:"state,omitempty"`
	Date            string        `json:"date"`                // YYYY-MM-DD
	GrandTotal      string        `json:"grand_total"`         // decimal
	TotalGST        string        `json:"total_gst,omitempty"` // decimal
	Items           []InvoiceItem `json:"items,omitempty"`
	ModelConfidence float32       `json:"confidence,omitempty"` // optional (0..1)
}

type ExtractRequest struct {
	OCRText      string
	FilenameHint string

	PrepConfidence float32
	FilePath       string
}

// FieldExtractor is the interface our pipeline depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (InvoiceFields, []byte /*rawJSON*/, error)
}

// Failure classes for extraction. Wrapped by the client so callers can
// decide between retry, fail-fast and surfacing to the user.
var (
	ErrTimeout   = errors.New("extraction timed out")
	ErrQuota     = errors.New("model quota exhausted")
	ErrAuth      = errors.New("model authentication rejected")
	ErrMalformed = errors.New("malformed model response")
)

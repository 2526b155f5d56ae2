package entity

import (
	"github.com/google/uuid"
)

// LineItem represents one invoice line for data transfer between layers.
type LineItem struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	ItemName  string    `json:"item_name"`
	HSNCode   *string   `json:"hsn_code,omitempty"`
	Quantity  float64   `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
	Amount    float64   `json:"amount"`
	GSTRate   *float64  `json:"gst_rate,omitempty"`
}

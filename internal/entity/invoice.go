package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents an extracted invoice for data transfer between layers.
type Invoice struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	FileID       *uuid.UUID `json:"file_id,omitempty"`
	Filename     string     `json:"filename"`
	InvoiceNo    string     `json:"invoice_no"`
	GstinNo      *string    `json:"gstin_no,omitempty"`
	SellerName   string     `json:"seller_name"`
	CustomerName *string    `json:"customer_name,omitempty"`
	Place        *string    `json:"place,omitempty"`
	State        *string    `json:"state,omitempty"`
	InvoiceDate  *time.Time `json:"invoice_date,omitempty"`
	GrandTotal   float64    `json:"grand_total"`
	TotalGST     float64    `json:"total_gst"`
	Status       string     `json:"status"`
	ExtractedAt  *time.Time `json:"extracted_at,omitempty"`
	Items        []LineItem `json:"items,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

package entity

// HSNEntry represents one row of the HSN/GST reference table.
type HSNEntry struct {
	ID       int     `json:"id"`
	HSNCode  string  `json:"hsn_code"`
	Category string  `json:"category"`
	ItemName string  `json:"item_name"`
	GSTRate  float64 `json:"gst_rate"`
}

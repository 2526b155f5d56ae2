package llm

// BuildInvoiceJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to the model as a structured output constraint and also use it locally
// to validate the response.
func BuildInvoiceJSONSchema() map[string]any {
	itemProps := map[string]any{
		"item_name":  map[string]any{"type": "string", "minLength": 1},
		"hsn_code":   map[string]any{"type": "string"},
		"quantity":   map[string]any{"type": "number", "minimum": 0.0},
		"unit_price": decimalProp(),
		"amount":     decimalProp(),
		"gst_rate":   map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
	}

	props := map[string]any{
		"invoice_no":    map[string]any{"type": "string", "minLength": 1},
		"gstin_no":      map[string]any{"type": "string", "pattern": `^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`},
		"seller_name":   map[string]any{"type": "string", "minLength": 1},
		"customer_name": map[string]any{"type": "string"},
		"place":         map[string]any{"type": "string"},
		"state":         map[string]any{"type": "string"},
		"date":          map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"grand_total":   decimalProp(),
		"total_gst":     decimalProp(),
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           itemProps,
				"required":             []string{"item_name", "amount"},
			},
		},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	required := []string{"invoice_no", "seller_name", "date", "grand_total"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
}

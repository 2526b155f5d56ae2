package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain json", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around object", in: "Here you go: {\"a\":1} Hope that helps!", want: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestSanitizeOptionalFields(t *testing.T) {
	in := []byte(`{
		"invoice_no": "INV-1",
		"seller_name": "Shree Traders",
		"gstin_no": "27aapfu0939f1zv",
		"customer_name": "  ",
		"place": "N/A",
		"state": "Maharashtra",
		"date": "15/03/2024",
		"grand_total": 2520,
		"total_gst": "₹1,250.50",
		"items": [
			{"item_name": " Rice Bag ", "hsn_code": 1804, "amount": "2,400.00"},
			{"item_name": "", "amount": "1.00"},
			{"item_name": "Salt", "amount": "N/A"}
		]
	}`)

	out, dropped, err := SanitizeOptionalFields(in)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))

	assert.Equal(t, "27AAPFU0939F1ZV", m["gstin_no"])
	assert.Equal(t, "2024-03-15", m["date"])
	assert.Equal(t, "2520.00", m["grand_total"])
	assert.Equal(t, "1250.50", m["total_gst"])
	assert.Equal(t, "Maharashtra", m["state"])
	assert.NotContains(t, m, "customer_name")
	assert.NotContains(t, m, "place")

	items := m["items"].([]any)
	require.Len(t, items, 2)
	first := items[0].(map[string]any)
	assert.Equal(t, "Rice Bag", first["item_name"])
	assert.Equal(t, "1804", first["hsn_code"])
	assert.Equal(t, "2400.00", first["amount"])
	second := items[1].(map[string]any)
	assert.Equal(t, "Salt", second["item_name"])
	assert.NotContains(t, second, "amount")

	assert.Contains(t, dropped, "customer_name")
	assert.Contains(t, dropped, "place")
	assert.Contains(t, dropped, "items(unnamed)")
	assert.Contains(t, dropped, "items.amount")
}

func TestSanitizeDropsBadGSTIN(t *testing.T) {
	out, dropped, err := SanitizeOptionalFields([]byte(`{"gstin_no": "12345"}`))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	assert.NotContains(t, m, "gstin_no")
	assert.Contains(t, dropped, "gstin_no")
}

func TestSanitizedOutputValidates(t *testing.T) {
	in := []byte(`{
		"invoice_no": "INV-7",
		"seller_name": "Test Seller",
		"date": "01/01/2024",
		"grand_total": 100.5,
		"total_gst": "9",
		"items": [{"item_name": "Soap", "amount": 100.5}]
	}`)
	out, _, err := SanitizeOptionalFields(in)
	require.NoError(t, err)
	require.NoError(t, ValidateJSONAgainstSchema(BuildInvoiceJSONSchema(), out))
}

package billing

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

type fakeCatalog map[string]entity.HSNEntry

func (c fakeCatalog) Resolve(name string) (entity.HSNEntry, bool) {
	e, ok := c[name]
	return e, ok
}

var testCatalog = fakeCatalog{
	"Rice":  {HSNCode: "1006", Category: "Grocery", ItemName: "Rice", GSTRate: 5},
	"Soap":  {HSNCode: "3401", Category: "Toiletries", ItemName: "Soap", GSTRate: 18},
	"Sugar": {HSNCode: "1701", Category: "Grocery", ItemName: "Sugar", GSTRate: 5},
}

func price(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestBuildBillTotals(t *testing.T) {
	svc := NewService(testCatalog, nil)

	bill, err := svc.Build(BuildRequest{
		SellerName: "Shree Traders",
		BuyerName:  "A Customer",
		Date:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Items: []ItemRequest{
			{ItemName: "Rice", Quantity: 2, UnitPrice: price("1200.00")},
			{ItemName: "Soap", Quantity: 3, UnitPrice: price("45.50")},
		},
	})
	require.NoError(t, err)
	require.Len(t, bill.Items, 2)

	// rice: 2400.00 @5% = 120.00; soap: 136.50 @18% = 24.57
	assert.Equal(t, "2400.00", bill.Items[0].Amount.StringFixed(2))
	assert.Equal(t, "120.00", bill.Items[0].GSTAmount.StringFixed(2))
	assert.Equal(t, "136.50", bill.Items[1].Amount.StringFixed(2))
	assert.Equal(t, "24.57", bill.Items[1].GSTAmount.StringFixed(2))

	assert.Equal(t, "2536.50", bill.Subtotal.StringFixed(2))
	assert.Equal(t, "144.57", bill.TotalGST.StringFixed(2))
	assert.Equal(t, "2681.07", bill.GrandTotal.StringFixed(2))

	assert.Equal(t, "1006", bill.Items[0].HSNCode)
	assert.Regexp(t, `^INV/2024/\d{4}$`, bill.InvoiceNo)
	assert.Len(t, bill.GSTIN, 15, "placeholder GSTIN generated when none given")
}

func TestBuildBillKeepsProvidedGSTIN(t *testing.T) {
	svc := NewService(testCatalog, nil)
	bill, err := svc.Build(BuildRequest{
		SellerName: "Shree Traders",
		GSTIN:      "27AAPFU0939F1ZV",
		Items:      []ItemRequest{{ItemName: "Rice", Quantity: 1, UnitPrice: price("100")}},
	})
	require.NoError(t, err)
	assert.Equal(t, "27AAPFU0939F1ZV", bill.GSTIN)
}

func TestBuildBillErrors(t *testing.T) {
	svc := NewService(testCatalog, nil)
	tests := []struct {
		name string
		req  BuildRequest
	}{
		{
			name: "no items",
			req:  BuildRequest{SellerName: "S"},
		},
		{
			name: "no seller",
			req: BuildRequest{
				Items: []ItemRequest{{ItemName: "Rice", Quantity: 1, UnitPrice: price("10")}},
			},
		},
		{
			name: "unknown item",
			req: BuildRequest{
				SellerName: "S",
				Items:      []ItemRequest{{ItemName: "Plutonium", Quantity: 1, UnitPrice: price("10")}},
			},
		},
		{
			name: "zero quantity",
			req: BuildRequest{
				SellerName: "S",
				Items:      []ItemRequest{{ItemName: "Rice", Quantity: 0, UnitPrice: price("10")}},
			},
		},
		{
			name: "negative price",
			req: BuildRequest{
				SellerName: "S",
				Items:      []ItemRequest{{ItemName: "Rice", Quantity: 1, UnitPrice: price("-10")}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Build(tt.req)
			assert.Error(t, err)
		})
	}
}

func TestRenderPDFProducesDocument(t *testing.T) {
	svc := NewService(testCatalog, nil)
	bill, err := svc.Build(BuildRequest{
		SellerName: "Shree Traders",
		Place:      "Pune",
		State:      "Maharashtra",
		Items:      []ItemRequest{{ItemName: "Sugar", Quantity: 5, UnitPrice: price("42.00")}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderPDF(&buf, bill))
	out := buf.Bytes()
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

package billing

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

// ItemRequest is one requested bill line: a reference item plus quantity.
type ItemRequest struct {
	ItemName  string
	Quantity  int
	UnitPrice decimal.Decimal
}

// BuildRequest carries everything needed to assemble a bill.
type BuildRequest struct {
	SellerName string
	BuyerName  string
	Place      string
	State      string
	GSTIN      string // generated when empty
	Date       time.Time
	Items      []ItemRequest
}

// BillItem is a priced bill line with its GST share.
type BillItem struct {
	ItemName  string
	HSNCode   string
	GSTRate   decimal.Decimal // percent
	Quantity  int
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal // quantity * unit price
	GSTAmount decimal.Decimal
}

// Bill is a fully computed invoice ready for rendering.
type Bill struct {
	InvoiceNo  string
	GSTIN      string
	SellerName string
	BuyerName  string
	Place      string
	State      string
	Date       time.Time
	Items      []BillItem
	Subtotal   decimal.Decimal
	TotalGST   decimal.Decimal
	GrandTotal decimal.Decimal
}

// Catalog resolves item names to their reference entry.
type Catalog interface {
	Resolve(description string) (entity.HSNEntry, bool)
}

type Service struct {
	catalog Catalog
	log     *slog.Logger
}

func NewService(catalog Catalog, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{catalog: catalog, log: logger}
}

var hundred = decimal.NewFromInt(100)

// Build computes a bill. Every item must resolve against the reference
// table; amounts round half-up to two places at each line.
func (s *Service) Build(req BuildRequest) (*Bill, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("bill has no items")
	}
	if req.SellerName == "" {
		return nil, fmt.Errorf("seller name is required")
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	bill := &Bill{
		InvoiceNo:  GenerateInvoiceNumber(date),
		GSTIN:      req.GSTIN,
		SellerName: req.SellerName,
		BuyerName:  req.BuyerName,
		Place:      req.Place,
		State:      req.State,
		Date:       date,
	}
	if bill.GSTIN == "" {
		bill.GSTIN = GenerateGSTIN()
	}

	subtotal := decimal.Zero
	totalGST := decimal.Zero
	for _, ir := range req.Items {
		if ir.Quantity <= 0 {
			return nil, fmt.Errorf("item %q: quantity must be positive", ir.ItemName)
		}
		if ir.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("item %q: negative unit price", ir.ItemName)
		}
		ref, ok := s.catalog.Resolve(ir.ItemName)
		if !ok {
			return nil, fmt.Errorf("item %q: not in reference table", ir.ItemName)
		}

		rate := decimal.NewFromFloat(ref.GSTRate)
		amount := ir.UnitPrice.Mul(decimal.NewFromInt(int64(ir.Quantity))).Round(2)
		gst := amount.Mul(rate).Div(hundred).Round(2)

		bill.Items = append(bill.Items, BillItem{
			ItemName:  ref.ItemName,
			HSNCode:   ref.HSNCode,
			GSTRate:   rate,
			Quantity:  ir.Quantity,
			UnitPrice: ir.UnitPrice,
			Amount:    amount,
			GSTAmount: gst,
		})
		subtotal = subtotal.Add(amount)
		totalGST = totalGST.Add(gst)
	}

	bill.Subtotal = subtotal
	bill.TotalGST = totalGST
	bill.GrandTotal = subtotal.Add(totalGST)

	s.log.Info("bill assembled",
		"invoice_no", bill.InvoiceNo, "items", len(bill.Items),
		"grand_total", bill.GrandTotal.StringFixed(2))
	return bill, nil
}

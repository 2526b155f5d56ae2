package server

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/gstsuite/invoice-analyzer/internal/billing"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

func (s *Server) showBillBuilder(c *gin.Context) {
	cats := s.catalog.Categories()
	items := make(map[string][]entity.HSNEntry, len(cats))
	for _, cat := range cats {
		items[cat] = s.catalog.ItemsInCategory(cat)
	}
	c.HTML(http.StatusOK, "bill.html", gin.H{
		"Categories": cats,
		"Items":      items,
	})
}

// downloadBillPDF assembles a bill from the posted rows and streams the
// rendered PDF back as a download.
func (s *Server) downloadBillPDF(c *gin.Context) {
	req := billing.BuildRequest{
		SellerName: c.PostForm("seller_name"),
		BuyerName:  c.PostForm("buyer_name"),
		Place:      c.PostForm("place"),
		State:      c.PostForm("state"),
		GSTIN:      c.PostForm("gstin"),
	}

	names := c.PostFormArray("item_name")
	quantities := c.PostFormArray("quantity")
	prices := c.PostFormArray("unit_price")
	for i, name := range names {
		if name == "" {
			continue
		}
		qty := 1
		if i < len(quantities) {
			if n, err := strconv.Atoi(quantities[i]); err == nil {
				qty = n
			}
		}
		price := decimal.Zero
		if i < len(prices) {
			if p, err := decimal.NewFromString(prices[i]); err == nil {
				price = p
			}
		}
		req.Items = append(req.Items, billing.ItemRequest{
			ItemName:  name,
			Quantity:  qty,
			UnitPrice: price,
		})
	}

	bill, err := s.billing.Build(req)
	if err != nil {
		s.showBillBuilderError(c, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := billing.RenderPDF(&buf, bill); err != nil {
		s.log.Error("bill pdf render failed", "invoice_no", bill.InvoiceNo, "err", err)
		c.String(http.StatusInternalServerError, "could not render PDF")
		return
	}
	serveDownload(c, buf.Bytes(), "application/pdf", "bill", "pdf")
}

func (s *Server) showBillBuilderError(c *gin.Context, msg string) {
	cats := s.catalog.Categories()
	items := make(map[string][]entity.HSNEntry, len(cats))
	for _, cat := range cats {
		items[cat] = s.catalog.ItemsInCategory(cat)
	}
	c.HTML(http.StatusBadRequest, "bill.html", gin.H{
		"Categories": cats,
		"Items":      items,
		"Error":      msg,
	})
}

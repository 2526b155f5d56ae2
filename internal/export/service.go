package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/gstsuite/invoice-analyzer/internal/entity"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

var invoiceHeaders = []string{
	"Filename",
	"Invoice No",
	"GSTIN",
	"Seller",
	"Customer",
	"Place",
	"State",
	"Date",
	"Grand Total",
	"Total GST",
	"Status",
}

// Service produces CSV, JSON and XLSX exports of a user's invoices.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// List returns the invoices in the date window together with their summary.
// If only from is provided the window runs from..today; if only to, from the
// beginning; if neither, every invoice for the user.
func (s *Service) List(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.Invoice, Summary, error) {
	fromDate, toDate := normalizeWindow(from, to)
	invs, err := s.invoices.ListByUser(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, Summary{}, fmt.Errorf("query invoices: %w", err)
	}
	return invs, Summarize(invs), nil
}

// ExportCSV writes the invoice table followed by a summary block.
func (s *Service) ExportCSV(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()
	invs, sum, err := s.List(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(invoiceHeaders); err != nil {
		return nil, err
	}
	for _, inv := range invs {
		if err := w.Write(csvRow(inv)); err != nil {
			return nil, err
		}
	}
	_ = w.Write([]string{})
	_ = w.Write([]string{"Total Invoices", strconv.Itoa(sum.TotalInvoices)})
	_ = w.Write([]string{"Total Grand Total", money(sum.TotalGrandTotal)})
	_ = w.Write([]string{"Total GST Amount", money(sum.TotalGSTAmount)})
	_ = w.Write([]string{"Taxable Amount", money(sum.TaxableAmount)})
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"user_id", userID, "rows", len(invs), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

// ExportJSON returns the invoices (with line items) and the summary.
func (s *Service) ExportJSON(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	invs, sum, err := s.List(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	payload := struct {
		Invoices []*entity.Invoice `json:"invoices"`
		Summary  Summary           `json:"summary"`
	}{Invoices: invs, Summary: sum}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json write: %w", err)
	}
	s.logger.Info("export.json.ok", "user_id", userID, "rows", len(invs))
	return b, nil
}

// ExportXLSX returns a workbook with an Invoices sheet and a Summary sheet.
func (s *Service) ExportXLSX(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()
	invs, sum, err := s.List(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range invoiceHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for r, inv := range invs {
		for c, v := range csvRow(inv) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "C", 20)
	_ = f.SetColWidth(sheet, "D", "E", 26)
	_ = f.SetColWidth(sheet, "F", "H", 14)
	_ = f.SetColWidth(sheet, "I", "J", 14)

	const sumSheet = "Summary"
	if _, err := f.NewSheet(sumSheet); err != nil {
		return nil, err
	}
	sumRows := [][]any{
		{"Total Invoices", sum.TotalInvoices},
		{"Total Grand Total", sum.TotalGrandTotal},
		{"Total GST Amount", sum.TotalGSTAmount},
		{"Taxable Amount", sum.TaxableAmount},
	}
	for r, row := range sumRows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			_ = f.SetCellValue(sumSheet, cell, v)
		}
	}
	_ = f.SetColWidth(sumSheet, "A", "A", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	s.logger.Info("export.xlsx.ok",
		"user_id", userID, "rows", len(invs), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func csvRow(inv *entity.Invoice) []string {
	date := ""
	if inv.InvoiceDate != nil {
		date = inv.InvoiceDate.Format("2006-01-02")
	}
	return []string{
		inv.Filename,
		inv.InvoiceNo,
		deref(inv.GstinNo),
		inv.SellerName,
		deref(inv.CustomerName),
		deref(inv.Place),
		deref(inv.State),
		date,
		money(inv.GrandTotal),
		money(inv.TotalGST),
		inv.Status,
	}
}

// normalizeWindow clamps dates to date-only UTC and fills the open end of
// a from-only window with today.
func normalizeWindow(from, to *time.Time) (*time.Time, *time.Time) {
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		now := time.Now().UTC()
		t := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	return fromDate, toDate
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

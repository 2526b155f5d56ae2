package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gstsuite/invoice-analyzer/internal/common"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

// fakeInvoices serves a fixed invoice list and records the date window.
type fakeInvoices struct {
	invoices []*entity.Invoice
	gotFrom  *time.Time
	gotTo    *time.Time
}

func (f *fakeInvoices) GetByID(context.Context, uuid.UUID) (*entity.Invoice, error) {
	return nil, common.ErrNotFound
}

func (f *fakeInvoices) ListByUser(_ context.Context, _ uuid.UUID, from, to *time.Time) ([]*entity.Invoice, error) {
	f.gotFrom, f.gotTo = from, to
	return f.invoices, nil
}

func (f *fakeInvoices) UpsertFromFields(context.Context, *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoices) CreateFailed(context.Context, uuid.UUID, *uuid.UUID, string) (*entity.Invoice, error) {
	return nil, nil
}

func (f *fakeInvoices) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func strPtr(s string) *string { return &s }

func sampleInvoices() []*entity.Invoice {
	d1 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	return []*entity.Invoice{
		{
			ID:         uuid.New(),
			Filename:   "march.pdf",
			InvoiceNo:  "ST/2024/0042",
			GstinNo:    strPtr("27AAPFU0939F1ZV"),
			SellerName: "Shree Traders",
			State:      strPtr("Maharashtra"),
			InvoiceDate: &d1,
			GrandTotal: 2520.00,
			TotalGST:   120.00,
			Status:     "SUCCESS",
		},
		{
			ID:         uuid.New(),
			Filename:   "scan.jpg",
			InvoiceNo:  "B-77",
			SellerName: "Quick Mart",
			GrandTotal: 480.00,
			TotalGST:   24.00,
			Status:     "SUCCESS",
		},
	}
}

func TestSummarize(t *testing.T) {
	sum := Summarize(sampleInvoices())
	assert.Equal(t, 2, sum.TotalInvoices)
	assert.InDelta(t, 3000.00, sum.TotalGrandTotal, 0.001)
	assert.InDelta(t, 144.00, sum.TotalGSTAmount, 0.001)
	assert.InDelta(t, 2856.00, sum.TaxableAmount, 0.001, "taxable is grand total net of GST")
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	assert.Equal(t, 0, sum.TotalInvoices)
	assert.Zero(t, sum.TotalGrandTotal)
}

func TestExportCSV(t *testing.T) {
	repo := &fakeInvoices{invoices: sampleInvoices()}
	svc := NewService(repo, nil)

	out, err := svc.ExportCSV(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(out))
	r.FieldsPerRecord = -1 // summary rows are shorter than the table
	rows, err := r.ReadAll()
	require.NoError(t, err)

	// header + 2 invoices + 4 summary rows (blank line is skipped by the reader)
	require.Len(t, rows, 7)
	assert.Equal(t, invoiceHeaders, rows[0])
	assert.Equal(t, "ST/2024/0042", rows[1][1])
	assert.Equal(t, "2024-03-15", rows[1][7])
	assert.Equal(t, "2520.00", rows[1][8])
	assert.Equal(t, "", rows[2][2]) // no GSTIN on the second invoice
	assert.Equal(t, []string{"Total Invoices", "2"}, rows[3])
	assert.Equal(t, []string{"Taxable Amount", "2856.00"}, rows[6])
}

func TestExportJSON(t *testing.T) {
	svc := NewService(&fakeInvoices{invoices: sampleInvoices()}, nil)

	out, err := svc.ExportJSON(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	var payload struct {
		Invoices []entity.Invoice `json:"invoices"`
		Summary  Summary          `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(out, &payload))
	assert.Len(t, payload.Invoices, 2)
	assert.Equal(t, 2, payload.Summary.TotalInvoices)
	assert.InDelta(t, 2856.00, payload.Summary.TaxableAmount, 0.001)
}

func TestExportXLSX(t *testing.T) {
	svc := NewService(&fakeInvoices{invoices: sampleInvoices()}, nil)

	out, err := svc.ExportXLSX(context.Background(), uuid.New(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "ST/2024/0042", rows[1][1])

	sumRows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.NotEmpty(t, sumRows)
	assert.Equal(t, "Total Invoices", sumRows[0][0])
}

func TestListWindowNormalization(t *testing.T) {
	repo := &fakeInvoices{}
	svc := NewService(repo, nil)

	from := time.Date(2024, 3, 1, 15, 30, 0, 0, time.Local)
	_, _, err := svc.List(context.Background(), uuid.New(), &from, nil)
	require.NoError(t, err)

	require.NotNil(t, repo.gotFrom)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *repo.gotFrom)
	require.NotNil(t, repo.gotTo, "open-ended from window is clamped to today")
}

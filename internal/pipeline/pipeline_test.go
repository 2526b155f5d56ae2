package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstsuite/invoice-analyzer/constants"
	"github.com/gstsuite/invoice-analyzer/internal/common"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
	"github.com/gstsuite/invoice-analyzer/internal/extract"
	"github.com/gstsuite/invoice-analyzer/internal/llm"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

// ---- fakes ----

type fakeFiles struct {
	rows map[uuid.UUID]*entity.InvoiceFile
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.InvoiceFile, error) {
	if r, ok := f.rows[id]; ok {
		return r, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeFiles) GetByUserAndHash(context.Context, uuid.UUID, []byte) (*entity.InvoiceFile, error) {
	return nil, common.ErrNotFound
}

func (f *fakeFiles) Create(_ context.Context, userID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, error) {
	row := &entity.InvoiceFile{
		ID: uuid.New(), UserID: userID, SourcePath: sourcePath,
		Filename: filename, FileExt: ext, FileSize: size,
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeFiles) UpsertByHash(ctx context.Context, userID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, bool, error) {
	row, err := f.Create(ctx, userID, sourcePath, filename, ext, size, hash, uploadedAt)
	return row, false, err
}

type fakeJobs struct {
	jobs  map[uuid.UUID]*entity.ExtractJob
	trail map[uuid.UUID][]string
}

func (f *fakeJobs) setStatus(id uuid.UUID, status constants.JobStatus) {
	st := string(status)
	f.jobs[id].Status = &st
	f.trail[id] = append(f.trail[id], st)
}

func (f *fakeJobs) Start(_ context.Context, fileID, userID uuid.UUID, format string, status constants.JobStatus) (*entity.ExtractJob, error) {
	job := &entity.ExtractJob{ID: uuid.New(), FileID: fileID, UserID: userID, Format: format}
	f.jobs[job.ID] = job
	f.setStatus(job.ID, status)
	return job, nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (*entity.ExtractJob, error) {
	if j, ok := f.jobs[id]; ok {
		return j, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeJobs) ListByUser(context.Context, uuid.UUID, int) ([]*entity.ExtractJob, error) {
	return nil, nil
}

func (f *fakeJobs) MarkRunning(_ context.Context, id uuid.UUID) error {
	f.setStatus(id, constants.JobStatusRunning)
	return nil
}

func (f *fakeJobs) FinishOCRSuccess(_ context.Context, id uuid.UUID, text, method string, conf float32) error {
	j := f.jobs[id]
	j.OCRText = &text
	j.ModelName = &method
	j.ExtractionConfidence = &conf
	f.setStatus(id, constants.JobStatusOCROK)
	return nil
}

func (f *fakeJobs) FinishParseSuccess(_ context.Context, id, invoiceID uuid.UUID, raw []byte, model string, _ map[string]any) error {
	j := f.jobs[id]
	j.InvoiceID = &invoiceID
	j.ExtractedJSON = raw
	j.ModelName = &model
	f.setStatus(id, constants.JobStatusLLMOK)
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, id uuid.UUID, msg string) error {
	f.jobs[id].ErrorMessage = &msg
	f.setStatus(id, constants.JobStatusFailed)
	return nil
}

// fakeInvoices keeps one row per source file, matching the repository
// contract: a successful re-extraction replaces the prior row and
// repeated failures reuse one FAILED row.
type fakeInvoices struct {
	byFile map[uuid.UUID]*entity.Invoice
}

func (f *fakeInvoices) withStatus(status constants.InvoiceStatus) []*entity.Invoice {
	var out []*entity.Invoice
	for _, inv := range f.byFile {
		if inv.Status == string(status) {
			out = append(out, inv)
		}
	}
	return out
}

func (f *fakeInvoices) GetByID(_ context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for _, inv := range f.byFile {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeInvoices) ListByUser(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range f.byFile {
		out = append(out, inv)
	}
	return out, nil
}

func (f *fakeInvoices) UpsertFromFields(_ context.Context, req *repository.CreateInvoiceRequest) (*entity.Invoice, error) {
	id := uuid.New()
	if prior, ok := f.byFile[req.File.ID]; ok {
		id = prior.ID
	}
	inv := &entity.Invoice{
		ID:         id,
		UserID:     req.File.UserID,
		Filename:   req.File.Filename,
		InvoiceNo:  req.Fields.InvoiceNo,
		SellerName: req.Fields.SellerName,
		Status:     string(constants.InvoiceStatusSuccess),
		Items:      req.Items,
	}
	f.byFile[req.File.ID] = inv
	return inv, nil
}

func (f *fakeInvoices) CreateFailed(_ context.Context, userID uuid.UUID, fileID *uuid.UUID, filename string) (*entity.Invoice, error) {
	if fileID != nil {
		if prior, ok := f.byFile[*fileID]; ok {
			prior.Status = string(constants.InvoiceStatusFailed)
			return prior, nil
		}
	}
	inv := &entity.Invoice{
		ID: uuid.New(), UserID: userID, FileID: fileID, Filename: filename,
		InvoiceNo: "N/A", SellerName: "N/A",
		Status: string(constants.InvoiceStatusFailed),
	}
	if fileID != nil {
		f.byFile[*fileID] = inv
	}
	return inv, nil
}

func (f *fakeInvoices) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fakeText struct {
	res extract.TextExtractionResult
	err error
}

func (f *fakeText) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return f.res, f.err
}

type fakeExtractor struct {
	fields llm.InvoiceFields
	err    error
	// failTimes limits err to the first N calls; 0 means every call fails
	// while err is set.
	failTimes int
	calls     int
}

func (f *fakeExtractor) ExtractFields(context.Context, llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	f.calls++
	if f.err != nil && (f.failTimes == 0 || f.calls <= f.failTimes) {
		return llm.InvoiceFields{}, nil, f.err
	}
	return f.fields, []byte(`{}`), nil
}

type fakeResolver map[string]entity.HSNEntry

func (r fakeResolver) Resolve(name string) (entity.HSNEntry, bool) {
	e, ok := r[name]
	return e, ok
}

// ---- wiring ----

type fixture struct {
	files    *fakeFiles
	jobs     *fakeJobs
	invoices *fakeInvoices
	proc     *Processor
	fileID   uuid.UUID
}

func newFixture(t *testing.T, text *fakeText, ex *fakeExtractor) *fixture {
	t.Helper()
	files := &fakeFiles{rows: map[uuid.UUID]*entity.InvoiceFile{}}
	jobs := &fakeJobs{jobs: map[uuid.UUID]*entity.ExtractJob{}, trail: map[uuid.UUID][]string{}}
	invoices := &fakeInvoices{byFile: map[uuid.UUID]*entity.Invoice{}}

	row, err := files.Create(context.Background(), uuid.New(), "/tmp/inv.pdf", "inv.pdf", "pdf", 1024, nil, time.Now())
	require.NoError(t, err)

	resolver := fakeResolver{
		"Rice Bag 25kg": {HSNCode: "1006", ItemName: "Rice Bag 25kg", GSTRate: 5},
	}

	ocr := NewOCRStage(files, jobs, text, nil)
	parse := NewParseStage(jobs, files, invoices, resolver, ex, nil, ParseStageConfig{ModelName: "test-model"})
	return &fixture{
		files:    files,
		jobs:     jobs,
		invoices: invoices,
		proc:     NewProcessor(ocr, parse, nil),
		fileID:   row.ID,
	}
}

func goodText() *fakeText {
	return &fakeText{res: extract.TextExtractionResult{
		Text:       "SHREE TRADERS\nInvoice No: ST/2024/0042\nGrand Total: 2520.00",
		Pages:      1,
		SourceType: "PDF",
		Method:     "pdf-text",
		Confidence: 0.9,
	}}
}

func goodFields() llm.InvoiceFields {
	return llm.InvoiceFields{
		InvoiceNo:  "ST/2024/0042",
		SellerName: "Shree Traders",
		Date:       "2024-03-15",
		GrandTotal: "2520.00",
		TotalGST:   "120.00",
		Items: []llm.InvoiceItem{
			{ItemName: "Rice Bag 25kg", Quantity: 2, Amount: "2400.00"},
		},
	}
}

// ---- tests ----

func TestProcessFileSinglePagePDF(t *testing.T) {
	fx := newFixture(t, goodText(), &fakeExtractor{fields: goodFields()})

	inv, jobID, err := fx.proc.ProcessFile(context.Background(), fx.fileID)
	require.NoError(t, err)

	// exactly one invoice with exactly one line item
	require.Len(t, fx.invoices.withStatus(constants.InvoiceStatusSuccess), 1)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, "ST/2024/0042", inv.InvoiceNo)

	item := inv.Items[0]
	assert.Equal(t, "Rice Bag 25kg", item.ItemName)
	require.NotNil(t, item.HSNCode, "reference table fills the missing HSN code")
	assert.Equal(t, "1006", *item.HSNCode)
	require.NotNil(t, item.GSTRate)
	assert.Equal(t, 5.0, *item.GSTRate)
	assert.InDelta(t, 1200.0, item.UnitPrice, 0.001, "unit price derived from amount/quantity")

	job := fx.jobs.jobs[jobID]
	require.NotNil(t, job.Status)
	assert.Equal(t, string(constants.JobStatusLLMOK), *job.Status)
	require.NotNil(t, job.InvoiceID)
	assert.Equal(t, inv.ID, *job.InvoiceID)
	assert.Equal(t, []string{
		string(constants.JobStatusQueued),
		string(constants.JobStatusRunning),
		string(constants.JobStatusOCROK),
		string(constants.JobStatusLLMOK),
	}, fx.jobs.trail[jobID])
}

func TestProcessFileOCRFailure(t *testing.T) {
	text := &fakeText{err: errors.New("tesseract exploded")}
	fx := newFixture(t, text, &fakeExtractor{fields: goodFields()})

	_, jobID, err := fx.proc.ProcessFile(context.Background(), fx.fileID)
	require.Error(t, err)

	job := fx.jobs.jobs[jobID]
	assert.Equal(t, string(constants.JobStatusFailed), *job.Status)
	assert.Empty(t, fx.invoices.withStatus(constants.InvoiceStatusSuccess))
}

func TestProcessFileLLMFailureLeavesFailedInvoice(t *testing.T) {
	fx := newFixture(t, goodText(), &fakeExtractor{err: llm.ErrQuota})

	_, jobID, err := fx.proc.ProcessFile(context.Background(), fx.fileID)
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrQuota)

	job := fx.jobs.jobs[jobID]
	assert.Equal(t, string(constants.JobStatusFailed), *job.Status)

	failed := fx.invoices.withStatus(constants.InvoiceStatusFailed)
	require.Len(t, failed, 1, "a FAILED row keeps the upload visible")
	assert.Equal(t, "inv.pdf", failed[0].Filename)
	assert.Empty(t, fx.invoices.withStatus(constants.InvoiceStatusSuccess))
}

func TestProcessFileSucceedsAfterRepeatedFailures(t *testing.T) {
	ex := &fakeExtractor{fields: goodFields(), err: llm.ErrQuota, failTimes: 2}
	fx := newFixture(t, goodText(), ex)

	for i := 0; i < 2; i++ {
		_, _, err := fx.proc.ProcessFile(context.Background(), fx.fileID)
		require.Error(t, err)
	}
	require.Len(t, fx.invoices.withStatus(constants.InvoiceStatusFailed), 1,
		"repeated failures collapse into one row per file")

	inv, _, err := fx.proc.ProcessFile(context.Background(), fx.fileID)
	require.NoError(t, err)
	assert.Equal(t, "ST/2024/0042", inv.InvoiceNo)
	assert.Len(t, fx.invoices.withStatus(constants.InvoiceStatusSuccess), 1)
	assert.Empty(t, fx.invoices.withStatus(constants.InvoiceStatusFailed),
		"the retry replaces the FAILED row")
}

func TestProcessFileUnknownItemStaysUnenriched(t *testing.T) {
	fields := goodFields()
	fields.Items = []llm.InvoiceItem{{ItemName: "Mystery Gadget", Quantity: 1, Amount: "99.00"}}
	fx := newFixture(t, goodText(), &fakeExtractor{fields: fields})

	inv, _, err := fx.proc.ProcessFile(context.Background(), fx.fileID)
	require.NoError(t, err)
	require.Len(t, inv.Items, 1)
	assert.Nil(t, inv.Items[0].HSNCode)
	assert.Nil(t, inv.Items[0].GSTRate)
}

func TestOCRStageRejectsUnsupportedFormat(t *testing.T) {
	fx := newFixture(t, goodText(), &fakeExtractor{fields: goodFields()})
	row, err := fx.files.Create(context.Background(), uuid.New(), "/tmp/x.docx", "x.docx", "docx", 10, nil, time.Now())
	require.NoError(t, err)

	_, _, err = fx.proc.ProcessFile(context.Background(), row.ID)
	assert.Error(t, err)
}

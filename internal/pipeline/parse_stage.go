package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/internal/entity"
	"github.com/gstsuite/invoice-analyzer/internal/llm"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

// ItemResolver maps a free-text item description to a reference entry.
type ItemResolver interface {
	Resolve(description string) (entity.HSNEntry, bool)
}

type ParseStageConfig struct {
	// MinConfidence is the model confidence below which the result is
	// logged for review. The invoice is still persisted.
	MinConfidence float32
	ModelName     string
	ModelParams   map[string]any
}

type ParseStage struct {
	JobsRepo     repository.ExtractJobRepository
	FilesRepo    repository.InvoiceFileRepository
	InvoicesRepo repository.InvoiceRepository
	Resolver     ItemResolver
	Extractor    llm.FieldExtractor
	Logger       *slog.Logger
	Cfg          ParseStageConfig
}

func NewParseStage(
	jobs repository.ExtractJobRepository,
	files repository.InvoiceFileRepository,
	invoices repository.InvoiceRepository,
	resolver ItemResolver,
	extractor llm.FieldExtractor,
	logger *slog.Logger,
	cfg ParseStageConfig,
) *ParseStage {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MinConfidence == 0 {
		cfg.MinConfidence = 0.60
	}
	return &ParseStage{
		JobsRepo:     jobs,
		FilesRepo:    files,
		InvoicesRepo: invoices,
		Resolver:     resolver,
		Extractor:    extractor,
		Logger:       logger,
		Cfg:          cfg,
	}
}

// Run takes a job that finished OCR, extracts structured fields and
// persists the invoice. A model failure marks the job FAILED and leaves
// a FAILED invoice row so the upload is visible in the list view.
func (p *ParseStage) Run(ctx context.Context, jobID uuid.UUID) (*entity.Invoice, error) {
	job, err := p.JobsRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job.OCRText == nil || *job.OCRText == "" {
		return nil, fmt.Errorf("job %s has no extracted text", jobID)
	}
	file, err := p.FilesRepo.GetByID(ctx, job.FileID)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req := llm.ExtractRequest{
		OCRText:      *job.OCRText,
		FilenameHint: file.Filename,
		FilePath:     file.SourcePath,
	}
	if job.ExtractionConfidence != nil {
		req.PrepConfidence = *job.ExtractionConfidence
	}

	fields, rawJSON, err := p.Extractor.ExtractFields(ctx, req)
	if err != nil {
		p.Logger.Error("field extraction failed", "job_id", jobID, "file_id", file.ID, "err", err)
		_ = p.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		fid := file.ID
		if _, ferr := p.InvoicesRepo.CreateFailed(ctx, file.UserID, &fid, file.Filename); ferr != nil {
			p.Logger.Error("failed-invoice row not written", "job_id", jobID, "err", ferr)
		}
		return nil, err
	}

	if applied := llm.ApplyTextFallbacks(&fields, *job.OCRText); len(applied) > 0 {
		p.Logger.Info("text fallbacks applied", "job_id", jobID, "fields", applied)
	}
	if fields.ModelConfidence > 0 && fields.ModelConfidence < p.Cfg.MinConfidence {
		p.Logger.Warn("low model confidence, flagging for review",
			"job_id", jobID, "confidence", fields.ModelConfidence)
	}

	items := p.enrichItems(fields.Items)

	inv, err := p.InvoicesRepo.UpsertFromFields(ctx, &repository.CreateInvoiceRequest{
		File:   file,
		JobID:  jobID,
		Fields: fields,
		Items:  items,
	})
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, jobID, err.Error())
		return nil, fmt.Errorf("persist invoice: %w", err)
	}

	if err := p.JobsRepo.FinishParseSuccess(ctx, jobID, inv.ID, rawJSON, p.Cfg.ModelName, p.Cfg.ModelParams); err != nil {
		return inv, err
	}
	return inv, nil
}

// enrichItems converts model items to persistable line items, filling in
// HSN code and GST rate from the reference table when the model left them
// blank.
func (p *ParseStage) enrichItems(items []llm.InvoiceItem) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		li := entity.LineItem{
			ItemName: it.ItemName,
			Quantity: it.Quantity,
		}
		if li.Quantity == 0 {
			li.Quantity = 1
		}
		if v, err := strconv.ParseFloat(it.Amount, 64); err == nil {
			li.Amount = v
		}
		if it.UnitPrice != "" {
			if v, err := strconv.ParseFloat(it.UnitPrice, 64); err == nil {
				li.UnitPrice = v
			}
		}
		if li.UnitPrice == 0 && li.Quantity > 0 {
			li.UnitPrice = li.Amount / li.Quantity
		}
		if it.HSNCode != "" {
			code := it.HSNCode
			li.HSNCode = &code
		}
		if it.GSTRate > 0 {
			rate := it.GSTRate
			li.GSTRate = &rate
		}

		if (li.HSNCode == nil || li.GSTRate == nil) && p.Resolver != nil {
			if ref, ok := p.Resolver.Resolve(it.ItemName); ok {
				if li.HSNCode == nil {
					code := ref.HSNCode
					li.HSNCode = &code
				}
				if li.GSTRate == nil {
					rate := ref.GSTRate
					li.GSTRate = &rate
				}
			}
		}
		out = append(out, li)
	}
	return out
}

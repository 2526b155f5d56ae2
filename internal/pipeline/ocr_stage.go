package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/constants"
	"github.com/gstsuite/invoice-analyzer/internal/extract"
	"github.com/gstsuite/invoice-analyzer/internal/ocr"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

type OCRStage struct {
	FilesRepo     repository.InvoiceFileRepository
	JobsRepo      repository.ExtractJobRepository
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewOCRStage(files repository.InvoiceFileRepository, jobs repository.ExtractJobRepository, tx extract.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{FilesRepo: files, JobsRepo: jobs, TextExtractor: tx, Logger: logger}
}

// Run starts an extract_job, extracts text, and persists it.
// Returns the job ID and the extraction summary. The parse stage is NOT called.
func (p *OCRStage) Run(ctx context.Context, fileID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	row, err := p.FilesRepo.GetByID(ctx, fileID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get file: %w", err)
	}

	if _, ok := constants.AllowedExtensions[constants.NormalizeExt(row.FileExt)]; !ok {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", row.FileExt)
	}
	format := constants.FormatForExt(row.FileExt)

	job, err := p.JobsRepo.Start(ctx, row.ID, row.UserID, format, constants.JobStatusQueued)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}
	if err := p.JobsRepo.MarkRunning(ctx, job.ID); err != nil {
		return job.ID, extract.TextExtractionResult{}, err
	}

	res, err := p.TextExtractor.Extract(ctx, row.SourcePath)
	if err != nil {
		_ = p.JobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if format == "IMAGE" && res.Confidence > 0 && res.Confidence < ocr.ImageConfidenceThreshold {
		p.Logger.Warn("image ocr confidence low",
			"file_id", fileID, "job_id", job.ID, "conf", res.Confidence)
	}

	if err := p.JobsRepo.FinishOCRSuccess(ctx, job.ID, res.Text, res.Method, res.Confidence); err != nil {
		return job.ID, res, err
	}

	return job.ID, res, nil
}

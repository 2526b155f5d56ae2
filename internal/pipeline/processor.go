package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

// Processor runs both stages for one uploaded file. Single uploads call
// ProcessFile synchronously; batch uploads go through the async queue,
// which calls the same method per file.
type Processor struct {
	ocr   *OCRStage
	parse *ParseStage
	log   *slog.Logger
}

func NewProcessor(ocr *OCRStage, parse *ParseStage, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{ocr: ocr, parse: parse, log: logger}
}

// ProcessFile extracts text from the stored file and parses it into an
// invoice. The returned job ID is valid even when parsing fails, so the
// caller can surface the job status.
func (p *Processor) ProcessFile(ctx context.Context, fileID uuid.UUID) (*entity.Invoice, uuid.UUID, error) {
	jobID, res, err := p.ocr.Run(ctx, fileID)
	if err != nil {
		p.log.Error("processor.ocr.failed", "file_id", fileID, "job_id", jobID, "err", err)
		return nil, jobID, err
	}
	p.log.Info("processor.ocr.ok",
		"file_id", fileID, "job_id", jobID,
		"method", res.Method, "pages", res.Pages, "chars", len(res.Text))

	inv, err := p.parse.Run(ctx, jobID)
	if err != nil {
		p.log.Error("processor.parse.failed", "file_id", fileID, "job_id", jobID, "err", err)
		return nil, jobID, err
	}
	p.log.Info("processor.parse.ok",
		"file_id", fileID, "job_id", jobID, "invoice_id", inv.ID, "invoice_no", inv.InvoiceNo)
	return inv, jobID, nil
}

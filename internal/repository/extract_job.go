package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/constants"
	"github.com/gstsuite/invoice-analyzer/gen/ent"
	entjob "github.com/gstsuite/invoice-analyzer/gen/ent/extractjob"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

type ExtractJobRepository interface {
	Start(ctx context.Context, fileID, userID uuid.UUID, format string, status constants.JobStatus) (*entity.ExtractJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ExtractJob, error)
	MarkRunning(ctx context.Context, jobID uuid.UUID) error
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, method string, confidence float32) error
	FinishParseSuccess(ctx context.Context, jobID, invoiceID uuid.UUID, rawJSON []byte, modelName string, modelParams map[string]any) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractJobRepository(entc *ent.Client, log *slog.Logger) ExtractJobRepository {
	return &extractJobRepo{ent: entc, log: log}
}

func (r *extractJobRepo) Start(ctx context.Context, fileID, userID uuid.UUID, format string, status constants.JobStatus) (*entity.ExtractJob, error) {
	job, err := r.ent.ExtractJob.
		Create().
		SetFileID(fileID).
		SetUserID(userID).
		SetFormat(format).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job start failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("extract_job started", "job_id", job.ID, "file_id", fileID, "format", format)
	return toExtractJob(job), nil
}

func (r *extractJobRepo) GetByID(ctx context.Context, jobID uuid.UUID) (*entity.ExtractJob, error) {
	job, err := r.ent.ExtractJob.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return toExtractJob(job), nil
}

func (r *extractJobRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ExtractJob, error) {
	q := r.ent.ExtractJob.Query().
		Where(entjob.UserID(userID)).
		Order(ent.Desc(entjob.FieldStartedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	jobs, err := q.All(ctx)
	if err != nil {
		r.log.Error("extract_job list failed", "user_id", userID, "err", err)
		return nil, err
	}
	out := make([]*entity.ExtractJob, len(jobs))
	for i, j := range jobs {
		out[i] = toExtractJob(j)
	}
	return out, nil
}

func (r *extractJobRepo) MarkRunning(ctx context.Context, jobID uuid.UUID) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job mark running failed", "job_id", jobID, "err", err)
	}
	return err
}

func (r *extractJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, method string, confidence float32) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetModelName(method).
		SetExtractionConfidence(confidence).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished stage 1 (OCR_OK)", "job_id", jobID, "method", method, "confidence", confidence)
	return nil
}

func (r *extractJobRepo) FinishParseSuccess(ctx context.Context, jobID, invoiceID uuid.UUID, rawJSON []byte, modelName string, modelParams map[string]any) error {
	var params []byte
	if modelParams != nil {
		if b, err := json.Marshal(modelParams); err == nil {
			params = b
		}
	}
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetInvoiceID(invoiceID).
		SetExtractedJSON(rawJSON).
		SetModelName(modelName).
		SetModelParams(params).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusLLMOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(LLM_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extract_job finished (LLM_OK)", "job_id", jobID, "invoice_id", invoiceID)
	return nil
}

func (r *extractJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extract_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extract_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

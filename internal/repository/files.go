package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/gen/ent"
	entfile "github.com/gstsuite/invoice-analyzer/gen/ent/invoicefile"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

type InvoiceFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceFile, error)
	GetByUserAndHash(ctx context.Context, userID uuid.UUID, hash []byte) (*entity.InvoiceFile, error)
	Create(ctx context.Context, userID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, error)
	UpsertByHash(ctx context.Context, userID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, bool, error)
}

type invoiceFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewInvoiceFileRepository(entc *ent.Client, logger *slog.Logger) InvoiceFileRepository {
	return &invoiceFileRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *invoiceFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceFile(row), nil
}

func (r *invoiceFileRepo) GetByUserAndHash(ctx context.Context, userID uuid.UUID, hash []byte) (*entity.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Query().
		Where(
			entfile.UserID(userID),
			entfile.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return toInvoiceFile(row), nil
}

func (r *invoiceFileRepo) Create(ctx context.Context, userID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, error) {
	row, err := r.ent.InvoiceFile.Create().
		SetUserID(userID).
		SetSourcePath(sourcePath).
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice file", "user_id", userID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, err
	}
	return toInvoiceFile(row), nil
}

func (r *invoiceFileRepo) UpsertByHash(ctx context.Context, userID uuid.UUID, sourcePath, filename, ext string, size int, hash []byte, uploadedAt time.Time) (*entity.InvoiceFile, bool, error) {
	if existing, err := r.GetByUserAndHash(ctx, userID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, userID, sourcePath, filename, ext, size, hash, uploadedAt)
	if err != nil {
		r.logger.Error("failed to upsert invoice file by hash", "user_id", userID, "source_path", sourcePath, "filename", filename, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

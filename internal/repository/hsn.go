package repository

import (
	"context"
	"log/slog"

	"github.com/gstsuite/invoice-analyzer/gen/ent"
	enthsn "github.com/gstsuite/invoice-analyzer/gen/ent/hsnentry"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

type HSNRepository interface {
	// BulkLoad replaces the reference table with the given entries and
	// returns the number of rows inserted.
	BulkLoad(ctx context.Context, entries []entity.HSNEntry) (int, error)
	ListAll(ctx context.Context) ([]entity.HSNEntry, error)
	// Count verifies the bulk load landed; item lookup happens in memory
	// through hsn.Matcher.
	Count(ctx context.Context) (int, error)
}

type hsnRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewHSNRepository(client *ent.Client, logger *slog.Logger) HSNRepository {
	return &hsnRepository{
		client: client,
		logger: logger,
	}
}

func (r *hsnRepository) BulkLoad(ctx context.Context, entries []entity.HSNEntry) (int, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.HSNEntry.Delete().Exec(ctx); err != nil {
		return 0, err
	}

	builders := make([]*ent.HSNEntryCreate, len(entries))
	for i, e := range entries {
		builders[i] = tx.HSNEntry.Create().
			SetHsnCode(e.HSNCode).
			SetCategory(e.Category).
			SetItemName(e.ItemName).
			SetGstRate(e.GSTRate)
	}
	rows, err := tx.HSNEntry.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("hsn bulk load failed", "rows", len(entries), "error", err)
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	r.logger.Info("hsn reference table loaded", "rows", len(rows))
	return len(rows), nil
}

func (r *hsnRepository) ListAll(ctx context.Context) ([]entity.HSNEntry, error) {
	rows, err := r.client.HSNEntry.Query().
		Order(ent.Asc(enthsn.FieldItemName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.HSNEntry, len(rows))
	for i, row := range rows {
		out[i] = *toHSNEntry(row)
	}
	return out, nil
}

func (r *hsnRepository) Count(ctx context.Context) (int, error) {
	return r.client.HSNEntry.Query().Count(ctx)
}

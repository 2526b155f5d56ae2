package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/constants"
	"github.com/gstsuite/invoice-analyzer/gen/ent"
	entinvoice "github.com/gstsuite/invoice-analyzer/gen/ent/invoice"
	entitem "github.com/gstsuite/invoice-analyzer/gen/ent/lineitem"
	"github.com/gstsuite/invoice-analyzer/internal/common"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
	"github.com/gstsuite/invoice-analyzer/internal/llm"
)

// CreateInvoiceRequest wraps parameters for persisting an extracted invoice.
type CreateInvoiceRequest struct {
	File   *entity.InvoiceFile
	JobID  uuid.UUID
	Fields llm.InvoiceFields
	// Items is the HSN-enriched line set; it replaces any previous items
	// for the same source file.
	Items []entity.LineItem
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListByUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error)
	UpsertFromFields(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error)
	CreateFailed(ctx context.Context, userID uuid.UUID, fileID *uuid.UUID, filename string) (*entity.Invoice, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Query().
		Where(entinvoice.ID(id)).
		WithItems().
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toInvoice(row), nil
}

func (r *invoiceRepository) ListByUser(ctx context.Context, userID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().
		Where(entinvoice.UserID(userID)).
		WithItems()
	if fromDate != nil {
		q = q.Where(entinvoice.InvoiceDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(entinvoice.InvoiceDateLTE(*toDate))
	}
	rows, err := q.Order(ent.Desc(entinvoice.FieldCreatedAt)).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = toInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) UpsertFromFields(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error) {
	f := req.Fields
	file := req.File

	grandTotal, err := parseMoney(f.GrandTotal)
	if err != nil {
		return nil, fmt.Errorf("grand_total: %w", err)
	}
	totalGST := 0.0
	if f.TotalGST != "" {
		if v, err := parseMoney(f.TotalGST); err == nil {
			totalGST = v
		}
	}

	var invoiceDate *time.Time
	if f.Date != "" {
		if t, err := time.ParseInLocation("2006-01-02", f.Date, time.UTC); err == nil {
			invoiceDate = &t
		}
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Re-extracting the same file replaces the previous invoice row. More
	// than one prior row can exist after repeated failures; the newest one
	// is updated and the rest are removed.
	prior, err := tx.Invoice.Query().
		Where(
			entinvoice.UserID(file.UserID),
			entinvoice.FileID(file.ID),
		).
		Order(ent.Desc(entinvoice.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	var existing *ent.Invoice
	if len(prior) > 0 {
		existing = prior[0]
		for _, stale := range prior[1:] {
			if _, err = tx.LineItem.Delete().Where(entitem.InvoiceID(stale.ID)).Exec(ctx); err != nil {
				return nil, err
			}
			if err = tx.Invoice.DeleteOneID(stale.ID).Exec(ctx); err != nil {
				return nil, err
			}
		}
	}
	switch {
	case existing != nil:
		if _, err = tx.LineItem.Delete().Where(entitem.InvoiceID(existing.ID)).Exec(ctx); err != nil {
			return nil, err
		}
		upd := tx.Invoice.UpdateOneID(existing.ID).
			SetInvoiceNo(f.InvoiceNo).
			SetSellerName(f.SellerName).
			SetGrandTotal(grandTotal).
			SetTotalGst(totalGST).
			SetStatus(string(constants.InvoiceStatusSuccess)).
			SetExtractedAt(time.Now()).
			SetNillableInvoiceDate(invoiceDate)
		if f.GstinNo != "" {
			upd = upd.SetGstinNo(f.GstinNo)
		}
		if f.CustomerName != "" {
			upd = upd.SetCustomerName(f.CustomerName)
		}
		if f.Place != "" {
			upd = upd.SetPlace(f.Place)
		}
		if f.State != "" {
			upd = upd.SetState(f.State)
		}
		if _, err = upd.Save(ctx); err != nil {
			return nil, err
		}
	default:
		create := tx.Invoice.Create().
			SetUserID(file.UserID).
			SetFileID(file.ID).
			SetFilename(file.Filename).
			SetInvoiceNo(f.InvoiceNo).
			SetSellerName(f.SellerName).
			SetGrandTotal(grandTotal).
			SetTotalGst(totalGST).
			SetStatus(string(constants.InvoiceStatusSuccess)).
			SetExtractedAt(time.Now()).
			SetNillableInvoiceDate(invoiceDate)
		if f.GstinNo != "" {
			create = create.SetGstinNo(f.GstinNo)
		}
		if f.CustomerName != "" {
			create = create.SetCustomerName(f.CustomerName)
		}
		if f.Place != "" {
			create = create.SetPlace(f.Place)
		}
		if f.State != "" {
			create = create.SetState(f.State)
		}
		existing, err = create.Save(ctx)
		if err != nil {
			return nil, err
		}
	}

	for _, item := range req.Items {
		ic := tx.LineItem.Create().
			SetInvoiceID(existing.ID).
			SetItemName(item.ItemName).
			SetQuantity(item.Quantity).
			SetUnitPrice(item.UnitPrice).
			SetAmount(item.Amount)
		if item.HSNCode != nil {
			ic = ic.SetHsnCode(*item.HSNCode)
		}
		if item.GSTRate != nil {
			ic = ic.SetGstRate(*item.GSTRate)
		}
		if _, err = ic.Save(ctx); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, existing.ID)
}

// CreateFailed records a failed extraction. Repeated failures for the
// same file reuse the existing row, so retries never pile up duplicates
// that would block a later successful upsert.
func (r *invoiceRepository) CreateFailed(ctx context.Context, userID uuid.UUID, fileID *uuid.UUID, filename string) (*entity.Invoice, error) {
	if fileID != nil {
		existing, err := r.client.Invoice.Query().
			Where(
				entinvoice.UserID(userID),
				entinvoice.FileID(*fileID),
			).
			Order(ent.Desc(entinvoice.FieldCreatedAt)).
			First(ctx)
		switch {
		case err == nil:
			row, uerr := r.client.Invoice.UpdateOneID(existing.ID).
				SetStatus(string(constants.InvoiceStatusFailed)).
				Save(ctx)
			if uerr != nil {
				r.logger.Error("failed to mark invoice row FAILED", "invoice_id", existing.ID, "error", uerr)
				return nil, uerr
			}
			return toInvoice(row), nil
		case !ent.IsNotFound(err):
			return nil, err
		}
	}

	create := r.client.Invoice.Create().
		SetUserID(userID).
		SetFilename(filename).
		SetInvoiceNo("N/A").
		SetSellerName("N/A").
		SetGrandTotal(0).
		SetTotalGst(0).
		SetStatus(string(constants.InvoiceStatusFailed))
	if fileID != nil {
		create = create.SetFileID(*fileID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create failed-invoice row", "user_id", userID, "filename", filename, "error", err)
		return nil, err
	}
	return toInvoice(row), nil
}

func (r *invoiceRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	n, err := tx.Invoice.Delete().
		Where(entinvoice.ID(id), entinvoice.UserID(userID)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		err = common.ErrNotFound
		return err
	}
	// explicit cleanup keeps SQLite honest when FK enforcement is off
	if _, err = tx.LineItem.Delete().Where(entitem.InvoiceID(id)).Exec(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

func parseMoney(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

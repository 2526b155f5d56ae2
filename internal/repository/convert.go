package repository

import (
	"github.com/gstsuite/invoice-analyzer/gen/ent"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

func toInvoice(e *ent.Invoice) *entity.Invoice {
	inv := &entity.Invoice{
		ID:           e.ID,
		UserID:       e.UserID,
		FileID:       e.FileID,
		Filename:     e.Filename,
		InvoiceNo:    e.InvoiceNo,
		GstinNo:      e.GstinNo,
		SellerName:   e.SellerName,
		CustomerName: e.CustomerName,
		Place:        e.Place,
		State:        e.State,
		InvoiceDate:  e.InvoiceDate,
		GrandTotal:   e.GrandTotal,
		TotalGST:     e.TotalGst,
		Status:       e.Status,
		ExtractedAt:  e.ExtractedAt,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.Edges.Items != nil {
		inv.Items = make([]entity.LineItem, len(e.Edges.Items))
		for i, it := range e.Edges.Items {
			inv.Items[i] = *toLineItem(it)
		}
	}
	return inv
}

func toLineItem(e *ent.LineItem) *entity.LineItem {
	return &entity.LineItem{
		ID:        e.ID,
		InvoiceID: e.InvoiceID,
		ItemName:  e.ItemName,
		HSNCode:   e.HsnCode,
		Quantity:  e.Quantity,
		UnitPrice: e.UnitPrice,
		Amount:    e.Amount,
		GSTRate:   e.GstRate,
	}
}

func toInvoiceFile(e *ent.InvoiceFile) *entity.InvoiceFile {
	return &entity.InvoiceFile{
		ID:          e.ID,
		UserID:      e.UserID,
		SourcePath:  e.SourcePath,
		ContentHash: e.ContentHash,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		UploadedAt:  e.UploadedAt,
	}
}

func toExtractJob(e *ent.ExtractJob) *entity.ExtractJob {
	return &entity.ExtractJob{
		ID:                   e.ID,
		FileID:               e.FileID,
		UserID:               e.UserID,
		InvoiceID:            e.InvoiceID,
		Format:               e.Format,
		StartedAt:            e.StartedAt,
		FinishedAt:           e.FinishedAt,
		Status:               e.Status,
		ErrorMessage:         e.ErrorMessage,
		ExtractionConfidence: e.ExtractionConfidence,
		NeedsReview:          e.NeedsReview,
		OCRText:              e.OcrText,
		ExtractedJSON:        e.ExtractedJSON,
		ModelName:            e.ModelName,
		ModelParams:          e.ModelParams,
	}
}

func toUser(e *ent.User) *entity.User {
	return &entity.User{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Aadhaar:      e.Aadhaar,
		UserType:     e.UserType,
		PasswordHash: e.PasswordHash,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func toHSNEntry(e *ent.HSNEntry) *entity.HSNEntry {
	return &entity.HSNEntry{
		ID:       e.ID,
		HSNCode:  e.HsnCode,
		Category: e.Category,
		ItemName: e.ItemName,
		GSTRate:  e.GstRate,
	}
}

package server

import (
	"crypto/sha256"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/constants"
	"github.com/gstsuite/invoice-analyzer/internal/async"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

func (s *Server) showUpload(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", gin.H{})
}

// handleUpload stores the uploaded files and runs extraction. A single
// file is processed synchronously so the user lands on the finished
// invoice; batches go through the worker queue.
func (s *Server) handleUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.HTML(http.StatusBadRequest, "upload.html", gin.H{"Error": "No files received."})
		return
	}
	uploads := form.File["invoices"]
	if len(uploads) == 0 {
		c.HTML(http.StatusBadRequest, "upload.html", gin.H{"Error": "Select at least one PDF or image."})
		return
	}

	userID := currentUserID(c)
	var stored []*entity.InvoiceFile
	for _, fh := range uploads {
		ext := constants.NormalizeExt(filepath.Ext(fh.Filename))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			c.HTML(http.StatusBadRequest, "upload.html", gin.H{
				"Error": fmt.Sprintf("%s: unsupported file type (allowed: pdf, png, jpg, jpeg)", fh.Filename),
			})
			return
		}
		row, err := s.storeUpload(c, userID, fh, ext)
		if err != nil {
			s.log.Error("upload store failed", "filename", fh.Filename, "err", err)
			c.HTML(http.StatusInternalServerError, "upload.html", gin.H{
				"Error": fmt.Sprintf("%s: could not store file", fh.Filename),
			})
			return
		}
		stored = append(stored, row)
	}

	if len(stored) == 1 {
		inv, jobID, err := s.proc.ProcessFile(c.Request.Context(), stored[0].ID)
		if err != nil {
			c.HTML(http.StatusOK, "upload.html", gin.H{
				"Error": fmt.Sprintf("Extraction failed: %v (job %s)", err, jobID),
			})
			return
		}
		c.Redirect(http.StatusFound, "/invoices/"+inv.ID.String())
		return
	}

	for _, row := range stored {
		if err := s.queue.Enqueue(c.Request.Context(), async.Job{FileID: row.ID}); err != nil {
			s.log.Error("enqueue failed", "file_id", row.ID, "err", err)
		}
	}
	c.HTML(http.StatusOK, "upload.html", gin.H{
		"Notice": fmt.Sprintf("%d files queued for extraction. Results appear on the invoices page.", len(stored)),
	})
}

// storeUpload writes the file under the upload dir and registers it.
// Re-uploading identical content reuses the existing row.
func (s *Server) storeUpload(c *gin.Context, userID uuid.UUID, fh *multipart.FileHeader, ext string) (*entity.InvoiceFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return nil, err
	}
	dstPath := filepath.Join(s.cfg.UploadDir, uuid.NewString()+"."+ext)
	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = dst.Close() }()

	h := sha256.New()
	size, err := io.Copy(io.MultiWriter(dst, h), src)
	if err != nil {
		_ = os.Remove(dstPath)
		return nil, err
	}

	row, existed, err := s.files.UpsertByHash(
		c.Request.Context(), userID, dstPath, fh.Filename, ext, int(size), h.Sum(nil), time.Now())
	if err != nil {
		_ = os.Remove(dstPath)
		return nil, err
	}
	if existed {
		// duplicate content, keep the original stored copy
		_ = os.Remove(dstPath)
		s.log.Info("duplicate upload reused", "file_id", row.ID, "filename", fh.Filename)
	}
	return row, nil
}

package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/internal/common"
)

func (s *Server) listInvoices(c *gin.Context) {
	userID := currentUserID(c)
	from := parseDateParam(c.Query("from"))
	to := parseDateParam(c.Query("to"))

	invs, sum, err := s.exports.List(c.Request.Context(), userID, from, to)
	if err != nil {
		s.log.Error("list invoices failed", "user_id", userID, "err", err)
		c.HTML(http.StatusInternalServerError, "invoices.html", gin.H{"Error": "Could not load invoices."})
		return
	}
	c.HTML(http.StatusOK, "invoices.html", gin.H{
		"Invoices": invs,
		"Summary":  sum,
		"From":     c.Query("from"),
		"To":       c.Query("to"),
	})
}

func (s *Server) showInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "bad invoice id")
		return
	}
	inv, err := s.invoices.GetByID(c.Request.Context(), id)
	if err != nil || inv.UserID != currentUserID(c) {
		c.String(http.StatusNotFound, "invoice not found")
		return
	}
	c.HTML(http.StatusOK, "invoice_detail.html", gin.H{"Invoice": inv})
}

func (s *Server) deleteInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "bad invoice id")
		return
	}
	if err := s.invoices.Delete(c.Request.Context(), currentUserID(c), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			c.String(http.StatusNotFound, "invoice not found")
			return
		}
		s.log.Error("delete invoice failed", "invoice_id", id, "err", err)
		c.String(http.StatusInternalServerError, "delete failed")
		return
	}
	c.Redirect(http.StatusFound, "/invoices")
}

func parseDateParam(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) exportCSV(c *gin.Context) {
	data, err := s.exports.ExportCSV(c.Request.Context(), currentUserID(c), parseDateParam(c.Query("from")), parseDateParam(c.Query("to")))
	if err != nil {
		c.String(http.StatusInternalServerError, "export failed")
		return
	}
	serveDownload(c, data, "text/csv", "invoices", "csv")
}

func (s *Server) exportJSON(c *gin.Context) {
	data, err := s.exports.ExportJSON(c.Request.Context(), currentUserID(c), parseDateParam(c.Query("from")), parseDateParam(c.Query("to")))
	if err != nil {
		c.String(http.StatusInternalServerError, "export failed")
		return
	}
	serveDownload(c, data, "application/json", "invoices", "json")
}

func (s *Server) exportXLSX(c *gin.Context) {
	data, err := s.exports.ExportXLSX(c.Request.Context(), currentUserID(c), parseDateParam(c.Query("from")), parseDateParam(c.Query("to")))
	if err != nil {
		c.String(http.StatusInternalServerError, "export failed")
		return
	}
	serveDownload(c, data,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "invoices", "xlsx")
}

func serveDownload(c *gin.Context, data []byte, contentType, stem, ext string) {
	filename := fmt.Sprintf("%s-%s.%s", stem, time.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gstsuite/invoice-analyzer/internal/async"
	"github.com/gstsuite/invoice-analyzer/internal/auth"
	"github.com/gstsuite/invoice-analyzer/internal/billing"
	"github.com/gstsuite/invoice-analyzer/internal/common"
	"github.com/gstsuite/invoice-analyzer/internal/export"
	"github.com/gstsuite/invoice-analyzer/internal/hsn"
	"github.com/gstsuite/invoice-analyzer/internal/pipeline"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

// HealthChecker is the database liveness probe used by /healthz.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Server wires the HTTP layer: session auth, upload/extraction, the
// invoice views, exports and the bill builder.
type Server struct {
	cfg      common.ServerConfig
	auth     *auth.Service
	files    repository.InvoiceFileRepository
	jobs     repository.ExtractJobRepository
	invoices repository.InvoiceRepository
	proc     *pipeline.Processor
	queue    async.Queue
	exports  *export.Service
	billing  *billing.Service
	catalog  *hsn.Matcher
	health   HealthChecker
	log      *slog.Logger
}

type Deps struct {
	Config   common.ServerConfig
	Auth     *auth.Service
	Files    repository.InvoiceFileRepository
	Jobs     repository.ExtractJobRepository
	Invoices repository.InvoiceRepository
	Proc     *pipeline.Processor
	Queue    async.Queue
	Exports  *export.Service
	Billing  *billing.Service
	Catalog  *hsn.Matcher
	Health   HealthChecker
	Logger   *slog.Logger
}

func New(d Deps) *Server {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Server{
		cfg:      d.Config,
		auth:     d.Auth,
		files:    d.Files,
		jobs:     d.Jobs,
		invoices: d.Invoices,
		proc:     d.Proc,
		queue:    d.Queue,
		exports:  d.Exports,
		billing:  d.Billing,
		catalog:  d.Catalog,
		health:   d.Health,
		log:      d.Logger,
	}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.SetHTMLTemplate(pageTemplates())
	r.MaxMultipartMemory = 32 << 20

	r.GET("/healthz", s.handleHealthz)

	r.GET("/login", s.showLogin)
	r.POST("/login", s.handleLogin)
	r.GET("/signup", s.showSignup)
	r.POST("/signup", s.handleSignup)
	r.POST("/logout", s.handleLogout)

	authed := r.Group("/", s.requireAuth())
	{
		authed.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, "/invoices")
		})
		authed.GET("/upload", s.showUpload)
		authed.POST("/upload", s.handleUpload)

		authed.GET("/invoices", s.listInvoices)
		authed.GET("/invoices/:id", s.showInvoice)
		authed.POST("/invoices/:id/delete", s.deleteInvoice)

		authed.GET("/export/csv", s.exportCSV)
		authed.GET("/export/json", s.exportJSON)
		authed.GET("/export/xlsx", s.exportXLSX)

		authed.GET("/bill", s.showBillBuilder)
		authed.POST("/bill/pdf", s.downloadBillPDF)

		authed.GET("/jobs", s.listJobs)
		authed.GET("/jobs/:id", s.showJob)
	}
	return r
}

func (s *Server) handleHealthz(c *gin.Context) {
	if s.health != nil {
		if err := s.health.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

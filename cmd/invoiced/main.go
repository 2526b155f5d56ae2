package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gstsuite/invoice-analyzer/internal/async"
	"github.com/gstsuite/invoice-analyzer/internal/auth"
	"github.com/gstsuite/invoice-analyzer/internal/billing"
	"github.com/gstsuite/invoice-analyzer/internal/common"
	"github.com/gstsuite/invoice-analyzer/internal/export"
	"github.com/gstsuite/invoice-analyzer/internal/extract"
	"github.com/gstsuite/invoice-analyzer/internal/hsn"
	"github.com/gstsuite/invoice-analyzer/internal/llm/gemini"
	"github.com/gstsuite/invoice-analyzer/internal/ocr"
	"github.com/gstsuite/invoice-analyzer/internal/pipeline"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
	"github.com/gstsuite/invoice-analyzer/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.HealthCheck(ctx, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(ctx); err != nil {
		logger.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	filesRepo := repository.NewInvoiceFileRepository(db.Ent, logger)
	jobsRepo := repository.NewExtractJobRepository(db.Ent, logger)
	invoicesRepo := repository.NewInvoiceRepository(db.Ent, logger)
	usersRepo := repository.NewUserRepository(db.Ent, logger)
	hsnRepo := repository.NewHSNRepository(db.Ent, logger)

	entries, err := hsnRepo.ListAll(ctx)
	if err != nil {
		logger.Error("hsn reference load failed", "error", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		logger.Warn("hsn reference table is empty; run `invoicectl load-hsn` to enable item enrichment")
	}
	matcher := hsn.NewMatcher(entries)

	textExtractor := extract.NewOCRAdapter(ocr.NewExtractor(ocr.Config{
		TessdataDir:         cfg.OCR.TessdataDir,
		ArtifactCacheDir:    cfg.OCR.ArtifactCacheDir,
		MinCharsPerPage:     cfg.OCR.MinCharsPerPage,
		EnableTSVConfidence: true,
		Preprocess:          true,
		PSM:                 6,
	}, logger), logger)

	llmClient := gemini.NewClient(gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		MaxAttempts: cfg.LLM.MaxAttempts,
	}, logger)

	ocrStage := pipeline.NewOCRStage(filesRepo, jobsRepo, textExtractor, logger)
	parseStage := pipeline.NewParseStage(jobsRepo, filesRepo, invoicesRepo, matcher, llmClient, logger, pipeline.ParseStageConfig{
		ModelName:   cfg.LLM.Model,
		ModelParams: map[string]any{"temperature": cfg.LLM.Temperature},
	})
	proc := pipeline.NewProcessor(ocrStage, parseStage, logger)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
		async.WithProcessTimeout(cfg.Pipeline.JobTimeout),
	)

	sessions := auth.NewSessionStore(cfg.Server.SessionTTL)
	authSvc := auth.NewService(usersRepo, sessions, logger)
	exportSvc := export.NewService(invoicesRepo, logger)
	billingSvc := billing.NewService(matcher, logger)

	srv := server.New(server.Deps{
		Config:   cfg.Server,
		Auth:     authSvc,
		Files:    filesRepo,
		Jobs:     jobsRepo,
		Invoices: invoicesRepo,
		Proc:     proc,
		Queue:    queue,
		Exports:  exportSvc,
		Billing:  billingSvc,
		Catalog:  matcher,
		Health:   dbHealth{db: db, log: logger},
		Logger:   logger,
	})

	httpSrv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	if err := queue.Shutdown(shutdownCtx); err != nil {
		logger.Error("queue drain interrupted", "error", err)
	}
	logger.Info("stopped")
}

type dbHealth struct {
	db  *repository.DB
	log *slog.Logger
}

func (h dbHealth) HealthCheck(ctx context.Context) error {
	return h.db.HealthCheck(ctx, 3*time.Second, h.log)
}

func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package main

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gstsuite/invoice-analyzer/constants"
	"github.com/gstsuite/invoice-analyzer/internal/entity"
	"github.com/gstsuite/invoice-analyzer/internal/extract"
	"github.com/gstsuite/invoice-analyzer/internal/hsn"
	"github.com/gstsuite/invoice-analyzer/internal/llm/gemini"
	"github.com/gstsuite/invoice-analyzer/internal/ocr"
	"github.com/gstsuite/invoice-analyzer/internal/pipeline"
	"github.com/gstsuite/invoice-analyzer/internal/repository"
)

func newExtractCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "extract <file>...",
		Short: "Run the extraction pipeline on local invoice files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close(logger)

			usersRepo := repository.NewUserRepository(db.Ent, logger)
			user, err := usersRepo.GetByEmail(ctx, email)
			if err != nil {
				return fmt.Errorf("user %q: %w", email, err)
			}

			filesRepo := repository.NewInvoiceFileRepository(db.Ent, logger)
			proc, err := buildProcessor(ctx, db)
			if err != nil {
				return err
			}

			failures := 0
			for _, path := range args {
				row, err := registerFile(ctx, filesRepo, user.ID, path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					failures++
					continue
				}
				inv, jobID, err := proc.ProcessFile(ctx, row.ID)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: extraction failed (job %s): %v\n", path, jobID, err)
					failures++
					continue
				}
				fmt.Printf("%s -> invoice %s  no=%s  seller=%q  total=%.2f\n",
					filepath.Base(path), inv.ID, inv.InvoiceNo, inv.SellerName, inv.GrandTotal)
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d files failed", failures, len(args))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account to attach the invoices to")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func buildProcessor(ctx context.Context, db *repository.DB) (*pipeline.Processor, error) {
	filesRepo := repository.NewInvoiceFileRepository(db.Ent, logger)
	jobsRepo := repository.NewExtractJobRepository(db.Ent, logger)
	invoicesRepo := repository.NewInvoiceRepository(db.Ent, logger)

	entries, err := repository.NewHSNRepository(db.Ent, logger).ListAll(ctx)
	if err != nil {
		return nil, err
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
	return pipeline.NewProcessor(ocrStage, parseStage, logger), nil
}

func registerFile(ctx context.Context, files repository.InvoiceFileRepository, userID uuid.UUID, path string) (*entity.InvoiceFile, error) {
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return nil, err
	}

	row, _, err := files.UpsertByHash(ctx, userID, abs, filepath.Base(abs), ext, int(size), h.Sum(nil), time.Now())
	return row, err
}

package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gstsuite/invoice-analyzer/constants"
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	TessdataDir         string
	EnableTSVConfidence bool

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default

	// MinCharsPerPage is the embedded-text density below which a PDF is
	// treated as scanned and rasterized for OCR instead.
	MinCharsPerPage int

	// Preprocess enables grayscale/contrast/sharpen before image OCR.
	Preprocess bool

	ArtifactCacheDir string
}

type ExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "IMAGE"
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinCharsPerPage <= 0 {
		cfg.MinCharsPerPage = 64
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = "./tmp"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// SetRunner swaps the external-command runner; tests stub it out.
func (e *Extractor) SetRunner(r Runner) {
	e.runner = r
}

// Extract picks a strategy based on file extension.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		e.logger.Error("unsupported extension", "extension", ext)
		return ExtractionResult{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	e.logger.Debug("starting text extraction", "path", path, "method", "auto", "ext", ext)
	if constants.FormatForExt(ext) == "PDF" {
		res, err := e.extractPDF(ctx, path)
		res.Duration = time.Since(start)
		return res, err
	}
	res, err := e.extractImage(ctx, path)
	res.Duration = time.Since(start)
	return res, err
}

// extractPDF prefers the embedded text layer; a sparse layer means the PDF
// is a scan, so it falls through to rasterize+OCR.
func (e *Extractor) extractPDF(ctx context.Context, path string) (ExtractionResult, error) {
	txt, pages, embedErr := pdfEmbeddedText(path)
	if embedErr == nil && !textIsSparse(txt, pages, e.cfg.MinCharsPerPage) {
		txt = Normalize(txt)
		return ExtractionResult{
			Text:       txt,
			Pages:      pages,
			SourceType: "PDF",
			Method:     "pdf-text",
			Language:   e.cfg.TesseractLang,
			Confidence: heuristicConfidence(txt),
		}, nil
	}

	var warns []string
	if embedErr != nil {
		warns = append(warns, fmt.Sprintf("embedded text: %v", embedErr))
	} else {
		warns = append(warns, "embedded text layer too sparse; using OCR")
	}
	e.logger.Info("pdf text layer unusable, rasterizing",
		"path", path, "pages", pages, "embedded_chars", len(txt))

	ocrText, ocrPages, w, err := e.pdfToOCR(ctx, path)
	warns = append(warns, w...)
	if err != nil {
		return ExtractionResult{SourceType: "PDF", Warnings: warns}, err
	}
	ocrText = Normalize(ocrText)
	return ExtractionResult{
		Text:       ocrText,
		Pages:      ocrPages,
		SourceType: "PDF",
		Method:     "pdf-ocr",
		Language:   e.cfg.TesseractLang,
		Warnings:   warns,
		Confidence: heuristicConfidence(ocrText),
	}, nil
}

func textIsSparse(txt string, pages, minCharsPerPage int) bool {
	if pages <= 0 {
		pages = 1
	}
	return len(txt)/pages < minCharsPerPage
}

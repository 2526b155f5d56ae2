package ocr

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// preprocessImage writes a grayscale, contrast-boosted, lightly sharpened
// copy of the image to a temp dir. Tesseract reads scans noticeably better
// after this pass.
func (e *Extractor) preprocessImage(path string) (string, func(), error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", nil, fmt.Errorf("open image: %w", err)
	}

	img = imaging.Grayscale(img)
	img = imaging.AdjustContrast(img, 15)
	img = imaging.Sharpen(img, 1.0)

	tmpDir, err := os.MkdirTemp("", "inv-prep-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }

	out := filepath.Join(tmpDir, "prepped.png")
	if err := imaging.Save(img, out); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("save preprocessed image: %w", err)
	}
	return out, cleanup, nil
}

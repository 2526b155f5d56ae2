package ocr

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfEmbeddedText pulls the text layer out of a digital PDF without
// shelling out. Scanned PDFs come back near-empty; callers decide whether
// the density is good enough.
func pdfEmbeddedText(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	pages := r.NumPage()
	var b strings.Builder
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		txt, err := p.GetPlainText(nil)
		if err != nil {
			// one broken page shouldn't sink the document
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(txt)
	}
	return b.String(), pages, nil
}

package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUserPromptIncludesFilenameHint(t *testing.T) {
	p := BuildUserPrompt(ExtractRequest{FilenameHint: "march-invoice.pdf", OCRText: "Invoice No: 42"})
	assert.Contains(t, p, "Filename: march-invoice.pdf")
	assert.Contains(t, p, "Invoice No: 42")
}

func TestBuildUserPromptTruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", 10000)
	p := BuildUserPrompt(ExtractRequest{OCRText: long})
	assert.Contains(t, p, "(truncated)")
	assert.Less(t, len(p), 7000)
}

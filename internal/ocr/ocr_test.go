package ocr

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stubText = "SHREE TRADERS\nGSTIN 27AAPFU0939F1ZV\nInvoice Date: 15/03/2024\nGrand Total ₹2,520.00\n"

// stubRunner fakes tesseract; the last arg "tsv" selects the TSV call.
type stubRunner struct {
	text    string
	tsv     string
	calls   []string
	failAll bool
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name+" "+strings.Join(args, " "))
	if s.failAll {
		return nil, []byte("stub failure"), assertAnError
	}
	if args[len(args)-1] == "tsv" {
		return []byte(s.tsv), nil, nil
	}
	return []byte(s.text), nil, nil
}

var assertAnError = &stubError{}

type stubError struct{}

func (*stubError) Error() string { return "stub exec error" }

func tsvLine(conf string) string {
	cols := []string{"5", "1", "1", "1", "1", "1", "10", "10", "50", "20", conf, "word"}
	return strings.Join(cols, "\t")
}

func TestExtractImageWithStub(t *testing.T) {
	e := NewExtractor(Config{EnableTSVConfidence: true}, nil)
	stub := &stubRunner{
		text: stubText,
		tsv: strings.Join([]string{
			"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
			tsvLine("90"),
			tsvLine("80"),
			tsvLine("-1"), // non-word rows are ignored
		}, "\n"),
	}
	e.SetRunner(stub)

	res, err := e.Extract(context.Background(), "invoice.png")
	require.NoError(t, err)

	assert.Equal(t, "IMAGE", res.SourceType)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	assert.Contains(t, res.Text, "SHREE TRADERS")

	// mean TSV conf is 0.85, blended 70/30 with the text heuristic
	heur := heuristicConfidence(Normalize(stubText))
	want := 0.7*0.85 + 0.3*heur
	assert.InDelta(t, want, res.Confidence, 0.001)
}

func TestExtractImageWithoutTSV(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	stub := &stubRunner{text: stubText}
	e.SetRunner(stub)

	res, err := e.Extract(context.Background(), "invoice.jpg")
	require.NoError(t, err)
	assert.InDelta(t, heuristicConfidence(Normalize(stubText)), res.Confidence, 0.001)
	require.Len(t, stub.calls, 1, "TSV pass disabled")
}

func TestExtractImageOCRFailure(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.SetRunner(&stubRunner{failAll: true})

	_, err := e.Extract(context.Background(), "invoice.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	e.SetRunner(&stubRunner{text: "x"})

	_, err := e.Extract(context.Background(), "notes.txt")
	assert.Error(t, err)
}

func TestExtractPDFMissingFile(t *testing.T) {
	e := NewExtractor(Config{}, nil)
	// no embedded text layer and pdftoppm fails -> error surfaces
	e.SetRunner(&stubRunner{failAll: true})

	_, err := e.Extract(context.Background(), "does-not-exist.pdf")
	assert.Error(t, err)
}

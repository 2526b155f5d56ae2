package hsn

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gstsuite/invoice-analyzer/internal/entity"
)

// Expected columns, in any order. Header names are normalized with
// trim/lower/underscore so "HSN Code" and "hsn_code" both work.
var requiredColumns = []string{"hsn_code", "category", "item_name", "rate_of_gst"}

// LoadCSV parses the HSN/GST reference CSV. Every data row must carry all
// four columns; the returned slice length equals the number of data rows.
func LoadCSV(r io.Reader) ([]entity.HSNEntry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[normalizeHeader(col)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q in header %v", col, header)
		}
	}

	var entries []entity.HSNEntry
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(rec[idx["rate_of_gst"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: rate_of_gst: %w", line, err)
		}

		entry := entity.HSNEntry{
			HSNCode:  strings.TrimSpace(rec[idx["hsn_code"]]),
			Category: strings.TrimSpace(rec[idx["category"]]),
			ItemName: strings.TrimSpace(rec[idx["item_name"]]),
			GSTRate:  rate,
		}
		if entry.HSNCode == "" || entry.ItemName == "" {
			return nil, fmt.Errorf("line %d: hsn_code and item_name are required", line)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gstsuite/invoice-analyzer/internal/llm"
)

// ExtractFields implements llm.FieldExtractor using text-only chat/completions
// against Gemini's OpenAI-compatible endpoint.
func (c *Client) ExtractFields(ctx context.Context, req llm.ExtractRequest) (llm.InvoiceFields, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.OCRText),
		"has_file_path", req.FilePath != "",
		"prep_confidence", req.PrepConfidence,
	)

	schema := llm.BuildInvoiceJSONSchema()
	sys := llm.BuildSystemPrompt()
	user := llm.BuildUserPrompt(req)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": sys},
			{"role": "user", "content": user + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.postWithRetry(ctx, rid, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, nil, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("decode model response: %w", llm.ErrMalformed)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, raw, fmt.Errorf("no choices in model response: %w", llm.ErrMalformed)
	}
	content := llm.StripCodeFences(cc.Choices[0].Message.Content)
	rawContent := []byte(content)

	// Validate strictly first; on failure sanitize the optional offenders
	// and re-validate before giving up.
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		cleaned, dropped, sErr := llm.SanitizeOptionalFields(rawContent)
		if sErr != nil {
			c.log.Error("llm.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.InvoiceFields{}, rawContent, fmt.Errorf("sanitize failed: %v: %w", sErr, llm.ErrMalformed)
		}
		if vErr := llm.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "content", string(cleaned),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return llm.InvoiceFields{}, rawContent, fmt.Errorf("schema validation failed: %v: %w", vErr, llm.ErrMalformed)
		}
		c.log.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var out llm.InvoiceFields
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.InvoiceFields{}, rawContent, fmt.Errorf("unmarshal fields: %v: %w", err, llm.ErrMalformed)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"invoice_no", out.InvoiceNo,
		"seller", out.SellerName,
		"date", out.Date,
		"grand_total", out.GrandTotal,
		"items", len(out.Items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

// postWithRetry retries transient failures (429, 5xx, timeouts) with
// exponential backoff and jitter. Auth failures are terminal.
func (c *Client) postWithRetry(ctx context.Context, rid, url string, body map[string]any) ([]byte, error) {
	var lastErr error
	backoff := 500 * time.Millisecond

	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		raw, err := c.post(ctx, url, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		if errors.Is(err, llm.ErrAuth) || errors.Is(err, llm.ErrMalformed) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%v: %w", ctx.Err(), llm.ErrTimeout)
		}
		if attempt == c.cfg.MaxAttempts {
			break
		}

		sleep := backoff + time.Duration(rand.Int63n(int64(backoff/2)))
		c.log.Warn("llm.http.retry",
			"req_id", rid, "attempt", attempt, "error", err, "sleep_ms", sleep.Milliseconds(),
		)
		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return nil, fmt.Errorf("%v: %w", ctx.Err(), llm.ErrTimeout)
		}
		backoff *= 2
	}
	return nil, lastErr
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return nil, fmt.Errorf("model request: %v: %w", err, llm.ErrTimeout)
		}
		return nil, fmt.Errorf("model http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cErr := body.Close(); cErr != nil {
			c.log.Warn("llm.http.response_body_close_error", "error", cErr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return raw, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("model status %d: %s: %w", resp.StatusCode, truncate(raw, 512), llm.ErrAuth)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("model status %d: %s: %w", resp.StatusCode, truncate(raw, 512), llm.ErrQuota)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("model status %d: %s", resp.StatusCode, truncate(raw, 512))
	default:
		return nil, fmt.Errorf("model status %d: %s: %w", resp.StatusCode, truncate(raw, 512), llm.ErrMalformed)
	}
}

func isTimeout(err error) bool {
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "…"
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

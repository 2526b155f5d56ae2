package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gstsuite/invoice-analyzer/internal/llm"
)

func chatResponse(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	return NewClient(Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "gemini-2.5-flash",
		Timeout:     2 * time.Second,
		MaxAttempts: 3,
	}, nil)
}

const validContent = `{
	"invoice_no": "ST/2024/0042",
	"gstin_no": "27AAPFU0939F1ZV",
	"seller_name": "Shree Traders",
	"date": "2024-03-15",
	"grand_total": "2520.00",
	"total_gst": "120.00",
	"items": [{"item_name": "Rice Bag 25kg", "hsn_code": "1006", "quantity": 2, "amount": "2400.00"}]
}`

func TestExtractFieldsOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(chatResponse(validContent)))
	}))
	defer srv.Close()

	fields, raw, err := newTestClient(t, srv).ExtractFields(context.Background(), llm.ExtractRequest{OCRText: "some text"})
	require.NoError(t, err)
	assert.Equal(t, "ST/2024/0042", fields.InvoiceNo)
	assert.Equal(t, "Shree Traders", fields.SellerName)
	assert.Equal(t, "2520.00", fields.GrandTotal)
	require.Len(t, fields.Items, 1)
	assert.Equal(t, "Rice Bag 25kg", fields.Items[0].ItemName)
	assert.NotEmpty(t, raw)
}

func TestExtractFieldsStripsFences(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse("```json\n" + validContent + "\n```")))
	}))
	defer srv.Close()

	fields, _, err := newTestClient(t, srv).ExtractFields(context.Background(), llm.ExtractRequest{OCRText: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ST/2024/0042", fields.InvoiceNo)
}

func TestExtractFieldsLenientSanitize(t *testing.T) {
	// grand_total as a number and a junk gstin should be rescued, not fatal
	content := `{
		"invoice_no": "INV-9",
		"seller_name": "Seller",
		"gstin_no": "unknown",
		"date": "15/03/2024",
		"grand_total": 100.5
	}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse(content)))
	}))
	defer srv.Close()

	fields, _, err := newTestClient(t, srv).ExtractFields(context.Background(), llm.ExtractRequest{OCRText: "x"})
	require.NoError(t, err)
	assert.Equal(t, "100.50", fields.GrandTotal)
	assert.Equal(t, "2024-03-15", fields.Date)
	assert.Empty(t, fields.GstinNo)
}

func TestExtractFieldsRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(chatResponse(validContent)))
	}))
	defer srv.Close()

	_, _, err := newTestClient(t, srv).ExtractFields(context.Background(), llm.ExtractRequest{OCRText: "x"})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestExtractFieldsQuotaExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, _, err := newTestClient(t, srv).ExtractFields(context.Background(), llm.ExtractRequest{OCRText: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrQuota)
	assert.Equal(t, int32(3), calls.Load(), "429 is retried until attempts run out")
}

func TestExtractFieldsAuthIsTerminal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, _, err := newTestClient(t, srv).ExtractFields(context.Background(), llm.ExtractRequest{OCRText: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrAuth)
	assert.Equal(t, int32(1), calls.Load(), "auth failures are not retried")
}

func TestExtractFieldsMalformedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatResponse("this is not json at all")))
	}))
	defer srv.Close()

	_, _, err := newTestClient(t, srv).ExtractFields(context.Background(), llm.ExtractRequest{OCRText: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrMalformed)
}

func TestExtractFieldsNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, _, err := newTestClient(t, srv).ExtractFields(context.Background(), llm.ExtractRequest{OCRText: "x"})
	assert.ErrorIs(t, err, llm.ErrMalformed)
}

func TestExtractFieldsContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(chatResponse(validContent)))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, _, err := newTestClient(t, srv).ExtractFields(ctx, llm.ExtractRequest{OCRText: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrTimeout) || errors.Is(err, context.DeadlineExceeded))
}

package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/example/go-tts-frontend/internal/frontend"
	"github.com/example/go-tts-frontend/internal/server"
	"github.com/example/go-tts-frontend/internal/symbols"
	"github.com/example/go-tts-frontend/internal/testutil"
)

func newTestHandler(t *testing.T, opts ...server.Option) http.Handler {
	t.Helper()

	dict := testutil.LoadDictionary(t)
	proc := frontend.NewProcessor(dict, frontend.NeverMix{})
	return server.NewHandler(proc, opts...)
}

// ---------------------------------------------------------------------------
// GET /health
// ---------------------------------------------------------------------------

func TestHealth_Returns200WithStatusOK(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf("want status=ok, got %q", body["status"])
	}
}

// ---------------------------------------------------------------------------
// GET /symbols
// ---------------------------------------------------------------------------

func TestSymbols_ReturnsFullVocabulary(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/symbols", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", rec.Code)
	}

	var entries []struct {
		ID     int    `json:"id"`
		Symbol string `json:"symbol"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if len(entries) != symbols.Count() {
		t.Fatalf("want %d entries, got %d", symbols.Count(), len(entries))
	}

	if entries[0].ID != 0 || entries[0].Symbol != symbols.Pad {
		t.Errorf("entry 0 = %+v; want pad at ID 0", entries[0])
	}
}

// ---------------------------------------------------------------------------
// POST /encode
// ---------------------------------------------------------------------------

func postEncode(t *testing.T, h http.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/encode", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)
	return rec
}

func TestEncode_ReturnsSequence(t *testing.T) {
	h := newTestHandler(t)

	rec := postEncode(t, h, `{"text":"hello world"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		IDs    []int `json:"ids"`
		Length int   `json:"length"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if body.Length != len(body.IDs) {
		t.Errorf("length field %d != len(ids) %d", body.Length, len(body.IDs))
	}

	if len(body.IDs) == 0 {
		t.Fatal("empty sequence")
	}

	if last := body.IDs[len(body.IDs)-1]; last != symbols.EOSID {
		t.Errorf("last ID = %d; want EOS (%d)", last, symbols.EOSID)
	}

	for i, id := range body.IDs {
		if id < 0 || id >= symbols.Count() {
			t.Errorf("ID %d at %d outside vocabulary", id, i)
		}
	}
}

func TestEncode_MethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/encode", nil)
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("want 405, got %d", rec.Code)
	}
}

func TestEncode_RejectsInvalidJSON(t *testing.T) {
	h := newTestHandler(t)

	rec := postEncode(t, h, `{"text":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestEncode_RejectsEmptyText(t *testing.T) {
	h := newTestHandler(t)

	rec := postEncode(t, h, `{"text":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rec.Code)
	}
}

func TestEncode_RejectsOversizedText(t *testing.T) {
	h := newTestHandler(t, server.WithMaxTextBytes(8))

	payload := `{"text":"` + strings.Repeat("a", 64) + `"}`
	rec := postEncode(t, h, payload)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("want 413, got %d", rec.Code)
	}
}

// slowEncoder stalls long enough for a short request deadline to fire.
type slowEncoder struct {
	delay time.Duration
}

func (e slowEncoder) TextToSequence(string) []int {
	time.Sleep(e.delay)
	return []int{symbols.EOSID}
}

func TestEncode_RequestTimeoutCancelsInFlight(t *testing.T) {
	h := server.NewHandler(slowEncoder{delay: 2 * time.Second},
		server.WithRequestTimeout(20*time.Millisecond),
	)

	rec := postEncode(t, h, `{"text":"hello"}`)
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("want 504, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestEncode_CompletesWithinRequestTimeout(t *testing.T) {
	h := newTestHandler(t, server.WithRequestTimeout(5*time.Second))

	rec := postEncode(t, h, `{"text":"hello world"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

// ---------------------------------------------------------------------------
// ParseLogLevel
// ---------------------------------------------------------------------------

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"info", false},
		{"debug", false},
		{"warn", false},
		{"warning", false},
		{"error", false},
		{"DEBUG", false},
		{"verbose", true},
	}

	for _, tt := range tests {
		_, err := server.ParseLogLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

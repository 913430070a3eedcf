package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/delib-org/outliner/internal/config"
)

func testServer() *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(nil, log, config.Config{OutlinerAPIKey: "test-key"})
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer test-key")
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHandleNumber(t *testing.T) {
	s := testServer()

	body := `{"paragraphs":[
		{"id":"a","type":"h1"},
		{"id":"b","type":"h2"},
		{"id":"c","type":"paragraph"},
		{"id":"d","type":"image"}
	]}`
	rec := doJSON(t, s, http.MethodPost, "/api/number", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp struct {
		Numbers map[string]string `json:"numbers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	want := map[string]string{"a": "1", "b": "1.1", "c": "1.1.1"}
	if len(resp.Numbers) != len(want) {
		t.Fatalf("numbers = %v, want %v", resp.Numbers, want)
	}
	for id, num := range want {
		if resp.Numbers[id] != num {
			t.Errorf("numbers[%s] = %q, want %q", id, resp.Numbers[id], num)
		}
	}
}

func TestHandleNumber_DuplicateIDRejected(t *testing.T) {
	s := testServer()
	body := `{"paragraphs":[{"id":"a","type":"h1"},{"id":"a","type":"paragraph"}]}`
	rec := doJSON(t, s, http.MethodPost, "/api/number", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body)
	}
}

func TestHandleNumber_MalformedBody(t *testing.T) {
	s := testServer()
	rec := doJSON(t, s, http.MethodPost, "/api/number", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleOutline(t *testing.T) {
	s := testServer()
	body := `{"paragraphs":[
		{"id":"a","type":"h1","text":"Intro"},
		{"id":"b","type":"paragraph","text":"Body."},
		{"id":"c","type":"h2","text":"Detail"}
	]}`
	rec := doJSON(t, s, http.MethodPost, "/api/outline", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp struct {
		TOC []struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			Level  int    `json:"level"`
			Number string `json:"number"`
		} `json:"toc"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.TOC) != 2 {
		t.Fatalf("expected 2 toc entries, got %d", len(resp.TOC))
	}
	if resp.TOC[1].Number != "1.1" || resp.TOC[1].Level != 2 {
		t.Errorf("unexpected second entry: %+v", resp.TOC[1])
	}
}

func TestAuth(t *testing.T) {
	s := testServer()

	// No auth header.
	req := httptest.NewRequest(http.MethodPost, "/api/number", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing auth: status = %d, want 401", rec.Code)
	}

	// Wrong key.
	req = httptest.NewRequest(http.MethodPost, "/api/number", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: status = %d, want 401", rec.Code)
	}

	// Health stays public.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("health: status = %d, want 200", rec.Code)
	}
}

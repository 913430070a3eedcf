package numstore

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/delib-org/outliner/internal/document"
)

func TestClient_PutAndGetNumbers(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		switch r.Method {
		case http.MethodPut:
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"p1":"1","p2":"1.1"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	defer c.Close()

	err := c.PutNumbers(context.Background(), "doc-1", document.NumberMap{"p1": "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotPath != "/documents/doc-1/numbers" {
		t.Errorf("path = %q", gotPath)
	}

	numbers, err := c.GetNumbers(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if numbers["p2"] != "1.1" {
		t.Errorf("numbers = %v", numbers)
	}
}

func TestClient_NotFoundIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	rec, err := c.GetDocument(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil record, got %+v", rec)
	}
}

func TestClient_RetryableStatuses(t *testing.T) {
	status := http.StatusServiceUnavailable
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")

	err := c.PutDocument(context.Background(), "d", DocumentRecord{DocID: "d"})
	var retryErr *RetryableError
	if !errors.As(err, &retryErr) {
		t.Fatalf("expected RetryableError for 503, got %v", err)
	}

	status = http.StatusBadRequest
	err = c.PutDocument(context.Background(), "d", DocumentRecord{DocID: "d"})
	if errors.As(err, &retryErr) {
		t.Errorf("400 must not be retryable: %v", err)
	}
	if err == nil {
		t.Error("expected error for 400")
	}
}

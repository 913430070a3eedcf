// Package numstore is the HTTP client for the numbering store backend,
// which persists parsed documents, their outline numbers and their tables
// of contents.
package numstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/delib-org/outliner/internal/document"
	"github.com/delib-org/outliner/internal/outline"
)

// Client communicates with the numbering store HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RetryableError marks store failures worth retrying (throttling, 5xx).
type RetryableError struct {
	Op     string
	Status int
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("%s: retryable status %d", e.Op, e.Status)
}

// DocumentRecord is the stored form of a parsed document.
type DocumentRecord struct {
	DocID      string               `json:"doc_id"`
	Title      string               `json:"title"`
	Filename   string               `json:"filename,omitempty"`
	Paragraphs []document.Paragraph `json:"paragraphs"`
	CreatedAt  string               `json:"created_at,omitempty"`
}

// DocumentSummary is one entry from a document listing.
type DocumentSummary struct {
	DocID     string `json:"doc_id"`
	Title     string `json:"title"`
	Filename  string `json:"filename,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// PutDocument stores or replaces a document record.
func (c *Client) PutDocument(ctx context.Context, docID string, rec DocumentRecord) error {
	return c.put(ctx, "/documents/"+url.PathEscape(docID), rec, "put document")
}

// GetDocument retrieves a document record. Returns nil if not found.
func (c *Client) GetDocument(ctx context.Context, docID string) (*DocumentRecord, error) {
	var rec DocumentRecord
	found, err := c.get(ctx, "/documents/"+url.PathEscape(docID), &rec, "get document")
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

// PutNumbers stores the outline number map for a document.
func (c *Client) PutNumbers(ctx context.Context, docID string, numbers document.NumberMap) error {
	return c.put(ctx, "/documents/"+url.PathEscape(docID)+"/numbers", numbers, "put numbers")
}

// GetNumbers retrieves the outline number map. Returns nil if not found.
func (c *Client) GetNumbers(ctx context.Context, docID string) (document.NumberMap, error) {
	var numbers document.NumberMap
	found, err := c.get(ctx, "/documents/"+url.PathEscape(docID)+"/numbers", &numbers, "get numbers")
	if err != nil || !found {
		return nil, err
	}
	return numbers, nil
}

// PutTOC stores the table of contents for a document.
func (c *Client) PutTOC(ctx context.Context, docID string, toc []outline.TOCEntry) error {
	return c.put(ctx, "/documents/"+url.PathEscape(docID)+"/toc", toc, "put toc")
}

// GetTOC retrieves the table of contents. Returns nil if not found.
func (c *Client) GetTOC(ctx context.Context, docID string) ([]outline.TOCEntry, error) {
	var toc []outline.TOCEntry
	found, err := c.get(ctx, "/documents/"+url.PathEscape(docID)+"/toc", &toc, "get toc")
	if err != nil || !found {
		return nil, err
	}
	return toc, nil
}

// DeleteDocument removes a document and everything stored under it.
func (c *Client) DeleteDocument(ctx context.Context, docID string) error {
	httpReq, err := c.newRequest(ctx, http.MethodDelete, "/documents/"+url.PathEscape(docID), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return c.statusError("delete document "+docID, resp)
	}
	return nil
}

// ListDocuments lists stored document summaries.
func (c *Client) ListDocuments(ctx context.Context, limit int) ([]DocumentSummary, error) {
	path := "/documents"
	if limit > 0 {
		path += "?limit=" + url.QueryEscape(fmt.Sprintf("%d", limit))
	}
	var result struct {
		Documents []DocumentSummary `json:"documents"`
	}
	if _, err := c.get(ctx, path, &result, "list documents"); err != nil {
		return nil, err
	}
	return result.Documents, nil
}

func (c *Client) put(ctx context.Context, path string, payload any, op string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", op, err)
	}
	httpReq, err := c.newRequest(ctx, http.MethodPut, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return c.statusError(op, resp)
	}
	return nil
}

// get decodes a JSON response into out. found is false on 404.
func (c *Client) get(ctx context.Context, path string, out any, op string) (found bool, err error) {
	httpReq, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, c.statusError(op, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", op, err)
	}
	return true, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

func (c *Client) statusError(op string, resp *http.Response) error {
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return &RetryableError{Op: op, Status: resp.StatusCode}
	}
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, string(respBody))
}

// Close releases any resources (currently a no-op).
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

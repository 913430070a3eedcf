package api

import (
	"encoding/json"
	"net/http"

	"github.com/delib-org/outliner/internal/document"
	"github.com/delib-org/outliner/internal/outline"
)

// numberRequest is the body for the synchronous numbering endpoints.
// Paragraphs must be in document order; unknown types are allowed and
// simply receive no number.
type numberRequest struct {
	Paragraphs []document.Paragraph `json:"paragraphs"`
}

// handleNumber computes outline numbers for a caller-supplied paragraph
// sequence, without parsing or persisting anything.
func (s *Server) handleNumber(w http.ResponseWriter, r *http.Request) {
	var req numberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := outline.CheckSequence(req.Paragraphs); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	numbers := outline.ComputeNumbers(req.Paragraphs)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"numbers": numbers,
	})
}

// handleOutline returns the table of contents for a caller-supplied
// paragraph sequence.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	var req numberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := outline.CheckSequence(req.Paragraphs); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	toc := outline.BuildTOC(req.Paragraphs)
	if toc == nil {
		toc = []outline.TOCEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"toc": toc,
	})
}

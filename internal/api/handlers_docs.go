package api

import (
	"encoding/json"
	"net/http"

	"github.com/delib-org/outliner/internal/outline"
	"github.com/go-chi/chi/v5"
)

// handleListDocuments lists stored documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.orchestrator.Store().ListDocuments(r.Context(), 200)
	if err != nil {
		jsonError(w, "failed to list documents: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"documents": docs})
}

// handleGetDocument returns a stored document record.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	rec, err := s.orchestrator.Store().GetDocument(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to get document: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if rec == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// handleGetNumbers returns the stored number map for a document. If the
// store has no map (for example a partial ingest), the numbers are
// recomputed from the stored paragraphs.
func (s *Server) handleGetNumbers(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	store := s.orchestrator.Store()

	numbers, err := store.GetNumbers(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to get numbers: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if numbers == nil {
		rec, err := store.GetDocument(r.Context(), docID)
		if err != nil {
			jsonError(w, "failed to get document: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if rec == nil {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		numbers = outline.ComputeNumbers(rec.Paragraphs)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":  docID,
		"numbers": numbers,
	})
}

// handleGetTOC returns the stored table of contents for a document,
// recomputing it from the stored paragraphs when absent.
func (s *Server) handleGetTOC(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	store := s.orchestrator.Store()

	toc, err := store.GetTOC(r.Context(), docID)
	if err != nil {
		jsonError(w, "failed to get toc: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if toc == nil {
		rec, err := store.GetDocument(r.Context(), docID)
		if err != nil {
			jsonError(w, "failed to get document: "+err.Error(), http.StatusInternalServerError)
			return
		}
		if rec == nil {
			jsonError(w, "document not found", http.StatusNotFound)
			return
		}
		toc = outline.BuildTOC(rec.Paragraphs)
	}
	if toc == nil {
		toc = []outline.TOCEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id": docID,
		"toc":    toc,
	})
}

// handleDeleteDocument deletes a document and everything stored under it.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if err := s.orchestrator.Store().DeleteDocument(r.Context(), docID); err != nil {
		jsonError(w, "failed to delete document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"deleted": docID})
}

package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleNumberingStats(w http.ResponseWriter, r *http.Request) {
	st := s.orchestrator.Stats()
	if st == nil {
		jsonError(w, "numbering stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"stats":       st.SnapshotNow(),
	})
}

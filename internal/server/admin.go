package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_careers/internal/store"
)

// adminAuthorized checks the X-Admin-Key header in constant time.
func (s *Server) adminAuthorized(r *http.Request) bool {
	if s.cfg.AdminKey == "" {
		return false
	}
	got := r.Header.Get("X-Admin-Key")
	return subtle.ConstantTimeCompare([]byte(got), []byte(s.cfg.AdminKey)) == 1
}

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	if !s.adminAuthorized(r) {
		writeError(w, http.StatusUnauthorized, "Invalid or missing admin API key")
		return
	}

	var job store.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, http.StatusBadRequest, "invalid job payload")
		return
	}
	if strings.TrimSpace(job.Title) == "" || strings.TrimSpace(job.Company) == "" {
		writeError(w, http.StatusBadRequest, "title and company are required")
		return
	}

	inserted, err := s.store.Insert(r.Context(), job)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store job")
		return
	}

	// New postings become searchable immediately.
	if err := s.RebuildIndex(r.Context()); err != nil {
		slog.Warn("index rebuild after insert failed", slog.Any("error", err))
	}

	slog.Info("job created",
		slog.String("id", inserted.ID),
		slog.String("title", inserted.Title),
		slog.String("company", inserted.Company),
	)
	writeJSON(w, http.StatusCreated, inserted)
}

func (s *Server) handleReindex(w http.ResponseWriter, r *http.Request) {
	if !s.adminAuthorized(r) {
		writeError(w, http.StatusUnauthorized, "Invalid or missing admin API key")
		return
	}
	if err := s.RebuildIndex(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "reindex failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "indexed": s.index.Size()})
}

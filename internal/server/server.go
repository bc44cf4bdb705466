// Package server is the HTTP API: job browse and detail endpoints,
// resume matching, and the admin surface for posting jobs.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_careers/internal/index"
	"github.com/anatolykoptev/go_careers/internal/match"
	"github.com/anatolykoptev/go_careers/internal/store"
)

// Config holds the server tunables wired from the environment.
type Config struct {
	Port         string
	AdminKey     string
	MatchPerMin  int // resume match requests allowed per minute
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server wires the store, search index, matcher cache, and rate
// limiter behind the HTTP mux.
type Server struct {
	cfg     Config
	store   *store.Store
	index   *index.Index
	cache   *tieredCache
	matchRL *rate.Limiter
}

func New(cfg Config, st *store.Store, ix *index.Index, cache *tieredCache) *Server {
	perMin := cfg.MatchPerMin
	if perMin <= 0 {
		perMin = 30
	}
	return &Server{
		cfg:     cfg,
		store:   st,
		index:   ix,
		cache:   cache,
		matchRL: rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin),
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	mux.HandleFunc("GET /api/jobs/{id}", s.handleGetJob)
	mux.HandleFunc("POST /api/match", s.handleMatch)
	mux.HandleFunc("POST /api/admin/jobs", s.handleCreateJob)
	mux.HandleFunc("POST /api/admin/reindex", s.handleReindex)
	return corsMiddleware(logMiddleware(mux))
}

// Run serves until ctx is cancelled, then drains with a short grace
// period.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.routes(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("port", s.cfg.Port))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	}
}

// RebuildIndex reloads the full corpus and republishes the search
// snapshot. Called at startup and after admin inserts.
func (s *Server) RebuildIndex(ctx context.Context) error {
	jobs, err := s.store.All(ctx)
	if err != nil {
		return fmt.Errorf("server: rebuild index: %w", err)
	}
	s.index.Build(indexJobs(jobs))
	slog.Info("search index rebuilt", slog.Int("jobs", len(jobs)))
	return nil
}

func indexJobs(jobs []store.Job) []index.Job {
	out := make([]index.Job, len(jobs))
	for i, j := range jobs {
		out[i] = index.Job{
			ID:           j.ID,
			Title:        j.Title,
			Department:   j.Department,
			Description:  j.Description,
			Skills:       j.Skills,
			Requirements: j.Requirements,
		}
	}
	return out
}

func matchJobs(jobs []store.Job) []match.Job {
	out := make([]match.Job, len(jobs))
	for i, j := range jobs {
		out[i] = match.Job{
			ID:           j.ID,
			Title:        j.Title,
			Company:      j.Company,
			Department:   j.Department,
			Level:        j.Level,
			Description:  j.Description,
			Skills:       j.Skills,
			Requirements: j.Requirements,
		}
	}
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := map[string]any{
		"status":  "ok",
		"indexed": s.index.Size(),
	}
	if s.cache != nil {
		hits, misses := s.cache.Stats()
		body["cacheHits"] = hits
		body["cacheMisses"] = misses
	}
	writeJSON(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("response encode failed", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Admin-Key")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("took", time.Since(start)),
		)
	})
}

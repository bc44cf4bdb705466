// go_careers — personalized career site backend.
//
// Serves a job catalog with faceted browse and free-text search, and
// matches uploaded resumes against the catalog using a term-weighted
// vector index fused with a multi-signal heuristic scorer.
//
// Endpoints: GET /api/jobs, GET /api/jobs/{id}, POST /api/match,
// POST /api/admin/jobs, POST /api/admin/reindex, GET /api/health.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"

	"github.com/anatolykoptev/go_careers/internal/index"
	"github.com/anatolykoptev/go_careers/internal/server"
	"github.com/anatolykoptev/go_careers/internal/store"
)

var version = "dev"

func main() {
	cfg := server.Config{
		Port:         env.Str("PORT", "8000"),
		AdminKey:     env.Str("ADMIN_API_KEY", "dev-admin-key"),
		MatchPerMin:  env.Int("MATCH_RATE_PER_MIN", 30),
		ReadTimeout:  env.Duration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout: env.Duration("WRITE_TIMEOUT", 60*time.Second),
	}
	dbPath := env.Str("DATABASE_PATH", "data/jobs.db")

	slog.Info("starting go_careers",
		slog.String("version", version),
		slog.String("port", cfg.Port),
		slog.String("db", dbPath),
	)

	st, err := store.Open(dbPath)
	if err != nil {
		slog.Error("store init failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// First boot on an empty database gets a synthetic corpus so the
	// browse and match surfaces have something to serve.
	if n, err := st.Seed(ctx); err != nil {
		slog.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	} else if n > 0 {
		slog.Info("database seeded", slog.Int("jobs", n))
	}

	cache := server.NewCache(
		env.Str("REDIS_URL", ""),
		env.Duration("CACHE_TTL", 15*time.Minute),
		env.Int("CACHE_MAX_ENTRIES", 1000),
		env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	)

	srv := server.New(cfg, st, index.New(), cache)
	if err := srv.RebuildIndex(ctx); err != nil {
		slog.Error("index build failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := srv.Run(ctx); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

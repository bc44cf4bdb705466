package server

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// tieredCache is a two-tier response cache: L1 in-memory plus an
// optional L2 Redis that survives restarts. Used to short-circuit
// repeated resume match requests.
type tieredCache struct {
	l1              sync.Map      // key -> *cacheEntry
	rdb             *redis.Client // nil when L2 is disabled
	ttl             time.Duration
	maxEntries      int
	cleanupInterval time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewCache builds the cache and starts its cleanup goroutine.
// redisURL may be empty to run L1-only.
func NewCache(redisURL string, ttl time.Duration, maxEntries int, cleanupInterval time.Duration) *tieredCache {
	c := &tieredCache{ttl: ttl, maxEntries: maxEntries, cleanupInterval: cleanupInterval}

	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			slog.Warn("cache: invalid redis URL, L2 disabled", slog.Any("error", err))
		} else {
			rdb := redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				slog.Warn("cache: redis unreachable, L2 disabled", slog.Any("error", err))
			} else {
				c.rdb = rdb
				slog.Info("cache: L2 redis connected", slog.String("addr", opts.Addr))
			}
		}
	}

	slog.Info("cache: initialized",
		slog.Duration("ttl", ttl),
		slog.Bool("redis", c.rdb != nil),
		slog.Int("max_entries", maxEntries),
	)
	go c.cleanupLoop()
	return c
}

// cacheKey builds a deterministic key from parts.
func cacheKey(parts ...string) string {
	joined := strings.Join(parts, "|")
	hash := sha256.Sum256([]byte(joined))
	return fmt.Sprintf("cm:%x", hash[:12])
}

// cacheGet tries L1, then L2. On an L2 hit the entry is promoted into
// L1.
func cacheGet[T any](ctx context.Context, c *tieredCache, key string) (T, bool) {
	var zero T
	if c == nil {
		return zero, false
	}

	if val, ok := c.l1.Load(key); ok {
		entry := val.(*cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			var out T
			if json.Unmarshal(entry.data, &out) == nil {
				c.hits.Add(1)
				return out, true
			}
		}
		c.l1.Delete(key) // expired or corrupt
	}

	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var out T
			if json.Unmarshal(data, &out) == nil {
				c.hits.Add(1)
				c.l1.Store(key, &cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)})
				return out, true
			}
		}
	}

	c.misses.Add(1)
	return zero, false
}

// cacheSet stores the value in both tiers.
func cacheSet[T any](ctx context.Context, c *tieredCache, key string, value T) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.evictIfNeeded()
	c.l1.Store(key, &cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)})

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.Debug("cache: L2 set failed", slog.Any("error", err))
		}
	}
}

// Stats returns the hit/miss counters.
func (c *tieredCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// evictIfNeeded trims L1 when it exceeds maxEntries: expired entries
// first, then those closest to expiry.
func (c *tieredCache) evictIfNeeded() {
	if c.maxEntries <= 0 {
		return
	}

	count := 0
	c.l1.Range(func(_, _ any) bool {
		count++
		return true
	})
	if count < c.maxEntries {
		return
	}

	now := time.Now()
	c.l1.Range(func(key, val any) bool {
		if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
			c.l1.Delete(key)
			count--
		}
		return count >= c.maxEntries
	})
	if count < c.maxEntries {
		return
	}

	for count >= c.maxEntries {
		var oldestKey any
		oldestAt := now.Add(time.Hour)
		c.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*cacheEntry); ok && entry.expiresAt.Before(oldestAt) {
				oldestKey = key
				oldestAt = entry.expiresAt
			}
			return true
		})
		if oldestKey == nil {
			break
		}
		c.l1.Delete(oldestKey)
		count--
	}
}

func (c *tieredCache) cleanupLoop() {
	interval := c.cleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.l1.Range(func(key, val any) bool {
			if entry, ok := val.(*cacheEntry); ok && now.After(entry.expiresAt) {
				c.l1.Delete(key)
			}
			return true
		})
	}
}

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Source loads the full price table from its backing store.
type Source interface {
	Load(ctx context.Context) (*Snapshot, error)
}

// DefaultTTL bounds how long a loaded snapshot is served before the next
// caller triggers a reload.
const DefaultTTL = time.Hour

// Cache owns the catalog lifecycle: a TTL-bounded snapshot with a
// single-flight guard so concurrent callers during a cold or expired cache
// share one load instead of issuing redundant reads.
type Cache struct {
	source Source
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	group singleflight.Group

	mu       sync.RWMutex
	snapshot *Snapshot
	loadedAt time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the default snapshot lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithLogger attaches a logger for load events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// WithClock overrides the time source. Tests use this to force expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// NewCache creates a Cache over the given source.
func NewCache(source Source, opts ...Option) *Cache {
	c := &Cache{
		source: source,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the current snapshot, reading from the source when the cache
// is cold or past its TTL. Safe for concurrent use.
func (c *Cache) Load(ctx context.Context) (*Snapshot, error) {
	c.mu.RLock()
	snap, loadedAt := c.snapshot, c.loadedAt
	c.mu.RUnlock()

	if snap != nil && c.now().Sub(loadedAt) < c.ttl {
		return snap, nil
	}

	v, err, _ := c.group.Do("catalog", func() (any, error) {
		// Another caller may have finished the load while we queued.
		c.mu.RLock()
		snap, loadedAt := c.snapshot, c.loadedAt
		c.mu.RUnlock()
		if snap != nil && c.now().Sub(loadedAt) < c.ttl {
			return snap, nil
		}

		start := c.now()
		loaded, err := c.source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading price catalog: %w", err)
		}
		if c.logger != nil {
			c.logger.Info("catalog_loaded",
				"rows", loaded.Len(),
				"duration_ms", c.now().Sub(start).Milliseconds(),
				"monotonicity_violations", len(loaded.MonotonicityViolations()))
			for _, v := range loaded.MonotonicityViolations() {
				c.logger.Warn("price_monotonicity_violation", "detail", v.String())
			}
		}

		c.mu.Lock()
		c.snapshot = loaded
		c.loadedAt = c.now()
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Invalidate drops the cached snapshot so the next Load hits the source.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snapshot = nil
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}

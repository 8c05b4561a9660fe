package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"smartstock/pkg/contracts/domain"
)

// Cache memoizes dataset loads keyed by source identity (absolute path
// plus modification time and size). A changed file invalidates its
// entry on the next load; nothing is invalidated behind the caller's
// back. Cached slices are shared and must be treated as read-only.
type Cache struct {
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	modTime time.Time
	size    int64
	records []domain.EnrichedRecord
}

// NewCache creates a dataset cache. A nil logger falls back to
// slog.Default().
func NewCache(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		logger:  logger,
		entries: make(map[string]cacheEntry),
	}
}

// Load returns the enriched records for path, reusing the cached parse
// when the file is unchanged since the previous load.
func (c *Cache) Load(ctx context.Context, path string) ([]domain.EnrichedRecord, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve dataset path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	c.mu.Lock()
	entry, ok := c.entries[abs]
	c.mu.Unlock()

	if ok && entry.modTime.Equal(info.ModTime()) && entry.size == info.Size() {
		cacheHits.Inc()
		c.logger.DebugContext(ctx, "dataset cache hit", slog.String("path", abs))
		return entry.records, nil
	}

	cacheMisses.Inc()
	c.logger.InfoContext(ctx, "dataset cache miss, loading",
		slog.String("path", abs),
		slog.Bool("stale", ok))

	records, err := Load(abs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[abs] = cacheEntry{
		modTime: info.ModTime(),
		size:    info.Size(),
		records: records,
	}
	c.mu.Unlock()

	return records, nil
}

// Invalidate drops the cache entry for path, if any.
func (c *Cache) Invalidate(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	c.mu.Lock()
	delete(c.entries, abs)
	c.mu.Unlock()
}

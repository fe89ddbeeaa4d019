package ssa

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/PhantomInsights/baby-names-analysis/internal/domain"
)

// CachedFetcher wraps a Fetcher with an on-disk archive cache. When the cache
// file exists its bytes are reused instead of re-downloading; after a
// successful download the archive is written there for the next run.
type CachedFetcher struct {
	inner  domain.Fetcher
	path   string
	logger *slog.Logger
}

// NewCachedFetcher creates a cache decorator around a fetcher. An empty path
// disables caching entirely.
func NewCachedFetcher(inner domain.Fetcher, path string, logger *slog.Logger) *CachedFetcher {
	return &CachedFetcher{inner: inner, path: path, logger: logger}
}

func (c *CachedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if c.path != "" {
		if data, err := os.ReadFile(c.path); err == nil {
			c.logger.Info("using cached archive", "path", c.path, "bytes", len(data))
			return data, nil
		}
	}

	data, err := c.inner.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if c.path != "" {
		if err := os.WriteFile(c.path, data, 0o644); err != nil {
			return nil, fmt.Errorf("cache archive to %s: %w", c.path, err)
		}
		c.logger.Info("archive cached", "path", c.path)
	}
	return data, nil
}

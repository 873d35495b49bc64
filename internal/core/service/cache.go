package service

import (
	"context"
	"time"
)

// Cache keys and TTLs for the read-through caches backed by Redis.
const (
	featuredCacheKey = "cache:artworks:featured"
	statsCacheKey    = "cache:stats:dashboard"

	featuredCacheTTL = 5 * time.Minute
	statsCacheTTL    = time.Minute
)

// ContentCache abstracts the JSON cache (Redis). Cache failures are never
// fatal: callers fall through to the store and log a warning.
type ContentCache interface {
	// GetJSON unmarshals the cached value into dest, reporting a hit.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

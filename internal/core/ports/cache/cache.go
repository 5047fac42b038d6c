// Package cache defines the outbound port for the rendered-view cache. The
// invalidator half is what the write operations depend on; the full view
// cache adds the read-through operations used by the listing view.
package cache

import (
	"context"
	"time"
)

// Invalidator marks a named view as stale so the next read recomputes it.
type Invalidator interface {
	// Invalidate drops whatever is cached under viewPath. Invalidating a
	// path with no cached entry is a no-op, not an error.
	Invalidate(ctx context.Context, viewPath string) error
}

// ViewCache stores rendered view payloads keyed by their logical path.
type ViewCache interface {
	Invalidator

	// Get returns the cached payload for viewPath, or apperrors.ErrNotFound
	// on a miss.
	Get(ctx context.Context, viewPath string) ([]byte, error)

	// Set stores payload under viewPath for at most ttl.
	Set(ctx context.Context, viewPath string, payload []byte, ttl time.Duration) error
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dashbill/invoice_dashboard_app/internal/apperrors"
	portscache "github.com/dashbill/invoice_dashboard_app/internal/core/ports/cache"
	goredis "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces rendered-view entries inside the shared Redis DB.
const keyPrefix = "view:"

// ViewCache stores rendered view payloads in Redis, keyed by logical view
// path. Invalidation is a plain DEL: the next read misses and recomputes.
type ViewCache struct {
	client *goredis.Client
}

// NewViewCache creates a Redis-backed view cache.
func NewViewCache(client *goredis.Client) *ViewCache {
	return &ViewCache{client: client}
}

// Ensure ViewCache implements the port
var _ portscache.ViewCache = (*ViewCache)(nil)

// Get returns the cached payload for viewPath, or apperrors.ErrNotFound on a miss.
func (c *ViewCache) Get(ctx context.Context, viewPath string) ([]byte, error) {
	payload, err := c.client.Get(ctx, keyPrefix+viewPath).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, fmt.Errorf("%w: no cached view for %s", apperrors.ErrNotFound, viewPath)
		}
		return nil, fmt.Errorf("failed to read cached view %s: %w", viewPath, err)
	}
	return payload, nil
}

// Set stores payload under viewPath for at most ttl.
func (c *ViewCache) Set(ctx context.Context, viewPath string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, keyPrefix+viewPath, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache view %s: %w", viewPath, err)
	}
	return nil
}

// Invalidate marks viewPath stale by dropping its entry. Deleting a missing
// key is a no-op in Redis, so invalidation is idempotent.
func (c *ViewCache) Invalidate(ctx context.Context, viewPath string) error {
	if err := c.client.Del(ctx, keyPrefix+viewPath).Err(); err != nil {
		return fmt.Errorf("failed to invalidate view %s: %w", viewPath, err)
	}
	return nil
}

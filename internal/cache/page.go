package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pageKeyPrefix = "page:"

	// DefaultPageTTL is used when SetPage is called with a non-positive TTL.
	DefaultPageTTL = 10 * time.Minute
)

// ErrCacheMiss is returned when a key is not cached.
var ErrCacheMiss = errors.New("cache miss")

// pageKey scopes cached pages by content version so a content change never
// serves stale HTML.
func pageKey(version, path string) string {
	return pageKeyPrefix + version + ":" + path
}

// GetPage returns the rendered HTML cached for path at content version.
// Returns ErrCacheMiss if not found.
func (c *Cache) GetPage(ctx context.Context, version, path string) ([]byte, error) {
	body, err := c.client.Get(ctx, pageKey(version, path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return body, nil
}

// SetPage caches rendered HTML for path at content version.
func (c *Cache) SetPage(ctx context.Context, version, path string, body []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	if err := c.client.Set(ctx, pageKey(version, path), body, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

// RequestCache implements ports.Cache on Redis for multi-instance
// deployments. The prefix namespaces one service's entries so Flush and
// DeletePrefix never touch another service's keys.
type RequestCache struct {
	r      *redis.Client
	prefix string
}

// NewRequestCache creates a Redis-backed request cache namespaced under
// prefix.
func NewRequestCache(r *redis.Client, prefix string) *RequestCache {
	return &RequestCache{r: r, prefix: prefix}
}

func (c *RequestCache) namespaced(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

// Get implements Cache.Get.
func (c *RequestCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.r.Get(ctx, c.namespaced(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set implements Cache.Set. Redis owns the expiry; there is no lazy
// eviction to do on this backend.
func (c *RequestCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.r.Set(ctx, c.namespaced(key), value, ttl).Err()
}

// Delete implements Cache.Delete.
func (c *RequestCache) Delete(ctx context.Context, key string) error {
	return c.r.Del(ctx, c.namespaced(key)).Err()
}

// DeletePrefix implements Cache.DeletePrefix by scanning the namespace;
// SCAN keeps this safe against large keyspaces where KEYS would block.
func (c *RequestCache) DeletePrefix(ctx context.Context, prefix string) error {
	return c.deleteByPattern(ctx, c.namespaced(prefix)+"*")
}

// Flush implements Cache.Flush for this namespace only.
func (c *RequestCache) Flush(ctx context.Context) error {
	return c.deleteByPattern(ctx, c.namespaced("")+"*")
}

func (c *RequestCache) deleteByPattern(ctx context.Context, pattern string) error {
	iter := c.r.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 500 {
			if err := c.r.Del(ctx, keys...).Err(); err != nil {
				return err
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) > 0 {
		return c.r.Del(ctx, keys...).Err()
	}
	return nil
}

var _ ports.Cache = (*RequestCache)(nil)

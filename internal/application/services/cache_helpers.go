package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/voyago/tourism-platform/go/internal/core/ports"
)

// Utility helpers. The cache is best-effort throughout: storage errors
// degrade to misses and are never returned to callers.
func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return &v, true
}

func invalidateSilently(c ports.Cache, ctx context.Context, prefixes ...string) {
	if c == nil {
		return
	}
	for _, p := range prefixes {
		_ = c.DeletePrefix(ctx, p)
	}
}

// loadThroughCache is the read path shared by all cached service methods:
// cache lookup, then a singleflight-coalesced load on miss. Coalescing
// means concurrent identical reads share one upstream flight, so a slower
// duplicate can never come back later and clobber fresher state.
func loadThroughCache[T any](cache ports.Cache, ctx context.Context, cacheName, key string, ttl time.Duration, loader func() (T, error)) (T, error) {
	if v, ok := cacheGet[T](cache, ctx, key); ok {
		cacheHits.WithLabelValues(cacheName).Inc()
		return *v, nil
	}
	cacheMisses.WithLabelValues(cacheName).Inc()

	res, err, _ := sf.Do(cacheName+"|"+key, func() (any, error) {
		if v, ok := cacheGet[T](cache, ctx, key); ok {
			return *v, nil
		}
		v, err := loader()
		if err != nil {
			return nil, err
		}
		cacheSetSilently(cache, ctx, key, v, ttl)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	v, ok := res.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected type from singleflight result")
	}
	return v, nil
}

// singleflight group for coalescing cache-miss loads in-process
var sf singleflight.Group

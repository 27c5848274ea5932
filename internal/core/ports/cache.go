package ports

import (
	"context"
	"time"
)

// Cache is the request-cache contract shared by the in-memory and Redis
// backends. Implementations must fail open: a broken cache behaves like a
// miss and never surfaces its own errors into caller data paths.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key, overwriting any existing entry, with
	// expiry now+ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key; absence is not an error.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every key equal to or starting with prefix.
	// Mutating operations use it to purge a resource id and its
	// "search"-prefixed aggregate entries.
	DeletePrefix(ctx context.Context, prefix string) error
	// Flush removes all entries owned by this cache instance.
	Flush(ctx context.Context) error
}

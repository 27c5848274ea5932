package requestcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_SetGetAndExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryWithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "pois|GET", []byte(`["a"]`), 2*time.Minute))

	v, ok, err := c.Get(ctx, "pois|GET")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`["a"]`), v)

	// Advance past TTL: entry behaves as absent and is evicted.
	now = now.Add(2*time.Minute + time.Second)
	_, ok, err = c.Get(ctx, "pois|GET")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemory_SetOverwrites(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryWithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("old"), time.Minute))
	require.NoError(t, c.Set(ctx, "k", []byte("new"), time.Hour))

	now = now.Add(30 * time.Minute)
	v, ok, _ := c.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), v)
}

func TestMemory_DeletePrefixScope(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "properties/123|GET", []byte("a"), time.Minute))
	require.NoError(t, c.Set(ctx, "properties/123/amenities|GET", []byte("b"), time.Minute))
	require.NoError(t, c.Set(ctx, "properties/456|GET", []byte("c"), time.Minute))

	require.NoError(t, c.DeletePrefix(ctx, "properties/123"))

	_, ok, _ := c.Get(ctx, "properties/123|GET")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "properties/123/amenities|GET")
	assert.False(t, ok, "prefix purge must cover nested resource keys")
	_, ok, _ = c.Get(ctx, "properties/456|GET")
	assert.True(t, ok, "unrelated resource must survive")
}

func TestMemory_Flush(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, c.Flush(ctx))
	assert.Equal(t, 0, c.Len())
}

func TestMemory_SweepDropsOnlyExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryWithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", []byte("1"), time.Minute))
	require.NoError(t, c.Set(ctx, "long", []byte("2"), time.Hour))

	now = now.Add(10 * time.Minute)
	c.sweep()

	assert.Equal(t, 1, c.Len())
	_, ok, _ := c.Get(ctx, "long")
	assert.True(t, ok)
}

func TestKey_ParamOrderIndependence(t *testing.T) {
	k1 := Key("GET", "search", map[string]any{"a": 1, "b": 2})
	k2 := Key("GET", "search", map[string]any{"b": 2, "a": 1})
	assert.Equal(t, k1, k2)
}

func TestKey_DistinguishesMethodPathParams(t *testing.T) {
	base := Key("GET", "search", map[string]any{"q": "museum"})
	assert.NotEqual(t, base, Key("POST", "search", map[string]any{"q": "museum"}))
	assert.NotEqual(t, base, Key("GET", "pois", map[string]any{"q": "museum"}))
	assert.NotEqual(t, base, Key("GET", "search", map[string]any{"q": "park"}))
	assert.Equal(t, "search|GET", Key("GET", "search", nil))
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetAndGet(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	require.NoError(t, cache.Set(ctx, "recipe:1:original", []byte("payload"), time.Minute))

	value, err := cache.Get(ctx, "recipe:1:original")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), value)
}

func TestCacheMissingKey(t *testing.T) {
	cache := NewCacheRepository()

	_, err := cache.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCacheExpiry(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	require.NoError(t, cache.Set(ctx, "short", []byte("x"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, err := cache.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCacheZeroTTLGetsDefault(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	require.NoError(t, cache.Set(ctx, "forever-ish", []byte("x"), 0))

	_, err := cache.Get(ctx, "forever-ish")
	assert.NoError(t, err)
}

func TestCacheDelete(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	require.NoError(t, cache.Set(ctx, "gone", []byte("x"), time.Minute))
	require.NoError(t, cache.Delete(ctx, "gone"))

	_, err := cache.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCacheDeletePattern(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	require.NoError(t, cache.Set(ctx, "recipe:1:original", []byte("a"), time.Minute))
	require.NoError(t, cache.Set(ctx, "recipe:1:metric", []byte("b"), time.Minute))
	require.NoError(t, cache.Set(ctx, "recipe:2:original", []byte("c"), time.Minute))

	require.NoError(t, cache.DeletePattern(ctx, "recipe:1:*"))

	_, err := cache.Get(ctx, "recipe:1:original")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = cache.Get(ctx, "recipe:1:metric")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	value, err := cache.Get(ctx, "recipe:2:original")
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), value)
}

func TestCacheDeletePatternWithoutStarIsExact(t *testing.T) {
	ctx := context.Background()
	cache := NewCacheRepository()

	require.NoError(t, cache.Set(ctx, "exact", []byte("a"), time.Minute))
	require.NoError(t, cache.Set(ctx, "exactly-not", []byte("b"), time.Minute))

	require.NoError(t, cache.DeletePattern(ctx, "exact"))

	_, err := cache.Get(ctx, "exact")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = cache.Get(ctx, "exactly-not")
	assert.NoError(t, err)
}

package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/lilithmonodia/winestock-be/internal/adapters/redis_adapter"
	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
	"github.com/lilithmonodia/winestock-be/test/helpers"
)

func setupCache(t *testing.T) (ports.CacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redis_a.NewCache(client, 5*time.Minute, helpers.TestLogger()), mr
}

func TestCache_SetAndGet(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupCache(t)

	t.Run("stores_and_retrieves_string", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "test:string", "test value"))

		var result string
		require.NoError(t, cache.Get(ctx, "test:string", &result))
		assert.Equal(t, "test value", result)
	})

	t.Run("stores_and_retrieves_wine_snapshot", func(t *testing.T) {
		wine, err := domain.NewWine("Chablis", 2019, 75, "BLANC", decimal.NewFromInt(30))
		require.NoError(t, err)
		wine.SetID(7)

		require.NoError(t, cache.Set(ctx, "test:wine", wine))

		var restored domain.Wine
		require.NoError(t, cache.Get(ctx, "test:wine", &restored))
		assert.True(t, wine.Equal(&restored))
	})

	t.Run("stores_and_retrieves_wine_list", func(t *testing.T) {
		a, err := domain.NewWine("Fleurie", 2020, 75, "ROUGE", decimal.NewFromInt(12))
		require.NoError(t, err)
		b, err := domain.NewWine("Morgon", 2020, 150, "ROUGE", decimal.NewFromInt(25))
		require.NoError(t, err)

		require.NoError(t, cache.Set(ctx, "test:wines", []*domain.Wine{a, b}))

		var restored []*domain.Wine
		require.NoError(t, cache.Get(ctx, "test:wines", &restored))
		require.Len(t, restored, 2)
		assert.True(t, a.Equal(restored[0]))
		assert.True(t, b.Equal(restored[1]))
	})

	t.Run("returns_miss_for_absent_key", func(t *testing.T) {
		var result string
		err := cache.Get(ctx, "test:absent", &result)
		assert.Equal(t, redis_a.ErrCacheMiss, err)
	})
}

func TestCache_SetWithTTL(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupCache(t)

	err := cache.SetWithTTL(ctx, "ttl:test", "value", 100*time.Millisecond)
	require.NoError(t, err)

	var result string
	require.NoError(t, cache.Get(ctx, "ttl:test", &result))
	assert.Equal(t, "value", result)

	mr.FastForward(200 * time.Millisecond)

	err = cache.Get(ctx, "ttl:test", &result)
	assert.Equal(t, redis_a.ErrCacheMiss, err)
}

func TestCache_Delete(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupCache(t)

	require.NoError(t, cache.Set(ctx, "del:a", "a"))
	require.NoError(t, cache.Set(ctx, "del:b", "b"))

	require.NoError(t, cache.Delete(ctx, "del:a", "del:b"))

	var result string
	assert.Equal(t, redis_a.ErrCacheMiss, cache.Get(ctx, "del:a", &result))
	assert.Equal(t, redis_a.ErrCacheMiss, cache.Get(ctx, "del:b", &result))

	// Deleting absent keys is not an error.
	require.NoError(t, cache.Delete(ctx, "del:absent"))
}

func TestCache_Exists(t *testing.T) {
	ctx := context.Background()
	cache, _ := setupCache(t)

	require.NoError(t, cache.Set(ctx, "exists:a", "a"))

	ok, err := cache.Exists(ctx, "exists:a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.Exists(ctx, "exists:a", "exists:missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_Ping(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupCache(t)

	require.NoError(t, cache.Ping(ctx))

	mr.Close()
	assert.Error(t, cache.Ping(ctx))
}

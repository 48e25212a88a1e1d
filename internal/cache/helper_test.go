package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedShop struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func withMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() {
		SetClient(nil)
		mr.Close()
	})
	return mr
}

func TestAsideMissFillsAndCaches(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	calls := 0
	var dest cachedShop
	err := Aside(ctx, ShopKey(1), &dest, ShopTTL, func() error {
		calls++
		dest = cachedShop{ID: 1, Name: "Siquijor Rides"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "Siquijor Rides", dest.Name)
	assert.True(t, mr.Exists(ShopKey(1)))

	// Second read is served from the cache.
	var again cachedShop
	err = Aside(ctx, ShopKey(1), &again, ShopTTL, func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, dest, again)
}

func TestAsideNilClientAlwaysFetches(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	calls := 0
	var dest cachedShop
	for i := 0; i < 2; i++ {
		err := Aside(ctx, ShopKey(1), &dest, ShopTTL, func() error {
			calls++
			dest = cachedShop{ID: 1, Name: "Siquijor Rides"}
			return nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, calls)
}

func TestAsideFetchErrorNotCached(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	var dest cachedShop
	err := Aside(ctx, ShopKey(2), &dest, ShopTTL, func() error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, mr.Exists(ShopKey(2)))
}

func TestInvalidate(t *testing.T) {
	mr := withMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, MotorcycleKey(7), cachedShop{ID: 7}, time.Minute))
	require.True(t, mr.Exists(MotorcycleKey(7)))

	InvalidateMotorcycle(ctx, 7)
	assert.False(t, mr.Exists(MotorcycleKey(7)))
}

func TestKeysAreNamespaced(t *testing.T) {
	assert.Equal(t, "motorcycle:5", MotorcycleKey(5))
	assert.Equal(t, "shop:5", ShopKey(5))
	assert.Equal(t, "blog:island-loop", BlogKey("island-loop"))
	assert.Equal(t, "favorites:5", FavoritesKey(5))
	assert.NotEqual(t, MotorcycleKey(5), ShopKey(5))
}

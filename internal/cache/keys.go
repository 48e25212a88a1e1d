package cache

import (
	"context"
	"fmt"
	"time"
)

// Structured key namespaces. Every key is "<namespace>:<id>" so per-user and
// per-entity data cannot collide.
const (
	MotorcycleKeyPrefix = "motorcycle:%d"
	ShopKeyPrefix       = "shop:%d"
	BlogKeyPrefix       = "blog:%s"
	FavoritesKeyPrefix  = "favorites:%d"
)

const (
	MotorcycleTTL = 10 * time.Minute
	ShopTTL       = 10 * time.Minute
	BlogTTL       = 30 * time.Minute
	FavoritesTTL  = 5 * time.Minute
)

func MotorcycleKey(id uint) string {
	return fmt.Sprintf(MotorcycleKeyPrefix, id)
}

func ShopKey(id uint) string {
	return fmt.Sprintf(ShopKeyPrefix, id)
}

func BlogKey(slug string) string {
	return fmt.Sprintf(BlogKeyPrefix, slug)
}

func FavoritesKey(userID uint) string {
	return fmt.Sprintf(FavoritesKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateMotorcycle(ctx context.Context, id uint) {
	Invalidate(ctx, MotorcycleKey(id))
}

func InvalidateShop(ctx context.Context, id uint) {
	Invalidate(ctx, ShopKey(id))
}

func InvalidateBlog(ctx context.Context, slug string) {
	Invalidate(ctx, BlogKey(slug))
}

func InvalidateFavorites(ctx context.Context, userID uint) {
	Invalidate(ctx, FavoritesKey(userID))
}

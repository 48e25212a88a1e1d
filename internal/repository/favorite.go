package repository

import (
	"context"

	"motoisle/internal/cache"
	"motoisle/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines the interface for favorite data operations
type FavoriteRepository interface {
	// Add inserts the pair; returns false if it was already present.
	Add(ctx context.Context, userID, motorcycleID uint) (bool, error)
	// Remove deletes the pair; returns false if it was not present.
	Remove(ctx context.Context, userID, motorcycleID uint) (bool, error)
	Exists(ctx context.Context, userID, motorcycleID uint) (bool, error)
	ListIDs(ctx context.Context, userID uint) ([]uint, error)
	Count(ctx context.Context, userID uint) (int, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Add relies on the composite unique index plus ON CONFLICT DO NOTHING so a
// duplicate save never errors and never produces a second row.
func (r *favoriteRepository) Add(ctx context.Context, userID, motorcycleID uint) (bool, error) {
	fav := models.Favorite{UserID: userID, MotorcycleID: motorcycleID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidateFavorites(ctx, userID)
	return true, nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, motorcycleID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND motorcycle_id = ?", userID, motorcycleID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidateFavorites(ctx, userID)
	return true, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, motorcycleID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND motorcycle_id = ?", userID, motorcycleID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListIDs returns the user's saved motorcycle ids in save order, via the
// per-user cache when warm.
func (r *favoriteRepository) ListIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids := []uint{}
	err := cache.Aside(ctx, cache.FavoritesKey(userID), &ids, cache.FavoritesTTL, func() error {
		return r.db.WithContext(ctx).
			Model(&models.Favorite{}).
			Where("user_id = ?", userID).
			Order("id ASC").
			Pluck("motorcycle_id", &ids).Error
	})
	return ids, err
}

func (r *favoriteRepository) Count(ctx context.Context, userID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return int(count), err
}

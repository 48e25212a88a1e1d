package repository

import (
	"context"
	"errors"

	"motoisle/internal/cache"
	"motoisle/internal/models"

	"gorm.io/gorm"
)

// ShopRepository defines the interface for shop data operations
type ShopRepository interface {
	Create(ctx context.Context, shop *models.Shop) error
	GetByID(ctx context.Context, id uint) (*models.Shop, error)
	List(ctx context.Context) ([]models.Shop, error)
	ListFeatured(ctx context.Context) ([]models.Shop, error)
	Update(ctx context.Context, shop *models.Shop) error
}

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository creates a new shop repository
func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

func (r *shopRepository) Create(ctx context.Context, shop *models.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

// GetByID embeds the shop's owned motorcycles on the detail read.
func (r *shopRepository) GetByID(ctx context.Context, id uint) (*models.Shop, error) {
	var shop models.Shop
	err := cache.Aside(ctx, cache.ShopKey(id), &shop, cache.ShopTTL, func() error {
		return r.db.WithContext(ctx).
			Preload("Motorcycles").
			First(&shop, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *shopRepository) List(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	err := r.db.WithContext(ctx).Order("id ASC").Find(&shops).Error
	return shops, err
}

// ListFeatured returns active premium-tier shops.
func (r *shopRepository) ListFeatured(ctx context.Context) ([]models.Shop, error) {
	var shops []models.Shop
	err := r.db.WithContext(ctx).
		Where("tier = ? AND status = ?", models.TierPremium, models.ShopStatusActive).
		Order("id ASC").
		Find(&shops).Error
	return shops, err
}

func (r *shopRepository) Update(ctx context.Context, shop *models.Shop) error {
	if err := r.db.WithContext(ctx).Save(shop).Error; err != nil {
		return err
	}
	cache.InvalidateShop(ctx, shop.ID)
	return nil
}

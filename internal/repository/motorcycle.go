package repository

import (
	"context"
	"errors"
	"strings"

	"motoisle/internal/cache"
	"motoisle/internal/models"

	"gorm.io/gorm"
)

// MotorcycleFilter holds the conjunctive listing predicates. Zero values
// mean "no constraint"; every supplied predicate must hold.
type MotorcycleFilter struct {
	Category string
	Location string
	MinPrice int
	MaxPrice int
}

// MotorcycleRepository defines the interface for motorcycle data operations
type MotorcycleRepository interface {
	Create(ctx context.Context, m *models.Motorcycle) error
	GetByID(ctx context.Context, id uint) (*models.Motorcycle, error)
	List(ctx context.Context, filter MotorcycleFilter) ([]models.Motorcycle, error)
	ListByShop(ctx context.Context, shopID uint) ([]models.Motorcycle, error)
	Search(ctx context.Context, query string) ([]models.Motorcycle, error)
	Update(ctx context.Context, m *models.Motorcycle) error
	UpdateRating(ctx context.Context, id uint, rating float64, reviewCount int) error
}

type motorcycleRepository struct {
	db *gorm.DB
}

// NewMotorcycleRepository creates a new motorcycle repository
func NewMotorcycleRepository(db *gorm.DB) MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

func (r *motorcycleRepository) Create(ctx context.Context, m *models.Motorcycle) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *motorcycleRepository) GetByID(ctx context.Context, id uint) (*models.Motorcycle, error) {
	var m models.Motorcycle
	err := cache.Aside(ctx, cache.MotorcycleKey(id), &m, cache.MotorcycleTTL, func() error {
		return r.db.WithContext(ctx).First(&m, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List applies the filter predicates conjunctively. Results keep insertion
// order (id ASC); sorting beyond that is the catalog service's concern.
func (r *motorcycleRepository) List(ctx context.Context, filter MotorcycleFilter) ([]models.Motorcycle, error) {
	q := r.db.WithContext(ctx).Model(&models.Motorcycle{})

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		q = q.Where("location LIKE ?", "%"+filter.Location+"%")
	}
	if filter.MinPrice > 0 {
		q = q.Where("price_per_day >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		q = q.Where("price_per_day <= ?", filter.MaxPrice)
	}

	var list []models.Motorcycle
	err := q.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *motorcycleRepository) ListByShop(ctx context.Context, shopID uint) ([]models.Motorcycle, error) {
	var list []models.Motorcycle
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

// Search matches the query case-insensitively against name and brand.
func (r *motorcycleRepository) Search(ctx context.Context, query string) ([]models.Motorcycle, error) {
	like := "%" + strings.ToLower(query) + "%"
	var list []models.Motorcycle
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(brand) LIKE ?", like, like).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *motorcycleRepository) Update(ctx context.Context, m *models.Motorcycle) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	cache.InvalidateMotorcycle(ctx, m.ID)
	return nil
}

func (r *motorcycleRepository) UpdateRating(ctx context.Context, id uint, rating float64, reviewCount int) error {
	err := r.db.WithContext(ctx).
		Model(&models.Motorcycle{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"rating": rating, "review_count": reviewCount}).Error
	if err == nil {
		cache.InvalidateMotorcycle(ctx, id)
	}
	return err
}

package repository

import (
	"context"

	"motoisle/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByMotorcycle(ctx context.Context, motorcycleID uint) ([]models.Review, error)
	MarkHelpful(ctx context.Context, id uint) error
	AverageRating(ctx context.Context, motorcycleID uint) (float64, int, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) ListByMotorcycle(ctx context.Context, motorcycleID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("motorcycle_id = ?", motorcycleID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

// MarkHelpful increments the helpfulness counter atomically.
func (r *reviewRepository) MarkHelpful(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		UpdateColumn("helpful", gorm.Expr("helpful + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AverageRating computes the mean rating and review count for a motorcycle.
func (r *reviewRepository) AverageRating(ctx context.Context, motorcycleID uint) (float64, int, error) {
	type agg struct {
		Avg   float64
		Count int64
	}
	var out agg
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("motorcycle_id = ?", motorcycleID).
		Scan(&out).Error
	if err != nil {
		return 0, 0, err
	}
	return out.Avg, int(out.Count), nil
}

package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"motoisle/internal/models"
	"motoisle/internal/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	reviewRepo repository.ReviewRepository
	motoRepo   repository.MotorcycleRepository
}

type CreateReviewInput struct {
	MotorcycleID uint
	UserName     string
	Rating       int
	Comment      string
}

func NewReviewService(reviewRepo repository.ReviewRepository, motoRepo repository.MotorcycleRepository) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, motoRepo: motoRepo}
}

// CreateReview stores the review and refreshes the motorcycle's rating
// aggregate from the full review set.
func (s *ReviewService) CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, models.NewValidationError("Rating must be between 1 and 5")
	}
	if strings.TrimSpace(in.UserName) == "" {
		return nil, models.NewValidationError("Reviewer name is required")
	}

	m, err := s.motoRepo.GetByID(ctx, in.MotorcycleID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, models.NewNotFoundError("Motorcycle", in.MotorcycleID)
	}

	review := &models.Review{
		MotorcycleID: in.MotorcycleID,
		UserName:     in.UserName,
		Rating:       in.Rating,
		Comment:      in.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	avg, count, err := s.reviewRepo.AverageRating(ctx, in.MotorcycleID)
	if err != nil {
		return nil, err
	}
	// One decimal place, matching how ratings are displayed.
	rounded := math.Round(avg*10) / 10
	if err := s.motoRepo.UpdateRating(ctx, in.MotorcycleID, rounded, count); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListReviews(ctx context.Context, motorcycleID uint) ([]models.Review, error) {
	return s.reviewRepo.ListByMotorcycle(ctx, motorcycleID)
}

func (s *ReviewService) MarkHelpful(ctx context.Context, id uint) error {
	err := s.reviewRepo.MarkHelpful(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError("Review", id)
	}
	return err
}

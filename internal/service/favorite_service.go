package service

import (
	"context"

	"motoisle/internal/middleware"
	"motoisle/internal/models"
	"motoisle/internal/repository"
)

type FavoriteService struct {
	favRepo  repository.FavoriteRepository
	motoRepo repository.MotorcycleRepository
}

func NewFavoriteService(favRepo repository.FavoriteRepository, motoRepo repository.MotorcycleRepository) *FavoriteService {
	return &FavoriteService{favRepo: favRepo, motoRepo: motoRepo}
}

// AddFavorite saves the pair. Saving an already-saved motorcycle is a no-op,
// never an error and never a duplicate.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID, motorcycleID uint) error {
	if err := s.ensureMotorcycle(ctx, motorcycleID); err != nil {
		return err
	}
	added, err := s.favRepo.Add(ctx, userID, motorcycleID)
	if err != nil {
		return err
	}
	if added {
		middleware.FavoriteOps.WithLabelValues("add").Inc()
	}
	return nil
}

// RemoveFavorite unsaves the pair. Removing an absent pair is a no-op.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID, motorcycleID uint) error {
	removed, err := s.favRepo.Remove(ctx, userID, motorcycleID)
	if err != nil {
		return err
	}
	if removed {
		middleware.FavoriteOps.WithLabelValues("remove").Inc()
	}
	return nil
}

// ToggleFavorite flips the saved state and reports the new state. Toggling
// twice always restores the original state.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userID, motorcycleID uint) (bool, error) {
	if err := s.ensureMotorcycle(ctx, motorcycleID); err != nil {
		return false, err
	}
	saved, err := s.favRepo.Exists(ctx, userID, motorcycleID)
	if err != nil {
		return false, err
	}
	if saved {
		if err := s.RemoveFavorite(ctx, userID, motorcycleID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.AddFavorite(ctx, userID, motorcycleID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FavoriteService) IsFavorite(ctx context.Context, userID, motorcycleID uint) (bool, error) {
	return s.favRepo.Exists(ctx, userID, motorcycleID)
}

// ListFavorites returns the user's saved motorcycles in save order. Listings
// deleted since being saved are skipped.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uint) ([]models.Motorcycle, error) {
	ids, err := s.favRepo.ListIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Motorcycle, 0, len(ids))
	for _, id := range ids {
		m, err := s.motoRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if m != nil {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *FavoriteService) CountFavorites(ctx context.Context, userID uint) (int, error) {
	return s.favRepo.Count(ctx, userID)
}

func (s *FavoriteService) ensureMotorcycle(ctx context.Context, motorcycleID uint) error {
	m, err := s.motoRepo.GetByID(ctx, motorcycleID)
	if err != nil {
		return err
	}
	if m == nil {
		return models.NewNotFoundError("Motorcycle", motorcycleID)
	}
	return nil
}

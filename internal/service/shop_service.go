package service

import (
	"context"
	"strings"

	"motoisle/internal/models"
	"motoisle/internal/repository"
)

type ShopService struct {
	shopRepo repository.ShopRepository
	motoRepo repository.MotorcycleRepository
}

type CreateShopInput struct {
	Name           string
	Description    string
	Location       string
	Phone          string
	Email          string
	OwnerID        *uint
	OperatingHours string
	PaymentMethods []string
}

func NewShopService(shopRepo repository.ShopRepository, motoRepo repository.MotorcycleRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo, motoRepo: motoRepo}
}

// CreateShop registers a new shop. New shops always enter the moderation
// queue as pending and unverified.
func (s *ShopService) CreateShop(ctx context.Context, in CreateShopInput) (*models.Shop, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Shop name is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, models.NewValidationError("Shop location is required")
	}

	shop := &models.Shop{
		Name:           in.Name,
		Description:    in.Description,
		Location:       in.Location,
		Phone:          in.Phone,
		Email:          in.Email,
		OwnerID:        in.OwnerID,
		OperatingHours: in.OperatingHours,
		PaymentMethods: in.PaymentMethods,
		Tier:           models.TierUnverified,
		Status:         models.ShopStatusPending,
	}
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *ShopService) GetShop(ctx context.Context, id uint) (*models.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, models.NewNotFoundError("Shop", id)
	}
	return shop, nil
}

func (s *ShopService) ListShops(ctx context.Context) ([]models.Shop, error) {
	return s.shopRepo.List(ctx)
}

func (s *ShopService) ListFeaturedShops(ctx context.Context) ([]models.Shop, error) {
	return s.shopRepo.ListFeatured(ctx)
}

func (s *ShopService) ListShopMotorcycles(ctx context.Context, shopID uint) ([]models.Motorcycle, error) {
	if _, err := s.GetShop(ctx, shopID); err != nil {
		return nil, err
	}
	return s.motoRepo.ListByShop(ctx, shopID)
}

// ApproveShop moves a pending shop into the active pool.
func (s *ShopService) ApproveShop(ctx context.Context, id uint) (*models.Shop, error) {
	return s.transition(ctx, id, func(shop *models.Shop) error {
		if shop.Status != models.ShopStatusPending {
			return models.NewValidationError("Only pending shops can be approved")
		}
		shop.Status = models.ShopStatusActive
		return nil
	})
}

// RejectShop turns a pending application down.
func (s *ShopService) RejectShop(ctx context.Context, id uint) (*models.Shop, error) {
	return s.transition(ctx, id, func(shop *models.Shop) error {
		if shop.Status != models.ShopStatusPending {
			return models.NewValidationError("Only pending shops can be rejected")
		}
		shop.Status = models.ShopStatusRejected
		return nil
	})
}

// VerifyShop raises the trust badge of an active shop.
func (s *ShopService) VerifyShop(ctx context.Context, id uint, tier models.VerificationTier) (*models.Shop, error) {
	switch tier {
	case models.TierUnverified, models.TierVerified, models.TierPremium:
	default:
		return nil, models.NewValidationError("Unknown verification tier")
	}
	return s.transition(ctx, id, func(shop *models.Shop) error {
		if shop.Status != models.ShopStatusActive {
			return models.NewValidationError("Only active shops can be verified")
		}
		shop.Tier = tier
		return nil
	})
}

// SuspendShop pulls an active shop and hides its listings from the catalog.
func (s *ShopService) SuspendShop(ctx context.Context, id uint) (*models.Shop, error) {
	shop, err := s.transition(ctx, id, func(shop *models.Shop) error {
		if shop.Status != models.ShopStatusActive {
			return models.NewValidationError("Only active shops can be suspended")
		}
		shop.Status = models.ShopStatusSuspended
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.setListingsAvailable(ctx, id, false); err != nil {
		return nil, err
	}
	return shop, nil
}

// ReinstateShop reactivates a suspended shop and restores its listings.
func (s *ShopService) ReinstateShop(ctx context.Context, id uint) (*models.Shop, error) {
	shop, err := s.transition(ctx, id, func(shop *models.Shop) error {
		if shop.Status != models.ShopStatusSuspended {
			return models.NewValidationError("Only suspended shops can be reinstated")
		}
		shop.Status = models.ShopStatusActive
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.setListingsAvailable(ctx, id, true); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *ShopService) transition(ctx context.Context, id uint, mutate func(*models.Shop) error) (*models.Shop, error) {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(shop); err != nil {
		return nil, err
	}
	if err := s.shopRepo.Update(ctx, shop); err != nil {
		return nil, err
	}
	return shop, nil
}

func (s *ShopService) setListingsAvailable(ctx context.Context, shopID uint, available bool) error {
	list, err := s.motoRepo.ListByShop(ctx, shopID)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].Available == available {
			continue
		}
		list[i].Available = available
		if err := s.motoRepo.Update(ctx, &list[i]); err != nil {
			return err
		}
	}
	return nil
}

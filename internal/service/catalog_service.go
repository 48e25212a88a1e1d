package service

import (
	"context"
	"sort"
	"strings"

	"motoisle/internal/middleware"
	"motoisle/internal/models"
	"motoisle/internal/repository"
)

// Sort modes accepted by the catalog listing.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
)

type CatalogService struct {
	motoRepo repository.MotorcycleRepository
	shopRepo repository.ShopRepository
}

// ListMotorcyclesInput carries the listing predicates plus presentation
// options. Filter fields are conjunctive; Search and Sort are applied on top
// of the filtered set.
type ListMotorcyclesInput struct {
	Category string
	Location string
	MinPrice int
	MaxPrice int
	Search   string
	Sort     string
}

func NewCatalogService(motoRepo repository.MotorcycleRepository, shopRepo repository.ShopRepository) *CatalogService {
	return &CatalogService{motoRepo: motoRepo, shopRepo: shopRepo}
}

func (s *CatalogService) ListMotorcycles(ctx context.Context, in ListMotorcyclesInput) ([]models.Motorcycle, error) {
	if in.MinPrice > 0 && in.MaxPrice > 0 && in.MinPrice > in.MaxPrice {
		return nil, models.NewValidationError("min_price cannot exceed max_price")
	}

	list, err := s.motoRepo.List(ctx, repository.MotorcycleFilter{
		Category: in.Category,
		Location: in.Location,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	})
	if err != nil {
		return nil, err
	}

	if q := strings.TrimSpace(in.Search); q != "" {
		list = filterBySearch(list, q)
	}

	SortMotorcycles(list, in.Sort)
	middleware.CatalogSearches.WithLabelValues(sortLabel(in.Sort)).Inc()
	return list, nil
}

func (s *CatalogService) GetMotorcycle(ctx context.Context, id uint) (*models.Motorcycle, error) {
	m, err := s.motoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, models.NewNotFoundError("Motorcycle", id)
	}
	return m, nil
}

func (s *CatalogService) SearchMotorcycles(ctx context.Context, query string) ([]models.Motorcycle, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.motoRepo.Search(ctx, query)
}

// FeaturedMotorcycles returns the featured subset in insertion order.
func (s *CatalogService) FeaturedMotorcycles(ctx context.Context) ([]models.Motorcycle, error) {
	list, err := s.motoRepo.List(ctx, repository.MotorcycleFilter{})
	if err != nil {
		return nil, err
	}
	featured := make([]models.Motorcycle, 0, len(list))
	for _, m := range list {
		if m.Featured {
			featured = append(featured, m)
		}
	}
	return featured, nil
}

// filterBySearch keeps listings whose name or brand contains the query,
// case-insensitively. Order is preserved.
func filterBySearch(list []models.Motorcycle, query string) []models.Motorcycle {
	q := strings.ToLower(query)
	out := make([]models.Motorcycle, 0, len(list))
	for _, m := range list {
		if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.Brand), q) {
			out = append(out, m)
		}
	}
	return out
}

// SortMotorcycles reorders the slice in place for the given sort mode. Every
// mode is a stable sort, so entries that compare equal keep their relative
// order from the filtered result. Unknown modes leave the slice untouched.
func SortMotorcycles(list []models.Motorcycle, mode string) {
	switch mode {
	case SortFeatured:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Featured && !list[j].Featured
		})
	case SortPriceLow:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PricePerDay < list[j].PricePerDay
		})
	case SortPriceHigh:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PricePerDay > list[j].PricePerDay
		})
	case SortRating:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Rating > list[j].Rating
		})
	}
}

func sortLabel(mode string) string {
	switch mode {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortRating:
		return mode
	default:
		return "none"
	}
}

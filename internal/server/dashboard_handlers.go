package server

import (
	"motoisle/internal/models"

	"github.com/gofiber/fiber/v2"
)

type dashboardFn func(c *fiber.Ctx) error

// GetDashboard handles GET /api/dashboard. The payload shape depends on the
// caller's role; the dispatch is exhaustive over the known roles.
func (s *Server) GetDashboard(c *fiber.Ctx) error {
	handler, err := models.DispatchRole(currentRole(c),
		func() dashboardFn { return s.customerDashboard },
		func() dashboardFn { return s.shopOwnerDashboard },
		func() dashboardFn { return s.adminDashboard },
	)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Unknown role"))
	}
	return handler(c)
}

func (s *Server) customerDashboard(c *fiber.Ctx) error {
	userID := currentUserID(c)

	bookings, err := s.bookingService.ListUserBookings(c.Context(), userID, 5, 0)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	favCount, err := s.favoriteService.CountFavorites(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{
		"role":            models.RoleCustomer,
		"recent_bookings": bookings,
		"favorite_count":  favCount,
	})
}

func (s *Server) shopOwnerDashboard(c *fiber.Ctx) error {
	userID := currentUserID(c)

	shops, err := s.shopService.ListShops(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	owned := make([]fiber.Map, 0)
	for _, shop := range shops {
		if shop.OwnerID == nil || *shop.OwnerID != userID {
			continue
		}
		listings, err := s.motoRepo.ListByShop(c.Context(), shop.ID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		owned = append(owned, fiber.Map{
			"shop":          shop,
			"listing_count": len(listings),
		})
	}

	return c.JSON(fiber.Map{
		"role":  models.RoleShopOwner,
		"shops": owned,
	})
}

func (s *Server) adminDashboard(c *fiber.Ctx) error {
	shops, err := s.shopService.ListShops(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	counts := map[models.ShopStatus]int{}
	for _, shop := range shops {
		counts[shop.Status]++
	}

	return c.JSON(fiber.Map{
		"role": models.RoleAdmin,
		"shop_counts": fiber.Map{
			"pending":   counts[models.ShopStatusPending],
			"active":    counts[models.ShopStatusActive],
			"rejected":  counts[models.ShopStatusRejected],
			"suspended": counts[models.ShopStatusSuspended],
		},
		"feature_flags": s.featureFlags.Raw(),
	})
}

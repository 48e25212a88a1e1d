package server

import (
	"motoisle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeatureFlags handles GET /api/admin/feature-flags
func (s *Server) GetFeatureFlags(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"raw":       s.featureFlags.Raw(),
		"evaluated": s.featureFlags.Snapshot(currentUserID(c)),
	})
}

// GetModerationQueue handles GET /api/admin/shops
// @Summary Shop moderation queue
// @Description List all shops grouped by moderation status
// @Tags admin
// @Produce json
// @Success 200 {object} object{pending=[]models.Shop,active=[]models.Shop,rejected=[]models.Shop,suspended=[]models.Shop}
// @Router /admin/shops [get]
func (s *Server) GetModerationQueue(c *fiber.Ctx) error {
	shops, err := s.shopService.ListShops(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	grouped := map[models.ShopStatus][]models.Shop{
		models.ShopStatusPending:   {},
		models.ShopStatusActive:    {},
		models.ShopStatusRejected:  {},
		models.ShopStatusSuspended: {},
	}
	for _, shop := range shops {
		grouped[shop.Status] = append(grouped[shop.Status], shop)
	}

	return c.JSON(fiber.Map{
		"pending":   grouped[models.ShopStatusPending],
		"active":    grouped[models.ShopStatusActive],
		"rejected":  grouped[models.ShopStatusRejected],
		"suspended": grouped[models.ShopStatusSuspended],
	})
}

// ApproveShop handles POST /api/admin/shops/:id/approve
func (s *Server) ApproveShop(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Shop")
	if err != nil {
		return nil
	}

	shop, err := s.shopService.ApproveShop(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(shop)
}

// RejectShop handles POST /api/admin/shops/:id/reject
func (s *Server) RejectShop(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Shop")
	if err != nil {
		return nil
	}

	shop, err := s.shopService.RejectShop(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(shop)
}

// VerifyShop handles POST /api/admin/shops/:id/verify
func (s *Server) VerifyShop(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Shop")
	if err != nil {
		return nil
	}

	var req struct {
		Tier string `json:"tier"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	tier := models.VerificationTier(req.Tier)
	if tier == "" {
		tier = models.TierVerified
	}

	shop, err := s.shopService.VerifyShop(c.Context(), id, tier)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(shop)
}

// SuspendShop handles POST /api/admin/shops/:id/suspend
func (s *Server) SuspendShop(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Shop")
	if err != nil {
		return nil
	}

	shop, err := s.shopService.SuspendShop(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(shop)
}

// ReinstateShop handles POST /api/admin/shops/:id/reinstate
func (s *Server) ReinstateShop(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Shop")
	if err != nil {
		return nil
	}

	shop, err := s.shopService.ReinstateShop(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(shop)
}

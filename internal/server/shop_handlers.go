package server

import (
	"motoisle/internal/models"
	"motoisle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetShops handles GET /api/shops
// @Summary List shops
// @Tags shops
// @Produce json
// @Success 200 {array} models.Shop
// @Router /shops [get]
func (s *Server) GetShops(c *fiber.Ctx) error {
	shops, err := s.shopService.ListShops(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(shops)
}

// GetShop handles GET /api/shops/:id
// @Summary Shop detail with its motorcycles
// @Tags shops
// @Produce json
// @Param id path int true "Shop ID"
// @Success 200 {object} models.Shop
// @Failure 404 {object} models.ErrorResponse
// @Router /shops/{id} [get]
func (s *Server) GetShop(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Shop")
	if err != nil {
		return nil
	}

	shop, err := s.shopService.GetShop(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(shop)
}

// GetFeaturedShops handles GET /api/shops/featured
func (s *Server) GetFeaturedShops(c *fiber.Ctx) error {
	shops, err := s.shopService.ListFeaturedShops(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(shops)
}

// GetShopMotorcycles handles GET /api/shops/:id/motorcycles
func (s *Server) GetShopMotorcycles(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Shop")
	if err != nil {
		return nil
	}

	list, err := s.shopService.ListShopMotorcycles(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

// CreateShop handles POST /api/owner/shops
// @Summary Register a shop
// @Description Submit a shop application; it enters the moderation queue as pending
// @Tags owner
// @Accept json
// @Produce json
// @Success 201 {object} models.Shop
// @Failure 400 {object} models.ErrorResponse
// @Router /owner/shops [post]
func (s *Server) CreateShop(c *fiber.Ctx) error {
	var req struct {
		Name           string   `json:"name"`
		Description    string   `json:"description"`
		Location       string   `json:"location"`
		Phone          string   `json:"phone"`
		Email          string   `json:"email"`
		OperatingHours string   `json:"operating_hours"`
		PaymentMethods []string `json:"payment_methods"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	ownerID := currentUserID(c)
	shop, err := s.shopService.CreateShop(c.Context(), service.CreateShopInput{
		Name:           req.Name,
		Description:    req.Description,
		Location:       req.Location,
		Phone:          req.Phone,
		Email:          req.Email,
		OwnerID:        &ownerID,
		OperatingHours: req.OperatingHours,
		PaymentMethods: req.PaymentMethods,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(shop)
}

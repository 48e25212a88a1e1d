package server

import (
	"motoisle/internal/models"
	"motoisle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMotorcycles handles GET /api/motorcycles
// @Summary Browse motorcycles
// @Description List motorcycles with optional filters, search, and sort
// @Tags motorcycles
// @Produce json
// @Param category query string false "Category filter (exact match)"
// @Param location query string false "Location filter (substring match)"
// @Param min_price query int false "Minimum daily price (inclusive)"
// @Param max_price query int false "Maximum daily price (inclusive)"
// @Param search query string false "Search against name and brand"
// @Param sort query string false "Sort mode: featured, price-low, price-high, rating"
// @Success 200 {array} models.Motorcycle
// @Router /motorcycles [get]
func (s *Server) GetMotorcycles(c *fiber.Ctx) error {
	list, err := s.catalogService.ListMotorcycles(c.Context(), service.ListMotorcyclesInput{
		Category: c.Query("category"),
		Location: c.Query("location"),
		MinPrice: c.QueryInt("min_price", 0),
		MaxPrice: c.QueryInt("max_price", 0),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

// GetMotorcycle handles GET /api/motorcycles/:id
// @Summary Motorcycle detail
// @Tags motorcycles
// @Produce json
// @Param id path int true "Motorcycle ID"
// @Success 200 {object} models.Motorcycle
// @Failure 404 {object} models.ErrorResponse
// @Router /motorcycles/{id} [get]
func (s *Server) GetMotorcycle(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Motorcycle")
	if err != nil {
		return nil
	}

	m, err := s.catalogService.GetMotorcycle(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(m)
}

// SearchMotorcycles handles GET /api/motorcycles/search
func (s *Server) SearchMotorcycles(c *fiber.Ctx) error {
	list, err := s.catalogService.SearchMotorcycles(c.Context(), c.Query("q"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

// GetFeaturedMotorcycles handles GET /api/motorcycles/featured
func (s *Server) GetFeaturedMotorcycles(c *fiber.Ctx) error {
	list, err := s.catalogService.FeaturedMotorcycles(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(list)
}

// CreateMotorcycle handles POST /api/owner/shops/:id/motorcycles
// @Summary Add a listing
// @Description Create a motorcycle listing under a shop
// @Tags owner
// @Accept json
// @Produce json
// @Param id path int true "Shop ID"
// @Success 201 {object} models.Motorcycle
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /owner/shops/{id}/motorcycles [post]
func (s *Server) CreateMotorcycle(c *fiber.Ctx) error {
	shopID, err := s.parseID(c, "Shop")
	if err != nil {
		return nil
	}

	shop, err := s.shopService.GetShop(c.Context(), shopID)
	if err != nil {
		return respondServiceError(c, err)
	}

	// Shop owners may only list under their own shop; admins under any.
	if currentRole(c) != models.RoleAdmin {
		userID := currentUserID(c)
		if shop.OwnerID == nil || *shop.OwnerID != userID {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("You do not own this shop"))
		}
	}

	var req struct {
		Name              string   `json:"name"`
		Brand             string   `json:"brand"`
		Model             string   `json:"model"`
		Year              int      `json:"year"`
		Category          string   `json:"category"`
		PricePerDay       int      `json:"price_per_day"`
		Location          string   `json:"location"`
		Description       string   `json:"description"`
		Images            []string `json:"images"`
		Features          []string `json:"features"`
		DeliveryAvailable bool     `json:"delivery_available"`
		DeliveryFee       int      `json:"delivery_fee"`
		Deposit           int      `json:"deposit"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" || req.Brand == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name and brand are required"))
	}
	if req.PricePerDay <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Daily price must be positive"))
	}

	m := &models.Motorcycle{
		Name:              req.Name,
		Brand:             req.Brand,
		Model:             req.Model,
		Year:              req.Year,
		Category:          req.Category,
		PricePerDay:       req.PricePerDay,
		Location:          req.Location,
		Description:       req.Description,
		Images:            req.Images,
		Features:          req.Features,
		ShopID:            shop.ID,
		ShopName:          shop.Name,
		Available:         true,
		DeliveryAvailable: req.DeliveryAvailable,
		DeliveryFee:       req.DeliveryFee,
		Deposit:           req.Deposit,
	}
	if m.Location == "" {
		m.Location = shop.Location
	}
	if err := s.motoRepo.Create(c.Context(), m); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

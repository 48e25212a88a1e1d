package server

import (
	"motoisle/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFavorites handles GET /api/favorites
// @Summary List saved motorcycles
// @Tags favorites
// @Produce json
// @Success 200 {array} models.Motorcycle
// @Router /favorites [get]
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	list, err := s.favoriteService.ListFavorites(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(list)
}

// CheckFavorite handles GET /api/favorites/:id
func (s *Server) CheckFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Motorcycle")
	if err != nil {
		return nil
	}

	saved, err := s.favoriteService.IsFavorite(c.Context(), currentUserID(c), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{"favorite": saved})
}

// AddFavorite handles POST /api/favorites/:id
// @Summary Save a motorcycle
// @Description Saving twice is a no-op, never a duplicate
// @Tags favorites
// @Produce json
// @Param id path int true "Motorcycle ID"
// @Success 200 {object} object{favorite=bool}
// @Failure 404 {object} models.ErrorResponse
// @Router /favorites/{id} [post]
func (s *Server) AddFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Motorcycle")
	if err != nil {
		return nil
	}

	if err := s.favoriteService.AddFavorite(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"favorite": true})
}

// RemoveFavorite handles DELETE /api/favorites/:id
func (s *Server) RemoveFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Motorcycle")
	if err != nil {
		return nil
	}

	if err := s.favoriteService.RemoveFavorite(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"favorite": false})
}

// ToggleFavorite handles POST /api/favorites/:id/toggle
// @Summary Toggle saved state
// @Tags favorites
// @Produce json
// @Param id path int true "Motorcycle ID"
// @Success 200 {object} object{favorite=bool}
// @Router /favorites/{id}/toggle [post]
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Motorcycle")
	if err != nil {
		return nil
	}

	saved, err := s.favoriteService.ToggleFavorite(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"favorite": saved})
}

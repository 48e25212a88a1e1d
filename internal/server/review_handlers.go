package server

import (
	"motoisle/internal/models"
	"motoisle/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetReviews handles GET /api/motorcycles/:id/reviews
func (s *Server) GetReviews(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Motorcycle")
	if err != nil {
		return nil
	}

	reviews, err := s.reviewService.ListReviews(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(reviews)
}

// CreateReview handles POST /api/reviews
// @Summary Leave a review
// @Description Store a 1-5 star review and refresh the listing's rating aggregate
// @Tags reviews
// @Accept json
// @Produce json
// @Success 201 {object} models.Review
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /reviews [post]
func (s *Server) CreateReview(c *fiber.Ctx) error {
	var req struct {
		MotorcycleID uint   `json:"motorcycle_id"`
		UserName     string `json:"user_name"`
		Rating       int    `json:"rating"`
		Comment      string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	review, err := s.reviewService.CreateReview(c.Context(), service.CreateReviewInput{
		MotorcycleID: req.MotorcycleID,
		UserName:     req.UserName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// MarkReviewHelpful handles POST /api/reviews/:id/helpful
func (s *Server) MarkReviewHelpful(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Review")
	if err != nil {
		return nil
	}

	if err := s.reviewService.MarkHelpful(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Marked as helpful"})
}

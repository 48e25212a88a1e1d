package server

import (
	"time"

	"motoisle/internal/models"
	"motoisle/internal/service"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

// parseDate accepts both plain dates and full RFC 3339 timestamps.
func parseDate(raw string) (time.Time, bool) {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// QuoteBooking handles GET /api/motorcycles/:id/quote
// @Summary Price a rental
// @Description Compute days and total cost for a date range without booking
// @Tags bookings
// @Produce json
// @Param id path int true "Motorcycle ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param pickup query string false "Pickup location: shop or delivery"
// @Success 200 {object} service.Quote
// @Failure 400 {object} models.ErrorResponse
// @Router /motorcycles/{id}/quote [get]
func (s *Server) QuoteBooking(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Motorcycle")
	if err != nil {
		return nil
	}

	start, okStart := parseDate(c.Query("start"))
	end, okEnd := parseDate(c.Query("end"))
	if !okStart || !okEnd {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("start and end must be dates in YYYY-MM-DD format"))
	}

	pickup := models.PickupLocation(c.Query("pickup", string(models.PickupShop)))
	quote, err := s.bookingService.QuoteBooking(c.Context(), id, start, end, pickup)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(quote)
}

// CreateBooking handles POST /api/bookings
// @Summary Book a motorcycle
// @Description Create a confirmed booking; days and cost are recomputed server-side
// @Tags bookings
// @Accept json
// @Produce json
// @Success 201 {object} models.Booking
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /bookings [post]
func (s *Server) CreateBooking(c *fiber.Ctx) error {
	var req struct {
		MotorcycleID   uint   `json:"motorcycle_id"`
		StartDate      string `json:"start_date"`
		EndDate        string `json:"end_date"`
		PickupLocation string `json:"pickup_location"`
		PaymentMethod  string `json:"payment_method"`
		CustomerName   string `json:"customer_name"`
		CustomerPhone  string `json:"customer_phone"`
		CustomerEmail  string `json:"customer_email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	start, okStart := parseDate(req.StartDate)
	end, okEnd := parseDate(req.EndDate)
	if !okStart || !okEnd {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("start_date and end_date must be dates in YYYY-MM-DD format"))
	}

	pickup := models.PickupLocation(req.PickupLocation)
	if pickup == "" {
		pickup = models.PickupShop
	}

	userID := currentUserID(c)
	if pickup == models.PickupDelivery && !s.featureFlags.Enabled("delivery_booking", userID) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Delivery bookings are currently disabled"))
	}

	booking, err := s.bookingService.CreateBooking(c.Context(), service.CreateBookingInput{
		MotorcycleID:   req.MotorcycleID,
		UserID:         userID,
		StartDate:      start,
		EndDate:        end,
		PickupLocation: pickup,
		PaymentMethod:  req.PaymentMethod,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		CustomerEmail:  req.CustomerEmail,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetMyBookings handles GET /api/bookings
func (s *Server) GetMyBookings(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	bookings, err := s.bookingService.ListUserBookings(c.Context(), currentUserID(c), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(bookings)
}

// GetBooking handles GET /api/bookings/:id
func (s *Server) GetBooking(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Booking")
	if err != nil {
		return nil
	}

	booking, err := s.bookingService.GetBooking(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	// Bookings are private to their owner; admins can look anything up.
	if booking.UserID != currentUserID(c) && currentRole(c) != models.RoleAdmin {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Booking", id))
	}
	return c.JSON(booking)
}

// GetBookingByCode handles GET /api/bookings/code/:code
func (s *Server) GetBookingByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	booking, err := s.bookingService.GetByConfirmationCode(c.Context(), code)
	if err != nil {
		return respondServiceError(c, err)
	}
	if booking.UserID != currentUserID(c) && currentRole(c) != models.RoleAdmin {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Booking", code))
	}
	return c.JSON(booking)
}

// CancelBooking handles POST /api/bookings/:id/cancel
func (s *Server) CancelBooking(c *fiber.Ctx) error {
	id, err := s.parseID(c, "Booking")
	if err != nil {
		return nil
	}

	if err := s.bookingService.CancelBooking(c.Context(), id, currentUserID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Booking cancelled"})
}

package service

import (
	"context"
	"strings"
	"time"

	"motoisle/internal/middleware"
	"motoisle/internal/models"
	"motoisle/internal/repository"
)

const dayDuration = 24 * time.Hour

type BookingService struct {
	bookingRepo repository.BookingRepository
	motoRepo    repository.MotorcycleRepository
	now         func() time.Time
}

type CreateBookingInput struct {
	MotorcycleID   uint
	UserID         uint
	StartDate      time.Time
	EndDate        time.Time
	PickupLocation models.PickupLocation
	PaymentMethod  string
	CustomerName   string
	CustomerPhone  string
	CustomerEmail  string
}

// Quote is the priced summary of a prospective rental.
type Quote struct {
	Days        int `json:"days"`
	DailyRate   int `json:"daily_rate"`
	DeliveryFee int `json:"delivery_fee"`
	TotalCost   int `json:"total_cost"`
}

func NewBookingService(bookingRepo repository.BookingRepository, motoRepo repository.MotorcycleRepository) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		motoRepo:    motoRepo,
		now:         time.Now,
	}
}

// RentalDays counts billable days for [start, end): any partial day rounds
// up. A non-positive range yields zero days.
func RentalDays(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	days := int(d / dayDuration)
	if d%dayDuration != 0 {
		days++
	}
	return days
}

// PriceQuote computes the rental cost for a motorcycle over a date range.
// The delivery fee applies only when the renter picks delivery and the
// listing offers it.
func PriceQuote(m *models.Motorcycle, start, end time.Time, pickup models.PickupLocation) Quote {
	q := Quote{
		Days:      RentalDays(start, end),
		DailyRate: m.PricePerDay,
	}
	if q.Days == 0 {
		return q
	}
	q.TotalCost = q.Days * q.DailyRate
	if pickup == models.PickupDelivery && m.DeliveryAvailable {
		q.DeliveryFee = m.DeliveryFee
		q.TotalCost += q.DeliveryFee
	}
	return q
}

// QuoteBooking prices a prospective booking without persisting anything.
func (s *BookingService) QuoteBooking(ctx context.Context, motorcycleID uint, start, end time.Time, pickup models.PickupLocation) (*Quote, error) {
	m, err := s.motoRepo.GetByID(ctx, motorcycleID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, models.NewNotFoundError("Motorcycle", motorcycleID)
	}
	q := PriceQuote(m, start, end, pickup)
	return &q, nil
}

// CreateBooking validates the request, recomputes days and cost server-side,
// and persists a confirmed booking with a generated confirmation code.
func (s *BookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	m, err := s.motoRepo.GetByID(ctx, in.MotorcycleID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, models.NewNotFoundError("Motorcycle", in.MotorcycleID)
	}
	if !m.Available {
		return nil, models.NewValidationError("Motorcycle is not available for booking")
	}
	if in.PickupLocation == models.PickupDelivery && !m.DeliveryAvailable {
		return nil, models.NewValidationError("Delivery is not available for this motorcycle")
	}

	overlap, err := s.bookingRepo.HasOverlap(ctx, in.MotorcycleID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, models.NewValidationError("Motorcycle is already booked for the selected dates")
	}

	quote := PriceQuote(m, in.StartDate, in.EndDate, in.PickupLocation)
	booking := &models.Booking{
		MotorcycleID:   in.MotorcycleID,
		UserID:         in.UserID,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		PickupLocation: in.PickupLocation,
		PaymentMethod:  in.PaymentMethod,
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		CustomerEmail:  in.CustomerEmail,
		TotalDays:      quote.Days,
		TotalCost:      quote.TotalCost,
		Status:         models.BookingStatusConfirmed,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	middleware.BookingsCreated.WithLabelValues(string(booking.PickupLocation)).Inc()
	booking.Motorcycle = m
	return booking, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, models.NewNotFoundError("Booking", id)
	}
	return b, nil
}

func (s *BookingService) GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error) {
	b, err := s.bookingRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, models.NewNotFoundError("Booking", code)
	}
	return b, nil
}

func (s *BookingService) ListUserBookings(ctx context.Context, userID uint, limit, offset int) ([]models.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID, limit, offset)
}

// CancelBooking cancels a confirmed booking. Only the booking owner may
// cancel, and only before the rental starts.
func (s *BookingService) CancelBooking(ctx context.Context, id, userID uint) error {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil || b.UserID != userID {
		return models.NewNotFoundError("Booking", id)
	}
	if b.Status != models.BookingStatusConfirmed {
		return models.NewValidationError("Only confirmed bookings can be cancelled")
	}
	if !s.now().Before(b.StartDate) {
		return models.NewValidationError("Bookings cannot be cancelled after the rental has started")
	}
	return s.bookingRepo.UpdateStatus(ctx, id, models.BookingStatusCancelled)
}

func (s *BookingService) validate(in CreateBookingInput) error {
	if in.MotorcycleID == 0 {
		return models.NewValidationError("Motorcycle ID is required")
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return models.NewValidationError("Customer name is required")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return models.NewValidationError("Customer phone is required")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		return models.NewValidationError("Start and end dates are required")
	}
	switch in.PickupLocation {
	case models.PickupShop, models.PickupDelivery:
	default:
		return models.NewValidationError("Pickup location must be 'shop' or 'delivery'")
	}

	today := s.now().Truncate(dayDuration)
	if in.StartDate.Before(today) {
		return models.NewValidationError("Start date cannot be in the past")
	}
	if !in.EndDate.After(in.StartDate) {
		return models.NewValidationError("End date must be after start date")
	}
	return nil
}

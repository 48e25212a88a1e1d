package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"motoisle/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uint) (*models.Booking, error)
	GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Booking, error)
	HasOverlap(ctx context.Context, motorcycleID uint, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create inserts the booking and derives the confirmation code from the
// assigned id in the same transaction. The unique-column placeholder is only
// visible inside the transaction.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if booking.ConfirmationCode == "" {
			booking.ConfirmationCode = "pending-" + uuid.NewString()
		}
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		booking.ConfirmationCode = fmt.Sprintf("BOOK-%06d", booking.ID)
		return tx.Model(booking).
			UpdateColumn("confirmation_code", booking.ConfirmationCode).Error
	})
}

func (r *bookingRepository) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Motorcycle").
		First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) GetByConfirmationCode(ctx context.Context, code string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Motorcycle").
		Where("confirmation_code = ?", code).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Motorcycle").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&bookings).Error
	return bookings, err
}

// HasOverlap reports whether a confirmed booking for the motorcycle
// intersects [start, end). Two bookings overlap when each starts before the
// other ends.
func (r *bookingRepository) HasOverlap(ctx context.Context, motorcycleID uint, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("motorcycle_id = ? AND status = ?", motorcycleID, models.BookingStatusConfirmed).
		Where("start_date < ? AND end_date > ?", end, start).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}

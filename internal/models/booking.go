package models

import (
	"time"

	"gorm.io/gorm"
)

// PickupLocation selects where the renter takes possession of the bike.
type PickupLocation string

const (
	PickupShop     PickupLocation = "shop"
	PickupDelivery PickupLocation = "delivery"
)

// BookingStatus tracks the lifecycle of a booking.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking represents a confirmed rental reservation.
type Booking struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	ConfirmationCode string `gorm:"unique;not null" json:"confirmation_code"`

	MotorcycleID uint        `gorm:"not null;index" json:"motorcycle_id"`
	Motorcycle   *Motorcycle `gorm:"foreignKey:MotorcycleID" json:"motorcycle,omitempty"`
	UserID       uint        `gorm:"not null;index" json:"user_id"`

	StartDate time.Time `gorm:"not null" json:"start_date"`
	EndDate   time.Time `gorm:"not null" json:"end_date"`

	PickupLocation PickupLocation `gorm:"type:varchar(20);not null;default:shop" json:"pickup_location"`
	PaymentMethod  string         `json:"payment_method"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`

	// TotalDays and TotalCost are recomputed server-side at creation time,
	// never trusted from the client.
	TotalDays int `json:"total_days"`
	TotalCost int `json:"total_cost"`

	Status BookingStatus `gorm:"type:varchar(20);not null;default:confirmed" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

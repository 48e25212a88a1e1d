package models

import (
	"time"

	"gorm.io/gorm"
)

// VerificationTier is the shop trust badge shown on listings.
type VerificationTier string

const (
	TierUnverified VerificationTier = "unverified"
	TierVerified   VerificationTier = "verified"
	TierPremium    VerificationTier = "premium"
)

// ShopStatus tracks the moderation state of a shop.
type ShopStatus string

const (
	ShopStatusPending   ShopStatus = "pending"
	ShopStatusActive    ShopStatus = "active"
	ShopStatusRejected  ShopStatus = "rejected"
	ShopStatusSuspended ShopStatus = "suspended"
)

// Shop represents a rental shop that owns motorcycle listings.
type Shop struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"index" json:"location"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`

	OwnerID *uint `gorm:"index" json:"owner_id,omitempty"`

	Tier   VerificationTier `gorm:"type:varchar(20);not null;default:unverified" json:"tier"`
	Status ShopStatus       `gorm:"type:varchar(20);not null;default:pending" json:"status"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	OperatingHours string     `json:"operating_hours"`
	PaymentMethods StringList `gorm:"type:text" json:"payment_methods"`

	// Motorcycles is populated on detail reads; list endpoints leave it empty.
	Motorcycles []Motorcycle `gorm:"foreignKey:ShopID" json:"motorcycles,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Premium reports whether the shop carries the premium badge.
func (s *Shop) Premium() bool {
	return s.Tier == TierPremium
}

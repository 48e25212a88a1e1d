package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a rating left against a motorcycle listing.
type Review struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	MotorcycleID uint   `gorm:"not null;index" json:"motorcycle_id"`
	UserName     string `gorm:"not null" json:"user_name"`
	// Rating is constrained to 1..5 at the service layer.
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`
	Helpful int    `gorm:"default:0" json:"helpful"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package models

import "time"

// Favorite is a (user, motorcycle) save. The composite unique index keeps a
// motorcycle from appearing more than once in one user's list.
type Favorite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_fav_user_moto" json:"user_id"`
	MotorcycleID uint      `gorm:"not null;uniqueIndex:idx_fav_user_moto" json:"motorcycle_id"`
	CreatedAt    time.Time `json:"created_at"`
}

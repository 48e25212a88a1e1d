package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// StringList is a JSON-encoded string slice column. Keeps list-valued
// attributes (images, features, tags) portable across Postgres and the
// SQLite test database.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Motorcycle represents a rentable listing owned by a shop.
type Motorcycle struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null;index" json:"name"`
	Brand       string     `gorm:"not null;index" json:"brand"`
	Model       string     `json:"model"`
	Year        int        `json:"year"`
	Category    string     `gorm:"index" json:"category"`
	PricePerDay int        `gorm:"not null" json:"price_per_day"`
	Location    string     `gorm:"index" json:"location"`
	Description string     `gorm:"type:text" json:"description"`
	Images      StringList `gorm:"type:text" json:"images"`
	Features    StringList `gorm:"type:text" json:"features"`

	ShopID   uint   `gorm:"not null;index" json:"shop_id"`
	Shop     *Shop  `gorm:"foreignKey:ShopID" json:"shop,omitempty"`
	ShopName string `json:"shop_name"`

	Available bool `gorm:"default:true" json:"available"`
	Featured  bool `gorm:"default:false" json:"featured"`

	// DeliveryFee only applies when DeliveryAvailable and the renter picks
	// delivery instead of shop pickup.
	DeliveryAvailable bool `gorm:"default:false" json:"delivery_available"`
	DeliveryFee       int  `json:"delivery_fee"`
	Deposit           int  `json:"deposit"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// BlogPost is an editorial article on the marketplace, addressed by slug.
type BlogPost struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Slug    string `gorm:"unique;not null;index" json:"slug"`
	Title   string `gorm:"not null" json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `gorm:"type:text" json:"content"`

	Author   string     `json:"author"`
	Category string     `gorm:"index" json:"category"`
	Tags     StringList `gorm:"type:text" json:"tags"`

	Published bool `gorm:"default:true" json:"published"`
	Featured  bool `gorm:"default:false" json:"featured"`
	ViewCount int  `gorm:"default:0" json:"view_count"`

	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Carousel is a homepage banner slot managed from the admin back office.
type Carousel struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Title     string    `gorm:"size:255" json:"title"`
	ImageURL  string    `gorm:"type:text;not null" json:"imageUrl"`
	LinkURL   string    `gorm:"type:text" json:"linkUrl"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Carousel) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

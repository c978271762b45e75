package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category levels form a fixed 3-deep tree: 1 (top) -> 2 -> 3.
// Products attach only to level-3 categories.
const (
	CategoryLevelTop    = 1
	CategoryLevelSecond = 2
	CategoryLevelThird  = 3
)

type Category struct {
	ID        string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Slug      string         `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Level     int            `gorm:"not null;default:1" json:"level"`
	ParentID  *string        `gorm:"size:36;index" json:"parentId,omitempty"`
	Parent    *Category      `gorm:"foreignKey:ParentID" json:"-"`
	Children  []Category     `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating and Review are unique per (user, product); a repeated submission
// updates the existing row instead of inserting a duplicate.

type Rating struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_user_product_rating" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	ProductID string    `gorm:"size:36;not null;uniqueIndex:idx_user_product_rating" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"-"`
	Value     float64   `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Rating) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

type Review struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_user_product_review" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductID string    `gorm:"size:36;not null;uniqueIndex:idx_user_product_review" json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"-"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

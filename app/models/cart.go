package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart aggregates (TotalItem, TotalPrice, TotalDiscountedPrice, Discount)
// are denormalized copies of the item sums. They are recomputed from the
// full item set after every mutation, never incremented in place.
type Cart struct {
	ID                   string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID               string          `gorm:"size:36;not null;uniqueIndex" json:"userId"`
	User                 *User           `gorm:"foreignKey:UserID" json:"-"`
	CartItems            []CartItem      `json:"cartItems"`
	TotalItem            int             `gorm:"not null;default:0" json:"totalItem"`
	TotalPrice           decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"totalPrice"`
	TotalDiscountedPrice decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"totalDiscountedPrice"`
	Discount             decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0" json:"discount"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

// CartTotals is the recomputed aggregate set persisted back onto a Cart.
type CartTotals struct {
	TotalItem            int
	TotalPrice           decimal.Decimal
	TotalDiscountedPrice decimal.Decimal
	Discount             decimal.Decimal
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VariantDefault is the sentinel stored when a size or color was not chosen.
const VariantDefault = "default"

// CartItem stores an add-time snapshot of the product's prices. The snapshot
// is refreshed only when the same (cart, product, size, color) tuple is
// touched again, not on reads.
type CartItem struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CartID          string          `gorm:"size:36;not null;uniqueIndex:idx_cart_variant" json:"cartId"`
	Cart            *Cart           `gorm:"foreignKey:CartID" json:"-"`
	ProductID       string          `gorm:"size:36;not null;uniqueIndex:idx_cart_variant" json:"productId"`
	Product         *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Size            string          `gorm:"size:50;not null;default:'default';uniqueIndex:idx_cart_variant" json:"size"`
	Color           string          `gorm:"size:50;not null;default:'default';uniqueIndex:idx_cart_variant" json:"color"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	Price           decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	DiscountedPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"discountedPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (ci *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if ci.ID == "" {
		ci.ID = uuid.New().String()
	}
	return
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is an immutable snapshot of a cart line at order-creation time.
type OrderItem struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID         string          `gorm:"size:36;not null;index" json:"orderId"`
	Order           *Order          `gorm:"foreignKey:OrderID" json:"-"`
	ProductID       string          `gorm:"size:36;not null;index" json:"productId"`
	Product         *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	ProductTitle    string          `gorm:"size:255;not null" json:"productTitle"`
	Size            string          `gorm:"size:50;not null;default:'default'" json:"size"`
	Color           string          `gorm:"size:50;not null;default:'default'" json:"color"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	Price           decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	DiscountedPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"discountedPrice"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == "" {
		oi.ID = uuid.New().String()
	}
	return
}

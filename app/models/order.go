package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order status state machine. The customer-facing transition is
// PENDING -> PLACED (driven by payment capture); SHIPPED, DELIVERED and
// CANCELLED are reached administratively.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPlaced    = "PLACED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Order copies the cart's aggregate totals at checkout time. It is a
// financial record: its totals and items never track later cart or catalog
// changes.
type Order struct {
	ID                   string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderCode            string          `gorm:"type:varchar(255);unique;not null" json:"orderCode"`
	UserID               string          `gorm:"size:36;not null;index" json:"userId"`
	User                 *User           `gorm:"foreignKey:UserID" json:"-"`
	AddressID            string          `gorm:"size:36;not null" json:"addressId"`
	Address              *Address        `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	OrderItems           []OrderItem     `json:"orderItems"`
	Payments             []Payment       `json:"payments,omitempty"`
	TotalItem            int             `gorm:"not null" json:"totalItem"`
	TotalPrice           decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalPrice"`
	TotalDiscountedPrice decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"totalDiscountedPrice"`
	Discount             decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"discount"`
	OrderStatus          string          `gorm:"size:20;not null;default:'PENDING'" json:"orderStatus"`
	OrderDate            time.Time       `gorm:"not null" json:"orderDate"`
	DeliveredAt          *time.Time      `json:"deliveredAt,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
	DeletedAt            gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

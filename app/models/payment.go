package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	PaymentStatusCompleted = "COMPLETED"
)

// Payment is created only after the gateway reports the payment as captured.
// The unique index on OrderID makes a replayed confirmation unable to insert
// a second row for the same order.
type Payment struct {
	ID                string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID           string          `gorm:"size:36;not null;uniqueIndex" json:"orderId"`
	Order             *Order          `gorm:"foreignKey:OrderID" json:"-"`
	UserID            string          `gorm:"size:36;not null;index" json:"userId"`
	RazorpayOrderID   string          `gorm:"size:100;not null;index" json:"razorpayOrderId"`
	RazorpayPaymentID string          `gorm:"size:100;not null" json:"razorpayPaymentId"`
	Amount            decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"amount"`
	Currency          string          `gorm:"size:10;not null;default:'INR'" json:"currency"`
	PaymentStatus     string          `gorm:"size:20;not null" json:"paymentStatus"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

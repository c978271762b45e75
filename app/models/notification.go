package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeNewOrder  = "NEW_ORDER"
	NotificationTypeNewReview = "NEW_REVIEW"
	NotificationTypeLowStock  = "LOW_STOCK"
)

// Notification is an append-only event log per admin user. IsRead flips
// once and never reverts.
type Notification struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID    string    `gorm:"size:36;not null;index" json:"userId"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Type      string    `gorm:"size:30;not null" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	RefID     string    `gorm:"size:36" json:"refId,omitempty"`
	IsRead    bool      `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return
}

package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID         string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName  string    `gorm:"size:100;not null" json:"firstName"`
	LastName   string    `gorm:"size:100;not null" json:"lastName"`
	Email      string    `gorm:"size:100;not null;uniqueIndex" json:"email"`
	Phone      string    `gorm:"size:20" json:"phone"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Role       string    `gorm:"size:20;default:'CUSTOMER';not null" json:"role"`
	IsVerified bool      `gorm:"default:false" json:"isVerified"`
	Addresses  []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
)

package fakers

import (
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/shopmitra/shopmitra/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func UserFaker(db *gorm.DB) *models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	return &models.User{
		ID:         uuid.New().String(),
		FirstName:  faker.FirstName(),
		LastName:   faker.LastName(),
		Email:      faker.Email(),
		Phone:      faker.Phonenumber(),
		Password:   string(hashed),
		Role:       models.RoleCustomer,
		IsVerified: true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

// AdminFaker seeds a deterministic back office login.
func AdminFaker(db *gorm.DB) *models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin12345"), bcrypt.DefaultCost)

	return &models.User{
		ID:         uuid.New().String(),
		FirstName:  "Admin",
		LastName:   "User",
		Email:      "admin@shopmitra.local",
		Password:   string(hashed),
		Role:       models.RoleAdmin,
		IsVerified: true,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

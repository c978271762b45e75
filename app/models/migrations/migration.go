package migrations

import (
	"github.com/shopmitra/shopmitra/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.ProductSize{},
		&models.ProductColor{},
		&models.ProductPhoto{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Rating{},
		&models.Review{},
		&models.Notification{},
		&models.Carousel{},
		&models.VerificationToken{},
		&models.PasswordResetToken{},
	)
}

package repositories

import (
	"context"

	"github.com/shopmitra/shopmitra/app/models"
	"gorm.io/gorm"
)

type CartItemRepositoryImpl interface {
	Add(ctx context.Context, item *models.CartItem) error
	Update(ctx context.Context, item *models.CartItem) error
	Delete(ctx context.Context, cartID, productID, size, color string) error
	GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error)
	FindVariant(ctx context.Context, cartID, productID, size, color string) (*models.CartItem, error)
	ClearCartItems(ctx context.Context, db *gorm.DB, cartID string) error
	DeleteByProductID(ctx context.Context, db *gorm.DB, productID string) error
}

type CartItemRepository struct {
	DB *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &CartItemRepository{db}
}

func (r *CartItemRepository) Add(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *CartItemRepository) Update(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *CartItemRepository) Delete(ctx context.Context, cartID, productID, size, color string) error {
	return r.DB.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND size = ? AND color = ?", cartID, productID, size, color).
		Delete(&models.CartItem{}).Error
}

func (r *CartItemRepository) GetByCartID(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindVariant resolves the unique (cart, product, size, color) line.
func (r *CartItemRepository) FindVariant(ctx context.Context, cartID, productID, size, color string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Where("cart_id = ? AND product_id = ? AND size = ? AND color = ?", cartID, productID, size, color).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *CartItemRepository) ClearCartItems(ctx context.Context, db *gorm.DB, cartID string) error {
	if db == nil {
		db = r.DB
	}
	return db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

func (r *CartItemRepository) DeleteByProductID(ctx context.Context, db *gorm.DB, productID string) error {
	if db == nil {
		db = r.DB
	}
	return db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.CartItem{}).Error
}

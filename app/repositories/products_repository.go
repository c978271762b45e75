package repositories

import (
	"context"

	"github.com/shopmitra/shopmitra/app/models"
	"gorm.io/gorm"
)

type ProductFilter struct {
	CategoryID string
	Search     string
	Page       int
	PageSize   int
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetBySlug(ctx context.Context, slug string) (*models.Product, error)
	Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
	DeleteCascade(ctx context.Context, db *gorm.DB, productID string) error
	FindLowStock(ctx context.Context, threshold int) ([]models.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Preload("Colors").
		Preload("Colors.Photos").
		Preload("Category").
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Preload("Colors").
		Preload("Colors.Photos").
		Preload("Category").
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Find(ctx context.Context, filter ProductFilter) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR brand LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var products []models.Product
	err := query.
		Preload("Sizes").
		Preload("Colors").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// DeleteCascade removes the product together with every row that references
// it. Runs against the supplied transaction handle; the caller owns
// commit/rollback.
func (r *productRepository) DeleteCascade(ctx context.Context, db *gorm.DB, productID string) error {
	if db == nil {
		db = r.db
	}
	db = db.WithContext(ctx)

	if err := db.Where("product_id = ?", productID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", productID).Delete(&models.OrderItem{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", productID).Delete(&models.Review{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", productID).Delete(&models.Rating{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", productID).Delete(&models.ProductSize{}).Error; err != nil {
		return err
	}
	if err := db.Where("product_id = ?", productID).Delete(&models.ProductColor{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", productID).Delete(&models.Product{}).Error
}

func (r *productRepository) FindLowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("quantity <= ?", threshold).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

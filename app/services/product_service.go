package services

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
	"gorm.io/gorm"
)

type ProductService struct {
	db           *gorm.DB
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepository
	notifier     *NotificationService
	lowStock     int
}

func NewProductService(
	db *gorm.DB,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepository,
	notifier *NotificationService,
	lowStockThreshold int,
) *ProductService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = 5
	}
	return &ProductService{
		db:           db,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		notifier:     notifier,
		lowStock:     lowStockThreshold,
	}
}

func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.CategoryID != "" {
		category, err := s.categoryRepo.FindByID(ctx, product.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch category: %w", err)
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		if category.Level != models.CategoryLevelThird {
			return nil, fmt.Errorf("%w: products attach to third-level categories", ErrCategoryNotFound)
		}
	}

	if product.Slug == "" {
		product.Slug = slug.Make(product.Title)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return s.productRepo.GetByID(ctx, product.ID)
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) FindProducts(ctx context.Context, filter repositories.ProductFilter) ([]models.Product, int64, error) {
	return s.productRepo.Find(ctx, filter)
}

func (s *ProductService) UpdateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	existing, err := s.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if existing == nil {
		return nil, ErrProductNotFound
	}

	if product.Slug == "" {
		product.Slug = existing.Slug
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product.Quantity <= s.lowStock && s.notifier != nil {
		s.notifier.LowStock(ctx, product)
	}
	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct removes the product and every dependent row (cart items,
// order items, reviews, ratings, sizes, colors) in a single transaction.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return ErrProductNotFound
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.productRepo.DeleteCascade(ctx, tx, id)
	})
}

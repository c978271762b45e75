package services

import (
	"context"
	"fmt"

	"github.com/shopmitra/shopmitra/app/configs"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
	"github.com/shopmitra/shopmitra/app/utils/calc"
)

type CartService struct {
	cartRepo     repositories.CartRepositoryImpl
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartRepo repositories.CartRepositoryImpl, cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// GetOrCreateCart returns the user's cart, lazily creating an empty one.
// Two concurrent callers may both attempt the insert; the loser's
// uniqueness violation is resolved by re-fetching the winner's row.
func (s *CartService) GetOrCreateCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart != nil {
		return cart, nil
	}

	cart = &models.Cart{UserID: userID}
	if createErr := s.cartRepo.Create(ctx, cart); createErr != nil {
		existing, err := s.cartRepo.GetByUserID(ctx, userID)
		if err == nil && existing != nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create cart: %w", createErr)
	}
	return cart, nil
}

// AddItem merges into the existing (cart, product, size, color) line or
// creates a new one with the product's current prices snapshotted. A merged
// add also re-syncs the snapshot to the current catalog prices.
func (s *CartService) AddItem(ctx context.Context, userID, productID, size, color string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if size == "" {
		size = models.VariantDefault
	}
	if color == "" {
		color = models.VariantDefault
	}

	existing, err := s.cartItemRepo.FindVariant(ctx, cart.ID, productID, size, color)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing cart item: %w", err)
	}

	if existing != nil {
		existing.Quantity += quantity
		existing.Price = product.Price
		existing.DiscountedPrice = product.DiscountedPrice
		if err := s.cartItemRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	} else {
		item := &models.CartItem{
			CartID:          cart.ID,
			ProductID:       productID,
			Size:            size,
			Color:           color,
			Quantity:        quantity,
			Price:           product.Price,
			DiscountedPrice: product.DiscountedPrice,
		}
		if err := s.cartItemRepo.Add(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to add cart item: %w", err)
		}
	}

	if err := s.refreshTotals(ctx, cart.ID); err != nil {
		return nil, err
	}

	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

// GetCart returns the cart with items and product detail. Stored aggregates
// are read-repaired: a fresh recomputation always wins over the stored row.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	detailed, err := s.cartRepo.GetCartWithItems(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}
	if detailed == nil {
		return cart, nil
	}

	totals := calc.CartTotals(detailed.CartItems)
	if totals.TotalItem != detailed.TotalItem ||
		!totals.TotalPrice.Equal(detailed.TotalPrice) ||
		!totals.TotalDiscountedPrice.Equal(detailed.TotalDiscountedPrice) ||
		!totals.Discount.Equal(detailed.Discount) {
		if err := s.cartRepo.UpdateTotals(ctx, nil, detailed.ID, totals); err != nil {
			configs.Logger.Warn().Err(err).Str("cart_id", detailed.ID).Msg("cart read-repair write failed")
		}
		detailed.TotalItem = totals.TotalItem
		detailed.TotalPrice = totals.TotalPrice
		detailed.TotalDiscountedPrice = totals.TotalDiscountedPrice
		detailed.Discount = totals.Discount
	}

	return detailed, nil
}

// UpdateItemQuantity sets the absolute quantity of an existing line; a
// non-positive quantity removes the line.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, productID, size, color string, quantity int) (*models.Cart, error) {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if size == "" {
		size = models.VariantDefault
	}
	if color == "" {
		color = models.VariantDefault
	}

	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, productID, size, color)
	}

	item, err := s.cartItemRepo.FindVariant(ctx, cart.ID, productID, size, color)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart item: %w", err)
	}
	if item == nil {
		return nil, ErrCartItemMissing
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	item.Quantity = quantity
	item.Price = product.Price
	item.DiscountedPrice = product.DiscountedPrice
	if err := s.cartItemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	if err := s.refreshTotals(ctx, cart.ID); err != nil {
		return nil, err
	}
	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID, size, color string) (*models.Cart, error) {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if size == "" {
		size = models.VariantDefault
	}
	if color == "" {
		color = models.VariantDefault
	}

	if err := s.cartItemRepo.Delete(ctx, cart.ID, productID, size, color); err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}

	if err := s.refreshTotals(ctx, cart.ID); err != nil {
		return nil, err
	}
	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

// ClearCart empties the cart. Checkout does not call this; emptying the
// basket after an order is an explicit client action.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cartItemRepo.ClearCartItems(ctx, nil, cart.ID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	if err := s.refreshTotals(ctx, cart.ID); err != nil {
		return nil, err
	}
	return s.cartRepo.GetCartWithItems(ctx, cart.ID)
}

func (s *CartService) refreshTotals(ctx context.Context, cartID string) error {
	items, err := s.cartItemRepo.GetByCartID(ctx, cartID)
	if err != nil {
		return fmt.Errorf("failed to load cart items: %w", err)
	}
	if err := s.cartRepo.UpdateTotals(ctx, nil, cartID, calc.CartTotals(items)); err != nil {
		return fmt.Errorf("failed to update cart totals: %w", err)
	}
	return nil
}

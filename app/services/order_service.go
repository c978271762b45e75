package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopmitra/shopmitra/app/configs"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
	"gorm.io/gorm"
)

type OrderService struct {
	db            *gorm.DB
	cartRepo      repositories.CartRepositoryImpl
	orderRepo     repositories.OrderRepository
	orderItemRepo repositories.OrderItemRepository
	addressRepo   repositories.AddressRepository
}

func NewOrderService(
	db *gorm.DB,
	cartRepo repositories.CartRepositoryImpl,
	orderRepo repositories.OrderRepository,
	orderItemRepo repositories.OrderItemRepository,
	addressRepo repositories.AddressRepository,
) *OrderService {
	return &OrderService{
		db:            db,
		cartRepo:      cartRepo,
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
		addressRepo:   addressRepo,
	}
}

// CreateOrder snapshots the user's current cart plus a shipping address into
// an immutable order. The order and all its items are written in one
// transaction; the cart itself is left untouched so the client can still
// review it, and clears it explicitly afterwards.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, address *models.Address) (*models.Order, error) {
	cart, err := s.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart == nil {
		return nil, ErrCartEmpty
	}

	detailed, err := s.cartRepo.GetCartWithItems(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}
	if detailed == nil || len(detailed.CartItems) == 0 {
		return nil, ErrCartEmpty
	}

	if address.ID != "" {
		existing, err := s.addressRepo.FindByID(ctx, address.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch address: %w", err)
		}
		if existing == nil || existing.UserID != userID {
			return nil, ErrAddressNotFound
		}
		address = existing
	} else {
		address.UserID = userID
		if err := s.addressRepo.Create(ctx, address); err != nil {
			return nil, fmt.Errorf("failed to save address: %w", err)
		}
	}

	orderCode := fmt.Sprintf("INV-%s-%s", time.Now().Format("20060102"), uuid.New().String()[:8])
	order := &models.Order{
		OrderCode:            orderCode,
		UserID:               userID,
		AddressID:            address.ID,
		TotalItem:            detailed.TotalItem,
		TotalPrice:           detailed.TotalPrice,
		TotalDiscountedPrice: detailed.TotalDiscountedPrice,
		Discount:             detailed.Discount,
		OrderStatus:          models.OrderStatusPending,
		OrderDate:            time.Now(),
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]models.OrderItem, 0, len(detailed.CartItems))
	for _, ci := range detailed.CartItems {
		title := ""
		if ci.Product != nil {
			title = ci.Product.Title
		}
		orderItems = append(orderItems, models.OrderItem{
			OrderID:         order.ID,
			ProductID:       ci.ProductID,
			ProductTitle:    title,
			Size:            ci.Size,
			Color:           ci.Color,
			Quantity:        ci.Quantity,
			Price:           ci.Price,
			DiscountedPrice: ci.DiscountedPrice,
		})
	}

	if err := s.orderItemRepo.BulkCreate(ctx, tx, orderItems); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	configs.Logger.Info().
		Str("order_id", order.ID).
		Str("order_code", order.OrderCode).
		Str("user_id", userID).
		Msg("order created")

	return s.orderRepo.GetByIDWithRelations(ctx, order.ID)
}

func (s *OrderService) FindOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) UsersOrderHistory(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order history: %w", err)
	}
	return orders, nil
}

// PlacedOrder is the payment-confirmation hook. It is idempotent: placing an
// already-placed order is a no-op, not an error.
func (s *OrderService) PlacedOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.transition(ctx, orderID, models.OrderStatusPlaced, models.OrderStatusPending)
}

func (s *OrderService) ShippedOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.transition(ctx, orderID, models.OrderStatusShipped, models.OrderStatusPlaced)
}

func (s *OrderService) DeliveredOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.OrderStatus == models.OrderStatusDelivered {
		return order, nil
	}
	if order.OrderStatus != models.OrderStatusShipped {
		return nil, fmt.Errorf("%w: %s -> %s", ErrOrderTransition, order.OrderStatus, models.OrderStatusDelivered)
	}
	if err := s.orderRepo.SetDeliveredAt(ctx, orderID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *OrderService) CancelOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	switch order.OrderStatus {
	case models.OrderStatusCancelled:
		return order, nil
	case models.OrderStatusDelivered:
		return nil, fmt.Errorf("%w: %s -> %s", ErrOrderTransition, order.OrderStatus, models.OrderStatusCancelled)
	}
	if err := s.orderRepo.UpdateStatus(ctx, nil, orderID, models.OrderStatusCancelled); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return s.orderRepo.GetByID(ctx, orderID)
}

func (s *OrderService) AllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orderRepo.GetAllOrders(ctx)
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.Delete(ctx, orderID)
}

func (s *OrderService) transition(ctx context.Context, orderID, target, required string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.OrderStatus == target {
		return order, nil
	}
	if order.OrderStatus != required {
		return nil, fmt.Errorf("%w: %s -> %s", ErrOrderTransition, order.OrderStatus, target)
	}
	if err := s.orderRepo.UpdateStatus(ctx, nil, orderID, target); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	order.OrderStatus = target
	return order, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/shopmitra/shopmitra/app/configs"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
	"github.com/shopmitra/shopmitra/app/utils/calc"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const paymentCurrency = "INR"

// PaymentOrder is what the client needs to open the gateway's hosted
// checkout: the gateway-side order handle, the amount in minor units, the
// currency and the public key.
type PaymentOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

type PaymentService struct {
	db          *gorm.DB
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepositoryImpl
	gateway     PaymentGateway
	publicKey   string
	notifier    *NotificationService
}

func NewPaymentService(
	db *gorm.DB,
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepositoryImpl,
	gateway PaymentGateway,
	publicKey string,
	notifier *NotificationService,
) *PaymentService {
	return &PaymentService{
		db:          db,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		publicKey:   publicKey,
		notifier:    notifier,
	}
}

// CreatePaymentOrder opens a gateway-side payment order for the given
// internal order. The charge amount is the order's discounted total in
// paise; a non-positive amount is rejected before any gateway call.
func (s *PaymentService) CreatePaymentOrder(ctx context.Context, orderID string) (*PaymentOrder, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	amount := calc.ToMinorUnits(order.TotalDiscountedPrice)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	// Tag the gateway order with internal ids for later correlation.
	notes := map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
	}
	gwOrder, err := s.gateway.CreateOrder(amount, paymentCurrency, order.OrderCode, notes)
	if err != nil {
		configs.Logger.Error().Err(err).Str("order_id", order.ID).Msg("gateway order creation failed")
		return nil, err
	}

	return &PaymentOrder{
		OrderID:  gwOrder.ID,
		Amount:   amount,
		Currency: paymentCurrency,
		Key:      s.publicKey,
	}, nil
}

// UpdatePaymentInformation reconciles a client-reported checkout result.
// Client-supplied identifiers are verified against the gateway, never
// trusted: the payment and order are re-fetched from the gateway and the
// payment's order_id must match the handle the client claims. Only a
// captured payment creates the Payment row and places the order, in one
// transaction. Replays find the order already placed and return without
// side effects.
func (s *PaymentService) UpdatePaymentInformation(ctx context.Context, paymentID, orderID, gatewayOrderID string) error {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return ErrOrderNotFound
	}

	if order.OrderStatus == models.OrderStatusPlaced {
		existing, err := s.paymentRepo.FindByOrderID(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("failed to fetch payment: %w", err)
		}
		if existing != nil {
			configs.Logger.Info().Str("order_id", order.ID).Msg("payment already reconciled, skipping")
			return nil
		}
	}

	gwPayment, err := s.gateway.FetchPayment(paymentID)
	if err != nil {
		configs.Logger.Error().Err(err).Str("payment_id", paymentID).Msg("gateway payment fetch failed")
		return ErrPaymentVerification
	}

	gwOrder, err := s.gateway.FetchOrder(gatewayOrderID)
	if err != nil {
		configs.Logger.Error().Err(err).Str("gateway_order_id", gatewayOrderID).Msg("gateway order fetch failed")
		return ErrPaymentVerification
	}

	if gwPayment.OrderID != gwOrder.ID {
		// Tamper signal: the payment the client presented does not belong
		// to the gateway order it claims. Detail stays server-side.
		configs.Logger.Warn().
			Str("order_id", order.ID).
			Str("payment_id", paymentID).
			Str("claimed_gateway_order", gatewayOrderID).
			Str("actual_gateway_order", gwPayment.OrderID).
			Msg("gateway order id mismatch on payment verification")
		return ErrPaymentVerification
	}

	if gwPayment.Status != GatewayPaymentCaptured {
		return fmt.Errorf("%w: gateway reports status %q", ErrPaymentNotCaptured, gwPayment.Status)
	}

	payment := &models.Payment{
		OrderID:           order.ID,
		UserID:            order.UserID,
		RazorpayOrderID:   gwOrder.ID,
		RazorpayPaymentID: gwPayment.ID,
		Amount:            decimal.NewFromInt(gwPayment.Amount).Div(decimal.NewFromInt(100)),
		Currency:          gwPayment.Currency,
		PaymentStatus:     models.PaymentStatusCompleted,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		if err := s.orderRepo.UpdateStatus(ctx, tx, order.ID, models.OrderStatusPlaced); err != nil {
			return fmt.Errorf("failed to place order: %w", err)
		}
		return nil
	})
	if txErr != nil {
		// A duplicate payment row means a concurrent replay won the race;
		// the order is placed either way.
		if existing, ferr := s.paymentRepo.FindByOrderID(ctx, order.ID); ferr == nil && existing != nil {
			configs.Logger.Info().Str("order_id", order.ID).Msg("payment already recorded by concurrent reconciliation")
			return nil
		}
		return txErr
	}

	configs.Logger.Info().
		Str("order_id", order.ID).
		Str("razorpay_payment_id", gwPayment.ID).
		Msg("payment captured, order placed")

	if s.notifier != nil {
		s.notifier.OrderPlaced(ctx, order)
	}
	return nil
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leekchan/accounting"
	"github.com/segmentio/kafka-go"
	"github.com/shopmitra/shopmitra/app/configs"
	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
)

// NotificationService is a best-effort side channel: it records admin-facing
// events and, when a broker is configured, publishes them to Kafka. Nothing
// here may fail the calling workflow; errors are logged and dropped.
type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepositoryImpl
	writer           *kafka.Writer
	money            accounting.Accounting
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepositoryImpl,
	writer *kafka.Writer,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		writer:           writer,
		money:            accounting.Accounting{Symbol: "₹", Precision: 2},
	}
}

func (s *NotificationService) OrderPlaced(ctx context.Context, order *models.Order) {
	message := fmt.Sprintf("New order %s placed, total %s",
		order.OrderCode, s.money.FormatMoney(order.TotalDiscountedPrice.InexactFloat64()))
	s.recordForAdmins(ctx, models.NotificationTypeNewOrder, message, order.ID)
	s.publish(models.NotificationTypeNewOrder, map[string]interface{}{
		"orderId":   order.ID,
		"orderCode": order.OrderCode,
		"userId":    order.UserID,
	})
}

func (s *NotificationService) ReviewCreated(ctx context.Context, review *models.Review, product *models.Product) {
	message := fmt.Sprintf("New review on %q", product.Title)
	s.recordForAdmins(ctx, models.NotificationTypeNewReview, message, review.ID)
	s.publish(models.NotificationTypeNewReview, map[string]interface{}{
		"reviewId":  review.ID,
		"productId": product.ID,
	})
}

func (s *NotificationService) LowStock(ctx context.Context, product *models.Product) {
	message := fmt.Sprintf("Low stock: %q has %d left", product.Title, product.Quantity)
	s.recordForAdmins(ctx, models.NotificationTypeLowStock, message, product.ID)
	s.publish(models.NotificationTypeLowStock, map[string]interface{}{
		"productId": product.ID,
		"quantity":  product.Quantity,
	})
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.notificationRepo.FindByUserID(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.notificationRepo.UnreadCount(ctx, userID)
}

func (s *NotificationService) recordForAdmins(ctx context.Context, eventType, message, refID string) {
	admins, err := s.userRepo.FindAdmins(ctx)
	if err != nil {
		configs.Logger.Warn().Err(err).Msg("notification: failed to list admins")
		return
	}
	for _, admin := range admins {
		n := &models.Notification{
			UserID:  admin.ID,
			Type:    eventType,
			Message: message,
			RefID:   refID,
		}
		if err := s.notificationRepo.Create(ctx, n); err != nil {
			configs.Logger.Warn().Err(err).Str("admin_id", admin.ID).Msg("notification: failed to record event")
		}
	}
}

// publish is fire-and-forget; the write happens off the request goroutine
// with its own deadline.
func (s *NotificationService) publish(eventType string, payload map[string]interface{}) {
	if s.writer == nil {
		return
	}

	payload["type"] = eventType
	payload["at"] = time.Now().Format(time.RFC3339)
	value, err := json.Marshal(payload)
	if err != nil {
		configs.Logger.Warn().Err(err).Msg("notification: failed to encode event")
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(eventType),
			Value: value,
		})
		if err != nil {
			configs.Logger.Warn().Err(err).Str("event", eventType).Msg("notification: kafka publish failed")
		}
	}()
}

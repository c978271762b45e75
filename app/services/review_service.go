package services

import (
	"context"
	"fmt"

	"github.com/shopmitra/shopmitra/app/models"
	"github.com/shopmitra/shopmitra/app/repositories"
)

// ReviewService owns ratings and reviews. Both are at-most-one per
// (user, product): a repeat submission updates the existing record.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	ratingRepo  repositories.RatingRepository
	productRepo repositories.ProductRepositoryImpl
	notifier    *NotificationService
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	ratingRepo repositories.RatingRepository,
	productRepo repositories.ProductRepositoryImpl,
	notifier *NotificationService,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		ratingRepo:  ratingRepo,
		productRepo: productRepo,
		notifier:    notifier,
	}
}

func (s *ReviewService) SubmitReview(ctx context.Context, userID, productID, body string) (*models.Review, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.reviewRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}

	if existing != nil {
		existing.Body = body
		if err := s.reviewRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update review: %w", err)
		}
		return existing, nil
	}

	review := &models.Review{
		UserID:    userID,
		ProductID: productID,
		Body:      body,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if s.notifier != nil {
		s.notifier.ReviewCreated(ctx, review, product)
	}
	return review, nil
}

func (s *ReviewService) ProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	return s.reviewRepo.FindByProductID(ctx, productID)
}

func (s *ReviewService) SubmitRating(ctx context.Context, userID, productID string, value float64) (*models.Rating, error) {
	if value < 0 || value > 5 {
		return nil, fmt.Errorf("rating value must be between 0 and 5")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.ratingRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing rating: %w", err)
	}

	if existing != nil {
		existing.Value = value
		if err := s.ratingRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update rating: %w", err)
		}
		return existing, nil
	}

	rating := &models.Rating{
		UserID:    userID,
		ProductID: productID,
		Value:     value,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}
	return rating, nil
}

func (s *ReviewService) ProductRatings(ctx context.Context, productID string) ([]models.Rating, float64, error) {
	ratings, err := s.ratingRepo.FindByProductID(ctx, productID)
	if err != nil {
		return nil, 0, err
	}
	avg, err := s.ratingRepo.AverageForProduct(ctx, productID)
	if err != nil {
		return nil, 0, err
	}
	return ratings, avg, nil
}

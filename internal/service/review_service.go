package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ordering-backend/internal/domain"
)

// ReviewService is the gate between orders and reviews: exactly one review
// may attach to an order, and only once the order is completed.
type ReviewService struct {
	reviews   ReviewRepository
	orders    OrderRepository
	cache     ReviewCache
	publisher EventPublisher
}

func NewReviewService(reviews ReviewRepository, orders OrderRepository, cache ReviewCache, publisher EventPublisher) *ReviewService {
	return &ReviewService{reviews: reviews, orders: orders, cache: cache, publisher: publisher}
}

// Register returns false with no state change when the order is not
// eligible or already reviewed. False never encodes an I/O failure; those
// come back as errors.
func (s *ReviewService) Register(ctx context.Context, restaurantID, orderID int, content string) (bool, error) {
	order, err := s.orders.GetOrderWithReview(orderID)
	if err != nil {
		return false, fmt.Errorf("failed to load order: %w", err)
	}
	if order.RestaurantID != restaurantID {
		return false, domain.ErrOrderNotFound
	}

	markerKey := s.cache.ReviewMarkerKey(orderID)
	if exists, _ := s.cache.Exists(ctx, markerKey); exists {
		return false, nil
	}

	if !order.AbleRegisterReview() {
		return false, nil
	}

	review := &domain.Review{
		OrderID:      orderID,
		RestaurantID: restaurantID,
		Content:      content,
	}
	if err := s.reviews.InsertReviewAndAttach(review); err != nil {
		// A concurrent register won the race; same outcome as the
		// eligibility check failing.
		if errors.Is(err, domain.ErrDuplicateReview) {
			return false, nil
		}
		return false, err
	}

	if err := s.cache.SetMarker(ctx, markerKey); err != nil {
		log.Printf("Warning: failed to cache review marker: %v", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.EventMessage{
			Type:         domain.EventNewReview,
			OrderID:      orderID,
			RestaurantID: restaurantID,
			Timestamp:    time.Now(),
		})
	}

	return true, nil
}

// UpdateText replaces the review content. Editing needs no eligibility
// re-check; existence of the review is the only requirement.
func (s *ReviewService) UpdateText(reviewID int, content string) error {
	return s.reviews.UpdateReviewText(reviewID, content)
}

// Delete removes the review and clears the order's back reference, which
// makes the order reviewable again.
func (s *ReviewService) Delete(ctx context.Context, reviewID int) error {
	review, err := s.reviews.GetReview(reviewID)
	if err != nil {
		return err
	}
	if err := s.reviews.DeleteReview(reviewID); err != nil {
		return err
	}
	if err := s.cache.DeleteMarker(ctx, s.cache.ReviewMarkerKey(review.OrderID)); err != nil {
		log.Printf("Warning: failed to drop review marker for order %d: %v", review.OrderID, err)
	}
	return nil
}

var _ ReviewServiceInterface = (*ReviewService)(nil)

package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ordering-backend/internal/domain"
	"ordering-backend/internal/mocks"
	"ordering-backend/internal/service"
)

func TestReviewService_Register(t *testing.T) {
	completedOrder := func() *domain.Order {
		return &domain.Order{ID: 42, RestaurantID: 10, Status: domain.OrderStatusCompleted}
	}

	tests := []struct {
		name         string
		restaurantID int
		prepareMocks func(orders *mocks.OrderRepository, reviews *mocks.ReviewRepository, cache *mocks.ReviewCache, publisher *mocks.EventPublisher)
		wantOK       bool
		wantErr      error
	}{
		{
			name:         "registers once on completed unreviewed order",
			restaurantID: 10,
			prepareMocks: func(orders *mocks.OrderRepository, reviews *mocks.ReviewRepository, cache *mocks.ReviewCache, publisher *mocks.EventPublisher) {
				orders.On("GetOrderWithReview", 42).Return(completedOrder(), nil).Once()
				cache.On("ReviewMarkerKey", 42).Return("review:order:42").Once()
				cache.On("Exists", mock.Anything, "review:order:42").Return(false, nil).Once()
				reviews.On("InsertReviewAndAttach", mock.MatchedBy(func(r *domain.Review) bool {
					return r.OrderID == 42 && r.RestaurantID == 10 && r.Content == "tasty"
				})).Return(nil).Once()
				cache.On("SetMarker", mock.Anything, "review:order:42").Return(nil).Once()
				publisher.On("Publish", mock.Anything, mock.MatchedBy(func(m domain.EventMessage) bool {
					return m.Type == domain.EventNewReview && m.OrderID == 42
				})).Return(nil).Once()
			},
			wantOK: true,
		},
		{
			name:         "marker fast path skips the insert",
			restaurantID: 10,
			prepareMocks: func(orders *mocks.OrderRepository, reviews *mocks.ReviewRepository, cache *mocks.ReviewCache, publisher *mocks.EventPublisher) {
				orders.On("GetOrderWithReview", 42).Return(completedOrder(), nil).Once()
				cache.On("ReviewMarkerKey", 42).Return("review:order:42").Once()
				cache.On("Exists", mock.Anything, "review:order:42").Return(true, nil).Once()
			},
			wantOK: false,
		},
		{
			name:         "order not completed",
			restaurantID: 10,
			prepareMocks: func(orders *mocks.OrderRepository, reviews *mocks.ReviewRepository, cache *mocks.ReviewCache, publisher *mocks.EventPublisher) {
				orders.On("GetOrderWithReview", 42).
					Return(&domain.Order{ID: 42, RestaurantID: 10, Status: domain.OrderStatusPlaced}, nil).Once()
				cache.On("ReviewMarkerKey", 42).Return("review:order:42").Once()
				cache.On("Exists", mock.Anything, "review:order:42").Return(false, nil).Once()
			},
			wantOK: false,
		},
		{
			name:         "order already reviewed",
			restaurantID: 10,
			prepareMocks: func(orders *mocks.OrderRepository, reviews *mocks.ReviewRepository, cache *mocks.ReviewCache, publisher *mocks.EventPublisher) {
				orders.On("GetOrderWithReview", 42).
					Return(&domain.Order{ID: 42, RestaurantID: 10, Status: domain.OrderStatusCompleted, ReviewID: 7}, nil).Once()
				cache.On("ReviewMarkerKey", 42).Return("review:order:42").Once()
				cache.On("Exists", mock.Anything, "review:order:42").Return(false, nil).Once()
			},
			wantOK: false,
		},
		{
			name:         "concurrent register loses the race quietly",
			restaurantID: 10,
			prepareMocks: func(orders *mocks.OrderRepository, reviews *mocks.ReviewRepository, cache *mocks.ReviewCache, publisher *mocks.EventPublisher) {
				orders.On("GetOrderWithReview", 42).Return(completedOrder(), nil).Once()
				cache.On("ReviewMarkerKey", 42).Return("review:order:42").Once()
				cache.On("Exists", mock.Anything, "review:order:42").Return(false, nil).Once()
				reviews.On("InsertReviewAndAttach", mock.Anything).Return(domain.ErrDuplicateReview).Once()
			},
			wantOK: false,
		},
		{
			name:         "order belongs to a different restaurant",
			restaurantID: 99,
			prepareMocks: func(orders *mocks.OrderRepository, reviews *mocks.ReviewRepository, cache *mocks.ReviewCache, publisher *mocks.EventPublisher) {
				orders.On("GetOrderWithReview", 42).Return(completedOrder(), nil).Once()
			},
			wantOK:  false,
			wantErr: domain.ErrOrderNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderRepository(t)
			reviews := mocks.NewReviewRepository(t)
			cache := mocks.NewReviewCache(t)
			publisher := mocks.NewEventPublisher(t)
			testCase.prepareMocks(orders, reviews, cache, publisher)

			svc := service.NewReviewService(reviews, orders, cache, publisher)
			ok, err := svc.Register(context.Background(), testCase.restaurantID, 42, "tasty")

			assert.Equal(t, testCase.wantOK, ok)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReviewService_RegisterTwiceSecondIsNoOp(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	reviews := mocks.NewReviewRepository(t)
	cache := mocks.NewReviewCache(t)
	publisher := mocks.NewEventPublisher(t)

	order := &domain.Order{ID: 5, RestaurantID: 3, Status: domain.OrderStatusCompleted}
	orders.On("GetOrderWithReview", 5).Return(order, nil).Once()
	cache.On("ReviewMarkerKey", 5).Return("review:order:5")
	cache.On("Exists", mock.Anything, "review:order:5").Return(false, nil).Once()
	reviews.On("InsertReviewAndAttach", mock.Anything).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Review).ID = 100
		order.ReviewID = 100
	}).Return(nil).Once()
	cache.On("SetMarker", mock.Anything, "review:order:5").Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewReviewService(reviews, orders, cache, publisher)

	ok, err := svc.Register(context.Background(), 3, 5, "first")
	assert.NoError(t, err)
	assert.True(t, ok)

	// Second attempt sees the attached review and declines without touching
	// the review repository again.
	orders.On("GetOrderWithReview", 5).Return(order, nil).Once()
	cache.On("Exists", mock.Anything, "review:order:5").Return(false, nil).Once()

	ok, err = svc.Register(context.Background(), 3, 5, "second")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestReviewService_DeleteClearsMarker(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	reviews := mocks.NewReviewRepository(t)
	cache := mocks.NewReviewCache(t)
	publisher := mocks.NewEventPublisher(t)

	reviews.On("GetReview", 100).Return(&domain.Review{ID: 100, OrderID: 5, RestaurantID: 3}, nil).Once()
	reviews.On("DeleteReview", 100).Return(nil).Once()
	cache.On("ReviewMarkerKey", 5).Return("review:order:5").Once()
	cache.On("DeleteMarker", mock.Anything, "review:order:5").Return(nil).Once()

	svc := service.NewReviewService(reviews, orders, cache, publisher)
	assert.NoError(t, svc.Delete(context.Background(), 100))
}

func TestReviewService_DeleteMissingReview(t *testing.T) {
	orders := mocks.NewOrderRepository(t)
	reviews := mocks.NewReviewRepository(t)
	cache := mocks.NewReviewCache(t)
	publisher := mocks.NewEventPublisher(t)

	reviews.On("GetReview", 100).Return(nil, domain.ErrReviewNotFound).Once()

	svc := service.NewReviewService(reviews, orders, cache, publisher)
	err := svc.Delete(context.Background(), 100)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

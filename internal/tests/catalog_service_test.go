package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ordering-backend/internal/domain"
	"ordering-backend/internal/mocks"
	"ordering-backend/internal/service"
)

func newCatalogService(t *testing.T) (*service.CatalogService, *mocks.FoodRepository, *mocks.RestaurantRepository, *mocks.ImageStore, *mocks.PreviewCache) {
	foods := mocks.NewFoodRepository(t)
	restaurants := mocks.NewRestaurantRepository(t)
	images := mocks.NewImageStore(t)
	cache := mocks.NewPreviewCache(t)
	svc := service.NewCatalogService(foods, restaurants, images, cache)
	return svc, foods, restaurants, images, cache
}

func TestCatalogService_RegisterFood(t *testing.T) {
	t.Run("stores image then inserts", func(t *testing.T) {
		svc, foods, restaurants, images, _ := newCatalogService(t)

		restaurants.On("GetRestaurant", 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
		images.On("Store", mock.Anything, []byte("img"), mock.AnythingOfType("string")).
			Return("https://cdn.example.com/abc.png", nil).Once()
		foods.On("CreateFood", mock.MatchedBy(func(f *domain.Food) bool {
			return f.RestaurantID == 10 && f.ImageURL == "https://cdn.example.com/abc.png"
		})).Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Food).ID = 7
		}).Return(nil).Once()

		id, err := svc.RegisterFood(context.Background(), 10,
			&domain.Food{Name: "Bibimbap", Price: 9500}, []byte("img"), "bibimbap.PNG")
		assert.NoError(t, err)
		assert.Equal(t, 7, id)
	})

	t.Run("cleans up the uploaded image when the insert fails", func(t *testing.T) {
		svc, foods, restaurants, images, _ := newCatalogService(t)

		restaurants.On("GetRestaurant", 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
		images.On("Store", mock.Anything, []byte("img"), mock.AnythingOfType("string")).
			Return("https://cdn.example.com/abc.png", nil).Once()
		foods.On("CreateFood", mock.Anything).Return(errors.New("insert failed")).Once()
		images.On("Delete", mock.Anything, "abc.png").Return(nil).Once()

		_, err := svc.RegisterFood(context.Background(), 10,
			&domain.Food{Name: "Bibimbap", Price: 9500}, []byte("img"), "bibimbap.png")
		assert.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		svc, _, _, _, _ := newCatalogService(t)
		_, err := svc.RegisterFood(context.Background(), 10, &domain.Food{Name: "  ", Price: 100}, nil, "")
		assert.ErrorIs(t, err, domain.ErrEmptyFoodName)
	})

	t.Run("negative price", func(t *testing.T) {
		svc, _, _, _, _ := newCatalogService(t)
		_, err := svc.RegisterFood(context.Background(), 10, &domain.Food{Name: "Bibimbap", Price: -1}, nil, "")
		assert.ErrorIs(t, err, domain.ErrNegativePrice)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		svc, _, restaurants, _, _ := newCatalogService(t)
		restaurants.On("GetRestaurant", 10).Return(nil, domain.ErrRestaurantNotFound).Once()
		_, err := svc.RegisterFood(context.Background(), 10, &domain.Food{Name: "Bibimbap", Price: 100}, nil, "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		svc, foods, restaurants, _, _ := newCatalogService(t)
		restaurants.On("GetRestaurant", 10).Return(&domain.Restaurant{ID: 10}, nil).Once()
		foods.On("CreateFood", mock.Anything).Return(nil).Once()

		_, err := svc.RegisterFood(context.Background(), 10, &domain.Food{Name: "Water", Price: 0}, nil, "")
		assert.NoError(t, err)
	})
}

func TestCatalogService_UpdateFoodReplacesImage(t *testing.T) {
	svc, foods, _, images, _ := newCatalogService(t)

	foods.On("GetRestaurantFood", 10, 7).
		Return(&domain.Food{ID: 7, RestaurantID: 10, ImageURL: "https://cdn.example.com/old.png"}, nil).Once()
	foods.On("UpdateFood", mock.MatchedBy(func(f *domain.Food) bool {
		return f.ID == 7 && f.RestaurantID == 10
	})).Return(nil).Once()
	images.On("Store", mock.Anything, []byte("new"), mock.AnythingOfType("string")).
		Return("https://cdn.example.com/new.png", nil).Once()
	foods.On("UpdateFoodImage", 10, 7, "https://cdn.example.com/new.png").Return(nil).Once()
	images.On("Delete", mock.Anything, "old.png").Return(nil).Once()

	err := svc.UpdateFood(context.Background(), 10, 7,
		&domain.Food{Name: "Bibimbap", Price: 10000}, []byte("new"), "new.png")
	assert.NoError(t, err)
}

func TestCatalogService_UpdateFoodWrongRestaurant(t *testing.T) {
	svc, foods, _, _, _ := newCatalogService(t)

	foods.On("GetRestaurantFood", 99, 7).Return(nil, domain.ErrFoodNotFound).Once()

	err := svc.UpdateFood(context.Background(), 99, 7,
		&domain.Food{Name: "Bibimbap", Price: 10000}, nil, "")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestCatalogService_DeleteFood(t *testing.T) {
	svc, foods, _, images, cache := newCatalogService(t)

	foods.On("GetFood", 7).
		Return(&domain.Food{ID: 7, ImageURL: "https://cdn.example.com/abc.png"}, nil).Once()
	foods.On("DeleteFood", 7).Return(nil).Once()
	images.On("Delete", mock.Anything, "abc.png").Return(nil).Once()
	cache.On("InvalidatePreview", mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.DeleteFood(context.Background(), 7))
}

func TestCatalogService_SetSoldOutIdempotent(t *testing.T) {
	svc, foods, _, _, _ := newCatalogService(t)

	foods.On("SetSoldOut", 7, true).Return(nil).Twice()

	assert.NoError(t, svc.SetSoldOut(7, true))
	assert.NoError(t, svc.SetSoldOut(7, true))
}

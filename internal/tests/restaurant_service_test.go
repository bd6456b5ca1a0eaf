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

func newRestaurantService(t *testing.T) (*service.RestaurantService, *mocks.RestaurantRepository, *mocks.RepresentativeMenuRepository, *mocks.ImageStore, *mocks.PreviewCache) {
	restaurants := mocks.NewRestaurantRepository(t)
	menus := mocks.NewRepresentativeMenuRepository(t)
	images := mocks.NewImageStore(t)
	cache := mocks.NewPreviewCache(t)
	svc := service.NewRestaurantService(restaurants, menus, images, cache)
	return svc, restaurants, menus, images, cache
}

func TestRestaurantService_GetAllForPreview(t *testing.T) {
	t.Run("builds previews and caches them", func(t *testing.T) {
		svc, restaurants, menus, _, cache := newRestaurantService(t)

		cache.On("GetPreview", mock.Anything).Return(nil, false).Once()
		restaurants.On("ListRestaurants").Return([]domain.Restaurant{
			{ID: 10, Name: "Seoul Kitchen", ProfileImageURL: "https://cdn.example.com/p10.png"},
			{ID: 11, Name: "Han River Diner"},
		}, nil).Once()
		menus.On("ListRepresentative", 10).Return([]domain.RepresentativeMenu{
			{FoodID: 7, FoodName: "Bibimbap"},
			{FoodID: 8, FoodName: "Kimchi Stew"},
		}, nil).Once()
		menus.On("ListRepresentative", 11).Return([]domain.RepresentativeMenu{}, nil).Once()
		cache.On("SetPreview", mock.Anything, mock.Anything).Return(nil).Once()

		previews, err := svc.GetAllForPreview(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []domain.RestaurantPreview{
			{ID: 10, Name: "Seoul Kitchen", ProfileImageURL: "https://cdn.example.com/p10.png", FoodNames: []string{"Bibimbap", "Kimchi Stew"}},
			{ID: 11, Name: "Han River Diner", FoodNames: []string{}},
		}, previews)
	})

	t.Run("serves from cache when warm", func(t *testing.T) {
		svc, _, _, _, cache := newRestaurantService(t)

		cached := []domain.RestaurantPreview{{ID: 10, Name: "Seoul Kitchen", FoodNames: []string{"Bibimbap"}}}
		cache.On("GetPreview", mock.Anything).Return(cached, true).Once()

		previews, err := svc.GetAllForPreview(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, cached, previews)
	})
}

func TestRestaurantService_PutInfoInvalidatesPreview(t *testing.T) {
	svc, restaurants, _, _, cache := newRestaurantService(t)

	restaurants.On("UpdateRestaurantInfo", 10, "New Name", "New intro").Return(nil).Once()
	cache.On("InvalidatePreview", mock.Anything).Return(nil).Once()

	assert.NoError(t, svc.PutInfo(context.Background(), 10, "New Name", "New intro"))
}

func TestRestaurantService_PutInfoEmptyName(t *testing.T) {
	svc, _, _, _, _ := newRestaurantService(t)

	err := svc.PutInfo(context.Background(), 10, "  ", "intro")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRestaurantService_PutProfileImageReplacesOld(t *testing.T) {
	svc, restaurants, _, images, cache := newRestaurantService(t)

	restaurants.On("GetRestaurant", 10).
		Return(&domain.Restaurant{ID: 10, ProfileImageURL: "https://cdn.example.com/old.png"}, nil).Once()
	images.On("Store", mock.Anything, []byte("img"), mock.AnythingOfType("string")).
		Return("https://cdn.example.com/new.png", nil).Once()
	restaurants.On("UpdateRestaurantProfileImage", 10, "https://cdn.example.com/new.png").Return(nil).Once()
	images.On("Delete", mock.Anything, "old.png").Return(nil).Once()
	cache.On("InvalidatePreview", mock.Anything).Return(nil).Once()

	url, err := svc.PutProfileImage(context.Background(), 10, []byte("img"), "profile.png")
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/new.png", url)
}

func TestRestaurantService_PutProfileImageEmptyPayload(t *testing.T) {
	svc, _, _, _, _ := newRestaurantService(t)

	_, err := svc.PutProfileImage(context.Background(), 10, nil, "profile.png")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRestaurantService_SignUpRequiresName(t *testing.T) {
	svc, _, _, _, _ := newRestaurantService(t)

	_, err := svc.SignUp(&domain.Restaurant{SignInID: "seoul_kitchen", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

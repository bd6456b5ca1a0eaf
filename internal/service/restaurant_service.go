package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"ordering-backend/internal/domain"
	"ordering-backend/internal/storage"
)

// RestaurantService covers the restaurant side of the house: owner
// accounts, profile management and the cached preview listing.
type RestaurantService struct {
	restaurants RestaurantRepository
	menus       RepresentativeMenuRepository
	images      ImageStore
	cache       PreviewCache
}

func NewRestaurantService(restaurants RestaurantRepository, menus RepresentativeMenuRepository,
	images ImageStore, cache PreviewCache) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, menus: menus, images: images, cache: cache}
}

func (s *RestaurantService) SignUp(rest *domain.Restaurant) (int, error) {
	if strings.TrimSpace(rest.SignInID) == "" || rest.Password == "" {
		return 0, fmt.Errorf("%w: sign-in id and password are required", domain.ErrValidation)
	}
	if strings.TrimSpace(rest.Name) == "" {
		return 0, fmt.Errorf("%w: restaurant name is required", domain.ErrValidation)
	}
	hash, err := hashPassword(rest.Password)
	if err != nil {
		return 0, err
	}
	rest.Password = hash
	if err := s.restaurants.CreateRestaurant(rest); err != nil {
		return 0, err
	}
	return rest.ID, nil
}

func (s *RestaurantService) SignIn(signInID, password string) (*domain.Restaurant, error) {
	rest, err := s.restaurants.GetRestaurantBySignInID(signInID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !checkPasswordHash(password, rest.Password) {
		return nil, nil
	}
	return rest, nil
}

func (s *RestaurantService) IsIDDuplicated(signInID string) (bool, error) {
	return s.restaurants.RestaurantSignInIDExists(signInID)
}

func (s *RestaurantService) ChangePassword(restaurantID int, currentPassword, newPassword string) (bool, error) {
	rest, err := s.restaurants.GetRestaurant(restaurantID)
	if err != nil {
		return false, err
	}
	if !checkPasswordHash(currentPassword, rest.Password) {
		return false, nil
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return false, err
	}
	if err := s.restaurants.UpdateRestaurantPassword(restaurantID, hash); err != nil {
		return false, err
	}
	return true, nil
}

func (s *RestaurantService) PutInfo(ctx context.Context, restaurantID int, name, intro string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: restaurant name is required", domain.ErrValidation)
	}
	if err := s.restaurants.UpdateRestaurantInfo(restaurantID, name, intro); err != nil {
		return err
	}
	s.invalidatePreview(ctx)
	return nil
}

func (s *RestaurantService) PutProfileImage(ctx context.Context, restaurantID int, image []byte, imageName string) (string, error) {
	url, err := s.putImage(ctx, restaurantID, image, imageName,
		func(r *domain.Restaurant) string { return r.ProfileImageURL },
		s.restaurants.UpdateRestaurantProfileImage)
	if err != nil {
		return "", err
	}
	s.invalidatePreview(ctx)
	return url, nil
}

func (s *RestaurantService) PutBackgroundImage(ctx context.Context, restaurantID int, image []byte, imageName string) (string, error) {
	return s.putImage(ctx, restaurantID, image, imageName,
		func(r *domain.Restaurant) string { return r.BackgroundImageURL },
		s.restaurants.UpdateRestaurantBackgroundImage)
}

// putImage uploads the replacement first and deletes the previous object
// only after the new URL is attached.
func (s *RestaurantService) putImage(ctx context.Context, restaurantID int, image []byte, imageName string,
	current func(*domain.Restaurant) string, update func(int, string) error) (string, error) {
	if len(image) == 0 {
		return "", fmt.Errorf("%w: image payload is empty", domain.ErrValidation)
	}
	rest, err := s.restaurants.GetRestaurant(restaurantID)
	if err != nil {
		return "", err
	}

	key := newImageKey(imageName)
	url, err := s.images.Store(ctx, image, key)
	if err != nil {
		return "", err
	}
	if err := update(restaurantID, url); err != nil {
		return "", err
	}
	if old := current(rest); old != "" {
		if err := s.images.Delete(ctx, storage.ImageKeyFromURL(old)); err != nil {
			log.Printf("Warning: failed to delete previous image for restaurant %d: %v", restaurantID, err)
		}
	}
	return url, nil
}

// GetAllForPreview serves the restaurant list with each restaurant's
// representative food names, from cache when warm.
func (s *RestaurantService) GetAllForPreview(ctx context.Context) ([]domain.RestaurantPreview, error) {
	if previews, ok := s.cache.GetPreview(ctx); ok {
		return previews, nil
	}

	restaurants, err := s.restaurants.ListRestaurants()
	if err != nil {
		return nil, err
	}

	previews := []domain.RestaurantPreview{}
	for _, rest := range restaurants {
		menus, err := s.menus.ListRepresentative(rest.ID)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(menus))
		for _, m := range menus {
			names = append(names, m.FoodName)
		}
		previews = append(previews, domain.RestaurantPreview{
			ID:              rest.ID,
			Name:            rest.Name,
			ProfileImageURL: rest.ProfileImageURL,
			FoodNames:       names,
		})
	}

	if err := s.cache.SetPreview(ctx, previews); err != nil {
		log.Printf("Warning: failed to cache restaurant previews: %v", err)
	}
	return previews, nil
}

func (s *RestaurantService) invalidatePreview(ctx context.Context) {
	if err := s.cache.InvalidatePreview(ctx); err != nil {
		log.Printf("Warning: failed to invalidate preview cache: %v", err)
	}
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)

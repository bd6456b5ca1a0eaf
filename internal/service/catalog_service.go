package service

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"

	"ordering-backend/internal/domain"
	"ordering-backend/internal/storage"
)

// CatalogService owns a restaurant's foods: registration, updates, sold-out
// state and deletion, including the image lifecycle in blob storage.
type CatalogService struct {
	foods       FoodRepository
	restaurants RestaurantRepository
	images      ImageStore
	cache       PreviewCache
}

func NewCatalogService(foods FoodRepository, restaurants RestaurantRepository, images ImageStore, cache PreviewCache) *CatalogService {
	return &CatalogService{foods: foods, restaurants: restaurants, images: images, cache: cache}
}

func newImageKey(imageName string) string {
	return uuid.New().String() + strings.ToLower(path.Ext(imageName))
}

// RegisterFood uploads the image first and creates the food only after the
// upload succeeded, so a food row never references a URL that failed to
// upload. If the insert fails afterwards the uploaded object is removed.
func (s *CatalogService) RegisterFood(ctx context.Context, restaurantID int, food *domain.Food, image []byte, imageName string) (int, error) {
	if strings.TrimSpace(food.Name) == "" {
		return 0, domain.ErrEmptyFoodName
	}
	if food.Price < 0 {
		return 0, domain.ErrNegativePrice
	}
	if _, err := s.restaurants.GetRestaurant(restaurantID); err != nil {
		return 0, err
	}

	food.RestaurantID = restaurantID
	if len(image) > 0 {
		key := newImageKey(imageName)
		url, err := s.images.Store(ctx, image, key)
		if err != nil {
			return 0, err
		}
		food.ImageURL = url
	}

	if err := s.foods.CreateFood(food); err != nil {
		if food.ImageURL != "" {
			if delErr := s.images.Delete(ctx, storage.ImageKeyFromURL(food.ImageURL)); delErr != nil {
				log.Printf("Warning: failed to clean up image after insert failure: %v", delErr)
			}
		}
		return 0, err
	}
	return food.ID, nil
}

// UpdateFood requires the food to belong to the restaurant. A replacement
// image is attached before the previous object is deleted, so the food
// never points at a missing object in between.
func (s *CatalogService) UpdateFood(ctx context.Context, restaurantID, foodID int, food *domain.Food, image []byte, imageName string) error {
	if strings.TrimSpace(food.Name) == "" {
		return domain.ErrEmptyFoodName
	}
	if food.Price < 0 {
		return domain.ErrNegativePrice
	}

	existing, err := s.foods.GetRestaurantFood(restaurantID, foodID)
	if err != nil {
		return err
	}

	food.ID = foodID
	food.RestaurantID = restaurantID
	if err := s.foods.UpdateFood(food); err != nil {
		return err
	}

	if len(image) > 0 {
		key := newImageKey(imageName)
		url, err := s.images.Store(ctx, image, key)
		if err != nil {
			return err
		}
		if err := s.foods.UpdateFoodImage(restaurantID, foodID, url); err != nil {
			return err
		}
		if existing.ImageURL != "" {
			if err := s.images.Delete(ctx, storage.ImageKeyFromURL(existing.ImageURL)); err != nil {
				log.Printf("Warning: failed to delete previous image for food %d: %v", foodID, err)
			}
		}
	}
	return nil
}

// DeleteFood cascades to representative-menu entries (storage constraint)
// and schedules deletion of the backing image object.
func (s *CatalogService) DeleteFood(ctx context.Context, foodID int) error {
	food, err := s.foods.GetFood(foodID)
	if err != nil {
		return err
	}
	if err := s.foods.DeleteFood(foodID); err != nil {
		return err
	}
	if food.ImageURL != "" {
		if err := s.images.Delete(ctx, storage.ImageKeyFromURL(food.ImageURL)); err != nil {
			log.Printf("Warning: failed to delete image for food %d: %v", foodID, err)
		}
	}
	// The food may have been featured; drop the cached preview list.
	if err := s.cache.InvalidatePreview(ctx); err != nil {
		log.Printf("Warning: failed to invalidate preview cache: %v", err)
	}
	return nil
}

// SetSoldOut is idempotent: setting the flag to its current value succeeds.
func (s *CatalogService) SetSoldOut(foodID int, soldOut bool) error {
	return s.foods.SetSoldOut(foodID, soldOut)
}

func (s *CatalogService) ListFoods(restaurantID int) ([]domain.Food, error) {
	foods, err := s.foods.ListFoods(restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list foods for restaurant %d: %w", restaurantID, err)
	}
	return foods, nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)

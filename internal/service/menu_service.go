package service

import (
	"context"
	"log"
)

// MenuService curates the representative menu: the small featured subset of
// a restaurant's foods shown in preview listings.
type MenuService struct {
	menus RepresentativeMenuRepository
	foods FoodRepository
	cache PreviewCache
}

func NewMenuService(menus RepresentativeMenuRepository, foods FoodRepository, cache PreviewCache) *MenuService {
	return &MenuService{menus: menus, foods: foods, cache: cache}
}

// AddRepresentative reports false without error when the pairing already
// exists; duplicate adds are expected, not exceptional.
func (s *MenuService) AddRepresentative(ctx context.Context, restaurantID, foodID int) (bool, error) {
	if _, err := s.foods.GetRestaurantFood(restaurantID, foodID); err != nil {
		return false, err
	}
	added, err := s.menus.AddRepresentative(restaurantID, foodID)
	if err != nil {
		return false, err
	}
	if added {
		s.invalidatePreview(ctx)
	}
	return added, nil
}

func (s *MenuService) RemoveRepresentative(ctx context.Context, restaurantID, foodID int) error {
	if err := s.menus.RemoveRepresentative(restaurantID, foodID); err != nil {
		return err
	}
	s.invalidatePreview(ctx)
	return nil
}

// ListPreview returns the featured food names in the order the pairings
// were added.
func (s *MenuService) ListPreview(restaurantID int) ([]string, error) {
	menus, err := s.menus.ListRepresentative(restaurantID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(menus))
	for _, m := range menus {
		names = append(names, m.FoodName)
	}
	return names, nil
}

func (s *MenuService) invalidatePreview(ctx context.Context) {
	if err := s.cache.InvalidatePreview(ctx); err != nil {
		log.Printf("Warning: failed to invalidate preview cache: %v", err)
	}
}

var _ MenuServiceInterface = (*MenuService)(nil)

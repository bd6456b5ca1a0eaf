package storage

import (
	"database/sql"
	"errors"

	"ordering-backend/internal/domain"
)

func (r *PostgresRepository) CreateFood(food *domain.Food) error {
	err := r.DB.QueryRow(`
		INSERT INTO foods (restaurant_id, name, price, intro, sold_out, image_url)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		RETURNING id, created_at
	`, food.RestaurantID, food.Name, food.Price, food.Intro, food.SoldOut, food.ImageURL).
		Scan(&food.ID, &food.CreatedAt)
	return err
}

func (r *PostgresRepository) GetFood(foodID int) (*domain.Food, error) {
	var food domain.Food
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, price, COALESCE(intro, ''), sold_out, COALESCE(image_url, ''), created_at
		FROM foods
		WHERE id = $1
	`, foodID).Scan(&food.ID, &food.RestaurantID, &food.Name, &food.Price, &food.Intro, &food.SoldOut, &food.ImageURL, &food.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// GetRestaurantFood is the ownership-checked read: it only finds the food
// when it belongs to the given restaurant.
func (r *PostgresRepository) GetRestaurantFood(restaurantID, foodID int) (*domain.Food, error) {
	var food domain.Food
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, name, price, COALESCE(intro, ''), sold_out, COALESCE(image_url, ''), created_at
		FROM foods
		WHERE id = $1 AND restaurant_id = $2
	`, foodID, restaurantID).Scan(&food.ID, &food.RestaurantID, &food.Name, &food.Price, &food.Intro, &food.SoldOut, &food.ImageURL, &food.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// ListFoods returns a restaurant's foods in creation order, materialized.
func (r *PostgresRepository) ListFoods(restaurantID int) ([]domain.Food, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, price, COALESCE(intro, ''), sold_out, COALESCE(image_url, ''), created_at
		FROM foods
		WHERE restaurant_id = $1
		ORDER BY id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := []domain.Food{}
	for rows.Next() {
		var food domain.Food
		if err := rows.Scan(&food.ID, &food.RestaurantID, &food.Name, &food.Price, &food.Intro, &food.SoldOut, &food.ImageURL, &food.CreatedAt); err != nil {
			return nil, err
		}
		foods = append(foods, food)
	}
	return foods, rows.Err()
}

func (r *PostgresRepository) UpdateFood(food *domain.Food) error {
	result, err := r.DB.Exec(`
		UPDATE foods
		SET name = $1, price = $2, intro = $3
		WHERE id = $4 AND restaurant_id = $5
	`, food.Name, food.Price, food.Intro, food.ID, food.RestaurantID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateFoodImage(restaurantID, foodID int, imageURL string) error {
	result, err := r.DB.Exec(`
		UPDATE foods SET image_url = $1 WHERE id = $2 AND restaurant_id = $3
	`, imageURL, foodID, restaurantID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}

func (r *PostgresRepository) SetSoldOut(foodID int, soldOut bool) error {
	result, err := r.DB.Exec(`UPDATE foods SET sold_out = $1 WHERE id = $2`, soldOut, foodID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}

// DeleteFood removes the row; representative_menus entries referencing it
// go with it through the ON DELETE CASCADE constraint.
func (r *PostgresRepository) DeleteFood(foodID int) error {
	result, err := r.DB.Exec(`DELETE FROM foods WHERE id = $1`, foodID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrFoodNotFound
	}
	return nil
}

// AddRepresentative reports false when the pairing already exists. The
// unique constraint absorbs concurrent duplicate adds.
func (r *PostgresRepository) AddRepresentative(restaurantID, foodID int) (bool, error) {
	result, err := r.DB.Exec(`
		INSERT INTO representative_menus (restaurant_id, food_id)
		VALUES ($1, $2)
		ON CONFLICT (restaurant_id, food_id) DO NOTHING
	`, restaurantID, foodID)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// RemoveRepresentative is a no-op when the pairing does not exist.
func (r *PostgresRepository) RemoveRepresentative(restaurantID, foodID int) error {
	_, err := r.DB.Exec(`
		DELETE FROM representative_menus WHERE restaurant_id = $1 AND food_id = $2
	`, restaurantID, foodID)
	return err
}

// ListRepresentative returns the pairings in insertion order with the food
// name resolved, ready for preview rendering.
func (r *PostgresRepository) ListRepresentative(restaurantID int) ([]domain.RepresentativeMenu, error) {
	rows, err := r.DB.Query(`
		SELECT rm.id, rm.restaurant_id, rm.food_id, f.name, rm.created_at
		FROM representative_menus rm
		JOIN foods f ON rm.food_id = f.id
		WHERE rm.restaurant_id = $1
		ORDER BY rm.id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []domain.RepresentativeMenu{}
	for rows.Next() {
		var m domain.RepresentativeMenu
		if err := rows.Scan(&m.ID, &m.RestaurantID, &m.FoodID, &m.FoodName, &m.CreatedAt); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

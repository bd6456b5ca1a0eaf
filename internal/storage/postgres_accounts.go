package storage

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"ordering-backend/internal/domain"
)

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

// CreateCustomer maps a unique-constraint violation on signin_id to
// ErrDuplicateSignInID. The constraint, not the duplicate pre-check, is
// what serializes concurrent signups.
func (r *PostgresRepository) CreateCustomer(c *domain.Customer) error {
	err := r.DB.QueryRow(`
		INSERT INTO customers (signin_id, password, phone_number)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, created_at
	`, c.SignInID, c.Password, c.PhoneNumber).Scan(&c.ID, &c.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateSignInID
	}
	return err
}

func (r *PostgresRepository) GetCustomer(customerID int) (*domain.Customer, error) {
	var c domain.Customer
	err := r.DB.QueryRow(`
		SELECT id, signin_id, password, COALESCE(phone_number, ''), created_at
		FROM customers
		WHERE id = $1
	`, customerID).Scan(&c.ID, &c.SignInID, &c.Password, &c.PhoneNumber, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) GetCustomerBySignInID(signInID string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.DB.QueryRow(`
		SELECT id, signin_id, password, COALESCE(phone_number, ''), created_at
		FROM customers
		WHERE signin_id = $1
	`, signInID).Scan(&c.ID, &c.SignInID, &c.Password, &c.PhoneNumber, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresRepository) CustomerSignInIDExists(signInID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM customers WHERE signin_id = $1)`, signInID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) UpdateCustomerPhoneNumber(customerID int, phoneNumber string) error {
	result, err := r.DB.Exec(`UPDATE customers SET phone_number = $1 WHERE id = $2`, phoneNumber, customerID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateCustomerPassword(customerID int, password string) error {
	result, err := r.DB.Exec(`UPDATE customers SET password = $1 WHERE id = $2`, password, customerID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// DeleteCustomer removes the account row. Orders keep their history: the
// foreign key nulls customer_id instead of cascading.
func (r *PostgresRepository) DeleteCustomer(customerID int) error {
	result, err := r.DB.Exec(`DELETE FROM customers WHERE id = $1`, customerID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	err := r.DB.QueryRow(`
		INSERT INTO restaurants (signin_id, password, name, intro)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rest.SignInID, rest.Password, rest.Name, rest.Intro).Scan(&rest.ID, &rest.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrDuplicateSignInID
	}
	return err
}

func (r *PostgresRepository) GetRestaurant(restaurantID int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, signin_id, password, name, COALESCE(intro, ''),
		       COALESCE(profile_image_url, ''), COALESCE(background_image_url, ''), created_at
		FROM restaurants
		WHERE id = $1
	`, restaurantID).Scan(&rest.ID, &rest.SignInID, &rest.Password, &rest.Name, &rest.Intro,
		&rest.ProfileImageURL, &rest.BackgroundImageURL, &rest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetRestaurantBySignInID(signInID string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, signin_id, password, name, COALESCE(intro, ''),
		       COALESCE(profile_image_url, ''), COALESCE(background_image_url, ''), created_at
		FROM restaurants
		WHERE signin_id = $1
	`, signInID).Scan(&rest.ID, &rest.SignInID, &rest.Password, &rest.Name, &rest.Intro,
		&rest.ProfileImageURL, &rest.BackgroundImageURL, &rest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) RestaurantSignInIDExists(signInID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM restaurants WHERE signin_id = $1)`, signInID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) UpdateRestaurantInfo(restaurantID int, name, intro string) error {
	result, err := r.DB.Exec(`UPDATE restaurants SET name = $1, intro = $2 WHERE id = $3`, name, intro, restaurantID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateRestaurantProfileImage(restaurantID int, imageURL string) error {
	result, err := r.DB.Exec(`UPDATE restaurants SET profile_image_url = $1 WHERE id = $2`, imageURL, restaurantID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateRestaurantBackgroundImage(restaurantID int, imageURL string) error {
	result, err := r.DB.Exec(`UPDATE restaurants SET background_image_url = $1 WHERE id = $2`, imageURL, restaurantID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func (r *PostgresRepository) UpdateRestaurantPassword(restaurantID int, password string) error {
	result, err := r.DB.Exec(`UPDATE restaurants SET password = $1 WHERE id = $2`, password, restaurantID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrRestaurantNotFound
	}
	return nil
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, signin_id, password, name, COALESCE(intro, ''),
		       COALESCE(profile_image_url, ''), COALESCE(background_image_url, ''), created_at
		FROM restaurants
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.SignInID, &rest.Password, &rest.Name, &rest.Intro,
			&rest.ProfileImageURL, &rest.BackgroundImageURL, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

package storage

import (
	"database/sql"
	"fmt"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// EnsureSchema creates tables and constraints idempotently. The unique
// indexes here are load-bearing: they serialize concurrent signups and
// representative-menu adds, and keep orders.review_id single-valued.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			signin_id TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			phone_number TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			signin_id TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			name TEXT NOT NULL,
			intro TEXT,
			profile_image_url TEXT,
			background_image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS foods (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			price INTEGER NOT NULL CHECK (price >= 0),
			intro TEXT,
			sold_out BOOLEAN NOT NULL DEFAULT FALSE,
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS representative_menus (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			food_id INTEGER NOT NULL REFERENCES foods(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (restaurant_id, food_id)
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			customer_id INTEGER REFERENCES customers(id) ON DELETE SET NULL,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			order_type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'PLACED',
			order_time TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			review_id INTEGER UNIQUE REFERENCES reviews(id) ON DELETE SET NULL,
			qr_code BYTEA
		)`,
		`CREATE TABLE IF NOT EXISTS order_foods (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			food_id INTEGER NOT NULL REFERENCES foods(id),
			food_name TEXT NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			unit_price INTEGER NOT NULL CHECK (unit_price >= 0)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_foods_restaurant ON foods(restaurant_id)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_restaurant_time ON orders(restaurant_id, order_time)`,
		`CREATE INDEX IF NOT EXISTS idx_order_foods_order ON order_foods(order_id)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

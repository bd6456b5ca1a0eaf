package storage

import (
	"database/sql"
	"errors"
	"time"

	"ordering-backend/internal/domain"
)

// CreateOrder inserts the order and its line items in one transaction, so a
// failed line item leaves no partial order behind.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (customer_id, restaurant_id, order_type, status, order_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, order.CustomerID, order.RestaurantID, order.Type, order.Status, order.OrderTime).Scan(&order.ID); err != nil {
		return err
	}

	for i := range order.Foods {
		item := &order.Foods[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_foods (order_id, food_id, food_name, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, item.OrderID, item.FoodID, item.FoodName, item.Quantity, item.UnitPrice).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) scanOrder(row *sql.Row) (*domain.Order, error) {
	var order domain.Order
	var customerID, reviewID sql.NullInt64
	err := row.Scan(&order.ID, &customerID, &order.RestaurantID, &order.Type, &order.Status, &order.OrderTime, &reviewID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	order.CustomerID = int(customerID.Int64)
	order.ReviewID = int(reviewID.Int64)
	return &order, nil
}

// GetOrderWithReview resolves the review reference in the same read, so the
// review gate never needs a second round trip for the duplicate check.
func (r *PostgresRepository) GetOrderWithReview(orderID int) (*domain.Order, error) {
	return r.scanOrder(r.DB.QueryRow(`
		SELECT id, customer_id, restaurant_id, order_type, status, order_time, review_id
		FROM orders
		WHERE id = $1
	`, orderID))
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, []domain.OrderFood, error) {
	order, err := r.GetOrderWithReview(orderID)
	if err != nil {
		return nil, nil, err
	}

	rows, err := r.DB.Query(`
		SELECT id, order_id, food_id, food_name, quantity, unit_price
		FROM order_foods
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return order, nil, err
	}
	defer rows.Close()

	items := []domain.OrderFood{}
	for rows.Next() {
		var item domain.OrderFood
		if err := rows.Scan(&item.ID, &item.OrderID, &item.FoodID, &item.FoodName, &item.Quantity, &item.UnitPrice); err != nil {
			return order, nil, err
		}
		items = append(items, item)
	}
	return order, items, rows.Err()
}

func (r *PostgresRepository) ListCustomerOrders(customerID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, customer_id, restaurant_id, order_type, status, order_time, review_id
		FROM orders
		WHERE customer_id = $1
		ORDER BY order_time DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		var custID, reviewID sql.NullInt64
		if err := rows.Scan(&order.ID, &custID, &order.RestaurantID, &order.Type, &order.Status, &order.OrderTime, &reviewID); err != nil {
			return nil, err
		}
		order.CustomerID = int(custID.Int64)
		order.ReviewID = int(reviewID.Int64)
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status domain.OrderStatus) error {
	result, err := r.DB.Exec(`UPDATE orders SET status = $1 WHERE id = $2`, status, orderID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// DailySales sums line-item totals per calendar day for completed orders in
// [from, before). Days without orders are absent here; the service layer
// zero-fills the range.
func (r *PostgresRepository) DailySales(restaurantID int, from, before time.Time) (map[string]int, error) {
	rows, err := r.DB.Query(`
		SELECT to_char(o.order_time::date, 'YYYY-MM-DD') AS day,
		       COALESCE(SUM(of.quantity * of.unit_price), 0) AS total
		FROM orders o
		JOIN order_foods of ON of.order_id = o.id
		WHERE o.restaurant_id = $1
		  AND o.status = $2
		  AND o.order_time >= $3 AND o.order_time < $4
		GROUP BY day
	`, restaurantID, domain.OrderStatusCompleted, from, before)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := map[string]int{}
	for rows.Next() {
		var day string
		var total int
		if err := rows.Scan(&day, &total); err != nil {
			return nil, err
		}
		totals[day] = total
	}
	return totals, rows.Err()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qr []byte
	err := r.DB.QueryRow(`SELECT qr_code FROM orders WHERE id = $1`, orderID).Scan(&qr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return qr, nil
}

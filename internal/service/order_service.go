package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"ordering-backend/internal/domain"
)

// OrderService is the order ledger: it records what a customer bought and
// at what price, and answers sales queries over that history.
type OrderService struct {
	orders    OrderRepository
	foods     FoodRepository
	customers CustomerRepository
	sales     SalesCache
	publisher EventPublisher
	qrEncoder QRGenerator
}

func NewOrderService(orders OrderRepository, foods FoodRepository, customers CustomerRepository,
	sales SalesCache, publisher EventPublisher, qrEncoder QRGenerator) *OrderService {
	return &OrderService{
		orders:    orders,
		foods:     foods,
		customers: customers,
		sales:     sales,
		publisher: publisher,
		qrEncoder: qrEncoder,
	}
}

// PlaceOrder validates every line item against the current catalog, then
// snapshots the prices into the order. A sold-out food anywhere in the
// order rejects the whole order and nothing is written.
func (s *OrderService) PlaceOrder(ctx context.Context, customerID, restaurantID int, items []domain.LineItem, orderType domain.OrderType) (int, error) {
	if len(items) == 0 {
		return 0, domain.ErrEmptyOrder
	}
	if !orderType.Valid() {
		return 0, fmt.Errorf("%w: unknown order type %q", domain.ErrValidation, orderType)
	}
	if _, err := s.customers.GetCustomer(customerID); err != nil {
		return 0, err
	}

	order := &domain.Order{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Type:         orderType,
		Status:       domain.OrderStatusPlaced,
		OrderTime:    time.Now(),
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity must be positive for food %d", domain.ErrValidation, item.FoodID)
		}
		food, err := s.foods.GetRestaurantFood(restaurantID, item.FoodID)
		if err != nil {
			return 0, err
		}
		if food.SoldOut {
			return 0, fmt.Errorf("%w (food %d)", domain.ErrFoodSoldOut, food.ID)
		}
		order.Foods = append(order.Foods, domain.OrderFood{
			FoodID:    food.ID,
			FoodName:  food.Name,
			Quantity:  item.Quantity,
			UnitPrice: food.Price,
		})
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return 0, err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			if err := s.orders.SaveQRCode(order.ID, qr); err != nil {
				log.Printf("Warning: failed to store QR code for order %d: %v", order.ID, err)
			}
		}
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, domain.EventMessage{
			Type:         domain.EventOrderPlaced,
			OrderID:      order.ID,
			RestaurantID: restaurantID,
			CustomerID:   customerID,
			Total:        order.Total(),
			Timestamp:    time.Now(),
		})
	}

	return order.ID, nil
}

func (s *OrderService) GetOrder(orderID int) (*domain.Order, error) {
	order, items, err := s.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	order.Foods = items
	return order, nil
}

func (s *OrderService) ListCustomerOrders(customerID int) ([]domain.Order, error) {
	return s.orders.ListCustomerOrders(customerID)
}

// UpdateStatus enforces the order lifecycle: PLACED and PREPARING may move
// forward or be canceled; COMPLETED and CANCELED are terminal. Completion
// emits the sales event consumed by the daily aggregator.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", domain.ErrValidation, status)
	}

	order, items, err := s.orders.GetOrder(orderID)
	if err != nil {
		return err
	}
	if order.Status == status {
		return nil
	}
	if order.Status.Terminal() {
		return fmt.Errorf("%w: order %d is already %s", domain.ErrValidation, orderID, order.Status)
	}
	if order.Status == domain.OrderStatusPreparing && status == domain.OrderStatusPlaced {
		return fmt.Errorf("%w: order %d cannot return to %s", domain.ErrValidation, orderID, status)
	}

	if err := s.orders.UpdateOrderStatus(orderID, status); err != nil {
		return err
	}

	if status == domain.OrderStatusCompleted && s.publisher != nil {
		order.Foods = items
		_ = s.publisher.Publish(ctx, domain.EventMessage{
			Type:         domain.EventOrderCompleted,
			OrderID:      orderID,
			RestaurantID: order.RestaurantID,
			CustomerID:   order.CustomerID,
			Total:        order.Total(),
			Day:          order.OrderTime.Format("2006-01-02"),
			Timestamp:    time.Now(),
		})
	}
	return nil
}

// MonthlySales reports one entry per day in [from, before), zero-filled, so
// callers always get a gapless series. The redis counters answer when they
// can; the ledger itself is the source of truth.
func (s *OrderService) MonthlySales(ctx context.Context, restaurantID int, from, before time.Time) ([]domain.DailySales, error) {
	if !before.After(from) {
		return nil, fmt.Errorf("%w: empty sales range", domain.ErrValidation)
	}

	totals, ok := s.sales.DailySalesRange(ctx, restaurantID, from, before)
	if !ok {
		var err error
		totals, err = s.orders.DailySales(restaurantID, from, before)
		if err != nil {
			return nil, err
		}
	}

	series := []domain.DailySales{}
	for day := from; day.Before(before); day = day.AddDate(0, 0, 1) {
		d := day.Format("2006-01-02")
		series = append(series, domain.DailySales{Day: d, Total: totals[d]})
	}
	return series, nil
}

// GetQRCode regenerates and backfills the code when the stored blob is
// missing.
func (s *OrderService) GetQRCode(orderID int) ([]byte, error) {
	qr, err := s.orders.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		regenerated, err := s.qrEncoder.Generate(orderID)
		if err != nil {
			return nil, err
		}
		if err := s.orders.SaveQRCode(orderID, regenerated); err != nil {
			log.Printf("Warning: failed to cache regenerated QR code: %v", err)
		}
		return regenerated, nil
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)

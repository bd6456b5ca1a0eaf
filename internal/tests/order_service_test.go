package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ordering-backend/internal/domain"
	"ordering-backend/internal/mocks"
	"ordering-backend/internal/service"
)

func newOrderService(t *testing.T) (*service.OrderService, *mocks.OrderRepository, *mocks.FoodRepository, *mocks.CustomerRepository, *mocks.SalesCache, *mocks.EventPublisher, *mocks.QRGenerator) {
	orders := mocks.NewOrderRepository(t)
	foods := mocks.NewFoodRepository(t)
	customers := mocks.NewCustomerRepository(t)
	sales := mocks.NewSalesCache(t)
	publisher := mocks.NewEventPublisher(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewOrderService(orders, foods, customers, sales, publisher, qr)
	return svc, orders, foods, customers, sales, publisher, qr
}

func TestOrderService_PlaceOrderSnapshotsPrices(t *testing.T) {
	svc, orders, foods, customers, _, publisher, qr := newOrderService(t)

	customers.On("GetCustomer", 1).Return(&domain.Customer{ID: 1}, nil).Once()
	foods.On("GetRestaurantFood", 10, 7).
		Return(&domain.Food{ID: 7, RestaurantID: 10, Name: "Bibimbap", Price: 9500}, nil).Once()
	foods.On("GetRestaurantFood", 10, 8).
		Return(&domain.Food{ID: 8, RestaurantID: 10, Name: "Kimchi Stew", Price: 8000}, nil).Once()

	orders.On("CreateOrder", mock.MatchedBy(func(o *domain.Order) bool {
		return len(o.Foods) == 2 &&
			o.Foods[0].UnitPrice == 9500 && o.Foods[0].FoodName == "Bibimbap" &&
			o.Foods[1].UnitPrice == 8000 && o.Foods[1].Quantity == 3 &&
			o.Status == domain.OrderStatusPlaced
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 55
	}).Return(nil).Once()

	qr.On("Generate", 55).Return([]byte("png"), nil).Once()
	orders.On("SaveQRCode", 55, []byte("png")).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(m domain.EventMessage) bool {
		return m.Type == domain.EventOrderPlaced && m.OrderID == 55 && m.Total == 9500+3*8000
	})).Return(nil).Once()

	id, err := svc.PlaceOrder(context.Background(), 1, 10, []domain.LineItem{
		{FoodID: 7, Quantity: 1},
		{FoodID: 8, Quantity: 3},
	}, domain.OrderTypeDineIn)

	assert.NoError(t, err)
	assert.Equal(t, 55, id)
}

func TestOrderService_PlaceOrderRejections(t *testing.T) {
	tests := []struct {
		name         string
		items        []domain.LineItem
		orderType    domain.OrderType
		prepareMocks func(foods *mocks.FoodRepository, customers *mocks.CustomerRepository)
		wantErr      error
	}{
		{
			name:         "empty order",
			items:        nil,
			orderType:    domain.OrderTypeDineIn,
			prepareMocks: func(foods *mocks.FoodRepository, customers *mocks.CustomerRepository) {},
			wantErr:      domain.ErrEmptyOrder,
		},
		{
			name:         "unknown order type",
			items:        []domain.LineItem{{FoodID: 7, Quantity: 1}},
			orderType:    "DRIVE_THROUGH",
			prepareMocks: func(foods *mocks.FoodRepository, customers *mocks.CustomerRepository) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name:      "unknown customer",
			items:     []domain.LineItem{{FoodID: 7, Quantity: 1}},
			orderType: domain.OrderTypeDineIn,
			prepareMocks: func(foods *mocks.FoodRepository, customers *mocks.CustomerRepository) {
				customers.On("GetCustomer", 1).Return(nil, domain.ErrCustomerNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name:      "non-positive quantity",
			items:     []domain.LineItem{{FoodID: 7, Quantity: 0}},
			orderType: domain.OrderTypeDineIn,
			prepareMocks: func(foods *mocks.FoodRepository, customers *mocks.CustomerRepository) {
				customers.On("GetCustomer", 1).Return(&domain.Customer{ID: 1}, nil).Once()
			},
			wantErr: domain.ErrValidation,
		},
		{
			name:      "sold-out food rejects the whole order",
			items:     []domain.LineItem{{FoodID: 7, Quantity: 1}, {FoodID: 8, Quantity: 1}},
			orderType: domain.OrderTypeDineIn,
			prepareMocks: func(foods *mocks.FoodRepository, customers *mocks.CustomerRepository) {
				customers.On("GetCustomer", 1).Return(&domain.Customer{ID: 1}, nil).Once()
				foods.On("GetRestaurantFood", 10, 7).
					Return(&domain.Food{ID: 7, RestaurantID: 10, Name: "Bibimbap", Price: 9500}, nil).Once()
				foods.On("GetRestaurantFood", 10, 8).
					Return(&domain.Food{ID: 8, RestaurantID: 10, Name: "Kimchi Stew", Price: 8000, SoldOut: true}, nil).Once()
			},
			wantErr: domain.ErrFoodSoldOut,
		},
		{
			name:      "food from another restaurant",
			items:     []domain.LineItem{{FoodID: 7, Quantity: 1}},
			orderType: domain.OrderTypeDineIn,
			prepareMocks: func(foods *mocks.FoodRepository, customers *mocks.CustomerRepository) {
				customers.On("GetCustomer", 1).Return(&domain.Customer{ID: 1}, nil).Once()
				foods.On("GetRestaurantFood", 10, 7).Return(nil, domain.ErrFoodNotFound).Once()
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, _, foods, customers, _, _, _ := newOrderService(t)
			testCase.prepareMocks(foods, customers)

			id, err := svc.PlaceOrder(context.Background(), 1, 10, testCase.items, testCase.orderType)
			assert.Zero(t, id)
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	orderTime := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	items := []domain.OrderFood{{FoodID: 7, Quantity: 2, UnitPrice: 9500}}

	t.Run("completion publishes the sales event", func(t *testing.T) {
		svc, orders, _, _, _, publisher, _ := newOrderService(t)
		orders.On("GetOrder", 55).
			Return(&domain.Order{ID: 55, RestaurantID: 10, Status: domain.OrderStatusPreparing, OrderTime: orderTime}, items, nil).Once()
		orders.On("UpdateOrderStatus", 55, domain.OrderStatusCompleted).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.MatchedBy(func(m domain.EventMessage) bool {
			return m.Type == domain.EventOrderCompleted &&
				m.Total == 19000 && m.Day == "2026-03-14" && m.RestaurantID == 10
		})).Return(nil).Once()

		assert.NoError(t, svc.UpdateStatus(context.Background(), 55, domain.OrderStatusCompleted))
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		svc, orders, _, _, _, _, _ := newOrderService(t)
		orders.On("GetOrder", 55).
			Return(&domain.Order{ID: 55, Status: domain.OrderStatusPreparing, OrderTime: orderTime}, items, nil).Once()

		assert.NoError(t, svc.UpdateStatus(context.Background(), 55, domain.OrderStatusPreparing))
	})

	t.Run("terminal order rejects any transition", func(t *testing.T) {
		svc, orders, _, _, _, _, _ := newOrderService(t)
		orders.On("GetOrder", 55).
			Return(&domain.Order{ID: 55, Status: domain.OrderStatusCanceled, OrderTime: orderTime}, items, nil).Once()

		err := svc.UpdateStatus(context.Background(), 55, domain.OrderStatusPreparing)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("no regression to placed", func(t *testing.T) {
		svc, orders, _, _, _, _, _ := newOrderService(t)
		orders.On("GetOrder", 55).
			Return(&domain.Order{ID: 55, Status: domain.OrderStatusPreparing, OrderTime: orderTime}, items, nil).Once()

		err := svc.UpdateStatus(context.Background(), 55, domain.OrderStatusPlaced)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _, _, _, _, _, _ := newOrderService(t)
		err := svc.UpdateStatus(context.Background(), 55, "SHIPPED")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("cancellation publishes nothing", func(t *testing.T) {
		svc, orders, _, _, _, _, _ := newOrderService(t)
		orders.On("GetOrder", 55).
			Return(&domain.Order{ID: 55, Status: domain.OrderStatusPlaced, OrderTime: orderTime}, items, nil).Once()
		orders.On("UpdateOrderStatus", 55, domain.OrderStatusCanceled).Return(nil).Once()

		assert.NoError(t, svc.UpdateStatus(context.Background(), 55, domain.OrderStatusCanceled))
	})
}

func TestOrderService_MonthlySalesZeroFills(t *testing.T) {
	svc, orders, _, _, sales, _, _ := newOrderService(t)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	sales.On("DailySalesRange", mock.Anything, 10, from, before).Return(nil, false).Once()
	orders.On("DailySales", 10, from, before).Return(map[string]int{
		"2026-03-02": 45000,
		"2026-03-14": 19000,
	}, nil).Once()

	series, err := svc.MonthlySales(context.Background(), 10, from, before)
	assert.NoError(t, err)
	assert.Len(t, series, 31)
	assert.Equal(t, domain.DailySales{Day: "2026-03-01", Total: 0}, series[0])
	assert.Equal(t, domain.DailySales{Day: "2026-03-02", Total: 45000}, series[1])
	assert.Equal(t, domain.DailySales{Day: "2026-03-14", Total: 19000}, series[13])
	assert.Equal(t, domain.DailySales{Day: "2026-03-31", Total: 0}, series[30])
}

func TestOrderService_MonthlySalesPrefersCache(t *testing.T) {
	svc, _, _, _, sales, _, _ := newOrderService(t)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	before := from.AddDate(0, 0, 2)

	sales.On("DailySalesRange", mock.Anything, 10, from, before).
		Return(map[string]int{"2026-03-01": 500}, true).Once()

	series, err := svc.MonthlySales(context.Background(), 10, from, before)
	assert.NoError(t, err)
	assert.Equal(t, []domain.DailySales{
		{Day: "2026-03-01", Total: 500},
		{Day: "2026-03-02", Total: 0},
	}, series)
}

func TestOrderService_MonthlySalesEmptyRange(t *testing.T) {
	svc, _, _, _, _, _, _ := newOrderService(t)

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.MonthlySales(context.Background(), 10, from, from)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderService_GetQRCodeRegenerates(t *testing.T) {
	svc, orders, _, _, _, _, qr := newOrderService(t)

	orders.On("GetQRCode", 55).Return(nil, nil).Once()
	qr.On("Generate", 55).Return([]byte("fresh"), nil).Once()
	orders.On("SaveQRCode", 55, []byte("fresh")).Return(nil).Once()

	code, err := svc.GetQRCode(55)
	assert.NoError(t, err)
	assert.Equal(t, []byte("fresh"), code)
}

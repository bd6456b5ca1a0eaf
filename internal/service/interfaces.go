package service

import (
	"context"
	"time"

	"ordering-backend/internal/domain"
	"ordering-backend/internal/storage"
)

type FoodRepository interface {
	CreateFood(food *domain.Food) error
	GetFood(foodID int) (*domain.Food, error)
	GetRestaurantFood(restaurantID, foodID int) (*domain.Food, error)
	ListFoods(restaurantID int) ([]domain.Food, error)
	UpdateFood(food *domain.Food) error
	UpdateFoodImage(restaurantID, foodID int, imageURL string) error
	SetSoldOut(foodID int, soldOut bool) error
	DeleteFood(foodID int) error
}

type RepresentativeMenuRepository interface {
	AddRepresentative(restaurantID, foodID int) (bool, error)
	RemoveRepresentative(restaurantID, foodID int) error
	ListRepresentative(restaurantID int) ([]domain.RepresentativeMenu, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrderWithReview(orderID int) (*domain.Order, error)
	GetOrder(orderID int) (*domain.Order, []domain.OrderFood, error)
	ListCustomerOrders(customerID int) ([]domain.Order, error)
	UpdateOrderStatus(orderID int, status domain.OrderStatus) error
	DailySales(restaurantID int, from, before time.Time) (map[string]int, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type ReviewRepository interface {
	InsertReviewAndAttach(review *domain.Review) error
	GetReview(reviewID int) (*domain.Review, error)
	UpdateReviewText(reviewID int, content string) error
	DeleteReview(reviewID int) error
}

type CustomerRepository interface {
	CreateCustomer(c *domain.Customer) error
	GetCustomer(customerID int) (*domain.Customer, error)
	GetCustomerBySignInID(signInID string) (*domain.Customer, error)
	CustomerSignInIDExists(signInID string) (bool, error)
	UpdateCustomerPhoneNumber(customerID int, phoneNumber string) error
	UpdateCustomerPassword(customerID int, password string) error
	DeleteCustomer(customerID int) error
}

type RestaurantRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	GetRestaurant(restaurantID int) (*domain.Restaurant, error)
	GetRestaurantBySignInID(signInID string) (*domain.Restaurant, error)
	RestaurantSignInIDExists(signInID string) (bool, error)
	UpdateRestaurantInfo(restaurantID int, name, intro string) error
	UpdateRestaurantProfileImage(restaurantID int, imageURL string) error
	UpdateRestaurantBackgroundImage(restaurantID int, imageURL string) error
	UpdateRestaurantPassword(restaurantID int, password string) error
	ListRestaurants() ([]domain.Restaurant, error)
}

type ReviewCache interface {
	ReviewMarkerKey(orderID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
	DeleteMarker(ctx context.Context, key string) error
}

type PreviewCache interface {
	GetPreview(ctx context.Context) ([]domain.RestaurantPreview, bool)
	SetPreview(ctx context.Context, previews []domain.RestaurantPreview) error
	InvalidatePreview(ctx context.Context) error
}

type SalesCache interface {
	AddDailySales(ctx context.Context, restaurantID int, day string, total int) error
	DailySalesRange(ctx context.Context, restaurantID int, from, before time.Time) (map[string]int, bool)
}

type EventPublisher interface {
	Publish(ctx context.Context, msg domain.EventMessage) error
}

// ImageStore is the blob-storage collaborator. Store returns a URL ending
// in the key, so the key can be recovered from a stored URL later.
type ImageStore interface {
	Store(ctx context.Context, data []byte, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type CatalogServiceInterface interface {
	RegisterFood(ctx context.Context, restaurantID int, food *domain.Food, image []byte, imageName string) (int, error)
	UpdateFood(ctx context.Context, restaurantID, foodID int, food *domain.Food, image []byte, imageName string) error
	DeleteFood(ctx context.Context, foodID int) error
	SetSoldOut(foodID int, soldOut bool) error
	ListFoods(restaurantID int) ([]domain.Food, error)
}

type MenuServiceInterface interface {
	AddRepresentative(ctx context.Context, restaurantID, foodID int) (bool, error)
	RemoveRepresentative(ctx context.Context, restaurantID, foodID int) error
	ListPreview(restaurantID int) ([]string, error)
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, customerID, restaurantID int, items []domain.LineItem, orderType domain.OrderType) (int, error)
	GetOrder(orderID int) (*domain.Order, error)
	ListCustomerOrders(customerID int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, status domain.OrderStatus) error
	MonthlySales(ctx context.Context, restaurantID int, from, before time.Time) ([]domain.DailySales, error)
	GetQRCode(orderID int) ([]byte, error)
}

type ReviewServiceInterface interface {
	Register(ctx context.Context, restaurantID, orderID int, content string) (bool, error)
	UpdateText(reviewID int, content string) error
	Delete(ctx context.Context, reviewID int) error
}

type AccountServiceInterface interface {
	SignUp(c *domain.Customer) (int, error)
	SignIn(signInID, password string) (*domain.Customer, error)
	IsIDDuplicated(signInID string) (bool, error)
	ChangePhoneNumber(customerID int, phoneNumber string) error
	ChangePassword(customerID int, currentPassword, newPassword string) (bool, error)
	DeleteAccount(customerID int) error
}

type RestaurantServiceInterface interface {
	SignUp(rest *domain.Restaurant) (int, error)
	SignIn(signInID, password string) (*domain.Restaurant, error)
	IsIDDuplicated(signInID string) (bool, error)
	ChangePassword(restaurantID int, currentPassword, newPassword string) (bool, error)
	PutInfo(ctx context.Context, restaurantID int, name, intro string) error
	PutProfileImage(ctx context.Context, restaurantID int, image []byte, imageName string) (string, error)
	PutBackgroundImage(ctx context.Context, restaurantID int, image []byte, imageName string) (string, error)
	GetAllForPreview(ctx context.Context) ([]domain.RestaurantPreview, error)
}

var (
	_ FoodRepository               = (*storage.PostgresRepository)(nil)
	_ RepresentativeMenuRepository = (*storage.PostgresRepository)(nil)
	_ OrderRepository              = (*storage.PostgresRepository)(nil)
	_ ReviewRepository             = (*storage.PostgresRepository)(nil)
	_ CustomerRepository           = (*storage.PostgresRepository)(nil)
	_ RestaurantRepository         = (*storage.PostgresRepository)(nil)
	_ ReviewCache                  = (*storage.RedisCache)(nil)
	_ PreviewCache                 = (*storage.RedisCache)(nil)
	_ SalesCache                   = (*storage.RedisCache)(nil)
	_ EventPublisher               = (*storage.KafkaPublisher)(nil)
	_ ImageStore                   = (*storage.S3ImageStore)(nil)
)

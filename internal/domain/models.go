package domain

import "time"

type Customer struct {
	ID          int       `json:"id"`
	SignInID    string    `json:"signin_id"`
	Password    string    `json:"-"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Restaurant struct {
	ID                 int       `json:"id"`
	SignInID           string    `json:"signin_id"`
	Password           string    `json:"-"`
	Name               string    `json:"name"`
	Intro              string    `json:"intro"`
	ProfileImageURL    string    `json:"profile_image_url,omitempty"`
	BackgroundImageURL string    `json:"background_image_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type Food struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	// Price is in minor currency units.
	Price     int       `json:"price"`
	Intro     string    `json:"intro"`
	SoldOut   bool      `json:"sold_out"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RepresentativeMenu marks one of a restaurant's foods as featured in
// preview listings. A food appears at most once per restaurant.
type RepresentativeMenu struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	FoodID       int       `json:"food_id"`
	FoodName     string    `json:"food_name"`
	CreatedAt    time.Time `json:"created_at"`
}

type OrderType string

const (
	OrderTypeDineIn   OrderType = "DINE_IN"
	OrderTypeDelivery OrderType = "DELIVERY"
	OrderTypePickup   OrderType = "PICKUP"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeDineIn, OrderTypeDelivery, OrderTypePickup:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCanceled  OrderStatus = "CANCELED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusPreparing, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCanceled
}

type Order struct {
	ID           int         `json:"id"`
	CustomerID   int         `json:"customer_id"`
	RestaurantID int         `json:"restaurant_id"`
	Type         OrderType   `json:"order_type"`
	Status       OrderStatus `json:"status"`
	OrderTime    time.Time   `json:"order_time"`
	// ReviewID is zero while no review is attached. At most one review
	// ever points at an order.
	ReviewID int         `json:"review_id,omitempty"`
	Foods    []OrderFood `json:"foods,omitempty"`
}

// AbleRegisterReview is the review eligibility predicate: the order must be
// completed and not reviewed yet.
func (o *Order) AbleRegisterReview() bool {
	return o.Status == OrderStatusCompleted && o.ReviewID == 0
}

// Total sums the snapshotted line-item prices.
func (o *Order) Total() int {
	total := 0
	for _, f := range o.Foods {
		total += f.UnitPrice * f.Quantity
	}
	return total
}

// OrderFood is one line item. UnitPrice is the food price at order time and
// is never recomputed from the current catalog price.
type OrderFood struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"order_id"`
	FoodID    int    `json:"food_id"`
	FoodName  string `json:"food_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// LineItem is the placeOrder request shape before prices are snapshotted.
type LineItem struct {
	FoodID   int `json:"food_id"`
	Quantity int `json:"quantity"`
}

type Review struct {
	ID           int       `json:"id"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

type DailySales struct {
	Day   string `json:"day"`
	Total int    `json:"total"`
}

// RestaurantPreview is the shape served in restaurant list responses:
// identity plus the representative-menu food names, in insertion order.
type RestaurantPreview struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	ProfileImageURL string   `json:"profile_image_url,omitempty"`
	FoodNames       []string `json:"food_names"`
}

type EventMessage struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	CustomerID   int       `json:"customer_id,omitempty"`
	Total        int       `json:"total,omitempty"`
	Day          string    `json:"day,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventOrderPlaced    = "order_placed"
	EventOrderCompleted = "order_completed"
	EventNewReview      = "new_review"
)

package domain

import "time"

type Restaurant struct {
	ID        int       `json:"id"`
	PublicID  string    `json:"public_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	RestaurantID int    `json:"restaurant_id"`
}

type Dish struct {
	ID           int     `json:"id"`
	RestaurantID int     `json:"restaurant_id"`
	CategoryID   int     `json:"category_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	ImagePath    string  `json:"image_path"`
}

// DishWithCategory is a dish row joined with its category name, as read
// back from the store for menu listings.
type DishWithCategory struct {
	Dish
	Category string `json:"category"`
}

// MenuItem is a dish joined with its category name, shaped for the
// customer-facing menu listing.
type MenuItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	ImagePath   string `json:"image_path"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusValidated = "validated"
	// OrderStatusCompleted is readable but never written by any exposed
	// operation; it is reserved for direct administrative action.
	OrderStatusCompleted = "completed"
)

type Order struct {
	ID           int         `json:"id"`
	RestaurantID int         `json:"restaurant_id"`
	TableNumber  string      `json:"table_number,omitempty"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID       int     `json:"id"`
	OrderID  int     `json:"order_id"`
	DishID   int     `json:"dish_id"`
	DishName string  `json:"dish_name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

// CartItem is one line of the cart a customer submits to create an order.
type CartItem struct {
	ID       int    `json:"id"`
	Quantity int    `json:"quantity,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// StaffOrder is the staff-view projection of an order: table label,
// display lines and a rounded total.
type StaffOrder struct {
	ID          int             `json:"id"`
	TableNumber string          `json:"table_number"`
	Items       []StaffOrderRow `json:"items"`
	TotalPrice  float64         `json:"total_price"`
	Timestamp   string          `json:"timestamp"`
}

type StaffOrderRow struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

type DailySales struct {
	TotalSales  float64 `json:"total_sales"`
	OrdersCount int     `json:"orders_count"`
}

// OrderEvent is emitted to the event stream whenever an order is created
// or confirmed, and folded into the daily sales counters by the consumer.
type OrderEvent struct {
	Type         string    `json:"type"`
	OrderID      int       `json:"order_id"`
	RestaurantID int       `json:"restaurant_id"`
	Total        float64   `json:"total"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventOrderCreated   = "order_created"
	EventOrderConfirmed = "order_confirmed"
)

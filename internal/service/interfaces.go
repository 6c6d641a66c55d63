package service

import (
	"context"
	"time"

	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/domain"
)

type CatalogServiceInterface interface {
	Register(name, email string) (*domain.Restaurant, error)
	GetByPublicID(publicID string) (*domain.Restaurant, error)
	ListMenu(restaurantID int) ([]domain.MenuItem, error)
	AddDish(restaurantID int, req AddDishRequest) (*domain.Dish, error)
	DeleteDish(dishID int) error
}

type OrderServiceInterface interface {
	Create(ctx context.Context, restaurantID int, tableNumber string, cart []domain.CartItem) (*domain.Order, error)
	ListPending(restaurantID int) ([]domain.StaffOrder, error)
	ListConfirmed(restaurantID int) ([]domain.StaffOrder, error)
	Confirm(ctx context.Context, orderID int) error
	Delete(ctx context.Context, orderID int) error
	Status(ctx context.Context, orderID int) (string, error)
}

type ReportServiceInterface interface {
	DailySales(restaurantID int, day time.Time) (*domain.DailySales, error)
}

type CatalogRepository interface {
	InsertRestaurant(rest *domain.Restaurant) error
	GetRestaurantByPublicID(publicID string) (*domain.Restaurant, error)
	ListDishes(restaurantID int) ([]domain.DishWithCategory, error)
	UpsertCategory(restaurantID int, name string) (*domain.Category, error)
	InsertDish(dish *domain.Dish) error
	DeleteDish(dishID int) (int64, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order, cart []domain.CartItem) error
	ListOrders(restaurantID int, statuses []string) ([]domain.Order, error)
	GetOrder(orderID int) (*domain.Order, error)
	UpdateOrderStatus(orderID int, status string) (int64, error)
	DeleteOrder(orderID int) (int64, error)
	DailySales(restaurantID int, day time.Time) (*domain.DailySales, error)
}

type StatusCache interface {
	GetStatus(ctx context.Context, orderID int) (string, error)
	SetStatus(ctx context.Context, orderID int, status string) error
	DropStatus(ctx context.Context, orderID int) error
}

type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// ImageStore is the seam to wherever dish images live. Upload failures are
// treated as "no image" by callers, never as a request failure.
type ImageStore interface {
	Upload(name string, data []byte, contentType string) (string, error)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
var _ OrderServiceInterface = (*OrderService)(nil)
var _ ReportServiceInterface = (*ReportService)(nil)

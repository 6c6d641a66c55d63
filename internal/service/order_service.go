package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/domain"
)

// tableUnknown is the staff-view placeholder for orders without a table.
const tableUnknown = "—"

type OrderService struct {
	repo      OrderRepository
	cache     StatusCache
	publisher EventPublisher
}

func NewOrderService(repo OrderRepository, cache StatusCache, publisher EventPublisher) *OrderService {
	return &OrderService{repo: repo, cache: cache, publisher: publisher}
}

// Create persists an order with one item per cart line, all inside a single
// transaction: a dish id outside the restaurant's scope rolls the whole
// order back. Each line is stored with quantity 1 regardless of any
// requested quantity, reproducing the contract customers already rely on.
func (s *OrderService) Create(ctx context.Context, restaurantID int, tableNumber string, cart []domain.CartItem) (*domain.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		Status:       domain.OrderStatusPending,
	}
	if err := s.repo.CreateOrder(order, cart); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetStatus(ctx, order.ID, "pending"); err != nil {
			log.Printf("[orders] failed to cache status for order %d: %v", order.ID, err)
		}
	}

	s.publish(ctx, domain.EventOrderCreated, order)

	return order, nil
}

func (s *OrderService) ListPending(restaurantID int) ([]domain.StaffOrder, error) {
	orders, err := s.repo.ListOrders(restaurantID, []string{domain.OrderStatusPending})
	if err != nil {
		return nil, err
	}
	return FormatForStaff(orders), nil
}

func (s *OrderService) ListConfirmed(restaurantID int) ([]domain.StaffOrder, error) {
	orders, err := s.repo.ListOrders(restaurantID, []string{domain.OrderStatusValidated, domain.OrderStatusCompleted})
	if err != nil {
		return nil, err
	}
	return FormatForStaff(orders), nil
}

// Confirm transitions the order to validated. Re-confirming a validated
// order is a no-op transition to the same state.
func (s *OrderService) Confirm(ctx context.Context, orderID int) error {
	rows, err := s.repo.UpdateOrderStatus(orderID, domain.OrderStatusValidated)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}

	if s.cache != nil {
		if err := s.cache.SetStatus(ctx, orderID, "confirmed"); err != nil {
			log.Printf("[orders] failed to cache status for order %d: %v", orderID, err)
		}
	}

	if s.publisher != nil {
		if order, err := s.repo.GetOrder(orderID); err == nil {
			s.publish(ctx, domain.EventOrderConfirmed, order)
		}
	}

	return nil
}

// Delete removes the order and its items.
func (s *OrderService) Delete(ctx context.Context, orderID int) error {
	rows, err := s.repo.DeleteOrder(orderID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: order %d", ErrNotFound, orderID)
	}
	if s.cache != nil {
		if err := s.cache.DropStatus(ctx, orderID); err != nil {
			log.Printf("[orders] failed to drop cached status for order %d: %v", orderID, err)
		}
	}
	return nil
}

// Status maps the internal order state onto the coarse view customers poll:
// "confirmed" once validated or completed, "pending" before that. The redis
// cache absorbs the polling; the store stays the source of truth on a miss.
func (s *OrderService) Status(ctx context.Context, orderID int) (string, error) {
	if s.cache != nil {
		if status, err := s.cache.GetStatus(ctx, orderID); err == nil && status != "" {
			return status, nil
		}
	}

	order, err := s.repo.GetOrder(orderID)
	if err != nil {
		return "", err
	}

	status := CoarseStatus(order.Status)
	if s.cache != nil {
		if err := s.cache.SetStatus(ctx, orderID, status); err != nil {
			log.Printf("[orders] failed to cache status for order %d: %v", orderID, err)
		}
	}
	return status, nil
}

func (s *OrderService) publish(ctx context.Context, eventType string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishOrderEvent(ctx, domain.OrderEvent{
		Type:         eventType,
		OrderID:      order.ID,
		RestaurantID: order.RestaurantID,
		Total:        OrderTotal(order),
		Timestamp:    time.Now(),
	})
	if err != nil {
		log.Printf("[orders] failed to publish %s for order %d: %v", eventType, order.ID, err)
	}
}

// CoarseStatus collapses the internal status vocabulary for customers.
func CoarseStatus(status string) string {
	if status == domain.OrderStatusValidated || status == domain.OrderStatusCompleted {
		return "confirmed"
	}
	return "pending"
}

// OrderTotal sums unit price times quantity over the order's items, rounded
// to 2 decimals.
func OrderTotal(order *domain.Order) float64 {
	total := 0.0
	for _, item := range order.Items {
		total += item.Price * float64(item.Quantity)
	}
	return Round2(total)
}

// FormatForStaff shapes orders for the confirm/manage view: table label,
// display lines and the rounded total per order.
func FormatForStaff(orders []domain.Order) []domain.StaffOrder {
	result := make([]domain.StaffOrder, 0, len(orders))
	for i := range orders {
		order := &orders[i]

		table := order.TableNumber
		if table == "" {
			table = tableUnknown
		}

		rows := make([]domain.StaffOrderRow, 0, len(order.Items))
		for _, item := range order.Items {
			name := item.DishName
			if item.Quantity > 1 {
				name = fmt.Sprintf("%s (x%d)", name, item.Quantity)
			}
			rows = append(rows, domain.StaffOrderRow{
				Name:  name,
				Price: FormatPrice(item.Price),
			})
		}

		result = append(result, domain.StaffOrder{
			ID:          order.ID,
			TableNumber: table,
			Items:       rows,
			TotalPrice:  OrderTotal(order),
			Timestamp:   order.CreatedAt.Format(time.RFC3339),
		})
	}
	return result
}

// Round2 rounds to the cent, half away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

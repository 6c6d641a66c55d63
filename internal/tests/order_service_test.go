package tests

import (
	"context"
	"testing"
	"time"

	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/domain"
	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/mocks"
	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()
	cart := []domain.CartItem{{ID: 10, Quantity: 2, Notes: "no onions"}}

	t.Run("empty_cart", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, nil, nil)

		_, err := svc.Create(ctx, 1, "4", nil)
		assert.ErrorIs(t, err, service.ErrEmptyCart)
	})

	t.Run("unknown_dish_rolls_back", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("CreateOrder", mock.Anything, cart).Return(service.ErrDishNotFound).Once()
		svc := service.NewOrderService(repo, nil, nil)

		_, err := svc.Create(ctx, 1, "4", cart)
		assert.ErrorIs(t, err, service.ErrDishNotFound)
	})

	t.Run("success_caches_and_publishes", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		cache := mocks.NewStatusCache(t)
		publisher := mocks.NewEventPublisher(t)

		repo.On("CreateOrder", mock.Anything, cart).
			Run(func(args mock.Arguments) {
				order := args.Get(0).(*domain.Order)
				order.ID = 7
				order.Items = []domain.OrderItem{
					{ID: 1, OrderID: 7, DishID: 10, DishName: "Tajine", Price: 80, Quantity: 1},
				}
			}).Return(nil).Once()
		cache.On("SetStatus", mock.Anything, 7, "pending").Return(nil).Once()
		publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(ev domain.OrderEvent) bool {
			return ev.Type == domain.EventOrderCreated && ev.OrderID == 7 && ev.Total == 80
		})).Return(nil).Once()

		svc := service.NewOrderService(repo, cache, publisher)
		order, err := svc.Create(ctx, 1, "4", cart)

		assert.NoError(t, err)
		assert.Equal(t, 7, order.ID)
		assert.Equal(t, domain.OrderStatusPending, order.Status)
	})
}

func TestOrderService_Confirm(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		cache := mocks.NewStatusCache(t)
		publisher := mocks.NewEventPublisher(t)

		repo.On("UpdateOrderStatus", 7, domain.OrderStatusValidated).Return(int64(1), nil).Once()
		cache.On("SetStatus", mock.Anything, 7, "confirmed").Return(nil).Once()
		repo.On("GetOrder", 7).Return(&domain.Order{
			ID:           7,
			RestaurantID: 1,
			Status:       domain.OrderStatusValidated,
			Items:        []domain.OrderItem{{DishID: 10, Price: 80, Quantity: 1}},
		}, nil).Once()
		publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(ev domain.OrderEvent) bool {
			return ev.Type == domain.EventOrderConfirmed && ev.OrderID == 7
		})).Return(nil).Once()

		svc := service.NewOrderService(repo, cache, publisher)
		assert.NoError(t, svc.Confirm(ctx, 7))
	})

	t.Run("not_found", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("UpdateOrderStatus", 99, domain.OrderStatusValidated).Return(int64(0), nil).Once()

		svc := service.NewOrderService(repo, nil, nil)
		assert.ErrorIs(t, svc.Confirm(ctx, 99), service.ErrNotFound)
	})
}

func TestOrderService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := mocks.NewOrderRepository(t)
	cache := mocks.NewStatusCache(t)
	repo.On("DeleteOrder", 7).Return(int64(1), nil).Once()
	cache.On("DropStatus", mock.Anything, 7).Return(nil).Once()
	repo.On("DeleteOrder", 99).Return(int64(0), nil).Once()

	svc := service.NewOrderService(repo, cache, nil)
	assert.NoError(t, svc.Delete(ctx, 7))
	assert.ErrorIs(t, svc.Delete(ctx, 99), service.ErrNotFound)
}

func TestOrderService_Status(t *testing.T) {
	ctx := context.Background()

	t.Run("cache_hit_skips_store", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		cache := mocks.NewStatusCache(t)
		cache.On("GetStatus", mock.Anything, 7).Return("confirmed", nil).Once()

		svc := service.NewOrderService(repo, cache, nil)
		status, err := svc.Status(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, "confirmed", status)
		repo.AssertNotCalled(t, "GetOrder", mock.Anything)
	})

	t.Run("cache_miss_reads_store_and_backfills", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		cache := mocks.NewStatusCache(t)
		cache.On("GetStatus", mock.Anything, 7).Return("", nil).Once()
		repo.On("GetOrder", 7).Return(&domain.Order{ID: 7, Status: domain.OrderStatusValidated}, nil).Once()
		cache.On("SetStatus", mock.Anything, 7, "confirmed").Return(nil).Once()

		svc := service.NewOrderService(repo, cache, nil)
		status, err := svc.Status(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, "confirmed", status)
	})

	t.Run("unknown_order", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("GetOrder", 99).Return(nil, service.ErrNotFound).Once()

		svc := service.NewOrderService(repo, nil, nil)
		_, err := svc.Status(ctx, 99)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestCoarseStatus(t *testing.T) {
	assert.Equal(t, "pending", service.CoarseStatus(domain.OrderStatusPending))
	assert.Equal(t, "confirmed", service.CoarseStatus(domain.OrderStatusValidated))
	assert.Equal(t, "confirmed", service.CoarseStatus(domain.OrderStatusCompleted))
}

func TestFormatForStaff(t *testing.T) {
	createdAt := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)
	orders := []domain.Order{
		{
			ID:          7,
			TableNumber: "4",
			CreatedAt:   createdAt,
			Items: []domain.OrderItem{
				{DishName: "Tajine", Price: 80, Quantity: 1},
				{DishName: "Thé", Price: 12.5, Quantity: 3},
			},
		},
		{
			ID:        8,
			CreatedAt: createdAt,
			Items:     []domain.OrderItem{{DishName: "Couscous", Price: 65, Quantity: 1}},
		},
	}

	staff := service.FormatForStaff(orders)

	assert.Len(t, staff, 2)
	assert.Equal(t, "4", staff[0].TableNumber)
	assert.Equal(t, "Tajine", staff[0].Items[0].Name)
	assert.Equal(t, "80.0 MAD", staff[0].Items[0].Price)
	assert.Equal(t, "Thé (x3)", staff[0].Items[1].Name)
	assert.Equal(t, 117.5, staff[0].TotalPrice)
	assert.Equal(t, "2026-03-14T12:30:00Z", staff[0].Timestamp)

	assert.Equal(t, "—", staff[1].TableNumber, "orders without a table show the placeholder")
	assert.Equal(t, 65.0, staff[1].TotalPrice)
}

func TestOrderTotalRounds(t *testing.T) {
	order := &domain.Order{Items: []domain.OrderItem{
		{Price: 0.1, Quantity: 1},
		{Price: 0.2, Quantity: 1},
	}}
	assert.Equal(t, 0.3, service.OrderTotal(order))
}

package tests

import (
	"regexp"
	"testing"
	"time"

	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/domain"
	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/service"
	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/storage"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_InsertRestaurant(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO restaurants (public_id, name, email) VALUES ($1, $2, $3) RETURNING id, created_at")).
			WithArgs("rest_a1b2c3d4", "Le Bistro", "owner@bistro.ma").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, now))

		rest := &domain.Restaurant{PublicID: "rest_a1b2c3d4", Name: "Le Bistro", Email: "owner@bistro.ma"}
		err := repo.InsertRestaurant(rest)

		assert.NoError(t, err)
		assert.Equal(t, 1, rest.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate_name_mapped", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO restaurants")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "restaurants_name_key"})

		err := repo.InsertRestaurant(&domain.Restaurant{PublicID: "rest_a1b2c3d4", Name: "Le Bistro"})
		assert.ErrorIs(t, err, service.ErrDuplicateName)
	})

	t.Run("duplicate_public_id_mapped", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO restaurants")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "restaurants_public_id_key"})

		err := repo.InsertRestaurant(&domain.Restaurant{PublicID: "rest_a1b2c3d4", Name: "Le Bistro"})
		assert.ErrorIs(t, err, service.ErrDuplicatePublicID)
	})
}

func TestPostgresRepository_GetRestaurantByPublicID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT id, public_id, name").
			WithArgs("rest_a1b2c3d4").
			WillReturnRows(sqlmock.NewRows([]string{"id", "public_id", "name", "email", "created_at"}).
				AddRow(1, "rest_a1b2c3d4", "Le Bistro", "", time.Now()))

		rest, err := repo.GetRestaurantByPublicID("rest_a1b2c3d4")
		assert.NoError(t, err)
		assert.Equal(t, 1, rest.ID)
	})

	t.Run("not_found", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT id, public_id, name").
			WithArgs("rest_missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "public_id", "name", "email", "created_at"}))

		_, err := repo.GetRestaurantByPublicID("rest_missing")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestPostgresRepository_UpsertCategory(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO categories").
		WithArgs(1, "Plats").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	category, err := repo.UpsertCategory(1, "Plats")
	assert.NoError(t, err)
	assert.Equal(t, 3, category.ID)
	assert.Equal(t, "Plats", category.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_CreateOrder(t *testing.T) {
	cart := []domain.CartItem{
		{ID: 10, Quantity: 3, Notes: "no onions"},
		{ID: 11, Quantity: 1},
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(1, "4", domain.OrderStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))
		mock.ExpectQuery("SELECT id, name, price FROM dishes").
			WithArgs(10, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).AddRow(10, "Tajine", 80.0))
		mock.ExpectQuery("INSERT INTO order_items").
			WithArgs(7, 10, 1, "no onions").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery("SELECT id, name, price FROM dishes").
			WithArgs(11, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).AddRow(11, "Thé", 12.5))
		mock.ExpectQuery("INSERT INTO order_items").
			WithArgs(7, 11, 1, "").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectCommit()

		order := &domain.Order{RestaurantID: 1, TableNumber: "4", Status: domain.OrderStatusPending}
		err := repo.CreateOrder(order, cart)

		assert.NoError(t, err)
		assert.Equal(t, 7, order.ID)
		require.Len(t, order.Items, 2)
		assert.Equal(t, 1, order.Items[0].Quantity, "requested quantity is not honored; each line is stored once")
		assert.Equal(t, "Tajine", order.Items[0].DishName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown_dish_rolls_back", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(1, "4", domain.OrderStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, time.Now()))
		mock.ExpectQuery("SELECT id, name, price FROM dishes").
			WithArgs(10, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}))
		mock.ExpectRollback()

		order := &domain.Order{RestaurantID: 1, TableNumber: "4", Status: domain.OrderStatusPending}
		err := repo.CreateOrder(order, cart[:1])

		assert.ErrorIs(t, err, service.ErrDishNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresRepository_UpdateOrderStatus(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(domain.OrderStatusValidated, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(domain.OrderStatusValidated, 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.UpdateOrderStatus(7, domain.OrderStatusValidated)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = repo.UpdateOrderStatus(99, domain.OrderStatusValidated)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

func TestPostgresRepository_DailySales(t *testing.T) {
	repo, mock := newMockRepo(t)
	day := time.Date(2026, 3, 14, 23, 50, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(1, "2026-03-14").
		WillReturnRows(sqlmock.NewRows([]string{"total", "count"}).AddRow(245.5, 3))

	sales, err := repo.DailySales(1, day)
	assert.NoError(t, err)
	assert.Equal(t, 245.5, sales.TotalSales)
	assert.Equal(t, 3, sales.OrdersCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_ListOrders(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT id, restaurant_id").
		WithArgs(1, pq.Array([]string{domain.OrderStatusPending})).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_number", "status", "created_at"}).
			AddRow(7, 1, "4", domain.OrderStatusPending, now))
	mock.ExpectQuery("SELECT oi.id, oi.dish_id").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "dish_id", "name", "price", "quantity", "notes"}).
			AddRow(1, 10, "Tajine", 80.0, 1, ""))

	orders, err := repo.ListOrders(1, []string{domain.OrderStatusPending})
	assert.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Tajine", orders[0].Items[0].DishName)
	assert.Equal(t, 7, orders[0].Items[0].OrderID)
}

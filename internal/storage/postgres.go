package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/domain"
	"github.com/contactlearncert-blip/restaurant-menu-backend/internal/service"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const uniqueViolation = "23505"

// mapUniqueViolation translates postgres unique-index errors into the
// domain errors the services branch on.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		switch pqErr.Constraint {
		case "restaurants_name_key":
			return service.ErrDuplicateName
		case "restaurants_public_id_key":
			return service.ErrDuplicatePublicID
		}
	}
	return err
}

func (r *PostgresRepository) InsertRestaurant(rest *domain.Restaurant) error {
	err := r.DB.QueryRow(
		"INSERT INTO restaurants (public_id, name, email) VALUES ($1, $2, $3) RETURNING id, created_at",
		rest.PublicID, rest.Name, rest.Email,
	).Scan(&rest.ID, &rest.CreatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

func (r *PostgresRepository) GetRestaurantByPublicID(publicID string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, public_id, name, COALESCE(email, ''), created_at
		FROM restaurants
		WHERE public_id = $1`, publicID).
		Scan(&rest.ID, &rest.PublicID, &rest.Name, &rest.Email, &rest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: restaurant %s", service.ErrNotFound, publicID)
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) ListDishes(restaurantID int) ([]domain.DishWithCategory, error) {
	rows, err := r.DB.Query(`
		SELECT d.id, d.restaurant_id, d.category_id, d.name, COALESCE(d.description, ''),
		       d.price, COALESCE(d.image_path, ''), c.name
		FROM dishes d
		JOIN categories c ON d.category_id = c.id
		WHERE d.restaurant_id = $1
		ORDER BY d.id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.DishWithCategory
	for rows.Next() {
		var row domain.DishWithCategory
		if err := rows.Scan(&row.ID, &row.RestaurantID, &row.CategoryID, &row.Name,
			&row.Description, &row.Price, &row.ImagePath, &row.Category); err != nil {
			return nil, err
		}
		dishes = append(dishes, row)
	}
	return dishes, rows.Err()
}

// UpsertCategory is the atomic get-or-create on (restaurant_id, name). The
// DO UPDATE arm makes the insert return the existing row's id instead of
// racing a separate lookup.
func (r *PostgresRepository) UpsertCategory(restaurantID int, name string) (*domain.Category, error) {
	category := domain.Category{Name: name, RestaurantID: restaurantID}
	err := r.DB.QueryRow(`
		INSERT INTO categories (restaurant_id, name)
		VALUES ($1, $2)
		ON CONFLICT (restaurant_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, restaurantID, name).
		Scan(&category.ID)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *PostgresRepository) InsertDish(dish *domain.Dish) error {
	return r.DB.QueryRow(
		"INSERT INTO dishes (restaurant_id, category_id, name, description, price, image_path) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		dish.RestaurantID, dish.CategoryID, dish.Name, dish.Description, dish.Price, dish.ImagePath).
		Scan(&dish.ID)
}

func (r *PostgresRepository) DeleteDish(dishID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM dishes WHERE id = $1", dishID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CreateOrder inserts the order header and one item row per cart line in a
// single transaction. Every dish is resolved inside the restaurant's scope;
// an unknown dish rolls the whole order back. Quantity is always stored as
// 1 per line, whatever the cart requested.
func (r *PostgresRepository) CreateOrder(order *domain.Order, cart []domain.CartItem) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (restaurant_id, table_number, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, order.RestaurantID, order.TableNumber, order.Status).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	order.Items = order.Items[:0]
	for _, line := range cart {
		var item domain.OrderItem
		err := tx.QueryRow(
			"SELECT id, name, price FROM dishes WHERE id = $1 AND restaurant_id = $2",
			line.ID, order.RestaurantID).
			Scan(&item.DishID, &item.DishName, &item.Price)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %d", service.ErrDishNotFound, line.ID)
		}
		if err != nil {
			return err
		}

		item.OrderID = order.ID
		item.Quantity = 1
		item.Notes = line.Notes
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, dish_id, quantity, notes)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.OrderID, item.DishID, item.Quantity, item.Notes).Scan(&item.ID); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListOrders(restaurantID int, statuses []string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, COALESCE(table_number, ''), status, created_at
		FROM orders
		WHERE restaurant_id = $1 AND status = ANY($2)
		ORDER BY created_at DESC
	`, restaurantID, pq.Array(statuses))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &order.Status, &order.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listOrderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) GetOrder(orderID int) (*domain.Order, error) {
	var order domain.Order
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, COALESCE(table_number, ''), status, created_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &order.Status, &order.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: order %d", service.ErrNotFound, orderID)
	}
	if err != nil {
		return nil, err
	}

	items, err := r.listOrderItems(orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) listOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT oi.id, oi.dish_id, d.name, d.price, oi.quantity, COALESCE(oi.notes, '')
		FROM order_items oi
		JOIN dishes d ON oi.dish_id = d.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.DishID, &item.DishName, &item.Price, &item.Quantity, &item.Notes); err != nil {
			return nil, err
		}
		item.OrderID = orderID
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(orderID int, status string) (int64, error) {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) DeleteOrder(orderID int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM orders WHERE id = $1", orderID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// DailySales aggregates over validated and completed orders created on the
// given UTC day. Timestamps are stored UTC, so the day boundary is UTC.
func (r *PostgresRepository) DailySales(restaurantID int, day time.Time) (*domain.DailySales, error) {
	var sales domain.DailySales
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(d.price * oi.quantity), 0), COUNT(DISTINCT o.id)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN dishes d ON d.id = oi.dish_id
		WHERE o.restaurant_id = $1
		  AND o.created_at::date = $2::date
		  AND o.status IN ('validated', 'completed')
	`, restaurantID, day.UTC().Format("2006-01-02")).
		Scan(&sales.TotalSales, &sales.OrdersCount)
	if err != nil {
		return nil, err
	}
	return &sales, nil
}

// EnsureSchema creates the tables at startup. Child tables cascade from
// their owners; order_items keeps a plain reference to dishes, so deleting
// a dish that live orders still point at is rejected by the FK.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			public_id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL UNIQUE,
			email TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			UNIQUE (restaurant_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			category_id INT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			description TEXT,
			price DOUBLE PRECISION NOT NULL,
			image_path TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			table_number TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			dish_id INT NOT NULL REFERENCES dishes(id),
			quantity INT NOT NULL DEFAULT 1,
			notes TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"foodcourt/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS dishes (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
			name VARCHAR(100) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(150) NOT NULL UNIQUE,
			password VARCHAR(128) NOT NULL,
			balance NUMERIC(10,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			qr_code BYTEA,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			dish_id INTEGER NOT NULL REFERENCES dishes(id) ON DELETE CASCADE,
			quantity INTEGER NOT NULL CHECK (quantity > 0)
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", stmt, err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(
		"INSERT INTO restaurants (name) VALUES ($1) RETURNING id, created_at",
		rest.Name,
	).Scan(&rest.ID, &rest.CreatedAt)
}

// ListRestaurants returns restaurants with their dishes nested. When
// dishName is non-empty only restaurants serving a matching dish are
// returned, and only the matching dishes are nested. restaurantID <= 0
// means no id filter.
func (r *PostgresRepository) ListRestaurants(dishName string, restaurantID int) ([]domain.Restaurant, error) {
	query := `SELECT DISTINCT r.id, r.name, r.created_at FROM restaurants r`
	args := []interface{}{}

	if dishName != "" {
		query += ` JOIN dishes d ON d.restaurant_id = r.id AND d.name ILIKE '%' || $1 || '%'`
		args = append(args, dishName)
	}
	if restaurantID > 0 {
		query += fmt.Sprintf(` WHERE r.id = $%d`, len(args)+1)
		args = append(args, restaurantID)
	}
	query += ` ORDER BY r.id`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.CreatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range restaurants {
		dishes, err := r.listDishes(restaurants[i].ID, dishName)
		if err != nil {
			return nil, err
		}
		restaurants[i].Dishes = dishes
	}
	return restaurants, nil
}

func (r *PostgresRepository) listDishes(restaurantID int, nameFilter string) ([]domain.Dish, error) {
	query := `SELECT id, restaurant_id, name, price, created_at FROM dishes WHERE restaurant_id = $1`
	args := []interface{}{restaurantID}
	if nameFilter != "" {
		query += ` AND name ILIKE '%' || $2 || '%'`
		args = append(args, nameFilter)
	}
	query += ` ORDER BY id`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []domain.Dish
	for rows.Next() {
		var dish domain.Dish
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Price, &dish.CreatedAt); err != nil {
			return nil, err
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) CreateDish(dish *domain.Dish) error {
	return r.DB.QueryRow(
		"INSERT INTO dishes (restaurant_id, name, price) VALUES ($1, $2, $3) RETURNING id, created_at",
		dish.RestaurantID, dish.Name, dish.Price,
	).Scan(&dish.ID, &dish.CreatedAt)
}

func (r *PostgresRepository) GetDish(dishID int) (*domain.Dish, error) {
	var dish domain.Dish
	err := r.DB.QueryRow(
		"SELECT id, restaurant_id, name, price, created_at FROM dishes WHERE id = $1",
		dishID,
	).Scan(&dish.ID, &dish.RestaurantID, &dish.Name, &dish.Price, &dish.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrDishNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *PostgresRepository) DishExists(dishID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM dishes WHERE id = $1)", dishID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) CreateUser(user *domain.User) error {
	return r.DB.QueryRow(
		"INSERT INTO users (username, password, balance) VALUES ($1, $2, $3) RETURNING id, created_at",
		user.Username, user.PasswordHash, user.Balance,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *PostgresRepository) IsUserExists(username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(username) = LOWER($1))",
		username,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) GetUserByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := r.DB.QueryRow(
		"SELECT id, username, password, balance, created_at FROM users WHERE username = $1",
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Balance, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// PlaceOrder persists the order, its items and the balance debit as one
// transaction. Either everything becomes visible together or nothing
// does; an insufficient balance rolls the order back.
func (r *PostgresRepository) PlaceOrder(ctx context.Context, userID int, items []domain.OrderItem, total decimal.Decimal) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var orderID int
	if err := tx.QueryRow(
		"INSERT INTO orders (user_id) VALUES ($1) RETURNING id",
		userID,
	).Scan(&orderID); err != nil {
		return 0, err
	}

	for _, item := range items {
		if _, err := tx.Exec(
			"INSERT INTO order_items (order_id, dish_id, quantity) VALUES ($1, $2, $3)",
			orderID, item.DishID, item.Quantity,
		); err != nil {
			return 0, err
		}
	}

	// Atomic check-and-debit. Zero rows means the balance guard failed.
	res, err := tx.Exec(
		"UPDATE users SET balance = balance - $1 WHERE id = $2 AND balance >= $1",
		total, userID,
	)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, domain.ErrInsufficientFunds
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListRecentOrders returns the user's most recent orders, newest first.
// Item prices and order totals are derived from the current dish price.
func (r *PostgresRepository) ListRecentOrders(userID, limit int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, user_id, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.CreatedAt); err != nil {
			return nil, err
		}
		order.Time = order.CreatedAt.Unix()
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

		total := decimal.Zero
		for _, item := range items {
			total = total.Add(item.Price)
		}
		orders[i].TotalPrice = total
	}
	return orders, nil
}

func (r *PostgresRepository) listOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT oi.id, oi.dish_id, oi.quantity, (oi.quantity * d.price)::numeric(12,2)
		FROM order_items oi
		JOIN dishes d ON oi.dish_id = d.id
		WHERE oi.order_id = $1
		ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.DishID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) SaveQRCode(orderID int, qr []byte) error {
	_, err := r.DB.Exec("UPDATE orders SET qr_code = $1 WHERE id = $2", qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID int) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, err
	}
	return qrCode, nil
}

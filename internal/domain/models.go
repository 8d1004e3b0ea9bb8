package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Dishes    []Dish    `json:"dishes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Dish struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
}

type User struct {
	ID           int             `json:"id"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"-"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedAt    time.Time       `json:"created_at"`
}

type Order struct {
	ID         int             `json:"id"`
	UserID     int             `json:"-"`
	Time       int64           `json:"time"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []OrderItem     `json:"items"`
	CreatedAt  time.Time       `json:"-"`
}

// OrderItem's Price is derived at read time as quantity x current dish
// price; it is never stored on the row.
type OrderItem struct {
	ID       int             `json:"id"`
	DishID   int             `json:"dish"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CartLine is one priced position of a user's cart as returned to the
// client. The cart itself lives in Redis as a dishID -> quantity hash.
type CartLine struct {
	DishID   int             `json:"dish_id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type OrderEvent struct {
	Type      string          `json:"type"`
	OrderID   int             `json:"order_id"`
	UserID    int             `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}

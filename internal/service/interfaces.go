package service

import (
	"context"

	"github.com/shopspring/decimal"

	"foodcourt/internal/domain"
)

type CatalogRepository interface {
	CreateRestaurant(rest *domain.Restaurant) error
	ListRestaurants(dishName string, restaurantID int) ([]domain.Restaurant, error)
	CreateDish(dish *domain.Dish) error
	GetDish(dishID int) (*domain.Dish, error)
	DishExists(dishID int) (bool, error)
}

type OrderRepository interface {
	PlaceOrder(ctx context.Context, userID int, items []domain.OrderItem, total decimal.Decimal) (int, error)
	ListRecentOrders(userID, limit int) ([]domain.Order, error)
	SaveQRCode(orderID int, qr []byte) error
	GetQRCode(orderID int) ([]byte, error)
}

type UserRepository interface {
	CreateUser(user *domain.User) error
	IsUserExists(username string) (bool, error)
	GetUserByUsername(username string) (*domain.User, error)
}

type CartStore interface {
	Increment(ctx context.Context, userID, dishID, delta int) error
	DecrementOrRemove(ctx context.Context, userID, dishID, amount int) error
	ReadAll(ctx context.Context, userID int) (map[int]int, error)
	Clear(ctx context.Context, userID int) error
	AcquireCheckoutLock(ctx context.Context, userID int) (bool, error)
	ReleaseCheckoutLock(ctx context.Context, userID int) error
}

type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error
}

type CatalogServiceInterface interface {
	CreateRestaurant(rest *domain.Restaurant) error
	CreateDish(dish *domain.Dish) error
	ListRestaurants(dishName, restaurantID string) ([]domain.Restaurant, error)
}

type CartServiceInterface interface {
	Add(ctx context.Context, userID, dishID, quantity int) error
	Remove(ctx context.Context, userID, dishID, quantity int) error
	View(ctx context.Context, userID int) ([]domain.CartLine, decimal.Decimal, error)
}

type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, userID int) error
}

type OrderServiceInterface interface {
	ListRecent(userID int) (*OrderSummary, error)
	GetQRCode(orderID int) ([]byte, error)
}

type AuthServiceInterface interface {
	Register(username, password string) (*domain.User, error)
	Login(username, password string) (string, error)
}

// Package mocks provides testify mocks for the repository and service
// interfaces used across the test suites.
package mocks

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"foodcourt/internal/domain"
)

type CatalogRepository struct {
	mock.Mock
}

func NewCatalogRepository(t *testing.T) *CatalogRepository {
	m := &CatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *CatalogRepository) ListRestaurants(dishName string, restaurantID int) ([]domain.Restaurant, error) {
	args := m.Called(dishName, restaurantID)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

func (m *CatalogRepository) CreateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *CatalogRepository) GetDish(dishID int) (*domain.Dish, error) {
	args := m.Called(dishID)
	var dish *domain.Dish
	if args.Get(0) != nil {
		dish = args.Get(0).(*domain.Dish)
	}
	return dish, args.Error(1)
}

func (m *CatalogRepository) DishExists(dishID int) (bool, error) {
	args := m.Called(dishID)
	return args.Bool(0), args.Error(1)
}

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t *testing.T) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderRepository) PlaceOrder(ctx context.Context, userID int, items []domain.OrderItem, total decimal.Decimal) (int, error) {
	args := m.Called(ctx, userID, items, total)
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) ListRecentOrders(userID, limit int) ([]domain.Order, error) {
	args := m.Called(userID, limit)
	var orders []domain.Order
	if args.Get(0) != nil {
		orders = args.Get(0).([]domain.Order)
	}
	return orders, args.Error(1)
}

func (m *OrderRepository) SaveQRCode(orderID int, qr []byte) error {
	return m.Called(orderID, qr).Error(0)
}

func (m *OrderRepository) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t *testing.T) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *UserRepository) CreateUser(user *domain.User) error {
	return m.Called(user).Error(0)
}

func (m *UserRepository) IsUserExists(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) GetUserByUsername(username string) (*domain.User, error) {
	args := m.Called(username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

type CartStore struct {
	mock.Mock
}

func NewCartStore(t *testing.T) *CartStore {
	m := &CartStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartStore) Increment(ctx context.Context, userID, dishID, delta int) error {
	return m.Called(ctx, userID, dishID, delta).Error(0)
}

func (m *CartStore) DecrementOrRemove(ctx context.Context, userID, dishID, amount int) error {
	return m.Called(ctx, userID, dishID, amount).Error(0)
}

func (m *CartStore) ReadAll(ctx context.Context, userID int) (map[int]int, error) {
	args := m.Called(ctx, userID)
	var cart map[int]int
	if args.Get(0) != nil {
		cart = args.Get(0).(map[int]int)
	}
	return cart, args.Error(1)
}

func (m *CartStore) Clear(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *CartStore) AcquireCheckoutLock(ctx context.Context, userID int) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *CartStore) ReleaseCheckoutLock(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

type OrderPublisher struct {
	mock.Mock
}

func NewOrderPublisher(t *testing.T) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderPublisher) PublishOrderPlaced(ctx context.Context, event domain.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func NewQRGenerator(t *testing.T) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *QRGenerator) Generate(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

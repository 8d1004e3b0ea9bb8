package mocks

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"foodcourt/internal/domain"
	"foodcourt/internal/service"
)

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t *testing.T) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartServiceInterface) Add(ctx context.Context, userID, dishID, quantity int) error {
	return m.Called(ctx, userID, dishID, quantity).Error(0)
}

func (m *CartServiceInterface) Remove(ctx context.Context, userID, dishID, quantity int) error {
	return m.Called(ctx, userID, dishID, quantity).Error(0)
}

func (m *CartServiceInterface) View(ctx context.Context, userID int) ([]domain.CartLine, decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	var lines []domain.CartLine
	if args.Get(0) != nil {
		lines = args.Get(0).([]domain.CartLine)
	}
	return lines, args.Get(1).(decimal.Decimal), args.Error(2)
}

type CheckoutServiceInterface struct {
	mock.Mock
}

func NewCheckoutServiceInterface(t *testing.T) *CheckoutServiceInterface {
	m := &CheckoutServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CheckoutServiceInterface) Checkout(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

type CatalogServiceInterface struct {
	mock.Mock
}

func NewCatalogServiceInterface(t *testing.T) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CatalogServiceInterface) CreateRestaurant(rest *domain.Restaurant) error {
	return m.Called(rest).Error(0)
}

func (m *CatalogServiceInterface) CreateDish(dish *domain.Dish) error {
	return m.Called(dish).Error(0)
}

func (m *CatalogServiceInterface) ListRestaurants(dishName, restaurantID string) ([]domain.Restaurant, error) {
	args := m.Called(dishName, restaurantID)
	var restaurants []domain.Restaurant
	if args.Get(0) != nil {
		restaurants = args.Get(0).([]domain.Restaurant)
	}
	return restaurants, args.Error(1)
}

type OrderServiceInterface struct {
	mock.Mock
}

func NewOrderServiceInterface(t *testing.T) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderServiceInterface) ListRecent(userID int) (*service.OrderSummary, error) {
	args := m.Called(userID)
	var summary *service.OrderSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*service.OrderSummary)
	}
	return summary, args.Error(1)
}

func (m *OrderServiceInterface) GetQRCode(orderID int) ([]byte, error) {
	args := m.Called(orderID)
	var qr []byte
	if args.Get(0) != nil {
		qr = args.Get(0).([]byte)
	}
	return qr, args.Error(1)
}

type AuthServiceInterface struct {
	mock.Mock
}

func NewAuthServiceInterface(t *testing.T) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *AuthServiceInterface) Register(username, password string) (*domain.User, error) {
	args := m.Called(username, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *AuthServiceInterface) Login(username, password string) (string, error) {
	args := m.Called(username, password)
	return args.String(0), args.Error(1)
}

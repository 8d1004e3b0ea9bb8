package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"foodcourt/internal/domain"
)

func setupRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPlaceOrder_CommitsOrderItemsAndDebitTogether(t *testing.T) {
	repo, mock := setupRepo(t)

	items := []domain.OrderItem{
		{DishID: 1, Quantity: 2},
		{DishID: 2, Quantity: 1},
	}
	total := decimal.RequireFromString("40.00")

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(55))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(55, 1, 2).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(55, 2, 1).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("UPDATE users SET balance").
		WithArgs(sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	orderID, err := repo.PlaceOrder(context.Background(), 7, items, total)
	assert.NoError(t, err)
	assert.Equal(t, 55, orderID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_InsufficientBalanceRollsBack(t *testing.T) {
	repo, mock := setupRepo(t)

	items := []domain.OrderItem{{DishID: 1, Quantity: 10}}
	total := decimal.RequireFromString("100.00")

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(56))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(56, 1, 10).
		WillReturnResult(sqlmock.NewResult(1, 1))
	// balance guard fails: zero rows updated
	mock.ExpectExec("UPDATE users SET balance").
		WithArgs(sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.PlaceOrder(context.Background(), 7, items, total)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceOrder_ItemInsertFailureRollsBack(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(57))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(57, 1, 1).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := repo.PlaceOrder(context.Background(), 7, []domain.OrderItem{{DishID: 1, Quantity: 1}}, decimal.RequireFromString("5.00"))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDish_NotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT id, restaurant_id, name, price, created_at FROM dishes").
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "price", "created_at"}))

	_, err := repo.GetDish(99)
	assert.ErrorIs(t, err, domain.ErrDishNotFound)
}

func TestGetDish_ScansDecimalPrice(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT id, restaurant_id, name, price, created_at FROM dishes").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "price", "created_at"}).
			AddRow(1, 10, "Pizza", "10.00", time.Now()))

	dish, err := repo.GetDish(1)
	assert.NoError(t, err)
	assert.True(t, dish.Price.Equal(decimal.RequireFromString("10.00")))
}

func TestListRecentOrders_DerivesTotals(t *testing.T) {
	repo, mock := setupRepo(t)

	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT id, user_id, created_at").
		WithArgs(7, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "created_at"}).
			AddRow(55, 7, createdAt))
	mock.ExpectQuery("SELECT oi.id, oi.dish_id, oi.quantity").
		WithArgs(55).
		WillReturnRows(sqlmock.NewRows([]string{"id", "dish_id", "quantity", "price"}).
			AddRow(1, 1, 2, "20.00").
			AddRow(2, 2, 1, "20.00"))

	orders, err := repo.ListRecentOrders(7, 10)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, createdAt.Unix(), orders[0].Time)
	assert.Len(t, orders[0].Items, 2)
	assert.True(t, orders[0].TotalPrice.Equal(decimal.RequireFromString("40.00")))
}

func TestEnsureSchemaExecutesStatements(t *testing.T) {
	repo, mock := setupRepo(t)

	for _, table := range []string{"restaurants", "dishes", "users", "orders", "order_items"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	assert.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

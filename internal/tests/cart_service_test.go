package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"foodcourt/internal/domain"
	"foodcourt/internal/mocks"
	"foodcourt/internal/service"
)

func TestCartService_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		dishID       int
		quantity     int
		prepareMocks func(catalog *mocks.CatalogRepository, cart *mocks.CartStore)
		expectedErr  error
	}{
		{
			name:     "success",
			dishID:   1,
			quantity: 2,
			prepareMocks: func(catalog *mocks.CatalogRepository, cart *mocks.CartStore) {
				catalog.On("DishExists", 1).Return(true, nil).Once()
				cart.On("Increment", ctx, 7, 1, 2).Return(nil).Once()
			},
		},
		{
			name:     "unknown dish rejected before any mutation",
			dishID:   99,
			quantity: 1,
			prepareMocks: func(catalog *mocks.CatalogRepository, cart *mocks.CartStore) {
				catalog.On("DishExists", 99).Return(false, nil).Once()
			},
			expectedErr: domain.ErrDishNotFound,
		},
		{
			name:         "non-positive quantity rejected",
			dishID:       1,
			quantity:     0,
			prepareMocks: func(catalog *mocks.CatalogRepository, cart *mocks.CartStore) {},
			expectedErr:  service.ErrInvalidQuantity,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			catalog := mocks.NewCatalogRepository(t)
			cart := mocks.NewCartStore(t)
			testCase.prepareMocks(catalog, cart)

			svc := service.NewCartService(catalog, cart)
			err := svc.Add(ctx, 7, testCase.dishID, testCase.quantity)
			assert.ErrorIs(t, err, testCase.expectedErr)
		})
	}
}

func TestCartService_Remove(t *testing.T) {
	ctx := context.Background()
	catalog := mocks.NewCatalogRepository(t)
	cart := mocks.NewCartStore(t)
	svc := service.NewCartService(catalog, cart)

	catalog.On("DishExists", 1).Return(true, nil).Once()
	cart.On("DecrementOrRemove", ctx, 7, 1, 3).Return(nil).Once()

	assert.NoError(t, svc.Remove(ctx, 7, 1, 3))
}

func TestCartService_View(t *testing.T) {
	ctx := context.Background()
	catalog := mocks.NewCatalogRepository(t)
	cart := mocks.NewCartStore(t)
	svc := service.NewCartService(catalog, cart)

	cart.On("ReadAll", ctx, 7).Return(map[int]int{1: 2}, nil).Once()
	catalog.On("GetDish", 1).Return(&domain.Dish{ID: 1, Name: "Pizza", Price: price("10.00")}, nil).Once()

	lines, total, err := svc.View(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.Equal(t, "Pizza", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, lines[0].Price.Equal(price("20.00")))
	assert.True(t, total.Equal(price("20.00")))
}

func TestCartService_ViewEmpty(t *testing.T) {
	ctx := context.Background()
	catalog := mocks.NewCatalogRepository(t)
	cart := mocks.NewCartStore(t)
	svc := service.NewCartService(catalog, cart)

	cart.On("ReadAll", ctx, 7).Return(map[int]int{}, nil).Once()

	lines, total, err := svc.View(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, lines)
	assert.True(t, total.Equal(price("0")))
}

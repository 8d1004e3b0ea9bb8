package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"foodcourt/internal/domain"
)

type CartService struct {
	catalog CatalogRepository
	cart    CartStore
}

func NewCartService(catalog CatalogRepository, cart CartStore) *CartService {
	return &CartService{catalog: catalog, cart: cart}
}

// Add validates the dish reference before any store mutation, then
// bumps the stored quantity, creating the entry if absent.
func (s *CartService) Add(ctx context.Context, userID, dishID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	exists, err := s.catalog.DishExists(dishID)
	if err != nil {
		return fmt.Errorf("failed to validate dish: %w", err)
	}
	if !exists {
		return domain.ErrDishNotFound
	}
	return s.cart.Increment(ctx, userID, dishID, quantity)
}

func (s *CartService) Remove(ctx context.Context, userID, dishID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	exists, err := s.catalog.DishExists(dishID)
	if err != nil {
		return fmt.Errorf("failed to validate dish: %w", err)
	}
	if !exists {
		return domain.ErrDishNotFound
	}
	return s.cart.DecrementOrRemove(ctx, userID, dishID, quantity)
}

// View resolves and prices every cart line against the current catalog.
func (s *CartService) View(ctx context.Context, userID int) ([]domain.CartLine, decimal.Decimal, error) {
	cart, err := s.cart.ReadAll(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	lines := make([]domain.CartLine, 0, len(cart))
	total := decimal.Zero
	for dishID, quantity := range cart {
		dish, err := s.catalog.GetDish(dishID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		lineTotal, err := LineTotal(dish.Price, quantity)
		if err != nil {
			return nil, decimal.Zero, err
		}
		total = total.Add(lineTotal)
		lines = append(lines, domain.CartLine{
			DishID:   dish.ID,
			Name:     dish.Name,
			Quantity: quantity,
			Price:    lineTotal,
		})
	}
	return lines, total, nil
}

var _ CartServiceInterface = (*CartService)(nil)

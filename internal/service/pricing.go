package service

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// LineTotal is price x quantity in exact decimal arithmetic. Money never
// goes through float64.
func LineTotal(price decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, ErrInvalidQuantity
	}
	return price.Mul(decimal.NewFromInt(int64(quantity))), nil
}

func OrderTotal(lines []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line)
	}
	return total
}

package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		quantity int
		want     string
		wantErr  error
	}{
		{name: "single unit", price: "10.00", quantity: 1, want: "10.00"},
		{name: "multiple units", price: "12.50", quantity: 3, want: "37.50"},
		{name: "cent precision survives", price: "0.10", quantity: 3, want: "0.30"},
		{name: "zero quantity rejected", price: "10.00", quantity: 0, wantErr: ErrInvalidQuantity},
		{name: "negative quantity rejected", price: "10.00", quantity: -2, wantErr: ErrInvalidQuantity},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			price := decimal.RequireFromString(testCase.price)
			got, err := LineTotal(price, testCase.quantity)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(testCase.want)),
				"got %s, want %s", got, testCase.want)
		})
	}
}

func TestOrderTotal(t *testing.T) {
	lines := []decimal.Decimal{
		decimal.RequireFromString("20.00"),
		decimal.RequireFromString("20.00"),
	}
	assert.True(t, OrderTotal(lines).Equal(decimal.RequireFromString("40.00")))

	assert.True(t, OrderTotal(nil).Equal(decimal.Zero))
}

// Summing many cent-sized lines must not drift the way binary floats do.
func TestOrderTotalNoFloatDrift(t *testing.T) {
	cent := decimal.RequireFromString("0.01")
	lines := make([]decimal.Decimal, 1000)
	for i := range lines {
		lines[i] = cent
	}
	assert.Equal(t, "10.00", OrderTotal(lines).StringFixed(2))
}

package domain

import "errors"

var (
	ErrEmptyCart          = errors.New("no items in cart for order creation")
	ErrInsufficientFunds  = errors.New("debit amount exceeds account balance")
	ErrDishNotFound       = errors.New("dish not found")
	ErrCheckoutInProgress = errors.New("another checkout is already in progress")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

package services

import (
	"errors"
	"fmt"
)

// Every failure a controller needs to branch on is a distinct value here;
// no handler should ever match on error strings.
var (
	ErrMealNotFound       = errors.New("meal not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InsufficientInventoryError names the offending meal so the caller can
// tell the customer what exactly ran out.
type InsufficientInventoryError struct {
	Meal      string
	Available int
	Requested int
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("not enough %q in stock: %d available, %d requested", e.Meal, e.Available, e.Requested)
}

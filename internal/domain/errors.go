package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy. Handlers and callers branch with errors.Is on the four
// base errors; the named variants read better in logs and responses.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("conflict")
	ErrStorage    = errors.New("storage failure")

	ErrCustomerNotFound   = fmt.Errorf("customer %w", ErrNotFound)
	ErrRestaurantNotFound = fmt.Errorf("restaurant %w", ErrNotFound)
	ErrFoodNotFound       = fmt.Errorf("food %w", ErrNotFound)
	ErrOrderNotFound      = fmt.Errorf("order %w", ErrNotFound)
	ErrReviewNotFound     = fmt.Errorf("review %w", ErrNotFound)

	ErrEmptyOrder    = fmt.Errorf("%w: order has no line items", ErrValidation)
	ErrFoodSoldOut   = fmt.Errorf("%w: food is sold out", ErrValidation)
	ErrNegativePrice = fmt.Errorf("%w: price must not be negative", ErrValidation)
	ErrEmptyFoodName = fmt.Errorf("%w: food name must not be empty", ErrValidation)

	ErrDuplicateSignInID = fmt.Errorf("%w: sign-in id already taken", ErrConflict)
	ErrDuplicateReview   = fmt.Errorf("%w: order already has a review", ErrConflict)
)

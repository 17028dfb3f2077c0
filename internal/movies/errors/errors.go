package errors

import "errors"

var (
	ErrNotFound = errors.New("movie not found")

	ErrInvalidID = errors.New("invalid movie ID format")

	// ErrNoStock is returned by the conditional stock decrement when the
	// movie's number_in_stock is already zero at write time.
	ErrNoStock = errors.New("movie not in stock")
)

package errors

import "errors"

var (
	ErrNotFound = errors.New("genre not found")

	ErrInvalidID = errors.New("invalid genre ID format")
)

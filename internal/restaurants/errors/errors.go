package errors

import "errors"

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrInvalidID          = errors.New("invalid restaurant id")
)

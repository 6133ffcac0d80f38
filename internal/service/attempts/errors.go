package attempts

import "errors"

var (
	// ErrAttemptNotFound is returned when the attempt does not exist
	ErrAttemptNotFound = errors.New("attempt not found")

	// ErrInvalidInput is returned on invalid request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)

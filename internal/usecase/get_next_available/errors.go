package get_next_available

import "errors"

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDoctorNotFound is returned when the doctor is unknown upstream
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)

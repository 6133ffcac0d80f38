package submit_booking

import (
	"errors"
	"fmt"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/booking/form"
)

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrValidationFailed is returned when the booking form fails
	// validation, ours or the upstream's
	ErrValidationFailed = errors.New("form validation failed")

	// ErrDoctorNotFound is returned when the doctor is unknown upstream
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrSlotNotAvailable is returned when the requested slot does not
	// exist in fresh availability or is no longer bookable
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrSubmissionInFlight is returned when an identical attempt is
	// already journaled and not yet finished
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrChallengePending is returned when the bot challenge is not
	// resolved; the caller must surface the interactive widget
	ErrChallengePending = errors.New("bot challenge pending")

	// ErrSlotTaken is returned when the upstream reports the slot was
	// booked by someone else in the meantime
	ErrSlotTaken = errors.New("slot already taken")

	// ErrUpstreamFailed is returned when the clinic API could not be
	// reached or answered with a server error
	ErrUpstreamFailed = errors.New("clinic api unavailable")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)

// ValidationError carries the per-field messages of a failed form
// validation. It unwraps to ErrValidationFailed for errors.Is dispatch.
type ValidationError struct {
	Fields form.ValidationErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %d field(s) invalid", ErrValidationFailed, len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

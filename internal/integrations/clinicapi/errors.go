package clinicapi

import "errors"

var (
	// ErrUpstreamUnavailable is returned on transport failures and 5xx
	// responses. The caller renders an empty/error state; no automatic
	// retry happens at this layer.
	ErrUpstreamUnavailable = errors.New("clinicapi: upstream unavailable")

	// ErrDoctorNotFound is returned when the upstream does not know the doctor
	ErrDoctorNotFound = errors.New("clinicapi: doctor not found")

	// ErrSlotTaken is returned when the booking endpoint reports the slot
	// was taken concurrently
	ErrSlotTaken = errors.New("clinicapi: slot already taken")

	// ErrTokenRejected is returned when the booking endpoint rejects the
	// challenge token as invalid or low-trust
	ErrTokenRejected = errors.New("clinicapi: challenge token rejected")

	// ErrUpstreamValidation is returned when the upstream rejects the
	// booking payload
	ErrUpstreamValidation = errors.New("clinicapi: upstream validation failed")

	// ErrInvalidResponse is returned when the upstream response cannot be
	// decoded
	ErrInvalidResponse = errors.New("clinicapi: invalid response")

	// ErrInternal is returned on client-side failures building the request
	ErrInternal = errors.New("clinicapi: internal error")
)

package recaptcha

import "errors"

var (
	// ErrTokenInvalid is returned when the verify endpoint rejects the token
	ErrTokenInvalid = errors.New("recaptcha: token invalid or expired")

	// ErrLowScore is returned when the invisible-tier score is below the
	// configured threshold
	ErrLowScore = errors.New("recaptcha: score below threshold")

	// ErrActionMismatch is returned when the token was issued for a
	// different action tag
	ErrActionMismatch = errors.New("recaptcha: action mismatch")

	// ErrVerifyUnavailable is returned on transport failures and 5xx from
	// the verification service
	ErrVerifyUnavailable = errors.New("recaptcha: verification service unavailable")

	// ErrInternal is returned on client-side failures building the request
	ErrInternal = errors.New("recaptcha: internal error")
)

package domain

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

// AttemptStatus represents the lifecycle state of a journaled booking
// submission.
type AttemptStatus string

const (
	AttemptReceived         AttemptStatus = "received"
	AttemptChallengePending AttemptStatus = "challenge_pending"
	AttemptRejected         AttemptStatus = "rejected"
	AttemptConfirmed        AttemptStatus = "confirmed"
	AttemptUpstreamFailed   AttemptStatus = "upstream_failed"
)

// Valid reports whether the value is a known attempt status.
func (s AttemptStatus) Valid() bool {
	switch s {
	case AttemptReceived, AttemptChallengePending, AttemptRejected,
		AttemptConfirmed, AttemptUpstreamFailed:
		return true
	}
	return false
}

// BookingAttempt is the journal record of one submission the service
// performed on the patient's behalf. Kept for reception-side
// reconciliation; it is not the system of record for appointments.
type BookingAttempt struct {
	ID               string // UUID assigned by this service
	DoctorID         string
	Date             time.Time
	SlotStart        types.TimeString
	ConsultationType ConsultationType
	PatientName      string
	PhoneMasked      string // last two digits only
	Status           AttemptStatus

	// Reference assigned by the upstream clinic API on success.
	ConfirmationRef *string
	FailureReason   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether the attempt reached a final state.
func (a *BookingAttempt) IsTerminal() bool {
	return a.Status == AttemptConfirmed ||
		a.Status == AttemptRejected ||
		a.Status == AttemptUpstreamFailed
}

// IsConfirmed reports whether the upstream accepted the booking.
func (a *BookingAttempt) IsConfirmed() bool {
	return a.Status == AttemptConfirmed
}

package submit_booking

import (
	"context"
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/integrations/clinicapi"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

// ClinicClient is the subset of the clinic API client the submitter
// needs: a fresh availability read and the single booking call.
type ClinicClient interface {
	GetAvailableSlots(ctx context.Context, doctorID string, date time.Time) ([]domain.Slot, error)
	BookAppointment(ctx context.Context, payload clinicapi.BookingPayload) (*clinicapi.BookingConfirmation, error)
}

// ChallengeVerifier checks browser-issued challenge proofs server-side.
type ChallengeVerifier interface {
	VerifyInvisible(ctx context.Context, token, expectedAction string) error
	VerifyVisible(ctx context.Context, token string) error
}

// AttemptJournal persists the booking attempt journal.
type AttemptJournal interface {
	CreateAttempt(ctx context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error)
	GetPendingBySlot(ctx context.Context, doctorID string, date time.Time, slotStart types.TimeString) (*domain.BookingAttempt, error)
	SetStatus(ctx context.Context, id string, status domain.AttemptStatus) error
	SetConfirmed(ctx context.Context, id string, reference string) error
	SetFailed(ctx context.Context, id string, status domain.AttemptStatus, reason string) error
}

// TransactionManager runs the duplicate guard and journal insert in one
// serializable transaction.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics counts submission outcomes.
type Metrics interface {
	CountBookingOutcome(outcome string)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package attempts

import (
	"context"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

// AttemptRepository is the journal read surface this service needs.
type AttemptRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingAttempt, error)
	ListRecentByDoctor(ctx context.Context, doctorID string, limit uint64) ([]*domain.BookingAttempt, error)
}

// Logger is the logging surface this service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

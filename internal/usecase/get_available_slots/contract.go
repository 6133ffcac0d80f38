package get_available_slots

import (
	"context"
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

// ClinicClient is the availability surface of the clinic API client.
type ClinicClient interface {
	GetAvailableSlots(ctx context.Context, doctorID string, date time.Time) ([]domain.Slot, error)
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

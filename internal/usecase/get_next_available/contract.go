package get_next_available

import (
	"context"
	"time"

	clinicClient "github.com/HarsHvardhnn/centrum-booking-service/internal/integrations/clinicapi"
)

// ClinicClient is the next-available surface of the clinic API client.
type ClinicClient interface {
	GetNextAvailable(ctx context.Context, doctorID string) (*clinicClient.NextAvailable, error)
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

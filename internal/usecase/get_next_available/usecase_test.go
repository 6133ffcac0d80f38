package get_next_available

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	clinicClient "github.com/HarsHvardhnn/centrum-booking-service/internal/integrations/clinicapi"
)

type mockClinicClient struct {
	next *clinicClient.NextAvailable
	err  error
}

func (m *mockClinicClient) GetNextAvailable(context.Context, string) (*clinicClient.NextAvailable, error) {
	return m.next, m.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(client ClinicClient, now time.Time) *UseCase {
	uc := NewUseCase(client, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecute_NextDayFound(t *testing.T) {
	next := &clinicClient.NextAvailable{
		Date: time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC),
		Slots: []domain.Slot{
			{StartTime: "09:00", EndTime: "09:30", Available: true},
		},
	}
	uc := newUseCase(&mockClinicClient{next: next}, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1"})

	require.NoError(t, err)
	assert.True(t, resp.WithinWindow)
	assert.False(t, resp.Unavailable)
	assert.Equal(t, next.Date, resp.Date)
	assert.Len(t, resp.Slots, 1)
}

func TestExecute_NoAvailabilityFallsBackToToday(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	uc := newUseCase(&mockClinicClient{next: nil}, now)

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1"})

	require.NoError(t, err)
	assert.False(t, resp.WithinWindow)
	assert.False(t, resp.Unavailable)
	assert.Equal(t, now, resp.Date)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UpstreamUnavailableIsExplicitNotFatal(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	uc := newUseCase(&mockClinicClient{err: clinicClient.ErrUpstreamUnavailable}, now)

	resp, err := uc.Execute(context.Background(), &Request{DoctorID: "doc-1"})

	require.NoError(t, err)
	assert.True(t, resp.Unavailable)
	assert.False(t, resp.WithinWindow)
	assert.Equal(t, now, resp.Date)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := newUseCase(&mockClinicClient{err: clinicClient.ErrDoctorNotFound}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{DoctorID: "ghost"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_ValidatesRequest(t *testing.T) {
	uc := newUseCase(&mockClinicClient{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package get_available_slots

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
	slots []domain.Slot
	err   error
}

func (m *mockClinicClient) GetAvailableSlots(context.Context, string, time.Time) ([]domain.Slot, error) {
	return m.slots, m.err
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

var daySlots = []domain.Slot{
	{StartTime: "09:00", EndTime: "09:30", Available: true},
	{StartTime: "09:30", EndTime: "10:00", Available: false},
	{StartTime: "15:00", EndTime: "15:30", Available: true},
}

func TestExecute_FutureDateKeepsAllSlots(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	uc := newUseCase(&mockClinicClient{slots: daySlots}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID: "doc-1",
		Date:     time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.False(t, resp.Unavailable)
	assert.Len(t, resp.Slots, 3)
}

func TestExecute_TodayHidesStartedSlots(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	uc := newUseCase(&mockClinicClient{slots: daySlots}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID: "doc-1",
		Date:     now,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "15:00", resp.Slots[0].StartTime.String())
}

func TestExecute_PastDateYieldsNoSlots(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	uc := newUseCase(&mockClinicClient{slots: daySlots}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID: "doc-1",
		Date:     time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UpstreamUnavailableIsExplicitNotFatal(t *testing.T) {
	uc := newUseCase(&mockClinicClient{err: clinicClient.ErrUpstreamUnavailable}, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{
		DoctorID: "doc-1",
		Date:     time.Now().AddDate(0, 0, 1),
	})

	require.NoError(t, err)
	assert.True(t, resp.Unavailable)
	assert.Empty(t, resp.Slots)
}

func TestExecute_DoctorNotFound(t *testing.T) {
	uc := newUseCase(&mockClinicClient{err: clinicClient.ErrDoctorNotFound}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{
		DoctorID: "ghost",
		Date:     time.Now(),
	})

	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestExecute_ValidatesRequest(t *testing.T) {
	uc := newUseCase(&mockClinicClient{}, time.Now())

	_, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{DoctorID: "doc-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

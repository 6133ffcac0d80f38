package get_week

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarsHvardhnn/centrum-booking-service/pkg/ptr"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

func newUseCase(now time.Time) *UseCase {
	uc := NewUseCase(nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecute_DefaultsAnchorToToday(t *testing.T) {
	uc := newUseCase(time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", resp.Days[0])
	assert.Equal(t, "2024-06-16", resp.Days[6])
}

func TestExecute_PagesForwardInWholeWeeks(t *testing.T) {
	uc := newUseCase(time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{WeekOffset: 2})

	require.NoError(t, err)
	assert.Equal(t, "2024-06-24", resp.Days[0])
	assert.Equal(t, 2, resp.WeekOffset)
}

func TestExecute_ExplicitAnchor(t *testing.T) {
	uc := newUseCase(time.Now())
	anchor := time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{Anchor: ptr.Ptr(anchor), WeekOffset: 1})

	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", resp.Days[0])
}

func TestExecute_RejectsNegativeOffset(t *testing.T) {
	uc := newUseCase(time.Now())

	_, err := uc.Execute(context.Background(), &Request{WeekOffset: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

var (
	drKowalski = domain.Doctor{ID: "doc-1", Name: "dr Kowalski"}
	drNowak    = domain.Doctor{ID: "doc-2", Name: "dr Nowak"}

	june10 = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	june11 = time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	morningSlots = []domain.Slot{
		{StartTime: "09:00", EndTime: "09:30", Available: true},
		{StartTime: "09:30", EndTime: "10:00", Available: false},
	}
)

func selectionWithSlot(t *testing.T) *Selection {
	t.Helper()
	s := New()
	s.SetDoctor(drKowalski)
	s.SetDate(june10)
	require.NoError(t, s.ApplySlots(drKowalski.ID, june10, morningSlots))
	require.NoError(t, s.SetSlot("09:00"))
	require.True(t, s.Ready())
	return s
}

func TestSetSlot_RequiresLoadedAvailability(t *testing.T) {
	s := New()
	s.SetDoctor(drKowalski)
	s.SetDate(june10)

	err := s.SetSlot("09:00")

	assert.ErrorIs(t, err, ErrSlotsNotLoaded)
	assert.Nil(t, s.Slot())
}

func TestSetSlot_UnavailableSlotRejected(t *testing.T) {
	s := New()
	s.SetDoctor(drKowalski)
	s.SetDate(june10)
	require.NoError(t, s.ApplySlots(drKowalski.ID, june10, morningSlots))

	err := s.SetSlot("09:30")

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Nil(t, s.Slot(), "state must be unchanged after rejection")

	// The available one still works afterwards.
	require.NoError(t, s.SetSlot("09:00"))
	assert.True(t, s.Ready())
}

func TestSetSlot_UnknownStartTimeRejected(t *testing.T) {
	s := New()
	s.SetDoctor(drKowalski)
	s.SetDate(june10)
	require.NoError(t, s.ApplySlots(drKowalski.ID, june10, morningSlots))

	assert.ErrorIs(t, s.SetSlot("11:00"), ErrSlotNotFound)
}

func TestSetDoctor_ClearsSelectedSlot(t *testing.T) {
	s := selectionWithSlot(t)

	s.SetDoctor(drNowak)

	assert.Nil(t, s.Slot())
	assert.False(t, s.Ready())
	// Availability belonged to the previous doctor.
	assert.ErrorIs(t, s.SetSlot("09:00"), ErrSlotsNotLoaded)
}

func TestSetDate_ClearsSelectedSlot(t *testing.T) {
	s := selectionWithSlot(t)

	s.SetDate(june11)

	assert.Nil(t, s.Slot())
	assert.False(t, s.Ready())
}

func TestApplySlots_DiscardsStaleResponses(t *testing.T) {
	s := New()
	s.SetDoctor(drKowalski)
	s.SetDate(june10)

	// User switched doctor before the first fetch resolved.
	s.SetDoctor(drNowak)

	err := s.ApplySlots(drKowalski.ID, june10, morningSlots)
	assert.ErrorIs(t, err, ErrStaleSlots)

	err = s.ApplySlots(drNowak.ID, june11, morningSlots)
	assert.ErrorIs(t, err, ErrStaleSlots, "response for a superseded date must be discarded")

	require.NoError(t, s.ApplySlots(drNowak.ID, june10, morningSlots))
	require.NoError(t, s.SetSlot("09:00"))
}

func TestHydrate_ValidSharedLink(t *testing.T) {
	s := New()

	err := s.Hydrate(drKowalski, june10, "09:00", morningSlots)

	require.NoError(t, err)
	assert.True(t, s.Ready())
	assert.Equal(t, "doc-1", s.Doctor().ID)
}

func TestHydrate_DoesNotBypassAvailabilityChecks(t *testing.T) {
	s := New()

	err := s.Hydrate(drKowalski, june10, "09:30", morningSlots)

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.False(t, s.Ready())
}

func TestReset(t *testing.T) {
	s := selectionWithSlot(t)

	s.Reset()

	assert.Nil(t, s.Doctor())
	assert.Nil(t, s.Date())
	assert.Nil(t, s.Slot())
	assert.False(t, s.Ready())
}

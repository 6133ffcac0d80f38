// Package selection implements the slot selection state machine for a
// single booking attempt: the currently selected doctor, date and slot,
// with the invariant that changing doctor or date invalidates any
// previously selected slot.
package selection

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

// Selection holds the doctor/date/slot triple of one booking attempt.
// It is created fresh per attempt and discarded afterwards; it is not
// safe for concurrent use (the booking flow is single-writer).
type Selection struct {
	doctor *domain.Doctor
	date   *time.Time

	// Availability applied for the current doctor+date. A slot may be
	// selected only out of this list.
	slots       []domain.Slot
	slotsLoaded bool

	slot *domain.Slot
}

// New creates an empty selection.
func New() *Selection {
	return &Selection{}
}

// SetDoctor selects a doctor. Any previously selected slot and loaded
// availability become invalid; the caller is expected to trigger a
// fresh availability fetch.
func (s *Selection) SetDoctor(d domain.Doctor) {
	s.doctor = &d
	s.clearSlots()
}

// SetDate selects a date. Clears the selected slot and the loaded
// availability, which belonged to the previous date.
func (s *Selection) SetDate(date time.Time) {
	day := truncateToDay(date)
	s.date = &day
	s.clearSlots()
}

// ApplySlots installs an availability response for the given
// doctor+date. Responses for a pair that is no longer current are
// discarded with ErrStaleSlots; rapid doctor/date changes make
// out-of-order responses possible and only the newest selection wins.
func (s *Selection) ApplySlots(doctorID string, date time.Time, slots []domain.Slot) error {
	if s.doctor == nil {
		return ErrNoDoctor
	}
	if s.date == nil {
		return ErrNoDate
	}
	if s.doctor.ID != doctorID || !sameDay(*s.date, date) {
		return ErrStaleSlots
	}

	s.slots = slots
	s.slotsLoaded = true
	return nil
}

// SetSlot selects the slot starting at the given time. The slot must
// belong to the availability applied for the current doctor+date and
// must be bookable; otherwise the selection state is unchanged.
func (s *Selection) SetSlot(startTime types.TimeString) error {
	if s.doctor == nil {
		return ErrNoDoctor
	}
	if s.date == nil {
		return ErrNoDate
	}
	if !s.slotsLoaded {
		return ErrSlotsNotLoaded
	}

	slot := domain.FindSlot(s.slots, startTime)
	if slot == nil {
		return ErrSlotNotFound
	}
	if !slot.Available {
		return ErrSlotUnavailable
	}

	chosen := *slot
	s.slot = &chosen
	return nil
}

// Hydrate restores a selection from an external source (a shared URL).
// It runs through the same transitions as user-driven selection, so an
// unavailable or nonexistent slot is rejected the same way.
func (s *Selection) Hydrate(doctor domain.Doctor, date time.Time, startTime types.TimeString, slots []domain.Slot) error {
	s.SetDoctor(doctor)
	s.SetDate(date)
	if err := s.ApplySlots(doctor.ID, date, slots); err != nil {
		return err
	}
	return s.SetSlot(startTime)
}

// Doctor returns the selected doctor, or nil.
func (s *Selection) Doctor() *domain.Doctor {
	return s.doctor
}

// Date returns the selected date, or nil.
func (s *Selection) Date() *time.Time {
	return s.date
}

// Slot returns the selected slot, or nil.
func (s *Selection) Slot() *domain.Slot {
	return s.slot
}

// Slots returns the availability applied for the current doctor+date.
func (s *Selection) Slots() []domain.Slot {
	return s.slots
}

// Ready reports whether doctor, date and slot are all selected, at
// which point the form step becomes enterable.
func (s *Selection) Ready() bool {
	return s.doctor != nil && s.date != nil && s.slot != nil
}

// Reset returns the selection to its initial empty state.
func (s *Selection) Reset() {
	s.doctor = nil
	s.date = nil
	s.clearSlots()
}

func (s *Selection) clearSlots() {
	s.slots = nil
	s.slotsLoaded = false
	s.slot = nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

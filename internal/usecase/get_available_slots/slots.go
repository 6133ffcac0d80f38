package get_available_slots

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

// filterBookableSlots hides slots the patient can no longer take:
// for past dates everything is gone, for today the slots that already
// started. Future dates pass through untouched. The upstream remains
// the authority on the Available flag; this is display filtering only.
func filterBookableSlots(slots []domain.Slot, requestDate time.Time, now time.Time) []domain.Slot {
	if isDateInPast(requestDate, now) {
		return []domain.Slot{}
	}
	if !isSameDay(requestDate, now) {
		return slots
	}

	cutoff := types.NewTimeString(now)
	filtered := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.StartsBefore(cutoff) {
			continue
		}
		filtered = append(filtered, slot)
	}
	return filtered
}

// isSameDay reports whether two instants fall on the same calendar day.
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast reports whether the date is before today, ignoring the
// clock component.
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

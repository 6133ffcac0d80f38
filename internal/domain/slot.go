package domain

import "github.com/HarsHvardhnn/centrum-booking-service/pkg/types"

// Slot represents one bookable time interval for a doctor on a date.
// Slots are immutable values fetched fresh per doctor+date and never
// mutated by the booking core.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// Equal reports whether two slots describe the same interval.
func (s Slot) Equal(other Slot) bool {
	return s.StartTime == other.StartTime && s.EndTime == other.EndTime
}

// StartsBefore reports whether the slot starts strictly before the
// given clock time.
func (s Slot) StartsBefore(t types.TimeString) bool {
	return s.StartTime.IsBefore(t)
}

// FindSlot returns the slot starting at the given time, or nil.
func FindSlot(slots []Slot, startTime types.TimeString) *Slot {
	for i := range slots {
		if slots[i].StartTime == startTime {
			return &slots[i]
		}
	}
	return nil
}

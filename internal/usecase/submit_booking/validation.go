package submit_booking

import (
	"fmt"
	"time"
)

func validateRequest(req *Request) error {
	if req.DoctorID == "" {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotStart.IsZero() {
		return fmt.Errorf("%w: slot start time is required", ErrInvalidInput)
	}

	if err := req.SlotStart.Validate(); err != nil {
		return fmt.Errorf("%w: invalid slot start time format: %v", ErrInvalidInput, err)
	}

	return nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package get_next_available

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

// Request asks for the soonest bookable day of one doctor.
type Request struct {
	DoctorID string
}

// Response pre-seeds the booking calendar. When the upstream finds no
// availability inside its search window (or is unreachable), Date falls
// back to today with an empty slot list and WithinWindow=false so the
// UI shows the no-availability notice.
type Response struct {
	DoctorID     string
	Date         time.Time
	Slots        []domain.Slot
	WithinWindow bool
	Unavailable  bool // upstream could not be reached
}

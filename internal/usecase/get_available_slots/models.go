package get_available_slots

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

// Request asks for the bookable slots of one doctor on one date.
type Request struct {
	DoctorID string
	Date     time.Time // date only, clock part ignored
}

// Response carries the slot list. Unavailable marks an upstream
// availability failure: the caller renders an empty/error state and the
// user retries by reselecting doctor or date.
type Response struct {
	DoctorID    string
	Date        time.Time
	Slots       []domain.Slot
	Unavailable bool
}

package submit_booking

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

// Request carries one booking submission: the selected slot, the
// patient form and the challenge proofs collected by the browser.
type Request struct {
	DoctorID   string
	DoctorName string
	Date       time.Time
	SlotStart  types.TimeString

	Form domain.BookingForm

	// InvisibleToken is the background-tier proof; VisibleToken is set
	// only after the interactive widget was solved.
	InvisibleToken string
	VisibleToken   string
}

// Response reports upstream acceptance of the booking.
type Response struct {
	AttemptID       string
	ConfirmationRef string
	Status          domain.AttemptStatus
}

package get_next_available

import (
	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	getNextAvailable "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/get_next_available"
)

// SlotResponse is one slot as the frontend renders it.
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// NextAvailableResponse pre-seeds the calendar with the soonest
// bookable day. WithinWindow=false means the date fell back to today
// and the UI shows the no-availability notice.
type NextAvailableResponse struct {
	DoctorID     string         `json:"doctorId"`
	Date         string         `json:"date"`
	Slots        []SlotResponse `json:"slots"`
	WithinWindow bool           `json:"withinWindow"`
	Unavailable  bool           `json:"unavailable,omitempty"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *getNextAvailable.Response) *NextAvailableResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		}
	}
	return &NextAvailableResponse{
		DoctorID:     resp.DoctorID,
		Date:         resp.Date.Format(domain.DateFormat),
		Slots:        slots,
		WithinWindow: resp.WithinWindow,
		Unavailable:  resp.Unavailable,
	}
}

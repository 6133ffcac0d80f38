package get_available_slots

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	getAvailableSlots "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/get_available_slots"
)

// SlotResponse is one slot as the frontend renders it.
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// AvailableSlotsResponse is the day view of one doctor's calendar.
// Unavailable marks the explicit could-not-fetch state, distinct from
// a day with no slots.
type AvailableSlotsResponse struct {
	DoctorID    string         `json:"doctorId"`
	Date        string         `json:"date"`
	Slots       []SlotResponse `json:"slots"`
	Unavailable bool           `json:"unavailable,omitempty"`
}

// ToUseCaseRequest builds the use case request from the parsed URL parts.
func ToUseCaseRequest(doctorID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{
		DoctorID: doctorID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Available: slot.Available,
		}
	}
	return &AvailableSlotsResponse{
		DoctorID:    resp.DoctorID,
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       slots,
		Unavailable: resp.Unavailable,
	}
}

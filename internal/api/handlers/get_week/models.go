package get_week

import (
	getWeek "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/get_week"
)

// WeekResponse is one page of the calendar week strip.
type WeekResponse struct {
	Days       []string `json:"days"`
	WeekOffset int      `json:"weekOffset"`
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *getWeek.Response) *WeekResponse {
	return &WeekResponse{
		Days:       resp.Days[:],
		WeekOffset: resp.WeekOffset,
	}
}

package models

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

// AttemptResponse is the reception-facing view of one journaled
// submission attempt.
type AttemptResponse struct {
	ID               string  `json:"id"`
	DoctorID         string  `json:"doctorId"`
	Date             string  `json:"date"`      // "2024-06-10"
	SlotStart        string  `json:"slotStart"` // "09:00"
	ConsultationType string  `json:"consultationType"`
	PatientName      string  `json:"patientName"`
	PhoneMasked      string  `json:"phoneMasked"`
	Status           string  `json:"status"`
	ConfirmationRef  *string `json:"confirmationRef,omitempty"`
	FailureReason    *string `json:"failureReason,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// AttemptListResponse is a list of attempts with its total count.
type AttemptListResponse struct {
	Attempts []*AttemptResponse `json:"attempts"`
	Total    int                `json:"total"`
}

// FromDomainAttempt converts a journal record into the response model.
func FromDomainAttempt(a *domain.BookingAttempt) *AttemptResponse {
	return &AttemptResponse{
		ID:               a.ID,
		DoctorID:         a.DoctorID,
		Date:             a.Date.Format(domain.DateFormat),
		SlotStart:        a.SlotStart.String(),
		ConsultationType: string(a.ConsultationType),
		PatientName:      a.PatientName,
		PhoneMasked:      a.PhoneMasked,
		Status:           string(a.Status),
		ConfirmationRef:  a.ConfirmationRef,
		FailureReason:    a.FailureReason,
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAttempts converts a slice of journal records.
func FromDomainAttempts(list []*domain.BookingAttempt) *AttemptListResponse {
	attempts := make([]*AttemptResponse, len(list))
	for i, a := range list {
		attempts[i] = FromDomainAttempt(a)
	}
	return &AttemptListResponse{
		Attempts: attempts,
		Total:    len(attempts),
	}
}

package submit_booking

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	submitBooking "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/submit_booking"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

// SubmitBookingRequest is the HTTP request model. Field names follow
// the frontend contract, including the historical teleportationConfirmed
// spelling.
type SubmitBookingRequest struct {
	DoctorID   string `json:"doctorId"`
	DoctorName string `json:"doctorName,omitempty"`
	Date       string `json:"date"` // "2025-10-15"
	Time       string `json:"time"` // "10:00"

	ConsultationType string `json:"consultationType"`
	Name             string `json:"name"`
	Email            string `json:"email,omitempty"`
	Phone            string `json:"phone"`
	Gender           string `json:"gender,omitempty"`
	Message          string `json:"message,omitempty"`

	PrivacyPolicyAgreed         bool `json:"privacyPolicyAgreed"`
	SMSConsentAgreed            bool `json:"smsConsentAgreed"`
	MedicalDataProcessingAgreed bool `json:"medicalDataProcessingAgreed"`
	TeleportationConfirmed      bool `json:"teleportationConfirmed"`
	ContactConsentAgreed        bool `json:"contactConsentAgreed"`

	GovtID      string `json:"govtId,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`

	// RecaptchaToken is the invisible-tier proof; VisibleRecaptchaToken
	// is present only after the interactive widget was solved.
	RecaptchaToken        string `json:"recaptchaToken"`
	VisibleRecaptchaToken string `json:"visibleRecaptchaToken,omitempty"`
}

// SubmitBookingResponse reports the accepted booking.
type SubmitBookingResponse struct {
	AttemptID       string `json:"attemptId"`
	ConfirmationRef string `json:"confirmationRef,omitempty"`
	Status          string `json:"status"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *SubmitBookingRequest) ToUseCaseRequest() (*submitBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slotStart, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		DoctorID:   r.DoctorID,
		DoctorName: r.DoctorName,
		Date:       date,
		SlotStart:  slotStart,
		Form: domain.BookingForm{
			Name:             r.Name,
			Email:            r.Email,
			Phone:            r.Phone,
			Gender:           r.Gender,
			Message:          r.Message,
			ConsultationType: domain.ConsultationType(r.ConsultationType),

			SMSConsentAgreed:    r.SMSConsentAgreed,
			PrivacyPolicyAgreed: r.PrivacyPolicyAgreed,

			MedicalDataProcessingAgreed: r.MedicalDataProcessingAgreed,
			TeleconsultationConfirmed:   r.TeleportationConfirmed,
			ContactConsentAgreed:        r.ContactConsentAgreed,

			GovtID:      r.GovtID,
			Address:     r.Address,
			DateOfBirth: r.DateOfBirth,
		},
		InvisibleToken: r.RecaptchaToken,
		VisibleToken:   r.VisibleRecaptchaToken,
	}, nil
}

// FromUseCaseResponse converts the use case result into the HTTP response.
func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		AttemptID:       resp.AttemptID,
		ConfirmationRef: resp.ConfirmationRef,
		Status:          string(resp.Status),
	}
}

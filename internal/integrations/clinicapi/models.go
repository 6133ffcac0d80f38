package clinicapi

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	"github.com/HarsHvardhnn/centrum-booking-service/pkg/types"
)

// slotPayload is one slot as the clinic backend serializes it.
type slotPayload struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

func (p slotPayload) toDomain() domain.Slot {
	return domain.Slot{
		StartTime: types.TimeString(p.StartTime),
		EndTime:   types.TimeString(p.EndTime),
		Available: p.Available,
	}
}

// availableSlotsResponse wraps GET /docs/schedule/available-slots/{doctorId}.
type availableSlotsResponse struct {
	Success bool          `json:"success"`
	Data    []slotPayload `json:"data"`
	Message string        `json:"message,omitempty"`
}

// nextAvailableResponse wraps GET /docs/schedule/next-available/{doctorId}.
// Data is null when no availability exists within the upstream's search
// window.
type nextAvailableResponse struct {
	Success bool `json:"success"`
	Data    *struct {
		NextAvailableDate string        `json:"nextAvailableDate"`
		AvailableSlots    []slotPayload `json:"availableSlots"`
	} `json:"data"`
	Message string `json:"message,omitempty"`
}

// NextAvailable is the soonest bookable day for a doctor.
type NextAvailable struct {
	Date  time.Time
	Slots []domain.Slot
}

// BookingPayload is the composed POST /appointments/book body. Wire
// names follow the clinic backend contract, including the historical
// teleportationConfirmed field name.
type BookingPayload struct {
	Date             string `json:"date"` // YYYY-MM-DD
	Doctor           string `json:"doctor"`
	Time             string `json:"time"` // HH:MM slot start
	ConsultationType string `json:"consultationType"`
	Name             string `json:"name"`
	Phone            string `json:"phone"` // +48-prefixed
	Email            string `json:"email,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Message          string `json:"message,omitempty"`
	RecaptchaToken   string `json:"recaptchaToken"`

	PrivacyPolicyAgreed         bool `json:"privacyPolicyAgreed"`
	SMSConsentAgreed            bool `json:"smsConsentAgreed"`
	MedicalDataProcessingAgreed bool `json:"medicalDataProcessingAgreed,omitempty"`
	TeleportationConfirmed      bool `json:"teleportationConfirmed,omitempty"`
	ContactConsentAgreed        bool `json:"contactConsentAgreed,omitempty"`

	GovtID      string `json:"govtId,omitempty"`
	Address     string `json:"address,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`

	// Always true on submission; the upstream requires the aggregate flag.
	Consent bool `json:"consent"`
}

// bookingResponse wraps POST /appointments/book.
type bookingResponse struct {
	Success   bool   `json:"success"`
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// BookingConfirmation reports upstream acceptance of a booking.
type BookingConfirmation struct {
	Reference string
}

// Upstream error codes mapped to sentinels.
const (
	codeSlotTaken       = "SLOT_TAKEN"
	codeRecaptchaFailed = "RECAPTCHA_FAILED"
	codeLowTrust        = "RECAPTCHA_LOW_SCORE"
	codeValidation      = "VALIDATION_ERROR"
)

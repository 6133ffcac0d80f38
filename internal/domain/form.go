package domain

// BookingForm holds the patient-entered fields of one booking attempt.
// The required-field set depends on ConsultationType: online
// consultations additionally require the identity fields and the three
// extra consent flags.
type BookingForm struct {
	Name             string
	Email            string // optional
	Phone            string // local format, 9 digits after stripping
	Gender           string
	Message          string
	ConsultationType ConsultationType

	// Consent flags.
	SMSConsentAgreed    bool // optional
	PrivacyPolicyAgreed bool // mandatory for both consultation types

	// Online-only consents.
	MedicalDataProcessingAgreed bool
	TeleconsultationConfirmed   bool
	ContactConsentAgreed        bool

	// Online-only identity fields.
	GovtID      string
	Address     string
	DateOfBirth string // YYYY-MM-DD
}

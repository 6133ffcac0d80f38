// Package form validates the patient booking form. The required-field
// set depends on the consultation type: online consultations require
// additional identity fields and consent flags.
package form

import (
	"regexp"
	"strings"
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

// Field keys used in the validation error map. They match the wire
// names the frontend renders inline errors against.
const (
	FieldName                  = "name"
	FieldEmail                 = "email"
	FieldPhone                 = "phone"
	FieldConsultationType      = "consultationType"
	FieldPrivacyPolicy         = "privacyPolicyAgreed"
	FieldMedicalDataProcessing = "medicalDataProcessingAgreed"
	FieldTeleconsultation      = "teleportationConfirmed"
	FieldContactConsent        = "contactConsentAgreed"
	FieldGovtID                = "govtId"
	FieldAddress               = "address"
	FieldDateOfBirth           = "dateOfBirth"
)

// ValidationErrors maps a field key to a human-readable message.
// Absence of a key means the field is valid; an empty map means the
// form is submittable.
type ValidationErrors map[string]string

// Valid reports whether no field failed validation.
func (v ValidationErrors) Valid() bool {
	return len(v) == 0
}

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// Validate checks every rule independently and collects all failures.
// Pure function: no I/O, the form is not mutated.
func Validate(f domain.BookingForm) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(f.Name) == "" {
		errs[FieldName] = "name is required"
	} else if len(f.Name) > domain.MaxNameLength {
		errs[FieldName] = "name is too long"
	}

	validatePhone(f.Phone, errs)

	if f.Email != "" && !emailPattern.MatchString(f.Email) {
		errs[FieldEmail] = "email address is invalid"
	}

	if !f.ConsultationType.Valid() {
		errs[FieldConsultationType] = "consultation type must be offline or online"
	}

	// Mandatory regardless of consultation type.
	if !f.PrivacyPolicyAgreed {
		errs[FieldPrivacyPolicy] = "privacy policy consent is required"
	}

	// Online-only requirements. When the consultation is offline these
	// fields are inert and their absence is never an error.
	if f.ConsultationType.IsOnline() {
		if !f.MedicalDataProcessingAgreed {
			errs[FieldMedicalDataProcessing] = "medical data processing consent is required for online consultations"
		}
		if !f.TeleconsultationConfirmed {
			errs[FieldTeleconsultation] = "teleconsultation confirmation is required for online consultations"
		}
		if !f.ContactConsentAgreed {
			errs[FieldContactConsent] = "contact consent is required for online consultations"
		}
		if strings.TrimSpace(f.GovtID) == "" {
			errs[FieldGovtID] = "identity document number is required for online consultations"
		}
		if strings.TrimSpace(f.Address) == "" {
			errs[FieldAddress] = "address is required for online consultations"
		}
		validateDateOfBirth(f.DateOfBirth, errs)
	}

	return errs
}

func validatePhone(phone string, errs ValidationErrors) {
	if strings.TrimSpace(phone) == "" {
		errs[FieldPhone] = "phone number is required"
		return
	}
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	if len(digits) != domain.PhoneLocalDigits {
		errs[FieldPhone] = "phone number must contain exactly 9 digits"
	}
}

func validateDateOfBirth(dob string, errs ValidationErrors) {
	if strings.TrimSpace(dob) == "" {
		errs[FieldDateOfBirth] = "date of birth is required for online consultations"
		return
	}
	if _, err := time.Parse(domain.DateFormat, dob); err != nil {
		errs[FieldDateOfBirth] = "date of birth must be formatted as YYYY-MM-DD"
	}
}

// NormalizePhone applies the input-time filter: strips every non-digit
// character and truncates to the local digit count. This keeps invalid
// characters out of the field; Validate remains the authority.
func NormalizePhone(raw string) string {
	digits := nonDigitPattern.ReplaceAllString(raw, "")
	if len(digits) > domain.PhoneLocalDigits {
		digits = digits[:domain.PhoneLocalDigits]
	}
	return digits
}

// InternationalPhone prefixes a validated local number with the fixed
// country calling code for the upstream payload.
func InternationalPhone(localDigits string) string {
	return domain.PhoneCountryCode + localDigits
}

// MaskPhone hides all but the last two digits for journal storage.
func MaskPhone(localDigits string) string {
	if len(localDigits) <= 2 {
		return localDigits
	}
	return strings.Repeat("*", len(localDigits)-2) + localDigits[len(localDigits)-2:]
}

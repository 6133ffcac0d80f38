package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

func validOfflineForm() domain.BookingForm {
	return domain.BookingForm{
		Name:                "Anna Kowalska",
		Email:               "anna@example.com",
		Phone:               "123456789",
		Gender:              "female",
		ConsultationType:    domain.ConsultationOffline,
		PrivacyPolicyAgreed: true,
	}
}

func validOnlineForm() domain.BookingForm {
	f := validOfflineForm()
	f.ConsultationType = domain.ConsultationOnline
	f.MedicalDataProcessingAgreed = true
	f.TeleconsultationConfirmed = true
	f.ContactConsentAgreed = true
	f.GovtID = "ABC123456"
	f.Address = "ul. Kwiatowa 1, Warszawa"
	f.DateOfBirth = "1990-05-20"
	return f
}

func TestValidate_OfflineFormValid(t *testing.T) {
	errs := Validate(validOfflineForm())
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestValidate_OnlineFormValid(t *testing.T) {
	errs := Validate(validOnlineForm())
	assert.True(t, errs.Valid(), "unexpected errors: %v", errs)
}

func TestValidate_OfflineNeverRequiresOnlineFields(t *testing.T) {
	f := validOfflineForm()
	f.GovtID = ""
	f.Address = ""
	f.DateOfBirth = ""
	f.MedicalDataProcessingAgreed = false
	f.TeleconsultationConfirmed = false
	f.ContactConsentAgreed = false

	errs := Validate(f)

	assert.NotContains(t, errs, FieldGovtID)
	assert.NotContains(t, errs, FieldAddress)
	assert.NotContains(t, errs, FieldDateOfBirth)
	assert.NotContains(t, errs, FieldMedicalDataProcessing)
	assert.NotContains(t, errs, FieldTeleconsultation)
	assert.NotContains(t, errs, FieldContactConsent)
	assert.True(t, errs.Valid())
}

func TestValidate_OnlineFieldsRequiredIndependently(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*domain.BookingForm)
		wantField string
	}{
		{"missing govtId", func(f *domain.BookingForm) { f.GovtID = "" }, FieldGovtID},
		{"missing address", func(f *domain.BookingForm) { f.Address = "" }, FieldAddress},
		{"missing dateOfBirth", func(f *domain.BookingForm) { f.DateOfBirth = "" }, FieldDateOfBirth},
		{"medical data consent unchecked", func(f *domain.BookingForm) { f.MedicalDataProcessingAgreed = false }, FieldMedicalDataProcessing},
		{"teleconsultation unconfirmed", func(f *domain.BookingForm) { f.TeleconsultationConfirmed = false }, FieldTeleconsultation},
		{"contact consent unchecked", func(f *domain.BookingForm) { f.ContactConsentAgreed = false }, FieldContactConsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validOnlineForm()
			tt.mutate(&f)

			errs := Validate(f)

			assert.Contains(t, errs, tt.wantField)
			assert.Len(t, errs, 1, "exactly one error expected, got %v", errs)
		})
	}
}

func TestValidate_PrivacyPolicyAlwaysRequired(t *testing.T) {
	offline := validOfflineForm()
	offline.PrivacyPolicyAgreed = false
	assert.Contains(t, Validate(offline), FieldPrivacyPolicy)

	online := validOnlineForm()
	online.PrivacyPolicyAgreed = false
	assert.Contains(t, Validate(online), FieldPrivacyPolicy)
}

func TestValidate_Phone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"123456789", true},
		{"123 456 789", true}, // non-digits stripped before counting
		{"12345", false},
		{"12a456789", false}, // 8 digits after stripping
		{"1234567890", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			f := validOfflineForm()
			f.Phone = tt.phone

			errs := Validate(f)

			if tt.valid {
				assert.NotContains(t, errs, FieldPhone)
			} else {
				assert.Contains(t, errs, FieldPhone)
			}
		})
	}
}

func TestValidate_EmailOptionalButShapeChecked(t *testing.T) {
	f := validOfflineForm()
	f.Email = ""
	assert.NotContains(t, Validate(f), FieldEmail)

	f.Email = "not-an-email"
	assert.Contains(t, Validate(f), FieldEmail)

	f.Email = "patient@clinic.pl"
	assert.NotContains(t, Validate(f), FieldEmail)
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	f := domain.BookingForm{ConsultationType: domain.ConsultationOnline}

	errs := Validate(f)

	// name, phone, privacy, three consents, govtId, address, dateOfBirth
	assert.Len(t, errs, 9)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "123456789", NormalizePhone("12 34 56 789"))
	assert.Equal(t, "123456789", NormalizePhone("123456789012")) // truncated
	assert.Equal(t, "12456789", NormalizePhone("12a456789"))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func TestInternationalPhone(t *testing.T) {
	assert.Equal(t, "+48123456789", InternationalPhone("123456789"))
}

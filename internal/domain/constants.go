package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Phone number constants. The site serves a single country; the local
// format is 9 digits which the upstream expects prefixed with the
// country calling code.
const (
	PhoneLocalDigits = 9
	PhoneCountryCode = "+48"
)

// Booking flow constants
const (
	// DaysPerWeek slots calendar pages in whole weeks.
	DaysPerWeek = 7

	// DefaultNextAvailableWindowDays is how far ahead the upstream
	// searches for the soonest bookable day.
	DefaultNextAvailableWindowDays = 30

	// DefaultChallengeAction tags invisible challenge executions.
	DefaultChallengeAction = "appointment_booking"

	// DefaultChallengeScoreThreshold is the minimum invisible-challenge
	// score accepted before falling back to the interactive widget.
	DefaultChallengeScoreThreshold = 0.5

	MaxMessageLength = 500
	MaxNameLength    = 120
)

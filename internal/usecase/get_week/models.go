package get_week

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

// Request selects a week of the booking calendar strip. A nil Anchor
// means "today"; WeekOffset pages forward in whole weeks.
type Request struct {
	Anchor     *time.Time
	WeekOffset int
}

// Response is one page of the week strip.
type Response struct {
	Days       [domain.DaysPerWeek]string
	WeekOffset int
}

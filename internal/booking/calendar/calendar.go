// Package calendar provides the pure date computations behind the
// booking week strip.
package calendar

import (
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

// ComputeWeek returns the 7 consecutive calendar dates starting at
// anchor shifted by weekOffset whole weeks, formatted as ISO dates
// (YYYY-MM-DD). Deterministic and side-effect free.
//
// The anchor must be a valid, non-zero date; validating it is the
// caller's responsibility.
func ComputeWeek(anchor time.Time, weekOffset int) [domain.DaysPerWeek]string {
	var week [domain.DaysPerWeek]string

	start := truncateToDay(anchor).AddDate(0, 0, weekOffset*domain.DaysPerWeek)
	for i := 0; i < domain.DaysPerWeek; i++ {
		week[i] = start.AddDate(0, 0, i).Format(domain.DateFormat)
	}

	return week
}

// truncateToDay drops the clock component so day arithmetic is not
// affected by DST shifts around midnight.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

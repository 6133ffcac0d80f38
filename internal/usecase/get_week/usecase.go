package get_week

import (
	"context"
	"fmt"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/booking/calendar"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
)

// UseCase pages the booking calendar week strip.
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute computes one week page. Paging into the past is rejected:
// the strip starts at the current week.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req.WeekOffset < 0 {
		return nil, fmt.Errorf("%w: week offset must not be negative", ErrInvalidInput)
	}

	anchor := uc.timeProvider.Now()
	if req.Anchor != nil {
		if req.Anchor.IsZero() {
			return nil, fmt.Errorf("%w: anchor date must not be zero", ErrInvalidInput)
		}
		anchor = *req.Anchor
	}

	uc.logger.Info("GetWeek: anchor=%s offset=%d", anchor.Format(domain.DateFormat), req.WeekOffset)

	return &Response{
		Days:       calendar.ComputeWeek(anchor, req.WeekOffset),
		WeekOffset: req.WeekOffset,
	}, nil
}

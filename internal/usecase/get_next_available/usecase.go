package get_next_available

import (
	"context"
	"errors"
	"fmt"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	clinicClient "github.com/HarsHvardhnn/centrum-booking-service/internal/integrations/clinicapi"
)

// UseCase resolves the soonest bookable day used to pre-seed the
// calendar after a doctor is picked.
type UseCase struct {
	clinicClient ClinicClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(client ClinicClient, logger Logger) *UseCase {
	return &UseCase{
		clinicClient: client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute asks the upstream for the next available day. Absence of
// availability and upstream unreachability both degrade to a today
// fallback instead of failing the page.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.DoctorID == "" {
		return nil, fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	uc.logger.Info("GetNextAvailable: doctor=%s", req.DoctorID)

	next, err := uc.clinicClient.GetNextAvailable(ctx, req.DoctorID)
	if err != nil {
		switch {
		case errors.Is(err, clinicClient.ErrDoctorNotFound):
			uc.logger.Warn("GetNextAvailable: doctor=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound

		case errors.Is(err, clinicClient.ErrUpstreamUnavailable):
			uc.logger.Error("GetNextAvailable: upstream unavailable for doctor=%s: %v", req.DoctorID, err)
			return uc.todayFallback(req.DoctorID, true), nil

		default:
			uc.logger.Error("GetNextAvailable: failed for doctor=%s: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get next available date: %v", ErrInternal, err)
		}
	}

	if next == nil {
		uc.logger.Info("GetNextAvailable: no availability within window for doctor=%s", req.DoctorID)
		return uc.todayFallback(req.DoctorID, false), nil
	}

	uc.logger.Info("GetNextAvailable: doctor=%s next=%s slots=%d",
		req.DoctorID, next.Date.Format(domain.DateFormat), len(next.Slots))

	return &Response{
		DoctorID:     req.DoctorID,
		Date:         next.Date,
		Slots:        next.Slots,
		WithinWindow: true,
	}, nil
}

func (uc *UseCase) todayFallback(doctorID string, unavailable bool) *Response {
	return &Response{
		DoctorID:    doctorID,
		Date:        uc.timeProvider.Now(),
		Slots:       []domain.Slot{},
		Unavailable: unavailable,
	}
}

package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	clinicClient "github.com/HarsHvardhnn/centrum-booking-service/internal/integrations/clinicapi"
)

// UseCase fetches the bookable slots for one doctor+date. No caching:
// every doctor/date change triggers a fresh upstream fetch.
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

// Execute validates the request and fetches the slot list. Upstream
// unavailability is not an error from the caller's point of view: the
// response carries Unavailable=true with an empty list and the user
// retries by reselecting.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s",
		req.DoctorID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	slots, err := uc.clinicClient.GetAvailableSlots(ctx, req.DoctorID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, clinicClient.ErrDoctorNotFound):
			uc.logger.Warn("GetAvailableSlots: doctor=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound

		case errors.Is(err, clinicClient.ErrUpstreamUnavailable):
			uc.logger.Error("GetAvailableSlots: upstream unavailable for doctor=%s: %v", req.DoctorID, err)
			return &Response{
				DoctorID:    req.DoctorID,
				Date:        req.Date,
				Slots:       []domain.Slot{},
				Unavailable: true,
			}, nil

		default:
			uc.logger.Error("GetAvailableSlots: failed for doctor=%s: %v", req.DoctorID, err)
			return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
		}
	}

	bookable := filterBookableSlots(slots, req.Date, now)

	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s, slots=%d (of %d upstream)",
		req.DoctorID, req.Date.Format(domain.DateFormat), len(bookable), len(slots))

	return &Response{
		DoctorID: req.DoctorID,
		Date:     req.Date,
		Slots:    bookable,
	}, nil
}

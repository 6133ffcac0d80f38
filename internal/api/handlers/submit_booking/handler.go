package submit_booking

import (
	"errors"
	"net/http"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers"
	submitBooking "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgValidationFailed   = "form validation failed"
	msgDoctorNotFound     = "doctor not found"
	msgSlotNotAvailable   = "the selected slot is no longer available"
	msgSlotTaken          = "the selected slot was just booked by someone else"
	msgInFlight           = "a submission for this slot is already being processed"
	msgChallengePending   = "the bot challenge must be completed before booking"
	msgUpstreamFailed     = "the clinic system is temporarily unavailable, please try again"

	challengeTierVisible = "visible"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments/book - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *submitBooking.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /appointments/book - Form invalid: doctor_id=%s, fields=%d",
				req.DoctorID, len(validationErr.Fields))
			handlers.RespondValidationFailed(w, msgValidationFailed, validationErr.Fields)

		case errors.Is(err, submitBooking.ErrValidationFailed):
			h.logger.Warn("POST /appointments/book - Upstream rejected form: doctor_id=%s, error=%v",
				req.DoctorID, err)
			handlers.RespondValidationFailed(w, msgValidationFailed, nil)

		case errors.Is(err, submitBooking.ErrChallengePending):
			h.logger.Warn("POST /appointments/book - Challenge pending: doctor_id=%s", req.DoctorID)
			handlers.RespondChallengeRequired(w, msgChallengePending, challengeTierVisible)

		case errors.Is(err, submitBooking.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments/book - Doctor not found: doctor_id=%s", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, submitBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments/book - Slot not available: doctor_id=%s, date=%s, time=%s",
				req.DoctorID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, submitBooking.ErrSlotTaken):
			h.logger.Warn("POST /appointments/book - Slot taken upstream: doctor_id=%s, date=%s, time=%s",
				req.DoctorID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, submitBooking.ErrSubmissionInFlight):
			h.logger.Warn("POST /appointments/book - Duplicate submission: doctor_id=%s, date=%s, time=%s",
				req.DoctorID, req.Date, req.Time)
			handlers.RespondConflict(w, msgInFlight)

		case errors.Is(err, submitBooking.ErrUpstreamFailed):
			h.logger.Error("POST /appointments/book - Upstream unavailable: doctor_id=%s, error=%v",
				req.DoctorID, err)
			handlers.RespondBadGateway(w, msgUpstreamFailed)

		case errors.Is(err, submitBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments/book - Failed to submit booking: doctor_id=%s, error=%v",
				req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/book - Booking confirmed: attempt_id=%s, doctor_id=%s, ref=%s",
		result.AttemptID, req.DoctorID, result.ConfirmationRef)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package get_next_available

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	getNextAvailable "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/get_next_available"
)

const (
	msgMissingDoctorID = "doctor ID is required"
	msgDoctorNotFound  = "doctor not found"
)

type Handler struct {
	useCase GetNextAvailableUseCase
	logger  Logger
}

func NewHandler(useCase GetNextAvailableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/next-available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID := vars["doctorId"]
	if doctorID == "" {
		h.logger.Warn("GET /doctors/{id}/next-available - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getNextAvailable.Request{DoctorID: doctorID})
	if err != nil {
		switch {
		case errors.Is(err, getNextAvailable.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/next-available - Doctor not found: doctor_id=%s", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, getNextAvailable.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/next-available - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /doctors/{id}/next-available - Failed: doctor_id=%s, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/next-available - doctor_id=%s, date=%s, within_window=%t",
		doctorID, result.Date.Format(domain.DateFormat), result.WithinWindow)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

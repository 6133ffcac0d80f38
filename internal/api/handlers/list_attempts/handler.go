package list_attempts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/service/attempts"
)

const (
	msgMissingDoctorID = "doctor ID is required"
	msgInvalidLimit    = "invalid limit, expected a positive integer"
)

type Handler struct {
	service AttemptService
	logger  Logger
}

func NewHandler(service AttemptService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/attempts
// Query params: limit (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID := vars["doctorId"]
	if doctorID == "" {
		h.logger.Warn("GET /doctors/{id}/attempts - Missing doctor ID")
		handlers.RespondBadRequest(w, msgMissingDoctorID)
		return
	}

	var limit uint64
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil || parsed == 0 {
			h.logger.Warn("GET /doctors/{id}/attempts - Invalid limit: %q", limitStr)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	result, err := h.service.ListRecentByDoctor(r.Context(), doctorID, limit)
	if err != nil {
		if errors.Is(err, attempts.ErrInvalidInput) {
			h.logger.Warn("GET /doctors/{id}/attempts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /doctors/{id}/attempts - Failed to list attempts: doctor_id=%s, error=%v",
			doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{id}/attempts - Returned %d attempts: doctor_id=%s", result.Total, doctorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

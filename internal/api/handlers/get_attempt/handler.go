package get_attempt

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/service/attempts"
)

const (
	msgInvalidAttemptID = "invalid attempt ID"
	msgNotFound         = "attempt not found"
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

// Handle GET /api/v1/appointments/attempts/{attemptId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	attemptID := vars["attemptId"]

	if _, err := uuid.Parse(attemptID); err != nil {
		h.logger.Warn("GET /appointments/attempts/{id} - Invalid attempt ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAttemptID)
		return
	}

	attempt, err := h.service.GetByID(r.Context(), attemptID)
	if err != nil {
		switch {
		case errors.Is(err, attempts.ErrAttemptNotFound):
			h.logger.Warn("GET /appointments/attempts/{id} - Attempt not found: attempt_id=%s", attemptID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, attempts.ErrInvalidInput):
			h.logger.Warn("GET /appointments/attempts/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAttemptID)

		default:
			h.logger.Error("GET /appointments/attempts/{id} - Failed to get attempt: attempt_id=%s, error=%v",
				attemptID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/attempts/{id} - Attempt retrieved: attempt_id=%s, status=%s",
		attemptID, attempt.Status)
	handlers.RespondJSON(w, http.StatusOK, attempt)
}

package get_week

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/api/handlers"
	"github.com/HarsHvardhnn/centrum-booking-service/internal/domain"
	getWeek "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/get_week"
)

const (
	msgInvalidOffset = "invalid week offset, expected a non-negative integer"
	msgInvalidAnchor = "invalid anchor date, expected YYYY-MM-DD"
)

type Handler struct {
	useCase GetWeekUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking/week
// Query params: offset (optional, default 0), anchor (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getWeek.Request{}

	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			h.logger.Warn("GET /booking/week - Invalid offset: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		req.WeekOffset = offset
	}

	if anchorStr := r.URL.Query().Get("anchor"); anchorStr != "" {
		anchor, err := time.Parse(domain.DateFormat, anchorStr)
		if err != nil {
			h.logger.Warn("GET /booking/week - Invalid anchor: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAnchor)
			return
		}
		req.Anchor = &anchor
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getWeek.ErrInvalidInput) {
			h.logger.Warn("GET /booking/week - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOffset)
			return
		}
		h.logger.Error("GET /booking/week - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

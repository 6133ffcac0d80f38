package list_attempts

import (
	"context"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/service/attempts/models"
)

type AttemptService interface {
	ListRecentByDoctor(ctx context.Context, doctorID string, limit uint64) (*models.AttemptListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

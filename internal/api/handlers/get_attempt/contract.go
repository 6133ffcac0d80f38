package get_attempt

import (
	"context"

	"github.com/HarsHvardhnn/centrum-booking-service/internal/service/attempts/models"
)

type AttemptService interface {
	GetByID(ctx context.Context, id string) (*models.AttemptResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

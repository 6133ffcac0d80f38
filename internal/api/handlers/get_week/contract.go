package get_week

import (
	"context"

	getWeek "github.com/HarsHvardhnn/centrum-booking-service/internal/usecase/get_week"
)

type GetWeekUseCase interface {
	Execute(ctx context.Context, req *getWeek.Request) (*getWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

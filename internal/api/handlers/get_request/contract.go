package get_request

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/service/requests/models"
)

type RequestsService interface {
	GetByID(ctx context.Context, id int64) (*models.RequestResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

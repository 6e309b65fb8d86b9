package list_my_requests

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/service/requests/models"
)

type RequestsService interface {
	ListByUser(ctx context.Context, userID int64) (*models.RequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

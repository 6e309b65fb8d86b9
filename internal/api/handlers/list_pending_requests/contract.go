package list_pending_requests

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/service/requests/models"
)

type RequestsService interface {
	ListPending(ctx context.Context) (*models.RequestListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_event

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/service/events/models"
)

type EventsService interface {
	Create(ctx context.Context, req *models.EventRequest) (*models.EventResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

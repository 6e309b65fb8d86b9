package list_booking_records

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/service/records/models"
)

type RecordsService interface {
	List(ctx context.Context) (*models.RecordListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

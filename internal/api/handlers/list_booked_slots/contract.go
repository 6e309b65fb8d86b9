package list_booked_slots

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/service/bookings/models"
)

type BookingsService interface {
	ListSlots(ctx context.Context) (*models.BookedSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

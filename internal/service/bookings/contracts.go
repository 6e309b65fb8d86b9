package bookings

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
	ListSlots(ctx context.Context) ([]domain.BookedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	Release(ctx context.Context, date time.Time) error
}

// RecordRepository интерфейс репозитория журнала
type RecordRepository interface {
	Create(ctx context.Context, rec *domain.BookingRecord) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс рассылки событий
type Notifier interface {
	Publish(event string, payload interface{})
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

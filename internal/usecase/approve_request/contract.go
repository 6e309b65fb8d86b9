package approve_request

import (
	"context"
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	SetStatus(ctx context.Context, id int64, status domain.RequestStatus, reviewedBy int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	ListByDateSlot(ctx context.Context, date time.Time, slot string) ([]*domain.Booking, error)
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarDate, error)
	Reserve(ctx context.Context, date time.Time, maxSlots int) error
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

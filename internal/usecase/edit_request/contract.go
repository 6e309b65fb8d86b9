package edit_request

import (
	"context"
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	UpdateFields(ctx context.Context, id int64, req *domain.BookingRequest) error
}

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.CalendarDate, error)
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

package calendar

import (
	"context"
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// CalendarRepository интерфейс репозитория календаря
type CalendarRepository interface {
	List(ctx context.Context) ([]*domain.CalendarDate, error)
	SetMaxSlots(ctx context.Context, date time.Time, maxSlots int) error
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

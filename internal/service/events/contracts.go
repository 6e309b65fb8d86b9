package events

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	Create(ctx context.Context, e *domain.ParishEvent) (*domain.ParishEvent, error)
	GetByID(ctx context.Context, id int64) (*domain.ParishEvent, error)
	List(ctx context.Context) ([]*domain.ParishEvent, error)
	Update(ctx context.Context, id int64, e *domain.ParishEvent) error
	Delete(ctx context.Context, id int64) error
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

package requests

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.BookingRequest, error)
	ListPending(ctx context.Context) ([]*domain.BookingRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.BookingRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

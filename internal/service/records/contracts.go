package records

import (
	"context"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// RecordRepository интерфейс репозитория журнала
type RecordRepository interface {
	List(ctx context.Context) ([]*domain.BookingRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package set_calendar_date

import (
	"context"
	"time"
)

type CalendarService interface {
	SetDate(ctx context.Context, date time.Time, maxSlots int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

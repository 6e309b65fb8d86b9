package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/internal/service/calendar/models"
)

// Service сервис календаря ёмкости
type Service struct {
	calendarRepo CalendarRepository
	notifier     Notifier
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(calendarRepo CalendarRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// List получает состояние ёмкости всех затронутых дат
// Даты без строки в календаре имеют ёмкость по умолчанию и в ответ не входят
func (s *Service) List(ctx context.Context) (*models.CalendarResponse, error) {
	s.logger.Info("List: fetching calendar dates")

	dates, err := s.calendarRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d calendar dates", len(dates))
	return models.FromDomainCalendar(dates), nil
}

// SetDate устанавливает ёмкость даты; ноль закрывает дату для бронирования
// Уже выданные на дату бронирования при этом не отзываются
func (s *Service) SetDate(ctx context.Context, date time.Time, maxSlots int) error {
	s.logger.Info("SetDate: date=%s, maxSlots=%d", date.Format(domain.DateFormat), maxSlots)

	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if maxSlots < 0 {
		return fmt.Errorf("%w: maxSlots must not be negative", ErrInvalidInput)
	}

	if err := s.calendarRepo.SetMaxSlots(ctx, date, maxSlots); err != nil {
		s.logger.Error("SetDate: repository error: %v", err)
		return fmt.Errorf("%w: SetDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetDate: date %s capacity set to %d", date.Format(domain.DateFormat), maxSlots)

	s.notifier.Publish(notify.EventCalendarConfigUpdated, &models.SetDateRequest{
		Date:     date.Format(domain.DateFormat),
		MaxSlots: maxSlots,
	})

	return nil
}

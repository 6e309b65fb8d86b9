package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Parish-BookingService/internal/service/bookings/models"
)

// Service сервис чтения подтверждённых бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по идентификатору
// Проверка владения выполняется на уровне API
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает все бронирования (новые первыми)
// Доступно только администраторам, проверка роли выполняется на уровне API
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching all bookings")

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListByUser получает бронирования пользователя (новые первыми)
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListByUser: fetching bookings for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: successfully fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// ListSlots получает занятые пары дата+слот без раскрытия владельцев
// Используется публичным календарём доступности
func (s *Service) ListSlots(ctx context.Context) (*models.BookedSlotListResponse, error) {
	s.logger.Info("ListSlots: fetching booked slots")

	slots, err := s.bookingRepo.ListSlots(ctx)
	if err != nil {
		s.logger.Error("ListSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSlots - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSlots: successfully fetched %d booked slots", len(slots))
	return models.FromDomainBookedSlots(slots), nil
}

package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/pkg/pgerrors"
	"github.com/m04kA/Parish-BookingService/pkg/ptr"
)

// UseCase use case отмены подтверждённого бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	recordRepo   RecordRepository
	txManager    TransactionManager
	notifier     Notifier
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	recordRepo RecordRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		recordRepo:   recordRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования
// Отменить бронирование может владелец либо администратор. Удаление
// бронирования и освобождение ёмкости даты выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, actor=%d", req.BookingID, req.Actor.ID)

	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Actor.ID <= 0 {
		return nil, fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	var cancelled *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Проверяем владение
		if !booking.IsOwnedBy(req.Actor.ID) && !req.Actor.IsAdmin() {
			uc.logger.Warn("CancelBooking: booking id=%d belongs to user=%d, actor=%d",
				booking.ID, booking.UserID, req.Actor.ID)
			return ErrForbidden
		}

		// 3. Удаляем бронирование
		if err := uc.bookingRepo.Delete(txCtx, booking.ID); err != nil {
			uc.logger.Error("CancelBooking: failed to delete booking: %v", err)
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		// 4. Освобождаем ёмкость даты
		if err := uc.calendarRepo.Release(txCtx, booking.Date); err != nil {
			uc.logger.Error("CancelBooking: failed to release slot: %v", err)
			return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
		}

		// 5. Фиксируем отмену в журнале
		rec := &domain.BookingRecord{
			RequestID: booking.RequestID,
			BookingID: ptr.Ptr(booking.ID),
			UserID:    ptr.Ptr(booking.UserID),
			UserName:  ptr.Ptr(booking.UserName),
			UserEmail: ptr.Ptr(booking.UserEmail),
			Service:   booking.Service,
			Date:      booking.Date,
			Slot:      booking.Slot,
			Details:   booking.Details,
			Action:    domain.ActionCancelled,
			ActionBy:  ptr.Ptr(req.Actor.ID),
		}
		if err := uc.recordRepo.Create(txCtx, rec); err != nil {
			uc.logger.Error("CancelBooking: failed to write record: %v", err)
			return fmt.Errorf("%w: failed to write record: %v", ErrInternal, err)
		}

		cancelled = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, pgerrors.ErrSerializationFailure) {
			uc.logger.Warn("CancelBooking: transaction lost a concurrency race: %v", err)
			return nil, ErrConcurrentConflict
		}
		return nil, err
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled", req.BookingID)

	// Подписчикам нужен полный снимок: по одному ID освободившуюся
	// пару дата+слот не восстановить
	response := toResponse(cancelled)
	uc.notifier.Publish(notify.EventBookingDeleted, response)

	return response, nil
}

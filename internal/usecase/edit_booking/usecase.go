package edit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/booking"
	calendarRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/calendar"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/pkg/pgerrors"
	"github.com/m04kA/Parish-BookingService/pkg/ptr"
)

// UseCase use case административного редактирования бронирования
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

// Execute выполняет use case редактирования бронирования
// При переносе на другую дату ёмкость переезжает вместе с бронированием:
// новая дата резервируется, старая освобождается в той же транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: booking=%d, admin=%d, service=%s, date=%s, slot=%s",
		req.BookingID, req.AdminID, req.Service, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Нормализация слота и валидация входных данных
	req.Slot = domain.NormalizeSlot(req.Slot)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("EditBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		dateChanged := !isSameDay(booking.Date, req.Date)

		// 3. При переносе даты проверяем ёмкость новой даты
		if dateChanged {
			cal, err := uc.calendarRepo.GetByDate(txCtx, req.Date)
			if err != nil && !errors.Is(err, calendarRepo.ErrDateNotFound) {
				uc.logger.Error("EditBooking: failed to get calendar date: %v", err)
				return fmt.Errorf("%w: failed to get calendar date: %v", ErrInternal, err)
			}
			if cal == nil {
				cal = &domain.CalendarDate{
					Date:     req.Date,
					MaxSlots: domain.DefaultMaxSlots,
					Booked:   0,
				}
			}

			if cal.IsClosed() {
				uc.logger.Warn("EditBooking: date %s is closed", req.Date.Format(domain.DateFormat))
				return ErrDateClosed
			}
			if cal.IsFull() {
				uc.logger.Warn("EditBooking: date %s is full, %d/%d booked",
					req.Date.Format(domain.DateFormat), cal.Booked, cal.MaxSlots)
				return ErrNoCapacity
			}

			// 3.1. Переносим ёмкость: сначала резерв новой даты, потом
			// освобождение старой
			if err := uc.calendarRepo.Reserve(txCtx, req.Date, cal.MaxSlots); err != nil {
				uc.logger.Error("EditBooking: failed to reserve slot: %v", err)
				return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
			}
			if err := uc.calendarRepo.Release(txCtx, booking.Date); err != nil {
				uc.logger.Error("EditBooking: failed to release slot: %v", err)
				return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
			}
		}

		// 4. Проверяем эксклюзивность нового слота, не считая само бронирование
		if err := uc.checkExclusivity(txCtx, req, booking.ID); err != nil {
			return err
		}

		// 5. Обновляем поля бронирования
		booking.Service = req.Service
		booking.Date = req.Date
		booking.Slot = req.Slot
		booking.Details = req.Details

		if err := uc.bookingRepo.Update(txCtx, booking.ID, booking); err != nil {
			uc.logger.Error("EditBooking: failed to update booking: %v", err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		// 6. Фиксируем редактирование в журнале
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
			Action:    domain.ActionBookingEdited,
			ActionBy:  ptr.Ptr(req.AdminID),
		}
		if err := uc.recordRepo.Create(txCtx, rec); err != nil {
			uc.logger.Error("EditBooking: failed to write record: %v", err)
			return fmt.Errorf("%w: failed to write record: %v", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, pgerrors.ErrSerializationFailure) {
			uc.logger.Warn("EditBooking: transaction lost a concurrency race: %v", err)
			return nil, ErrConcurrentConflict
		}
		return nil, err
	}

	uc.logger.Info("EditBooking: successfully updated booking id=%d", result.ID)

	response := toResponse(result)
	uc.notifier.Publish(notify.EventBookingUpdated, response)

	return response, nil
}

// checkExclusivity проверяет конфликт эксклюзивных служб на новой паре
// дата+слот, исключая само редактируемое бронирование
func (uc *UseCase) checkExclusivity(ctx context.Context, req *Request, selfID int64) error {
	occupants, err := uc.bookingRepo.ListByDateSlot(ctx, req.Date, req.Slot)
	if err != nil {
		uc.logger.Error("EditBooking: failed to list slot occupants: %v", err)
		return fmt.Errorf("%w: failed to list slot occupants: %v", ErrInternal, err)
	}

	newExclusive := domain.IsExclusiveService(req.Service)

	for _, b := range occupants {
		if b.ID == selfID {
			continue
		}
		if newExclusive || domain.IsExclusiveService(b.Service) {
			uc.logger.Warn("EditBooking: slot %s %s conflicts with booking id=%d",
				req.Date.Format(domain.DateFormat), req.Slot, b.ID)
			return ErrSlotTaken
		}
	}

	return nil
}

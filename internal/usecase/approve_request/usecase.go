package approve_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/calendar"
	requestRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/request"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/pkg/pgerrors"
	"github.com/m04kA/Parish-BookingService/pkg/ptr"
)

// UseCase use case одобрения заявки администратором
type UseCase struct {
	requestRepo  RequestRepository
	bookingRepo  BookingRepository
	calendarRepo CalendarRepository
	recordRepo   RecordRepository
	txManager    TransactionManager
	notifier     Notifier
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	bookingRepo BookingRepository,
	calendarRepo CalendarRepository,
	recordRepo RecordRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		bookingRepo:  bookingRepo,
		calendarRepo: calendarRepo,
		recordRepo:   recordRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute выполняет use case одобрения заявки
// Проверка ёмкости, резервирование слота, создание бронирования и смена
// статуса заявки выполняются в одной сериализуемой транзакции: при отказе на
// любом шаге заявка остаётся pending, а счётчик даты не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveRequest: request=%d, admin=%d", req.RequestID, req.AdminID)

	if req.RequestID <= 0 {
		return nil, fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}
	if req.AdminID <= 0 {
		return nil, fmt.Errorf("%w: adminID must be positive", ErrInvalidInput)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем заявку с блокировкой строки
		request, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				uc.logger.Warn("ApproveRequest: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("ApproveRequest: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		if !request.IsPending() {
			uc.logger.Warn("ApproveRequest: request id=%d already %s", request.ID, request.Status)
			return ErrAlreadyDecided
		}

		// Слот из хранилища приводим к каноническому виду и перепроверяем:
		// строки, записанные мимо сервиса, не должны становиться бронированиями
		request.Slot = domain.NormalizeSlot(request.Slot)
		if !domain.IsValidSlot(request.Slot) {
			uc.logger.Error("ApproveRequest: request id=%d has invalid stored slot %q", request.ID, request.Slot)
			return fmt.Errorf("%w: stored slot %q is not valid", ErrInternal, request.Slot)
		}

		// 2. Получаем строку ёмкости даты с блокировкой
		// Отсутствие строки означает нетронутую дату с ёмкостью по умолчанию
		cal, err := uc.calendarRepo.GetByDate(txCtx, request.Date)
		if err != nil && !errors.Is(err, calendarRepo.ErrDateNotFound) {
			uc.logger.Error("ApproveRequest: failed to get calendar date: %v", err)
			return fmt.Errorf("%w: failed to get calendar date: %v", ErrInternal, err)
		}
		if cal == nil {
			cal = &domain.CalendarDate{
				Date:     request.Date,
				MaxSlots: domain.DefaultMaxSlots,
				Booked:   0,
			}
		}

		// 3. Проверяем ёмкость даты
		if cal.IsClosed() {
			uc.logger.Warn("ApproveRequest: date %s is closed", request.Date.Format(domain.DateFormat))
			return ErrDateClosed
		}
		if cal.IsFull() {
			uc.logger.Warn("ApproveRequest: date %s is full, %d/%d booked",
				request.Date.Format(domain.DateFormat), cal.Booked, cal.MaxSlots)
			return ErrNoCapacity
		}

		// 4. Проверяем эксклюзивность слота
		// Отпевание и венчание занимают свой слот целиком: ни второй такой
		// службе, ни обычной рядом с ней места нет
		if err := uc.checkExclusivity(txCtx, request); err != nil {
			return err
		}

		// 5. Резервируем слот на дате
		if err := uc.calendarRepo.Reserve(txCtx, request.Date, cal.MaxSlots); err != nil {
			uc.logger.Error("ApproveRequest: failed to reserve slot: %v", err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		// 6. Создаем бронирование из снимка заявки
		booking := &domain.Booking{
			UserID:    request.UserID,
			UserName:  request.UserName,
			UserEmail: request.UserEmail,
			Service:   request.Service,
			Date:      request.Date,
			Slot:      request.Slot,
			Details:   request.Details,
			RequestID: ptr.Ptr(request.ID),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("ApproveRequest: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 7. Переводим заявку в approved
		// Повторная проверка статуса в самом UPDATE закрывает гонку двух
		// администраторов на одной заявке
		if err := uc.requestRepo.SetStatus(txCtx, request.ID, domain.StatusApproved, req.AdminID); err != nil {
			if errors.Is(err, requestRepo.ErrNotPending) {
				return ErrAlreadyDecided
			}
			uc.logger.Error("ApproveRequest: failed to set status: %v", err)
			return fmt.Errorf("%w: failed to set status: %v", ErrInternal, err)
		}

		// 8. Фиксируем одобрение в журнале
		rec := &domain.BookingRecord{
			RequestID: ptr.Ptr(request.ID),
			BookingID: ptr.Ptr(created.ID),
			UserID:    ptr.Ptr(request.UserID),
			UserName:  ptr.Ptr(request.UserName),
			UserEmail: ptr.Ptr(request.UserEmail),
			Service:   request.Service,
			Date:      request.Date,
			Slot:      request.Slot,
			Details:   request.Details,
			Action:    domain.ActionApproved,
			ActionBy:  ptr.Ptr(req.AdminID),
		}
		if err := uc.recordRepo.Create(txCtx, rec); err != nil {
			uc.logger.Error("ApproveRequest: failed to write record: %v", err)
			return fmt.Errorf("%w: failed to write record: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, pgerrors.ErrSerializationFailure) {
			uc.logger.Warn("ApproveRequest: transaction lost a concurrency race: %v", err)
			return nil, ErrConcurrentConflict
		}
		return nil, err
	}

	uc.logger.Info("ApproveRequest: request id=%d approved, booking id=%d", req.RequestID, result.ID)

	response := toResponse(result)
	uc.notifier.Publish(notify.EventNewBooking, response)
	uc.notifier.Publish(notify.EventBookingRequestUpdated, &RequestUpdate{
		ID:     req.RequestID,
		Status: string(domain.StatusApproved),
	})

	return response, nil
}

// checkExclusivity проверяет конфликт эксклюзивных служб на паре дата+слот
func (uc *UseCase) checkExclusivity(ctx context.Context, request *domain.BookingRequest) error {
	occupants, err := uc.bookingRepo.ListByDateSlot(ctx, request.Date, request.Slot)
	if err != nil {
		uc.logger.Error("ApproveRequest: failed to list slot occupants: %v", err)
		return fmt.Errorf("%w: failed to list slot occupants: %v", ErrInternal, err)
	}

	if len(occupants) == 0 {
		return nil
	}

	if domain.IsExclusiveService(request.Service) {
		uc.logger.Warn("ApproveRequest: exclusive service %s conflicts with occupied slot %s %s",
			request.Service, request.Date.Format(domain.DateFormat), request.Slot)
		return ErrSlotTaken
	}

	for _, b := range occupants {
		if domain.IsExclusiveService(b.Service) {
			uc.logger.Warn("ApproveRequest: slot %s %s is held exclusively by booking id=%d",
				request.Date.Format(domain.DateFormat), request.Slot, b.ID)
			return ErrSlotTaken
		}
	}

	return nil
}

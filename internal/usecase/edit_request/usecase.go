package edit_request

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

// UseCase use case редактирования необработанной заявки
type UseCase struct {
	requestRepo  RequestRepository
	calendarRepo CalendarRepository
	recordRepo   RecordRepository
	txManager    TransactionManager
	notifier     Notifier
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	calendarRepo CalendarRepository,
	recordRepo RecordRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo:  requestRepo,
		calendarRepo: calendarRepo,
		recordRepo:   recordRepo,
		txManager:    txManager,
		notifier:     notifier,
		logger:       logger,
	}
}

// Execute выполняет use case редактирования заявки
// Редактировать заявку может только её владелец (либо администратор) и
// только пока по ней не принято решение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditRequest: request=%d, actor=%d, service=%s, date=%s, slot=%s",
		req.RequestID, req.Actor.ID, req.Service, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Нормализация слота и валидация входных данных
	req.Slot = domain.NormalizeSlot(req.Slot)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditRequest: validation failed: %v", err)
		return nil, err
	}

	var result *domain.BookingRequest

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем заявку с блокировкой строки
		request, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				uc.logger.Warn("EditRequest: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("EditRequest: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		// 3. Проверяем владение и статус
		if !request.IsOwnedBy(req.Actor.ID) && !req.Actor.IsAdmin() {
			uc.logger.Warn("EditRequest: request id=%d belongs to user=%d, actor=%d",
				request.ID, request.UserID, req.Actor.ID)
			return ErrForbidden
		}

		if !request.CanBeEdited() {
			uc.logger.Warn("EditRequest: request id=%d already %s", request.ID, request.Status)
			return ErrAlreadyDecided
		}

		// 4. Новая дата не должна быть закрыта
		cal, err := uc.calendarRepo.GetByDate(txCtx, req.Date)
		if err != nil && !errors.Is(err, calendarRepo.ErrDateNotFound) {
			uc.logger.Error("EditRequest: failed to get calendar date: %v", err)
			return fmt.Errorf("%w: failed to get calendar date: %v", ErrInternal, err)
		}
		if cal != nil && cal.IsClosed() {
			uc.logger.Warn("EditRequest: date %s is closed", req.Date.Format(domain.DateFormat))
			return ErrDateClosed
		}

		// 5. Обновляем поля заявки
		request.Service = req.Service
		request.Date = req.Date
		request.Slot = req.Slot
		request.Details = req.Details

		if err := uc.requestRepo.UpdateFields(txCtx, request.ID, request); err != nil {
			if errors.Is(err, requestRepo.ErrNotPending) {
				return ErrAlreadyDecided
			}
			uc.logger.Error("EditRequest: failed to update request: %v", err)
			return fmt.Errorf("%w: failed to update request: %v", ErrInternal, err)
		}

		// 6. Фиксируем редактирование в журнале
		rec := &domain.BookingRecord{
			RequestID: ptr.Ptr(request.ID),
			UserID:    ptr.Ptr(request.UserID),
			UserName:  ptr.Ptr(request.UserName),
			UserEmail: ptr.Ptr(request.UserEmail),
			Service:   request.Service,
			Date:      request.Date,
			Slot:      request.Slot,
			Details:   request.Details,
			Action:    domain.ActionRequestEdited,
			ActionBy:  ptr.Ptr(req.Actor.ID),
		}
		if err := uc.recordRepo.Create(txCtx, rec); err != nil {
			uc.logger.Error("EditRequest: failed to write record: %v", err)
			return fmt.Errorf("%w: failed to write record: %v", ErrInternal, err)
		}

		result = request
		return nil
	})

	if err != nil {
		if errors.Is(err, pgerrors.ErrSerializationFailure) {
			uc.logger.Warn("EditRequest: transaction lost a concurrency race: %v", err)
			return nil, ErrConcurrentConflict
		}
		return nil, err
	}

	uc.logger.Info("EditRequest: successfully updated request id=%d", result.ID)

	response := toResponse(result)
	uc.notifier.Publish(notify.EventBookingRequestUpdated, response)

	return response, nil
}

package submit_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/calendar"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/pkg/pgerrors"
	"github.com/m04kA/Parish-BookingService/pkg/ptr"
)

// UseCase use case подачи заявки на бронирование
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

// Execute выполняет use case подачи заявки
// Заявка не резервирует ёмкость даты: слот занимается только при одобрении.
// Закрытая дата (max_slots = 0) отклоняется сразу, чтобы не копить заведомо
// неисполнимые заявки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitRequest: user=%d, service=%s, date=%s, slot=%s",
		req.UserID, req.Service, req.Date.Format(domain.DateFormat), req.Slot)

	// 1. Нормализация слота и валидация входных данных
	req.Slot = domain.NormalizeSlot(req.Slot)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitRequest: validation failed: %v", err)
		return nil, err
	}

	var result *domain.BookingRequest

	// 2. Проверка даты и сохранение заявки в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Дата, закрытая администратором, отклоняется сразу
		cal, err := uc.calendarRepo.GetByDate(txCtx, req.Date)
		if err != nil && !errors.Is(err, calendarRepo.ErrDateNotFound) {
			uc.logger.Error("SubmitRequest: failed to get calendar date: %v", err)
			return fmt.Errorf("%w: failed to get calendar date: %v", ErrInternal, err)
		}
		if cal != nil && cal.IsClosed() {
			uc.logger.Warn("SubmitRequest: date %s is closed", req.Date.Format(domain.DateFormat))
			return ErrDateClosed
		}

		// 2.2. Сохраняем заявку со статусом pending
		request := &domain.BookingRequest{
			UserID:    req.UserID,
			UserName:  req.UserName,
			UserEmail: req.UserEmail,
			Service:   req.Service,
			Date:      req.Date,
			Slot:      req.Slot,
			Details:   req.Details,
		}

		created, err := uc.requestRepo.Create(txCtx, request)
		if err != nil {
			uc.logger.Error("SubmitRequest: failed to create request: %v", err)
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}

		// 2.3. Фиксируем подачу в журнале
		rec := &domain.BookingRecord{
			RequestID: ptr.Ptr(created.ID),
			UserID:    ptr.Ptr(created.UserID),
			UserName:  ptr.Ptr(created.UserName),
			UserEmail: ptr.Ptr(created.UserEmail),
			Service:   created.Service,
			Date:      created.Date,
			Slot:      created.Slot,
			Details:   created.Details,
			Action:    domain.ActionSubmitted,
			ActionBy:  ptr.Ptr(created.UserID),
		}
		if err := uc.recordRepo.Create(txCtx, rec); err != nil {
			uc.logger.Error("SubmitRequest: failed to write record: %v", err)
			return fmt.Errorf("%w: failed to write record: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, pgerrors.ErrSerializationFailure) {
			uc.logger.Warn("SubmitRequest: transaction lost a concurrency race: %v", err)
			return nil, ErrConcurrentConflict
		}
		return nil, err
	}

	uc.logger.Info("SubmitRequest: successfully created request id=%d", result.ID)

	response := toResponse(result)
	uc.notifier.Publish(notify.EventBookingRequestCreated, response)

	return response, nil
}

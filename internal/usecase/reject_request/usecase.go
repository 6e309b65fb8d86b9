package reject_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	requestRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/request"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/pkg/pgerrors"
	"github.com/m04kA/Parish-BookingService/pkg/ptr"
)

// UseCase use case отклонения заявки администратором
type UseCase struct {
	requestRepo RequestRepository
	recordRepo  RecordRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	requestRepo RequestRepository,
	recordRepo RecordRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		requestRepo: requestRepo,
		recordRepo:  recordRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute выполняет use case отклонения заявки
// Отклонение терминально и не трогает ёмкость даты: слот заявкой не занимался
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RejectRequest: request=%d, admin=%d", req.RequestID, req.AdminID)

	if req.RequestID <= 0 {
		return nil, fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}
	if req.AdminID <= 0 {
		return nil, fmt.Errorf("%w: adminID must be positive", ErrInvalidInput)
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем заявку с блокировкой строки
		request, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				uc.logger.Warn("RejectRequest: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("RejectRequest: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		if !request.IsPending() {
			uc.logger.Warn("RejectRequest: request id=%d already %s", request.ID, request.Status)
			return ErrAlreadyDecided
		}

		// 2. Переводим заявку в rejected
		if err := uc.requestRepo.SetStatus(txCtx, request.ID, domain.StatusRejected, req.AdminID); err != nil {
			if errors.Is(err, requestRepo.ErrNotPending) {
				return ErrAlreadyDecided
			}
			uc.logger.Error("RejectRequest: failed to set status: %v", err)
			return fmt.Errorf("%w: failed to set status: %v", ErrInternal, err)
		}

		// 3. Фиксируем отклонение в журнале
		rec := &domain.BookingRecord{
			RequestID: ptr.Ptr(request.ID),
			UserID:    ptr.Ptr(request.UserID),
			UserName:  ptr.Ptr(request.UserName),
			UserEmail: ptr.Ptr(request.UserEmail),
			Service:   request.Service,
			Date:      request.Date,
			Slot:      request.Slot,
			Details:   request.Details,
			Action:    domain.ActionRejected,
			Note:      req.Note,
			ActionBy:  ptr.Ptr(req.AdminID),
		}
		if err := uc.recordRepo.Create(txCtx, rec); err != nil {
			uc.logger.Error("RejectRequest: failed to write record: %v", err)
			return fmt.Errorf("%w: failed to write record: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, pgerrors.ErrSerializationFailure) {
			uc.logger.Warn("RejectRequest: transaction lost a concurrency race: %v", err)
			return nil, ErrConcurrentConflict
		}
		return nil, err
	}

	uc.logger.Info("RejectRequest: request id=%d rejected", req.RequestID)

	response := &Response{
		ID:     req.RequestID,
		Status: string(domain.StatusRejected),
	}
	uc.notifier.Publish(notify.EventBookingRequestUpdated, response)

	return response, nil
}

package requests

import (
	"context"
	"errors"
	"fmt"

	requestRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/request"
	"github.com/m04kA/Parish-BookingService/internal/service/requests/models"
)

// Service сервис чтения заявок на бронирование
type Service struct {
	requestRepo RequestRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(requestRepo RequestRepository, logger Logger) *Service {
	return &Service{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// GetByID получает заявку по идентификатору
// Проверка владения выполняется на уровне API
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RequestResponse, error) {
	s.logger.Info("GetByID: fetching request id=%d", id)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetByID: request id=%d not found", id)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetByID: repository error for request id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRequest(request), nil
}

// ListPending получает очередь необработанных заявок (старые первыми)
// Доступно только администраторам, проверка роли выполняется на уровне API
func (s *Service) ListPending(ctx context.Context) (*models.RequestListResponse, error) {
	s.logger.Info("ListPending: fetching pending requests")

	requests, err := s.requestRepo.ListPending(ctx)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPending: successfully fetched %d requests", len(requests))
	return models.FromDomainRequestList(requests), nil
}

// ListByUser получает заявки пользователя со всеми статусами (новые первыми)
func (s *Service) ListByUser(ctx context.Context, userID int64) (*models.RequestListResponse, error) {
	s.logger.Info("ListByUser: fetching requests for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	requests, err := s.requestRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByUser: successfully fetched %d requests for user=%d", len(requests), userID)
	return models.FromDomainRequestList(requests), nil
}

package records

import (
	"context"
	"fmt"

	"github.com/m04kA/Parish-BookingService/internal/service/records/models"
)

// Service сервис чтения журнала бронирований
type Service struct {
	recordRepo RecordRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса журнала
func NewService(recordRepo RecordRepository, logger Logger) *Service {
	return &Service{
		recordRepo: recordRepo,
		logger:     logger,
	}
}

// List получает записи журнала (новые первыми)
// Доступно только администраторам, проверка роли выполняется на уровне API
func (s *Service) List(ctx context.Context) (*models.RecordListResponse, error) {
	s.logger.Info("List: fetching booking records")

	records, err := s.recordRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d records", len(records))
	return models.FromDomainRecordList(records), nil
}

package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	eventRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/event"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/internal/service/events/models"
)

// Service сервис приходских событий-анонсов
type Service struct {
	eventRepo EventRepository
	notifier  Notifier
	logger    Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(eventRepo EventRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		eventRepo: eventRepo,
		notifier:  notifier,
		logger:    logger,
	}
}

// List получает все события (ближайшие первыми)
func (s *Service) List(ctx context.Context) (*models.EventListResponse, error) {
	s.logger.Info("List: fetching parish events")

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d events", len(events))
	return models.FromDomainEventList(events), nil
}

// Create создает новое событие
// Доступно только администраторам, проверка роли выполняется на уровне API
func (s *Service) Create(ctx context.Context, req *models.EventRequest) (*models.EventResponse, error) {
	s.logger.Info("Create: title=%s, date=%s", req.Title, req.Date)

	event, err := toDomainEvent(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created event id=%d", created.ID)

	response := models.FromDomainEvent(created)
	s.notifier.Publish(notify.EventEventCreated, response)

	return response, nil
}

// Update обновляет событие
func (s *Service) Update(ctx context.Context, id int64, req *models.EventRequest) (*models.EventResponse, error) {
	s.logger.Info("Update: event=%d, title=%s, date=%s", id, req.Title, req.Date)

	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	event, err := toDomainEvent(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, id, event); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Update: event id=%d not found", id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("Update: repository error for event id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	event.ID = id

	s.logger.Info("Update: successfully updated event id=%d", id)

	response := models.FromDomainEvent(event)
	s.notifier.Publish(notify.EventEventUpdated, response)

	return response, nil
}

// Delete удаляет событие
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: event=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("Delete: event id=%d not found", id)
			return ErrEventNotFound
		}
		s.logger.Error("Delete: repository error for event id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted event id=%d", id)

	s.notifier.Publish(notify.EventEventDeleted, &models.EventResponse{ID: id})

	return nil
}

// toDomainEvent валидирует запрос и конвертирует его в доменную модель
func toDomainEvent(req *models.EventRequest) (*domain.ParishEvent, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	return &domain.ParishEvent{
		Title:       strings.TrimSpace(req.Title),
		Date:        date,
		Time:        strings.TrimSpace(req.Time),
		Description: req.Description,
	}, nil
}

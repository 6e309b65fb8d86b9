package models

import "github.com/m04kA/Parish-BookingService/internal/domain"

// EventRequest запрос на создание или обновление события
type EventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"` // "2025-10-15"
	Time        string `json:"time"`
	Description string `json:"description"`
}

// EventResponse ответ с данными события
type EventResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // "2025-10-15"
	Time        string `json:"time"`
	Description string `json:"description"`
}

// EventListResponse список событий
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// FromDomainEvent конвертирует доменную модель события в response
func FromDomainEvent(e *domain.ParishEvent) *EventResponse {
	return &EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date.Format(domain.DateFormat),
		Time:        e.Time,
		Description: e.Description,
	}
}

// FromDomainEventList конвертирует список доменных моделей в response
func FromDomainEventList(events []*domain.ParishEvent) *EventListResponse {
	result := make([]EventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, *FromDomainEvent(e))
	}
	return &EventListResponse{Events: result}
}

package models

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// RequestResponse ответ с данными заявки
type RequestResponse struct {
	ID         int64             `json:"id"`
	UserID     int64             `json:"userId"`
	UserName   string            `json:"userName"`
	UserEmail  string            `json:"userEmail"`
	Service    string            `json:"service"`
	Date       string            `json:"date"` // "2025-10-15"
	Slot       string            `json:"slot"`
	Details    map[string]string `json:"details"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"createdAt"`
	ReviewedBy *int64            `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time        `json:"reviewedAt,omitempty"`
}

// RequestListResponse список заявок
type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
}

// FromDomainRequest конвертирует доменную модель заявки в response
func FromDomainRequest(req *domain.BookingRequest) *RequestResponse {
	return &RequestResponse{
		ID:         req.ID,
		UserID:     req.UserID,
		UserName:   req.UserName,
		UserEmail:  req.UserEmail,
		Service:    req.Service,
		Date:       req.Date.Format(domain.DateFormat),
		Slot:       req.Slot,
		Details:    req.Details,
		Status:     string(req.Status),
		CreatedAt:  req.CreatedAt,
		ReviewedBy: req.ReviewedBy,
		ReviewedAt: req.ReviewedAt,
	}
}

// FromDomainRequestList конвертирует список доменных моделей в response
func FromDomainRequestList(requests []*domain.BookingRequest) *RequestListResponse {
	result := make([]RequestResponse, 0, len(requests))
	for _, req := range requests {
		result = append(result, *FromDomainRequest(req))
	}
	return &RequestListResponse{Requests: result}
}

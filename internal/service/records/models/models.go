package models

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// RecordResponse запись журнала бронирований
type RecordResponse struct {
	ID        int64             `json:"id"`
	RequestID *int64            `json:"requestId,omitempty"`
	BookingID *int64            `json:"bookingId,omitempty"`
	UserID    *int64            `json:"userId,omitempty"`
	UserName  *string           `json:"userName,omitempty"`
	UserEmail *string           `json:"userEmail,omitempty"`
	Service   string            `json:"service"`
	Date      string            `json:"date"` // "2025-10-15"
	Slot      string            `json:"slot"`
	Details   map[string]string `json:"details"`
	Action    string            `json:"action"`
	Note      *string           `json:"note,omitempty"`
	ActionBy  *int64            `json:"actionBy,omitempty"`
	ActionAt  time.Time         `json:"actionAt"`
}

// RecordListResponse список записей журнала
type RecordListResponse struct {
	Records []RecordResponse `json:"records"`
}

// FromDomainRecord конвертирует доменную модель записи в response
func FromDomainRecord(rec *domain.BookingRecord) *RecordResponse {
	return &RecordResponse{
		ID:        rec.ID,
		RequestID: rec.RequestID,
		BookingID: rec.BookingID,
		UserID:    rec.UserID,
		UserName:  rec.UserName,
		UserEmail: rec.UserEmail,
		Service:   rec.Service,
		Date:      rec.Date.Format(domain.DateFormat),
		Slot:      rec.Slot,
		Details:   rec.Details,
		Action:    string(rec.Action),
		Note:      rec.Note,
		ActionBy:  rec.ActionBy,
		ActionAt:  rec.ActionAt,
	}
}

// FromDomainRecordList конвертирует список доменных моделей в response
func FromDomainRecordList(records []*domain.BookingRecord) *RecordListResponse {
	result := make([]RecordResponse, 0, len(records))
	for _, rec := range records {
		result = append(result, *FromDomainRecord(rec))
	}
	return &RecordListResponse{Records: result}
}

package models

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"userId"`
	UserName  string            `json:"userName"`
	UserEmail string            `json:"userEmail"`
	Service   string            `json:"service"`
	Date      string            `json:"date"` // "2025-10-15"
	Slot      string            `json:"slot"`
	Details   map[string]string `json:"details"`
	RequestID *int64            `json:"requestId,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BookedSlotResponse занятая пара дата+слот
type BookedSlotResponse struct {
	Date string `json:"date"` // "2025-10-15"
	Slot string `json:"slot"`
}

// BookedSlotListResponse список занятых слотов
type BookedSlotListResponse struct {
	Slots []BookedSlotResponse `json:"slots"`
}

// FromDomainBooking конвертирует доменную модель бронирования в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		UserEmail: b.UserEmail,
		Service:   b.Service,
		Date:      b.Date.Format(domain.DateFormat),
		Slot:      b.Slot,
		Details:   b.Details,
		RequestID: b.RequestID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// FromDomainBookedSlots конвертирует занятые слоты в response
func FromDomainBookedSlots(slots []domain.BookedSlot) *BookedSlotListResponse {
	result := make([]BookedSlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, BookedSlotResponse{
			Date: s.Date.Format(domain.DateFormat),
			Slot: s.Slot,
		})
	}
	return &BookedSlotListResponse{Slots: result}
}

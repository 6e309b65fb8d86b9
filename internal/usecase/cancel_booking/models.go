package cancel_booking

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64            // ID бронирования
	Actor     domain.Principal // Инициатор отмены
}

// Response модель ответа об отмене: снимок удалённого бронирования,
// чтобы подписчики уведомлений знали, какая дата и слот освободились
type Response struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Service   string    `json:"service"`
	Date      time.Time `json:"date"`
	Slot      string    `json:"slot"`
	RequestID *int64    `json:"requestId,omitempty"`
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		UserID:    b.UserID,
		Service:   b.Service,
		Date:      b.Date,
		Slot:      b.Slot,
		RequestID: b.RequestID,
	}
}

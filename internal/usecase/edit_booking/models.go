package edit_booking

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// Request модель запроса на редактирование бронирования
type Request struct {
	BookingID int64          // ID бронирования
	AdminID   int64          // ID редактирующего администратора
	Service   string         // Новый тип службы
	Date      time.Time      // Новая дата
	Slot      string         // Новый слот
	Details   domain.Details // Новая анкета службы
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	ID        int64
	UserID    int64
	UserName  string
	UserEmail string
	Service   string
	Date      time.Time
	Slot      string
	Details   domain.Details
	RequestID *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:        b.ID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		UserEmail: b.UserEmail,
		Service:   b.Service,
		Date:      b.Date,
		Slot:      b.Slot,
		Details:   b.Details,
		RequestID: b.RequestID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

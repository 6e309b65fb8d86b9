package approve_request

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// Request модель запроса на одобрение заявки
type Request struct {
	RequestID int64 // ID заявки
	AdminID   int64 // ID одобряющего администратора
}

// Response модель ответа с созданным бронированием
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

// RequestUpdate уведомление об изменении статуса заявки
type RequestUpdate struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
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

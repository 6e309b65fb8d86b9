package edit_request

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// Request модель запроса на редактирование заявки
type Request struct {
	RequestID int64            // ID заявки
	Actor     domain.Principal // Инициатор редактирования
	Service   string           // Новый тип службы
	Date      time.Time        // Новая дата
	Slot      string           // Новый слот
	Details   domain.Details   // Новая анкета службы
}

// Response модель ответа с обновлённой заявкой
type Response struct {
	ID        int64
	UserID    int64
	UserName  string
	UserEmail string
	Service   string
	Date      time.Time
	Slot      string
	Details   domain.Details
	Status    string
	CreatedAt time.Time
}

func toResponse(req *domain.BookingRequest) *Response {
	return &Response{
		ID:        req.ID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Service:   req.Service,
		Date:      req.Date,
		Slot:      req.Slot,
		Details:   req.Details,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
	}
}

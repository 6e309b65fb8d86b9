package submit_request

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// Request модель запроса на подачу заявки
type Request struct {
	UserID    int64          // ID подающего пользователя
	UserName  string         // Имя пользователя
	UserEmail string         // Email пользователя
	Service   string         // Тип службы (counseling, baptism, wedding, ...)
	Date      time.Time      // Желаемая дата (без времени)
	Slot      string         // Слот: "AM", "PM" или "HH:MM"
	Details   domain.Details // Анкета службы
}

// Response модель ответа с созданной заявкой
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

package edit_booking

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	editBooking "github.com/m04kA/Parish-BookingService/internal/usecase/edit_booking"
)

// EditBookingRequest HTTP request model
type EditBookingRequest struct {
	Service string            `json:"service"`
	Date    string            `json:"date"` // "2025-10-15"
	Slot    string            `json:"slot"`
	Details map[string]string `json:"details"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"userId"`
	UserName  string            `json:"userName"`
	UserEmail string            `json:"userEmail"`
	Service   string            `json:"service"`
	Date      string            `json:"date"`
	Slot      string            `json:"slot"`
	Details   map[string]string `json:"details"`
	RequestID *int64            `json:"requestId,omitempty"`
	CreatedAt string            `json:"createdAt"`
	UpdatedAt string            `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditBookingRequest) ToUseCaseRequest(bookingID, adminID int64) (*editBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &editBooking.Request{
		BookingID: bookingID,
		AdminID:   adminID,
		Service:   r.Service,
		Date:      date,
		Slot:      r.Slot,
		Details:   r.Details,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		UserName:  resp.UserName,
		UserEmail: resp.UserEmail,
		Service:   resp.Service,
		Date:      resp.Date.Format(domain.DateFormat),
		Slot:      resp.Slot,
		Details:   resp.Details,
		RequestID: resp.RequestID,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}

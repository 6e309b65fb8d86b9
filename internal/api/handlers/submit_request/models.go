package submit_request

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	submitRequest "github.com/m04kA/Parish-BookingService/internal/usecase/submit_request"
)

// SubmitRequestRequest HTTP request model
type SubmitRequestRequest struct {
	Service string            `json:"service"`
	Date    string            `json:"date"` // "2025-10-15"
	Slot    string            `json:"slot"` // "AM", "PM" или "HH:MM"
	Details map[string]string `json:"details"`
}

// RequestResponse HTTP response model
type RequestResponse struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"userId"`
	UserName  string            `json:"userName"`
	UserEmail string            `json:"userEmail"`
	Service   string            `json:"service"`
	Date      string            `json:"date"`
	Slot      string            `json:"slot"`
	Details   map[string]string `json:"details"`
	Status    string            `json:"status"`
	CreatedAt string            `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitRequestRequest) ToUseCaseRequest(principal domain.Principal) (*submitRequest.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &submitRequest.Request{
		UserID:    principal.ID,
		UserName:  principal.Name,
		UserEmail: principal.Email,
		Service:   r.Service,
		Date:      date,
		Slot:      r.Slot,
		Details:   r.Details,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitRequest.Response) *RequestResponse {
	return &RequestResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		UserName:  resp.UserName,
		UserEmail: resp.UserEmail,
		Service:   resp.Service,
		Date:      resp.Date.Format(domain.DateFormat),
		Slot:      resp.Slot,
		Details:   resp.Details,
		Status:    resp.Status,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}

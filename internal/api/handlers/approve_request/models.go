package approve_request

import (
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	approveRequest "github.com/m04kA/Parish-BookingService/internal/usecase/approve_request"
)

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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *approveRequest.Response) *BookingResponse {
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

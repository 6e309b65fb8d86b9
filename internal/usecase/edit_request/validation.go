package edit_request

import (
	"fmt"
	"strings"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Слот к этому моменту уже нормализован
func validateRequest(req *Request) error {
	if req.RequestID <= 0 {
		return fmt.Errorf("%w: requestID must be positive", ErrInvalidInput)
	}

	if req.Actor.ID <= 0 {
		return fmt.Errorf("%w: actor is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Service) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !domain.IsValidSlot(req.Slot) {
		return fmt.Errorf("%w: slot must be AM, PM or HH:MM on a half-hour", ErrInvalidInput)
	}

	if verr := domain.ValidateServiceDetails(req.Service, req.Details); verr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDetails, verr)
	}

	return nil
}

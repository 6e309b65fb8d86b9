package edit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Parish-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Слот к этому моменту уже нормализован
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.AdminID <= 0 {
		return fmt.Errorf("%w: adminID must be positive", ErrInvalidInput)
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

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

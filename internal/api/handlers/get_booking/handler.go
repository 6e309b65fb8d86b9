package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	bookingsService "github.com/m04kA/Parish-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgForbidden        = "бронирование принадлежит другому пользователю"
	msgUnauthorized     = "требуется аутентификация"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/%d - Failed to fetch booking: error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Бронирование видит только его владелец либо администратор
	if result.UserID != principal.ID && !principal.IsAdmin() {
		h.logger.Warn("GET /bookings/%d - Access denied: user_id=%d", bookingID, principal.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	h.logger.Info("GET /bookings/%d - Fetched successfully: user_id=%d", bookingID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

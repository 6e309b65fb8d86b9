package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	cancelBooking "github.com/m04kA/Parish-BookingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "бронирование принадлежит другому пользователю"
	msgUnauthorized       = "требуется аутентификация"
	msgConcurrentConflict = "конфликт одновременных операций, повторите попытку"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
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

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		BookingID: bookingID,
		Actor:     principal,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, cancelBooking.ErrForbidden):
			h.logger.Warn("DELETE /bookings/%d - Access denied: user_id=%d", bookingID, principal.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, cancelBooking.ErrConcurrentConflict):
			h.logger.Warn("DELETE /bookings/%d - Concurrent conflict", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		default:
			h.logger.Error("DELETE /bookings/%d - Failed to cancel: user_id=%d, error=%v",
				bookingID, principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%d - Cancelled successfully: user_id=%d", bookingID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package edit_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	"github.com/m04kA/Parish-BookingService/internal/domain"
	editBooking "github.com/m04kA/Parish-BookingService/internal/usecase/edit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный идентификатор бронирования"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные бронирования"
	msgAdminOnly          = "операция доступна только администратору"
	msgBookingNotFound    = "бронирование не найдено"
	msgDateClosed         = "дата закрыта для бронирования"
	msgNoCapacity         = "на выбранную дату не осталось мест"
	msgSlotTaken          = "слот занят эксклюзивной службой"
	msgConcurrentConflict = "конфликт одновременных операций, повторите попытку"
)

type Handler struct {
	useCase EditBookingUseCase
	logger  Logger
}

func NewHandler(useCase EditBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || !principal.IsAdmin() {
		h.logger.Warn("PUT /bookings/{id} - Access denied: user_id=%d", principal.ID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req EditBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, principal.ID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse date: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var detailsErr *domain.DetailsValidationError

		switch {
		case errors.As(err, &detailsErr):
			h.logger.Warn("PUT /bookings/%d - Invalid details: reason=%s", bookingID, detailsErr.Reason)
			handlers.RespondBadRequest(w, detailsErr.Reason)

		case errors.Is(err, editBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%d - Invalid input: %v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, editBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, editBooking.ErrDateClosed):
			h.logger.Warn("PUT /bookings/%d - Date closed: date=%s", bookingID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateClosed)

		case errors.Is(err, editBooking.ErrNoCapacity):
			h.logger.Warn("PUT /bookings/%d - No capacity: date=%s", bookingID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgNoCapacity)

		case errors.Is(err, editBooking.ErrSlotTaken):
			h.logger.Warn("PUT /bookings/%d - Slot taken", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, editBooking.ErrConcurrentConflict):
			h.logger.Warn("PUT /bookings/%d - Concurrent conflict", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to edit booking: admin_id=%d, error=%v",
				bookingID, principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/%d - Booking updated successfully: admin_id=%d", bookingID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

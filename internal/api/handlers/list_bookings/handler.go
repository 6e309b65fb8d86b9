package list_bookings

import (
	"net/http"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
)

const msgUnauthorized = "требуется аутентификация"

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

// Handle GET /api/v1/bookings
// Администратор видит все бронирования, участник — только свои
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var err error
	var result interface{}

	if principal.IsAdmin() {
		result, err = h.service.List(r.Context())
	} else {
		result, err = h.service.ListByUser(r.Context(), principal.ID)
	}

	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", principal.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Listed bookings for user_id=%d (admin=%t)", principal.ID, principal.IsAdmin())
	handlers.RespondJSON(w, http.StatusOK, result)
}

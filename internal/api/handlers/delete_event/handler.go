package delete_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	eventsService "github.com/m04kA/Parish-BookingService/internal/service/events"
)

const (
	msgInvalidEventID = "некорректный идентификатор события"
	msgAdminOnly      = "операция доступна только администратору"
	msgEventNotFound  = "событие не найдено"
)

type Handler struct {
	service EventsService
	logger  Logger
}

func NewHandler(service EventsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || !principal.IsAdmin() {
		h.logger.Warn("DELETE /events/{id} - Access denied: user_id=%d", principal.ID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil || eventID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	if err := h.service.Delete(r.Context(), eventID); err != nil {
		switch {
		case errors.Is(err, eventsService.ErrEventNotFound):
			h.logger.Warn("DELETE /events/%d - Event not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, eventsService.ErrInvalidInput):
			h.logger.Warn("DELETE /events/%d - Invalid input: %v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidEventID)

		default:
			h.logger.Error("DELETE /events/%d - Failed to delete event: admin_id=%d, error=%v",
				eventID, principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /events/%d - Event deleted successfully: admin_id=%d", eventID, principal.ID)
	w.WriteHeader(http.StatusNoContent)
}

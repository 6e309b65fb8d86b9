package update_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	eventsService "github.com/m04kA/Parish-BookingService/internal/service/events"
	"github.com/m04kA/Parish-BookingService/internal/service/events/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEventID     = "некорректный идентификатор события"
	msgInvalidInput       = "некорректные данные события"
	msgAdminOnly          = "операция доступна только администратору"
	msgEventNotFound      = "событие не найдено"
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

// Handle PUT /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || !principal.IsAdmin() {
		h.logger.Warn("PUT /events/{id} - Access denied: user_id=%d", principal.ID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil || eventID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req models.EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /events/%d - Invalid request body: %v", eventID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), eventID, &req)
	if err != nil {
		switch {
		case errors.Is(err, eventsService.ErrEventNotFound):
			h.logger.Warn("PUT /events/%d - Event not found", eventID)
			handlers.RespondNotFound(w, msgEventNotFound)

		case errors.Is(err, eventsService.ErrInvalidInput):
			h.logger.Warn("PUT /events/%d - Invalid input: %v", eventID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /events/%d - Failed to update event: admin_id=%d, error=%v",
				eventID, principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /events/%d - Event updated successfully: admin_id=%d", eventID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

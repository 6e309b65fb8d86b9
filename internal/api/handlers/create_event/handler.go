package create_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	eventsService "github.com/m04kA/Parish-BookingService/internal/service/events"
	"github.com/m04kA/Parish-BookingService/internal/service/events/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные события"
	msgAdminOnly          = "операция доступна только администратору"
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

// Handle POST /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || !principal.IsAdmin() {
		h.logger.Warn("POST /events - Access denied: user_id=%d", principal.ID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	var req models.EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, eventsService.ErrInvalidInput):
			h.logger.Warn("POST /events - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /events - Failed to create event: admin_id=%d, error=%v",
				principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events - Event created successfully: id=%d, admin_id=%d", result.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

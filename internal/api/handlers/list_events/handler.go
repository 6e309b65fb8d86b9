package list_events

import (
	"net/http"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /events - Failed to fetch events: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /events - Fetched %d events", len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_calendar

import (
	"net/http"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /calendar - Failed to fetch calendar: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar - Fetched %d dates", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result)
}

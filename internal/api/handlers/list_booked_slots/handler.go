package list_booked_slots

import (
	"net/http"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/booked-slots
// Публичный календарь занятости: пары дата+слот без данных владельцев
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSlots(r.Context())
	if err != nil {
		h.logger.Error("GET /booked-slots - Failed to list booked slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booked-slots - Listed %d booked slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_my_requests

import (
	"net/http"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
)

const msgUnauthorized = "требуется аутентификация"

type Handler struct {
	service RequestsService
	logger  Logger
}

func NewHandler(service RequestsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/my/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListByUser(r.Context(), principal.ID)
	if err != nil {
		h.logger.Error("GET /my/requests - Failed to list requests: user_id=%d, error=%v", principal.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /my/requests - Listed %d requests for user_id=%d", len(result.Requests), principal.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_pending_requests

import (
	"net/http"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
)

const msgAdminOnly = "операция доступна только администратору"

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

// Handle GET /api/v1/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || !principal.IsAdmin() {
		h.logger.Warn("GET /requests - Access denied: user_id=%d", principal.ID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	result, err := h.service.ListPending(r.Context())
	if err != nil {
		h.logger.Error("GET /requests - Failed to list pending requests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /requests - Listed %d pending requests for admin_id=%d", len(result.Requests), principal.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package list_booking_records

import (
	"net/http"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
)

const msgAdminOnly = "операция доступна только администратору"

type Handler struct {
	service RecordsService
	logger  Logger
}

func NewHandler(service RecordsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/records
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || !principal.IsAdmin() {
		h.logger.Warn("GET /records - Access denied: user_id=%d", principal.ID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /records - Failed to fetch records: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /records - Fetched %d records: admin_id=%d", len(result.Records), principal.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	requestsService "github.com/m04kA/Parish-BookingService/internal/service/requests"
)

const (
	msgInvalidRequestID = "некорректный идентификатор заявки"
	msgRequestNotFound  = "заявка не найдена"
	msgForbidden        = "заявка принадлежит другому пользователю"
	msgUnauthorized     = "требуется аутентификация"
)

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

// Handle GET /api/v1/requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil || requestID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.service.GetByID(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, requestsService.ErrRequestNotFound):
			h.logger.Warn("GET /requests/%d - Request not found", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, requestsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		default:
			h.logger.Error("GET /requests/%d - Failed to fetch request: error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Заявку видит только её владелец либо администратор
	if result.UserID != principal.ID && !principal.IsAdmin() {
		h.logger.Warn("GET /requests/%d - Access denied: user_id=%d", requestID, principal.ID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	h.logger.Info("GET /requests/%d - Fetched successfully: user_id=%d", requestID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

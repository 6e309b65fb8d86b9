package reject_request

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	rejectRequest "github.com/m04kA/Parish-BookingService/internal/usecase/reject_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequestID   = "некорректный идентификатор заявки"
	msgAdminOnly          = "операция доступна только администратору"
	msgRequestNotFound    = "заявка не найдена"
	msgAlreadyDecided     = "по заявке уже принято решение"
	msgConcurrentConflict = "конфликт одновременных операций, повторите попытку"
)

type Handler struct {
	useCase RejectRequestUseCase
	logger  Logger
}

func NewHandler(useCase RejectRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{requestId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || !principal.IsAdmin() {
		h.logger.Warn("POST /requests/{id}/reject - Access denied: user_id=%d", principal.ID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil || requestID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	// Тело с причиной опционально
	var req RejectRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /requests/%d/reject - Invalid request body: %v", requestID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rejectRequest.Request{
		RequestID: requestID,
		AdminID:   principal.ID,
		Note:      req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, rejectRequest.ErrRequestNotFound):
			h.logger.Warn("POST /requests/%d/reject - Request not found", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, rejectRequest.ErrAlreadyDecided):
			h.logger.Warn("POST /requests/%d/reject - Already decided", requestID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyDecided)

		case errors.Is(err, rejectRequest.ErrInvalidInput):
			h.logger.Warn("POST /requests/%d/reject - Invalid input: %v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		case errors.Is(err, rejectRequest.ErrConcurrentConflict):
			h.logger.Warn("POST /requests/%d/reject - Concurrent conflict", requestID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		default:
			h.logger.Error("POST /requests/%d/reject - Failed to reject: admin_id=%d, error=%v",
				requestID, principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests/%d/reject - Rejected successfully: admin_id=%d", requestID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package approve_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	approveRequest "github.com/m04kA/Parish-BookingService/internal/usecase/approve_request"
)

const (
	msgInvalidRequestID   = "некорректный идентификатор заявки"
	msgAdminOnly          = "операция доступна только администратору"
	msgRequestNotFound    = "заявка не найдена"
	msgAlreadyDecided     = "по заявке уже принято решение"
	msgDateClosed         = "дата закрыта для бронирования"
	msgNoCapacity         = "на выбранную дату не осталось мест"
	msgSlotTaken          = "слот занят эксклюзивной службой"
	msgConcurrentConflict = "конфликт одновременных операций, повторите попытку"
)

type Handler struct {
	useCase ApproveRequestUseCase
	logger  Logger
}

func NewHandler(useCase ApproveRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{requestId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || !principal.IsAdmin() {
		h.logger.Warn("POST /requests/{id}/approve - Access denied: user_id=%d", principal.ID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	requestID, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil || requestID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveRequest.Request{
		RequestID: requestID,
		AdminID:   principal.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveRequest.ErrRequestNotFound):
			h.logger.Warn("POST /requests/%d/approve - Request not found", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, approveRequest.ErrAlreadyDecided):
			h.logger.Warn("POST /requests/%d/approve - Already decided", requestID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyDecided)

		case errors.Is(err, approveRequest.ErrDateClosed):
			h.logger.Warn("POST /requests/%d/approve - Date closed", requestID)
			handlers.RespondError(w, http.StatusConflict, msgDateClosed)

		case errors.Is(err, approveRequest.ErrNoCapacity):
			h.logger.Warn("POST /requests/%d/approve - No capacity", requestID)
			handlers.RespondError(w, http.StatusConflict, msgNoCapacity)

		case errors.Is(err, approveRequest.ErrSlotTaken):
			h.logger.Warn("POST /requests/%d/approve - Slot taken", requestID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, approveRequest.ErrInvalidInput):
			h.logger.Warn("POST /requests/%d/approve - Invalid input: %v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		case errors.Is(err, approveRequest.ErrConcurrentConflict):
			h.logger.Warn("POST /requests/%d/approve - Concurrent conflict", requestID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		default:
			h.logger.Error("POST /requests/%d/approve - Failed to approve: admin_id=%d, error=%v",
				requestID, principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests/%d/approve - Approved successfully: booking_id=%d, admin_id=%d",
		requestID, result.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

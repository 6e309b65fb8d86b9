package edit_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	"github.com/m04kA/Parish-BookingService/internal/domain"
	editRequest "github.com/m04kA/Parish-BookingService/internal/usecase/edit_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequestID   = "некорректный идентификатор заявки"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные заявки"
	msgRequestNotFound    = "заявка не найдена"
	msgForbidden          = "заявка принадлежит другому пользователю"
	msgAlreadyDecided     = "по заявке уже принято решение"
	msgDateClosed         = "дата закрыта для бронирования"
	msgUnauthorized       = "требуется аутентификация"
	msgConcurrentConflict = "конфликт одновременных операций, повторите попытку"
)

type Handler struct {
	useCase EditRequestUseCase
	logger  Logger
}

func NewHandler(useCase EditRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/requests/{requestId}
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

	var req EditRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /requests/%d - Invalid request body: %v", requestID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(requestID, principal)
	if err != nil {
		h.logger.Warn("PUT /requests/%d - Failed to parse date: %v", requestID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var detailsErr *domain.DetailsValidationError

		switch {
		case errors.As(err, &detailsErr):
			h.logger.Warn("PUT /requests/%d - Invalid details: reason=%s", requestID, detailsErr.Reason)
			handlers.RespondBadRequest(w, detailsErr.Reason)

		case errors.Is(err, editRequest.ErrInvalidInput):
			h.logger.Warn("PUT /requests/%d - Invalid input: %v", requestID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, editRequest.ErrRequestNotFound):
			h.logger.Warn("PUT /requests/%d - Request not found", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, editRequest.ErrForbidden):
			h.logger.Warn("PUT /requests/%d - Access denied: user_id=%d", requestID, principal.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, editRequest.ErrAlreadyDecided):
			h.logger.Warn("PUT /requests/%d - Already decided", requestID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyDecided)

		case errors.Is(err, editRequest.ErrDateClosed):
			h.logger.Warn("PUT /requests/%d - Date closed: date=%s", requestID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateClosed)

		case errors.Is(err, editRequest.ErrConcurrentConflict):
			h.logger.Warn("PUT /requests/%d - Concurrent conflict", requestID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		default:
			h.logger.Error("PUT /requests/%d - Failed to edit request: %v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /requests/%d - Request updated successfully: user_id=%d", requestID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package submit_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	"github.com/m04kA/Parish-BookingService/internal/domain"
	submitRequest "github.com/m04kA/Parish-BookingService/internal/usecase/submit_request"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные заявки"
	msgDateClosed         = "дата закрыта для бронирования"
	msgConcurrentConflict = "конфликт одновременных операций, повторите попытку"
)

type Handler struct {
	useCase SubmitRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidInput)
		return
	}

	var req SubmitRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(principal)
	if err != nil {
		h.logger.Warn("POST /requests - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var detailsErr *domain.DetailsValidationError

		switch {
		case errors.As(err, &detailsErr):
			h.logger.Warn("POST /requests - Invalid details: user_id=%d, reason=%s", principal.ID, detailsErr.Reason)
			handlers.RespondBadRequest(w, detailsErr.Reason)

		case errors.Is(err, submitRequest.ErrInvalidInput):
			h.logger.Warn("POST /requests - Invalid input: user_id=%d, error=%v", principal.ID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, submitRequest.ErrDateClosed):
			h.logger.Warn("POST /requests - Date closed: user_id=%d, date=%s", principal.ID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgDateClosed)

		case errors.Is(err, submitRequest.ErrConcurrentConflict):
			h.logger.Warn("POST /requests - Concurrent conflict: user_id=%d", principal.ID)
			handlers.RespondError(w, http.StatusConflict, msgConcurrentConflict)

		default:
			h.logger.Error("POST /requests - Failed to submit request: user_id=%d, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests - Request submitted successfully: request_id=%d, user_id=%d", result.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

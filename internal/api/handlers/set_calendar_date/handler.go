package set_calendar_date

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/Parish-BookingService/internal/api/handlers"
	"github.com/m04kA/Parish-BookingService/internal/api/middleware"
	"github.com/m04kA/Parish-BookingService/internal/domain"
	calendarService "github.com/m04kA/Parish-BookingService/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidMaxSlots    = "maxSlots не может быть отрицательным"
	msgAdminOnly          = "операция доступна только администратору"
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

// Handle PUT /api/v1/calendar/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok || !principal.IsAdmin() {
		h.logger.Warn("PUT /calendar/{date} - Access denied: user_id=%d", principal.ID)
		handlers.RespondForbidden(w, msgAdminOnly)
		return
	}

	rawDate := mux.Vars(r)["date"]
	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("PUT /calendar/%s - Failed to parse date: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req SetCalendarDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /calendar/%s - Invalid request body: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetDate(r.Context(), date, req.MaxSlots); err != nil {
		switch {
		case errors.Is(err, calendarService.ErrInvalidInput):
			h.logger.Warn("PUT /calendar/%s - Invalid input: %v", rawDate, err)
			handlers.RespondBadRequest(w, msgInvalidMaxSlots)

		default:
			h.logger.Error("PUT /calendar/%s - Failed to set capacity: admin_id=%d, error=%v",
				rawDate, principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /calendar/%s - Capacity set to %d: admin_id=%d", rawDate, req.MaxSlots, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, &SetCalendarDateResponse{
		Date:     rawDate,
		MaxSlots: req.MaxSlots,
	})
}

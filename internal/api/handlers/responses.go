package handlers

import (
	"encoding/json"
	"net/http"
)

const msgInternalError = "внутренняя ошибка сервиса"

// ErrorResponse стандартное тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON декодирует JSON тело запроса в модель
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// RespondJSON отправляет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError отправляет ответ с ошибкой и указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest отправляет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized отправляет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden отправляет 403 Forbidden
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound отправляет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError отправляет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

package requests

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("request not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

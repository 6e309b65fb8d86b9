package bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

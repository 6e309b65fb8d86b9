package cancel_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrForbidden возвращается, когда бронирование принадлежит другому пользователю
	ErrForbidden = errors.New("cancel_booking: booking belongs to another user")

	// ErrConcurrentConflict возвращается, когда сериализуемая транзакция
	// проиграла гонку и операцию нужно повторить
	ErrConcurrentConflict = errors.New("cancel_booking: concurrent transaction conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)

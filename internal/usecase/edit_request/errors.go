package edit_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_request: invalid input data")

	// ErrInvalidDetails возвращается при неполной или некорректной анкете службы
	ErrInvalidDetails = errors.New("edit_request: invalid service details")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("edit_request: request not found")

	// ErrForbidden возвращается, когда заявка принадлежит другому пользователю
	ErrForbidden = errors.New("edit_request: request belongs to another user")

	// ErrAlreadyDecided возвращается, когда по заявке уже принято решение
	ErrAlreadyDecided = errors.New("edit_request: request is already decided")

	// ErrDateClosed возвращается, когда новая дата закрыта для бронирования
	ErrDateClosed = errors.New("edit_request: date is closed for booking")

	// ErrConcurrentConflict возвращается, когда сериализуемая транзакция
	// проиграла гонку и операцию нужно повторить
	ErrConcurrentConflict = errors.New("edit_request: concurrent transaction conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_request: internal error")
)

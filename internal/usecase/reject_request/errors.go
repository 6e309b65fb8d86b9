package reject_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reject_request: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("reject_request: request not found")

	// ErrAlreadyDecided возвращается, когда по заявке уже принято решение
	ErrAlreadyDecided = errors.New("reject_request: request is already decided")

	// ErrConcurrentConflict возвращается, когда сериализуемая транзакция
	// проиграла гонку и операцию нужно повторить
	ErrConcurrentConflict = errors.New("reject_request: concurrent transaction conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reject_request: internal error")
)

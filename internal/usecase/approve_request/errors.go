package approve_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("approve_request: invalid input data")

	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("approve_request: request not found")

	// ErrAlreadyDecided возвращается, когда по заявке уже принято решение
	ErrAlreadyDecided = errors.New("approve_request: request is already decided")

	// ErrDateClosed возвращается, когда дата закрыта для бронирования
	ErrDateClosed = errors.New("approve_request: date is closed for booking")

	// ErrNoCapacity возвращается, когда ёмкость даты исчерпана
	ErrNoCapacity = errors.New("approve_request: no capacity left on this date")

	// ErrSlotTaken возвращается при конфликте с эксклюзивной службой на слоте
	ErrSlotTaken = errors.New("approve_request: slot is taken by an exclusive service")

	// ErrConcurrentConflict возвращается, когда сериализуемая транзакция
	// проиграла гонку и операцию нужно повторить
	ErrConcurrentConflict = errors.New("approve_request: concurrent transaction conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("approve_request: internal error")
)

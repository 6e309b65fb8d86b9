package submit_request

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_request: invalid input data")

	// ErrInvalidDetails возвращается при неполной или некорректной анкете службы
	ErrInvalidDetails = errors.New("submit_request: invalid service details")

	// ErrDateClosed возвращается, когда дата закрыта для бронирования
	ErrDateClosed = errors.New("submit_request: date is closed for booking")

	// ErrConcurrentConflict возвращается, когда сериализуемая транзакция
	// проиграла гонку и операцию нужно повторить
	ErrConcurrentConflict = errors.New("submit_request: concurrent transaction conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_request: internal error")
)

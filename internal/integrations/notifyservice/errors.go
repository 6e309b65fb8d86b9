package notifyservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("notifyservice: invalid response")
)

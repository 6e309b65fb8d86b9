package request

import "errors"

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = errors.New("request.repository: booking request not found")

	// ErrNotPending возвращается, когда заявка уже обработана и не может быть изменена
	ErrNotPending = errors.New("request.repository: booking request is not pending")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("request.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("request.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("request.repository: failed to scan row")
)

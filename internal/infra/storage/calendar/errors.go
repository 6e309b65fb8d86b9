package calendar

import "errors"

var (
	// ErrDateNotFound возвращается, когда для даты нет строки календаря
	// Вызывающий код в этом случае применяет значения по умолчанию
	ErrDateNotFound = errors.New("calendar.repository: calendar date not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)

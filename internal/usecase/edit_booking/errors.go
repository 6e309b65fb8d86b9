package edit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_booking: invalid input data")

	// ErrInvalidDetails возвращается при неполной или некорректной анкете службы
	ErrInvalidDetails = errors.New("edit_booking: invalid service details")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrDateClosed возвращается, когда новая дата закрыта для бронирования
	ErrDateClosed = errors.New("edit_booking: date is closed for booking")

	// ErrNoCapacity возвращается, когда ёмкость новой даты исчерпана
	ErrNoCapacity = errors.New("edit_booking: no capacity left on this date")

	// ErrSlotTaken возвращается при конфликте с эксклюзивной службой на слоте
	ErrSlotTaken = errors.New("edit_booking: slot is taken by an exclusive service")

	// ErrConcurrentConflict возвращается, когда сериализуемая транзакция
	// проиграла гонку и операцию нужно повторить
	ErrConcurrentConflict = errors.New("edit_booking: concurrent transaction conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)

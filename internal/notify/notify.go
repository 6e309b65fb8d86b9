package notify

// Имена событий, рассылаемых подписчикам после успешного завершения операций.
// Рассылка выполняется после коммита транзакции и не влияет на её исход.
const (
	EventBookingRequestCreated = "booking_request_created"
	EventBookingRequestUpdated = "booking_request_updated"
	EventNewBooking            = "new_booking"
	EventBookingUpdated        = "booking_updated"
	EventBookingDeleted        = "booking_deleted"
	EventCalendarConfigUpdated = "calendar_config_updated"
	EventEventCreated          = "event_created"
	EventEventUpdated          = "event_updated"
	EventEventDeleted          = "event_deleted"
)

// Notifier интерфейс рассылки событий (fire-and-forget)
type Notifier interface {
	Publish(event string, payload interface{})
}

// Multi рассылает событие во все вложенные нотификаторы
type Multi []Notifier

// Publish рассылает событие во все нотификаторы по порядку
func (m Multi) Publish(event string, payload interface{}) {
	for _, n := range m {
		n.Publish(event, payload)
	}
}

// Nop нотификатор-заглушка, используется когда рассылка отключена
type Nop struct{}

// Publish ничего не делает
func (Nop) Publish(event string, payload interface{}) {}

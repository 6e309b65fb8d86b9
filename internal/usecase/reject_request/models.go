package reject_request

// Request модель запроса на отклонение заявки
type Request struct {
	RequestID int64   // ID заявки
	AdminID   int64   // ID отклоняющего администратора
	Note      *string // Причина отклонения (опционально)
}

// Response модель ответа с итоговым статусом заявки
type Response struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

package models

import "github.com/m04kA/Parish-BookingService/internal/domain"

// DateInfo состояние ёмкости одной даты
type DateInfo struct {
	MaxSlots  int `json:"maxSlots"`
	Booked    int `json:"booked"`
	FreeSlots int `json:"freeSlots"`
}

// CalendarResponse состояние календаря, ключ — дата "2025-10-15"
type CalendarResponse struct {
	Dates map[string]DateInfo `json:"dates"`
}

// SetDateRequest запрос на установку ёмкости даты
type SetDateRequest struct {
	Date     string `json:"date"` // "2025-10-15"
	MaxSlots int    `json:"maxSlots"`
}

// FromDomainCalendar конвертирует строки календаря в response-словарь
func FromDomainCalendar(dates []*domain.CalendarDate) *CalendarResponse {
	result := make(map[string]DateInfo, len(dates))
	for _, d := range dates {
		result[d.Date.Format(domain.DateFormat)] = DateInfo{
			MaxSlots:  d.MaxSlots,
			Booked:    d.Booked,
			FreeSlots: d.FreeSlots(),
		}
	}
	return &CalendarResponse{Dates: result}
}

package set_calendar_date

// SetCalendarDateRequest HTTP request model
type SetCalendarDateRequest struct {
	MaxSlots int `json:"maxSlots"`
}

// SetCalendarDateResponse HTTP response model
type SetCalendarDateResponse struct {
	Date     string `json:"date"`
	MaxSlots int    `json:"maxSlots"`
}

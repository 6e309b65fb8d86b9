package domain

import "time"

// ParishEvent is an announcement shown on the parish calendar (service
// times, gatherings). Events do not consume booking capacity.
type ParishEvent struct {
	ID          int64
	Title       string
	Date        time.Time
	Time        string
	Description string
}

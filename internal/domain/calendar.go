package domain

import "time"

// CalendarDate is the capacity ledger row of a single date.
// MaxSlots = 0 closes the date entirely; Booked counts approved bookings
// and never goes below zero.
type CalendarDate struct {
	Date     time.Time
	MaxSlots int
	Booked   int
}

// IsClosed returns true if the date does not accept bookings at all
func (c *CalendarDate) IsClosed() bool {
	return c.MaxSlots <= 0
}

// IsFull returns true if no further booking may be approved for the date
func (c *CalendarDate) IsFull() bool {
	return c.Booked >= c.MaxSlots
}

// FreeSlots returns the number of slots still available, floored at zero
func (c *CalendarDate) FreeSlots() int {
	free := c.MaxSlots - c.Booked
	if free < 0 {
		return 0
	}
	return free
}

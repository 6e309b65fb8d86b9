package domain

import "time"

// Booking represents a confirmed, capacity-consuming appointment.
// Bookings are only created by approving a BookingRequest; RequestID keeps
// the origin for traceability and is nil for legacy rows.
type Booking struct {
	ID        int64
	UserID    int64
	UserName  string
	UserEmail string
	Service   string
	Date      time.Time
	Slot      string
	Details   Details
	RequestID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// BookedSlot is a date+slot pair of an existing booking, exposed for
// calendar availability views without leaking booking owners
type BookedSlot struct {
	Date time.Time
	Slot string
}

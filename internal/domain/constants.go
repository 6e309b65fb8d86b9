package domain

// Default configuration values
const (
	// DefaultMaxSlots is the per-date capacity assumed when no calendar
	// row exists for a date
	DefaultMaxSlots = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Legacy day-part slot tokens kept for backwards compatibility with the
// original half-day booking form
const (
	SlotMorning   = "AM"
	SlotAfternoon = "PM"
)

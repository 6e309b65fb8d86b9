package domain

import "time"

// RequestStatus represents the status of a booking request
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Details holds the service-specific detail form of a request or booking
// as a flat key/value map (e.g. childName, phone, concern)
type Details map[string]string

// BookingRequest represents a member's request for a pastoral service.
// A request starts as pending and is moved to approved or rejected by an
// admin; both decisions are terminal.
type BookingRequest struct {
	ID        int64
	UserID    int64
	UserName  string
	UserEmail string
	Service   string
	Date      time.Time
	Slot      string
	Details   Details

	Status     RequestStatus
	CreatedAt  time.Time
	ReviewedBy *int64
	ReviewedAt *time.Time
}

// IsOwnedBy returns true if the request was submitted by the given user
func (r *BookingRequest) IsOwnedBy(userID int64) bool {
	return r.UserID == userID
}

// IsPending returns true if the request has not been decided yet
func (r *BookingRequest) IsPending() bool {
	return r.Status == StatusPending
}

// CanBeEdited returns true if the request may still be edited in place
func (r *BookingRequest) CanBeEdited() bool {
	return r.Status == StatusPending
}

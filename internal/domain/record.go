package domain

import "time"

// RecordAction names a lifecycle transition captured in the audit log
type RecordAction string

const (
	ActionSubmitted     RecordAction = "submitted"
	ActionRequestEdited RecordAction = "request_edited"
	ActionApproved      RecordAction = "approved"
	ActionRejected      RecordAction = "rejected"
	ActionBookingEdited RecordAction = "booking_edited"
	ActionCancelled     RecordAction = "cancelled"
)

// BookingRecord is an immutable audit entry written for every lifecycle
// transition. It carries a denormalized snapshot of the request/booking at
// the time of the action, so history stays meaningful after later edits or
// deletions. Records are append-only and never updated.
type BookingRecord struct {
	ID        int64
	RequestID *int64
	BookingID *int64

	UserID    *int64
	UserName  *string
	UserEmail *string
	Service   string
	Date      time.Time
	Slot      string
	Details   Details

	Action   RecordAction
	Note     *string
	ActionBy *int64
	ActionAt time.Time
}

package edit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/booking"
	calendarRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/calendar"
	"github.com/m04kA/Parish-BookingService/internal/notify"
)

var (
	oldDate = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	newDate = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	booking   *domain.Booking
	occupants []*domain.Booking
	updated   *domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, _ int64, b *domain.Booking) error {
	f.updated = b
	return nil
}

func (f *fakeBookingRepo) ListByDateSlot(_ context.Context, _ time.Time, _ string) ([]*domain.Booking, error) {
	return f.occupants, nil
}

type fakeCalendarRepo struct {
	date     *domain.CalendarDate
	reserved []time.Time
	released []time.Time
}

func (f *fakeCalendarRepo) GetByDate(_ context.Context, _ time.Time) (*domain.CalendarDate, error) {
	if f.date == nil {
		return nil, calendarRepo.ErrDateNotFound
	}
	return f.date, nil
}

func (f *fakeCalendarRepo) Reserve(_ context.Context, date time.Time, _ int) error {
	f.reserved = append(f.reserved, date)
	return nil
}

func (f *fakeCalendarRepo) Release(_ context.Context, date time.Time) error {
	f.released = append(f.released, date)
	return nil
}

type fakeRecordRepo struct {
	records []*domain.BookingRecord
}

func (f *fakeRecordRepo) Create(_ context.Context, rec *domain.BookingRecord) error {
	f.records = append(f.records, rec)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	events []string
}

func (f *fakeNotifier) Publish(event string, _ interface{}) {
	f.events = append(f.events, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:       100,
		UserID:   7,
		UserName: "Anna Ivanova",
		Service:  "counseling",
		Date:     oldDate,
		Slot:     "09:30",
		Details:  domain.Details{"fullName": "Anna Ivanova", "phone": "79001234567", "concern": "family"},
	}
}

func editRequest() *Request {
	return &Request{
		BookingID: 100,
		AdminID:   1,
		Service:   "counseling",
		Date:      oldDate,
		Slot:      "10:00",
		Details:   domain.Details{"fullName": "Anna Ivanova", "phone": "79001234567", "concern": "family"},
	}
}

func TestExecute_SameDateSkipsCapacityMove(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	calendar := &fakeCalendarRepo{}
	records := &fakeRecordRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(bookings, calendar, records, fakeTxManager{}, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), editRequest())

	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.Slot)
	assert.Empty(t, calendar.reserved, "same-day edit must not touch capacity")
	assert.Empty(t, calendar.released)

	require.NotNil(t, bookings.updated)
	assert.Equal(t, "10:00", bookings.updated.Slot)

	require.Len(t, records.records, 1)
	assert.Equal(t, domain.ActionBookingEdited, records.records[0].Action)

	assert.Equal(t, []string{notify.EventBookingUpdated}, notifier.events)
}

func TestExecute_DateChangeMovesCapacity(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	calendar := &fakeCalendarRepo{date: &domain.CalendarDate{Date: newDate, MaxSlots: 5, Booked: 1}}
	uc := NewUseCase(bookings, calendar, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	req := editRequest()
	req.Date = newDate

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Date.Equal(newDate))

	require.Len(t, calendar.reserved, 1)
	assert.True(t, calendar.reserved[0].Equal(newDate), "new date must be reserved")
	require.Len(t, calendar.released, 1)
	assert.True(t, calendar.released[0].Equal(oldDate), "old date must be released")
}

func TestExecute_TargetDateClosed(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	calendar := &fakeCalendarRepo{date: &domain.CalendarDate{Date: newDate, MaxSlots: 0}}
	uc := NewUseCase(bookings, calendar, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	req := editRequest()
	req.Date = newDate

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrDateClosed)
	assert.Empty(t, calendar.reserved)
	assert.Nil(t, bookings.updated)
}

func TestExecute_TargetDateFull(t *testing.T) {
	calendar := &fakeCalendarRepo{date: &domain.CalendarDate{Date: newDate, MaxSlots: 2, Booked: 2}}
	uc := NewUseCase(&fakeBookingRepo{booking: testBooking()}, calendar, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	req := editRequest()
	req.Date = newDate

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrNoCapacity)
}

func TestExecute_ExclusivityIgnoresSelf(t *testing.T) {
	// Бронирование не конфликтует само с собой при смене слота
	self := testBooking()
	self.Service = "funeral"
	bookings := &fakeBookingRepo{booking: self, occupants: []*domain.Booking{self}}
	uc := NewUseCase(bookings, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	req := editRequest()
	req.Service = "funeral"
	req.Details = domain.Details{
		"deceasedName": "Ivan Petrov", "deceasedBirthDate": "1950-01-01",
		"dateOfDeath": "2026-10-10", "familyContact": "79001234567",
	}

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_ExclusiveConflictWithOtherBooking(t *testing.T) {
	other := &domain.Booking{ID: 200, Service: "wedding", Date: oldDate, Slot: "10:00"}
	bookings := &fakeBookingRepo{booking: testBooking(), occupants: []*domain.Booking{other}}
	uc := NewUseCase(bookings, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), editRequest())

	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, bookings.updated)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), editRequest())

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidDetails(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{booking: testBooking()}, &fakeCalendarRepo{}, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	req := editRequest()
	req.Service = "wedding"
	req.Details = domain.Details{"groomName": "Ivan"}

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidDetails)
	var detailsErr *domain.DetailsValidationError
	require.ErrorAs(t, err, &detailsErr)
	assert.Equal(t, "Missing required field: brideName", detailsErr.Reason)
}

package cancel_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/pkg/pgerrors"
	"github.com/m04kA/Parish-BookingService/pkg/ptr"
)

var testDate = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	booking *domain.Booking
	deleted []int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCalendarRepo struct {
	released []time.Time
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

// conflictTxManager имитирует проигрыш гонки сериализации на фиксации
type conflictTxManager struct{}

func (conflictTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return pgerrors.Classify(fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"}))
}

type fakeNotifier struct {
	events   []string
	payloads []interface{}
}

func (f *fakeNotifier) Publish(event string, payload interface{}) {
	f.events = append(f.events, event)
	f.payloads = append(f.payloads, payload)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:        100,
		UserID:    7,
		UserName:  "Anna Ivanova",
		Service:   "counseling",
		Date:      testDate,
		Slot:      "09:30",
		RequestID: ptr.Ptr(int64(5)),
	}
}

func TestExecute_OwnerCancels(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	calendar := &fakeCalendarRepo{}
	records := &fakeRecordRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(bookings, calendar, records, fakeTxManager{}, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 100,
		Actor:     domain.Principal{ID: 7, Role: domain.RoleMember},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, "counseling", resp.Service)
	assert.True(t, resp.Date.Equal(testDate))
	assert.Equal(t, "09:30", resp.Slot)
	assert.Equal(t, []int64{100}, bookings.deleted)
	require.Len(t, calendar.released, 1)
	assert.True(t, calendar.released[0].Equal(testDate), "capacity must be released on the booking's date")

	require.Len(t, records.records, 1)
	assert.Equal(t, domain.ActionCancelled, records.records[0].Action)
	require.NotNil(t, records.records[0].ActionBy)
	assert.Equal(t, int64(7), *records.records[0].ActionBy)

	assert.Equal(t, []string{notify.EventBookingDeleted}, notifier.events)

	// Уведомление об отмене несёт снимок бронирования, а не один ID:
	// подписчики обновляют занятость даты и слота без повторного запроса
	require.Len(t, notifier.payloads, 1)
	published, ok := notifier.payloads[0].(*Response)
	require.True(t, ok)
	assert.Equal(t, int64(100), published.ID)
	assert.Equal(t, int64(7), published.UserID)
	assert.Equal(t, "counseling", published.Service)
	assert.True(t, published.Date.Equal(testDate))
	assert.Equal(t, "09:30", published.Slot)
}

func TestExecute_AdminCancelsAnyBooking(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	uc := NewUseCase(bookings, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 100,
		Actor:     domain.Principal{ID: 1, Role: domain.RoleAdmin},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{100}, bookings.deleted)
}

func TestExecute_StrangerForbidden(t *testing.T) {
	bookings := &fakeBookingRepo{booking: testBooking()}
	calendar := &fakeCalendarRepo{}
	uc := NewUseCase(bookings, calendar, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 100,
		Actor:     domain.Principal{ID: 99, Role: domain.RoleMember},
	})

	require.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, bookings.deleted)
	assert.Empty(t, calendar.released)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 100,
		Actor:     domain.Principal{ID: 7},
	})

	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_SerializationFailureMapsToConflict(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := NewUseCase(&fakeBookingRepo{booking: testBooking()}, &fakeCalendarRepo{}, &fakeRecordRepo{},
		conflictTxManager{}, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 100,
		Actor:     domain.Principal{ID: 7, Role: domain.RoleMember},
	})

	require.ErrorIs(t, err, ErrConcurrentConflict)
	assert.Empty(t, notifier.events)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, Actor: domain.Principal{ID: 7}})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 100})
	require.ErrorIs(t, err, ErrInvalidInput)
}

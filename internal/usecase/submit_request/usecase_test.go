package submit_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/calendar"
	"github.com/m04kA/Parish-BookingService/internal/notify"
)

type fakeRequestRepo struct {
	created *domain.BookingRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, req *domain.BookingRequest) (*domain.BookingRequest, error) {
	stored := *req
	stored.ID = 42
	stored.Status = domain.StatusPending
	stored.CreatedAt = time.Now()
	f.created = &stored
	return &stored, nil
}

type fakeCalendarRepo struct {
	date *domain.CalendarDate
}

func (f *fakeCalendarRepo) GetByDate(_ context.Context, _ time.Time) (*domain.CalendarDate, error) {
	if f.date == nil {
		return nil, calendarRepo.ErrDateNotFound
	}
	return f.date, nil
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

func validRequest() *Request {
	return &Request{
		UserID:    7,
		UserName:  "Anna Ivanova",
		UserEmail: "anna@example.com",
		Service:   "counseling",
		Date:      time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Slot:      "9:30",
		Details:   domain.Details{"fullName": "Anna Ivanova", "phone": "79001234567", "concern": "family"},
	}
}

func TestExecute_Success(t *testing.T) {
	requests := &fakeRequestRepo{}
	records := &fakeRecordRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(requests, &fakeCalendarRepo{}, records, fakeTxManager{}, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "09:30", resp.Slot, "slot must be normalized before storing")

	require.Len(t, records.records, 1)
	assert.Equal(t, domain.ActionSubmitted, records.records[0].Action)

	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.EventBookingRequestCreated, notifier.events[0])
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{
			name:    "missing user id",
			mutate:  func(r *Request) { r.UserID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "blank service",
			mutate:  func(r *Request) { r.Service = "  " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "slot off the half-hour grid",
			mutate:  func(r *Request) { r.Slot = "09:15" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "incomplete details form",
			mutate:  func(r *Request) { r.Details = domain.Details{"fullName": "Anna"} },
			wantErr: ErrInvalidDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests := &fakeRequestRepo{}
			notifier := &fakeNotifier{}
			uc := NewUseCase(requests, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, notifier, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, requests.created, "invalid request must not be stored")
			assert.Empty(t, notifier.events)
		})
	}
}

func TestExecute_DetailsErrorCarriesReason(t *testing.T) {
	uc := NewUseCase(&fakeRequestRepo{}, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	req := validRequest()
	req.Details = domain.Details{"fullName": "Anna", "phone": "not-a-number", "concern": "family"}

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidDetails)
	var detailsErr *domain.DetailsValidationError
	require.ErrorAs(t, err, &detailsErr)
	assert.Equal(t, "phone must contain numbers only", detailsErr.Reason)
}

func TestExecute_ClosedDate(t *testing.T) {
	calendar := &fakeCalendarRepo{date: &domain.CalendarDate{MaxSlots: 0}}
	requests := &fakeRequestRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(requests, calendar, &fakeRecordRepo{}, fakeTxManager{}, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrDateClosed)
	assert.Nil(t, requests.created)
	assert.Empty(t, notifier.events)
}

func TestExecute_UntrackedDateUsesDefaultCapacity(t *testing.T) {
	// Даты без строки календаря принимают заявки с ёмкостью по умолчанию
	uc := NewUseCase(&fakeRequestRepo{}, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

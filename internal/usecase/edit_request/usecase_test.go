package edit_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/calendar"
	requestRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/request"
	"github.com/m04kA/Parish-BookingService/internal/notify"
)

var testDate = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

type fakeRequestRepo struct {
	request   *domain.BookingRequest
	updated   *domain.BookingRequest
	updateErr error
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.BookingRequest, error) {
	if f.request == nil || f.request.ID != id {
		return nil, requestRepo.ErrRequestNotFound
	}
	return f.request, nil
}

func (f *fakeRequestRepo) UpdateFields(_ context.Context, _ int64, req *domain.BookingRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = req
	return nil
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
	events []string
}

func (f *fakeNotifier) Publish(event string, _ interface{}) {
	f.events = append(f.events, event)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		ID:       5,
		UserID:   7,
		UserName: "Anna Ivanova",
		Service:  "counseling",
		Date:     testDate,
		Slot:     "09:30",
		Details:  domain.Details{"fullName": "Anna Ivanova", "phone": "79001234567", "concern": "family"},
		Status:   domain.StatusPending,
	}
}

func editRequest(actor domain.Principal) *Request {
	return &Request{
		RequestID: 5,
		Actor:     actor,
		Service:   "counseling",
		Date:      testDate,
		Slot:      "14:00",
		Details:   domain.Details{"fullName": "Anna Ivanova", "phone": "79001234567", "concern": "health"},
	}
}

func TestExecute_OwnerEdits(t *testing.T) {
	requests := &fakeRequestRepo{request: pendingRequest()}
	records := &fakeRecordRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(requests, &fakeCalendarRepo{}, records, fakeTxManager{}, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), editRequest(domain.Principal{ID: 7, Role: domain.RoleMember}))

	require.NoError(t, err)
	assert.Equal(t, "14:00", resp.Slot)
	assert.Equal(t, "health", resp.Details["concern"])

	require.NotNil(t, requests.updated)
	require.Len(t, records.records, 1)
	assert.Equal(t, domain.ActionRequestEdited, records.records[0].Action)
	assert.Equal(t, []string{notify.EventBookingRequestUpdated}, notifier.events)
}

func TestExecute_AdminEditsForeignRequest(t *testing.T) {
	requests := &fakeRequestRepo{request: pendingRequest()}
	uc := NewUseCase(requests, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), editRequest(domain.Principal{ID: 1, Role: domain.RoleAdmin}))

	require.NoError(t, err)
	assert.NotNil(t, requests.updated)
}

func TestExecute_StrangerForbidden(t *testing.T) {
	requests := &fakeRequestRepo{request: pendingRequest()}
	uc := NewUseCase(requests, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), editRequest(domain.Principal{ID: 99, Role: domain.RoleMember}))

	require.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, requests.updated)
}

func TestExecute_DecidedRequestIsImmutable(t *testing.T) {
	request := pendingRequest()
	request.Status = domain.StatusApproved
	uc := NewUseCase(&fakeRequestRepo{request: request}, &fakeCalendarRepo{}, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), editRequest(domain.Principal{ID: 7}))

	require.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestExecute_ConcurrentDecisionLosesRace(t *testing.T) {
	requests := &fakeRequestRepo{request: pendingRequest(), updateErr: requestRepo.ErrNotPending}
	uc := NewUseCase(requests, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), editRequest(domain.Principal{ID: 7}))

	require.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestExecute_NewDateClosed(t *testing.T) {
	calendar := &fakeCalendarRepo{date: &domain.CalendarDate{MaxSlots: 0}}
	uc := NewUseCase(&fakeRequestRepo{request: pendingRequest()}, calendar, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), editRequest(domain.Principal{ID: 7}))

	require.ErrorIs(t, err, ErrDateClosed)
}

func TestExecute_RequestNotFound(t *testing.T) {
	uc := NewUseCase(&fakeRequestRepo{}, &fakeCalendarRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), editRequest(domain.Principal{ID: 7}))

	require.ErrorIs(t, err, ErrRequestNotFound)
}

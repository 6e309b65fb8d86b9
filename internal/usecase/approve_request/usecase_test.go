package approve_request

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/calendar"
	requestRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/request"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/pkg/pgerrors"
)

var testDate = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

type fakeRequestRepo struct {
	request   *domain.BookingRequest
	setStatus []domain.RequestStatus
	statusErr error
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id int64) (*domain.BookingRequest, error) {
	if f.request == nil || f.request.ID != id {
		return nil, requestRepo.ErrRequestNotFound
	}
	return f.request, nil
}

func (f *fakeRequestRepo) SetStatus(_ context.Context, _ int64, status domain.RequestStatus, _ int64) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.setStatus = append(f.setStatus, status)
	return nil
}

type fakeBookingRepo struct {
	occupants []*domain.Booking
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	stored := *b
	stored.ID = 100
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) ListByDateSlot(_ context.Context, _ time.Time, _ string) ([]*domain.Booking, error) {
	return f.occupants, nil
}

type fakeCalendarRepo struct {
	date     *domain.CalendarDate
	reserved int
}

func (f *fakeCalendarRepo) GetByDate(_ context.Context, _ time.Time) (*domain.CalendarDate, error) {
	if f.date == nil {
		return nil, calendarRepo.ErrDateNotFound
	}
	return f.date, nil
}

func (f *fakeCalendarRepo) Reserve(_ context.Context, _ time.Time, _ int) error {
	f.reserved++
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

func pendingRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		ID:        5,
		UserID:    7,
		UserName:  "Anna Ivanova",
		UserEmail: "anna@example.com",
		Service:   "baptism",
		Date:      testDate,
		Slot:      "09:30",
		Details:   domain.Details{"childName": "Petr", "birthDate": "2025-01-01", "parentNames": "Ivan, Olga"},
		Status:    domain.StatusPending,
	}
}

func TestExecute_Success(t *testing.T) {
	requests := &fakeRequestRepo{request: pendingRequest()}
	bookings := &fakeBookingRepo{}
	calendar := &fakeCalendarRepo{date: &domain.CalendarDate{Date: testDate, MaxSlots: 5, Booked: 2}}
	records := &fakeRecordRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(requests, bookings, calendar, records, fakeTxManager{}, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, int64(7), resp.UserID)
	require.NotNil(t, resp.RequestID)
	assert.Equal(t, int64(5), *resp.RequestID)

	assert.Equal(t, 1, calendar.reserved)
	require.Len(t, requests.setStatus, 1)
	assert.Equal(t, domain.StatusApproved, requests.setStatus[0])

	require.Len(t, records.records, 1)
	assert.Equal(t, domain.ActionApproved, records.records[0].Action)

	require.Len(t, notifier.events, 2)
	assert.Equal(t, notify.EventNewBooking, notifier.events[0])
	assert.Equal(t, notify.EventBookingRequestUpdated, notifier.events[1])
}

func TestExecute_RequestNotFound(t *testing.T) {
	uc := NewUseCase(&fakeRequestRepo{}, &fakeBookingRepo{}, &fakeCalendarRepo{}, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestExecute_AlreadyDecided(t *testing.T) {
	request := pendingRequest()
	request.Status = domain.StatusRejected
	calendar := &fakeCalendarRepo{}
	uc := NewUseCase(&fakeRequestRepo{request: request}, &fakeBookingRepo{}, calendar, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.ErrorIs(t, err, ErrAlreadyDecided)
	assert.Equal(t, 0, calendar.reserved)
}

func TestExecute_ConcurrentDecisionLosesRace(t *testing.T) {
	// Статус заявки перепроверяется в самом UPDATE; второй администратор
	// получает ErrAlreadyDecided, а не дубль бронирования
	requests := &fakeRequestRepo{request: pendingRequest(), statusErr: requestRepo.ErrNotPending}
	uc := NewUseCase(requests, &fakeBookingRepo{}, &fakeCalendarRepo{}, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 2})

	require.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestExecute_DateClosed(t *testing.T) {
	calendar := &fakeCalendarRepo{date: &domain.CalendarDate{Date: testDate, MaxSlots: 0}}
	uc := NewUseCase(&fakeRequestRepo{request: pendingRequest()}, &fakeBookingRepo{}, calendar, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.ErrorIs(t, err, ErrDateClosed)
	assert.Equal(t, 0, calendar.reserved)
}

func TestExecute_DateFull(t *testing.T) {
	calendar := &fakeCalendarRepo{date: &domain.CalendarDate{Date: testDate, MaxSlots: 3, Booked: 3}}
	requests := &fakeRequestRepo{request: pendingRequest()}
	uc := NewUseCase(requests, &fakeBookingRepo{}, calendar, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.ErrorIs(t, err, ErrNoCapacity)
	assert.Empty(t, requests.setStatus, "request must stay pending when the date is full")
}

func TestExecute_UntrackedDateUsesDefaultCapacity(t *testing.T) {
	uc := NewUseCase(&fakeRequestRepo{request: pendingRequest()}, &fakeBookingRepo{}, &fakeCalendarRepo{},
		&fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.NoError(t, err)
}

func TestExecute_ExclusiveServiceConflicts(t *testing.T) {
	tests := []struct {
		name      string
		service   string
		occupants []*domain.Booking
		wantErr   error
	}{
		{
			name:      "exclusive service into occupied slot",
			service:   "funeral",
			occupants: []*domain.Booking{{ID: 1, Service: "counseling"}},
			wantErr:   ErrSlotTaken,
		},
		{
			name:      "regular service next to exclusive occupant",
			service:   "counseling",
			occupants: []*domain.Booking{{ID: 1, Service: "wedding"}},
			wantErr:   ErrSlotTaken,
		},
		{
			name:      "regular services share the slot",
			service:   "counseling",
			occupants: []*domain.Booking{{ID: 1, Service: "blessing"}},
		},
		{
			name:    "exclusive service into empty slot",
			service: "funeral",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := pendingRequest()
			request.Service = tt.service
			request.Details = nil // детали проверяются при подаче, не при одобрении

			bookings := &fakeBookingRepo{occupants: tt.occupants}
			uc := NewUseCase(&fakeRequestRepo{request: request}, bookings, &fakeCalendarRepo{},
				&fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, bookings.created)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestExecute_SerializationFailureMapsToConflict(t *testing.T) {
	// Проигрыш гонки сериализации на фиксации транзакции возвращается
	// как конфликт, а не как внутренняя ошибка, и уведомления не уходят
	notifier := &fakeNotifier{}
	uc := NewUseCase(&fakeRequestRepo{request: pendingRequest()}, &fakeBookingRepo{}, &fakeCalendarRepo{},
		&fakeRecordRepo{}, conflictTxManager{}, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.ErrorIs(t, err, ErrConcurrentConflict)
	assert.Empty(t, notifier.events)
}

func TestExecute_StoredSlotIsNormalized(t *testing.T) {
	// Слот, записанный до нормализации, приводится к каноническому виду
	// и в бронирование попадает уже нормализованным
	request := pendingRequest()
	request.Slot = "9:30"

	bookings := &fakeBookingRepo{}
	uc := NewUseCase(&fakeRequestRepo{request: request}, bookings, &fakeCalendarRepo{},
		&fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.NoError(t, err)
	assert.Equal(t, "09:30", resp.Slot)
	require.NotNil(t, bookings.created)
	assert.Equal(t, "09:30", bookings.created.Slot)
}

func TestExecute_CorruptStoredSlotFails(t *testing.T) {
	request := pendingRequest()
	request.Slot = "25:99"

	calendar := &fakeCalendarRepo{date: &domain.CalendarDate{Date: testDate, MaxSlots: 5}}
	uc := NewUseCase(&fakeRequestRepo{request: request}, &fakeBookingRepo{}, calendar,
		&fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, calendar.reserved)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeRequestRepo{}, &fakeBookingRepo{}, &fakeCalendarRepo{}, &fakeRecordRepo{},
		fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 0, AdminID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}

package reject_request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Parish-BookingService/internal/domain"
	requestRepo "github.com/m04kA/Parish-BookingService/internal/infra/storage/request"
	"github.com/m04kA/Parish-BookingService/internal/notify"
	"github.com/m04kA/Parish-BookingService/pkg/ptr"
)

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
		ID:      5,
		UserID:  7,
		Service: "counseling",
		Date:    time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		Slot:    "09:30",
		Status:  domain.StatusPending,
	}
}

func TestExecute_Success(t *testing.T) {
	requests := &fakeRequestRepo{request: pendingRequest()}
	records := &fakeRecordRepo{}
	notifier := &fakeNotifier{}
	uc := NewUseCase(requests, records, fakeTxManager{}, notifier, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		RequestID: 5,
		AdminID:   1,
		Note:      ptr.Ptr("дата занята престольным праздником"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "rejected", resp.Status)

	require.Len(t, requests.setStatus, 1)
	assert.Equal(t, domain.StatusRejected, requests.setStatus[0])

	require.Len(t, records.records, 1)
	assert.Equal(t, domain.ActionRejected, records.records[0].Action)
	require.NotNil(t, records.records[0].Note)
	assert.Equal(t, "дата занята престольным праздником", *records.records[0].Note)

	assert.Equal(t, []string{notify.EventBookingRequestUpdated}, notifier.events)
}

func TestExecute_NoteIsOptional(t *testing.T) {
	records := &fakeRecordRepo{}
	uc := NewUseCase(&fakeRequestRepo{request: pendingRequest()}, records, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.NoError(t, err)
	require.Len(t, records.records, 1)
	assert.Nil(t, records.records[0].Note)
}

func TestExecute_AlreadyDecided(t *testing.T) {
	request := pendingRequest()
	request.Status = domain.StatusApproved
	requests := &fakeRequestRepo{request: request}
	uc := NewUseCase(requests, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.ErrorIs(t, err, ErrAlreadyDecided)
	assert.Empty(t, requests.setStatus)
}

func TestExecute_ConcurrentDecisionLosesRace(t *testing.T) {
	requests := &fakeRequestRepo{request: pendingRequest(), statusErr: requestRepo.ErrNotPending}
	uc := NewUseCase(requests, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestExecute_RequestNotFound(t *testing.T) {
	uc := NewUseCase(&fakeRequestRepo{}, &fakeRecordRepo{}, fakeTxManager{}, &fakeNotifier{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RequestID: 5, AdminID: 1})

	require.ErrorIs(t, err, ErrRequestNotFound)
}

package create_hold

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	holdRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/hold"
	listSlots "github.com/m04kA/Salon-BookingService/internal/usecase/list_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeSlotLister struct {
	slots []domain.Slot
	err   error
}

func (f *fakeSlotLister) Execute(_ context.Context, req *listSlots.Request) (*listSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &listSlots.Response{
		TenantID:  req.TenantID,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		DateISO:   req.DateISO,
		Slots:     f.slots,
	}, nil
}

type fakeCatalog struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalog) GetActiveService(_ context.Context, _, _ string) (*domain.Service, error) {
	return f.service, f.err
}

type fakeHoldRepo struct {
	created   *domain.BookingHold
	createErr error
	swept     int64
}

func (f *fakeHoldRepo) Create(_ context.Context, h *domain.BookingHold) (*domain.BookingHold, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *h
	out.ID = "hold-1"
	out.CreatedAt = time.Now()
	f.created = &out
	return &out, nil
}

func (f *fakeHoldRepo) DeleteExpired(_ context.Context, _, _ string, _ time.Time) (int64, error) {
	return f.swept, nil
}

var (
	now       = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	slotStart = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

func testService() *domain.Service {
	return &domain.Service{
		ID:              "svc-1",
		TenantID:        "t-1",
		DurationMinutes: 60,
		PriceCents:      150000,
		Currency:        "RUB",
		IsActive:        true,
	}
}

func testRequest() *Request {
	return &Request{
		TenantID:   "t-1",
		TenantTZ:   "UTC",
		ServiceID:  "svc-1",
		StaffID:    "stf-1",
		StartAtISO: slotStart.Format(time.RFC3339),
	}
}

func newTestUseCase(lister *fakeSlotLister, catalog *fakeCatalog, holds *fakeHoldRepo) *UseCase {
	uc := NewUseCase(lister, catalog, holds, 5*time.Minute, nopLogger{})
	uc.timeProvider = fixedTime{t: now}
	return uc
}

func TestExecute_CreatesHoldWithTTL(t *testing.T) {
	lister := &fakeSlotLister{slots: []domain.Slot{{StartAt: slotStart, EndAt: slotStart.Add(time.Hour)}}}
	holds := &fakeHoldRepo{}

	uc := newTestUseCase(lister, &fakeCatalog{service: testService()}, holds)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "hold-1", resp.HoldID)
	assert.Equal(t, now.Add(5*time.Minute), resp.ExpiresAt)

	require.NotNil(t, holds.created)
	assert.Equal(t, slotStart, holds.created.StartAt)
	assert.Equal(t, slotStart.Add(time.Hour), holds.created.EndAt)
	assert.Equal(t, "t-1", holds.created.TenantID)
}

func TestExecute_SlotNotOfferable_ReturnsConflict(t *testing.T) {
	// Актуальная выдача не содержит запрошенного времени
	lister := &fakeSlotLister{slots: []domain.Slot{
		{StartAt: slotStart.Add(time.Hour), EndAt: slotStart.Add(2 * time.Hour)},
	}}
	holds := &fakeHoldRepo{}

	uc := newTestUseCase(lister, &fakeCatalog{service: testService()}, holds)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, holds.created)
}

func TestExecute_LostRace_ReturnsConflict(t *testing.T) {
	// Конкурент вставил hold первым: хранилище отвечает нарушением уникальности
	lister := &fakeSlotLister{slots: []domain.Slot{{StartAt: slotStart, EndAt: slotStart.Add(time.Hour)}}}
	holds := &fakeHoldRepo{createErr: holdRepo.ErrHoldConflict}

	uc := newTestUseCase(lister, &fakeCatalog{service: testService()}, holds)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeSlotLister{}, &fakeCatalog{err: catalogRepo.ErrServiceNotFound}, &fakeHoldRepo{})

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidStartAt(t *testing.T) {
	uc := newTestUseCase(&fakeSlotLister{}, &fakeCatalog{service: testService()}, &fakeHoldRepo{})

	req := testRequest()
	req.StartAtISO = "завтра в десять"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

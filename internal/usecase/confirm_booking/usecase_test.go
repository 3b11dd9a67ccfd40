package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	holdRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/hold"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

// passthroughTx исполняет функцию без реальной транзакции
type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeHoldRepo struct {
	hold    *domain.BookingHold
	getErr  error
	deleted []string
}

func (f *fakeHoldRepo) GetByID(_ context.Context, _, _ string) (*domain.BookingHold, error) {
	return f.hold, f.getErr
}

func (f *fakeHoldRepo) Delete(_ context.Context, _, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeBookingRepo struct {
	taken   bool
	created *domain.Booking
}

func (f *fakeBookingRepo) ExistsActiveAtStart(_ context.Context, _, _ string, _ time.Time) (bool, error) {
	return f.taken, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	out := *b
	out.ID = "bk-1"
	f.created = &out
	return &out, nil
}

type fakeClientRepo struct {
	upserted *domain.Client
}

func (f *fakeClientRepo) UpsertByPhone(_ context.Context, c *domain.Client) (*domain.Client, error) {
	out := *c
	out.ID = "cl-1"
	f.upserted = &out
	return &out, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
	staff   *domain.StaffProfile
}

func (f *fakeCatalogRepo) GetActiveService(_ context.Context, _, _ string) (*domain.Service, error) {
	return f.service, nil
}

func (f *fakeCatalogRepo) GetActiveStaff(_ context.Context, _, _ string) (*domain.StaffProfile, error) {
	return f.staff, nil
}

type fakeHistoryRepo struct {
	entries []*domain.BookingHistory
}

func (f *fakeHistoryRepo) Append(_ context.Context, h *domain.BookingHistory) error {
	f.entries = append(f.entries, h)
	return nil
}

type fakeReminders struct {
	scheduled []string
}

func (f *fakeReminders) ScheduleForBooking(_ context.Context, _, bookingID string, _ time.Time) error {
	f.scheduled = append(f.scheduled, bookingID)
	return nil
}

var (
	now       = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	slotStart = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
)

type fixture struct {
	holds     *fakeHoldRepo
	bookings  *fakeBookingRepo
	clients   *fakeClientRepo
	catalog   *fakeCatalogRepo
	history   *fakeHistoryRepo
	reminders *fakeReminders
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		holds: &fakeHoldRepo{hold: &domain.BookingHold{
			ID:        "hold-1",
			TenantID:  "t-1",
			ServiceID: "svc-1",
			StaffID:   "stf-1",
			StartAt:   slotStart,
			EndAt:     slotStart.Add(time.Hour),
			ExpiresAt: now.Add(3 * time.Minute),
		}},
		bookings: &fakeBookingRepo{},
		clients:  &fakeClientRepo{},
		catalog: &fakeCatalogRepo{
			service: &domain.Service{
				ID:              "svc-1",
				Name:            "Стрижка",
				DurationMinutes: 60,
				PriceCents:      150000,
				Currency:        "RUB",
				IsActive:        true,
			},
			staff: &domain.StaffProfile{
				ID:          "stf-1",
				DisplayName: "Анна",
				IsActive:    true,
			},
		},
		history:   &fakeHistoryRepo{},
		reminders: &fakeReminders{},
	}

	f.uc = NewUseCase(f.holds, f.bookings, f.clients, f.catalog, f.history, f.reminders, passthroughTx{}, nopLogger{})
	f.uc.timeProvider = fixedTime{t: now}

	return f
}

func testRequest() *Request {
	return &Request{
		TenantID:         "t-1",
		HoldID:           "hold-1",
		ClientName:       "Иван Петров",
		ClientPhone:      "8 (912) 345-67-89",
		ConsentMarketing: true,
	}
}

func TestExecute_ConfirmsHoldIntoBooking(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, "bk-1", resp.BookingID)
	assert.Equal(t, domain.StatusPlanned, resp.Status)
	assert.Equal(t, slotStart, resp.StartAt)
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, "Анна", resp.StaffName)

	// Снапшот цены взят из услуги
	require.NotNil(t, f.bookings.created)
	assert.Equal(t, int64(150000), f.bookings.created.PriceCents)
	assert.Equal(t, "RUB", f.bookings.created.Currency)

	// Телефон нормализован перед upsert
	require.NotNil(t, f.clients.upserted)
	assert.Equal(t, "+79123456789", f.clients.upserted.Phone)
	require.NotNil(t, f.clients.upserted.ConsentAt)

	// Hold удалён, история записана
	assert.Equal(t, []string{"hold-1"}, f.holds.deleted)
	require.Len(t, f.history.entries, 1)
	assert.Equal(t, domain.HistoryActionCreated, f.history.entries[0].Action)
	require.NotNil(t, f.history.entries[0].StatusTo)
	assert.Equal(t, domain.StatusPlanned, *f.history.entries[0].StatusTo)

	// Напоминания запланированы после коммита
	assert.Equal(t, []string{"bk-1"}, f.reminders.scheduled)
}

func TestExecute_ExpiredHold_NoBookingCreated(t *testing.T) {
	f := newFixture()
	f.holds.hold.ExpiresAt = now.Add(-time.Second)

	_, err := f.uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrHoldExpired)

	// Никаких артефактов: ни записи, ни истории, ни удаления hold
	assert.Nil(t, f.bookings.created)
	assert.Empty(t, f.history.entries)
	assert.Empty(t, f.holds.deleted)
	assert.Empty(t, f.reminders.scheduled)
}

func TestExecute_HoldNotFound(t *testing.T) {
	f := newFixture()
	f.holds.hold = nil
	f.holds.getErr = holdRepo.ErrHoldNotFound

	_, err := f.uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrHoldNotFound)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	// Запись появилась в обход hold (например, из админки)
	f := newFixture()
	f.bookings.taken = true

	_, err := f.uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_PriceSnapshotTakenAtConfirmation(t *testing.T) {
	// Цена услуги изменилась между созданием hold и подтверждением:
	// в запись попадает актуальная цена
	f := newFixture()
	f.catalog.service.PriceCents = 180000

	_, err := f.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.NotNil(t, f.bookings.created)
	assert.Equal(t, int64(180000), f.bookings.created.PriceCents)
}

func TestExecute_NoConsent_NoReminders(t *testing.T) {
	f := newFixture()

	req := testRequest()
	req.ConsentMarketing = false

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, f.reminders.scheduled)
	require.NotNil(t, f.clients.upserted)
	assert.Nil(t, f.clients.upserted.ConsentAt)
}

func TestExecute_UnnormalizablePhone(t *testing.T) {
	f := newFixture()

	req := testRequest()
	req.ClientPhone = "12345"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TooShortName(t *testing.T) {
	f := newFixture()

	req := testRequest()
	req.ClientName = "И"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

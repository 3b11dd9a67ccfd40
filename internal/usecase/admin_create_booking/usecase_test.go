package admin_create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	created     *domain.Booking
}

func (f *fakeBookingRepo) ListActiveByStaffInterval(_ context.Context, _, _ string, _, _ time.Time) ([]*domain.Booking, error) {
	return f.overlapping, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	out := *b
	out.ID = "bk-1"
	f.created = &out
	return &out, nil
}

type fakeHoldRepo struct {
	liveOverlap bool
}

func (f *fakeHoldRepo) HasLiveOverlap(_ context.Context, _, _ string, _, _, _ time.Time) (bool, error) {
	return f.liveOverlap, nil
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
	service     *domain.Service
	staffByID   map[string]*domain.StaffProfile
	staffByUser map[string]*domain.StaffProfile
}

func (f *fakeCatalogRepo) GetActiveService(_ context.Context, _, _ string) (*domain.Service, error) {
	if f.service == nil {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return f.service, nil
}

func (f *fakeCatalogRepo) GetActiveStaff(_ context.Context, _, staffID string) (*domain.StaffProfile, error) {
	if s, ok := f.staffByID[staffID]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrStaffNotFound
}

func (f *fakeCatalogRepo) GetActiveStaffByUserID(_ context.Context, _, userID string) (*domain.StaffProfile, error) {
	if s, ok := f.staffByUser[userID]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrStaffNotFound
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
	bookings  *fakeBookingRepo
	holds     *fakeHoldRepo
	clients   *fakeClientRepo
	catalog   *fakeCatalogRepo
	history   *fakeHistoryRepo
	reminders *fakeReminders
	uc        *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{},
		holds:    &fakeHoldRepo{},
		clients:  &fakeClientRepo{},
		catalog: &fakeCatalogRepo{
			service: &domain.Service{
				ID:              "svc-1",
				DurationMinutes: 60,
				PriceCents:      150000,
				Currency:        "RUB",
				IsActive:        true,
			},
			staffByID: map[string]*domain.StaffProfile{
				"stf-1": {ID: "stf-1", UserID: "u-anna", IsActive: true},
				"stf-2": {ID: "stf-2", UserID: "u-olga", IsActive: true},
			},
			staffByUser: map[string]*domain.StaffProfile{
				"u-anna": {ID: "stf-1", UserID: "u-anna", IsActive: true},
				"u-olga": {ID: "stf-2", UserID: "u-olga", IsActive: true},
			},
		},
		history:   &fakeHistoryRepo{},
		reminders: &fakeReminders{},
	}

	f.uc = NewUseCase(f.bookings, f.holds, f.clients, f.catalog, f.history, f.reminders, passthroughTx{}, nopLogger{})
	f.uc.timeProvider = fixedTime{t: now}

	return f
}

func adminRequest() *Request {
	return &Request{
		TenantID:    "t-1",
		ActorUserID: "u-admin",
		ActorRole:   domain.RoleAdmin,
		ServiceID:   "svc-1",
		StaffID:     ptr.Ptr("stf-1"),
		StartAtISO:  slotStart.Format(time.RFC3339),
		ClientName:  "Иван Петров",
		ClientPhone: "+79123456789",
	}
}

func TestExecute_AdminCreatesBooking(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.InternalNote = ptr.Ptr("постоянный клиент")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "bk-1", resp.BookingID)
	assert.Equal(t, "stf-1", resp.StaffID)
	assert.Equal(t, domain.StatusPlanned, resp.Status)

	require.NotNil(t, f.bookings.created)
	assert.Equal(t, ptr.Ptr("постоянный клиент"), f.bookings.created.InternalNote)
	require.NotNil(t, f.bookings.created.CreatedByUserID)
	assert.Equal(t, "u-admin", *f.bookings.created.CreatedByUserID)

	require.Len(t, f.history.entries, 1)
	assert.Equal(t, domain.HistoryActionCreatedAdmin, f.history.entries[0].Action)
	require.NotNil(t, f.history.entries[0].ActorRole)
	assert.Equal(t, domain.RoleAdmin, *f.history.entries[0].ActorRole)
}

func TestExecute_StaffBooksOnlyToOwnProfile(t *testing.T) {
	// Мастер подсовывает чужой staffId - запись молча уходит на его профиль
	f := newFixture()

	req := adminRequest()
	req.ActorUserID = "u-anna"
	req.ActorRole = domain.RoleStaff
	req.StaffID = ptr.Ptr("stf-2")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "stf-1", resp.StaffID)
	require.NotNil(t, f.bookings.created)
	assert.Equal(t, "stf-1", f.bookings.created.StaffID)
}

func TestExecute_StaffWithoutProfile(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.ActorUserID = "u-ghost"
	req.ActorRole = domain.RoleStaff

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_ClientRoleForbidden(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.ActorRole = domain.RoleClient

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_AdminWithoutStaffID(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.StaffID = nil

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OverlappingBooking_ReturnsConflict(t *testing.T) {
	f := newFixture()
	f.bookings.overlapping = []*domain.Booking{{
		StartAt: slotStart.Add(-30 * time.Minute),
		EndAt:   slotStart.Add(30 * time.Minute),
		Status:  domain.StatusPlanned,
	}}

	_, err := f.uc.Execute(context.Background(), adminRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_LiveHoldBlocksAdmin(t *testing.T) {
	// Клиент удерживает слот - админ уступает
	f := newFixture()
	f.holds.liveOverlap = true

	_, err := f.uc.Execute(context.Background(), adminRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_RemindersOnlyWithConsent(t *testing.T) {
	f := newFixture()

	req := adminRequest()
	req.ConsentMarketing = true

	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"bk-1"}, f.reminders.scheduled)

	f2 := newFixture()
	_, err = f2.uc.Execute(context.Background(), adminRequest())
	require.NoError(t, err)
	assert.Empty(t, f2.reminders.scheduled)
}

package admin_update_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type statusUpdate struct {
	status          domain.BookingStatus
	cancelledReason *string
	internalNote    *string
}

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error
	updated *statusUpdate
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _, _ string) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _, _ string, status domain.BookingStatus, cancelledReason, internalNote *string) error {
	f.updated = &statusUpdate{status: status, cancelledReason: cancelledReason, internalNote: internalNote}
	return nil
}

type fakeCatalogRepo struct {
	staffByUser map[string]*domain.StaffProfile
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

func plannedBooking() *domain.Booking {
	return &domain.Booking{
		ID:       "bk-1",
		TenantID: "t-1",
		StaffID:  "stf-1",
		StartAt:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndAt:    time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		Status:   domain.StatusPlanned,
	}
}

type fixture struct {
	bookings *fakeBookingRepo
	history  *fakeHistoryRepo
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{booking: plannedBooking()},
		history:  &fakeHistoryRepo{},
	}

	catalog := &fakeCatalogRepo{staffByUser: map[string]*domain.StaffProfile{
		"u-anna": {ID: "stf-1", UserID: "u-anna", IsActive: true},
		"u-olga": {ID: "stf-2", UserID: "u-olga", IsActive: true},
	}}

	f.uc = NewUseCase(f.bookings, catalog, f.history, passthroughTx{}, nopLogger{})

	return f
}

func adminRequest(status domain.BookingStatus) *Request {
	return &Request{
		TenantID:    "t-1",
		ActorUserID: "u-admin",
		ActorRole:   domain.RoleAdmin,
		BookingID:   "bk-1",
		NewStatus:   status,
	}
}

func TestExecute_MarksArrived(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusArrived))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusArrived, resp.Status)
	require.NotNil(t, f.bookings.updated)
	assert.Equal(t, domain.StatusArrived, f.bookings.updated.status)
	assert.Nil(t, f.bookings.updated.cancelledReason)

	require.Len(t, f.history.entries, 1)
	entry := f.history.entries[0]
	assert.Equal(t, domain.HistoryActionStatusChanged, entry.Action)
	require.NotNil(t, entry.StatusFrom)
	assert.Equal(t, domain.StatusPlanned, *entry.StatusFrom)
	require.NotNil(t, entry.StatusTo)
	assert.Equal(t, domain.StatusArrived, *entry.StatusTo)
}

func TestExecute_CancelWithoutReason_UsesDefault(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusCancelled))
	require.NoError(t, err)

	require.NotNil(t, resp.CancelledReason)
	assert.Equal(t, domain.DefaultCancelReason, *resp.CancelledReason)
	require.NotNil(t, f.bookings.updated.cancelledReason)
	assert.Equal(t, domain.DefaultCancelReason, *f.bookings.updated.cancelledReason)
}

func TestExecute_CancelWithReason(t *testing.T) {
	f := newFixture()

	req := adminRequest(domain.StatusCancelled)
	req.CancelReason = ptr.Ptr("Клиент попросил перенести")

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.CancelledReason)
	assert.Equal(t, "Клиент попросил перенести", *resp.CancelledReason)
}

func TestExecute_TerminalStatus_RejectsTransition(t *testing.T) {
	f := newFixture()
	f.bookings.booking.Status = domain.StatusCancelled

	_, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusArrived))
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, f.bookings.updated)
	assert.Empty(t, f.history.entries)
}

func TestExecute_StaffUpdatesOwnBooking(t *testing.T) {
	f := newFixture()

	req := adminRequest(domain.StatusNoShow)
	req.ActorUserID = "u-anna"
	req.ActorRole = domain.RoleStaff

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, resp.Status)
}

func TestExecute_StaffCannotTouchForeignBooking(t *testing.T) {
	f := newFixture()

	req := adminRequest(domain.StatusArrived)
	req.ActorUserID = "u-olga" // профиль stf-2, запись принадлежит stf-1
	req.ActorRole = domain.RoleStaff

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, f.bookings.updated)
}

func TestExecute_ClientRoleForbidden(t *testing.T) {
	f := newFixture()

	req := adminRequest(domain.StatusArrived)
	req.ActorRole = domain.RoleClient

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_BookingNotFound(t *testing.T) {
	f := newFixture()
	f.bookings.booking = nil
	f.bookings.getErr = bookingRepo.ErrBookingNotFound

	_, err := f.uc.Execute(context.Background(), adminRequest(domain.StatusArrived))
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_UnknownStatus(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), adminRequest("rescheduled"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

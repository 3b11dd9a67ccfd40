package admin_list_bookings

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

type fakeBookingRepo struct {
	lastFilter *domain.BookingsRangeFilter
	bookings   []*domain.BookingWithNames
}

func (f *fakeBookingRepo) ListRangeWithNames(_ context.Context, filter domain.BookingsRangeFilter) ([]*domain.BookingWithNames, error) {
	f.lastFilter = &filter
	return f.bookings, nil
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

func newTestUseCase(bookings *fakeBookingRepo) *UseCase {
	catalog := &fakeCatalogRepo{staffByUser: map[string]*domain.StaffProfile{
		"u-anna": {ID: "stf-1", UserID: "u-anna", IsActive: true},
	}}
	return NewUseCase(bookings, catalog, nopLogger{})
}

func adminRequest() *Request {
	return &Request{
		TenantID:    "t-1",
		TenantTZ:    "Europe/Moscow",
		ActorUserID: "u-admin",
		ActorRole:   domain.RoleAdmin,
		FromDateISO: "2026-03-02",
		ToDateISO:   "2026-03-08",
	}
}

func TestExecute_AdminSeesWholeRange(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.BookingWithNames{
		{Booking: domain.Booking{ID: "bk-1"}, ServiceName: "Стрижка", StaffName: "Анна"},
	}}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), adminRequest())
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	require.NotNil(t, repo.lastFilter)
	assert.Nil(t, repo.lastFilter.StaffID)

	// [2026-03-02 00:00, 2026-03-09 00:00) по Москве, UTC+3
	assert.Equal(t, time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC), repo.lastFilter.From)
	assert.Equal(t, time.Date(2026, 3, 8, 21, 0, 0, 0, time.UTC), repo.lastFilter.To)
}

func TestExecute_AdminWithStaffFilter(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := adminRequest()
	req.StaffID = ptr.Ptr("stf-2")

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.StaffID)
	assert.Equal(t, "stf-2", *repo.lastFilter.StaffID)
}

func TestExecute_StaffPinnedToOwnProfile(t *testing.T) {
	// Переданный фильтр по чужому мастеру игнорируется
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := adminRequest()
	req.ActorUserID = "u-anna"
	req.ActorRole = domain.RoleStaff
	req.StaffID = ptr.Ptr("stf-2")

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.StaffID)
	assert.Equal(t, "stf-1", *repo.lastFilter.StaffID)
}

func TestExecute_StaffWithoutProfile_ReturnsEmptyList(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo)

	req := adminRequest()
	req.ActorUserID = "u-ghost"
	req.ActorRole = domain.RoleStaff

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
	// До хранилища запрос не дошёл
	assert.Nil(t, repo.lastFilter)
}

func TestExecute_ClientRoleForbidden(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := adminRequest()
	req.ActorRole = domain.RoleClient

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestExecute_FromAfterTo(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	req := adminRequest()
	req.FromDateISO = "2026-03-10"
	req.ToDateISO = "2026-03-02"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

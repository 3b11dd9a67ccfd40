package admin_list_bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/timeutil"
)

// UseCase use case выборки записей за период для календаря админки.
//
// Видимость зависит от роли: owner/admin видят записи всех мастеров
// (с опциональным фильтром), staff - только свои, переданный фильтр
// у staff игнорируется.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute выполняет use case выборки записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdminListBookings: tenant=%s, from=%s, to=%s, actor=%s (%s)",
		req.TenantID, req.FromDateISO, req.ToDateISO, req.ActorUserID, req.ActorRole)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdminListBookings: validation failed: %v", err)
		return nil, err
	}

	if !req.ActorRole.CanManageBookings() {
		return nil, ErrForbidden
	}

	loc, err := time.LoadLocation(req.TenantTZ)
	if err != nil {
		uc.logger.Warn("AdminListBookings: unknown tenant timezone %q: %v", req.TenantTZ, err)
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.TenantTZ)
	}

	// 2. Границы периода: [from 00:00, to+1d 00:00) в зоне тенанта.
	// Конец дня вычисляется добавлением календарного дня, не 24 часов -
	// иначе ломаются дни перехода на летнее/зимнее время.
	from, err := timeutil.LocalDayStartToUTC(req.FromDateISO, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid from date: %v", ErrInvalidInput, err)
	}

	toDayStart, err := time.ParseInLocation(timeutil.DateFormat, req.ToDateISO, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid to date: %v", ErrInvalidInput, err)
	}
	to := toDayStart.AddDate(0, 0, 1).UTC()

	if !from.Before(to) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	// 3. Область видимости по роли
	staffFilter := req.StaffID
	if req.ActorRole == domain.RoleStaff {
		staff, err := uc.catalogRepo.GetActiveStaffByUserID(ctx, req.TenantID, req.ActorUserID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffNotFound) {
				// У пользователя с ролью staff нет активного профиля -
				// календарь для него пуст, это не ошибка
				uc.logger.Info("AdminListBookings: no staff profile for user=%s, returning empty list", req.ActorUserID)
				return &Response{Bookings: []*domain.BookingWithNames{}}, nil
			}
			return nil, fmt.Errorf("%w: failed to get staff by user: %v", ErrInternal, err)
		}
		staffFilter = &staff.ID
	}

	bookings, err := uc.bookingRepo.ListRangeWithNames(ctx, domain.BookingsRangeFilter{
		TenantID: req.TenantID,
		From:     from,
		To:       to,
		StaffID:  staffFilter,
	})
	if err != nil {
		uc.logger.Error("AdminListBookings: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	uc.logger.Info("AdminListBookings: found %d bookings", len(bookings))

	return &Response{Bookings: bookings}, nil
}

package list_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/timeutil"
)

// UseCase use case расчёта доступных слотов.
// Read-only: единственный источник истины для вопроса "можно ли предложить
// этот инстант" - им пользуются и публичная выдача, и создание hold.
type UseCase struct {
	catalogRepo  CatalogRepository
	bookingRepo  BookingRepository
	holdRepo     HoldRepository
	stepMinutes  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	holdRepo HoldRepository,
	stepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		bookingRepo:  bookingRepo,
		holdRepo:     holdRepo,
		stepMinutes:  stepMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
//
// Листинг слотов - запрос, а не команда: отсутствующая/неактивная услуга
// или мастер, как и день без правила доступности, дают пустой список,
// а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListSlots: tenant=%s, service=%s, staff=%s, date=%s",
		req.TenantID, req.ServiceID, req.StaffID, req.DateISO)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ListSlots: validation failed: %v", err)
		return nil, err
	}

	loc, err := time.LoadLocation(req.TenantTZ)
	if err != nil {
		uc.logger.Warn("ListSlots: unknown tenant timezone %q: %v", req.TenantTZ, err)
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.TenantTZ)
	}

	emptyResponse := &Response{
		TenantID:  req.TenantID,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		DateISO:   req.DateISO,
		Slots:     []domain.Slot{},
	}

	// 2. Услуга: не найдена/неактивна/чужой тенант => пустой список
	service, err := uc.catalogRepo.GetActiveService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Info("ListSlots: service id=%s not found for tenant=%s", req.ServiceID, req.TenantID)
			return emptyResponse, nil
		}
		uc.logger.Error("ListSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Мастер: не найден/неактивен/чужой тенант => пустой список
	if _, err := uc.catalogRepo.GetActiveStaff(ctx, req.TenantID, req.StaffID); err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			uc.logger.Info("ListSlots: staff id=%s not found for tenant=%s", req.StaffID, req.TenantID)
			return emptyResponse, nil
		}
		uc.logger.Error("ListSlots: failed to get staff id=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 4. Границы дня в UTC
	dayStart, err := timeutil.LocalDayStartToUTC(req.DateISO, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	dayEnd := timeutil.AddMinutes(dayStart, 24*60)

	// 5. Правило доступности на день недели; нет правила => мастер не принимает
	weekday := timeutil.ISOWeekday(dayStart, loc)
	rule, err := uc.catalogRepo.GetRule(ctx, req.TenantID, req.StaffID, weekday)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRuleNotFound) {
			uc.logger.Info("ListSlots: no availability rule for staff=%s weekday=%d", req.StaffID, weekday)
			return emptyResponse, nil
		}
		uc.logger.Error("ListSlots: failed to get rule: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rule: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 6. Занятые интервалы: неотменённые записи и живые hold, пересекающие день
	bookings, err := uc.bookingRepo.ListActiveByStaffInterval(ctx, req.TenantID, req.StaffID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("ListSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	holds, err := uc.holdRepo.ListLiveByStaffInterval(ctx, req.TenantID, req.StaffID, dayStart, dayEnd, now)
	if err != nil {
		uc.logger.Error("ListSlots: failed to get holds: %v", err)
		return nil, fmt.Errorf("%w: failed to get holds: %v", ErrInternal, err)
	}

	busy := make([]busyInterval, 0, len(bookings)+len(holds))
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		busy = append(busy, busyInterval{Start: b.StartAt, End: b.EndAt})
	}
	for _, h := range holds {
		// Истёкший hold инертен, даже если хранилище его ещё не убрало
		if h.IsExpired(now) {
			continue
		}
		busy = append(busy, busyInterval{Start: h.StartAt, End: h.EndAt})
	}

	// 7. Генерация слотов
	slots := buildDaySlots(rule, service.DurationMinutes, uc.stepMinutes, dayStart, now, busy)

	uc.logger.Info("ListSlots: generated %d slots for tenant=%s, staff=%s, date=%s",
		len(slots), req.TenantID, req.StaffID, req.DateISO)

	return &Response{
		TenantID:  req.TenantID,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		DateISO:   req.DateISO,
		Slots:     slots,
	}, nil
}

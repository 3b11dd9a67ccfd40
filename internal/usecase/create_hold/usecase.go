package create_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	holdRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/hold"
	listSlots "github.com/m04kA/Salon-BookingService/internal/usecase/list_slots"
	"github.com/m04kA/Salon-BookingService/pkg/timeutil"
)

// UseCase use case создания hold - краткоживущего эксклюзивного
// удержания слота на время многошагового подтверждения.
//
// Защита от гонок двухслойная: прикладная ре-валидация через расчёт
// слотов плюс уникальный констрейнт (tenant, staff, start_at) в хранилище.
// Оба слоя обязательны - между чтением и записью есть окно.
type UseCase struct {
	slotLister   SlotLister
	catalogRepo  CatalogRepository
	holdRepo     HoldRepository
	holdTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotLister SlotLister,
	catalogRepo CatalogRepository,
	holdRepo HoldRepository,
	holdTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotLister:   slotLister,
		catalogRepo:  catalogRepo,
		holdRepo:     holdRepo,
		holdTTL:      holdTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания hold
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateHold: tenant=%s, service=%s, staff=%s, startAt=%s",
		req.TenantID, req.ServiceID, req.StaffID, req.StartAtISO)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHold: validation failed: %v", err)
		return nil, err
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAtISO)
	if err != nil {
		uc.logger.Warn("CreateHold: invalid startAt %q: %v", req.StartAtISO, err)
		return nil, fmt.Errorf("%w: startAt must be ISO-8601: %v", ErrInvalidInput, err)
	}
	startAt = startAt.UTC()

	loc, err := time.LoadLocation(req.TenantTZ)
	if err != nil {
		uc.logger.Warn("CreateHold: unknown tenant timezone %q: %v", req.TenantTZ, err)
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrInvalidInput, req.TenantTZ)
	}

	// 2. Услуга: определяет длительность, а значит и конец интервала
	service, err := uc.catalogRepo.GetActiveService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		uc.logger.Warn("CreateHold: service id=%s not found for tenant=%s: %v", req.ServiceID, req.TenantID, err)
		return nil, ErrServiceNotFound
	}

	endAt := timeutil.AddMinutes(startAt, service.DurationMinutes)

	// 3. Обязательная ре-валидация: запрошенное время должно присутствовать
	// в актуальной выдаче слотов на этот календарный день тенанта
	dateISO := startAt.In(loc).Format(domain.DateFormat)

	slotsResp, err := uc.slotLister.Execute(ctx, &listSlots.Request{
		TenantID:  req.TenantID,
		TenantTZ:  req.TenantTZ,
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		DateISO:   dateISO,
	})
	if err != nil {
		uc.logger.Error("CreateHold: failed to list slots for re-validation: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	if !slotExists(slotsResp.Slots, startAt) {
		uc.logger.Warn("CreateHold: startAt=%s is not an offerable slot (tenant=%s, staff=%s)",
			startAt.Format(time.RFC3339), req.TenantID, req.StaffID)
		return nil, ErrSlotTaken
	}

	now := uc.timeProvider.Now()

	// 4. Оппортунистическая уборка истёкших hold этого мастера.
	// Best-effort: ошибка не мешает созданию нового hold.
	if deleted, err := uc.holdRepo.DeleteExpired(ctx, req.TenantID, req.StaffID, now); err != nil {
		uc.logger.Warn("CreateHold: failed to sweep expired holds: %v", err)
	} else if deleted > 0 {
		uc.logger.Info("CreateHold: swept %d expired holds for staff=%s", deleted, req.StaffID)
	}

	// 5. Создаём hold; проигрыш гонки конкуренту приходит из хранилища
	// как нарушение уникальности
	hold := &domain.BookingHold{
		TenantID:    req.TenantID,
		ServiceID:   req.ServiceID,
		StaffID:     req.StaffID,
		StartAt:     startAt,
		EndAt:       endAt,
		ExpiresAt:   now.Add(uc.holdTTL),
		ClientPhone: req.ClientPhone,
		IP:          req.IP,
	}

	created, err := uc.holdRepo.Create(ctx, hold)
	if err != nil {
		if errors.Is(err, holdRepo.ErrHoldConflict) {
			uc.logger.Warn("CreateHold: lost race for staff=%s startAt=%s",
				req.StaffID, startAt.Format(time.RFC3339))
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateHold: failed to create hold: %v", err)
		return nil, fmt.Errorf("%w: failed to create hold: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateHold: created hold id=%s, expiresAt=%s",
		created.ID, created.ExpiresAt.UTC().Format(time.RFC3339))

	return &Response{
		HoldID:    created.ID,
		ExpiresAt: created.ExpiresAt,
	}, nil
}

// slotExists проверяет точное совпадение запрошенного начала с одним из слотов
func slotExists(slots []domain.Slot, startAt time.Time) bool {
	for _, s := range slots {
		if s.StartAt.Equal(startAt) {
			return true
		}
	}
	return false
}

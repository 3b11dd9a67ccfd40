package admin_create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/phone"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
	"github.com/m04kA/Salon-BookingService/pkg/timeutil"
)

// UseCase use case создания записи из админки.
//
// В отличие от онлайн-записи, админ не ограничен расписанием мастера:
// расчёт слотов не выполняется, запись можно поставить на любое время.
// Жёсткими остаются только два запрета - пересечение с активной записью
// и пересечение с живым hold (клиент, удерживающий слот, выигрывает).
type UseCase struct {
	bookingRepo  BookingRepository
	holdRepo     HoldRepository
	clientRepo   ClientRepository
	catalogRepo  CatalogRepository
	historyRepo  HistoryRepository
	reminders    ReminderScheduler
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	holdRepo HoldRepository,
	clientRepo ClientRepository,
	catalogRepo CatalogRepository,
	historyRepo HistoryRepository,
	reminders ReminderScheduler,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		holdRepo:     holdRepo,
		clientRepo:   clientRepo,
		catalogRepo:  catalogRepo,
		historyRepo:  historyRepo,
		reminders:    reminders,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи администратором или мастером
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdminCreateBooking: tenant=%s, actor=%s (%s), service=%s",
		req.TenantID, req.ActorUserID, req.ActorRole, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdminCreateBooking: validation failed: %v", err)
		return nil, err
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAtISO)
	if err != nil {
		uc.logger.Warn("AdminCreateBooking: invalid startAt %q: %v", req.StartAtISO, err)
		return nil, fmt.Errorf("%w: startAt must be ISO-8601: %v", ErrInvalidInput, err)
	}
	startAt = startAt.UTC()

	normalizedPhone := phone.NormalizeE164(req.ClientPhone)
	if normalizedPhone == "" {
		uc.logger.Warn("AdminCreateBooking: phone %q is not normalizable", req.ClientPhone)
		return nil, fmt.Errorf("%w: clientPhone is not a valid phone number", ErrInvalidInput)
	}

	// 2. Определяем мастера по роли актора
	staff, err := uc.resolveStaff(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Услуга: длительность и снапшот цены
	service, err := uc.catalogRepo.GetActiveService(ctx, req.TenantID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("AdminCreateBooking: service id=%s not found for tenant=%s", req.ServiceID, req.TenantID)
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	endAt := timeutil.AddMinutes(startAt, service.DurationMinutes)

	var resp *Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		now := uc.timeProvider.Now()

		// 4. Пересечение с активными записями мастера
		overlapping, err := uc.bookingRepo.ListActiveByStaffInterval(txCtx, req.TenantID, staff.ID, startAt, endAt)
		if err != nil {
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			return ErrSlotTaken
		}

		// 5. Живой hold тоже блокирует: клиент, удерживающий слот,
		// не должен получить отказ при подтверждении из-за админа
		held, err := uc.holdRepo.HasLiveOverlap(txCtx, req.TenantID, staff.ID, startAt, endAt, now)
		if err != nil {
			return fmt.Errorf("%w: failed to check holds: %v", ErrInternal, err)
		}
		if held {
			return ErrSlotTaken
		}

		// 6. Клиент: upsert по (tenant, phone)
		clientRecord := &domain.Client{
			TenantID:         req.TenantID,
			FullName:         req.ClientName,
			Phone:            normalizedPhone,
			ConsentMarketing: req.ConsentMarketing,
		}
		if req.ConsentMarketing {
			clientRecord.ConsentAt = ptr.Ptr(now)
		}

		upserted, err := uc.clientRepo.UpsertByPhone(txCtx, clientRecord)
		if err != nil {
			return fmt.Errorf("%w: failed to upsert client: %v", ErrInternal, err)
		}

		// 7. Создаём запись
		booking := &domain.Booking{
			TenantID:        req.TenantID,
			ServiceID:       service.ID,
			StaffID:         staff.ID,
			ClientID:        upserted.ID,
			StartAt:         startAt,
			EndAt:           endAt,
			Status:          domain.StatusPlanned,
			PriceCents:      service.PriceCents,
			Currency:        service.Currency,
			Notes:           req.Notes,
			InternalNote:    req.InternalNote,
			CreatedByUserID: ptr.Ptr(req.ActorUserID),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 8. След в истории
		historyEntry := &domain.BookingHistory{
			TenantID:        req.TenantID,
			BookingID:       created.ID,
			ChangedByUserID: ptr.Ptr(req.ActorUserID),
			ActorRole:       ptr.Ptr(req.ActorRole),
			Action:          domain.HistoryActionCreatedAdmin,
			StatusTo:        ptr.Ptr(domain.StatusPlanned),
			Note:            ptr.Ptr("Создано из админки"),
		}
		if err := uc.historyRepo.Append(txCtx, historyEntry); err != nil {
			return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
		}

		resp = &Response{
			BookingID:  created.ID,
			Status:     created.Status,
			StaffID:    created.StaffID,
			StartAt:    created.StartAt,
			EndAt:      created.EndAt,
			PriceCents: created.PriceCents,
			Currency:   created.Currency,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if req.ConsentMarketing {
		if err := uc.reminders.ScheduleForBooking(ctx, req.TenantID, resp.BookingID, resp.StartAt); err != nil {
			uc.logger.Error("AdminCreateBooking: failed to schedule reminders for booking=%s: %v", resp.BookingID, err)
		}
	}

	uc.logger.Info("AdminCreateBooking: created booking id=%s for staff=%s", resp.BookingID, resp.StaffID)

	return resp, nil
}

// resolveStaff определяет целевого мастера по роли актора.
// Мастер записывает только к себе: переданный staffID игнорируется.
// Owner и admin обязаны указать мастера явно.
func (uc *UseCase) resolveStaff(ctx context.Context, req *Request) (*domain.StaffProfile, error) {
	switch req.ActorRole {
	case domain.RoleStaff:
		staff, err := uc.catalogRepo.GetActiveStaffByUserID(ctx, req.TenantID, req.ActorUserID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffNotFound) {
				uc.logger.Warn("AdminCreateBooking: no staff profile for user=%s", req.ActorUserID)
				return nil, ErrStaffNotFound
			}
			return nil, fmt.Errorf("%w: failed to get staff by user: %v", ErrInternal, err)
		}
		return staff, nil

	case domain.RoleOwner, domain.RoleAdmin:
		if req.StaffID == nil || *req.StaffID == "" {
			return nil, fmt.Errorf("%w: staffID is required", ErrInvalidInput)
		}
		staff, err := uc.catalogRepo.GetActiveStaff(ctx, req.TenantID, *req.StaffID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffNotFound) {
				uc.logger.Warn("AdminCreateBooking: staff id=%s not found for tenant=%s", *req.StaffID, req.TenantID)
				return nil, ErrStaffNotFound
			}
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		return staff, nil

	case domain.RoleClient:
		return nil, ErrForbidden

	default:
		return nil, ErrForbidden
	}
}

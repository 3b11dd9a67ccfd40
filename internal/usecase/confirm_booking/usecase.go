package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	holdRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/hold"
	"github.com/m04kA/Salon-BookingService/pkg/phone"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// UseCase use case подтверждения hold - превращения удержания в запись.
//
// Вся проверочно-записывающая часть выполняется в одной serializable
// транзакции: hold блокируется FOR UPDATE, дубликат по точному start_at
// проверяется до вставки, hold удаляется после создания записи. Любая
// ошибка внутри транзакции откатывает всё - частичных артефактов нет.
type UseCase struct {
	holdRepo     HoldRepository
	bookingRepo  BookingRepository
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
	holdRepo HoldRepository,
	bookingRepo BookingRepository,
	clientRepo ClientRepository,
	catalogRepo CatalogRepository,
	historyRepo HistoryRepository,
	reminders ReminderScheduler,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		holdRepo:     holdRepo,
		bookingRepo:  bookingRepo,
		clientRepo:   clientRepo,
		catalogRepo:  catalogRepo,
		historyRepo:  historyRepo,
		reminders:    reminders,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подтверждения записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: tenant=%s, hold=%s", req.TenantID, req.HoldID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	normalizedPhone := phone.NormalizeE164(req.ClientPhone)
	if normalizedPhone == "" {
		uc.logger.Warn("ConfirmBooking: phone %q is not normalizable", req.ClientPhone)
		return nil, fmt.Errorf("%w: clientPhone is not a valid phone number", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		now := uc.timeProvider.Now()

		// 2. Загружаем hold с блокировкой строки
		hold, err := uc.holdRepo.GetByID(txCtx, req.TenantID, req.HoldID)
		if err != nil {
			if errors.Is(err, holdRepo.ErrHoldNotFound) {
				return ErrHoldNotFound
			}
			return fmt.Errorf("%w: failed to get hold: %v", ErrInternal, err)
		}

		// 3. Истёкший hold подтверждать нельзя - клиент начинает заново
		if hold.IsExpired(now) {
			return ErrHoldExpired
		}

		// 4. Дубликат по точному start_at: запись могла появиться
		// в обход hold (например, из админки)
		taken, err := uc.bookingRepo.ExistsActiveAtStart(txCtx, req.TenantID, hold.StaffID, hold.StartAt)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if taken {
			return ErrSlotTaken
		}

		// 5. Клиент: upsert по (tenant, phone)
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

		// 6. Услуга перечитывается здесь же: снапшот цены берётся
		// на момент подтверждения, не на момент создания hold
		service, err := uc.catalogRepo.GetActiveService(txCtx, req.TenantID, hold.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		staff, err := uc.catalogRepo.GetActiveStaff(txCtx, req.TenantID, hold.StaffID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrStaffNotFound) {
				return ErrStaffNotFound
			}
			return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		// 7. Создаём запись со снапшотом цены
		booking := &domain.Booking{
			TenantID:   req.TenantID,
			ServiceID:  hold.ServiceID,
			StaffID:    hold.StaffID,
			ClientID:   upserted.ID,
			StartAt:    hold.StartAt,
			EndAt:      hold.EndAt,
			Status:     domain.StatusPlanned,
			PriceCents: service.PriceCents,
			Currency:   service.Currency,
			Notes:      req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 8. След в истории
		historyEntry := &domain.BookingHistory{
			TenantID:  req.TenantID,
			BookingID: created.ID,
			ActorRole: ptr.Ptr(domain.RoleClient),
			Action:    domain.HistoryActionCreated,
			StatusTo:  ptr.Ptr(domain.StatusPlanned),
			Note:      ptr.Ptr("Создано через онлайн-запись"),
		}
		if err := uc.historyRepo.Append(txCtx, historyEntry); err != nil {
			return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
		}

		// 9. Hold своё отработал
		if err := uc.holdRepo.Delete(txCtx, req.TenantID, hold.ID); err != nil {
			return fmt.Errorf("%w: failed to delete hold: %v", ErrInternal, err)
		}

		resp = &Response{
			BookingID:   created.ID,
			Status:      created.Status,
			StartAt:     created.StartAt,
			EndAt:       created.EndAt,
			ServiceName: service.Name,
			StaffName:   staff.DisplayName,
			ClientName:  upserted.FullName,
			PriceCents:  created.PriceCents,
			Currency:    created.Currency,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Напоминания планируются после коммита: запись уже существует,
	// сбой планировщика не должен её откатывать
	if req.ConsentMarketing {
		if err := uc.reminders.ScheduleForBooking(ctx, req.TenantID, resp.BookingID, resp.StartAt); err != nil {
			uc.logger.Error("ConfirmBooking: failed to schedule reminders for booking=%s: %v", resp.BookingID, err)
		}
	}

	uc.logger.Info("ConfirmBooking: created booking id=%s from hold=%s", resp.BookingID, req.HoldID)

	return resp, nil
}

package admin_update_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// UseCase use case смены статуса записи.
//
// Машина состояний намеренно простая: единственный нетерминальный
// статус - planned, из него доступны arrived/no_show/cancelled.
// Отмена не освобождает запись для переиспользования - повторный
// визит оформляется новым Booking.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	historyRepo HistoryRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	historyRepo HistoryRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case смены статуса записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdminUpdateStatus: tenant=%s, booking=%s, status=%s, actor=%s (%s)",
		req.TenantID, req.BookingID, req.NewStatus, req.ActorUserID, req.ActorRole)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdminUpdateStatus: validation failed: %v", err)
		return nil, err
	}

	if !req.ActorRole.CanManageBookings() {
		return nil, ErrForbidden
	}

	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.TenantID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Мастер распоряжается только своими записями
		if req.ActorRole == domain.RoleStaff {
			staff, err := uc.catalogRepo.GetActiveStaffByUserID(txCtx, req.TenantID, req.ActorUserID)
			if err != nil {
				if errors.Is(err, catalogRepo.ErrStaffNotFound) {
					return ErrForbidden
				}
				return fmt.Errorf("%w: failed to get staff by user: %v", ErrInternal, err)
			}
			if staff.ID != booking.StaffID {
				uc.logger.Warn("AdminUpdateStatus: staff=%s tried to update booking=%s of staff=%s",
					staff.ID, booking.ID, booking.StaffID)
				return ErrForbidden
			}
		}

		// 3. Допустимость перехода
		if !booking.CanTransitionTo(req.NewStatus) {
			uc.logger.Warn("AdminUpdateStatus: transition %s -> %s is not allowed for booking=%s",
				booking.Status, req.NewStatus, booking.ID)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, req.NewStatus)
		}

		var cancelledReason *string
		if req.NewStatus == domain.StatusCancelled {
			cancelledReason = req.CancelReason
			if cancelledReason == nil || *cancelledReason == "" {
				cancelledReason = ptr.Ptr(domain.DefaultCancelReason)
			}
		}

		if err := uc.bookingRepo.UpdateStatus(txCtx, req.TenantID, booking.ID, req.NewStatus, cancelledReason, req.InternalNote); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// 4. След в истории с переходом from -> to
		historyEntry := &domain.BookingHistory{
			TenantID:        req.TenantID,
			BookingID:       booking.ID,
			ChangedByUserID: ptr.Ptr(req.ActorUserID),
			ActorRole:       ptr.Ptr(req.ActorRole),
			Action:          domain.HistoryActionStatusChanged,
			StatusFrom:      ptr.Ptr(booking.Status),
			StatusTo:        ptr.Ptr(req.NewStatus),
			Note:            cancelledReason,
		}
		if err := uc.historyRepo.Append(txCtx, historyEntry); err != nil {
			return fmt.Errorf("%w: failed to append history: %v", ErrInternal, err)
		}

		resp = &Response{
			BookingID:       booking.ID,
			Status:          req.NewStatus,
			CancelledReason: cancelledReason,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("AdminUpdateStatus: booking=%s is now %s", resp.BookingID, resp.Status)

	return resp, nil
}

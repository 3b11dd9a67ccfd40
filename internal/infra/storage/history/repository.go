package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

// Repository append-only репозиторий аудита бронирований.
// Только вставка: обновление и удаление строк истории запрещены контрактом.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория истории
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет событие в историю бронирования
func (r *Repository) Append(ctx context.Context, h *domain.BookingHistory) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("booking_history").
		Columns(
			"id",
			"tenant_id",
			"booking_id",
			"changed_by_user_id",
			"actor_role",
			"action",
			"status_from",
			"status_to",
			"note",
		).
		Values(
			h.ID,
			h.TenantID,
			h.BookingID,
			h.ChangedByUserID,
			h.ActorRole,
			h.Action,
			h.StatusFrom,
			h.StatusTo,
			h.Note,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

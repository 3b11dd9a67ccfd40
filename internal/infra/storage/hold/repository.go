package hold

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

// Код ошибки postgres unique_violation
const pqUniqueViolation = "23505"

const holdColumns = "id, tenant_id, service_id, staff_id, start_at, end_at, expires_at, client_phone, ip, created_at"

// Repository репозиторий для работы с удержаниями слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория hold
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает hold.
// Уникальный индекс (tenant_id, staff_id, start_at) - последний рубеж
// против гонки: прикладная ре-валидация слота имеет окно между чтением
// и записью, констрейнт его закрывает. Нарушение мапится в ErrHoldConflict.
func (r *Repository) Create(ctx context.Context, h *domain.BookingHold) (*domain.BookingHold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("booking_holds").
		Columns(
			"id",
			"tenant_id",
			"service_id",
			"staff_id",
			"start_at",
			"end_at",
			"expires_at",
			"client_phone",
			"ip",
		).
		Values(
			h.ID,
			h.TenantID,
			h.ServiceID,
			h.StaffID,
			h.StartAt,
			h.EndAt,
			h.ExpiresAt,
			h.ClientPhone,
			h.IP,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return nil, ErrHoldConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time

	return h, nil
}

// GetByID получает hold по ID в пределах тенанта.
// Истёкший hold возвращается как есть - проверка expires_at на совести читателя.
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*domain.BookingHold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(holdColumns).
		From("booking_holds").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.BookingHold
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID, &h.TenantID, &h.ServiceID, &h.StaffID,
		&h.StartAt, &h.EndAt, &h.ExpiresAt, &h.ClientPhone, &h.IP, &h.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hold: %v", ErrScanRow, err)
	}

	return &h, nil
}

// ListLiveByStaffInterval получает живые (неистёкшие на момент now) hold
// мастера, пересекающиеся с интервалом [from, to)
func (r *Repository) ListLiveByStaffInterval(ctx context.Context, tenantID, staffID string, from, to, now time.Time) ([]*domain.BookingHold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(holdColumns).
		From("booking_holds").
		Where(squirrel.Eq{"tenant_id": tenantID, "staff_id": staffID}).
		Where(squirrel.Gt{"expires_at": now}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLiveByStaffInterval - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLiveByStaffInterval - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	holds := make([]*domain.BookingHold, 0)
	for rows.Next() {
		var h domain.BookingHold
		err := rows.Scan(
			&h.ID, &h.TenantID, &h.ServiceID, &h.StaffID,
			&h.StartAt, &h.EndAt, &h.ExpiresAt, &h.ClientPhone, &h.IP, &h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListLiveByStaffInterval - scan row: %v", ErrScanRow, err)
		}
		holds = append(holds, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLiveByStaffInterval - rows error: %v", ErrScanRow, err)
	}

	return holds, nil
}

// HasLiveOverlap проверяет, пересекается ли интервал [start, end)
// с каким-либо живым hold мастера. Используется админ-созданием записи:
// живой hold - мягкая блокировка, которую нельзя молча переписать.
func (r *Repository) HasLiveOverlap(ctx context.Context, tenantID, staffID string, start, end, now time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("booking_holds").
		Where(squirrel.Eq{"tenant_id": tenantID, "staff_id": staffID}).
		Where(squirrel.Gt{"expires_at": now}).
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasLiveOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasLiveOverlap - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// Delete удаляет hold (успешное подтверждение потребляет его)
func (r *Repository) Delete(ctx context.Context, tenantID, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_holds").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrHoldNotFound
	}

	return nil
}

// DeleteExpired удаляет истёкшие hold мастера (оппортунистическая уборка).
// Корректность от неё не зависит: читатели и так игнорируют истёкшие строки.
func (r *Repository) DeleteExpired(ctx context.Context, tenantID, staffID string, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_holds").
		Where(squirrel.Eq{"tenant_id": tenantID, "staff_id": staffID}).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

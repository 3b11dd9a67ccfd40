package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

const bookingColumns = "id, tenant_id, service_id, staff_id, client_id, start_at, end_at, status, " +
	"price_cents, currency, notes, internal_note, cancelled_reason, created_by_user_id, created_at, updated_at"

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись.
// Если в контексте передана активная транзакция, использует её -
// на путях подтверждения hold и админ-создания это обязательно,
// иначе проверка пересечений и вставка окажутся в разных транзакциях.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"tenant_id",
			"service_id",
			"staff_id",
			"client_id",
			"start_at",
			"end_at",
			"status",
			"price_cents",
			"currency",
			"notes",
			"internal_note",
			"created_by_user_id",
		).
		Values(
			b.ID,
			b.TenantID,
			b.ServiceID,
			b.StaffID,
			b.ClientID,
			b.StartAt,
			b.EndAt,
			b.Status,
			b.PriceCents,
			b.Currency,
			b.Notes,
			b.InternalNote,
			b.CreatedByUserID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает запись по ID в пределах тенанта
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListActiveByStaffInterval получает неотменённые записи мастера,
// пересекающиеся с интервалом [from, to).
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы конкурирующая
// запись на тот же интервал выстроилась в очередь.
func (r *Repository) ListActiveByStaffInterval(ctx context.Context, tenantID, staffID string, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns).
		From("bookings").
		Where(squirrel.Eq{"tenant_id": tenantID, "staff_id": staffID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByStaffInterval - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByStaffInterval - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ExistsActiveAtStart проверяет, занято ли точное время start_at у мастера
// неотменённой записью. Защита от дублей на пути подтверждения hold.
func (r *Repository) ExistsActiveAtStart(ctx context.Context, tenantID, staffID string, startAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"tenant_id": tenantID, "staff_id": staffID, "start_at": startAt}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAtStart - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActiveAtStart - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListRangeWithNames получает записи тенанта за период [from, to)
// с денормализованными именами услуги/мастера/клиента (для календаря).
// Опциональный фильтр по мастеру. Сортировка по началу записи.
func (r *Repository) ListRangeWithNames(ctx context.Context, filter domain.BookingsRangeFilter) ([]*domain.BookingWithNames, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"b.id", "b.tenant_id", "b.service_id", "b.staff_id", "b.client_id",
		"b.start_at", "b.end_at", "b.status", "b.price_cents", "b.currency",
		"b.notes", "b.internal_note", "b.cancelled_reason", "b.created_by_user_id",
		"b.created_at", "b.updated_at",
		"s.name", "sp.display_name", "c.full_name", "c.phone",
	).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Join("staff_profiles sp ON sp.id = b.staff_id").
		Join("clients c ON c.id = b.client_id").
		Where(squirrel.Eq{"b.tenant_id": filter.TenantID}).
		Where(squirrel.GtOrEq{"b.start_at": filter.From}).
		Where(squirrel.Lt{"b.start_at": filter.To}).
		OrderBy("b.start_at ASC")

	if filter.StaffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.staff_id": *filter.StaffID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRangeWithNames - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRangeWithNames - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingWithNames, 0)
	for rows.Next() {
		var b domain.BookingWithNames
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID, &b.TenantID, &b.ServiceID, &b.StaffID, &b.ClientID,
			&b.StartAt, &b.EndAt, &b.Status, &b.PriceCents, &b.Currency,
			&b.Notes, &b.InternalNote, &b.CancelledReason, &b.CreatedByUserID,
			&createdAt, &updatedAt,
			&b.ServiceName, &b.StaffName, &b.ClientName, &b.ClientPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListRangeWithNames - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		result = append(result, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListRangeWithNames - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus применяет переход статуса.
// Причина отмены пишется только при переходе в cancelled; внутренняя
// заметка обновляется, только если передана.
func (r *Repository) UpdateStatus(ctx context.Context, tenantID, id string, status domain.BookingStatus, cancelledReason, internalNote *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID})

	if status == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancelled_reason", cancelledReason)
	}
	if internalNote != nil {
		updateBuilder = updateBuilder.Set("internal_note", *internalNote)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID, &b.TenantID, &b.ServiceID, &b.StaffID, &b.ClientID,
		&b.StartAt, &b.EndAt, &b.Status, &b.PriceCents, &b.Currency,
		&b.Notes, &b.InternalNote, &b.CancelledReason, &b.CreatedByUserID,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

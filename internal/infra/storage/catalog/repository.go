package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

// Repository read-only репозиторий каталога: тенанты, услуги, мастера,
// правила доступности. Записью владеет административный CRUD каталога,
// который в это ядро не входит.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetTenantBySlug получает тенанта по маршрутному ключу
func (r *Repository) GetTenantBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "slug", "timezone", "currency", "created_at", "updated_at",
	).
		From("tenants").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTenantBySlug - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Tenant
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.Name, &t.Slug, &t.Timezone, &t.Currency, &t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTenantBySlug - scan tenant: %v", ErrScanRow, err)
	}

	return &t, nil
}

// GetActiveService получает активную услугу тенанта по ID.
// Услуга другого тенанта или неактивная считается не найденной.
func (r *Repository) GetActiveService(ctx context.Context, tenantID, serviceID string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "tenant_id", "name", "duration_minutes", "price_cents", "currency",
		"is_active", "created_at", "updated_at",
	).
		From("services").
		Where(squirrel.Eq{"id": serviceID, "tenant_id": tenantID, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.DurationMinutes, &s.PriceCents, &s.Currency,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveService - scan service: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetActiveStaff получает активный профиль мастера тенанта по ID
func (r *Repository) GetActiveStaff(ctx context.Context, tenantID, staffID string) (*domain.StaffProfile, error) {
	return r.getStaff(ctx, squirrel.Eq{"id": staffID, "tenant_id": tenantID, "is_active": true}, "GetActiveStaff")
}

// GetActiveStaffByUserID получает активный профиль мастера по ID пользователя.
// Используется для привязки staff-актора к его собственному профилю.
func (r *Repository) GetActiveStaffByUserID(ctx context.Context, tenantID, userID string) (*domain.StaffProfile, error) {
	return r.getStaff(ctx, squirrel.Eq{"user_id": userID, "tenant_id": tenantID, "is_active": true}, "GetActiveStaffByUserID")
}

func (r *Repository) getStaff(ctx context.Context, where squirrel.Eq, op string) (*domain.StaffProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "tenant_id", "user_id", "display_name", "is_active", "created_at", "updated_at",
	).
		From("staff_profiles").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var sp domain.StaffProfile
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&sp.ID, &sp.TenantID, &sp.UserID, &sp.DisplayName, &sp.IsActive, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan staff profile: %v", ErrScanRow, op, err)
	}

	return &sp, nil
}

// GetRule получает правило доступности мастера на день недели (ISO, 1=Пн..7=Вс)
func (r *Repository) GetRule(ctx context.Context, tenantID, staffID string, weekday int) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "tenant_id", "staff_id", "weekday",
		"start_minute", "end_minute", "break_start_minute", "break_end_minute",
	).
		From("availability_rules").
		Where(squirrel.Eq{"tenant_id": tenantID, "staff_id": staffID, "weekday": weekday}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRule - build select query: %v", ErrBuildQuery, err)
	}

	var rule domain.AvailabilityRule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID, &rule.TenantID, &rule.StaffID, &rule.Weekday,
		&rule.StartMinute, &rule.EndMinute, &rule.BreakStartMinute, &rule.BreakEndMinute,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRule - scan rule: %v", ErrScanRow, err)
	}

	return &rule, nil
}

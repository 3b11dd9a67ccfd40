package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Salon-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами тенанта
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByPhone создает клиента или обновляет имя/согласие существующего.
// Естественный ключ - (tenant_id, phone); телефон обязан быть уже
// нормализован вызывающей стороной. Два ввода одного номера дают одну строку.
func (r *Repository) UpsertByPhone(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("clients").
		Columns(
			"id",
			"tenant_id",
			"full_name",
			"phone",
			"consent_marketing",
			"consent_at",
		).
		Values(
			c.ID,
			c.TenantID,
			c.FullName,
			c.Phone,
			c.ConsentMarketing,
			c.ConsentAt,
		).
		Suffix(`ON CONFLICT (tenant_id, phone) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			consent_marketing = EXCLUDED.consent_marketing,
			consent_at = EXCLUDED.consent_at,
			updated_at = now()
		RETURNING id, consent_marketing, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.ConsentMarketing, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByPhone - execute upsert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByPhone получает клиента по нормализованному телефону
func (r *Repository) GetByPhone(ctx context.Context, tenantID, normalizedPhone string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "tenant_id", "full_name", "phone", "consent_marketing", "consent_at",
		"created_at", "updated_at",
	).
		From("clients").
		Where(squirrel.Eq{"tenant_id": tenantID, "phone": normalizedPhone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.TenantID, &c.FullName, &c.Phone, &c.ConsentMarketing, &c.ConsentAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan client: %v", ErrScanRow, err)
	}

	return &c, nil
}

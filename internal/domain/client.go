package domain

import "time"

// Client represents a tenant-scoped person record keyed by normalized phone.
// Телефон - естественный ключ: upsert по (tenant, phone) на каждом пути записи.
type Client struct {
	ID       string
	TenantID string

	FullName string

	// Phone нормализованный номер в формате E.164
	Phone string

	ConsentMarketing bool
	ConsentAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

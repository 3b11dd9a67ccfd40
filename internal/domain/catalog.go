package domain

import "time"

// Service represents a bookable offering of a tenant
type Service struct {
	ID       string
	TenantID string

	// Name уникально в пределах тенанта
	Name string

	DurationMinutes int

	// Цена в минорных единицах валюты (копейки/центы)
	PriceCents int64
	Currency   string

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffProfile represents a schedulable resource, distinct from the user account
type StaffProfile struct {
	ID       string
	TenantID string

	// UserID связанный аккаунт пользователя
	UserID string

	DisplayName string

	// Неактивный мастер не участвует в расчёте слотов и не принимает записи
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

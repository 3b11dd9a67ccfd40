package domain

import "time"

// Tenant represents an isolated business on the platform.
// Все сущности ядра принадлежат ровно одному тенанту; каждый запрос
// к хранилищу обязан фильтровать по TenantID.
type Tenant struct {
	ID   string
	Name string

	// Slug маршрутный ключ тенанта; глобально уникален и неизменяем
	Slug string

	// Timezone IANA-зона тенанта (например, "Europe/Moscow")
	Timezone string

	// Currency код валюты по умолчанию (например, "RUB")
	Currency string

	CreatedAt time.Time
	UpdatedAt time.Time
}

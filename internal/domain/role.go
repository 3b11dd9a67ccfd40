package domain

// Role represents the role of an acting user within a tenant.
// Закрытое перечисление: весь код, который ветвится по роли,
// делает это через исчерпывающий switch.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleStaff  Role = "staff"
	RoleClient Role = "client"
)

// IsValid возвращает true для известной роли
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleStaff, RoleClient:
		return true
	default:
		return false
	}
}

// CanManageBookings возвращает true, если роль допущена к админ-операциям над записями
func (r Role) CanManageBookings() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleStaff:
		return true
	case RoleClient:
		return false
	default:
		return false
	}
}

package domain

import "time"

// BookingHold represents a short-lived exclusive claim on a staff+time window.
// Пока hold жив (ExpiresAt > now), слот считается занятым для всех читателей;
// после истечения строка инертна и должна прозрачно игнорироваться.
type BookingHold struct {
	ID       string
	TenantID string

	ServiceID string
	StaffID   string

	// Интервал удержания [StartAt, EndAt), всегда в UTC
	StartAt time.Time
	EndAt   time.Time

	ExpiresAt time.Time

	ClientPhone *string
	IP          *string

	CreatedAt time.Time
}

// IsExpired returns true if the hold no longer blocks its interval
func (h *BookingHold) IsExpired(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}

// Overlaps проверяет пересечение с интервалом [start, end)
func (h *BookingHold) Overlaps(start, end time.Time) bool {
	return h.StartAt.Before(end) && h.EndAt.After(start)
}

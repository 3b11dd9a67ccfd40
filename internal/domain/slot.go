package domain

import "time"

// Slot represents a bookable time interval [StartAt, EndAt) in UTC
type Slot struct {
	StartAt time.Time
	EndAt   time.Time
}

// Overlaps проверяет пересечение с интервалом [start, end)
func (s Slot) Overlaps(start, end time.Time) bool {
	return s.StartAt.Before(end) && s.EndAt.After(start)
}

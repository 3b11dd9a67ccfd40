package domain

// AvailabilityRule описывает рабочее окно мастера на один день недели.
// Все границы - минуты от локальной полуночи тенанта (0..1440).
// Отсутствие правила на день недели означает, что мастер в этот день не принимает.
type AvailabilityRule struct {
	ID       string
	TenantID string
	StaffID  string

	// Weekday день недели по ISO: Monday=1 .. Sunday=7
	Weekday int

	StartMinute int
	EndMinute   int

	// Необязательный перерыв внутри рабочего окна
	BreakStartMinute *int
	BreakEndMinute   *int
}

// HasBreak returns true if the rule defines a break window
func (r *AvailabilityRule) HasBreak() bool {
	return r.BreakStartMinute != nil && r.BreakEndMinute != nil
}

// Validate проверяет инварианты правила: 0 <= start <= end <= 1440,
// перерыв (если задан) целиком внутри рабочего окна
func (r *AvailabilityRule) Validate() bool {
	if r.Weekday < 1 || r.Weekday > 7 {
		return false
	}
	if r.StartMinute < 0 || r.StartMinute > r.EndMinute || r.EndMinute > MinutesPerDay {
		return false
	}
	if r.HasBreak() {
		if *r.BreakStartMinute < r.StartMinute || *r.BreakStartMinute > *r.BreakEndMinute || *r.BreakEndMinute > r.EndMinute {
			return false
		}
	}
	return true
}

package list_slots

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/timeutil"
)

// buildDaySlots генерирует доступные слоты одного календарного дня.
//
// Курсор идёт от начала рабочего окна с фиксированным шагом; кандидат
// выживает, если услуга целиком помещается в рабочее окно, не задевает
// перерыв, начинается строго в будущем и не пересекает ни один занятый
// интервал. Все проверки пересечений - на полуоткрытых интервалах:
// [a,b) и [c,d) пересекаются тогда и только тогда, когда a < d && c < b,
// соприкасающиеся границы пересечением не считаются.
//
// Чистая функция: для фиксированных входов и фиксированного now результат
// детерминирован и упорядочен по возрастанию начала.
func buildDaySlots(
	rule *domain.AvailabilityRule,
	durationMinutes int,
	stepMinutes int,
	dayStartUTC time.Time,
	now time.Time,
	busy []busyInterval,
) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for m := rule.StartMinute; m+durationMinutes <= rule.EndMinute; m += stepMinutes {
		slotEndMin := m + durationMinutes

		// Обеденный перерыв
		if rule.HasBreak() {
			if m < *rule.BreakEndMinute && slotEndMin > *rule.BreakStartMinute {
				continue
			}
		}

		startAt := timeutil.AddMinutes(dayStartUTC, m)
		endAt := timeutil.AddMinutes(startAt, durationMinutes)

		// Только строго будущие слоты
		if !startAt.After(now) {
			continue
		}

		if overlapsAny(busy, startAt, endAt) {
			continue
		}

		slots = append(slots, domain.Slot{StartAt: startAt, EndAt: endAt})
	}

	return slots
}

// overlapsAny проверяет пересечение [start, end) с любым занятым интервалом
func overlapsAny(busy []busyInterval, start, end time.Time) bool {
	for _, b := range busy {
		if b.Start.Before(end) && b.End.After(start) {
			return true
		}
	}
	return false
}

// Package reminders клиент отложенной очереди напоминаний в Redis.
//
// Планировщик только ставит задания; доставкой занимается отдельный
// consumer (вне этого сервиса), который в момент срабатывания заново
// проверяет статус записи и согласие клиента - состояние могло измениться
// между планированием и отправкой.
package reminders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ключ sorted set с отложенными заданиями; score - unix-время срабатывания
const queueKey = "reminders:scheduled"

// Смещения напоминаний до начала записи
var offsets = []struct {
	TemplateKey string
	Before      time.Duration
}{
	{TemplateKey: "reminder_24h", Before: 24 * time.Hour},
	{TemplateKey: "reminder_2h", Before: 2 * time.Hour},
}

// JobPayload полезная нагрузка задания напоминания
type JobPayload struct {
	JobID       string `json:"jobId"`
	TenantID    string `json:"tenantId"`
	BookingID   string `json:"bookingId"`
	TemplateKey string `json:"templateKey"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Scheduler ставит отложенные задания-напоминания в Redis
type Scheduler struct {
	rdb    *redis.Client
	logger Logger
}

// NewScheduler создает планировщик напоминаний
func NewScheduler(rdb *redis.Client, logger Logger) *Scheduler {
	return &Scheduler{rdb: rdb, logger: logger}
}

// ScheduleForBooking ставит напоминания за 24 часа и за 2 часа до начала записи.
// Идемпотентно: ключ задания booking:<id>:<templateKey> стабилен, повторный
// вызов лишь перезаписывает то же задание. Смещения, уже оказавшиеся в
// прошлом, пропускаются.
func (s *Scheduler) ScheduleForBooking(ctx context.Context, tenantID, bookingID string, startAt time.Time) error {
	now := time.Now()

	for _, o := range offsets {
		remindAt := startAt.Add(-o.Before)
		if !remindAt.After(now) {
			continue
		}

		jobID := fmt.Sprintf("booking:%s:%s", bookingID, o.TemplateKey)

		payload, err := json.Marshal(JobPayload{
			JobID:       jobID,
			TenantID:    tenantID,
			BookingID:   bookingID,
			TemplateKey: o.TemplateKey,
		})
		if err != nil {
			return fmt.Errorf("%w: marshal payload for %s: %v", ErrEnqueue, jobID, err)
		}

		err = s.rdb.ZAdd(ctx, queueKey, redis.Z{
			Score:  float64(remindAt.Unix()),
			Member: string(payload),
		}).Err()
		if err != nil {
			return fmt.Errorf("%w: zadd %s: %v", ErrEnqueue, jobID, err)
		}

		s.logger.Info("Reminders: scheduled job=%s at %s", jobID, remindAt.UTC().Format(time.RFC3339))
	}

	return nil
}

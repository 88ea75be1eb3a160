package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/dummy_reports/internal/models"
)

// ReportEvent - сообщение очереди для одного сгенерированного отчёта
type ReportEvent struct {
	BatchID     uuid.UUID      `json:"batch_id"`
	Report      *models.Report `json:"report"`
	PublishedAt time.Time      `json:"published_at"`
}

// ReportPublisher - интерфейс для публикации сгенерированных отчётов
type ReportPublisher interface {
	Publish(ctx context.Context, batchID uuid.UUID, reports []*models.Report) error
}

// RedisReportPublisher - реализация ReportPublisher, использующая список Redis
type RedisReportPublisher struct {
	redisClient *redis.Client
	queueKey    string
	now         func() time.Time
}

// NewRedisReportPublisher создает новый RedisReportPublisher
func NewRedisReportPublisher(client *redis.Client, queueKey string) *RedisReportPublisher {
	return &RedisReportPublisher{
		redisClient: client,
		queueKey:    queueKey,
		now:         time.Now,
	}
}

// Publish кладёт события в очередь одной командой LPUSH, порядок генерации сохраняется для RPOP
func (p *RedisReportPublisher) Publish(ctx context.Context, batchID uuid.UUID, reports []*models.Report) error {
	if len(reports) == 0 {
		return nil
	}

	publishedAt := p.now()
	payloads := make([]interface{}, 0, len(reports))
	for _, r := range reports {
		payload, err := json.Marshal(ReportEvent{
			BatchID:     batchID,
			Report:      r,
			PublishedAt: publishedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal report event: %w", err)
		}
		payloads = append(payloads, string(payload))
	}

	if err := p.redisClient.LPush(ctx, p.queueKey, payloads...).Err(); err != nil {
		return fmt.Errorf("failed to publish report events to Redis: %w", err)
	}
	return nil
}

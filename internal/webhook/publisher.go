package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/crowdwatch/incident_lifecycle_system/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	webhookQueueKey = "incident_events"

	EventIncidentCreated      = "incident.created"
	EventIncidentTransitioned = "incident.transitioned"
)

// Event - событие жизненного цикла инцидента для внешних потребителей
// (панель отображения, командный центр)
type Event struct {
	EventType      string                `json:"event_type"`
	Incident       *models.Incident      `json:"incident"`
	PreviousStatus models.IncidentStatus `json:"previous_status,omitempty"`
	NewStatus      models.IncidentStatus `json:"new_status,omitempty"`
	Timestamp      time.Time             `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher, использующая Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}

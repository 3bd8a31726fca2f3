package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budai-platform/agent-summarizer/pkg/config"
)

// Event is a notification published for downstream consumers
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	TaskID    string                 `json:"task_id,omitempty"`
	MeetingID string                 `json:"meeting_id,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
}

// NewEvent creates an event with a fresh id and timestamp
func NewEvent(eventType, taskID, meetingID string, payload map[string]interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		TaskID:    taskID,
		MeetingID: meetingID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// Publisher is a publish-only notification channel. Publish failures never
// affect the primary response; callers log and move on.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Ping(ctx context.Context) error
	Close() error
}

// RedisBus publishes events on a Redis channel
type RedisBus struct {
	client  *redis.Client
	channel string
}

// NewRedisBus creates a publish-only Redis event bus. The connection is not
// verified here: the bus is optional and its health is reported through the
// health registry instead.
func NewRedisBus(cfg *config.Config) *RedisBus {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &RedisBus{
		client:  client,
		channel: cfg.Redis.EventChannel,
	}
}

// Publish serializes the event and publishes it on the configured channel
func (b *RedisBus) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Ping verifies Redis reachability for health reporting
func (b *RedisBus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection
func (b *RedisBus) Close() error {
	return b.client.Close()
}

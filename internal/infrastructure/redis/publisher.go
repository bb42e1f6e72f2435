package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	recruitingapp "github.com/sngm3741/resort-crew/api/internal/recruiting/application"
)

// publishClient is the subset of *redis.Client the publisher uses.
type publishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// EventPublisher は応募イベントを Redis Pub/Sub に流す。
// チャンネル名はイベント種別 (EVENT_APPLICATION_UPDATED)。
type EventPublisher struct {
	client publishClient
}

func NewEventPublisher(client *redis.Client) *EventPublisher {
	return &EventPublisher{client: client}
}

func (p *EventPublisher) Publish(ctx context.Context, event recruitingapp.ApplicationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", event.Type, err)
	}
	if err := p.client.Publish(ctx, event.Type, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}
	return nil
}

// Package events publishes rewrite activity to the optional Redis-backed feed.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"humanize-backend/internal/models"
)

// Publisher delivers rewrite events to subscribers. Publishing must never
// affect the outcome of the request that produced the event.
type Publisher interface {
	Publish(ctx context.Context, event models.RewriteEvent) error
}

// RedisPublisher sends events on a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) Channel() string {
	return p.channel
}

func (p *RedisPublisher) Publish(ctx context.Context, event models.RewriteEvent) error {
	data, err := json.Marshal(models.WSMessage{Type: "rewrite", Payload: event})
	if err != nil {
		return fmt.Errorf("failed to encode rewrite event: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish rewrite event: %w", err)
	}
	return nil
}

// Nop discards every event. It is used when no feed is configured.
type Nop struct{}

func (Nop) Publish(context.Context, models.RewriteEvent) error { return nil }

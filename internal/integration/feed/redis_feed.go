// Package feed implements the change feed that drives live collection updates.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/finance-pal/backend/internal/application/adapter"
	"github.com/finance-pal/backend/internal/domain/entity"
	domainerror "github.com/finance-pal/backend/internal/domain/error"
)

// RedisFeed fans change events out across API instances over Redis Pub/Sub.
type RedisFeed struct {
	client *redis.Client
}

// NewRedisFeed creates a change feed backed by the given Redis client.
func NewRedisFeed(client *redis.Client) *RedisFeed {
	return &RedisFeed{
		client: client,
	}
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, url, password string, db int) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if password != "" {
		opts.Password = password
	}
	if db != 0 {
		opts.DB = db
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// Publish sends the event to the channel of its scope and collection.
func (f *RedisFeed) Publish(ctx context.Context, event adapter.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}

	if err := f.client.Publish(ctx, channelName(event.ScopeKey, event.Collection), payload).Err(); err != nil {
		return fmt.Errorf("%w: %v", domainerror.ErrFeedUnavailable, err)
	}
	return nil
}

// Subscribe listens on the channel of the scope and collection. The
// subscription is confirmed before Subscribe returns, so events published
// afterwards are never missed.
func (f *RedisFeed) Subscribe(
	ctx context.Context,
	scope entity.Scope,
	collection entity.Collection,
	onEvent func(adapter.ChangeEvent),
) (adapter.Unsubscribe, error) {
	channel := channelName(scope.Key(), collection)
	pubsub := f.client.Subscribe(ctx, channel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("%w: %v", domainerror.ErrFeedUnavailable, err)
	}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			if err := pubsub.Close(); err != nil {
				slog.Debug("Failed to close redis subscription", "channel", channel, "error", err)
			}
		})
	}

	messages := pubsub.Channel()
	go func() {
		defer unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event adapter.ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					slog.Warn("Discarding malformed change event",
						"channel", channel,
						"error", err,
					)
					continue
				}
				onEvent(event)
			}
		}
	}()

	return unsubscribe, nil
}

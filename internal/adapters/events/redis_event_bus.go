package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	redisclient "github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

// RedisEventBus fans triage events out over Redis Pub/Sub. Each process
// holds one Redis subscription per channel and fans out locally.
type RedisEventBus struct {
	client *redisclient.Client
	hub    *hub

	mu      sync.Mutex
	pubsubs map[string]*redis.PubSub
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewRedisEventBus creates a new Redis-based event bus
func NewRedisEventBus(client *redisclient.Client) providers.EventBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:  client,
		hub:     newHub(),
		pubsubs: make(map[string]*redis.PubSub),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Publish publishes an event to all subscribers
func (b *RedisEventBus) Publish(ctx context.Context, channel string, event *entities.TriageEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	receivers, err := b.client.Client().Publish(ctx, channel, data).Result()
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	observability.LoggerFromContext(ctx).Debug().
		Str("channel", channel).Str("event_id", event.ID).Str("event_type", string(event.Type)).
		Int64("receivers", receivers).Msg("published triage event")
	return nil
}

// Subscribe subscribes to events on a channel
func (b *RedisEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.TriageEvent, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := b.hub.join(channel)
	if b.ctx.Err() != nil {
		return sub, nil
	}
	// A subscription whose release is still pending is reused.
	if _, ok := b.pubsubs[channel]; !ok {
		pubsub := b.client.Client().Subscribe(b.ctx, channel)
		b.pubsubs[channel] = pubsub
		go b.relay(channel, pubsub)
	}

	b.hub.leaveOnDone(ctx, channel, sub, func() { b.release(channel) })
	return sub, nil
}

// relay forwards messages from one Redis subscription until it is closed.
func (b *RedisEventBus) relay(channel string, pubsub *redis.PubSub) {
	logger := observability.GetLogger()
	logger.Info().Str("channel", channel).Msg("subscribed to event channel")

	for msg := range pubsub.Channel() {
		var event entities.TriageEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			logger.Warn().Err(err).Str("channel", channel).Msg("dropping malformed event")
			continue
		}
		b.hub.deliver(b.ctx, channel, &event)
	}
	logger.Debug().Str("channel", channel).Msg("event relay stopped")
}

// release closes the Redis subscription of channel if nobody joined since.
func (b *RedisEventBus) release(channel string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.hub.has(channel) {
		return
	}
	if pubsub, ok := b.pubsubs[channel]; ok {
		_ = pubsub.Close()
		delete(b.pubsubs, channel)
	}
}

// Unsubscribe unsubscribes from a channel
func (b *RedisEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.hub.drop(channel)
	pubsub, ok := b.pubsubs[channel]
	if !ok {
		return nil
	}
	delete(b.pubsubs, channel)
	if err := pubsub.Close(); err != nil {
		return fmt.Errorf("failed to close subscription %s: %w", channel, err)
	}
	observability.LoggerFromContext(ctx).Info().Str("channel", channel).Msg("unsubscribed from event channel")
	return nil
}

// Close closes the event bus and all subscriptions
func (b *RedisEventBus) Close() error {
	b.cancel()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.hub.shutdown()
	var errs []error
	for channel, pubsub := range b.pubsubs {
		if err := pubsub.Close(); err != nil {
			errs = append(errs, fmt.Errorf("channel %s: %w", channel, err))
		}
		delete(b.pubsubs, channel)
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing event bus: %w", errors.Join(errs...))
	}

	observability.GetLogger().Info().Msg("event bus closed")
	return nil
}

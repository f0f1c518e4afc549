package events

import (
	"context"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
)

// MemoryEventBus delivers events to subscribers in the same process.
type MemoryEventBus struct {
	hub *hub
}

// NewMemoryEventBus creates an in-process event bus
func NewMemoryEventBus() providers.EventBus {
	return &MemoryEventBus{hub: newHub()}
}

// Publish delivers event to current subscribers without blocking
func (b *MemoryEventBus) Publish(ctx context.Context, channel string, event *entities.TriageEvent) error {
	b.hub.deliver(ctx, channel, event)
	return nil
}

// Subscribe returns a channel closed when ctx ends or the channel is unsubscribed
func (b *MemoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.TriageEvent, error) {
	sub := b.hub.join(channel)
	b.hub.leaveOnDone(ctx, channel, sub, nil)
	return sub, nil
}

// Unsubscribe closes every subscriber of channel
func (b *MemoryEventBus) Unsubscribe(_ context.Context, channel string) error {
	b.hub.drop(channel)
	return nil
}

// Close closes every subscription
func (b *MemoryEventBus) Close() error {
	b.hub.shutdown()
	return nil
}

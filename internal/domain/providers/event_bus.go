package providers

import (
	"context"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to triage events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.TriageEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.TriageEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

const (
	// EventChannelTurns carries every recorded conversation turn
	EventChannelTurns = "triage:turns"

	// EventChannelEmergencies carries emergency-branch turns only
	EventChannelEmergencies = "triage:emergencies"
)

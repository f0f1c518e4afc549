package events

import (
	"context"
	"sync"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

const subscriberBuffer = 100

type subscriberSet map[chan *entities.TriageEvent]struct{}

// hub tracks local subscribers per channel. Both buses deliver through it;
// the Redis bus only adds the network hop in front.
type hub struct {
	mu       sync.RWMutex
	channels map[string]subscriberSet
	closed   bool
}

func newHub() *hub {
	return &hub{channels: make(map[string]subscriberSet)}
}

// join registers a subscriber. A closed hub hands out an already closed channel.
func (h *hub) join(channel string) chan *entities.TriageEvent {
	sub := make(chan *entities.TriageEvent, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(sub)
		return sub
	}
	set, ok := h.channels[channel]
	if !ok {
		set = make(subscriberSet)
		h.channels[channel] = set
	}
	set[sub] = struct{}{}
	return sub
}

func (h *hub) has(channel string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.channels[channel]
	return ok
}

// leave closes sub and reports whether it was the channel's last subscriber.
func (h *hub) leave(channel string, sub chan *entities.TriageEvent) (last bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set := h.channels[channel]
	if _, ok := set[sub]; !ok {
		return false
	}
	delete(set, sub)
	close(sub)
	if len(set) == 0 {
		delete(h.channels, channel)
		return true
	}
	return false
}

// leaveOnDone removes sub once ctx ends and calls onLast if it emptied the channel.
func (h *hub) leaveOnDone(ctx context.Context, channel string, sub chan *entities.TriageEvent, onLast func()) {
	go func() {
		<-ctx.Done()
		if h.leave(channel, sub) && onLast != nil {
			onLast()
		}
	}()
}

// deliver hands each subscriber its own copy without blocking; full
// subscribers miss the event.
func (h *hub) deliver(ctx context.Context, channel string, event *entities.TriageEvent) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := 0
	for sub := range h.channels[channel] {
		copied := *event
		select {
		case sub <- &copied:
			delivered++
		default:
			observability.LoggerFromContext(ctx).Warn().Str("channel", channel).Str("event_id", event.ID).
				Msg("subscriber channel full, skipping event")
		}
	}
	return delivered
}

// drop closes every subscriber of channel.
func (h *hub) drop(channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.channels[channel] {
		close(sub)
	}
	delete(h.channels, channel)
}

// shutdown closes every subscriber and rejects later joins.
func (h *hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for channel, set := range h.channels {
		for sub := range set {
			close(sub)
		}
		delete(h.channels, channel)
	}
	h.closed = true
}

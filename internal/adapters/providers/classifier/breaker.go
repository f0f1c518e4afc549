package classifier

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

// BreakerClassifier stops calling a failing classifier for a cooldown
// period. While open, Classify fails fast with gobreaker.ErrOpenState.
type BreakerClassifier struct {
	next    providers.ClassifierProvider
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerClassifier wraps next. failures consecutive errors trip the
// breaker; cooldown is how long it stays open before a trial call.
func NewBreakerClassifier(name string, next providers.ClassifierProvider, failures int, cooldown time.Duration) *BreakerClassifier {
	if failures <= 0 {
		failures = 5
	}
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}
	threshold := uint32(failures)
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			observability.GetLogger().Warn().
				Str("oracle", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("classifier circuit state changed")
		},
	}
	return &BreakerClassifier{next: next, breaker: gobreaker.NewCircuitBreaker(settings)}
}

// Classify forwards to the wrapped classifier unless the circuit is open.
func (b *BreakerClassifier) Classify(ctx context.Context, symptoms []string) (*providers.Classification, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.next.Classify(ctx, symptoms)
	})
	if err != nil {
		return nil, err
	}
	return result.(*providers.Classification), nil
}

// State exposes the breaker state for health reporting.
func (b *BreakerClassifier) State() string {
	return b.breaker.State().String()
}

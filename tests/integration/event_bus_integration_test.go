//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/events"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
)

func waitForTriageEvent(t *testing.T, ch <-chan *entities.TriageEvent) *entities.TriageEvent {
	t.Helper()
	select {
	case event := <-ch:
		require.NotNil(t, event)
		return event
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for triage event")
		return nil
	}
}

func TestRedisEventBusFanoutIntegration(t *testing.T) {
	requireEnv(t, "TEST_REDIS_HOST")

	eventBus := events.NewRedisEventBus(newTestRedisClient(t))
	defer eventBus.Close()

	channel := providers.EventChannelEmergencies
	ctx1, cancel1 := context.WithCancel(context.Background())
	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel1()
	defer cancel2()

	sub1, err := eventBus.Subscribe(ctx1, channel)
	require.NoError(t, err)
	sub2, err := eventBus.Subscribe(ctx2, channel)
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)

	turn := *medicalTurn("conv-redis-1", "it-user", time.Now().UTC())
	event := entities.NewTriageEvent(entities.TriageEventEmergencyDetected, turn,
		&entities.Location{Latitude: 19.076, Longitude: 72.8777})

	require.NoError(t, eventBus.Publish(context.Background(), channel, event))

	received1 := waitForTriageEvent(t, sub1)
	received2 := waitForTriageEvent(t, sub2)

	assert.Equal(t, event.ID, received1.ID)
	assert.Equal(t, event.ID, received2.ID)
	assert.Equal(t, entities.TriageEventEmergencyDetected, received1.Type)
	require.NotNil(t, received1.Location)
	assert.InDelta(t, 19.076, received1.Location.Latitude, 1e-9)
}

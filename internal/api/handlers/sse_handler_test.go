package handlers_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/events"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/handlers"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
)

// readEvent returns the next event name and data line from an SSE stream.
func readEvent(t *testing.T, reader *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case line == "" && name != "":
			return name, data
		}
	}
}

func TestSSEHandler_StreamEmergencies(t *testing.T) {
	bus := events.NewMemoryEventBus()
	t.Cleanup(func() { _ = bus.Close() })
	handler := handlers.NewSSEHandler(bus)

	server := httptest.NewServer(http.HandlerFunc(handler.StreamEmergencies))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"?lat=19.07&lng=72.87&radius=20", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	name, data := readEvent(t, reader)
	assert.Equal(t, "connected", name)
	assert.Contains(t, data, `"radius_km":20`)
	assert.Equal(t, 1, handler.GetClientCount())

	far := &entities.TriageEvent{ID: "far", Type: entities.TriageEventEmergencyDetected, Location: &entities.Location{Latitude: 28.61, Longitude: 77.20}}
	near := &entities.TriageEvent{ID: "near", Type: entities.TriageEventEmergencyDetected, Location: &entities.Location{Latitude: 19.08, Longitude: 72.88}}
	require.NoError(t, bus.Publish(ctx, providers.EventChannelEmergencies, far))
	require.NoError(t, bus.Publish(ctx, providers.EventChannelEmergencies, near))

	name, data = readEvent(t, reader)
	assert.Equal(t, string(entities.TriageEventEmergencyDetected), name)
	assert.Contains(t, data, `"id":"near"`)

	cancel()
	assert.Eventually(t, func() bool { return handler.GetClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestSSEHandler_InvalidRegion(t *testing.T) {
	handler := handlers.NewSSEHandler(events.NewMemoryEventBus())

	w := httptest.NewRecorder()
	handler.StreamEmergencies(w, httptest.NewRequest(http.MethodGet, "/api/stream/emergencies?lat=abc&lng=1", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	handler.StreamEmergencies(w, httptest.NewRequest(http.MethodGet, "/api/stream/emergencies?lat=10", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing coordinate: lng", decodeBody(t, w)["error"])

	w = httptest.NewRecorder()
	handler.StreamEmergencies(w, httptest.NewRequest(http.MethodGet, "/api/stream/emergencies?lat=10&lng=10&radius=-1", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

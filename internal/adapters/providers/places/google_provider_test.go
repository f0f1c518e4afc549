package places

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
)

type mapCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMapCache() *mapCache { return &mapCache{data: map[string][]byte{}} }

func (c *mapCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, errors.New("miss")
	}
	return v, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *mapCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *mapCache) Exists(_ context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok, nil
}

func (c *mapCache) Incr(_ context.Context, _ string, _ int) (int64, error) { return 1, nil }

func newTestProvider(serverURL string, cache providers.CacheProvider) *GoogleProvider {
	return NewGoogleProvider(config.PlacesConfig{APIKey: "maps-key", BaseURL: serverURL}, cache, nil)
}

var delhi = providers.Coordinates{Latitude: 28.6139, Longitude: 77.2090}

func TestNearbyPlaces_DecodesAndCaches(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "5000", r.URL.Query().Get("radius"))
		assert.Equal(t, "hospital", r.URL.Query().Get("type"))
		assert.Equal(t, "maps-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"place_id":"p1","name":"AIIMS","vicinity":"Ansari Nagar","rating":4.4,"types":["hospital","health"],"geometry":{"location":{"lat":28.5672,"lng":77.21}},"opening_hours":{"open_now":true}}]}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL, newMapCache())
	places, err := provider.NearbyPlaces(context.Background(), delhi, 5000, "hospital")
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "p1", places[0].ID)
	assert.Equal(t, "Ansari Nagar", places[0].Address)
	assert.Equal(t, 4.4, places[0].Rating)
	require.NotNil(t, places[0].OpenNow)
	assert.True(t, *places[0].OpenNow)

	again, err := provider.NearbyPlaces(context.Background(), delhi, 5000, "hospital")
	require.NoError(t, err)
	assert.Equal(t, places[0].Name, again[0].Name)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestNearbyPlaces_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL, nil).NearbyPlaces(context.Background(), delhi, 5000, "clinic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestPlaceDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
		_, _ = w.Write([]byte(`{"status":"OK","result":{"formatted_phone_number":"011 2658 8500","website":"https://aiims.edu","opening_hours":{"open_now":false}}}`))
	}))
	defer server.Close()

	details, err := newTestProvider(server.URL, nil).PlaceDetails(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "011 2658 8500", details.Phone)
	assert.Equal(t, "https://aiims.edu", details.Website)
	require.NotNil(t, details.OpenNow)
	assert.False(t, *details.OpenNow)
}

func TestRouteDistance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/distancematrix/json", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"OK","rows":[{"elements":[{"status":"OK","distance":{"text":"6.2 km","value":6240},"duration":{"text":"18 mins","value":1080}}]}]}`))
	}))
	defer server.Close()

	km, err := newTestProvider(server.URL, nil).RouteDistance(context.Background(), delhi, providers.Coordinates{Latitude: 28.5672, Longitude: 77.21})
	require.NoError(t, err)
	assert.InDelta(t, 6.24, km, 1e-9)
}

func TestRouteDistance_ElementNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","rows":[{"elements":[{"status":"ZERO_RESULTS"}]}]}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL, nil).RouteDistance(context.Background(), delhi, delhi)
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestDirections_KeepsFirstFiveSteps(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/directions/json", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"OK","routes":[{"legs":[{"duration":{"text":"20 mins"},"distance":{"text":"7 km"},"steps":[
			{"html_instructions":"s1"},{"html_instructions":"s2"},{"html_instructions":"s3"},
			{"html_instructions":"s4"},{"html_instructions":"s5"},{"html_instructions":"s6"}]}]}]}`))
	}))
	defer server.Close()

	dir, err := newTestProvider(server.URL, nil).Directions(context.Background(), delhi, delhi)
	require.NoError(t, err)
	assert.Equal(t, "20 mins", dir.Duration)
	assert.Equal(t, "7 km", dir.Distance)
	assert.Equal(t, []string{"s1", "s2", "s3", "s4", "s5"}, dir.Steps)
}

func TestDirections_NoRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ZERO_RESULTS","routes":[]}`))
	}))
	defer server.Close()

	_, err := newTestProvider(server.URL, nil).Directions(context.Background(), delhi, delhi)
	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestGoogleProvider_RequiresKey(t *testing.T) {
	provider := NewGoogleProvider(config.PlacesConfig{BaseURL: "http://127.0.0.1:1"}, nil, nil)
	_, err := provider.NearbyPlaces(context.Background(), delhi, 1000, "hospital")
	assert.Error(t, err)
}

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider()
	places, err := mock.NearbyPlaces(context.Background(), delhi, 3000, "pharmacy")
	require.NoError(t, err)
	require.Len(t, places, 2)
	for _, p := range places {
		assert.Contains(t, p.Types, "pharmacy")
		assert.Less(t, providers.HaversineKm(delhi, p.Coordinates), 3.0)
	}

	km, err := mock.RouteDistance(context.Background(), delhi, providers.Coordinates{Latitude: 19.0760, Longitude: 72.8777})
	require.NoError(t, err)
	assert.InDelta(t, 1148, km, 10)

	dir, err := mock.Directions(context.Background(), delhi, places[0].Coordinates)
	require.NoError(t, err)
	assert.NotEmpty(t, dir.Steps)
}

package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/cache"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/database"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/events"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/handlers"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/middleware"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/routes"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

type echoTriage struct{}

func (echoTriage) ProcessMessage(ctx context.Context, req services.MessageRequest) entities.ConversationTurn {
	return entities.ConversationTurn{ID: "t1", UserID: req.UserID, UserMessage: req.Text, MessageType: entities.MessageTypeGeneral}
}

type noopTranslator struct{}

func (noopTranslator) Translate(ctx context.Context, text string, target entities.Language) string {
	return text
}

func newTestServer(t *testing.T, limiter *middleware.RateLimiter) http.Handler {
	t.Helper()
	store := database.NewMemoryStore()
	bus := events.NewMemoryEventBus()
	t.Cleanup(func() { _ = bus.Close() })
	recorder := services.NewConversationRecorder(store, nil, bus)
	facilities := services.NewFacilitySearchService(nil, 0, nil)
	voice := services.NewVoiceService(nil, services.NewLanguageDetector(), echoTriage{})

	router := routes.NewRouter(
		handlers.NewChatHandler(echoTriage{}, recorder, noopTranslator{}),
		handlers.NewHealthHandler(facilities, services.NewProfileService(store), recorder),
		handlers.NewVoiceHandler(voice),
		handlers.NewFeedbackHandler(services.NewFeedbackService(store), nil),
		routes.Options{
			SSEHandler:      handlers.NewSSEHandler(bus),
			CacheMiddleware: middleware.NewCacheMiddleware(cache.NewMemoryAdapter(), nil),
			RateLimiter:     limiter,
			AllowedOrigins:  []string{"https://app.example.org"},
		},
	)
	return router.SetupRoutes()
}

func TestRouter_Health(t *testing.T) {
	server := newTestServer(t, nil)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, routes.Version, body["version"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRouter_ChatFlow(t *testing.T) {
	server := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(`{"message":"hello","user_id":"user_1"}`))
	req.Header.Set("Origin", "https://app.example.org")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.org", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t, nil)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chat/message", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_CachesReferenceData(t *testing.T) {
	server := newTestServer(t, nil)

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/voice/supported-languages", nil))
	assert.Equal(t, "MISS", w.Header().Get("X-Cache"))

	w = httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/voice/supported-languages", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "HIT", w.Header().Get("X-Cache"))
}

func TestRouter_RateLimit(t *testing.T) {
	server := newTestServer(t, middleware.NewRateLimiter(1, 1))

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/health/health-tips", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		req.Header.Set("Origin", "https://app.example.org")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "https://app.example.org", w.Header().Get("Access-Control-Allow-Origin"))
		}
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusTooManyRequests, send())
}

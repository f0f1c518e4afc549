package routes

import (
	"net/http"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/api/handlers"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/middleware"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	chatHandler     *handlers.ChatHandler
	healthHandler   *handlers.HealthHandler
	voiceHandler    *handlers.VoiceHandler
	feedbackHandler *handlers.FeedbackHandler
	sseHandler      *handlers.SSEHandler

	cacheMiddleware *middleware.CacheMiddleware
	rateLimiter     *middleware.RateLimiter
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// Options carries the optional pieces of the router.
type Options struct {
	SSEHandler      *handlers.SSEHandler
	CacheMiddleware *middleware.CacheMiddleware
	RateLimiter     *middleware.RateLimiter
	AllowedOrigins  []string
	Metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
	voiceHandler *handlers.VoiceHandler,
	feedbackHandler *handlers.FeedbackHandler,
	opts Options,
) *Router {
	return &Router{
		mux:             http.NewServeMux(),
		chatHandler:     chatHandler,
		healthHandler:   healthHandler,
		voiceHandler:    voiceHandler,
		feedbackHandler: feedbackHandler,
		sseHandler:      opts.SSEHandler,
		cacheMiddleware: opts.CacheMiddleware,
		rateLimiter:     opts.RateLimiter,
		allowedOrigins:  opts.AllowedOrigins,
		metrics:         opts.Metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"healthy","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `","version":"` + Version + `"}`))
	})
	r.mux.Handle("GET /metrics", observability.MetricsHandler())

	// Chat endpoints
	r.mux.HandleFunc("POST /api/chat/message", r.chatHandler.SendMessage)
	r.mux.HandleFunc("GET /api/chat/history/{userId}", r.chatHandler.GetHistory)
	r.mux.HandleFunc("GET /api/chat/history/{userId}/search", r.chatHandler.SearchHistory)
	r.mux.HandleFunc("POST /api/chat/translate", r.chatHandler.Translate)
	r.mux.HandleFunc("POST /api/chat/feedback", r.feedbackHandler.SubmitFeedback)

	// Health endpoints
	r.mux.HandleFunc("POST /api/health/hospitals/nearby", r.healthHandler.FindNearbyHospitals)
	r.mux.HandleFunc("GET /api/health/emergency-contacts/{city}", r.healthHandler.GetEmergencyContacts)
	r.mux.HandleFunc("POST /api/health/directions", r.healthHandler.GetDirections)
	r.mux.HandleFunc("GET /api/health/user/{userId}/profile", r.healthHandler.GetProfile)
	r.mux.HandleFunc("POST /api/health/user/{userId}/profile", r.healthHandler.UpdateProfile)
	r.mux.HandleFunc("GET /api/health/user/{userId}/medical-history", r.healthHandler.GetMedicalHistory)
	r.mux.HandleFunc("GET /api/health/health-tips", r.healthHandler.GetHealthTips)
	r.mux.HandleFunc("GET /api/health/symptoms/common", r.healthHandler.GetCommonSymptoms)
	r.mux.HandleFunc("POST /api/health/feedback", r.feedbackHandler.SubmitFeedback)

	// Voice endpoints
	r.mux.HandleFunc("POST /api/voice/speech-to-text", r.voiceHandler.SpeechToText)
	r.mux.HandleFunc("POST /api/voice/text-to-speech", r.voiceHandler.TextToSpeech)
	r.mux.HandleFunc("POST /api/voice/chat", r.voiceHandler.VoiceChat)
	r.mux.HandleFunc("GET /api/voice/supported-languages", r.voiceHandler.SupportedLanguages)

	// Emergency event stream for dispatch dashboards
	if r.sseHandler != nil {
		r.mux.HandleFunc("GET /api/stream/emergencies", r.sseHandler.StreamEmergencies)
	}

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so cached and rate-limited responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.ResponseOptimization(handler)

	if r.rateLimiter != nil {
		handler = r.rateLimiter.Middleware(handler)
	}

	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}

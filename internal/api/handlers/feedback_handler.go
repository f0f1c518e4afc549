package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

const (
	feedbackRateLimit   = 5
	feedbackRateWindow  = time.Hour
	feedbackDedupWindow = 24 * time.Hour
)

// FeedbackService defines the feedback operations used by the handler.
type FeedbackService interface {
	Create(ctx context.Context, feedback *entities.Feedback) error
}

// FeedbackHandler handles feedback submissions.
type FeedbackHandler struct {
	service FeedbackService
	cache   providers.CacheProvider
	local   *localRateLimiter
	deduper *localDeduper
}

// NewFeedbackHandler creates a new feedback handler. cache may be nil, in
// which case limits are tracked per process.
func NewFeedbackHandler(service FeedbackService, cache providers.CacheProvider) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		cache:   cache,
		local:   newLocalRateLimiter(),
		deduper: newLocalDeduper(),
	}
}

type feedbackBody struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

type feedbackRequest struct {
	UserID         string        `json:"user_id"`
	ConversationID string        `json:"conversation_id"`
	Feedback       *feedbackBody `json:"feedback"`
}

// SubmitFeedback handles POST /api/chat/feedback and /api/health/feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var payload feedbackRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := validateUserID(payload.UserID); err != nil {
		respondWithAppError(w, r, err, "invalid user_id")
		return
	}
	if payload.Feedback == nil {
		respondWithError(w, http.StatusBadRequest, "feedback is required")
		return
	}
	payload.ConversationID = strings.TrimSpace(payload.ConversationID)

	feedback := &entities.Feedback{
		UserID:         payload.UserID,
		ConversationID: payload.ConversationID,
		Rating:         payload.Feedback.Rating,
		Message:        strings.TrimSpace(payload.Feedback.Message),
	}
	if err := services.ValidateFeedback(feedback); err != nil {
		respondWithAppError(w, r, err, "invalid feedback")
		return
	}

	ip := clientIP(r)
	allowed, retryAfter := h.allowRequest(r.Context(), "feedback:rate:"+ip)
	if !allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		respondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	dupKey := "feedback:dup:" + feedbackFingerprint(feedback, ip)
	if h.isDuplicate(r.Context(), dupKey) {
		respondWithJSON(w, http.StatusAccepted, map[string]string{
			"status": "duplicate_ignored",
		})
		return
	}

	if err := h.service.Create(r.Context(), feedback); err != nil {
		respondWithAppError(w, r, err, "failed to submit feedback")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "Feedback submitted successfully",
		"id":      feedback.ID,
	})
}

func (h *FeedbackHandler) allowRequest(ctx context.Context, key string) (bool, time.Duration) {
	if h.cache == nil {
		return h.local.allow(key, feedbackRateLimit, feedbackRateWindow)
	}

	count, err := h.cache.Incr(ctx, key, int(feedbackRateWindow.Seconds()))
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("feedback rate counter unavailable, using local limiter")
		return h.local.allow(key, feedbackRateLimit, feedbackRateWindow)
	}
	if count > feedbackRateLimit {
		return false, feedbackRateWindow
	}
	return true, feedbackRateWindow
}

func (h *FeedbackHandler) isDuplicate(ctx context.Context, key string) bool {
	if h.cache == nil {
		return h.deduper.seen(key, feedbackDedupWindow)
	}

	exists, err := h.cache.Exists(ctx, key)
	if err == nil && exists {
		return true
	}

	_ = h.cache.Set(ctx, key, []byte("1"), int(feedbackDedupWindow.Seconds()))
	return false
}

type localRateLimiter struct {
	mu     sync.Mutex
	states map[string]*localRateState
}

type localRateState struct {
	count   int
	resetAt time.Time
}

func newLocalRateLimiter() *localRateLimiter {
	return &localRateLimiter{
		states: make(map[string]*localRateState),
	}
}

func (l *localRateLimiter) allow(key string, limit int, window time.Duration) (bool, time.Duration) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[key]
	if !ok || now.After(state.resetAt) {
		state = &localRateState{count: 0, resetAt: now.Add(window)}
		l.states[key] = state
	}

	if state.count >= limit {
		retryAfter := time.Until(state.resetAt)
		if retryAfter < 0 {
			retryAfter = window
		}
		return false, retryAfter
	}

	state.count++
	return true, window
}

type localDeduper struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newLocalDeduper() *localDeduper {
	return &localDeduper{
		entries: make(map[string]time.Time),
	}
}

func (d *localDeduper) seen(key string, window time.Duration) bool {
	now := time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if expiresAt, ok := d.entries[key]; ok && now.Before(expiresAt) {
		return true
	}

	d.entries[key] = now.Add(window)
	return false
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

func feedbackFingerprint(feedback *entities.Feedback, ip string) string {
	normalized := []string{
		feedback.UserID,
		feedback.ConversationID,
		strconv.Itoa(feedback.Rating),
		normalizeFeedback(feedback.Message),
		ip,
	}

	hash := sha256.Sum256([]byte(strings.Join(normalized, "|")))
	return hex.EncodeToString(hash[:])
}

func normalizeFeedback(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}
	return strings.Join(strings.Fields(trimmed), " ")
}

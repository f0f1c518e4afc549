package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/cache"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/handlers"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	redisclient "github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/redis"
)

type stubFeedbackService struct {
	created []*entities.Feedback
	err     error
}

func (s *stubFeedbackService) Create(ctx context.Context, feedback *entities.Feedback) error {
	if s.err != nil {
		return s.err
	}
	if feedback.ID == "" {
		feedback.ID = "test-id"
	}
	s.created = append(s.created, feedback)
	return nil
}

func feedbackRequest(body, ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/chat/feedback", strings.NewReader(body))
	req.RemoteAddr = ip + ":1234"
	return req
}

func TestFeedbackHandler_SubmitFeedback_Success(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service, nil)

	body := `{"user_id":"user_1","conversation_id":"turn-1","feedback":{"rating":5,"message":"  Very helpful  "}}`
	w := httptest.NewRecorder()
	handler.SubmitFeedback(w, feedbackRequest(body, "10.0.0.1"))

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, service.created, 1)
	assert.Equal(t, "user_1", service.created[0].UserID)
	assert.Equal(t, "turn-1", service.created[0].ConversationID)
	assert.Equal(t, "Very helpful", service.created[0].Message)

	var response map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "Feedback submitted successfully", response["message"])
	assert.Equal(t, "test-id", response["id"])
}

func TestFeedbackHandler_SubmitFeedback_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing feedback", `{"user_id":"user_1"}`},
		{"missing user", `{"feedback":{"rating":3}}`},
		{"rating too low", `{"user_id":"user_1","feedback":{"rating":0}}`},
		{"rating too high", `{"user_id":"user_1","feedback":{"rating":6}}`},
		{"message too long", `{"user_id":"user_1","feedback":{"rating":4,"message":"` + strings.Repeat("x", 501) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubFeedbackService{}
			handler := handlers.NewFeedbackHandler(service, nil)

			w := httptest.NewRecorder()
			handler.SubmitFeedback(w, feedbackRequest(tt.body, "10.0.0.3"))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, service.created)
		})
	}
}

func TestFeedbackHandler_SubmitFeedback_InvalidIsNotDeduplicated(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service, nil)
	body := `{"user_id":"user_1","feedback":{"rating":9}}`

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.SubmitFeedback(w, feedbackRequest(body, "10.0.0.4"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestFeedbackHandler_SubmitFeedback_RateLimit(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service, nil)

	for i := 0; i < 5; i++ {
		body := `{"user_id":"user_1","feedback":{"rating":4,"message":"ok-` + strconv.Itoa(i) + `"}}`
		w := httptest.NewRecorder()
		handler.SubmitFeedback(w, feedbackRequest(body, "10.0.0.2"))
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := httptest.NewRecorder()
	handler.SubmitFeedback(w, feedbackRequest(`{"user_id":"user_1","feedback":{"rating":4,"message":"ok-dup"}}`, "10.0.0.2"))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestFeedbackHandler_SubmitFeedback_Duplicate(t *testing.T) {
	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service, nil)
	body := `{"user_id":"user_1","feedback":{"rating":5,"message":"Great flow"}}`

	w := httptest.NewRecorder()
	handler.SubmitFeedback(w, feedbackRequest(body, "10.0.0.9"))
	assert.Equal(t, http.StatusCreated, w.Code)

	w2 := httptest.NewRecorder()
	handler.SubmitFeedback(w2, feedbackRequest(body, "10.0.0.9"))
	assert.Equal(t, http.StatusAccepted, w2.Code)
	assert.Len(t, service.created, 1)
}

func TestFeedbackHandler_SubmitFeedback_StoreFailure(t *testing.T) {
	service := &stubFeedbackService{err: assert.AnError}
	handler := handlers.NewFeedbackHandler(service, nil)

	w := httptest.NewRecorder()
	handler.SubmitFeedback(w, feedbackRequest(`{"user_id":"user_1","feedback":{"rating":2}}`, "10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFeedbackHandler_SubmitFeedback_RedisCounters(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	service := &stubFeedbackService{}
	handler := handlers.NewFeedbackHandler(service, cache.NewRedisAdapter(redisclient.NewFromClient(client)))

	for i := 0; i < 5; i++ {
		body := `{"user_id":"user_1","feedback":{"rating":3,"message":"msg-` + strconv.Itoa(i) + `"}}`
		w := httptest.NewRecorder()
		handler.SubmitFeedback(w, feedbackRequest(body, "10.0.0.7"))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	count, err := mr.Get("feedback:rate:10.0.0.7")
	require.NoError(t, err)
	assert.Equal(t, "5", count)
	assert.Greater(t, mr.TTL("feedback:rate:10.0.0.7").Seconds(), 0.0)

	w := httptest.NewRecorder()
	handler.SubmitFeedback(w, feedbackRequest(`{"user_id":"user_1","feedback":{"rating":3,"message":"one more"}}`, "10.0.0.7"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// fingerprints include the client address
	w = httptest.NewRecorder()
	handler.SubmitFeedback(w, feedbackRequest(`{"user_id":"user_1","feedback":{"rating":3,"message":"msg-0"}}`, "10.0.0.8"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

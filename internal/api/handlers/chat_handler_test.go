package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/handlers"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

type stubTriage struct {
	requests []services.MessageRequest
}

func (s *stubTriage) ProcessMessage(ctx context.Context, req services.MessageRequest) entities.ConversationTurn {
	s.requests = append(s.requests, req)
	return entities.ConversationTurn{
		ID:                "turn-1",
		UserID:            req.UserID,
		UserMessage:       req.Text,
		MessageType:       entities.MessageTypeGeneral,
		BotReply:          "Hello!",
		Facilities:        []entities.FacilityResult{},
		FollowUpQuestions: []string{},
		UrgencyLevel:      entities.UrgencyNone,
	}
}

type stubHistory struct {
	limit  int
	query  string
	hits   []providers.ConversationHit
	err    error
	userID string
}

func (s *stubHistory) History(ctx context.Context, userID string, limit int) *entities.UserHistory {
	s.userID, s.limit = userID, limit
	return &entities.UserHistory{
		Conversations: []entities.ConversationTurn{{ID: "t1", UserID: userID}},
		TotalFound:    1,
	}
}

func (s *stubHistory) Search(ctx context.Context, userID, query string, limit int) ([]providers.ConversationHit, error) {
	s.userID, s.query, s.limit = userID, query, limit
	return s.hits, s.err
}

type stubTranslator struct{}

func (stubTranslator) Translate(ctx context.Context, text string, target entities.Language) string {
	return "[" + string(target) + "] " + text
}

func newChatHandler() (*handlers.ChatHandler, *stubTriage, *stubHistory) {
	triage := &stubTriage{}
	history := &stubHistory{}
	return handlers.NewChatHandler(triage, history, stubTranslator{}), triage, history
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestChatHandler_SendMessage_Success(t *testing.T) {
	handler, triage, _ := newChatHandler()

	body := `{"message":"  Hello, how are you?  ","user_id":"user_1","location":{"lat":19.07,"lng":72.87}}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.SendMessage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, triage.requests, 1)
	assert.Equal(t, "Hello, how are you?", triage.requests[0].Text)
	require.NotNil(t, triage.requests[0].Location)
	assert.InDelta(t, 72.87, triage.requests[0].Location.Longitude, 1e-9)

	response := decodeBody(t, w)
	assert.Equal(t, "general", response["message_type"])
	assert.Equal(t, "Hello!", response["bot_reply"])
	assert.Equal(t, []interface{}{}, response["hospitals"])
}

func TestChatHandler_SendMessage_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"invalid json", `{"message":`, "invalid request payload"},
		{"empty message", `{"message":"   ","user_id":"u1"}`, "Message cannot be empty"},
		{"too long", `{"message":"` + strings.Repeat("a", 1001) + `","user_id":"u1"}`, "Message too long (max 1000 characters)"},
		{"missing user", `{"message":"hi"}`, "user_id is required"},
		{"bad user id", `{"message":"hi","user_id":"bad id!"}`, "Invalid user_id format"},
		{"bad latitude", `{"message":"hi","user_id":"u1","location":{"lat":91,"lng":0}}`, "Invalid latitude range"},
		{"bad longitude", `{"message":"hi","user_id":"u1","location":{"lat":0,"lng":-181}}`, "Invalid longitude range"},
		{"missing lng", `{"message":"hi","user_id":"u1","location":{"lat":10}}`, "Missing coordinate: lng"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, triage, _ := newChatHandler()
			req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.SendMessage(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.wantErr, decodeBody(t, w)["error"])
			assert.Empty(t, triage.requests)
		})
	}
}

func TestChatHandler_SendMessage_AcceptsMaxLength(t *testing.T) {
	handler, triage, _ := newChatHandler()
	body := `{"message":"` + strings.Repeat("अ", 1000) + `","user_id":"u1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat/message", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.SendMessage(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, triage.requests, 1)
}

func TestChatHandler_GetHistory(t *testing.T) {
	handler, _, history := newChatHandler()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/chat/history/{userId}", handler.GetHistory)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/user_1?limit=5", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user_1", history.userID)
	assert.Equal(t, 5, history.limit)
	assert.Equal(t, float64(1), decodeBody(t, w)["total_found"])

	req = httptest.NewRequest(http.MethodGet, "/api/chat/history/user_1?limit=abc", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, services.DefaultHistoryLimit, history.limit)

	req = httptest.NewRequest(http.MethodGet, "/api/chat/history/user_1?limit=1000", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, 50, history.limit)
}

func TestChatHandler_GetHistory_InvalidUser(t *testing.T) {
	handler, _, _ := newChatHandler()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/chat/history/{userId}", handler.GetHistory)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/bad.user", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_SearchHistory(t *testing.T) {
	handler, _, history := newChatHandler()
	history.hits = []providers.ConversationHit{{ConversationID: "t1", Condition: "Migraine"}}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/chat/history/{userId}/search", handler.SearchHistory)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/user_1/search?q=headache", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "headache", history.query)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, "headache", body["query"])
}

func TestChatHandler_SearchHistory_Disabled(t *testing.T) {
	handler, _, history := newChatHandler()
	history.err = apperrors.NewNotFoundError("conversation search is not enabled")
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/chat/history/{userId}/search", handler.SearchHistory)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/user_1/search?q=x", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "conversation search is not enabled", decodeBody(t, w)["error"])
}

func TestChatHandler_SearchHistory_BackendFailure(t *testing.T) {
	handler, _, history := newChatHandler()
	history.err = assert.AnError
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/chat/history/{userId}/search", handler.SearchHistory)

	req := httptest.NewRequest(http.MethodGet, "/api/chat/history/user_1/search?q=x", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to search conversations", decodeBody(t, w)["error"])
}

func TestChatHandler_Translate(t *testing.T) {
	handler, _, _ := newChatHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/chat/translate", strings.NewReader(`{"text":"Drink water","target_language":"hi"}`))
	w := httptest.NewRecorder()
	handler.Translate(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Drink water", body["original_text"])
	assert.Equal(t, "[hindi] Drink water", body["translated_text"])
	assert.Equal(t, "hindi", body["target_language"])

	req = httptest.NewRequest(http.MethodPost, "/api/chat/translate", strings.NewReader(`{"text":"Drink water","target_language":"klingon"}`))
	w = httptest.NewRecorder()
	handler.Translate(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

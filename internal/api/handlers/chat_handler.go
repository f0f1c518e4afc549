package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
)

// HistoryReader is the read side of the conversation log.
type HistoryReader interface {
	History(ctx context.Context, userID string, limit int) *entities.UserHistory
	Search(ctx context.Context, userID, query string, limit int) ([]providers.ConversationHit, error)
}

// Translator renders english text in another supported language.
type Translator interface {
	Translate(ctx context.Context, text string, target entities.Language) string
}

// ChatHandler handles the chat endpoints
type ChatHandler struct {
	triage     services.MessageProcessor
	history    HistoryReader
	translator Translator
}

// NewChatHandler creates a new chat handler
func NewChatHandler(triage services.MessageProcessor, history HistoryReader, translator Translator) *ChatHandler {
	return &ChatHandler{
		triage:     triage,
		history:    history,
		translator: translator,
	}
}

type chatMessageRequest struct {
	Message  string           `json:"message"`
	UserID   string           `json:"user_id"`
	Location *locationPayload `json:"location,omitempty"`
}

// SendMessage handles POST /api/chat/message
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var payload chatMessageRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	message, err := validateMessage(payload.Message)
	if err != nil {
		respondWithAppError(w, r, err, "invalid message")
		return
	}
	if err := validateUserID(payload.UserID); err != nil {
		respondWithAppError(w, r, err, "invalid user_id")
		return
	}
	location, err := validateLocation(payload.Location)
	if err != nil {
		respondWithAppError(w, r, err, "invalid location")
		return
	}

	turn := h.triage.ProcessMessage(r.Context(), services.MessageRequest{
		Text:     message,
		UserID:   payload.UserID,
		Location: location,
	})
	respondWithJSON(w, http.StatusOK, turn)
}

// GetHistory handles GET /api/chat/history/{userId}
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if err := validateUserID(userID); err != nil {
		respondWithAppError(w, r, err, "invalid user_id")
		return
	}

	limit := queryInt(r, "limit", services.DefaultHistoryLimit, defaultHistoryMax)
	respondWithJSON(w, http.StatusOK, h.history.History(r.Context(), userID, limit))
}

// SearchHistory handles GET /api/chat/history/{userId}/search
func (h *ChatHandler) SearchHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if err := validateUserID(userID); err != nil {
		respondWithAppError(w, r, err, "invalid user_id")
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) > maxMessageLength {
		respondWithError(w, http.StatusBadRequest, "query is too long")
		return
	}
	limit := queryInt(r, "limit", services.DefaultHistoryLimit, defaultHistoryMax)

	hits, err := h.history.Search(r.Context(), userID, query, limit)
	if err != nil {
		respondWithAppError(w, r, err, "failed to search conversations")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user_id": userID,
		"query":   query,
		"results": hits,
		"count":   len(hits),
	})
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}

// Translate handles POST /api/chat/translate
func (h *ChatHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var payload translateRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	text, err := validateMessage(payload.Text)
	if err != nil {
		respondWithAppError(w, r, err, "invalid text")
		return
	}
	target, ok := entities.ParseLanguage(strings.ToLower(strings.TrimSpace(payload.TargetLanguage)))
	if !ok {
		respondWithError(w, http.StatusBadRequest, "unsupported target_language")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"original_text":   text,
		"translated_text": h.translator.Translate(r.Context(), text, target),
		"target_language": string(target),
	})
}

package providers

import (
	"context"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// ConversationHit is a search match over past turns.
type ConversationHit struct {
	ConversationID string  `json:"conversation_id"`
	UserMessage    string  `json:"user_message"`
	BotReply       string  `json:"bot_reply"`
	MessageType    string  `json:"message_type"`
	Condition      string  `json:"condition,omitempty"`
	Timestamp      int64   `json:"timestamp"`
	Score          float64 `json:"score"`
}

// ConversationIndex is a full-text index over a user's conversation turns.
type ConversationIndex interface {
	IndexTurn(ctx context.Context, turn *entities.ConversationTurn) error
	Search(ctx context.Context, userID, query string, limit int) ([]ConversationHit, error)
}

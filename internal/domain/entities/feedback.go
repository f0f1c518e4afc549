package entities

import "time"

// Feedback captures a user's rating of a conversation.
type Feedback struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"user_id" db:"user_id"`
	ConversationID string    `json:"conversation_id,omitempty" db:"conversation_id"`
	Rating         int       `json:"rating" db:"rating"`
	Message        string    `json:"message" db:"message"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

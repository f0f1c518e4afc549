package entities

import (
	"time"
)

// UserProfile is the per-user aggregate maintained alongside the conversation log.
type UserProfile struct {
	UserID             string    `json:"user_id" db:"user_id"`
	Name               *string   `json:"name,omitempty" db:"name"`
	Age                *int      `json:"age,omitempty" db:"age"`
	Email              *string   `json:"email,omitempty" db:"email"`
	Phone              *string   `json:"phone,omitempty" db:"phone"`
	TotalConversations int       `json:"total_conversations" db:"total_conversations"`
	LastConversationID *string   `json:"last_conversation_id,omitempty" db:"last_conversation_id"`
	LastActive         time.Time `json:"last_active" db:"last_active"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// ProfilePatch is a partial profile update. Nil fields are left untouched.
type ProfilePatch struct {
	Name               *string `json:"name,omitempty"`
	Age                *int    `json:"age,omitempty"`
	Email              *string `json:"email,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	LastConversationID *string `json:"-"`

	// IncrementConversations bumps TotalConversations and LastActive.
	IncrementConversations bool `json:"-"`
}

// Apply merges the patch into p at time now.
func (patch ProfilePatch) Apply(p *UserProfile, now time.Time) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if patch.Name != nil {
		p.Name = patch.Name
	}
	if patch.Age != nil {
		p.Age = patch.Age
	}
	if patch.Email != nil {
		p.Email = patch.Email
	}
	if patch.Phone != nil {
		p.Phone = patch.Phone
	}
	if patch.LastConversationID != nil {
		p.LastConversationID = patch.LastConversationID
	}
	if patch.IncrementConversations {
		p.TotalConversations++
		p.LastActive = now
	}
	p.UpdatedAt = now
}

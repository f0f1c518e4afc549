package repositories

import (
	"context"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// ConversationRepository is the persistence port for the conversation log
// and the per-user profile aggregate.
type ConversationRepository interface {
	// Append stores a turn. Turns are never updated.
	Append(ctx context.Context, turn *entities.ConversationTurn) error

	// UpsertProfile creates the profile if missing and applies patch.
	UpsertProfile(ctx context.Context, userID string, patch entities.ProfilePatch) (*entities.UserProfile, error)

	// GetProfile returns a NOT_FOUND AppError for unknown users.
	GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error)

	// QueryHistory returns up to limit turns, most recent first.
	QueryHistory(ctx context.Context, userID string, limit int) ([]entities.ConversationTurn, error)

	// QueryMedicalHistory returns up to limit medical turns that carry a
	// prediction, most recent first.
	QueryMedicalHistory(ctx context.Context, userID string, limit int) ([]entities.ConversationTurn, error)

	// ListSince pages through all turns in timestamp order, for reindexing.
	ListSince(ctx context.Context, since time.Time, limit int) ([]entities.ConversationTurn, error)
}

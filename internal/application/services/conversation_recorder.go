package services

import (
	"context"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/repositories"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

// DefaultHistoryLimit is used when a caller does not ask for a page size.
const DefaultHistoryLimit = 10

// ConversationRecorder persists turns and serves history read models.
type ConversationRecorder struct {
	repo   repositories.ConversationRepository
	index  providers.ConversationIndex
	events providers.EventBus
	now    func() time.Time
}

// NewConversationRecorder creates a recorder. index and events may be nil.
func NewConversationRecorder(repo repositories.ConversationRepository, index providers.ConversationIndex, events providers.EventBus) *ConversationRecorder {
	return &ConversationRecorder{
		repo:   repo,
		index:  index,
		events: events,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Record appends the turn and updates the user's aggregate. Each write is
// attempted independently and failures are only logged.
func (r *ConversationRecorder) Record(ctx context.Context, turn entities.ConversationTurn) {
	logger := observability.LoggerFromContext(ctx).With().
		Str("user_id", turn.UserID).
		Str("conversation_id", turn.ID).
		Logger()

	appended := true
	if err := r.repo.Append(ctx, &turn); err != nil {
		appended = false
		logger.Error().Err(err).Msg("failed to append conversation turn")
		observability.PersistenceFailures.WithLabelValues("append").Inc()
	}

	conversationID := turn.ID
	patch := entities.ProfilePatch{
		LastConversationID:     &conversationID,
		IncrementConversations: true,
	}
	if _, err := r.repo.UpsertProfile(ctx, turn.UserID, patch); err != nil {
		logger.Error().Err(err).Msg("failed to update user profile")
		observability.PersistenceFailures.WithLabelValues("profile").Inc()
	}

	if !appended {
		return
	}
	if r.index != nil {
		if err := r.index.IndexTurn(ctx, &turn); err != nil {
			logger.Warn().Err(err).Msg("failed to index conversation turn")
			observability.PersistenceFailures.WithLabelValues("index").Inc()
		}
	}
	if r.events != nil {
		event := entities.NewTriageEvent(entities.TriageEventTurnRecorded, turn, nil)
		if err := r.events.Publish(ctx, providers.EventChannelTurns, event); err != nil {
			logger.Warn().Err(err).Msg("failed to publish turn event")
		}
	}
}

// History returns the profile and the most recent turns. Read failures yield
// an empty history rather than an error.
func (r *ConversationRecorder) History(ctx context.Context, userID string, limit int) *entities.UserHistory {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	logger := observability.LoggerFromContext(ctx)
	history := &entities.UserHistory{Conversations: []entities.ConversationTurn{}}

	profile, err := r.repo.GetProfile(ctx, userID)
	switch {
	case err == nil:
		history.Profile = profile
	case apperrors.IsType(err, apperrors.ErrorTypeNotFound):
	default:
		logger.Error().Err(err).Str("user_id", userID).Msg("failed to load user profile")
		return history
	}

	turns, err := r.repo.QueryHistory(ctx, userID, limit)
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("failed to load conversation history")
		return history
	}
	if turns != nil {
		history.Conversations = turns
	}
	history.TotalFound = len(history.Conversations)
	return history
}

// MedicalHistory derives the medical timeline, most recent first.
func (r *ConversationRecorder) MedicalHistory(ctx context.Context, userID string) ([]entities.MedicalHistoryEntry, error) {
	turns, err := r.repo.QueryMedicalHistory(ctx, userID, entities.MaxMedicalHistoryEntries)
	if err != nil {
		return nil, err
	}
	return entities.MedicalTimeline(turns), nil
}

// Search runs a full-text query over the user's past turns.
func (r *ConversationRecorder) Search(ctx context.Context, userID, query string, limit int) ([]providers.ConversationHit, error) {
	if r.index == nil {
		return nil, apperrors.NewNotFoundError("conversation search is not enabled")
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return r.index.Search(ctx, userID, query, limit)
}

package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

// MemoryStore keeps conversations, profiles and feedback in process. It is
// used for local development and tests and implements both
// ConversationRepository and FeedbackRepository.
type MemoryStore struct {
	mu       sync.RWMutex
	turns    []entities.ConversationTurn
	profiles map[string]*entities.UserProfile
	feedback []entities.Feedback
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*entities.UserProfile),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Append(ctx context.Context, turn *entities.ConversationTurn) error {
	if turn == nil {
		return apperrors.NewValidationError("turn is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.turns {
		if existing.ID == turn.ID {
			return apperrors.NewConflictError("conversation turn already exists")
		}
	}
	s.turns = append(s.turns, *turn)
	return nil
}

func (s *MemoryStore) UpsertProfile(ctx context.Context, userID string, patch entities.ProfilePatch) (*entities.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	profile, ok := s.profiles[userID]
	if !ok {
		profile = &entities.UserProfile{UserID: userID, LastActive: now}
		s.profiles[userID] = profile
	}
	patch.Apply(profile, now)

	out := *profile
	return &out, nil
}

func (s *MemoryStore) GetProfile(ctx context.Context, userID string) (*entities.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, apperrors.NewNotFoundError("user profile not found")
	}
	out := *profile
	return &out, nil
}

func (s *MemoryStore) QueryHistory(ctx context.Context, userID string, limit int) ([]entities.ConversationTurn, error) {
	return s.recent(func(t entities.ConversationTurn) bool { return t.UserID == userID }, limit), nil
}

func (s *MemoryStore) QueryMedicalHistory(ctx context.Context, userID string, limit int) ([]entities.ConversationTurn, error) {
	return s.recent(func(t entities.ConversationTurn) bool {
		return t.UserID == userID && t.MessageType == entities.MessageTypeMedical && t.ConditionPrediction != nil
	}, limit), nil
}

func (s *MemoryStore) ListSince(ctx context.Context, since time.Time, limit int) ([]entities.ConversationTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.ConversationTurn, 0)
	for _, t := range s.turns {
		if t.Timestamp.After(since) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Create stores feedback.
func (s *MemoryStore) Create(ctx context.Context, feedback *entities.Feedback) error {
	if feedback == nil {
		return apperrors.NewValidationError("feedback is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, *feedback)
	return nil
}

// Feedback returns a copy of the stored feedback.
func (s *MemoryStore) Feedback() []entities.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Feedback(nil), s.feedback...)
}

// recent returns matching turns, most recent first.
func (s *MemoryStore) recent(match func(entities.ConversationTurn) bool, limit int) []entities.ConversationTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.ConversationTurn, 0)
	for i := len(s.turns) - 1; i >= 0; i-- {
		if match(s.turns[i]) {
			out = append(out, s.turns[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

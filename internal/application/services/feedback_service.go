package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

// MaxFeedbackMessageLength bounds the free-text part of a rating.
const MaxFeedbackMessageLength = 500

// FeedbackService handles feedback submissions.
type FeedbackService struct {
	repo repositories.FeedbackRepository
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(repo repositories.FeedbackRepository) *FeedbackService {
	return &FeedbackService{repo: repo}
}

// ValidateFeedback checks rating and message bounds.
func ValidateFeedback(feedback *entities.Feedback) error {
	if feedback == nil {
		return apperrors.NewValidationError("feedback is required")
	}
	if feedback.Rating < 1 || feedback.Rating > 5 {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(feedback.Message) > MaxFeedbackMessageLength {
		return apperrors.NewValidationError("feedback message is too long")
	}
	return nil
}

// Create stores feedback.
func (s *FeedbackService) Create(ctx context.Context, feedback *entities.Feedback) error {
	if feedback != nil {
		feedback.Message = strings.TrimSpace(feedback.Message)
	}
	if err := ValidateFeedback(feedback); err != nil {
		return err
	}
	if feedback.ID == "" {
		feedback.ID = uuid.New().String()
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	return s.repo.Create(ctx, feedback)
}

package services

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

var (
	userIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidUserID reports whether id is a non-empty run of letters, digits,
// underscores and dashes.
func ValidUserID(id string) bool {
	return userIDPattern.MatchString(id)
}

// ProfileService reads and updates user profiles.
type ProfileService struct {
	repo repositories.ConversationRepository
}

func NewProfileService(repo repositories.ConversationRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns NOT_FOUND for users that have never been seen.
func (s *ProfileService) Get(ctx context.Context, userID string) (*entities.UserProfile, error) {
	if !ValidUserID(userID) {
		return nil, apperrors.NewValidationError("invalid user id")
	}
	return s.repo.GetProfile(ctx, userID)
}

// Update validates and applies patch, creating the profile if needed.
func (s *ProfileService) Update(ctx context.Context, userID string, patch entities.ProfilePatch) (*entities.UserProfile, error) {
	if !ValidUserID(userID) {
		return nil, apperrors.NewValidationError("invalid user id")
	}
	patch = trimPatch(patch)
	if err := ValidateProfilePatch(patch); err != nil {
		return nil, err
	}
	profile, err := s.repo.UpsertProfile(ctx, userID, patch)
	if err != nil {
		if _, ok := apperrors.As(err); ok {
			return nil, err
		}
		return nil, apperrors.NewInternalError("failed to update profile", err)
	}
	return profile, nil
}

// ValidateProfilePatch enforces the field bounds of a profile update.
func ValidateProfilePatch(patch entities.ProfilePatch) error {
	if patch.Name != nil {
		if n := utf8.RuneCountInString(*patch.Name); n < 2 || n > 50 {
			return apperrors.NewValidationError("name must be between 2 and 50 characters")
		}
	}
	if patch.Age != nil && (*patch.Age < 1 || *patch.Age > 120) {
		return apperrors.NewValidationError("age must be between 1 and 120")
	}
	if patch.Email != nil {
		email := *patch.Email
		if len(email) < 5 || len(email) > 100 || !emailPattern.MatchString(email) {
			return apperrors.NewValidationError("invalid email address")
		}
	}
	if patch.Phone != nil {
		if n := len(*patch.Phone); n < 10 || n > 15 {
			return apperrors.NewValidationError("phone must be between 10 and 15 characters")
		}
	}
	return nil
}

func trimPatch(patch entities.ProfilePatch) entities.ProfilePatch {
	trim := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)
		return &t
	}
	patch.Name = trim(patch.Name)
	patch.Email = trim(patch.Email)
	patch.Phone = trim(patch.Phone)
	return patch
}

package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
	"github.com/zatekoja/sehatsaathi/backend/tests/mocks"
)

func TestFeedbackService_Create(t *testing.T) {
	repo := mocks.NewMockFeedbackRepository(t)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entities.Feedback")).Return(nil)

	feedback := &entities.Feedback{UserID: "user-1", Rating: 4, Message: "  helpful  "}
	err := services.NewFeedbackService(repo).Create(context.Background(), feedback)
	require.NoError(t, err)

	assert.NotEmpty(t, feedback.ID)
	assert.False(t, feedback.CreatedAt.IsZero())
	assert.Equal(t, "helpful", feedback.Message)
}

func TestFeedbackService_Validation(t *testing.T) {
	repo := mocks.NewMockFeedbackRepository(t)
	svc := services.NewFeedbackService(repo)

	for _, fb := range []*entities.Feedback{
		{Rating: 0},
		{Rating: 6},
		{Rating: 3, Message: strings.Repeat("x", services.MaxFeedbackMessageLength+1)},
	} {
		err := svc.Create(context.Background(), fb)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	}
}

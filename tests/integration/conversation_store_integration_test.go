//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/database"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

func TestConversationAdapterIntegration(t *testing.T) {
	requireEnv(t, "TEST_DB_HOST")

	client := newTestPostgresClient(t)
	ctx := context.Background()
	require.NoError(t, database.EnsureSchema(ctx, client.DB()))

	repo := database.NewConversationAdapter(client.DB(), nil)
	userID := "it-" + uuid.NewString()[:8]
	base := time.Now().UTC().Truncate(time.Millisecond)

	general := &entities.ConversationTurn{
		ID:          uuid.NewString(),
		UserID:      userID,
		Timestamp:   base,
		UserMessage: "hello",
		MessageType: entities.MessageTypeGeneral,
		BotReply:    "Hello! How can I help?",
	}
	medical := medicalTurn(uuid.NewString(), userID, base.Add(time.Second))

	require.NoError(t, repo.Append(ctx, general))
	require.NoError(t, repo.Append(ctx, medical))

	t.Run("history is most recent first", func(t *testing.T) {
		history, err := repo.QueryHistory(ctx, userID, 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, medical.ID, history[0].ID)
		assert.Equal(t, entities.MessageTypeMedical, history[0].MessageType)
		assert.Equal(t, medical.BotReply, history[0].BotReply)
		require.NotNil(t, history[0].ConditionPrediction)
		assert.Equal(t, "Migraine", history[0].ConditionPrediction.Label)
	})

	t.Run("medical history skips general turns", func(t *testing.T) {
		history, err := repo.QueryMedicalHistory(ctx, userID, 20)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, medical.ID, history[0].ID)
	})

	t.Run("list since pages forward", func(t *testing.T) {
		turns, err := repo.ListSince(ctx, base.Add(-time.Millisecond), 1000)
		require.NoError(t, err)
		ids := make([]string, 0, len(turns))
		for _, turn := range turns {
			ids = append(ids, turn.ID)
		}
		assert.Contains(t, ids, general.ID)
		assert.Contains(t, ids, medical.ID)
	})
}

func TestProfileUpsertIntegration(t *testing.T) {
	requireEnv(t, "TEST_DB_HOST")

	client := newTestPostgresClient(t)
	ctx := context.Background()
	require.NoError(t, database.EnsureSchema(ctx, client.DB()))

	repo := database.NewConversationAdapter(client.DB(), nil)
	userID := "it-" + uuid.NewString()[:8]

	_, err := repo.GetProfile(ctx, userID)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))

	lastID := "conv-1"
	profile, err := repo.UpsertProfile(ctx, userID, entities.ProfilePatch{IncrementConversations: true, LastConversationID: &lastID})
	require.NoError(t, err)
	assert.Equal(t, 1, profile.TotalConversations)

	name := "Asha"
	profile, err = repo.UpsertProfile(ctx, userID, entities.ProfilePatch{Name: &name})
	require.NoError(t, err)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "Asha", *profile.Name)
	assert.Equal(t, 1, profile.TotalConversations)
}

func TestFeedbackAdapterIntegration(t *testing.T) {
	requireEnv(t, "TEST_DB_HOST")

	client := newTestPostgresClient(t)
	ctx := context.Background()
	require.NoError(t, database.EnsureSchema(ctx, client.DB()))

	repo := database.NewFeedbackAdapter(client.DB())
	feedback := &entities.Feedback{
		ID:        uuid.NewString(),
		UserID:    "it-feedback",
		Rating:    4,
		Message:   "helpful",
		CreatedAt: time.Now().UTC(),
	}

	assert.NoError(t, repo.Create(ctx, feedback))
}

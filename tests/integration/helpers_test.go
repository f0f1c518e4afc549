//go:build integration

package integration

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func requireEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if os.Getenv(key) == "" {
			t.Skipf("Skipping integration test: %s not set", key)
		}
	}
}

func newTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()

	cfg := &config.RedisConfig{
		Host:     getEnv("TEST_REDIS_HOST", "localhost"),
		Port:     getEnvAsInt("TEST_REDIS_PORT", 6379),
		Password: getEnv("TEST_REDIS_PASSWORD", ""),
		DB:       getEnvAsInt("TEST_REDIS_DB", 0),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := redis.NewClient(ctx, cfg)
	require.NoError(t, err, "Failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestPostgresClient(t *testing.T) *postgres.Client {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnvAsInt("TEST_DB_PORT", 5432),
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		Database: getEnv("TEST_DB_NAME", "sehat_saathi_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client, err := postgres.NewClient(ctx, cfg)
	require.NoError(t, err, "Failed to create postgres client")
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestTypesenseClient(t *testing.T, collection string) *typesense.Client {
	t.Helper()

	cfg := &config.TypesenseConfig{
		URL:        getEnv("TEST_TYPESENSE_URL", "http://localhost:8108"),
		APIKey:     getEnv("TEST_TYPESENSE_API_KEY", "xyz"),
		Collection: collection,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	client, err := typesense.NewClient(ctx, cfg)
	require.NoError(t, err, "Failed to create typesense client")
	return client
}

func medicalTurn(id, userID string, ts time.Time) *entities.ConversationTurn {
	return &entities.ConversationTurn{
		ID:          id,
		UserID:      userID,
		Timestamp:   ts,
		UserMessage: "severe headache and fever since two days",
		MessageType: entities.MessageTypeMedical,
		SymptomAnalysis: entities.SymptomAnalysis{
			HasSymptoms:     true,
			Symptoms:        []string{"headache", "fever"},
			Language:        entities.LanguageEnglish,
			Urgency:         entities.UrgencyMedium,
			DetectionMethod: entities.DetectionOracle,
		},
		ConditionPrediction: entities.NewConditionPrediction("Migraine", 0.72, entities.SeverityMedium, []string{"headache", "fever"}, nil),
		BotReply:            "Rest in a dark room and drink water.",
		Facilities:          []entities.FacilityResult{},
		FollowUpQuestions:   []string{"How long have you had these symptoms?"},
		UrgencyLevel:        entities.UrgencyMedium,
	}
}

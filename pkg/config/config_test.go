package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "openai", cfg.Classifier.Provider)
	assert.Equal(t, "mock", cfg.Places.Provider)
	assert.Equal(t, 15*time.Second, cfg.Oracle.LanguageModelTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sehat-saathi", cfg.OTEL.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Classifier.BreakerFailures)
	assert.Equal(t, 30*time.Second, cfg.Classifier.BreakerCooldown)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("ORACLE_PLACES_TIMEOUT", "2s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("TYPESENSE_URL", "http://test-typesense:8108")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, 2*time.Second, cfg.Oracle.PlacesTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.InDelta(t, 0.5, cfg.RateLimit.RequestsPerSecond, 1e-9)
	assert.Equal(t, "http://test-typesense:8108", cfg.Typesense.URL)
}

func TestLoad_RejectsUnknownDrivers(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "firestore")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_GooglePlacesRequiresKey(t *testing.T) {
	t.Setenv("PLACES_PROVIDER", "google")
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	_, err := Load()
	assert.Error(t, err)
}

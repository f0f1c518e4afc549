package secrets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyVaultSecrets_LoadsOnlyManagedKeys(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/secret/data/sehat-saathi/backend", r.URL.Path)
		assert.Equal(t, "root", r.Header.Get("X-Vault-Token"))
		_, _ = w.Write([]byte(`{"data":{"data":{"OPENAI_API_KEY":"sk-test","GOOGLE_MAPS_API_KEY":"maps","UNRELATED":"x"}}}`))
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GOOGLE_MAPS_API_KEY", "already-set")
	t.Setenv("UNRELATED", "")

	result, err := ApplyVaultSecrets(context.Background(), VaultConfig{
		Enabled:   true,
		Addr:      server.URL,
		Token:     "root",
		Mount:     "secret",
		Path:      "sehat-saathi/backend",
		KVVersion: 2,
		Timeout:   time.Second,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Loaded)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, "sk-test", os.Getenv("OPENAI_API_KEY"))
	assert.Equal(t, "already-set", os.Getenv("GOOGLE_MAPS_API_KEY"))
	assert.Equal(t, "", os.Getenv("UNRELATED"))
}

func TestApplyVaultSecrets_DisabledIsNoop(t *testing.T) {
	result, err := ApplyVaultSecrets(context.Background(), VaultConfig{Enabled: false})
	require.NoError(t, err)
	assert.False(t, result.Enabled)
}

func TestApplyVaultSecrets_ForbiddenIsNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := ApplyVaultSecrets(context.Background(), VaultConfig{
		Enabled: true, Addr: server.URL, Token: "bad", Mount: "secret", Path: "p", KVVersion: 2, Timeout: time.Second,
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

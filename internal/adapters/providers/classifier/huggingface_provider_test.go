package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
)

func newClassifier(t *testing.T, url string, retries int) *HuggingFaceClassifier {
	t.Helper()
	c, err := NewHuggingFaceClassifier(config.ClassifierConfig{Endpoint: url, Token: "hf_test", MaxRetries: retries})
	require.NoError(t, err)
	return c
}

func TestClassify_PicksHighestScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "fever, cough", body["inputs"])
		_, _ = w.Write([]byte(`[[{"label":"common cold","score":0.21},{"label":"pneumonia","score":0.71234}]]`))
	}))
	defer server.Close()

	got, err := newClassifier(t, server.URL, 1).Classify(context.Background(), []string{"fever", "cough"})
	require.NoError(t, err)
	assert.Equal(t, "pneumonia", got.Label)
	assert.InDelta(t, 0.712, got.Confidence, 1e-9)
}

func TestClassify_FlatShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"label":"migraine","score":0.9}]`))
	}))
	defer server.Close()

	got, err := newClassifier(t, server.URL, 1).Classify(context.Background(), []string{"headache"})
	require.NoError(t, err)
	assert.Equal(t, "migraine", got.Label)
}

func TestClassify_RetriesWhileModelLoads(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[[{"label":"gastritis","score":0.6}]]`))
	}))
	defer server.Close()

	got, err := newClassifier(t, server.URL, 3).Classify(context.Background(), []string{"stomach pain"})
	require.NoError(t, err)
	assert.Equal(t, "gastritis", got.Label)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClassify_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newClassifier(t, server.URL, 3).Classify(context.Background(), []string{"cough"})
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClassify_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[]]`))
	}))
	defer server.Close()

	_, err := newClassifier(t, server.URL, 1).Classify(context.Background(), []string{"cough"})
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = newClassifier(t, server.URL, 1).Classify(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestNewHuggingFaceClassifier_RequiresEndpoint(t *testing.T) {
	_, err := NewHuggingFaceClassifier(config.ClassifierConfig{})
	assert.Error(t, err)
}

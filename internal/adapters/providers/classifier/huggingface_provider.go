package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
	"github.com/zatekoja/sehatsaathi/backend/pkg/retry"
)

// ErrNoCandidates is returned when the inference API yields no labels.
var ErrNoCandidates = errors.New("classifier returned no labels")

// HuggingFaceClassifier calls a hosted text-classification model.
type HuggingFaceClassifier struct {
	endpoint   string
	token      string
	maxRetries int
	httpClient *http.Client
}

// NewHuggingFaceClassifier creates a classifier for the configured endpoint.
func NewHuggingFaceClassifier(cfg config.ClassifierConfig) (*HuggingFaceClassifier, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("classifier endpoint is required")
	}
	return &HuggingFaceClassifier{
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type inferenceLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify implements providers.ClassifierProvider.
func (c *HuggingFaceClassifier) Classify(ctx context.Context, symptoms []string) (*providers.Classification, error) {
	if len(symptoms) == 0 {
		return nil, ErrNoCandidates
	}
	body, err := json.Marshal(map[string]string{"inputs": strings.Join(symptoms, ", ")})
	if err != nil {
		return nil, err
	}

	logger := observability.LoggerFromContext(ctx)
	var labels []inferenceLabel
	err = retry.DoWithLog(ctx, retry.OracleConfig(c.maxRetries), "huggingface", func() error {
		var callErr error
		labels, callErr = c.infer(ctx, body)
		return callErr
	}, func(attempt int, err error, next time.Duration) {
		logger.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", next).Msg("classifier call failed, retrying")
	})
	if err != nil {
		return nil, err
	}

	best, ok := topLabel(labels)
	if !ok {
		return nil, ErrNoCandidates
	}
	return &providers.Classification{
		Label:      best.Label,
		Confidence: math.Round(best.Score*1000) / 1000,
	}, nil
}

func (c *HuggingFaceClassifier) infer(ctx context.Context, body []byte) ([]inferenceLabel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, retry.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	// 503 means the model is still loading.
	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("inference request failed with status %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, retry.Permanent(fmt.Errorf("inference request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload))))
	}

	labels, err := decodeLabels(payload)
	if err != nil {
		return nil, retry.Permanent(err)
	}
	return labels, nil
}

// decodeLabels accepts both the nested [[...]] and the flat [...] shapes the
// inference API returns for text classification.
func decodeLabels(payload []byte) ([]inferenceLabel, error) {
	var nested [][]inferenceLabel
	if err := json.Unmarshal(payload, &nested); err == nil {
		var flat []inferenceLabel
		for _, group := range nested {
			flat = append(flat, group...)
		}
		return flat, nil
	}
	var flat []inferenceLabel
	if err := json.Unmarshal(payload, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode inference response: %w", err)
	}
	return flat, nil
}

func topLabel(labels []inferenceLabel) (inferenceLabel, bool) {
	var best inferenceLabel
	found := false
	for _, l := range labels {
		if l.Label == "" {
			continue
		}
		if !found || l.Score > best.Score {
			best = l
			found = true
		}
	}
	return best, found
}

package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
)

// ErrNoCandidates is returned when the classifier names no condition.
var ErrNoCandidates = errors.New("classifier returned no condition")

// Classifier asks the language model for the single best-matching condition.
type Classifier struct {
	model providers.LanguageModelProvider
}

// NewClassifier wraps a language model as a ClassifierProvider.
func NewClassifier(model providers.LanguageModelProvider) *Classifier {
	return &Classifier{model: model}
}

// Classify implements providers.ClassifierProvider.
func (c *Classifier) Classify(ctx context.Context, symptoms []string) (*providers.Classification, error) {
	if len(symptoms) == 0 {
		return nil, ErrNoCandidates
	}

	raw, err := c.model.Complete(ctx, providers.CompletionRequest{
		System:      classifierSystemPrompt,
		Prompt:      buildClassifierUserPrompt(symptoms),
		Temperature: 0.1,
		MaxTokens:   100,
	})
	if err != nil {
		return nil, err
	}

	payload, err := parseClassificationPayload(raw)
	if err != nil {
		return nil, err
	}
	if payload.Condition == "" {
		return nil, ErrNoCandidates
	}
	if payload.Confidence < 0 || payload.Confidence > 1 {
		return nil, fmt.Errorf("classifier confidence out of range: %v", payload.Confidence)
	}

	return &providers.Classification{
		Label:      payload.Condition,
		Confidence: payload.Confidence,
	}, nil
}

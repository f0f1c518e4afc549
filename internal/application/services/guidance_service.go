package services

import (
	"context"
	"strings"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

// GuidanceService produces free-text answers for non-medical messages and
// translates replies.
type GuidanceService struct {
	model   providers.LanguageModelProvider
	timeout time.Duration
	metrics *observability.Metrics
}

// NewGuidanceService creates a guidance service. model may be nil.
func NewGuidanceService(model providers.LanguageModelProvider, timeout time.Duration, metrics *observability.Metrics) *GuidanceService {
	return &GuidanceService{model: model, timeout: timeout, metrics: metrics}
}

// Respond answers in lang, falling back to a localized canned reply.
func (s *GuidanceService) Respond(ctx context.Context, text string, lang entities.Language) string {
	reply, err := s.complete(ctx, "guidance", providers.CompletionRequest{
		Prompt:      buildGuidancePrompt(text, lang),
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err == nil {
		return reply
	}

	observability.LoggerFromContext(ctx).Warn().Err(err).Str("language", string(lang)).
		Msg("guidance generation failed, using fallback reply")
	observability.TriageFallbacks.WithLabelValues("guidance").Inc()
	if isGreeting(text) {
		return localized(greetingReplies, lang)
	}
	return localized(guidanceFallbacks, lang)
}

// Translate renders English text in target. English targets and failures
// return text unchanged.
func (s *GuidanceService) Translate(ctx context.Context, text string, target entities.Language) string {
	if target == entities.LanguageEnglish || strings.TrimSpace(text) == "" {
		return text
	}
	translated, err := s.complete(ctx, "translate", providers.CompletionRequest{
		Prompt:      buildTranslationPrompt(text, target),
		Temperature: 0.2,
		MaxTokens:   800,
	})
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("language", string(target)).
			Msg("translation failed, returning original text")
		observability.TriageFallbacks.WithLabelValues("translate").Inc()
		return text
	}
	return translated
}

func (s *GuidanceService) complete(ctx context.Context, operation string, req providers.CompletionRequest) (string, error) {
	if s.model == nil {
		return "", errNoLanguageModel
	}
	callCtx, cancel := withOracleTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.model.Complete(callCtx, req)
	observability.RecordOracleCall(ctx, s.metrics, "language_model", operation, err, time.Since(start))
	if err != nil {
		return "", err
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", errEmptyReply
	}
	return reply, nil
}

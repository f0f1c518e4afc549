package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
)

// ErrEmptyCompletion is returned when the model answers with no text.
var ErrEmptyCompletion = errors.New("openai completion has no content")

// Client is the language model oracle backed by the chat completions API.
type Client struct {
	api     *goopenai.Client
	model   string
	limiter *rate.Limiter
}

// NewClient creates a new OpenAI client.
func NewClient(cfg *config.OpenAIConfig) (*Client, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &Client{
		api:     goopenai.NewClientWithConfig(clientConfig(cfg)),
		model:   model,
		limiter: newLimiter(cfg.RateLimitRPM, cfg.RateLimitBurst),
	}, nil
}

func clientConfig(cfg *config.OpenAIConfig) goopenai.ClientConfig {
	apiCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	apiCfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	return apiCfg
}

// newLimiter converts a requests-per-minute budget into a token bucket.
// A negative rpm disables limiting.
func newLimiter(rpm, burst int) *rate.Limiter {
	if rpm == 0 {
		rpm = 60
	}
	if rpm < 0 {
		return nil
	}
	if burst <= 0 {
		burst = 5
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60.0), burst)
}

// Complete sends a single system+user exchange and returns the raw reply text.
func (c *Client) Complete(ctx context.Context, req providers.CompletionRequest) (string, error) {
	if err := waitForSlot(ctx, c.limiter, c.model); err != nil {
		return "", err
	}

	messages := make([]goopenai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, goopenai.ChatCompletionMessage{Role: goopenai.ChatMessageRoleUser, Content: req.Prompt})

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 500
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		recordOpenAIMetric(ctx, c.model, "chat", statusCode(err), time.Since(start), err)
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		recordOpenAIMetric(ctx, c.model, "chat", http.StatusOK, time.Since(start), ErrEmptyCompletion)
		return "", ErrEmptyCompletion
	}

	recordOpenAIMetric(ctx, c.model, "chat", http.StatusOK, time.Since(start), nil)
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func waitForSlot(ctx context.Context, limiter *rate.Limiter, model string) error {
	if limiter == nil {
		return nil
	}
	waitStart := time.Now()
	if err := limiter.Wait(ctx); err != nil {
		recordOpenAIMetric(ctx, model, "rate_limit", 0, 0, err)
		return err
	}
	recordOpenAIRateLimitWait(ctx, model, time.Since(waitStart))
	return nil
}

func statusCode(err error) int {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *goopenai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

type openAIMetrics struct {
	requestCount    metric.Int64Counter
	requestDuration metric.Float64Histogram
	requestErrors   metric.Int64Counter
	rateLimitWait   metric.Float64Histogram
}

var (
	openaiMetricsOnce sync.Once
	openaiMetrics     *openAIMetrics
)

func ensureOpenAIMetrics() *openAIMetrics {
	openaiMetricsOnce.Do(func() {
		meter := otel.Meter("github.com/zatekoja/sehatsaathi/backend/openai")

		requestCount, err := meter.Int64Counter(
			"ai.openai.request.count",
			metric.WithDescription("Number of OpenAI requests"),
		)
		if err != nil {
			return
		}
		requestDuration, err := meter.Float64Histogram(
			"ai.openai.request.duration",
			metric.WithDescription("OpenAI request duration in milliseconds"),
			metric.WithUnit("ms"),
		)
		if err != nil {
			return
		}
		requestErrors, err := meter.Int64Counter(
			"ai.openai.request.errors",
			metric.WithDescription("Number of OpenAI request errors"),
		)
		if err != nil {
			return
		}
		rateLimitWait, err := meter.Float64Histogram(
			"ai.openai.rate_limit.wait",
			metric.WithDescription("Time spent waiting for OpenAI rate limiter in milliseconds"),
			metric.WithUnit("ms"),
		)
		if err != nil {
			return
		}

		openaiMetrics = &openAIMetrics{
			requestCount:    requestCount,
			requestDuration: requestDuration,
			requestErrors:   requestErrors,
			rateLimitWait:   rateLimitWait,
		}
	})
	return openaiMetrics
}

func recordOpenAIMetric(ctx context.Context, model, operation string, statusCode int, duration time.Duration, err error) {
	m := ensureOpenAIMetrics()
	if m == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("ai.provider", "openai"),
		attribute.String("ai.model", model),
		attribute.String("ai.operation", operation),
	}
	if statusCode > 0 {
		attrs = append(attrs, attribute.Int("http.status_code", statusCode))
	}

	m.requestCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.requestDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		m.requestErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

func recordOpenAIRateLimitWait(ctx context.Context, model string, wait time.Duration) {
	m := ensureOpenAIMetrics()
	if m == nil {
		return
	}
	m.rateLimitWait.Record(ctx, float64(wait.Milliseconds()), metric.WithAttributes(
		attribute.String("ai.provider", "openai"),
		attribute.String("ai.model", model),
	))
}

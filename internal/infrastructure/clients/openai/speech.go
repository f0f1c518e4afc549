package openai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
)

// SpeechClient transcribes with Whisper and synthesizes with the TTS models.
type SpeechClient struct {
	api             *goopenai.Client
	transcribeModel string
	speechModel     goopenai.SpeechModel
	voice           goopenai.SpeechVoice
	limiter         limiter
}

type limiter interface {
	Wait(ctx context.Context) error
}

// NewSpeechClient creates a speech client sharing the OpenAI credentials.
func NewSpeechClient(cfg *config.OpenAIConfig) (*SpeechClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}

	client := &SpeechClient{
		api:             goopenai.NewClientWithConfig(clientConfig(cfg)),
		transcribeModel: cfg.TranscribeModel,
		speechModel:     goopenai.SpeechModel(cfg.SpeechModel),
		voice:           goopenai.SpeechVoice(cfg.SpeechVoice),
	}
	if client.transcribeModel == "" {
		client.transcribeModel = goopenai.Whisper1
	}
	if client.speechModel == "" {
		client.speechModel = goopenai.TTSModel1
	}
	if client.voice == "" {
		client.voice = goopenai.VoiceAlloy
	}
	if l := newLimiter(cfg.RateLimitRPM, cfg.RateLimitBurst); l != nil {
		client.limiter = l
	}
	return client, nil
}

// Transcribe implements providers.SpeechProvider.
func (c *SpeechClient) Transcribe(ctx context.Context, audio []byte, filename, languageHint string) (*providers.Transcription, error) {
	if len(audio) == 0 {
		return nil, errors.New("audio is empty")
	}
	if filename == "" {
		filename = "audio.wav"
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	req := goopenai.AudioRequest{
		Model:    c.transcribeModel,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
		Format:   goopenai.AudioResponseFormatVerboseJSON,
	}
	if lang, ok := entities.ParseLanguage(languageHint); ok {
		req.Language = lang.Code()
	}

	start := time.Now()
	resp, err := c.api.CreateTranscription(ctx, req)
	if err != nil {
		recordOpenAIMetric(ctx, c.transcribeModel, "transcription", statusCode(err), time.Since(start), err)
		return nil, fmt.Errorf("openai transcription: %w", err)
	}
	recordOpenAIMetric(ctx, c.transcribeModel, "transcription", http.StatusOK, time.Since(start), nil)

	language := req.Language
	if detected, ok := entities.ParseLanguage(strings.ToLower(resp.Language)); ok {
		language = detected.Code()
	}
	return &providers.Transcription{
		Text:     strings.TrimSpace(resp.Text),
		Language: language,
	}, nil
}

// Synthesize implements providers.SpeechProvider. The voice model infers
// pronunciation from the text itself, so language only affects metrics.
func (c *SpeechClient) Synthesize(ctx context.Context, text string, language entities.Language) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is empty")
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	start := time.Now()
	audio, err := c.api.CreateSpeech(ctx, goopenai.CreateSpeechRequest{
		Model:          c.speechModel,
		Input:          text,
		Voice:          c.voice,
		ResponseFormat: goopenai.SpeechResponseFormatMp3,
	})
	if err != nil {
		recordOpenAIMetric(ctx, string(c.speechModel), "speech_"+language.Code(), statusCode(err), time.Since(start), err)
		return nil, fmt.Errorf("openai speech: %w", err)
	}
	defer audio.Close()

	data, err := io.ReadAll(audio)
	recordOpenAIMetric(ctx, string(c.speechModel), "speech_"+language.Code(), http.StatusOK, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *SpeechClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

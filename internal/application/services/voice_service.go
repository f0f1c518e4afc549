package services

import (
	"context"
	"errors"
	"strings"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

const (
	// MinAudioBytes and MaxAudioBytes bound uploaded recordings.
	MinAudioBytes = 1 << 10
	MaxAudioBytes = 10 << 20

	transcriptionConfidence = 0.95
	unknownLanguage         = "unknown"
)

var (
	ErrSpeechUnavailable = errors.New("speech provider not configured")
	ErrEmptyTranscript   = errors.New("could not understand audio")
)

// SpeechResult is the outcome of a speech-to-text request. Failures are
// reported in-band with Success false.
type SpeechResult struct {
	Success    bool    `json:"success"`
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}

// VoiceChatResult pairs the transcript with the triage turn it produced.
type VoiceChatResult struct {
	Transcription SpeechResult               `json:"transcription"`
	Response      *entities.ConversationTurn `json:"response,omitempty"`
}

// MessageProcessor runs a text message through triage.
type MessageProcessor interface {
	ProcessMessage(ctx context.Context, req MessageRequest) entities.ConversationTurn
}

// VoiceService wraps the speech oracle for the voice endpoints.
type VoiceService struct {
	speech    providers.SpeechProvider
	languages *LanguageDetector
	triage    MessageProcessor
}

// NewVoiceService creates a voice service. speech may be nil, in which case
// every request fails in-band.
func NewVoiceService(speech providers.SpeechProvider, languages *LanguageDetector, triage MessageProcessor) *VoiceService {
	return &VoiceService{speech: speech, languages: languages, triage: triage}
}

// SpeechToText transcribes audio. languageHint may be a name or ISO code.
func (s *VoiceService) SpeechToText(ctx context.Context, audio []byte, filename, languageHint string) SpeechResult {
	logger := observability.LoggerFromContext(ctx)
	if s.speech == nil {
		return failedSpeech(ErrSpeechUnavailable)
	}

	hint := ""
	if lang, ok := entities.ParseLanguage(strings.ToLower(strings.TrimSpace(languageHint))); ok {
		hint = lang.Code()
	}

	transcription, err := s.speech.Transcribe(ctx, audio, filename, hint)
	if err != nil {
		logger.Warn().Err(err).Str("oracle", "speech").Msg("transcription failed")
		observability.TriageFallbacks.WithLabelValues("speech").Inc()
		return failedSpeech(err)
	}
	text := strings.TrimSpace(transcription.Text)
	if text == "" {
		return failedSpeech(ErrEmptyTranscript)
	}

	language := transcription.Language
	if language == "" && s.languages != nil {
		language = s.languages.Detect(text).Code()
	}
	return SpeechResult{
		Success:    true,
		Text:       text,
		Language:   language,
		Confidence: transcriptionConfidence,
	}
}

// TextToSpeech renders text as MP3 audio.
func (s *VoiceService) TextToSpeech(ctx context.Context, text string, lang entities.Language) ([]byte, error) {
	if s.speech == nil {
		return nil, ErrSpeechUnavailable
	}
	return s.speech.Synthesize(ctx, text, lang)
}

// VoiceChat transcribes audio and runs the transcript through triage. A
// failed transcription returns no turn.
func (s *VoiceService) VoiceChat(ctx context.Context, audio []byte, filename, languageHint, userID string, location *entities.Location) VoiceChatResult {
	result := VoiceChatResult{Transcription: s.SpeechToText(ctx, audio, filename, languageHint)}
	if !result.Transcription.Success || s.triage == nil {
		return result
	}
	turn := s.triage.ProcessMessage(ctx, MessageRequest{
		Text:     result.Transcription.Text,
		UserID:   userID,
		Location: location,
	})
	result.Response = &turn
	return result
}

func failedSpeech(err error) SpeechResult {
	return SpeechResult{
		Success:    false,
		Language:   unknownLanguage,
		Confidence: 0,
		Error:      err.Error(),
	}
}

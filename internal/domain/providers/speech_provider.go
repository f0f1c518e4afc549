package providers

import (
	"context"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// Transcription is the result of speech recognition.
type Transcription struct {
	Text     string
	Language string
}

// SpeechProvider converts between audio and text.
type SpeechProvider interface {
	// Transcribe converts audio to text. languageHint may be empty.
	Transcribe(ctx context.Context, audio []byte, filename, languageHint string) (*Transcription, error)

	// Synthesize renders text as MP3 audio in the given language.
	Synthesize(ctx context.Context, text string, language entities.Language) ([]byte, error)
}

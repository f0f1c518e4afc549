package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/sehatsaathi/backend/pkg/errors"
)

const multipartOverhead = 1 << 20

// VoiceProcessor is the speech side of the assistant.
type VoiceProcessor interface {
	SpeechToText(ctx context.Context, audio []byte, filename, languageHint string) services.SpeechResult
	TextToSpeech(ctx context.Context, text string, lang entities.Language) ([]byte, error)
	VoiceChat(ctx context.Context, audio []byte, filename, languageHint, userID string, location *entities.Location) services.VoiceChatResult
}

// VoiceHandler handles the /api/voice endpoints
type VoiceHandler struct {
	voice VoiceProcessor
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(voice VoiceProcessor) *VoiceHandler {
	return &VoiceHandler{voice: voice}
}

// SpeechToText handles POST /api/voice/speech-to-text
func (h *VoiceHandler) SpeechToText(w http.ResponseWriter, r *http.Request) {
	audio, filename, err := readAudio(w, r)
	if err != nil {
		respondWithAppError(w, r, err, "invalid audio")
		return
	}

	result := h.voice.SpeechToText(r.Context(), audio, filename, r.FormValue("language"))
	respondWithJSON(w, http.StatusOK, result)
}

type textToSpeechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// TextToSpeech handles POST /api/voice/text-to-speech
func (h *VoiceHandler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	var payload textToSpeechRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	text, err := validateMessage(payload.Text)
	if err != nil {
		respondWithAppError(w, r, err, "invalid text")
		return
	}

	audio, err := h.voice.TextToSpeech(r.Context(), text, languageParam(payload.Language))
	if err != nil {
		if errors.Is(err, services.ErrSpeechUnavailable) {
			respondWithError(w, http.StatusServiceUnavailable, "text to speech is not available")
			return
		}
		respondWithAppError(w, r, apperrors.NewExternalError("speech synthesis failed", err), "speech synthesis failed")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="speech.mp3"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

// VoiceChat handles POST /api/voice/chat
func (h *VoiceHandler) VoiceChat(w http.ResponseWriter, r *http.Request) {
	audio, filename, err := readAudio(w, r)
	if err != nil {
		respondWithAppError(w, r, err, "invalid audio")
		return
	}

	userID := r.FormValue("user_id")
	if err := validateUserID(userID); err != nil {
		respondWithAppError(w, r, err, "invalid user_id")
		return
	}
	location, err := formLocation(r)
	if err != nil {
		respondWithAppError(w, r, err, "invalid location")
		return
	}

	result := h.voice.VoiceChat(r.Context(), audio, filename, r.FormValue("language"), userID, location)
	respondWithJSON(w, http.StatusOK, result)
}

// SupportedLanguages handles GET /api/voice/supported-languages
func (h *VoiceHandler) SupportedLanguages(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"languages": entities.LanguageCodes(),
		"default":   entities.LanguageEnglish,
	})
}

// readAudio extracts the "audio" part of a multipart upload and enforces
// the size bounds.
func readAudio(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxAudioBytes+multipartOverhead)
	if err := r.ParseMultipartForm(services.MaxAudioBytes + multipartOverhead); err != nil {
		return nil, "", apperrors.NewValidationError("Audio upload must be multipart/form-data (max 10MB)")
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		return nil, "", apperrors.NewValidationError("No audio file provided")
	}
	defer file.Close()
	if header.Filename == "" {
		return nil, "", apperrors.NewValidationError("No audio file selected")
	}

	audio, err := io.ReadAll(io.LimitReader(file, services.MaxAudioBytes+1))
	if err != nil {
		return nil, "", apperrors.NewValidationError("Could not read audio file")
	}
	switch {
	case len(audio) == 0:
		return nil, "", apperrors.NewValidationError("No audio data provided")
	case len(audio) > services.MaxAudioBytes:
		return nil, "", apperrors.NewValidationError("Audio file too large (max 10MB)")
	case len(audio) < services.MinAudioBytes:
		return nil, "", apperrors.NewValidationError("Audio file too small (min 1KB)")
	}
	return audio, header.Filename, nil
}

// formLocation reads optional lat and lng form fields.
func formLocation(r *http.Request) (*entities.Location, error) {
	latRaw, lngRaw := strings.TrimSpace(r.FormValue("lat")), strings.TrimSpace(r.FormValue("lng"))
	if latRaw == "" && lngRaw == "" {
		return nil, nil
	}
	var p locationPayload
	for _, field := range []struct {
		name string
		raw  string
		dst  **float64
	}{{"lat", latRaw, &p.Lat}, {"lng", lngRaw, &p.Lng}} {
		if field.raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(field.raw, 64)
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("Invalid %s format", field.name))
		}
		*field.dst = &value
	}
	return validateLocation(&p)
}

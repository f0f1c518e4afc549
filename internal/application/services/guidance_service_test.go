package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/tests/mocks"
)

func TestGuidanceService_Respond(t *testing.T) {
	model := mocks.NewMockLanguageModelProvider(t)
	model.EXPECT().Complete(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req providers.CompletionRequest) {
			assert.Contains(t, req.Prompt, "Sehat Saathi")
			assert.Contains(t, req.Prompt, "drink water")
		}).
		Return("  Drinking 8 glasses a day is a good start.  ", nil)

	svc := services.NewGuidanceService(model, time.Second, nil)
	reply := svc.Respond(context.Background(), "how much should I drink water", entities.LanguageEnglish)
	assert.Equal(t, "Drinking 8 glasses a day is a good start.", reply)
}

func TestGuidanceService_FallbackReplies(t *testing.T) {
	svc := services.NewGuidanceService(nil, time.Second, nil)

	greeting := svc.Respond(context.Background(), "Hello, how are you?", entities.LanguageEnglish)
	assert.True(t, strings.HasPrefix(greeting, "Hello! I'm Sehat Saathi"))

	fallback := svc.Respond(context.Background(), "tell me about vitamins", entities.LanguageTelugu)
	assert.True(t, strings.HasPrefix(fallback, "I understand your concern."), "unsupported catalogs fall back to english")
}

func TestGuidanceService_Translate(t *testing.T) {
	model := mocks.NewMockLanguageModelProvider(t)
	svc := services.NewGuidanceService(model, time.Second, nil)

	assert.Equal(t, "Stay hydrated", svc.Translate(context.Background(), "Stay hydrated", entities.LanguageEnglish))

	model.EXPECT().Complete(mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()
	assert.Equal(t, "Stay hydrated", svc.Translate(context.Background(), "Stay hydrated", entities.LanguageHindi))

	model.EXPECT().Complete(mock.Anything, mock.Anything).Return("हाइड्रेटेड रहें", nil).Once()
	assert.Equal(t, "हाइड्रेटेड रहें", svc.Translate(context.Background(), "Stay hydrated", entities.LanguageHindi))
}

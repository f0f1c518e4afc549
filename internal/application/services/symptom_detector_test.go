package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/tests/mocks"
)

func TestScanKeywords_English(t *testing.T) {
	scan := services.ScanKeywords("I have a headache and fever", entities.LanguageEnglish)
	assert.True(t, scan.Hit)
	assert.Equal(t, []string{"fever", "headache"}, scan.Symptoms)

	scan = services.ScanKeywords("Sharp chest pain since morning", entities.LanguageEnglish)
	assert.Equal(t, []string{"chest pain"}, scan.Symptoms)

	scan = services.ScanKeywords("Hello there", entities.LanguageEnglish)
	assert.False(t, scan.Hit)
	assert.Empty(t, scan.Symptoms)
}

func TestScanKeywords_HindiIsNormalizedToEnglish(t *testing.T) {
	scan := services.ScanKeywords("मुझे बुखार और खांसी है", entities.LanguageHindi)
	assert.True(t, scan.Hit)
	assert.ElementsMatch(t, []string{"fever", "cough"}, scan.Symptoms)
}

func TestLanguageDetector_Detect(t *testing.T) {
	d := services.NewLanguageDetector()
	assert.Equal(t, entities.LanguageHindi, d.Detect("मुझे बुखार है और सिर में दर्द हो रहा है"))
	assert.Equal(t, entities.LanguageTamil, d.Detect("எனக்கு காய்ச்சல் மற்றும் தலைவலி உள்ளது"))
	assert.Equal(t, entities.LanguageEnglish, d.Detect("I have had a fever since yesterday"))
	assert.Equal(t, entities.LanguageEnglish, d.Detect(""))
}

func TestLanguageDetector_ScriptDecidesShortText(t *testing.T) {
	d := services.NewLanguageDetector()
	tests := []struct {
		text string
		want entities.Language
	}{
		{"बुखार", entities.LanguageHindi},
		{"జ్వరం", entities.LanguageTelugu},
		{"জ্বর", entities.LanguageBengali},
		{"வலி", entities.LanguageTamil},
		{"I have बुखार since 2 days", entities.LanguageHindi},
		{"ok", entities.LanguageEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}

func TestSymptomDetector_ShortNonMedicalSkipsOracle(t *testing.T) {
	model := mocks.NewMockLanguageModelProvider(t)
	detector := services.NewSymptomDetector(nil, model, time.Second, nil)

	analysis := detector.Analyze(context.Background(), "good morning")

	assert.False(t, analysis.HasSymptoms)
	assert.Equal(t, entities.UrgencyLow, analysis.Urgency)
	assert.InDelta(t, 0.9, analysis.Confidence, 1e-9)
	model.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestSymptomDetector_OracleReply(t *testing.T) {
	model := mocks.NewMockLanguageModelProvider(t)
	model.EXPECT().
		Complete(mock.Anything, mock.AnythingOfType("providers.CompletionRequest")).
		Return(`{"has_symptoms": true, "symptoms": ["headache", "fever"], "original_language": "english", "urgency": "medium", "medical_context": true, "confidence": 0.88}`, nil)

	detector := services.NewSymptomDetector(nil, model, time.Second, nil)
	analysis := detector.Analyze(context.Background(), "I have a headache and fever")

	assert.True(t, analysis.HasSymptoms)
	assert.Equal(t, []string{"headache", "fever"}, analysis.Symptoms)
	assert.Equal(t, entities.UrgencyMedium, analysis.Urgency)
	assert.Equal(t, entities.DetectionOracle, analysis.DetectionMethod)
}

func TestSymptomDetector_OracleTimeoutFallsBackToKeywords(t *testing.T) {
	model := mocks.NewMockLanguageModelProvider(t)
	model.EXPECT().
		Complete(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ providers.CompletionRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	detector := services.NewSymptomDetector(nil, model, 20*time.Millisecond, nil)
	analysis := detector.Analyze(context.Background(), "I have fever and cough since yesterday")

	assert.True(t, analysis.HasSymptoms)
	assert.Equal(t, entities.DetectionKeyword, analysis.DetectionMethod)
	assert.InDelta(t, 0.5, analysis.Confidence, 1e-9)
	assert.Equal(t, entities.UrgencyLow, analysis.Urgency)
	assert.Equal(t, []string{"fever", "cough"}, analysis.Symptoms)
}

func TestSymptomDetector_MalformedReplyWithoutKeywords(t *testing.T) {
	model := mocks.NewMockLanguageModelProvider(t)
	model.EXPECT().Complete(mock.Anything, mock.Anything).Return("not json at all", nil)

	detector := services.NewSymptomDetector(nil, model, time.Second, nil)
	analysis := detector.Analyze(context.Background(), "what is the weather like today")

	assert.False(t, analysis.HasSymptoms)
	assert.Empty(t, analysis.Symptoms)
	assert.Equal(t, entities.DetectionKeyword, analysis.DetectionMethod)
}

func TestSymptomDetector_ContextPatternAloneIsNotASymptom(t *testing.T) {
	model := mocks.NewMockLanguageModelProvider(t)
	model.EXPECT().Complete(mock.Anything, mock.Anything).Return("not json at all", nil)

	detector := services.NewSymptomDetector(nil, model, time.Second, nil)
	analysis := detector.Analyze(context.Background(), "I need a doctor since 3 days")

	assert.False(t, analysis.HasSymptoms)
	assert.Empty(t, analysis.Symptoms)
	assert.Equal(t, entities.UrgencyLow, analysis.Urgency)
}

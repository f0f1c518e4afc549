package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

func TestParseExtractionReply_FencedJSON(t *testing.T) {
	raw := "```json\n{\"has_symptoms\": true, \"symptoms\": [\" fever \", \"\"], \"original_language\": \"english\", \"urgency\": \"HIGH\", \"medical_context\": true, \"confidence\": 0.92}\n```"

	reply, err := services.ParseExtractionReply(raw)
	require.NoError(t, err)
	assert.True(t, reply.HasSymptoms)
	assert.Equal(t, []string{"fever"}, reply.Symptoms)
	assert.Equal(t, "high", reply.Urgency)

	analysis := reply.Analysis(entities.LanguageEnglish, "fever")
	assert.Equal(t, entities.UrgencyHigh, analysis.Urgency)
	assert.Equal(t, entities.DetectionOracle, analysis.DetectionMethod)
}

func TestParseExtractionReply_ProseAroundObject(t *testing.T) {
	raw := `Sure! Here is the analysis: {"has_symptoms": false, "symptoms": [], "urgency": "low", "confidence": 0.6} Hope this helps.`

	reply, err := services.ParseExtractionReply(raw)
	require.NoError(t, err)

	analysis := reply.Analysis(entities.LanguageHindi, "namaste")
	assert.False(t, analysis.HasSymptoms)
	assert.Empty(t, analysis.Symptoms)
	assert.Equal(t, entities.UrgencyLow, analysis.Urgency)
	assert.Equal(t, entities.DetectionKeyword, analysis.DetectionMethod)
	assert.Equal(t, entities.LanguageHindi, analysis.Language)
}

func TestParseExtractionReply_Rejects(t *testing.T) {
	cases := map[string]string{
		"no json":          "I cannot help with that.",
		"missing fields":   `{"has_symptoms": true}`,
		"wrong type":       `{"has_symptoms": "yes", "symptoms": [], "urgency": "low", "confidence": 0.5}`,
		"confidence range": `{"has_symptoms": true, "symptoms": ["x"], "urgency": "low", "confidence": 7}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := services.ParseExtractionReply(raw)
			assert.ErrorIs(t, err, services.ErrMalformedExtraction)
		})
	}
}

func TestExtractionReply_EmptySymptomsForcesNoFinding(t *testing.T) {
	reply := &services.ExtractionReply{HasSymptoms: true, Symptoms: nil, Urgency: "high", Confidence: 0.9}

	analysis := reply.Analysis(entities.LanguageEnglish, "help")
	assert.False(t, analysis.HasSymptoms)
	assert.Equal(t, entities.UrgencyLow, analysis.Urgency)
	assert.NotNil(t, analysis.Symptoms)
}

package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConditionPrediction_AttentionFollowsSeverity(t *testing.T) {
	for _, sev := range []Severity{SeverityLow, SeverityMedium, SeverityHigh} {
		p := NewConditionPrediction("x", 0.8, sev, nil, nil)
		assert.Equal(t, sev == SeverityHigh, p.RequiresImmediateAttention, "severity %s", sev)
		assert.NotNil(t, p.SymptomsAnalyzed)
		assert.NotNil(t, p.Recommendations)
	}
	assert.Equal(t, 1.0, NewConditionPrediction("x", 1.7, SeverityLow, nil, nil).Confidence)
	assert.Equal(t, 0.0, NewConditionPrediction("x", -1, SeverityLow, nil, nil).Confidence)
}

func TestSymptomAnalysis_NormalizeEmptySymptoms(t *testing.T) {
	a := SymptomAnalysis{HasSymptoms: true, Urgency: UrgencyHigh, Language: "klingon", Confidence: 0.9}.Normalize()
	assert.False(t, a.HasSymptoms)
	assert.Equal(t, UrgencyLow, a.Urgency)
	assert.Equal(t, LanguageEnglish, a.Language)
	assert.Empty(t, a.Symptoms)
	assert.NotNil(t, a.Symptoms)
}

func TestSymptomAnalysis_NormalizeKeepsFindings(t *testing.T) {
	a := SymptomAnalysis{HasSymptoms: true, Symptoms: []string{"fever"}, Urgency: UrgencyMedium, Language: LanguageHindi}.Normalize()
	assert.True(t, a.HasSymptoms)
	assert.Equal(t, UrgencyMedium, a.Urgency)
	assert.Equal(t, LanguageHindi, a.Language)
}

func TestParseLanguage(t *testing.T) {
	lang, ok := ParseLanguage("ta")
	assert.True(t, ok)
	assert.Equal(t, LanguageTamil, lang)

	lang, ok = ParseLanguage("bengali")
	assert.True(t, ok)
	assert.Equal(t, "bn", lang.Code())

	lang, ok = ParseLanguage("fr")
	assert.False(t, ok)
	assert.Equal(t, LanguageEnglish, lang)
}

func TestParseUrgency(t *testing.T) {
	assert.Equal(t, UrgencyHigh, ParseUrgency("high"))
	assert.Equal(t, UrgencyLow, ParseUrgency("critical"))
	assert.Equal(t, UrgencyLow, ParseUrgency(""))
}

func TestMedicalTimeline(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	turns := []ConversationTurn{
		{MessageType: MessageTypeGeneral, Timestamp: now},
		{
			MessageType:         MessageTypeMedical,
			Timestamp:           now.Add(-time.Hour),
			SymptomAnalysis:     SymptomAnalysis{Symptoms: []string{"fever"}},
			ConditionPrediction: NewConditionPrediction("Flu", 0.7, SeverityLow, []string{"fever"}, nil),
		},
		{MessageType: MessageTypeMedical, Timestamp: now.Add(-2 * time.Hour)},
	}
	entries := MedicalTimeline(turns)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "Flu", entries[0].PredictedDisease)
		assert.Equal(t, SeverityLow, entries[0].Severity)
		assert.Equal(t, []string{"fever"}, entries[0].Symptoms)
	}

	many := make([]ConversationTurn, 30)
	for i := range many {
		many[i] = turns[1]
	}
	assert.Len(t, MedicalTimeline(many), MaxMedicalHistoryEntries)
}

func TestProfilePatch_Apply(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	name := "Asha"
	p := &UserProfile{UserID: "u1"}

	ProfilePatch{IncrementConversations: true}.Apply(p, now)
	ProfilePatch{IncrementConversations: true, Name: &name}.Apply(p, now.Add(time.Minute))

	assert.Equal(t, 2, p.TotalConversations)
	assert.Equal(t, now, p.CreatedAt)
	assert.Equal(t, now.Add(time.Minute), p.LastActive)
	assert.Equal(t, "Asha", *p.Name)

	ProfilePatch{}.Apply(p, now.Add(time.Hour))
	assert.Equal(t, 2, p.TotalConversations)
	assert.Equal(t, now.Add(time.Minute), p.LastActive)
}

func TestConversationTurn_IsEmergency(t *testing.T) {
	high := NewConditionPrediction("pneumonia", 0.8, SeverityHigh, nil, nil)
	medium := NewConditionPrediction("migraine", 0.8, SeverityMedium, nil, nil)

	assert.True(t, ConversationTurn{MessageType: MessageTypeMedical, ConditionPrediction: high}.IsEmergency())
	assert.True(t, ConversationTurn{MessageType: MessageTypeMedical, ConditionPrediction: medium, UrgencyLevel: UrgencyHigh}.IsEmergency())
	assert.False(t, ConversationTurn{MessageType: MessageTypeMedical, ConditionPrediction: medium, UrgencyLevel: UrgencyLow}.IsEmergency())
	assert.False(t, ConversationTurn{MessageType: MessageTypeGeneral, UrgencyLevel: UrgencyHigh}.IsEmergency())
}

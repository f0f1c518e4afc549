package evaluation

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// keywordTriage labels anything mentioning "pain" as medical and "chest"
// as an emergency.
type keywordTriage struct {
	users []string
}

func (k *keywordTriage) ProcessMessage(ctx context.Context, req services.MessageRequest) entities.ConversationTurn {
	k.users = append(k.users, req.UserID)
	turn := entities.ConversationTurn{
		UserID:          req.UserID,
		MessageType:     entities.MessageTypeGeneral,
		SymptomAnalysis: entities.SymptomAnalysis{Language: entities.LanguageEnglish},
	}
	if strings.Contains(req.Text, "pain") {
		turn.MessageType = entities.MessageTypeMedical
		turn.UrgencyLevel = entities.UrgencyLow
		turn.ConditionPrediction = &entities.ConditionPrediction{Label: "Muscle Strain", Severity: entities.SeverityLow}
		if strings.Contains(req.Text, "chest") {
			turn.UrgencyLevel = entities.UrgencyHigh
			turn.ConditionPrediction = &entities.ConditionPrediction{Label: "Heart Attack", Severity: entities.SeverityHigh}
		}
	}
	return turn
}

func TestRunner_Run(t *testing.T) {
	triage := &keywordTriage{}
	runner := NewRunner(triage)

	cases := []GoldenCase{
		{ID: "c1", Message: "crushing chest pain", Language: entities.LanguageEnglish, ExpectedType: entities.MessageTypeMedical, ExpectedSeverity: entities.SeverityHigh, ExpectedEmergency: true, Difficulty: "easy"},
		{ID: "c2", Message: "back pain after lifting", Language: entities.LanguageEnglish, ExpectedType: entities.MessageTypeMedical, ExpectedSeverity: entities.SeverityLow, Difficulty: "easy"},
		{ID: "c3", Message: "hello there", Language: entities.LanguageEnglish, ExpectedType: entities.MessageTypeGeneral, Difficulty: "easy"},
		{ID: "c4", Message: "I cannot breathe", Language: entities.LanguageEnglish, ExpectedType: entities.MessageTypeMedical, ExpectedEmergency: true, Difficulty: "hard"},
		{ID: "c5", Message: "मुझे बुखार है", Language: entities.LanguageHindi, ExpectedType: entities.MessageTypeMedical, Difficulty: "medium"},
	}

	summary, err := runner.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalCases)
	assert.InDelta(t, 0.6, summary.TypeAccuracy, 1e-9)
	assert.InDelta(t, 0.8, summary.LanguageAccuracy, 1e-9)
	assert.Equal(t, 2, summary.SeverityCases)
	assert.InDelta(t, 1.0, summary.SeverityAccuracy, 1e-9)
	assert.InDelta(t, 1.0, summary.EmergencyPrecision, 1e-9)
	assert.InDelta(t, 0.5, summary.EmergencyRecall, 1e-9)
	assert.Zero(t, summary.Errors)

	require.Contains(t, summary.ByLanguage, entities.LanguageHindi)
	assert.Equal(t, 1, summary.ByLanguage[entities.LanguageHindi].Count)
	assert.InDelta(t, 0.0, summary.ByLanguage[entities.LanguageHindi].LanguageAccuracy, 1e-9)
	assert.InDelta(t, 0.75, summary.ByLanguage[entities.LanguageEnglish].TypeAccuracy, 1e-9)

	require.Len(t, summary.Failures, 2)
	assert.Equal(t, "c4", summary.Failures[0].CaseID)
	assert.Equal(t, "c5", summary.Failures[1].CaseID)
	assert.Equal(t, "eval-c1", triage.users[0])

	assert.False(t, NewGuardrails(GuardrailConfig{}).Passed(summary))
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(&keywordTriage{}).Run(ctx, []GoldenCase{{ID: "c1", Message: "x"}})
	assert.ErrorIs(t, err, context.Canceled)
}

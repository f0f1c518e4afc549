package entities

import "time"

// MessageType is the response branch a turn went through.
type MessageType string

const (
	MessageTypeMedical MessageType = "medical"
	MessageTypeGeneral MessageType = "general"
	MessageTypeError   MessageType = "error"
)

// MaxFollowUpQuestions bounds the follow-up list on every turn.
const MaxFollowUpQuestions = 4

// ConversationTurn is one user message and the full computed response.
// It is built once and not modified afterwards.
type ConversationTurn struct {
	ID                         string               `json:"id"`
	UserID                     string               `json:"user_id"`
	Timestamp                  time.Time            `json:"timestamp"`
	UserMessage                string               `json:"user_message"`
	MessageType                MessageType          `json:"message_type"`
	SymptomAnalysis            SymptomAnalysis      `json:"symptom_analysis"`
	ConditionPrediction        *ConditionPrediction `json:"disease_prediction"`
	BotReply                   string               `json:"bot_reply"`
	Facilities                 []FacilityResult     `json:"hospitals"`
	FollowUpQuestions          []string             `json:"follow_up_questions"`
	UrgencyLevel               Urgency              `json:"urgency_level"`
	RequiresImmediateAttention bool                 `json:"requires_immediate_attention"`
	Error                      string               `json:"error,omitempty"`
}

// IsEmergency reports whether the turn went through the emergency branch.
func (t ConversationTurn) IsEmergency() bool {
	if t.MessageType != MessageTypeMedical {
		return false
	}
	if t.UrgencyLevel == UrgencyHigh {
		return true
	}
	return t.ConditionPrediction != nil && t.ConditionPrediction.Severity == SeverityHigh
}

// MedicalHistoryEntry is one row of a user's derived medical timeline.
type MedicalHistoryEntry struct {
	Date             time.Time `json:"date"`
	Symptoms         []string  `json:"symptoms"`
	PredictedDisease string    `json:"predicted_disease"`
	Severity         Severity  `json:"severity"`
	Confidence       float64   `json:"confidence"`
}

// MaxMedicalHistoryEntries caps the medical timeline.
const MaxMedicalHistoryEntries = 20

// MedicalTimeline derives the medical history from turns ordered most recent
// first. Only medical turns with a prediction are included.
func MedicalTimeline(turns []ConversationTurn) []MedicalHistoryEntry {
	entries := make([]MedicalHistoryEntry, 0)
	for _, turn := range turns {
		if turn.MessageType != MessageTypeMedical || turn.ConditionPrediction == nil {
			continue
		}
		entries = append(entries, MedicalHistoryEntry{
			Date:             turn.Timestamp,
			Symptoms:         turn.SymptomAnalysis.Symptoms,
			PredictedDisease: turn.ConditionPrediction.Label,
			Severity:         turn.ConditionPrediction.Severity,
			Confidence:       turn.ConditionPrediction.Confidence,
		})
		if len(entries) == MaxMedicalHistoryEntries {
			break
		}
	}
	return entries
}

// UserHistory is the read model for the history endpoint.
type UserHistory struct {
	Profile       *UserProfile       `json:"user_data"`
	Conversations []ConversationTurn `json:"conversations"`
	TotalFound    int                `json:"total_found"`
}

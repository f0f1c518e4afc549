package entities

import (
	"time"

	"github.com/google/uuid"
)

// TriageEventType names the events published by the pipeline.
type TriageEventType string

const (
	TriageEventTurnRecorded      TriageEventType = "turn.recorded"
	TriageEventEmergencyDetected TriageEventType = "emergency.detected"
)

// TriageEvent is published on the event bus after notable pipeline outcomes.
type TriageEvent struct {
	ID             string          `json:"id"`
	Type           TriageEventType `json:"event_type"`
	UserID         string          `json:"user_id"`
	ConversationID string          `json:"conversation_id"`
	MessageType    MessageType     `json:"message_type"`
	Condition      string          `json:"condition,omitempty"`
	Severity       Severity        `json:"severity,omitempty"`
	Location       *Location       `json:"location,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

// NewTriageEvent builds an event for turn.
func NewTriageEvent(eventType TriageEventType, turn ConversationTurn, location *Location) *TriageEvent {
	event := &TriageEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		UserID:         turn.UserID,
		ConversationID: turn.ID,
		MessageType:    turn.MessageType,
		Location:       location,
		Timestamp:      time.Now().UTC(),
	}
	if turn.ConditionPrediction != nil {
		event.Condition = turn.ConditionPrediction.Label
		event.Severity = turn.ConditionPrediction.Severity
	}
	return event
}

package evaluation

import (
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// GoldenCase is a labeled chat message with the expected triage outcome.
type GoldenCase struct {
	ID                string               `json:"id"`
	Message           string               `json:"message"`
	Language          entities.Language    `json:"language"`
	ExpectedType      entities.MessageType `json:"expected_message_type"`
	ExpectedSeverity  entities.Severity    `json:"expected_severity,omitempty"` // only checked when set
	ExpectedEmergency bool                 `json:"expected_emergency"`
	Difficulty        string               `json:"difficulty"` // easy, medium, hard
}

// EvalResult holds the outcome for a single case.
type EvalResult struct {
	CaseID           string               `json:"case_id"`
	Message          string               `json:"message"`
	Language         entities.Language    `json:"language"`
	DetectedLanguage entities.Language    `json:"detected_language"`
	MessageType      entities.MessageType `json:"message_type"`
	Severity         entities.Severity    `json:"severity,omitempty"`
	Emergency        bool                 `json:"emergency"`
	TypeCorrect      bool                 `json:"type_correct"`
	LanguageCorrect  bool                 `json:"language_correct"`
	SeverityCorrect  *bool                `json:"severity_correct,omitempty"`
	Errored          bool                 `json:"errored"`
	Latency          time.Duration        `json:"latency"`
}

// Passed reports whether every checked expectation held.
func (r EvalResult) Passed() bool {
	if r.Errored || !r.TypeCorrect || !r.LanguageCorrect {
		return false
	}
	return r.SeverityCorrect == nil || *r.SeverityCorrect
}

// EvalSummary holds aggregate metrics across all golden cases.
type EvalSummary struct {
	TotalCases         int                                  `json:"total_cases"`
	TypeAccuracy       float64                              `json:"type_accuracy"`
	LanguageAccuracy   float64                              `json:"language_accuracy"`
	SeverityAccuracy   float64                              `json:"severity_accuracy"`
	SeverityCases      int                                  `json:"severity_cases"`
	EmergencyPrecision float64                              `json:"emergency_precision"`
	EmergencyRecall    float64                              `json:"emergency_recall"`
	Errors             int                                  `json:"errors"`
	AvgLatency         time.Duration                        `json:"avg_latency"`
	ByLanguage         map[entities.Language]*LanguageStats `json:"by_language"`
	Failures           []EvalResult                         `json:"failures,omitempty"`
}

// LanguageStats groups accuracy by the expected language.
type LanguageStats struct {
	Count            int     `json:"count"`
	TypeAccuracy     float64 `json:"type_accuracy"`
	LanguageAccuracy float64 `json:"language_accuracy"`

	typeHits     int
	languageHits int
}

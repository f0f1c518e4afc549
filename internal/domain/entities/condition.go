package entities

import "strings"

// Severity is the sole driver of emergency routing.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Upper is used in user-facing templates ("Severity Level: HIGH").
func (s Severity) Upper() string {
	return strings.ToUpper(string(s))
}

// UndeterminedCondition is the label used when the classifier is unavailable.
const UndeterminedCondition = "Unable to determine"

// ConditionPrediction is a classified condition plus locally derived guidance.
type ConditionPrediction struct {
	Label                      string   `json:"disease"`
	Confidence                 float64  `json:"confidence"`
	Severity                   Severity `json:"severity"`
	SymptomsAnalyzed           []string `json:"symptoms_analyzed"`
	Recommendations            []string `json:"recommendations"`
	RequiresImmediateAttention bool     `json:"requires_immediate_attention"`
}

// NewConditionPrediction builds a prediction. The immediate-attention flag is
// derived from severity here and nowhere else.
func NewConditionPrediction(label string, confidence float64, severity Severity, symptoms, recommendations []string) *ConditionPrediction {
	if symptoms == nil {
		symptoms = []string{}
	}
	if recommendations == nil {
		recommendations = []string{}
	}
	return &ConditionPrediction{
		Label:                      label,
		Confidence:                 clamp01(confidence),
		Severity:                   severity,
		SymptomsAnalyzed:           symptoms,
		Recommendations:            recommendations,
		RequiresImmediateAttention: severity == SeverityHigh,
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

package entities

// Urgency is the oracle's hint about how quickly the user needs care.
type Urgency string

const (
	UrgencyNone   Urgency = "none"
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ParseUrgency maps free text onto an urgency tier, defaulting to low.
func ParseUrgency(value string) Urgency {
	switch Urgency(value) {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return Urgency(value)
	default:
		return UrgencyLow
	}
}

// DetectionMethod records which detector tier produced a SymptomAnalysis.
type DetectionMethod string

const (
	DetectionKeyword DetectionMethod = "keyword"
	DetectionOracle  DetectionMethod = "oracle"
)

// SymptomAnalysis is the output of symptom detection for one message.
type SymptomAnalysis struct {
	HasSymptoms     bool            `json:"has_symptoms"`
	Symptoms        []string        `json:"symptoms"`
	Language        Language        `json:"original_language"`
	Urgency         Urgency         `json:"urgency"`
	MedicalContext  bool            `json:"medical_context"`
	Confidence      float64         `json:"confidence"`
	DetectionMethod DetectionMethod `json:"detection_method"`
	InputText       string          `json:"input_text,omitempty"`
}

// Normalize enforces the analysis invariants: no symptoms means no medical
// finding and low urgency.
func (a SymptomAnalysis) Normalize() SymptomAnalysis {
	if a.Symptoms == nil {
		a.Symptoms = []string{}
	}
	if len(a.Symptoms) == 0 {
		a.HasSymptoms = false
	}
	if !a.HasSymptoms {
		a.Symptoms = []string{}
		a.Urgency = UrgencyLow
	}
	if a.Urgency == "" {
		a.Urgency = UrgencyLow
	}
	if a.Confidence < 0 {
		a.Confidence = 0
	}
	if a.Confidence > 1 {
		a.Confidence = 1
	}
	if !a.Language.IsSupported() {
		a.Language = LanguageEnglish
	}
	return a
}

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/pkg/utils"
)

// ErrMalformedExtraction is returned when the reply holds no usable JSON.
var ErrMalformedExtraction = errors.New("malformed extraction reply")

const extractionReplySchema = `{
  "type": "object",
  "required": ["has_symptoms", "symptoms", "urgency", "confidence"],
  "properties": {
    "has_symptoms": {"type": "boolean"},
    "symptoms": {"type": "array", "items": {"type": "string"}},
    "original_language": {"type": "string"},
    "urgency": {"type": "string"},
    "medical_context": {"type": "boolean"},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1}
  }
}`

var (
	extractionSchemaOnce sync.Once
	extractionSchema     *gojsonschema.Schema
	extractionSchemaErr  error
)

func loadExtractionSchema() (*gojsonschema.Schema, error) {
	extractionSchemaOnce.Do(func() {
		extractionSchema, extractionSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(extractionReplySchema))
	})
	return extractionSchema, extractionSchemaErr
}

// ExtractionReply is the structured result the language model is asked for.
type ExtractionReply struct {
	HasSymptoms      bool     `json:"has_symptoms"`
	Symptoms         []string `json:"symptoms"`
	OriginalLanguage string   `json:"original_language"`
	Urgency          string   `json:"urgency"`
	MedicalContext   bool     `json:"medical_context"`
	Confidence       float64  `json:"confidence"`
}

// ParseExtractionReply is the only parser for extraction replies. It strips
// markdown fences, falls back to the outermost JSON object, and validates the
// shape before decoding.
func ParseExtractionReply(raw string) (*ExtractionReply, error) {
	doc := utils.StripCodeFence(raw)
	if !strings.HasPrefix(doc, "{") {
		start := strings.Index(doc, "{")
		end := strings.LastIndex(doc, "}")
		if start < 0 || end <= start {
			return nil, ErrMalformedExtraction
		}
		doc = doc[start : end+1]
	}

	schema, err := loadExtractionSchema()
	if err != nil {
		return nil, fmt.Errorf("load extraction schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExtraction, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedExtraction, strings.Join(msgs, "; "))
	}

	var reply ExtractionReply
	if err := json.Unmarshal([]byte(doc), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExtraction, err)
	}
	reply.Urgency = strings.ToLower(strings.TrimSpace(reply.Urgency))

	symptoms := make([]string, 0, len(reply.Symptoms))
	for _, s := range reply.Symptoms {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			symptoms = append(symptoms, trimmed)
		}
	}
	reply.Symptoms = symptoms
	return &reply, nil
}

// Analysis converts the reply into a normalized SymptomAnalysis.
func (r *ExtractionReply) Analysis(lang entities.Language, text string) entities.SymptomAnalysis {
	method := entities.DetectionKeyword
	if r.Confidence > 0.7 {
		method = entities.DetectionOracle
	}
	return entities.SymptomAnalysis{
		HasSymptoms:     r.HasSymptoms,
		Symptoms:        r.Symptoms,
		Language:        lang,
		Urgency:         entities.ParseUrgency(r.Urgency),
		MedicalContext:  r.MedicalContext,
		Confidence:      r.Confidence,
		DetectionMethod: method,
		InputText:       text,
	}.Normalize()
}

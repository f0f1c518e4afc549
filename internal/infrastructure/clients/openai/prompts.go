package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/zatekoja/sehatsaathi/backend/pkg/utils"
)

const classifierSystemPrompt = `You are a symptom-to-condition classifier for a primary care triage assistant in India. Return ONLY valid JSON with this schema:
{
  "condition": string (the single most likely condition, common English name, lowercase),
  "confidence": number (0.0 to 1.0)
}
Do not include explanations or more than one condition.`

type classificationPayload struct {
	Condition  string  `json:"condition"`
	Confidence float64 `json:"confidence"`
}

func buildClassifierUserPrompt(symptoms []string) string {
	return fmt.Sprintf("Symptoms: %s\n", strings.Join(symptoms, ", "))
}

func parseClassificationPayload(raw string) (*classificationPayload, error) {
	var payload classificationPayload
	if err := json.Unmarshal([]byte(utils.StripCodeFence(raw)), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse classification payload: %w", err)
	}
	payload.Condition = strings.TrimSpace(payload.Condition)
	return &payload, nil
}

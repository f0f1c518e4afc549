package evaluation

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// LoadGoldenCases reads and parses a golden case set from a JSON file.
func LoadGoldenCases(path string) ([]GoldenCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read golden cases file: %w", err)
	}

	var cases []GoldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse golden cases: %w", err)
	}

	return cases, nil
}

var validDifficulties = map[string]bool{
	"easy":   true,
	"medium": true,
	"hard":   true,
}

// ValidateGoldenCases checks that all cases have required fields and valid values.
func ValidateGoldenCases(cases []GoldenCase) error {
	seen := make(map[string]struct{}, len(cases))

	for i, c := range cases {
		if c.ID == "" {
			return fmt.Errorf("case at index %d: missing id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("case at index %d: duplicate id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}

		if strings.TrimSpace(c.Message) == "" {
			return fmt.Errorf("case %q: missing message", c.ID)
		}
		if !c.Language.IsSupported() {
			return fmt.Errorf("case %q: unsupported language %q", c.ID, c.Language)
		}
		switch c.ExpectedType {
		case entities.MessageTypeMedical, entities.MessageTypeGeneral:
		default:
			return fmt.Errorf("case %q: invalid expected_message_type %q", c.ID, c.ExpectedType)
		}
		switch c.ExpectedSeverity {
		case "", entities.SeverityLow, entities.SeverityMedium, entities.SeverityHigh:
		default:
			return fmt.Errorf("case %q: invalid expected_severity %q", c.ID, c.ExpectedSeverity)
		}
		if c.ExpectedType == entities.MessageTypeGeneral && (c.ExpectedEmergency || c.ExpectedSeverity != "") {
			return fmt.Errorf("case %q: general messages cannot expect a severity or emergency", c.ID)
		}
		if !validDifficulties[c.Difficulty] {
			return fmt.Errorf("case %q: invalid difficulty %q (must be easy/medium/hard)", c.ID, c.Difficulty)
		}
	}

	return nil
}

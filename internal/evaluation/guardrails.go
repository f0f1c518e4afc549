package evaluation

import (
	"fmt"
	"time"
)

// GuardrailConfig sets the minimum quality a triage build must reach.
type GuardrailConfig struct {
	MinTypeAccuracy     float64
	MinLanguageAccuracy float64
	MinEmergencyRecall  float64
	MaxErrors           int
	MaxAvgLatency       time.Duration
}

type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	if config.MinTypeAccuracy <= 0 {
		config.MinTypeAccuracy = 0.8
	}
	if config.MinLanguageAccuracy <= 0 {
		config.MinLanguageAccuracy = 0.9
	}
	// A missed emergency is never acceptable.
	if config.MinEmergencyRecall <= 0 {
		config.MinEmergencyRecall = 1.0
	}
	return &Guardrails{config: config}
}

// Violations lists every threshold the summary misses. Zero MaxErrors and
// MaxAvgLatency disable those checks.
func (g *Guardrails) Violations(s *EvalSummary) []string {
	var out []string
	if s.TypeAccuracy < g.config.MinTypeAccuracy {
		out = append(out, fmt.Sprintf("message type accuracy %.2f below %.2f", s.TypeAccuracy, g.config.MinTypeAccuracy))
	}
	if s.LanguageAccuracy < g.config.MinLanguageAccuracy {
		out = append(out, fmt.Sprintf("language accuracy %.2f below %.2f", s.LanguageAccuracy, g.config.MinLanguageAccuracy))
	}
	if s.EmergencyRecall < g.config.MinEmergencyRecall {
		out = append(out, fmt.Sprintf("emergency recall %.2f below %.2f", s.EmergencyRecall, g.config.MinEmergencyRecall))
	}
	if g.config.MaxErrors > 0 && s.Errors > g.config.MaxErrors {
		out = append(out, fmt.Sprintf("%d error turns exceed %d", s.Errors, g.config.MaxErrors))
	}
	if g.config.MaxAvgLatency > 0 && s.AvgLatency > g.config.MaxAvgLatency {
		out = append(out, fmt.Sprintf("average latency %s exceeds %s", s.AvgLatency, g.config.MaxAvgLatency))
	}
	return out
}

// Passed reports whether the summary meets every threshold.
func (g *Guardrails) Passed(s *EvalSummary) bool {
	return len(g.Violations(s)) == 0
}

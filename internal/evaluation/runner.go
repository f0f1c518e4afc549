package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

const evalUserPrefix = "eval-"

// Runner replays golden cases through the triage pipeline.
type Runner struct {
	triage services.MessageProcessor
}

func NewRunner(triage services.MessageProcessor) *Runner {
	return &Runner{triage: triage}
}

// Run processes every case in order. Only context cancellation aborts the run.
func (r *Runner) Run(ctx context.Context, cases []GoldenCase) (*EvalSummary, error) {
	summary := &EvalSummary{
		TotalCases: len(cases),
		ByLanguage: make(map[entities.Language]*LanguageStats),
	}
	var (
		typeHits, languageHits, severityHits int
		emergencies                          Confusion
	)

	for _, gc := range cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluation interrupted: %w", err)
		}

		result := r.evaluate(ctx, gc)
		summary.AvgLatency += result.Latency
		if result.Errored {
			summary.Errors++
		}
		if result.TypeCorrect {
			typeHits++
		}
		if result.LanguageCorrect {
			languageHits++
		}
		if result.SeverityCorrect != nil {
			summary.SeverityCases++
			if *result.SeverityCorrect {
				severityHits++
			}
		}
		emergencies.Add(result.Emergency, gc.ExpectedEmergency)

		stats, ok := summary.ByLanguage[gc.Language]
		if !ok {
			stats = &LanguageStats{}
			summary.ByLanguage[gc.Language] = stats
		}
		stats.Count++
		if result.TypeCorrect {
			stats.typeHits++
		}
		if result.LanguageCorrect {
			stats.languageHits++
		}

		if !result.Passed() {
			summary.Failures = append(summary.Failures, result)
		}
	}

	summary.TypeAccuracy = Accuracy(typeHits, summary.TotalCases)
	summary.LanguageAccuracy = Accuracy(languageHits, summary.TotalCases)
	summary.SeverityAccuracy = Accuracy(severityHits, summary.SeverityCases)
	summary.EmergencyPrecision = emergencies.Precision()
	summary.EmergencyRecall = emergencies.Recall()
	if summary.TotalCases > 0 {
		summary.AvgLatency /= time.Duration(summary.TotalCases)
	}
	for _, stats := range summary.ByLanguage {
		stats.TypeAccuracy = Accuracy(stats.typeHits, stats.Count)
		stats.LanguageAccuracy = Accuracy(stats.languageHits, stats.Count)
	}
	return summary, nil
}

func (r *Runner) evaluate(ctx context.Context, gc GoldenCase) EvalResult {
	start := time.Now()
	turn := r.triage.ProcessMessage(ctx, services.MessageRequest{
		Text:   gc.Message,
		UserID: evalUserPrefix + gc.ID,
	})

	result := EvalResult{
		CaseID:           gc.ID,
		Message:          gc.Message,
		Language:         gc.Language,
		DetectedLanguage: turn.SymptomAnalysis.Language,
		MessageType:      turn.MessageType,
		Emergency:        turn.IsEmergency(),
		Errored:          turn.MessageType == entities.MessageTypeError,
		Latency:          time.Since(start),
	}
	result.TypeCorrect = result.MessageType == gc.ExpectedType
	result.LanguageCorrect = result.DetectedLanguage == gc.Language
	if turn.ConditionPrediction != nil {
		result.Severity = turn.ConditionPrediction.Severity
	}
	if gc.ExpectedSeverity != "" {
		correct := result.Severity == gc.ExpectedSeverity
		result.SeverityCorrect = &correct
	}
	return result
}

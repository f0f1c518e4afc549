package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TriageTurns counts processed messages by branch and language.
	TriageTurns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_turns_total",
			Help: "Processed chat messages by response branch",
		},
		[]string{"message_type", "language"},
	)

	// TriageSeverity counts condition predictions by severity tier.
	TriageSeverity = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_severity_total",
			Help: "Condition predictions by locally assessed severity",
		},
		[]string{"severity", "emergency"},
	)

	// TriageDetection counts symptom detections by method.
	TriageDetection = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_detection_total",
			Help: "Symptom detection results by method and outcome",
		},
		[]string{"method", "has_symptoms"},
	)

	// TriageFallbacks counts oracle failures resolved by a fallback path.
	TriageFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_fallbacks_total",
			Help: "Oracle failures handled by a deterministic fallback",
		},
		[]string{"oracle"},
	)

	// PersistenceFailures counts best-effort writes that failed.
	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "triage_persistence_failures_total",
			Help: "Failed conversation log or profile writes",
		},
		[]string{"operation"},
	)

	// TriageDuration observes end-to-end message processing time.
	TriageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "triage_duration_seconds",
			Help:    "End-to-end chat message processing time",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"message_type"},
	)
)

// MetricsHandler exposes the Prometheus registry.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}

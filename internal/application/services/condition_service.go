package services

import (
	"context"
	"strconv"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
)

// ConditionService turns English symptoms into a ConditionPrediction. The
// classifier only names the condition; severity and guidance are local.
type ConditionService struct {
	classifier providers.ClassifierProvider
	timeout    time.Duration
	metrics    *observability.Metrics
}

// NewConditionService creates a condition service. classifier may be nil.
func NewConditionService(classifier providers.ClassifierProvider, timeout time.Duration, metrics *observability.Metrics) *ConditionService {
	return &ConditionService{classifier: classifier, timeout: timeout, metrics: metrics}
}

// Predict never fails: classifier errors yield the undetermined prediction.
func (s *ConditionService) Predict(ctx context.Context, symptoms []string) *entities.ConditionPrediction {
	label := entities.UndeterminedCondition
	confidence := 0.0

	classification, err := s.classify(ctx, symptoms)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Strs("symptoms", symptoms).
			Msg("condition classification failed")
		observability.TriageFallbacks.WithLabelValues("classifier").Inc()
	} else {
		label = classification.Label
		confidence = classification.Confidence
	}

	severity := AssessSeverity(label)
	prediction := entities.NewConditionPrediction(label, confidence, severity, symptoms, GetRecommendations(label, severity))
	observability.TriageSeverity.WithLabelValues(string(severity), strconv.FormatBool(prediction.RequiresImmediateAttention)).Inc()
	return prediction
}

func (s *ConditionService) classify(ctx context.Context, symptoms []string) (*providers.Classification, error) {
	if s.classifier == nil {
		return nil, errNoClassifier
	}
	callCtx, cancel := withOracleTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	classification, err := s.classifier.Classify(callCtx, symptoms)
	observability.RecordOracleCall(ctx, s.metrics, "classifier", "classify", err, time.Since(start))
	return classification, err
}

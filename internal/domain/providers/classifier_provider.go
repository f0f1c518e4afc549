package providers

import "context"

// Classification is the best-matching condition for a set of symptoms.
type Classification struct {
	Label      string
	Confidence float64
}

// ClassifierProvider maps English symptom phrases to a condition label.
type ClassifierProvider interface {
	Classify(ctx context.Context, symptoms []string) (*Classification, error)
}

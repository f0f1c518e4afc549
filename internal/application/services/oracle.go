package services

import (
	"context"
	"errors"
	"time"
)

var (
	errNoLanguageModel = errors.New("language model not configured")
	errNoClassifier    = errors.New("classifier not configured")
	errEmptyReply      = errors.New("language model returned an empty reply")
)

// withOracleTimeout bounds a single oracle call. A zero timeout only
// inherits the parent deadline.
func withOracleTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

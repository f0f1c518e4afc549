package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, BackoffFactor: 2}
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), func() error {
		calls++
		if calls < 3 {
			return errors.New("temporary")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	calls := 0
	sentinel := errors.New("bad request")
	err := Do(context.Background(), fastConfig(5), func() error {
		calls++
		return Permanent(sentinel)
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, sentinel)
}

func TestDoWithLog_ReportsAttemptsAndExhausts(t *testing.T) {
	var logged []int
	err := DoWithLog(context.Background(), fastConfig(3), "classifier", func() error {
		return errors.New("down")
	}, func(attempt int, err error, next time.Duration) {
		logged = append(logged, attempt)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classifier: max retry attempts (3) exceeded")
	assert.Equal(t, []int{1, 2}, logged)
}

func TestDo_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := Do(ctx, fastConfig(3), func() error {
		calls++
		return nil
	})
	require.Error(t, err)
	assert.Equal(t, 0, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

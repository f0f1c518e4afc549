package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/repositories"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	"github.com/zatekoja/sehatsaathi/backend/pkg/retry"
)

// DefaultReindexBatchSize is the page size used when none is configured.
const DefaultReindexBatchSize = 100

// ReindexSummary counts the turns pushed to the search index.
type ReindexSummary struct {
	TotalProcessed int       `json:"total_processed"`
	SuccessCount   int       `json:"success_count"`
	FailureCount   int       `json:"failure_count"`
	LastTimestamp  time.Time `json:"last_timestamp"`
}

// ReindexService rebuilds the conversation search index from storage.
type ReindexService struct {
	repo      repositories.ConversationRepository
	index     providers.ConversationIndex
	workers   int
	batchSize int
	retry     retry.Config
}

// NewReindexService creates a reindexer. Non-positive workers or batchSize
// fall back to defaults.
func NewReindexService(repo repositories.ConversationRepository, index providers.ConversationIndex, workers, batchSize, maxRetries int) *ReindexService {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = DefaultReindexBatchSize
	}
	return &ReindexService{
		repo:      repo,
		index:     index,
		workers:   workers,
		batchSize: batchSize,
		retry:     retry.OracleConfig(maxRetries),
	}
}

// Run indexes every turn recorded after since. Per-turn failures are
// counted and logged; listing failures abort the run.
func (s *ReindexService) Run(ctx context.Context, since time.Time) (*ReindexSummary, error) {
	logger := observability.LoggerFromContext(ctx)
	var processed, success, failure int64

	turnChan := make(chan entities.ConversationTurn, s.batchSize)
	var wg sync.WaitGroup

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for turn := range turnChan {
				err := s.indexOne(ctx, turn)
				atomic.AddInt64(&processed, 1)
				if err != nil {
					atomic.AddInt64(&failure, 1)
					logger.Warn().Err(err).Str("turn_id", turn.ID).Msg("failed to index conversation turn")
				} else {
					atomic.AddInt64(&success, 1)
				}
			}
		}()
	}

	stop := func() {
		close(turnChan)
		wg.Wait()
	}

	cursor := since
	for {
		turns, err := s.repo.ListSince(ctx, cursor, s.batchSize)
		if err != nil {
			stop()
			return nil, fmt.Errorf("failed to list conversation turns: %w", err)
		}
		if len(turns) == 0 {
			break
		}

		for _, turn := range turns {
			select {
			case turnChan <- turn:
			case <-ctx.Done():
				stop()
				return nil, ctx.Err()
			}
		}
		cursor = turns[len(turns)-1].Timestamp

		if len(turns) < s.batchSize {
			break
		}
		logger.Debug().Time("cursor", cursor).Int64("processed", atomic.LoadInt64(&processed)).Msg("reindex page queued")
	}

	stop()

	return &ReindexSummary{
		TotalProcessed: int(processed),
		SuccessCount:   int(success),
		FailureCount:   int(failure),
		LastTimestamp:  cursor,
	}, nil
}

func (s *ReindexService) indexOne(ctx context.Context, turn entities.ConversationTurn) error {
	return retry.Do(ctx, s.retry, func() error {
		return s.index.IndexTurn(ctx, &turn)
	})
}

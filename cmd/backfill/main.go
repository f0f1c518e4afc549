package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/database"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/search"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
	"github.com/zatekoja/sehatsaathi/backend/pkg/secrets"
)

// parseSince accepts an RFC3339 timestamp or a lookback duration such as 72h.
func parseSince(value string, now time.Time) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts, true
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return now.Add(-d), true
	}
	return time.Time{}, false
}

func main() {
	var (
		workers    int
		batchSize  int
		maxRetries int
		sinceFlag  string
	)
	flag.IntVar(&workers, "workers", 3, "Number of concurrent index workers")
	flag.IntVar(&batchSize, "batch-size", services.DefaultReindexBatchSize, "Turns fetched per page")
	flag.IntVar(&maxRetries, "max-retries", 3, "Index attempts per turn")
	flag.StringVar(&sinceFlag, "since", "", "Only reindex turns after this RFC3339 time or lookback duration (e.g. 72h)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if _, err := secrets.ApplyVaultSecrets(ctx, secrets.LoadVaultConfigFromEnv()); err != nil {
		log.Warn().Err(err).Msg("failed to load secrets from vault")
	}

	cfg, err := config.Load()
	if err != nil {
		observability.InitLogger("sehat-saathi-backfill", "production", "info")
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger(cfg.OTEL.ServiceName+"-backfill", cfg.Environment, cfg.LogLevel)
	logger := observability.GetLogger()

	since, ok := parseSince(sinceFlag, time.Now())
	if !ok {
		logger.Fatal().Str("since", sinceFlag).Msg("invalid -since value")
	}

	pgClient, err := postgres.NewClient(ctx, &cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to typesense")
	}
	index := search.NewConversationIndex(tsClient)
	if err := index.InitSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to init typesense schema")
	}

	svc := services.NewReindexService(database.NewConversationAdapter(pgClient.DB(), nil), index, workers, batchSize, maxRetries)

	start := time.Now()
	logger.Info().Int("workers", workers).Time("since", since).Msg("starting conversation reindex")
	summary, err := svc.Run(ctx, since)
	if err != nil {
		logger.Fatal().Err(err).Msg("reindex failed")
	}

	logger.Info().
		Dur("elapsed", time.Since(start)).
		Int("processed", summary.TotalProcessed).
		Int("success", summary.SuccessCount).
		Int("failed", summary.FailureCount).
		Time("last_timestamp", summary.LastTimestamp).
		Msg("reindex complete")
	if summary.FailureCount > 0 {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/runtime"

	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/cache"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/database"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/events"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/providers/classifier"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/providers/places"
	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/search"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/handlers"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/middleware"
	"github.com/zatekoja/sehatsaathi/backend/internal/api/routes"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/repositories"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/openai"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/postgres"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
	"github.com/zatekoja/sehatsaathi/backend/pkg/secrets"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Secrets must land in the environment before config is read.
	vaultResult, vaultErr := secrets.ApplyVaultSecrets(ctx, secrets.LoadVaultConfigFromEnv())

	cfg, err := config.Load()
	if err != nil {
		observability.InitLogger("sehat-saathi", "production", "info")
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment, cfg.LogLevel)
	logger := observability.GetLogger()

	if vaultErr != nil {
		logger.Warn().Err(vaultErr).Str("path", vaultResult.Path).Msg("failed to load secrets from vault")
	} else if vaultResult.Enabled {
		logger.Info().Str("path", vaultResult.Path).Int("loaded", vaultResult.Loaded).Int("skipped", vaultResult.Skipped).
			Msg("secrets loaded from vault")
	}

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			if err := runtime.Start(runtime.WithMinimumReadMemStatsInterval(15 * time.Second)); err != nil {
				logger.Warn().Err(err).Msg("failed to start runtime metrics")
			}
			logger.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Storage
	var (
		conversationRepo repositories.ConversationRepository
		feedbackRepo     repositories.FeedbackRepository
	)
	switch cfg.Storage.Driver {
	case "memory":
		store := database.NewMemoryStore()
		conversationRepo, feedbackRepo = store, store
		logger.Warn().Msg("using in-memory storage; conversations are lost on restart")
	default:
		pgClient, err := postgres.NewClient(ctx, &cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		if err := database.EnsureSchema(ctx, pgClient.DB()); err != nil {
			logger.Fatal().Err(err).Msg("failed to ensure database schema")
		}
		conversationRepo = database.NewConversationAdapter(pgClient.DB(), metrics)
		feedbackRepo = database.NewFeedbackAdapter(pgClient.DB())
	}

	// Redis backs the response cache, rate counters and the event bus.
	// Without it both fall back to in-process implementations.
	var (
		cacheProvider providers.CacheProvider
		eventBus      providers.EventBus
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("redis unavailable, using in-process cache and event bus")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient)
			eventBus = events.NewRedisEventBus(redisClient)
		}
	}
	if cacheProvider == nil {
		cacheProvider = cache.NewMemoryAdapter()
		eventBus = events.NewMemoryEventBus()
	}

	// Conversation search is optional
	var conversationIndex providers.ConversationIndex
	if cfg.Typesense.Enabled {
		typesenseClient, err := typesense.NewClient(ctx, &cfg.Typesense)
		if err != nil {
			logger.Warn().Err(err).Msg("typesense unavailable, conversation search disabled")
		} else {
			index := search.NewConversationIndex(typesenseClient)
			if err := index.InitSchema(ctx); err != nil {
				logger.Warn().Err(err).Msg("failed to init typesense schema")
			}
			conversationIndex = index
		}
	}

	// Oracles
	var languageModel providers.LanguageModelProvider
	var speechProvider providers.SpeechProvider
	if cfg.OpenAI.APIKey == "" {
		logger.Warn().Msg("OPENAI_API_KEY is not set; replies use keyword detection and canned text")
	} else {
		openaiClient, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize OpenAI client")
		} else {
			languageModel = openaiClient
		}
		speechClient, err := openai.NewSpeechClient(&cfg.OpenAI)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize speech client")
		} else {
			speechProvider = speechClient
		}
	}

	var conditionClassifier providers.ClassifierProvider
	switch cfg.Classifier.Provider {
	case "huggingface":
		hf, err := classifier.NewHuggingFaceClassifier(cfg.Classifier)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialize huggingface classifier")
		} else {
			conditionClassifier = hf
		}
	default:
		if languageModel != nil {
			conditionClassifier = openai.NewClassifier(languageModel)
		}
	}
	if conditionClassifier != nil {
		conditionClassifier = classifier.NewBreakerClassifier(cfg.Classifier.Provider, conditionClassifier,
			cfg.Classifier.BreakerFailures, cfg.Classifier.BreakerCooldown)
	}

	var placesProvider providers.PlacesProvider
	switch cfg.Places.Provider {
	case "google":
		placesProvider = places.NewGoogleProvider(cfg.Places, cacheProvider, &http.Client{Timeout: cfg.Oracle.PlacesTimeout})
	default:
		placesProvider = places.NewMockProvider()
	}

	// Services
	languages := services.NewLanguageDetector()
	recorder := services.NewConversationRecorder(conversationRepo, conversationIndex, eventBus)
	guidance := services.NewGuidanceService(languageModel, cfg.Oracle.LanguageModelTimeout, metrics)
	facilities := services.NewFacilitySearchService(placesProvider, cfg.Oracle.PlacesTimeout, metrics)
	triage := services.NewTriageService(services.TriageDeps{
		Detector:       services.NewSymptomDetector(languages, languageModel, cfg.Oracle.LanguageModelTimeout, metrics),
		Conditions:     services.NewConditionService(conditionClassifier, cfg.Oracle.ClassifierTimeout, metrics),
		Guidance:       guidance,
		Facilities:     facilities,
		Recorder:       recorder,
		Events:         eventBus,
		PersistTimeout: cfg.Oracle.PersistTimeout,
	})
	voice := services.NewVoiceService(speechProvider, languages, triage)

	// Handlers
	router := routes.NewRouter(
		handlers.NewChatHandler(triage, recorder, guidance),
		handlers.NewHealthHandler(facilities, services.NewProfileService(conversationRepo), recorder),
		handlers.NewVoiceHandler(voice),
		handlers.NewFeedbackHandler(services.NewFeedbackService(feedbackRepo), cacheProvider),
		routes.Options{
			SSEHandler:      handlers.NewSSEHandler(eventBus),
			CacheMiddleware: middleware.NewCacheMiddleware(cacheProvider, metrics),
			RateLimiter:     middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
			AllowedOrigins:  cfg.Server.AllowedOrigins,
			Metrics:         metrics,
		},
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:        serverAddr,
		Handler:     router.SetupRoutes(),
		ReadTimeout: 15 * time.Second,
		// Voice chat chains transcription, triage and places lookups.
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", serverAddr).Str("storage", cfg.Storage.Driver).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	// Let pending conversation writes finish before closing storage.
	triage.Wait()

	if err := eventBus.Close(); err != nil {
		logger.Error().Err(err).Msg("error closing event bus")
	}

	logger.Info().Msg("server stopped")
}

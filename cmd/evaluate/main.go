package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/adapters/providers/classifier"
	"github.com/zatekoja/sehatsaathi/backend/internal/application/services"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/evaluation"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/clients/openai"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
)

func main() {
	var (
		goldenPath    string
		minTypeAcc    float64
		minLangAcc    float64
		minRecall     float64
		maxErrors     int
		maxAvgLatency time.Duration
	)
	flag.StringVar(&goldenPath, "cases", "config/golden_triage_cases.json", "Path to the golden triage cases")
	flag.Float64Var(&minTypeAcc, "min-type-accuracy", 0.8, "Minimum message type accuracy")
	flag.Float64Var(&minLangAcc, "min-language-accuracy", 0.9, "Minimum language detection accuracy")
	flag.Float64Var(&minRecall, "min-emergency-recall", 1.0, "Minimum emergency recall")
	flag.IntVar(&maxErrors, "max-errors", 0, "Maximum error turns (0 disables)")
	flag.DurationVar(&maxAvgLatency, "max-avg-latency", 0, "Maximum average turn latency (0 disables)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		observability.InitLogger("sehat-saathi-evaluate", "production", "info")
		observability.GetLogger().Fatal().Err(err).Msg("failed to load config")
	}
	observability.InitLogger(cfg.OTEL.ServiceName+"-evaluate", cfg.Environment, cfg.LogLevel)
	logger := observability.GetLogger()

	if _, err := os.Stat(goldenPath); err != nil {
		if _, alt := os.Stat("backend/" + goldenPath); alt == nil {
			goldenPath = "backend/" + goldenPath
		}
	}
	cases, err := evaluation.LoadGoldenCases(goldenPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load golden cases")
	}
	if err := evaluation.ValidateGoldenCases(cases); err != nil {
		logger.Fatal().Err(err).Msg("invalid golden cases")
	}

	// Replies are generated but never stored or indexed.
	var languageModel providers.LanguageModelProvider
	if cfg.OpenAI.APIKey != "" {
		client, err := openai.NewClient(&cfg.OpenAI)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create OpenAI client")
		}
		languageModel = client
	} else {
		logger.Warn().Msg("OPENAI_API_KEY is not set; evaluating the keyword fallback only")
	}

	var conditionClassifier providers.ClassifierProvider
	switch cfg.Classifier.Provider {
	case "huggingface":
		hf, err := classifier.NewHuggingFaceClassifier(cfg.Classifier)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create huggingface classifier")
		}
		conditionClassifier = hf
	default:
		if languageModel != nil {
			conditionClassifier = openai.NewClassifier(languageModel)
		}
	}

	triage := services.NewTriageService(services.TriageDeps{
		Detector:   services.NewSymptomDetector(services.NewLanguageDetector(), languageModel, cfg.Oracle.LanguageModelTimeout, nil),
		Conditions: services.NewConditionService(conditionClassifier, cfg.Oracle.ClassifierTimeout, nil),
		Guidance:   services.NewGuidanceService(languageModel, cfg.Oracle.LanguageModelTimeout, nil),
		Facilities: services.NewFacilitySearchService(nil, cfg.Oracle.PlacesTimeout, nil),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info().Int("cases", len(cases)).Str("path", goldenPath).Msg("starting evaluation")
	summary, err := evaluation.NewRunner(triage).Run(ctx, cases)
	if err != nil {
		logger.Fatal().Err(err).Msg("evaluation failed")
	}

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))

	guardrails := evaluation.NewGuardrails(evaluation.GuardrailConfig{
		MinTypeAccuracy:     minTypeAcc,
		MinLanguageAccuracy: minLangAcc,
		MinEmergencyRecall:  minRecall,
		MaxErrors:           maxErrors,
		MaxAvgLatency:       maxAvgLatency,
	})
	if violations := guardrails.Violations(summary); len(violations) > 0 {
		for _, v := range violations {
			logger.Error().Str("violation", v).Msg("guardrail failed")
		}
		os.Exit(1)
	}
	logger.Info().Msg("all guardrails passed")
}

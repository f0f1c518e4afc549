package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Environment string
	LogLevel    string
	Server      ServerConfig
	Storage     StorageConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Typesense   TypesenseConfig
	Places      PlacesConfig
	OpenAI      OpenAIConfig
	Classifier  ClassifierConfig
	Oracle      OracleConfig
	RateLimit   RateLimitConfig
	OTEL        OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

// StorageConfig selects the persistence backend ("postgres" or "memory").
type StorageConfig struct {
	Driver string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// TypesenseConfig holds Typesense configuration
type TypesenseConfig struct {
	Enabled    bool
	URL        string
	APIKey     string
	Collection string
}

// PlacesConfig holds places provider configuration
type PlacesConfig struct {
	Provider        string
	APIKey          string
	BaseURL         string
	CacheTTLSeconds int
}

// OpenAIConfig holds OpenAI configuration
type OpenAIConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	SpeechModel     string
	SpeechVoice     string
	TranscribeModel string
	RateLimitRPM    int
	RateLimitBurst  int
}

// ClassifierConfig selects the condition classifier backend.
type ClassifierConfig struct {
	Provider   string
	Endpoint   string
	Token      string
	MaxRetries int

	// BreakerFailures consecutive failures open the circuit for BreakerCooldown.
	BreakerFailures int
	BreakerCooldown time.Duration
}

// OracleConfig bounds every blocking call to an external oracle.
type OracleConfig struct {
	LanguageModelTimeout time.Duration
	ClassifierTimeout    time.Duration
	PlacesTimeout        time.Duration
	SpeechTimeout        time.Duration
	PersistTimeout       time.Duration
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "postgres"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "sehat_saathi"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Typesense: TypesenseConfig{
			Enabled:    getEnvAsBool("TYPESENSE_ENABLED", false),
			URL:        getEnv("TYPESENSE_URL", "http://localhost:8108"),
			APIKey:     getEnv("TYPESENSE_API_KEY", "xyz"),
			Collection: getEnv("TYPESENSE_COLLECTION", "conversations"),
		},
		Places: PlacesConfig{
			Provider:        getEnv("PLACES_PROVIDER", "mock"),
			APIKey:          getEnv("GOOGLE_MAPS_API_KEY", ""),
			BaseURL:         getEnv("GOOGLE_MAPS_BASE_URL", "https://maps.googleapis.com/maps/api"),
			CacheTTLSeconds: getEnvAsInt("PLACES_CACHE_TTL_SECONDS", 900),
		},
		OpenAI: OpenAIConfig{
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			BaseURL:         getEnv("OPENAI_BASE_URL", ""),
			Model:           getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			SpeechModel:     getEnv("OPENAI_SPEECH_MODEL", "tts-1"),
			SpeechVoice:     getEnv("OPENAI_SPEECH_VOICE", "alloy"),
			TranscribeModel: getEnv("OPENAI_TRANSCRIBE_MODEL", "whisper-1"),
			RateLimitRPM:    getEnvAsInt("OPENAI_RATE_LIMIT_RPM", 60),
			RateLimitBurst:  getEnvAsInt("OPENAI_RATE_LIMIT_BURST", 5),
		},
		Classifier: ClassifierConfig{
			Provider:   getEnv("CLASSIFIER_PROVIDER", "openai"),
			Endpoint:   getEnv("CLASSIFIER_ENDPOINT", "https://api-inference.huggingface.co/models/Zabihin/Symptom_to_Diagnosis"),
			Token:      getEnv("HUGGINGFACE_TOKEN", ""),
			MaxRetries: getEnvAsInt("CLASSIFIER_MAX_RETRIES", 3),

			BreakerFailures: getEnvAsInt("CLASSIFIER_BREAKER_FAILURES", 5),
			BreakerCooldown: getEnvAsDuration("CLASSIFIER_BREAKER_COOLDOWN", 30*time.Second),
		},
		Oracle: OracleConfig{
			LanguageModelTimeout: getEnvAsDuration("ORACLE_LLM_TIMEOUT", 15*time.Second),
			ClassifierTimeout:    getEnvAsDuration("ORACLE_CLASSIFIER_TIMEOUT", 10*time.Second),
			PlacesTimeout:        getEnvAsDuration("ORACLE_PLACES_TIMEOUT", 8*time.Second),
			SpeechTimeout:        getEnvAsDuration("ORACLE_SPEECH_TIMEOUT", 30*time.Second),
			PersistTimeout:       getEnvAsDuration("PERSIST_TIMEOUT", 5*time.Second),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 2),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "sehat-saathi"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	switch c.Classifier.Provider {
	case "openai", "huggingface":
	default:
		return fmt.Errorf("unsupported CLASSIFIER_PROVIDER %q", c.Classifier.Provider)
	}
	if c.Places.Provider == "google" && c.Places.APIKey == "" {
		return fmt.Errorf("GOOGLE_MAPS_API_KEY is required when PLACES_PROVIDER=google")
	}
	return nil
}

// IsDevelopment reports whether the service runs in a local environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "local"
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds the application's configuration
type Config struct {
	Port              string        `mapstructure:"PORT"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	GroqAPIKey        string        `mapstructure:"GROQ_API_KEY"`
	GroqBaseURL       string        `mapstructure:"GROQ_BASE_URL"`
	GroqModel         string        `mapstructure:"GROQ_MODEL"`
	LLMMaxTokens      int           `mapstructure:"LLM_MAX_TOKENS"`
	LLMTemperature    float64       `mapstructure:"LLM_TEMPERATURE"`
	LLMRequestTimeout time.Duration `mapstructure:"LLM_REQUEST_TIMEOUT"`
	MaxRetries        int           `mapstructure:"MAX_RETRIES"`
	RetryDelaySeconds time.Duration `mapstructure:"RETRY_DELAY_SECONDS"`
	MatchThreshold    float64       `mapstructure:"MATCH_THRESHOLD"`
	CacheTTL          time.Duration `mapstructure:"CACHE_TTL"`
	CacheMaxEntries   int           `mapstructure:"CACHE_MAX_ENTRIES"`
	HistoryMaxTurns   int           `mapstructure:"HISTORY_MAX_TURNS"`
	RateLimitRequests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	AdminPassword     string        `mapstructure:"ADMIN_PASSWORD"`
	ExpoPushURL       string        `mapstructure:"EXPO_PUSH_URL"`
}

func Load(logger *zap.Logger) *Config {
	var config Config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")        // For running locally
	viper.AddConfigPath("../")      // For running from docker subdir
	viper.AddConfigPath("./config") // Common config folder
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GROQ_API_KEY", "")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	viper.SetDefault("GROQ_MODEL", "llama-3.3-70b-versatile")
	viper.SetDefault("LLM_MAX_TOKENS", 300)
	viper.SetDefault("LLM_TEMPERATURE", 0.7)
	viper.SetDefault("LLM_REQUEST_TIMEOUT", 30)
	viper.SetDefault("MAX_RETRIES", 3)
	viper.SetDefault("RETRY_DELAY_SECONDS", 1)
	viper.SetDefault("MATCH_THRESHOLD", 0.6)
	viper.SetDefault("CACHE_TTL", 300)
	viper.SetDefault("CACHE_MAX_ENTRIES", 1024)
	viper.SetDefault("HISTORY_MAX_TURNS", 6)
	viper.SetDefault("RATE_LIMIT_REQUESTS", 5)
	viper.SetDefault("RATE_LIMIT_WINDOW", 20)
	viper.SetDefault("EXPO_PUSH_URL", "https://exp.host/--/api/v2/push/send")

	if err := viper.ReadInConfig(); err != nil {
		if logger != nil {
			logger.Warn("Could not read config file, using defaults/env vars", zap.Error(err))
		}
	}

	if err := viper.Unmarshal(&config); err != nil {
		// Config unmarshaling is critical - fail fast during bootstrap
		if logger != nil {
			logger.Fatal("Unable to decode config into struct", zap.Error(err))
		} else {
			// Fallback if logger not available (should not happen in practice)
			fmt.Fprintf(os.Stderr, "FATAL: Unable to decode config into struct: %v\n", err)
			os.Exit(1)
		}
	}

	// Convert seconds to proper time.Duration
	config.LLMRequestTimeout = config.LLMRequestTimeout * time.Second
	config.RetryDelaySeconds = config.RetryDelaySeconds * time.Second
	config.CacheTTL = config.CacheTTL * time.Second
	config.RateLimitWindow = config.RateLimitWindow * time.Second

	if config.GroqAPIKey == "" && logger != nil {
		logger.Warn("GROQ_API_KEY not set, remote fallback will serve the canned redirect")
	}

	return &config
}

package config

import (
	"os"
	"strconv"
	"time"

	"covidlens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Feed     FeedConfig
	Oracle   OracleConfig
	Server   ServerConfig
	Analysis AnalysisConfig
}

// FeedConfig holds settings for the COVID-19 data feed
type FeedConfig struct {
	BaseURL string
	Timeout time.Duration
}

// OracleConfig holds settings for the insight-oracle endpoint
type OracleConfig struct {
	URL        string
	APIKey     string
	Model      string
	Randomness float64
	Training   string
	Timeout    time.Duration
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// AnalysisConfig holds analysis pipeline settings
type AnalysisConfig struct {
	CacheTTL     time.Duration
	DefaultLimit int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Feed: FeedConfig{
			BaseURL: getEnvOrDefault("COVID_FEED_URL", "https://disease.sh/v3/covid-19"),
			Timeout: getEnvDurationOrDefault("COVID_FEED_TIMEOUT", 30*time.Second),
		},
		Oracle: OracleConfig{
			URL:        getEnvOrDefault("ORACLE_URL", "https://api.worqhat.com/api/ai/content/v4"),
			APIKey:     os.Getenv("ORACLE_API_KEY"),
			Model:      getEnvOrDefault("ORACLE_MODEL", "aicon-v4-nano-160824"),
			Randomness: getEnvFloatOrDefault("ORACLE_RANDOMNESS", 0.5),
			Training:   getEnvOrDefault("ORACLE_TRAINING", "You are a COVID-19 data analyst expert. Provide concise, accurate analysis of pandemic data with actionable insights."),
			Timeout:    getEnvDurationOrDefault("ORACLE_TIMEOUT", 30*time.Second),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Analysis: AnalysisConfig{
			CacheTTL:     getEnvDurationOrDefault("ANALYSIS_CACHE_TTL", 5*time.Minute),
			DefaultLimit: getEnvIntOrDefault("ANALYSIS_DEFAULT_LIMIT", 50),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Feed.BaseURL == "" {
		return errors.ConfigInvalid("feed base URL is required")
	}
	if cfg.Oracle.URL == "" {
		return errors.ConfigInvalid("oracle URL is required")
	}
	if cfg.Analysis.CacheTTL <= 0 {
		return errors.ConfigInvalid("analysis cache TTL must be positive")
	}
	if cfg.Analysis.DefaultLimit <= 0 {
		return errors.ConfigInvalid("analysis default limit must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Feed.BaseURL != "https://disease.sh/v3/covid-19" {
		t.Errorf("feed base URL = %q", cfg.Feed.BaseURL)
	}
	if cfg.Oracle.Model != "aicon-v4-nano-160824" {
		t.Errorf("oracle model = %q", cfg.Oracle.Model)
	}
	if cfg.Oracle.Randomness != 0.5 {
		t.Errorf("randomness = %v", cfg.Oracle.Randomness)
	}
	if cfg.Analysis.CacheTTL != 5*time.Minute {
		t.Errorf("cache TTL = %v", cfg.Analysis.CacheTTL)
	}
	if cfg.Analysis.DefaultLimit != 50 {
		t.Errorf("default limit = %d", cfg.Analysis.DefaultLimit)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("COVID_FEED_URL", "http://localhost:9999/covid")
	t.Setenv("ORACLE_API_KEY", "sk-test")
	t.Setenv("ORACLE_RANDOMNESS", "0.9")
	t.Setenv("ANALYSIS_CACHE_TTL", "90s")
	t.Setenv("ANALYSIS_DEFAULT_LIMIT", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Feed.BaseURL != "http://localhost:9999/covid" {
		t.Errorf("feed base URL = %q", cfg.Feed.BaseURL)
	}
	if cfg.Oracle.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.Oracle.APIKey)
	}
	if cfg.Oracle.Randomness != 0.9 {
		t.Errorf("randomness = %v", cfg.Oracle.Randomness)
	}
	if cfg.Analysis.CacheTTL != 90*time.Second {
		t.Errorf("cache TTL = %v", cfg.Analysis.CacheTTL)
	}
	if cfg.Analysis.DefaultLimit != 25 {
		t.Errorf("default limit = %d", cfg.Analysis.DefaultLimit)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("ANALYSIS_CACHE_TTL", "-1m")
	if _, err := Load(); err == nil {
		t.Error("negative cache TTL should fail validation")
	}
}

func TestEnvParsersIgnoreGarbage(t *testing.T) {
	t.Setenv("ANALYSIS_DEFAULT_LIMIT", "not-a-number")
	t.Setenv("ORACLE_RANDOMNESS", "very random")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Analysis.DefaultLimit != 50 {
		t.Errorf("default limit = %d, want default on parse failure", cfg.Analysis.DefaultLimit)
	}
	if cfg.Oracle.Randomness != 0.5 {
		t.Errorf("randomness = %v, want default on parse failure", cfg.Oracle.Randomness)
	}
}

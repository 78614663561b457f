// ABOUTME: Configuration management with environment variable and .env support
// ABOUTME: All pipeline limits, timeouts and the concurrency cap live here

package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration. Limits and timeouts are
// explicit values threaded into the pipeline at startup, never ambient
// globals.
type Config struct {
	// SourcesFile is the path to the JSON feed-source list
	SourcesFile string

	// OutputFile is the path the generated payload is written to
	OutputFile string

	// MaxItems caps the final output size
	MaxItems int

	// EnrichLimit bounds the enrichment-eligible head
	EnrichLimit int

	// EnrichConcurrency is the in-flight article-fetch ceiling
	EnrichConcurrency int

	// EnrichEnabled toggles the enrichment stage (full vs fast mode)
	EnrichEnabled bool

	// FeedTimeout bounds each feed fetch
	FeedTimeout time.Duration

	// PageTimeout bounds each article-page fetch
	PageTimeout time.Duration

	// ServeAddr is the listen address for serve mode
	ServeAddr string

	// RefreshCron schedules pipeline re-runs in serve mode
	RefreshCron string

	// LogLevel sets the logger verbosity
	LogLevel string
}

// LoadFromEnv loads configuration from environment variables, reading an
// optional .env file first.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		SourcesFile:       getEnvOrDefault("NEWSWIRE_SOURCES", "feeds.json"),
		OutputFile:        getEnvOrDefault("NEWSWIRE_OUTPUT", "newswire.json"),
		MaxItems:          getEnvAsIntOrDefault("NEWSWIRE_MAX_ITEMS", 120),
		EnrichLimit:       getEnvAsIntOrDefault("NEWSWIRE_ENRICH_LIMIT", 40),
		EnrichConcurrency: getEnvAsIntOrDefault("NEWSWIRE_ENRICH_CONCURRENCY", 4),
		EnrichEnabled:     getEnvAsBoolOrDefault("NEWSWIRE_ENRICH", true),
		FeedTimeout:       getEnvAsDurationOrDefault("NEWSWIRE_FEED_TIMEOUT", 15*time.Second),
		PageTimeout:       getEnvAsDurationOrDefault("NEWSWIRE_PAGE_TIMEOUT", 8*time.Second),
		ServeAddr:         getEnvOrDefault("NEWSWIRE_ADDR", ":8000"),
		RefreshCron:       getEnvOrDefault("NEWSWIRE_REFRESH_CRON", "*/30 * * * *"),
		LogLevel:          getEnvOrDefault("NEWSWIRE_LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.SourcesFile == "" {
		return errors.New("sources file cannot be empty")
	}
	if c.OutputFile == "" {
		return errors.New("output file cannot be empty")
	}
	if c.MaxItems < 1 {
		return errors.New("max items must be at least 1")
	}
	if c.EnrichLimit < 1 {
		return errors.New("enrich limit must be at least 1")
	}
	if c.EnrichConcurrency < 1 {
		return errors.New("enrich concurrency must be at least 1")
	}
	if c.FeedTimeout <= 0 || c.PageTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	return nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault returns the environment variable as duration or a default
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

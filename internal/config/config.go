// Package config loads pipeline settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// DefaultDatasetURL is the public SSA national baby names archive.
const DefaultDatasetURL = "https://www.ssa.gov/oact/babynames/names.zip"

// Config holds all settings, populated from environment variables.
type Config struct {
	DatasetURL   string
	ArchiveCache string // on-disk copy of names.zip; empty disables caching
	OutputCSV    string
	ChartDir     string
	HTTPTimeout  time.Duration
	HTTPAddr     string // /healthz + /metrics endpoint; empty disables it
	LogLevel     string
	LogFormat    string

	// Reporting knobs, defaulted to the published analysis parameters.
	TopNames         int
	NeutralMinCount  int
	TrendingFromYear int
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	httpTimeout, err := parseDuration("HTTP_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}

	topNames, err := parseInt("TOP_NAMES", 10)
	if err != nil {
		return nil, err
	}

	neutralMin, err := parseInt("NEUTRAL_MIN_COUNT", 50000)
	if err != nil {
		return nil, err
	}

	trendingFrom, err := parseInt("TRENDING_FROM_YEAR", 2008)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatasetURL:   envOrDefault("DATASET_URL", DefaultDatasetURL),
		ArchiveCache: envOrDefault("ARCHIVE_CACHE", "names.zip"),
		OutputCSV:    envOrDefault("OUTPUT_CSV", "data.csv"),
		ChartDir:     envOrDefault("CHART_DIR", "."),
		HTTPTimeout:  httpTimeout,
		HTTPAddr:     os.Getenv("HTTP_ADDR"),
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),
		LogFormat:    envOrDefault("LOG_FORMAT", "text"),

		TopNames:         topNames,
		NeutralMinCount:  neutralMin,
		TrendingFromYear: trendingFrom,
	}

	if cfg.OutputCSV == "" {
		return nil, errors.New("OUTPUT_CSV is required")
	}
	if cfg.TopNames <= 0 {
		return nil, errors.New("TOP_NAMES must be positive")
	}
	if cfg.NeutralMinCount < 0 {
		return nil, errors.New("NEUTRAL_MIN_COUNT must be non-negative")
	}
	if err := validateURL(cfg.DatasetURL); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envOrDefault distinguishes unset from set-but-empty: exporting
// ARCHIVE_CACHE="" disables caching rather than restoring the default.
func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("DATASET_URL must be an http(s) URL, got %q", raw)
	}
	return nil
}

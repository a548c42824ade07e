// Package config loads service configuration.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml), with ${ENV} expansion
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	dbPath := cfg.Storage.DatabasePath
//	opts := cfg.Reconciliation.MatcherOptions()
package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gl-reconciliation/internal/fixture"
	"gl-reconciliation/internal/matcher"
)

// Config represents the entire application configuration
type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Storage        StorageConfig        `yaml:"storage"`
	Reconciliation ReconciliationConfig `yaml:"reconciliation"`
	Fixture        fixture.Config       `yaml:"fixture"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// StorageConfig holds database configuration
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// ReconciliationConfig holds the default matcher options and report mode
type ReconciliationConfig struct {
	MatchingMode      string  `yaml:"matching_mode"`
	DateToleranceDays int     `yaml:"date_tolerance_days"`
	MinCandidateScore float64 `yaml:"min_candidate_score"`
	Strategy          string  `yaml:"strategy"`
	ReportMode        string  `yaml:"report_mode"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MatcherOptions converts the config section into matcher options.
func (c ReconciliationConfig) MatcherOptions() matcher.Options {
	return matcher.Options{
		MatchingMode:      matcher.MatchingMode(c.MatchingMode),
		DateToleranceDays: matcher.Days(c.DateToleranceDays),
		MinCandidateScore: matcher.Score(c.MinCandidateScore),
		Strategy:          matcher.Strategy(c.Strategy),
	}
}

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${RECON_DB_PATH})
	expanded := os.ExpandEnv(string(data))

	cfg := defaults()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	d := defaults()
	return &Config{
		Server: ServerConfig{
			Port:           getEnvInt("PORT", d.Server.Port),
			AllowedOrigins: getEnvList("ALLOWED_ORIGINS", d.Server.AllowedOrigins),
		},
		Storage: StorageConfig{
			DatabasePath: getEnv("RECON_DB_PATH", d.Storage.DatabasePath),
		},
		Reconciliation: ReconciliationConfig{
			MatchingMode:      getEnv("RECON_MATCHING_MODE", d.Reconciliation.MatchingMode),
			DateToleranceDays: getEnvInt("RECON_DATE_TOLERANCE_DAYS", d.Reconciliation.DateToleranceDays),
			MinCandidateScore: getEnvFloat("RECON_MIN_CANDIDATE_SCORE", d.Reconciliation.MinCandidateScore),
			Strategy:          getEnv("RECON_STRATEGY", d.Reconciliation.Strategy),
			ReportMode:        getEnv("RECON_REPORT_MODE", d.Reconciliation.ReportMode),
		},
		Fixture: fixture.Config{
			Seed:              uint64(getEnvInt("FIXTURE_SEED", int(d.Fixture.Seed))),
			AmountVariance:    getEnvFloat("FIXTURE_AMOUNT_VARIANCE", d.Fixture.AmountVariance),
			MaxDateShiftDays:  getEnvInt("FIXTURE_MAX_DATE_SHIFT_DAYS", d.Fixture.MaxDateShiftDays),
			DropRate:          getEnvFloat("FIXTURE_DROP_RATE", d.Fixture.DropRate),
			ReferenceDropRate: getEnvFloat("FIXTURE_REFERENCE_DROP_RATE", d.Fixture.ReferenceDropRate),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", d.Logging.Level),
			Format: getEnv("LOG_FORMAT", d.Logging.Format),
		},
	}
}

// LoadOrEnv tries to load from config.yaml, falls back to environment variables
func LoadOrEnv() *Config {
	return LoadOrEnvWithPath("config.yaml")
}

// LoadOrEnvWithPath tries to load from the given path, falls back to environment variables
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

func defaults() *Config {
	opts := matcher.DefaultOptions()
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Storage: StorageConfig{
			DatabasePath: "reconciliation.db",
		},
		Reconciliation: ReconciliationConfig{
			MatchingMode:      string(opts.MatchingMode),
			DateToleranceDays: opts.DateTolerance(),
			MinCandidateScore: opts.CandidateFloor(),
			Strategy:          string(opts.Strategy),
			ReportMode:        "detailed",
		},
		Fixture: fixture.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

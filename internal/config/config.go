package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string     `env:"SERVER_ADDR,notEmpty"`
	HTTPCfg    HTTPConfig `envPrefix:"HTTP_"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Report generation configuration
	ReportCfg ReportConfig `envPrefix:"REPORT_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// HTTPConfig holds HTTP server timeouts
type HTTPConfig struct {
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// ReportConfig holds request limits for report generation
type ReportConfig struct {
	MaxBodySize int64 `env:"MAX_BODY_SIZE" envDefault:"10485760"` // 10 MiB
	MaxRecords  int   `env:"MAX_RECORDS" envDefault:"100000"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag
	return cfg, nil
}

// Parse reads the configuration from the process environment and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	switch strings.ToLower(cfg.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("LOG_LEVEL must be one of debug, info, warn, error, got %q", cfg.LogLevel))
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "console":
	default:
		errors = append(errors, fmt.Sprintf("LOG_FORMAT must be json or console, got %q", cfg.LogFormat))
	}

	if cfg.ReportCfg.MaxBodySize < 1 {
		errors = append(errors, fmt.Sprintf("REPORT_MAX_BODY_SIZE must be positive, got %d", cfg.ReportCfg.MaxBodySize))
	}

	if cfg.ReportCfg.MaxRecords < 1 {
		errors = append(errors, fmt.Sprintf("REPORT_MAX_RECORDS must be positive, got %d", cfg.ReportCfg.MaxRecords))
	}

	if cfg.HTTPCfg.ShutdownTimeout < time.Second || cfg.HTTPCfg.ShutdownTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("HTTP_SHUTDOWN_TIMEOUT must be between 1s and 5m, got %s", cfg.HTTPCfg.ShutdownTimeout))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}

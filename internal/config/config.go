package config

import (
	"os"
	"strconv"

	"cryptobench/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Benchmark BenchmarkConfig
	Paths     PathConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL     string
	Enabled bool
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// BenchmarkConfig holds benchmark run settings
type BenchmarkConfig struct {
	Workers int
}

// PathConfig holds file system paths
type PathConfig struct {
	ReportFile string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     os.Getenv("DATABASE_URL"),
			Enabled: os.Getenv("DATABASE_URL") != "",
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Benchmark: BenchmarkConfig{
			Workers: getEnvIntOrDefault("BENCH_WORKERS", 4),
		},
		Paths: PathConfig{
			ReportFile: getEnvOrDefault("REPORT_FILE", "benchmark_report.xlsx"),
		},
	}

	if err := validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validate(config *Config) error {
	if config.Benchmark.Workers < 1 {
		return errors.ConfigInvalid("BENCH_WORKERS must be at least 1")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

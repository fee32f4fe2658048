package config

import (
	"testing"

	"cryptobench/internal/errors"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "PORT", "BENCH_WORKERS", "REPORT_FILE"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Enabled {
		t.Error("database enabled without DATABASE_URL")
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Benchmark.Workers != 4 {
		t.Errorf("workers = %d, want 4", cfg.Benchmark.Workers)
	}
	if cfg.Paths.ReportFile != "benchmark_report.xlsx" {
		t.Errorf("report file = %q, want benchmark_report.xlsx", cfg.Paths.ReportFile)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/bench")
	t.Setenv("PORT", "9090")
	t.Setenv("BENCH_WORKERS", "8")
	t.Setenv("REPORT_FILE", "out.xlsx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Database.Enabled || cfg.Database.URL != "postgres://localhost/bench" {
		t.Errorf("database config = %+v", cfg.Database)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Benchmark.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Benchmark.Workers)
	}
	if cfg.Paths.ReportFile != "out.xlsx" {
		t.Errorf("report file = %q, want out.xlsx", cfg.Paths.ReportFile)
	}
}

func TestLoadRejectsInvalidWorkerCount(t *testing.T) {
	clearEnv(t)
	t.Setenv("BENCH_WORKERS", "0")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for zero workers")
	}
	if errors.CodeOf(err) == "" {
		t.Errorf("expected a coded AppError, got %v", err)
	}
}

func TestLoadIgnoresUnparsableWorkerCount(t *testing.T) {
	clearEnv(t)
	t.Setenv("BENCH_WORKERS", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Benchmark.Workers != 4 {
		t.Errorf("workers = %d, want fallback 4", cfg.Benchmark.Workers)
	}
}

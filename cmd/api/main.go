package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"cryptobench/adapters/postgres"
	"cryptobench/app"
	"cryptobench/domain/taxonomy"
	"cryptobench/internal"
	"cryptobench/internal/config"
	"cryptobench/ui"
)

func main() {
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	reg := taxonomy.DefaultRegistry()

	var repo app.RunRepository
	if cfg.Database.Enabled {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to database: %v", err)
			os.Exit(1)
		}
		defer db.Close()

		pgRepo := postgres.NewRunRepository(db)
		if err := pgRepo.Migrate(context.Background()); err != nil {
			logger.Error("failed to migrate run tables: %v", err)
			os.Exit(1)
		}
		repo = pgRepo
		logger.Info("run storage enabled")
	}

	service := app.NewBenchmarkService(reg, cfg.Benchmark.Workers, logger)
	httpApp := ui.NewApp(reg, service, repo, logger)

	addr := ":" + cfg.Server.Port
	logger.Info("scoring API listening on %s (taxonomy %s, %d algorithms)",
		addr, reg.Hash(), reg.Size())
	if err := http.ListenAndServe(addr, httpApp.Router()); err != nil {
		logger.Error("server stopped: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"cryptobench/adapters/excel"
	"cryptobench/adapters/postgres"
	"cryptobench/app"
	"cryptobench/domain/taxonomy"
	"cryptobench/internal"
	"cryptobench/internal/config"
	"cryptobench/internal/testkit"
	"cryptobench/ui"
)

func main() {
	listAlgorithms := flag.Bool("list-algorithms", false, "print the algorithm vocabulary and exit")
	listKorean := flag.Bool("korean", false, "print the Korean domestic algorithms and exit")
	reportPath := flag.String("out", "", "report workbook path (overrides REPORT_FILE)")
	flag.Parse()

	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	reg := taxonomy.DefaultRegistry()

	if *listAlgorithms {
		printAlgorithms(reg)
		return
	}
	if *listKorean {
		printKorean(reg)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	if *reportPath != "" {
		cfg.Paths.ReportFile = *reportPath
	}

	ctx := context.Background()
	service := app.NewBenchmarkService(reg, cfg.Benchmark.Workers, logger)

	result, err := service.Run(ctx, testkit.DemoCases())
	if err != nil {
		logger.Error("benchmark run failed: %v", err)
		os.Exit(1)
	}

	fmt.Print(ui.RenderRunMarkdown(result))

	writer := excel.NewReportWriter()
	if err := writer.Write(cfg.Paths.ReportFile, result); err != nil {
		logger.Error("failed to write report workbook: %v", err)
		os.Exit(1)
	}
	logger.Info("report written to %s", cfg.Paths.ReportFile)

	if cfg.Database.Enabled {
		if err := saveRun(ctx, cfg.Database.URL, result); err != nil {
			logger.Error("failed to persist run: %v", err)
			os.Exit(1)
		}
		logger.Info("run %s persisted", result.RunID)
	}
}

func saveRun(ctx context.Context, url string, result *app.RunResult) error {
	db, err := postgres.Connect(url)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := postgres.NewRunRepository(db)
	if err := repo.Migrate(ctx); err != nil {
		return err
	}
	return repo.SaveRun(ctx, result)
}

func printAlgorithms(reg *taxonomy.Registry) {
	fmt.Printf("%d algorithms (taxonomy %s)\n\n", reg.Size(), reg.Hash())
	for _, name := range reg.AllCanonicalNames() {
		e := reg.Entry(name)
		cats := make([]string, len(e.Categories))
		for i, c := range e.Categories {
			cats[i] = string(c)
		}
		marker := ""
		if e.Domestic {
			marker = " [domestic]"
		}
		fmt.Printf("%-20s %s%s\n", name, strings.Join(cats, ", "), marker)
	}
}

func printKorean(reg *taxonomy.Registry) {
	for _, name := range reg.AllCanonicalNames() {
		if reg.IsDomestic(name) {
			fmt.Println(name)
		}
	}
}

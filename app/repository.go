package app

import (
	"context"

	"cryptobench/domain/core"
	"cryptobench/domain/report"
)

// RunSummary is one row of a stored-run listing
type RunSummary struct {
	RunID           string  `json:"run_id"`
	TaxonomyHash    string  `json:"taxonomy_hash"`
	TotalCases      int     `json:"total_cases"`
	SuccessfulCases int     `json:"successful_cases"`
	MeanComposite   float64 `json:"mean_composite"`
}

// RunRepository persists benchmark runs. Implemented by the postgres adapter;
// callers that run without a database simply pass nil where a repository is
// optional.
type RunRepository interface {
	Migrate(ctx context.Context) error
	SaveRun(ctx context.Context, result *RunResult) error
	GetRunReport(ctx context.Context, runID core.RunID) (report.AggregateReport, error)
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
}

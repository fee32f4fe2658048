// Package app orchestrates benchmark runs: it feeds cases through the
// scoring engine concurrently and folds the results into a run report.
package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"cryptobench/domain/core"
	"cryptobench/domain/report"
	"cryptobench/domain/score"
	"cryptobench/domain/taxonomy"
	"cryptobench/internal"
)

// Case is one benchmark unit: the curated ground truth for a test artifact
// and the parsed model response the harness collected for it. Success is the
// harness's flag for whether the model call returned at all.
type Case struct {
	ID          core.CaseID       `json:"id"`
	Name        string            `json:"name"`
	GroundTruth score.GroundTruth `json:"ground_truth"`
	Response    score.Response    `json:"response"`
	Success     bool              `json:"success"`
}

// ScoredCase pairs a case with its scoring result
type ScoredCase struct {
	CaseID  core.CaseID     `json:"case_id"`
	Name    string          `json:"name"`
	Success bool            `json:"success"`
	Score   score.CaseScore `json:"score"`
}

// RunResult is the complete outcome of one benchmark run
type RunResult struct {
	RunID        core.RunID             `json:"run_id"`
	TaxonomyHash core.TaxonomyHash      `json:"taxonomy_hash"`
	StartedAt    core.Timestamp         `json:"started_at"`
	FinishedAt   core.Timestamp         `json:"finished_at"`
	Cases        []ScoredCase           `json:"cases"`
	Report       report.AggregateReport `json:"report"`
}

// BenchmarkService scores batches of cases. Scoring calls are pure, so cases
// run concurrently; each worker owns a private accumulator and the service
// merges them once all workers finish.
type BenchmarkService struct {
	reg     *taxonomy.Registry
	engine  *score.Engine
	workers int
	logger  *internal.Logger
}

// NewBenchmarkService creates a benchmark service with the given parallelism
func NewBenchmarkService(reg *taxonomy.Registry, workers int, logger *internal.Logger) *BenchmarkService {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &BenchmarkService{
		reg:     reg,
		engine:  score.NewEngine(reg),
		workers: workers,
		logger:  logger,
	}
}

// Engine exposes the underlying scoring engine for single-case callers
func (s *BenchmarkService) Engine() *score.Engine {
	return s.engine
}

// Run scores every case and returns the run result. A caller-contract
// violation in any ground truth aborts the whole run: a partially scored run
// with a corrupt vocabulary reference is worse than no run.
func (s *BenchmarkService) Run(ctx context.Context, cases []Case) (*RunResult, error) {
	startedAt := core.Now()
	runID := core.NewRunID()
	s.logger.Info("benchmark run %s: %d cases, %d workers", runID, len(cases), s.workers)

	results := make([]ScoredCase, len(cases))
	accumulators := make([]*report.Accumulator, s.workers)

	indexes := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(indexes)
		for i := range cases {
			select {
			case indexes <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < s.workers; w++ {
		acc := report.NewAccumulator()
		accumulators[w] = acc
		g.Go(func() error {
			for i := range indexes {
				c := cases[i]
				if c.ID == "" {
					// Harness-submitted cases may arrive without an ID.
					c.ID = core.NewCaseID()
				}
				cs, err := s.engine.ScoreCase(c.GroundTruth, c.Response)
				if err != nil {
					return fmt.Errorf("case %s (%s): %w", c.ID, c.Name, err)
				}
				results[i] = ScoredCase{
					CaseID:  c.ID,
					Name:    c.Name,
					Success: c.Success,
					Score:   cs,
				}
				acc.Add(cs, c.Success)
				s.logger.Debug("scored case %s: composite=%.3f f1=%.3f", c.ID, cs.Composite, cs.Metrics.F1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := report.NewAccumulator()
	for _, acc := range accumulators {
		merged.Merge(acc)
	}

	result := &RunResult{
		RunID:        runID,
		TaxonomyHash: s.reg.Hash(),
		StartedAt:    startedAt,
		FinishedAt:   core.Now(),
		Cases:        results,
		Report:       merged.Report(),
	}
	s.logger.Info("benchmark run %s complete: success_rate=%.1f%% mean_composite=%.3f",
		runID, result.Report.SuccessRate*100, result.Report.Composite.Mean)
	return result, nil
}

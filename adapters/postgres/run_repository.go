package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"cryptobench/app"
	"cryptobench/domain/core"
	"cryptobench/domain/report"
)

// Connect opens a PostgreSQL connection pool
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}

// RunRepositoryImpl persists benchmark runs and per-case scores
type RunRepositoryImpl struct {
	db *sqlx.DB
}

var _ app.RunRepository = (*RunRepositoryImpl)(nil)

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB) *RunRepositoryImpl {
	return &RunRepositoryImpl{db: db}
}

// Migrate creates the run tables when they do not exist yet
func (r *RunRepositoryImpl) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS benchmark_runs (
			id TEXT PRIMARY KEY,
			taxonomy_hash TEXT NOT NULL,
			started_at TIMESTAMPTZ NOT NULL,
			finished_at TIMESTAMPTZ NOT NULL,
			total_cases INT NOT NULL,
			successful_cases INT NOT NULL,
			report JSONB NOT NULL
		);
		CREATE TABLE IF NOT EXISTS case_scores (
			run_id TEXT NOT NULL REFERENCES benchmark_runs(id) ON DELETE CASCADE,
			case_id TEXT NOT NULL,
			name TEXT NOT NULL,
			success BOOLEAN NOT NULL,
			composite DOUBLE PRECISION NOT NULL,
			precision_rate DOUBLE PRECISION NOT NULL,
			recall_rate DOUBLE PRECISION NOT NULL,
			f1 DOUBLE PRECISION NOT NULL,
			score JSONB NOT NULL,
			PRIMARY KEY (run_id, case_id)
		)`)
	return err
}

// SaveRun stores a complete run result, upserting on run ID
func (r *RunRepositoryImpl) SaveRun(ctx context.Context, result *app.RunResult) error {
	reportJSON, err := json.Marshal(result.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO benchmark_runs (
			id, taxonomy_hash, started_at, finished_at,
			total_cases, successful_cases, report
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			taxonomy_hash = EXCLUDED.taxonomy_hash,
			started_at = EXCLUDED.started_at,
			finished_at = EXCLUDED.finished_at,
			total_cases = EXCLUDED.total_cases,
			successful_cases = EXCLUDED.successful_cases,
			report = EXCLUDED.report`,
		result.RunID.String(), result.TaxonomyHash.String(),
		result.StartedAt.Time(), result.FinishedAt.Time(),
		result.Report.TotalCases, result.Report.SuccessfulCases, reportJSON)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", result.RunID, err)
	}

	for _, sc := range result.Cases {
		scoreJSON, err := json.Marshal(sc.Score)
		if err != nil {
			return fmt.Errorf("failed to marshal case %s: %w", sc.CaseID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO case_scores (
				run_id, case_id, name, success,
				composite, precision_rate, recall_rate, f1, score
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (run_id, case_id) DO UPDATE SET
				name = EXCLUDED.name,
				success = EXCLUDED.success,
				composite = EXCLUDED.composite,
				precision_rate = EXCLUDED.precision_rate,
				recall_rate = EXCLUDED.recall_rate,
				f1 = EXCLUDED.f1,
				score = EXCLUDED.score`,
			result.RunID.String(), sc.CaseID.String(), sc.Name, sc.Success,
			sc.Score.Composite, sc.Score.Metrics.Precision,
			sc.Score.Metrics.Recall, sc.Score.Metrics.F1, scoreJSON)
		if err != nil {
			return fmt.Errorf("failed to save case %s: %w", sc.CaseID, err)
		}
	}

	return tx.Commit()
}

// GetRunReport loads the aggregate report for one run
func (r *RunRepositoryImpl) GetRunReport(ctx context.Context, runID core.RunID) (report.AggregateReport, error) {
	var reportJSON []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT report FROM benchmark_runs WHERE id = $1`, runID.String()).Scan(&reportJSON)
	if err == sql.ErrNoRows {
		return report.AggregateReport{}, core.NewNotFoundError("run", runID.String())
	}
	if err != nil {
		return report.AggregateReport{}, fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	var rep report.AggregateReport
	if err := json.Unmarshal(reportJSON, &rep); err != nil {
		return report.AggregateReport{}, fmt.Errorf("failed to unmarshal report for run %s: %w", runID, err)
	}
	return rep, nil
}

// runSummaryRow mirrors the listing query columns
type runSummaryRow struct {
	RunID           string  `db:"id"`
	TaxonomyHash    string  `db:"taxonomy_hash"`
	TotalCases      int     `db:"total_cases"`
	SuccessfulCases int     `db:"successful_cases"`
	MeanComposite   float64 `db:"mean_composite"`
}

// ListRuns returns recent runs, newest first
func (r *RunRepositoryImpl) ListRuns(ctx context.Context, limit int) ([]app.RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []runSummaryRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT r.id, r.taxonomy_hash, r.total_cases, r.successful_cases,
		       COALESCE((r.report->'composite'->>'mean')::float, 0) AS mean_composite
		FROM benchmark_runs r
		ORDER BY r.started_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	out := make([]app.RunSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, app.RunSummary{
			RunID:           row.RunID,
			TaxonomyHash:    row.TaxonomyHash,
			TotalCases:      row.TotalCases,
			SuccessfulCases: row.SuccessfulCases,
			MeanComposite:   row.MeanComposite,
		})
	}
	return out, nil
}

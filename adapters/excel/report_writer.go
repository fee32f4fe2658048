// Package excel exports benchmark run results as an Excel workbook, one
// summary sheet and one sheet with a row per scored case.
package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"cryptobench/app"
	"cryptobench/domain/report"
)

const (
	summarySheet = "Summary"
	casesSheet   = "Cases"
)

// ReportWriter writes run results to .xlsx files
type ReportWriter struct{}

// NewReportWriter creates a report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Write renders a run result into a workbook at path
func (w *ReportWriter) Write(path string, result *app.RunResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeSummary(f, result); err != nil {
		return err
	}
	if err := w.writeCases(f, result); err != nil {
		return err
	}

	// Drop the default sheet created by excelize
	if idx, err := f.GetSheetIndex(summarySheet); err == nil {
		f.SetActiveSheet(idx)
	}
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report workbook: %w", err)
	}
	return nil
}

func (w *ReportWriter) writeSummary(f *excelize.File, result *app.RunResult) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rep := result.Report
	rows := [][]interface{}{
		{"Run ID", result.RunID.String()},
		{"Taxonomy", result.TaxonomyHash.String()},
		{"Started", result.StartedAt.Time().Format("2006-01-02 15:04:05")},
		{"Finished", result.FinishedAt.Time().Format("2006-01-02 15:04:05")},
		{"Total cases", rep.TotalCases},
		{"Successful cases", rep.SuccessfulCases},
		{"Success rate", rep.SuccessRate},
		{},
		{"Metric", "Mean", "Min", "Max"},
		metricRow("Composite accuracy", rep.Composite),
		metricRow("Precision", rep.Precision),
		metricRow("Recall", rep.Recall),
		metricRow("F1", rep.F1),
		metricRow("False positive rate", rep.FalsePositiveRate),
		metricRow("False negative rate", rep.FalseNegativeRate),
		{},
		{"Composite median", rep.Distribution.Median},
		{"Composite stddev", rep.Distribution.StdDev},
		{"Composite p95", rep.Distribution.Percentile95},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}
	return nil
}

func (w *ReportWriter) writeCases(f *excelize.File, result *app.RunResult) error {
	if _, err := f.NewSheet(casesSheet); err != nil {
		return fmt.Errorf("failed to create cases sheet: %w", err)
	}

	header := []interface{}{
		"Case ID", "Name", "Success", "Composite",
		"Precision", "Recall", "F1", "FPR", "FNR",
		"Detected", "Missed",
	}
	if err := f.SetSheetRow(casesSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write cases header: %w", err)
	}

	for i, sc := range result.Cases {
		m := sc.Score.Metrics
		row := []interface{}{
			sc.CaseID.String(), sc.Name, sc.Success, sc.Score.Composite,
			m.Precision, m.Recall, m.F1, m.FalsePositiveRate, m.FalseNegativeRate,
			strings.Join(sc.Score.Detected, ", "),
			strings.Join(sc.Score.Confusion.FalseNegatives, ", "),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(casesSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write case row %d: %w", i+2, err)
		}
	}
	return nil
}

func metricRow(name string, s report.MetricSummary) []interface{} {
	return []interface{}{name, s.Mean, s.Min, s.Max}
}

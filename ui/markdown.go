package ui

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"cryptobench/app"
	"cryptobench/domain/core"
	"cryptobench/domain/report"
)

// RenderRunMarkdown builds a markdown summary of a benchmark run
func RenderRunMarkdown(result *app.RunResult) string {
	var b strings.Builder
	rep := result.Report

	fmt.Fprintf(&b, "# Benchmark Run %s\n\n", result.RunID)
	fmt.Fprintf(&b, "Taxonomy `%s`\n\n", result.TaxonomyHash)
	fmt.Fprintf(&b, "- Cases: %d (%d successful, %.1f%% success rate)\n",
		rep.TotalCases, rep.SuccessfulCases, rep.SuccessRate*100)
	fmt.Fprintf(&b, "- Started: %s\n", result.StartedAt.Time().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "- Finished: %s\n\n", result.FinishedAt.Time().Format("2006-01-02 15:04:05"))

	writeMetricsSection(&b, rep)

	b.WriteString("## Cases\n\n")
	b.WriteString("| Case | Success | Composite | F1 | Missed |\n")
	b.WriteString("|------|---------|-----------|----|--------|\n")
	for _, sc := range result.Cases {
		missed := strings.Join(sc.Score.Confusion.FalseNegatives, ", ")
		if missed == "" {
			missed = "-"
		}
		fmt.Fprintf(&b, "| %s | %t | %.3f | %.3f | %s |\n",
			sc.Name, sc.Success, sc.Score.Composite, sc.Score.Metrics.F1, missed)
	}

	return b.String()
}

// RenderReportMarkdown builds a markdown summary for a stored run, where only
// the aggregate report survived persistence.
func RenderReportMarkdown(runID core.RunID, rep report.AggregateReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Benchmark Run %s\n\n", runID)
	fmt.Fprintf(&b, "- Cases: %d (%d successful, %.1f%% success rate)\n\n",
		rep.TotalCases, rep.SuccessfulCases, rep.SuccessRate*100)
	writeMetricsSection(&b, rep)
	return b.String()
}

func writeMetricsSection(b *strings.Builder, rep report.AggregateReport) {
	b.WriteString("## Metrics\n\n")
	b.WriteString("| Metric | Mean | Min | Max |\n")
	b.WriteString("|--------|------|-----|-----|\n")
	writeMetricRow(b, "Composite accuracy", rep.Composite)
	writeMetricRow(b, "Precision", rep.Precision)
	writeMetricRow(b, "Recall", rep.Recall)
	writeMetricRow(b, "F1", rep.F1)
	writeMetricRow(b, "False positive rate", rep.FalsePositiveRate)
	writeMetricRow(b, "False negative rate", rep.FalseNegativeRate)

	d := rep.Distribution
	fmt.Fprintf(b, "\nComposite distribution: median %.3f, stddev %.3f, p25 %.3f, p75 %.3f, p95 %.3f\n\n",
		d.Median, d.StdDev, d.Percentile25, d.Percentile75, d.Percentile95)
}

func writeMetricRow(b *strings.Builder, name string, s report.MetricSummary) {
	fmt.Fprintf(b, "| %s | %.3f | %.3f | %.3f |\n", name, s.Mean, s.Min, s.Max)
}

// renderRunHTML renders the markdown run summary to HTML
func renderRunHTML(result *app.RunResult) []byte {
	return mdToHTML(RenderRunMarkdown(result))
}

func renderReportHTML(runID core.RunID, rep report.AggregateReport) []byte {
	return mdToHTML(RenderReportMarkdown(runID, rep))
}

func mdToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: "Benchmark Report",
	})
	return markdown.Render(doc, renderer)
}

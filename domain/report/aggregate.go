// Package report folds per-case scores into run-level summary statistics.
package report

import (
	"fmt"
	"sort"

	montstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"cryptobench/domain/score"
)

// MetricSummary holds the reduction of one metric across a run
type MetricSummary struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// DistributionSummary describes the shape of the composite-score
// distribution across a run.
type DistributionSummary struct {
	Median       float64 `json:"median"`
	StdDev       float64 `json:"std_dev"`
	Percentile25 float64 `json:"p25"`
	Percentile75 float64 `json:"p75"`
	Percentile95 float64 `json:"p95"`
}

// AggregateReport summarizes one benchmark run. It is rebuilt fully on each
// Report call; nothing mutates it afterwards.
type AggregateReport struct {
	TotalCases      int     `json:"total_cases"`
	SuccessfulCases int     `json:"successful_cases"`
	SuccessRate     float64 `json:"success_rate"`

	Composite         MetricSummary `json:"composite"`
	Precision         MetricSummary `json:"precision"`
	Recall            MetricSummary `json:"recall"`
	F1                MetricSummary `json:"f1"`
	FalsePositiveRate MetricSummary `json:"false_positive_rate"`
	FalseNegativeRate MetricSummary `json:"false_negative_rate"`

	Distribution DistributionSummary `json:"distribution"`
}

// metricAgg is a streaming reduction over one metric: running count, sum and
// extrema, so aggregation never needs the whole case set materialized.
type metricAgg struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (a *metricAgg) add(v float64) {
	if a.count == 0 || v < a.min {
		a.min = v
	}
	if a.count == 0 || v > a.max {
		a.max = v
	}
	a.count++
	a.sum += v
}

func (a *metricAgg) merge(b metricAgg) {
	if b.count == 0 {
		return
	}
	if a.count == 0 || b.min < a.min {
		a.min = b.min
	}
	if a.count == 0 || b.max > a.max {
		a.max = b.max
	}
	a.count += b.count
	a.sum += b.sum
}

func (a metricAgg) summary() MetricSummary {
	if a.count == 0 {
		return MetricSummary{}
	}
	return MetricSummary{
		Mean: a.sum / float64(a.count),
		Min:  a.min,
		Max:  a.max,
	}
}

// Accumulator is the only stateful component of the engine. It is intended
// for single-writer use; concurrent producers each keep their own
// Accumulator and Merge them at the end.
type Accumulator struct {
	total      int
	successful int

	composite metricAgg
	precision metricAgg
	recall    metricAgg
	f1        metricAgg
	fpr       metricAgg
	fnr       metricAgg

	// Composite values are retained for the distribution summary; the
	// means/min/max above never read this slice.
	composites []float64
}

// NewAccumulator creates an empty accumulator
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add folds one case into the reduction. Every case counts toward the
// totals; only successful cases (the harness's "did the model call even
// return" flag) contribute metric values, matching how a failed call carries
// no meaningful score.
func (a *Accumulator) Add(cs score.CaseScore, success bool) {
	a.total++
	if !success {
		return
	}
	a.successful++

	a.composite.add(cs.Composite)
	a.precision.add(cs.Metrics.Precision)
	a.recall.add(cs.Metrics.Recall)
	a.f1.add(cs.Metrics.F1)
	a.fpr.add(cs.Metrics.FalsePositiveRate)
	a.fnr.add(cs.Metrics.FalseNegativeRate)
	a.composites = append(a.composites, cs.Composite)
}

// Merge folds another accumulator into this one
func (a *Accumulator) Merge(other *Accumulator) {
	a.total += other.total
	a.successful += other.successful
	a.composite.merge(other.composite)
	a.precision.merge(other.precision)
	a.recall.merge(other.recall)
	a.f1.merge(other.f1)
	a.fpr.merge(other.fpr)
	a.fnr.merge(other.fnr)
	a.composites = append(a.composites, other.composites...)
}

// Report builds the run-level summary from the current state
func (a *Accumulator) Report() AggregateReport {
	rep := AggregateReport{
		TotalCases:        a.total,
		SuccessfulCases:   a.successful,
		Composite:         a.composite.summary(),
		Precision:         a.precision.summary(),
		Recall:            a.recall.summary(),
		F1:                a.f1.summary(),
		FalsePositiveRate: a.fpr.summary(),
		FalseNegativeRate: a.fnr.summary(),
	}
	if a.total > 0 {
		rep.SuccessRate = float64(a.successful) / float64(a.total)
	}
	rep.Distribution = distributionOf(a.composites)
	return rep
}

// Aggregate is the batch entry point: one score and one success flag per
// case, in the same order.
func Aggregate(scores []score.CaseScore, successFlags []bool) (AggregateReport, error) {
	if len(scores) != len(successFlags) {
		return AggregateReport{}, fmt.Errorf(
			"aggregate: %d scores but %d success flags", len(scores), len(successFlags))
	}
	acc := NewAccumulator()
	for i, cs := range scores {
		acc.Add(cs, successFlags[i])
	}
	return acc.Report(), nil
}

// distributionOf summarizes the composite distribution. Values are sorted
// first so the result is independent of case arrival order.
func distributionOf(values []float64) DistributionSummary {
	if len(values) == 0 {
		return DistributionSummary{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	median, _ := montstats.Median(sorted)
	p25, _ := montstats.Percentile(sorted, 25)
	p75, _ := montstats.Percentile(sorted, 75)
	p95, _ := montstats.Percentile(sorted, 95)

	stdDev := 0.0
	if len(sorted) > 1 {
		stdDev = stat.StdDev(sorted, nil)
	}

	return DistributionSummary{
		Median:       median,
		StdDev:       stdDev,
		Percentile25: p25,
		Percentile75: p75,
		Percentile95: p95,
	}
}

package report

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptobench/domain/score"
)

func caseWith(composite, precision, recall float64) score.CaseScore {
	return score.CaseScore{
		Composite: composite,
		Metrics: score.CaseMetrics{
			Precision: precision,
			Recall:    recall,
			F1:        f1Of(precision, recall),
		},
	}
}

func f1Of(p, r float64) float64 {
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

func TestAggregateBasics(t *testing.T) {
	scores := []score.CaseScore{
		caseWith(1.05, 1.0, 1.0),
		caseWith(0.52, 1.0, 0.5),
		caseWith(0.0, 0.0, 0.0),
	}
	flags := []bool{true, true, true}

	rep, err := Aggregate(scores, flags)
	require.NoError(t, err)

	assert.Equal(t, 3, rep.TotalCases)
	assert.Equal(t, 3, rep.SuccessfulCases)
	assert.InDelta(t, 1.0, rep.SuccessRate, 1e-9)
	assert.InDelta(t, (1.05+0.52+0.0)/3, rep.Composite.Mean, 1e-9)
	assert.InDelta(t, 0.0, rep.Composite.Min, 1e-9)
	assert.InDelta(t, 1.05, rep.Composite.Max, 1e-9)
	assert.InDelta(t, 2.0/3.0, rep.Precision.Mean, 1e-9)
	assert.InDelta(t, 0.52, rep.Distribution.Median, 1e-9)
}

func TestAggregateFailedCasesCountTowardTotalsOnly(t *testing.T) {
	scores := []score.CaseScore{
		caseWith(1.0, 1.0, 1.0),
		caseWith(0.0, 0.0, 0.0), // failed call; score must not pollute the means
	}
	flags := []bool{true, false}

	rep, err := Aggregate(scores, flags)
	require.NoError(t, err)

	assert.Equal(t, 2, rep.TotalCases)
	assert.Equal(t, 1, rep.SuccessfulCases)
	assert.InDelta(t, 0.5, rep.SuccessRate, 1e-9)
	assert.InDelta(t, 1.0, rep.Composite.Mean, 1e-9)
	assert.InDelta(t, 1.0, rep.Composite.Min, 1e-9)
}

func TestAggregateRejectsLengthMismatch(t *testing.T) {
	_, err := Aggregate([]score.CaseScore{{}}, []bool{true, false})
	assert.Error(t, err)
}

func TestAggregateEmptyInput(t *testing.T) {
	rep, err := Aggregate(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.TotalCases)
	assert.Equal(t, 0.0, rep.SuccessRate)
	assert.Equal(t, MetricSummary{}, rep.Composite)
	assert.Equal(t, DistributionSummary{}, rep.Distribution)
}

func TestAggregateOrderIndependence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	scores := make([]score.CaseScore, 50)
	flags := make([]bool, 50)
	for i := range scores {
		scores[i] = caseWith(rng.Float64(), rng.Float64(), rng.Float64())
		flags[i] = rng.Intn(10) != 0
	}

	base, err := Aggregate(scores, flags)
	require.NoError(t, err)

	perm := rng.Perm(len(scores))
	shuffledScores := make([]score.CaseScore, len(scores))
	shuffledFlags := make([]bool, len(flags))
	for i, j := range perm {
		shuffledScores[i] = scores[j]
		shuffledFlags[i] = flags[j]
	}

	shuffled, err := Aggregate(shuffledScores, shuffledFlags)
	require.NoError(t, err)

	assert.Equal(t, base.TotalCases, shuffled.TotalCases)
	assert.Equal(t, base.SuccessfulCases, shuffled.SuccessfulCases)
	assert.InDelta(t, base.Composite.Mean, shuffled.Composite.Mean, 1e-9)
	assert.InDelta(t, base.Composite.Min, shuffled.Composite.Min, 1e-9)
	assert.InDelta(t, base.Composite.Max, shuffled.Composite.Max, 1e-9)
	assert.InDelta(t, base.F1.Mean, shuffled.F1.Mean, 1e-9)
	assert.InDelta(t, base.Distribution.Median, shuffled.Distribution.Median, 1e-9)
	assert.InDelta(t, base.Distribution.StdDev, shuffled.Distribution.StdDev, 1e-9)
	assert.InDelta(t, base.Distribution.Percentile95, shuffled.Distribution.Percentile95, 1e-9)
}

func TestAccumulatorMergeMatchesSingleAccumulator(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	scores := make([]score.CaseScore, 40)
	flags := make([]bool, 40)
	for i := range scores {
		scores[i] = caseWith(rng.Float64(), rng.Float64(), rng.Float64())
		flags[i] = i%7 != 0
	}

	single := NewAccumulator()
	for i, cs := range scores {
		single.Add(cs, flags[i])
	}

	// Split across three producers, as concurrent workers would.
	parts := []*Accumulator{NewAccumulator(), NewAccumulator(), NewAccumulator()}
	for i, cs := range scores {
		parts[i%3].Add(cs, flags[i])
	}
	merged := NewAccumulator()
	for _, p := range parts {
		merged.Merge(p)
	}

	a, b := single.Report(), merged.Report()
	assert.Equal(t, a.TotalCases, b.TotalCases)
	assert.Equal(t, a.SuccessfulCases, b.SuccessfulCases)
	assert.InDelta(t, a.Composite.Mean, b.Composite.Mean, 1e-9)
	assert.InDelta(t, a.Composite.Min, b.Composite.Min, 1e-9)
	assert.InDelta(t, a.Composite.Max, b.Composite.Max, 1e-9)
	assert.InDelta(t, a.Precision.Mean, b.Precision.Mean, 1e-9)
	assert.InDelta(t, a.FalseNegativeRate.Mean, b.FalseNegativeRate.Mean, 1e-9)
	assert.InDelta(t, a.Distribution.Median, b.Distribution.Median, 1e-9)
	assert.InDelta(t, a.Distribution.StdDev, b.Distribution.StdDev, 1e-9)
}

func TestSingleCaseDistributionHasZeroStdDev(t *testing.T) {
	rep, err := Aggregate([]score.CaseScore{caseWith(0.8, 1, 1)}, []bool{true})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, rep.Distribution.Median, 1e-9)
	assert.Equal(t, 0.0, rep.Distribution.StdDev)
}

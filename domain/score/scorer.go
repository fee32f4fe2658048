// Package score turns one (ground truth, response) pair into a reproducible
// numeric result: confusion sets over the taxonomy, a weighted composite
// accuracy, and the per-case rates derived from the same sets.
package score

import (
	"fmt"
	"math"
	"sort"

	"cryptobench/domain/core"
	"cryptobench/domain/match"
	"cryptobench/domain/taxonomy"
)

// Sub-score weights. Primary algorithm identification dominates, taxonomy
// understanding next, self-calibration third. The domestic bonus is additive
// on top of the weighted sum, so the composite can reach 1.05.
const (
	weightAlgorithm  = 0.70
	weightCategory   = 0.20
	weightConfidence = 0.10
	weightDomestic   = 0.05
)

// neutralConfidenceScore is credited when a response carries no self-reported
// confidence: partial credit, so a structurally valid but incomplete response
// does not collapse to zero on this term alone.
const neutralConfidenceScore = 0.5

// Engine scores cases against one registry. It holds no per-call state, so a
// single Engine may be used from any number of goroutines.
type Engine struct {
	reg     *taxonomy.Registry
	matcher *match.Matcher
}

// NewEngine creates a scoring engine over a registry
func NewEngine(reg *taxonomy.Registry) *Engine {
	return &Engine{
		reg:     reg,
		matcher: match.NewMatcher(reg),
	}
}

// ScoreCase scores one response against one ground truth record.
//
// A ground truth referencing a canonical name or category the registry does
// not know is a caller-contract violation and returns an error: silently
// ignoring an expected algorithm would corrupt every downstream metric.
// A malformed response is not an error; it scores zero with empty confusion
// sets, since the aggregator still needs a data point for the case.
func (e *Engine) ScoreCase(gt GroundTruth, resp Response) (CaseScore, error) {
	if err := e.validateGroundTruth(gt); err != nil {
		return CaseScore{}, err
	}

	if !resp.WellFormed {
		// Structural validity is a prerequisite: no credit regardless of
		// any text the malformed response happens to contain. The rates
		// are pinned to their worst values rather than the vacuous ones.
		return CaseScore{
			Detected:  []string{},
			Confusion: emptyConfusion(),
			Metrics: CaseMetrics{
				FalsePositiveRate: 1.0,
				FalseNegativeRate: 1.0,
			},
		}, nil
	}

	detected := e.matcher.MatchAll(resp.Mentions())
	confusion := partition(detected, gt.ExpectedAlgorithms)

	algorithmScore := detectionRatio(len(confusion.TruePositives), len(gt.ExpectedAlgorithms), len(detected))
	categoryScore := e.categoryScore(detected, gt.ExpectedCategories)
	confidenceScore := confidencePlausibility(resp.Confidence, gt.ConfidenceRange)
	domesticBonus := domesticRatio(detected, gt.ExpectedDomestic)

	composite := weightAlgorithm*algorithmScore +
		weightCategory*categoryScore +
		weightConfidence*confidenceScore +
		weightDomestic*domesticBonus

	return CaseScore{
		Composite:       composite,
		AlgorithmScore:  algorithmScore,
		CategoryScore:   categoryScore,
		ConfidenceScore: confidenceScore,
		DomesticBonus:   domesticBonus,
		Detected:        detected,
		Confusion:       confusion,
		Metrics:         deriveMetrics(confusion, e.reg.Size(), len(gt.ExpectedAlgorithms)),
	}, nil
}

func (e *Engine) validateGroundTruth(gt GroundTruth) error {
	for _, name := range gt.ExpectedAlgorithms {
		if !e.reg.HasCanonical(name) {
			return fmt.Errorf("%w: expected algorithm %q", core.ErrUnknownAlgorithm, name)
		}
	}
	for _, c := range gt.ExpectedCategories {
		if !e.reg.HasCategory(c) {
			return fmt.Errorf("%w: expected category %q", core.ErrUnknownCategory, c)
		}
	}
	expected := toSet(gt.ExpectedAlgorithms)
	for _, name := range gt.ExpectedDomestic {
		if !expected[name] {
			return fmt.Errorf("%w: domestic algorithm %q not in expected set",
				core.ErrInvalidGroundTruth, name)
		}
	}
	r := gt.ConfidenceRange
	if r.Min < 0 || r.Max > 1 || r.Min > r.Max {
		return fmt.Errorf("%w: confidence range [%v, %v]", core.ErrInvalidGroundTruth, r.Min, r.Max)
	}
	return nil
}

// partition splits detections into TP/FP/FN against the expected set
func partition(detected, expected []string) ConfusionSet {
	expectedSet := toSet(expected)
	detectedSet := toSet(detected)

	cs := emptyConfusion()
	for _, name := range detected {
		if expectedSet[name] {
			cs.TruePositives = append(cs.TruePositives, name)
		} else {
			cs.FalsePositives = append(cs.FalsePositives, name)
		}
	}
	for _, name := range expected {
		if !detectedSet[name] {
			cs.FalseNegatives = append(cs.FalseNegatives, name)
		}
	}
	sort.Strings(cs.TruePositives)
	sort.Strings(cs.FalsePositives)
	sort.Strings(cs.FalseNegatives)
	return cs
}

// detectionRatio implements the shared empty-set convention: with nothing
// expected, reporting nothing is fully correct and reporting anything
// recognized against a clean ground truth scores zero.
func detectionRatio(truePositives, expectedCount, detectedCount int) float64 {
	if expectedCount == 0 {
		if detectedCount == 0 {
			return 1.0
		}
		return 0.0
	}
	return float64(truePositives) / float64(expectedCount)
}

func (e *Engine) categoryScore(detected []string, expected []taxonomy.Category) float64 {
	detectedCats := make(map[taxonomy.Category]bool)
	for _, name := range detected {
		for _, c := range e.reg.CategoriesOf(name) {
			detectedCats[c] = true
		}
	}

	if len(expected) == 0 {
		if len(detectedCats) == 0 {
			return 1.0
		}
		return 0.0
	}

	hit := 0
	for _, c := range expected {
		if detectedCats[c] {
			hit++
		}
	}
	return float64(hit) / float64(len(expected))
}

// confidencePlausibility scores how believable the self-reported confidence
// is: full credit inside the expected interval, linear falloff with the gap
// to the nearest bound outside it, neutral credit when absent.
func confidencePlausibility(confidence *float64, r ConfidenceRange) float64 {
	if confidence == nil {
		return neutralConfidenceScore
	}
	c := *confidence
	if r.Contains(c) {
		return 1.0
	}
	dist := math.Min(math.Abs(c-r.Min), math.Abs(c-r.Max))
	return math.Max(0, 1.0-dist)
}

func domesticRatio(detected, expectedDomestic []string) float64 {
	if len(expectedDomestic) == 0 {
		return 1.0
	}
	detectedSet := toSet(detected)
	hit := 0
	for _, name := range expectedDomestic {
		if detectedSet[name] {
			hit++
		}
	}
	return float64(hit) / float64(len(expectedDomestic))
}

func emptyConfusion() ConfusionSet {
	return ConfusionSet{
		TruePositives:  []string{},
		FalsePositives: []string{},
		FalseNegatives: []string{},
	}
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

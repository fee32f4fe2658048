package score

import (
	"sort"

	"cryptobench/domain/taxonomy"
)

// ConfidenceRange bounds the self-reported confidence a correct response
// should plausibly carry. Both bounds are in [0, 1].
type ConfidenceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether a confidence value falls inside the range
func (r ConfidenceRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// GroundTruth describes which algorithms a test artifact actually contains.
// Provided by the harness per test case; read-only to the engine.
// ExpectedDomestic must be a subset of ExpectedAlgorithms.
type GroundTruth struct {
	ExpectedAlgorithms []string            `json:"expected_algorithms"`
	ExpectedCategories []taxonomy.Category `json:"expected_categories"`
	ExpectedDomestic   []string            `json:"expected_domestic"`
	ConfidenceRange    ConfidenceRange     `json:"confidence_range"`
}

// Response is the already-parsed model answer for one case. WellFormed is
// determined structurally by the caller (did the raw output parse into the
// expected shape); the engine never sees the raw model output.
type Response struct {
	WellFormed bool `json:"well_formed"`

	// Structured mention lists from the benchmark answer schema.
	AlgorithmsDetected          []string `json:"algorithms_detected,omitempty"`
	VulnerableAlgorithms        []string `json:"vulnerable_algorithms,omitempty"`
	QuantumVulnerableAlgorithms []string `json:"quantum_vulnerable_algorithms,omitempty"`

	// Free-text fields, scanned generically by the matcher.
	Summary  string            `json:"summary,omitempty"`
	Findings map[string]string `json:"findings,omitempty"`

	// Self-reported confidence; nil when the model did not report one.
	Confidence *float64 `json:"confidence,omitempty"`
}

// Mentions enumerates every field that can carry algorithm text. The schema
// is walked explicitly rather than reflectively: each known field is fed to
// the matcher, list items one mention each, free-text fields as one mention
// whose words the containment tier picks apart.
func (r Response) Mentions() []string {
	var mentions []string
	mentions = append(mentions, r.AlgorithmsDetected...)
	mentions = append(mentions, r.VulnerableAlgorithms...)
	mentions = append(mentions, r.QuantumVulnerableAlgorithms...)
	if r.Summary != "" {
		mentions = append(mentions, r.Summary)
	}
	for _, key := range sortedFindingKeys(r.Findings) {
		if v := r.Findings[key]; v != "" {
			mentions = append(mentions, v)
		}
	}
	return mentions
}

func sortedFindingKeys(findings map[string]string) []string {
	keys := make([]string, 0, len(findings))
	for k := range findings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ConfusionSet partitions canonical names for one scored case into three
// disjoint sets. Slices are sorted so equal inputs produce identical output.
type ConfusionSet struct {
	TruePositives  []string `json:"true_positives"`
	FalsePositives []string `json:"false_positives"`
	FalseNegatives []string `json:"false_negatives"`
}

// CaseMetrics holds the confusion-derived rates for one case.
// Precision and recall describe the mentions actually made; the false
// positive rate is computed against the full taxonomy instead, so it also
// penalizes noise against the whole vocabulary.
type CaseMetrics struct {
	Precision         float64 `json:"precision"`
	Recall            float64 `json:"recall"`
	F1                float64 `json:"f1"`
	FalsePositiveRate float64 `json:"false_positive_rate"`
	FalseNegativeRate float64 `json:"false_negative_rate"`
}

// CaseScore is the complete scoring result for one case. Immutable once
// produced; scoring the same inputs twice yields bit-identical values.
// Composite is nominally in [0, 1.05]: the domestic bonus is additive on top
// of the weighted sum, an incentive signal rather than a probability.
type CaseScore struct {
	Composite       float64      `json:"composite"`
	AlgorithmScore  float64      `json:"algorithm_score"`
	CategoryScore   float64      `json:"category_score"`
	ConfidenceScore float64      `json:"confidence_score"`
	DomesticBonus   float64      `json:"domestic_bonus"`
	Detected        []string     `json:"detected"`
	Confusion       ConfusionSet `json:"confusion"`
	Metrics         CaseMetrics  `json:"metrics"`
}

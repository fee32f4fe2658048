package score

// deriveMetrics converts one case's confusion sets into rates.
//
// Precision and recall use the vacuous-truth conventions: 1.0 when their
// denominators are zero (nothing detected and nothing wrongly detected is
// vacuously precise; nothing expected and nothing missed is full recall).
//
// The false positive rate is deliberately asymmetric with precision: its
// denominator is every taxonomy entry outside the expected set, i.e. every
// algorithm the response could have spuriously named. That penalizes a
// model's tendency to over-claim against the whole vocabulary, not just
// against the mentions it happened to make.
func deriveMetrics(cs ConfusionSet, taxonomySize, expectedCount int) CaseMetrics {
	tp := len(cs.TruePositives)
	fp := len(cs.FalsePositives)
	fn := len(cs.FalseNegatives)

	precision := 1.0
	if tp+fp > 0 {
		precision = float64(tp) / float64(tp+fp)
	}

	recall := 1.0
	if tp+fn > 0 {
		recall = float64(tp) / float64(tp+fn)
	}

	f1 := 0.0
	if precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}

	fpr := 0.0
	if negatives := taxonomySize - expectedCount; negatives > 0 {
		fpr = float64(fp) / float64(negatives)
	}

	fnr := 0.0
	if tp+fn > 0 {
		fnr = float64(fn) / float64(tp+fn)
	}

	return CaseMetrics{
		Precision:         precision,
		Recall:            recall,
		F1:                f1,
		FalsePositiveRate: fpr,
		FalseNegativeRate: fnr,
	}
}

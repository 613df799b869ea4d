package analysis

const (
	// zSpan rescales z-scores so that roughly ±2 standard deviations cover
	// the full unit range.
	zSpan = 4.0
	// pasteContributionCap bounds the paste term regardless of volume.
	pasteContributionCap = 0.40
	// minSpread substitutes for a zero personal spread.
	minSpread = 1e-6
)

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// normalizeAgainst maps a raw value onto [0,1] against a (mean, sd) pair.
// A zero sd yields the neutral midpoint rather than a division fault.
func normalizeAgainst(v, mean, sd float64) float64 {
	if sd == 0 {
		return 0.5
	}
	z := (v - mean) / sd
	return clamp(z/zSpan+0.5, 0, 1)
}

// invNormalizeAgainst is the inverted normalization, used where a larger raw
// value should pull its sub-score toward the low end.
func invNormalizeAgainst(v, mean, sd float64) float64 {
	return 1 - normalizeAgainst(v, mean, sd)
}

func guardSpread(sd float64) float64 {
	if sd <= 0 {
		return minSpread
	}
	return sd
}

// Score combines extracted metrics, a weight configuration, and an optional
// personal baseline into the two composite axes. It is a pure function and
// never fails for well-typed inputs; degenerate numeric cases are clamped or
// midpointed, not rejected.
func Score(m *ExtractedMetrics, w WeightConfig, table BenchmarkTable, baseline *Baseline) DualAxisScore {
	norm := func(v float64, metric string) float64 {
		b := table.Get(metric)
		return normalizeAgainst(v, b.Mean, b.SD)
	}
	inv := func(v float64, metric string) float64 {
		b := table.Get(metric)
		return invNormalizeAgainst(v, b.Mean, b.SD)
	}

	pathShape := norm(m.ProductProcessRatio, MetricProductProcessRatio)

	// The deletion count has no dedicated benchmark; it reuses the revision
	// one as an approximation.
	revBase := w.Revision[MetricNumRevisions]*inv(m.NumRevisions, MetricNumRevisions) +
		w.Revision[MetricNumDeletions]*inv(m.NumDeletions, MetricNumRevisions) +
		w.Revision[MetricTotalDeletionsWords]*inv(m.TotalDeletionsWords, MetricTotalDeletionsWords) +
		w.Revision[MetricTotalInsertions]*inv(m.TotalInsertions, MetricTotalInsertions) +
		w.Revision[MetricNumInsertions]*inv(m.NumInsertions, MetricNumInsertions)

	linearity := clamp(w.Groups.PathShape*pathShape+w.Groups.RevisionActivity*revBase, 0, 1)

	var burstNorm, rateNorm float64
	if baseline != nil {
		burstNorm = normalizeAgainst(m.RBurstLengthMedian, baseline.BurstLengthMean, guardSpread(baseline.BurstLengthSpread))
		rateNorm = normalizeAgainst(m.CharactersPerMinute, baseline.TypingRateMean, guardSpread(baseline.TypingRateSpread))
	} else {
		burstNorm = norm(m.RBurstLengthMedian, MetricRBurstLengthMedian)
		rateNorm = norm(m.CharactersPerMinute, MetricCharactersPerMinute)
	}
	fluencyBase := w.Fluency[MetricRBurstLengthMedian]*burstNorm +
		w.Fluency[MetricCharactersPerMinute]*rateNorm

	// Pause behavior is always judged against the population, never the
	// personal baseline.
	pauseBase := w.Pause[MetricPauseTimeMean]*inv(m.PauseTimeMean, MetricPauseTimeMean) +
		w.Pause[MetricPauseWithinWordsCount]*inv(m.PauseWithinWordsCount, MetricPauseWithinWordsCount) +
		w.Pause[MetricPauseBeforeWords]*inv(m.PauseBeforeWordsMean, MetricPauseBeforeWords) +
		w.Pause[MetricPauseBeforeSentences]*inv(m.PauseBeforeSentencesMean, MetricPauseBeforeSentences)

	spontaneityBase := w.Groups.Fluency*fluencyBase + w.Groups.PauseBehavior*pauseBase

	pasteScore := clamp(m.PasteEventCount*w.Paste.BaseJump*(1+m.PasteCharCount*w.Paste.CharScale), 0, pasteContributionCap)

	spontaneity := clamp(spontaneityBase+pasteScore*w.Groups.UnconstrainedAction, 0, 1)

	return DualAxisScore{
		LinearityScore:   linearity * 100,
		SpontaneityScore: spontaneity * 100,
		PathShape:        pathShape,
		RevisionBase:     revBase,
		FluencyBase:      fluencyBase,
		PauseBase:        pauseBase,
		PasteScore:       pasteScore,
	}
}

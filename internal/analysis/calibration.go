package analysis

import "github.com/adelevett/MyTypeMeasure/internal/types"

// minCalibrationChars is the final-text length a session must reach before a
// personal baseline can be derived from its opening slice.
const minCalibrationChars = 200

// Calibrate derives a personal baseline from the prefix of an event log
// whose text first reaches the calibration threshold. Before that point it
// returns ErrCalibrationNotReady, which callers should treat as a normal
// "keep typing" state and retry on a later snapshot of the log.
//
// The baseline centers the fluency metrics on the writer's own early-session
// means while keeping the population's relative dispersion: each spread is
// the personal mean scaled by the benchmark's coefficient of variation.
func Calibrate(log *types.KeystrokeLog, table BenchmarkTable) (*Baseline, error) {
	if len(log.FinalText()) < minCalibrationChars {
		return nil, ErrCalibrationNotReady
	}

	sliceEnd := -1
	for i, snapshot := range log.TextContentSnapshot {
		if len(snapshot) >= minCalibrationChars {
			sliceEnd = i + 2 // one event past the threshold snapshot
			break
		}
	}
	if sliceEnd < 0 {
		return nil, ErrCalibrationNotReady
	}

	slice := log.Prefix(sliceEnd)
	m, err := Extract(slice)
	if err != nil {
		return nil, ErrCalibrationNotReady
	}
	if m.CharactersPerMinute == 0 {
		return nil, ErrCalibrationNotReady
	}

	return &Baseline{
		TypingRateMean:     m.CharactersPerMinute,
		TypingRateSpread:   scaledSpread(m.CharactersPerMinute, table.Get(MetricCharactersPerMinute)),
		BurstLengthMean:    m.RBurstLengthMedian,
		BurstLengthSpread:  scaledSpread(m.RBurstLengthMedian, table.Get(MetricRBurstLengthMedian)),
		CalibratedAtEvents: slice.Len(),
	}, nil
}

// scaledSpread holds the benchmark's coefficient of variation constant and
// rescales it by the individual's measured mean.
func scaledSpread(personalMean float64, bench Benchmark) float64 {
	if bench.Mean == 0 {
		return 0
	}
	return personalMean * (bench.SD / bench.Mean)
}

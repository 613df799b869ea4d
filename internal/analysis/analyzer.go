package analysis

import (
	"errors"

	"github.com/adelevett/MyTypeMeasure/internal/types"
)

// Analyzer orchestrates the full pipeline: metric extraction, optional
// baseline calibration, and dual-axis scoring. It holds no per-session
// state; repeated calls with identical inputs yield identical reports.
type Analyzer struct {
	benchmarks *BenchmarkStore
	weights    WeightConfig
}

// NewAnalyzer creates an analyzer backed by benchmark profiles under dataDir.
func NewAnalyzer(dataDir string) *Analyzer {
	return &Analyzer{
		benchmarks: NewBenchmarkStore(dataDir),
		weights:    DefaultWeights(),
	}
}

// Options tune a single analysis call.
type Options struct {
	// Calibrate derives a personal baseline from the log's opening slice and
	// uses it for the fluency sub-metrics. If the session has not reached
	// the calibration threshold yet, scoring proceeds uncalibrated.
	Calibrate bool
	// Weights is an optional partial override of the default weights.
	Weights *types.WeightPatch
	// Profile names a benchmark-table profile; empty uses the defaults.
	Profile string
}

// Analyze runs the pipeline over one event log.
func (a *Analyzer) Analyze(log *types.KeystrokeLog, opts Options) (*Report, error) {
	table, err := a.benchmarks.Load(opts.Profile)
	if err != nil {
		return nil, err
	}

	metrics, err := Extract(log)
	if err != nil {
		return nil, err
	}

	var baseline *Baseline
	if opts.Calibrate {
		baseline, err = Calibrate(log, table)
		if err != nil && !errors.Is(err, ErrCalibrationNotReady) {
			return nil, err
		}
	}

	weights := a.weights.Merge(opts.Weights)
	score := Score(metrics, weights, table, baseline)

	return &Report{
		Metrics:    *metrics,
		Baseline:   baseline,
		Score:      score,
		Calibrated: baseline != nil,
	}, nil
}

// ExtractMetrics exposes the extraction pass alone, for consumers that want
// raw statistics without scoring.
func (a *Analyzer) ExtractMetrics(log *types.KeystrokeLog) (*ExtractedMetrics, error) {
	return Extract(log)
}

// CalibrateBaseline exposes the calibrator alone.
func (a *Analyzer) CalibrateBaseline(log *types.KeystrokeLog, profile string) (*Baseline, error) {
	table, err := a.benchmarks.Load(profile)
	if err != nil {
		return nil, err
	}
	return Calibrate(log, table)
}

// DefaultWeightConfig returns the weights used when a caller supplies none.
func (a *Analyzer) DefaultWeightConfig() WeightConfig {
	return a.weights.Merge(nil)
}

// Benchmarks resolves a benchmark profile (defaults for the empty name).
func (a *Analyzer) Benchmarks(profile string) (BenchmarkTable, error) {
	return a.benchmarks.Load(profile)
}

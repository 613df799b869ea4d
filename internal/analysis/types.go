package analysis

import "errors"

// ErrInsufficientData is returned when an event log has fewer than two
// events, which is not enough to compute a single interval. This is an
// expected steady state while a session is starting, not a fault.
var ErrInsufficientData = errors.New("analysis: not enough events to compute metrics")

// ErrCalibrationNotReady is returned while a session's text has not yet
// reached the calibration length threshold.
var ErrCalibrationNotReady = errors.New("analysis: calibration baseline not ready")

// ExtractedMetrics is the flat record of statistics derived from one pass
// over a keystroke event log. It is pure output, recomputed from scratch on
// every call.
type ExtractedMetrics struct {
	ProductProcessRatio float64 `json:"product_process_ratio"`
	NumRevisions        float64 `json:"num_revisions"`
	NumDeletions        float64 `json:"num_deletions"`
	TotalDeletionsWords float64 `json:"total_deletions_words"`
	TotalInsertions     float64 `json:"total_insertions"`
	NumInsertions       float64 `json:"num_insertions"`
	PasteEventCount     float64 `json:"paste_event_count"`
	PasteCharCount      float64 `json:"paste_char_count"`
	RBurstLengthMedian  float64 `json:"rburst_length_median"`
	CharactersPerMinute float64 `json:"characters_per_minute"`

	PauseTimeMean            float64 `json:"pause_time_mean"`
	PauseWithinWordsCount    float64 `json:"pause_within_words_count"`
	PauseBeforeWordsMean     float64 `json:"pause_before_words"`
	PauseBeforeSentencesMean float64 `json:"pause_before_sentences"`

	DurationSeconds float64 `json:"duration_seconds"`
	FinalLength     int     `json:"final_length"`
	EventCount      int     `json:"event_count"`
}

// Baseline holds personal norms derived from an early slice of a session,
// used in place of population benchmarks for the fluency sub-metrics.
type Baseline struct {
	TypingRateMean     float64 `json:"typing_rate_mean"`
	TypingRateSpread   float64 `json:"typing_rate_spread"`
	BurstLengthMean    float64 `json:"burst_length_mean"`
	BurstLengthSpread  float64 `json:"burst_length_spread"`
	CalibratedAtEvents int     `json:"calibrated_at_events"`
}

// DualAxisScore is the scorer's output: two bounded composite scores on a
// 0..100 scale plus the intermediate components that produced them.
type DualAxisScore struct {
	LinearityScore   float64 `json:"linearityScore"`
	SpontaneityScore float64 `json:"spontaneityScore"`

	PathShape    float64 `json:"pathShape"`
	RevisionBase float64 `json:"revBase"`
	FluencyBase  float64 `json:"fluencyBase"`
	PauseBase    float64 `json:"pbBase"`
	PasteScore   float64 `json:"pasteScore"`
}

// Report bundles the full pipeline output for one event log.
type Report struct {
	Metrics    ExtractedMetrics `json:"metrics"`
	Baseline   *Baseline        `json:"baseline,omitempty"`
	Score      DualAxisScore    `json:"score"`
	Calibrated bool             `json:"calibrated"`
}

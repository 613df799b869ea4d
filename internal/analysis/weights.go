package analysis

import "github.com/adelevett/MyTypeMeasure/internal/types"

// Group weight names accepted in a WeightPatch.
const (
	GroupPathShape           = "pathShape"
	GroupRevisionActivity    = "revisionActivity"
	GroupFluency             = "fluency"
	GroupPauseBehavior       = "pauseBehavior"
	GroupUnconstrainedAction = "unconstrainedAction"
)

// Paste tuning constant names accepted in a WeightPatch.
const (
	PasteBaseJump  = "baseJump"
	PasteCharScale = "charScale"
)

// GroupWeights are the top-level mixing weights for the two composite axes.
type GroupWeights struct {
	PathShape           float64 `json:"pathShape"`
	RevisionActivity    float64 `json:"revisionActivity"`
	Fluency             float64 `json:"fluency"`
	PauseBehavior       float64 `json:"pauseBehavior"`
	UnconstrainedAction float64 `json:"unconstrainedAction"`
}

// PasteTuning holds the paste-contribution constants.
type PasteTuning struct {
	BaseJump  float64 `json:"baseJump"`
	CharScale float64 `json:"charScale"`
}

// WeightConfig is the full, caller-tunable weight configuration. The engine
// never validates that weights sum to any particular total; degenerate
// combinations are clamped downstream at the score level.
type WeightConfig struct {
	Groups   GroupWeights       `json:"groups"`
	Revision map[string]float64 `json:"revision"`
	Fluency  map[string]float64 `json:"fluency"`
	Pause    map[string]float64 `json:"pause"`
	Paste    PasteTuning        `json:"paste"`
}

// DefaultWeights returns the engine's built-in weight configuration.
func DefaultWeights() WeightConfig {
	return WeightConfig{
		Groups: GroupWeights{
			PathShape:           0.60,
			RevisionActivity:    0.40,
			Fluency:             0.50,
			PauseBehavior:       0.50,
			UnconstrainedAction: 1.0,
		},
		Revision: map[string]float64{
			MetricNumRevisions:        0.35,
			MetricNumDeletions:        0.25,
			MetricTotalDeletionsWords: 0.20,
			MetricTotalInsertions:     0.10,
			MetricNumInsertions:       0.10,
		},
		Fluency: map[string]float64{
			MetricRBurstLengthMedian:  0.5,
			MetricCharactersPerMinute: 0.5,
		},
		Pause: map[string]float64{
			MetricPauseTimeMean:         0.40,
			MetricPauseWithinWordsCount: 0.30,
			MetricPauseBeforeWords:      0.20,
			MetricPauseBeforeSentences:  0.10,
		},
		Paste: PasteTuning{
			BaseJump:  0.12,
			CharScale: 0.0002,
		},
	}
}

// Merge returns a copy of the configuration with a caller patch applied on
// top. Sub-metric maps are copied before patching so the receiver is never
// mutated.
func (w WeightConfig) Merge(patch *types.WeightPatch) WeightConfig {
	merged := WeightConfig{
		Groups:   w.Groups,
		Revision: copyWeights(w.Revision),
		Fluency:  copyWeights(w.Fluency),
		Pause:    copyWeights(w.Pause),
		Paste:    w.Paste,
	}
	if patch == nil {
		return merged
	}

	if v, ok := patch.Groups[GroupPathShape]; ok {
		merged.Groups.PathShape = v
	}
	if v, ok := patch.Groups[GroupRevisionActivity]; ok {
		merged.Groups.RevisionActivity = v
	}
	if v, ok := patch.Groups[GroupFluency]; ok {
		merged.Groups.Fluency = v
	}
	if v, ok := patch.Groups[GroupPauseBehavior]; ok {
		merged.Groups.PauseBehavior = v
	}
	if v, ok := patch.Groups[GroupUnconstrainedAction]; ok {
		merged.Groups.UnconstrainedAction = v
	}

	for metric, v := range patch.Revision {
		merged.Revision[metric] = v
	}
	for metric, v := range patch.Fluency {
		merged.Fluency[metric] = v
	}
	for metric, v := range patch.Pause {
		merged.Pause[metric] = v
	}

	if v, ok := patch.Paste[PasteBaseJump]; ok {
		merged.Paste.BaseJump = v
	}
	if v, ok := patch.Paste[PasteCharScale]; ok {
		merged.Paste.CharScale = v
	}
	return merged
}

func copyWeights(m map[string]float64) map[string]float64 {
	cp := make(map[string]float64, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adelevett/MyTypeMeasure/internal/types"
)

func TestDefaultWeights(t *testing.T) {
	w := DefaultWeights()

	assert.InDelta(t, 1.0, w.Groups.PathShape+w.Groups.RevisionActivity, 1e-9)
	assert.InDelta(t, 1.0, w.Groups.Fluency+w.Groups.PauseBehavior, 1e-9)
	assert.Equal(t, 1.0, w.Groups.UnconstrainedAction)

	revSum := 0.0
	for _, v := range w.Revision {
		revSum += v
	}
	assert.InDelta(t, 1.0, revSum, 1e-9)

	pauseSum := 0.0
	for _, v := range w.Pause {
		pauseSum += v
	}
	assert.InDelta(t, 1.0, pauseSum, 1e-9)

	assert.Equal(t, 0.12, w.Paste.BaseJump)
	assert.Equal(t, 0.0002, w.Paste.CharScale)
}

func TestMergeNilPatch(t *testing.T) {
	w := DefaultWeights()
	merged := w.Merge(nil)

	assert.Equal(t, w, merged)

	// The merged maps are copies, not shared references.
	merged.Revision[MetricNumRevisions] = 99
	assert.Equal(t, 0.35, w.Revision[MetricNumRevisions])
}

func TestMergePatch(t *testing.T) {
	w := DefaultWeights()
	patch := &types.WeightPatch{
		Groups: map[string]float64{
			GroupPathShape:        0.8,
			GroupRevisionActivity: 0.2,
		},
		Revision: map[string]float64{MetricNumDeletions: 0.5},
		Pause:    map[string]float64{MetricPauseTimeMean: 0.7},
		Paste:    map[string]float64{PasteBaseJump: 0.05},
	}

	merged := w.Merge(patch)

	assert.Equal(t, 0.8, merged.Groups.PathShape)
	assert.Equal(t, 0.2, merged.Groups.RevisionActivity)
	assert.Equal(t, 0.5, merged.Revision[MetricNumDeletions])
	assert.Equal(t, 0.7, merged.Pause[MetricPauseTimeMean])
	assert.Equal(t, 0.05, merged.Paste.BaseJump)

	// Absent keys keep their defaults.
	assert.Equal(t, 0.50, merged.Groups.Fluency)
	assert.Equal(t, 0.35, merged.Revision[MetricNumRevisions])
	assert.Equal(t, 0.0002, merged.Paste.CharScale)

	// The receiver is untouched.
	assert.Equal(t, 0.60, w.Groups.PathShape)
	assert.Equal(t, 0.25, w.Revision[MetricNumDeletions])
	assert.Equal(t, 0.12, w.Paste.BaseJump)
}

func TestMergeUnknownMetricNameIsCarried(t *testing.T) {
	// Unknown sub-metric names are carried through rather than rejected; the
	// scorer simply never reads them.
	w := DefaultWeights()
	merged := w.Merge(&types.WeightPatch{
		Revision: map[string]float64{"not_a_metric": 1.0},
	})

	assert.Equal(t, 1.0, merged.Revision["not_a_metric"])
}

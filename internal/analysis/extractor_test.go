package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adelevett/MyTypeMeasure/internal/types"
)

// makeTypingLog builds a steady single-character typing session: n Input
// events spaced ikiMs apart, each appending one "a" at the tip.
func makeTypingLog(n int, ikiMs int64) *types.KeystrokeLog {
	log := &types.KeystrokeLog{
		EventID:             make([]int, n),
		EventTimeMs:         make([]int64, n),
		Activity:            make([]string, n),
		Output:              make([]string, n),
		TextChange:          make([]string, n),
		CursorPosition:      make([]int, n),
		TextContentSnapshot: make([]string, n),
	}
	for i := 0; i < n; i++ {
		log.EventID[i] = i + 1
		log.EventTimeMs[i] = int64(i) * ikiMs
		log.Activity[i] = types.ActivityInput
		log.Output[i] = "a"
		log.TextChange[i] = "a"
		log.CursorPosition[i] = i + 1
		log.TextContentSnapshot[i] = strings.Repeat("a", i+1)
	}
	return log
}

func TestExtractInsufficientData(t *testing.T) {
	tests := []struct {
		name string
		log  *types.KeystrokeLog
	}{
		{"empty log", &types.KeystrokeLog{}},
		{"single event", makeTypingLog(1, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Extract(tt.log)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInsufficientData)
		})
	}
}

func TestExtractBurstSegmentation(t *testing.T) {
	// Five events with one long gap: the gap closes the first burst at the
	// previous event (0.3s of production) and the tail flushes as 0.1s.
	log := &types.KeystrokeLog{
		EventTimeMs:         []int64{0, 100, 300, 2500, 2600},
		TextContentSnapshot: []string{"a", "ab", "abc", "abcd", "abcde"},
	}

	m, err := Extract(log)
	require.NoError(t, err)

	// durations {0.3, 0.1} -> median 0.2
	assert.InDelta(t, 0.2, m.RBurstLengthMedian, 1e-9)
	assert.InDelta(t, 2.6, m.DurationSeconds, 1e-9)
}

func TestExtractBurstBreakOnDeletion(t *testing.T) {
	// A backspace closes the running burst even with short intervals.
	log := &types.KeystrokeLog{
		EventTimeMs:         []int64{0, 100, 200, 300, 400},
		Output:              []string{"a", "b", "Backspace", "c", "d"},
		CursorPosition:      []int{1, 2, 1, 2, 3},
		TextContentSnapshot: []string{"a", "ab", "a", "ac", "acd"},
	}

	m, err := Extract(log)
	require.NoError(t, err)

	// First burst runs 0 -> 100 (0.1s), second 200 -> 400 (0.2s).
	assert.InDelta(t, 0.15, m.RBurstLengthMedian, 1e-9)
	assert.Equal(t, 1.0, m.NumDeletions)
	assert.Equal(t, 1.0, m.NumRevisions)
	assert.InDelta(t, 0.2, m.TotalDeletionsWords, 1e-9)
}

func TestExtractPauseClassification(t *testing.T) {
	tests := []struct {
		name                 string
		times                []int64
		outputs              []string
		wantPauseCount       float64
		wantBeforeWordsMean  float64
		wantBeforeSentsMean  float64
		wantWithinWordsCount float64
	}{
		{
			name:                "first interval counts as before-word",
			times:               []int64{0, 300},
			outputs:             []string{"a", "b"},
			wantPauseCount:      1,
			wantBeforeWordsMean: 0.3,
		},
		{
			name:                "pause after space is before-word",
			times:               []int64{0, 100, 400},
			outputs:             []string{"a", "Space", "b"},
			wantPauseCount:      1,
			wantBeforeWordsMean: 0.3,
		},
		{
			name:                "pause after period is before-sentence",
			times:               []int64{0, 100, 600},
			outputs:             []string{"a", ".", "b"},
			wantPauseCount:      1,
			wantBeforeSentsMean: 0.5,
		},
		{
			name:                 "pause between letters is within-word",
			times:                []int64{0, 100, 400},
			outputs:              []string{"a", "b", "c"},
			wantPauseCount:       1,
			wantWithinWordsCount: 1,
		},
		{
			name:           "pause into a boundary key is unclassified",
			times:          []int64{0, 100, 400},
			outputs:        []string{"a", "b", "Space"},
			wantPauseCount: 1,
		},
		{
			name:           "sub-threshold intervals are not pauses",
			times:          []int64{0, 100, 199},
			outputs:        []string{"a", "b", "c"},
			wantPauseCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshots := make([]string, len(tt.times))
			for i := range snapshots {
				snapshots[i] = strings.Repeat("x", i+1)
			}
			log := &types.KeystrokeLog{
				EventTimeMs:         tt.times,
				Output:              tt.outputs,
				TextContentSnapshot: snapshots,
			}

			m, err := Extract(log)
			require.NoError(t, err)

			if tt.wantPauseCount == 0 {
				assert.Equal(t, 0.0, m.PauseTimeMean)
			} else {
				assert.Greater(t, m.PauseTimeMean, 0.0)
			}
			assert.InDelta(t, tt.wantBeforeWordsMean, m.PauseBeforeWordsMean, 1e-9)
			assert.InDelta(t, tt.wantBeforeSentsMean, m.PauseBeforeSentencesMean, 1e-9)
			assert.Equal(t, tt.wantWithinWordsCount, m.PauseWithinWordsCount)
		})
	}
}

func TestExtractPauseThresholdBoundary(t *testing.T) {
	// 200ms exactly is a pause; 199ms is not.
	log := &types.KeystrokeLog{
		EventTimeMs: []int64{0, 200},
		Output:      []string{"a", "b"},
	}

	m, err := Extract(log)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, m.PauseTimeMean, 1e-9)
}

func TestExtractDeletionAccounting(t *testing.T) {
	log := &types.KeystrokeLog{
		EventTimeMs: []int64{0, 100, 200, 300},
		Activity:    []string{types.ActivityInput, types.ActivityRemoveCut, types.ActivityInput, types.ActivityRemoveCut},
		Output:      []string{"a", "Backspace", "b", "Backspace"},
	}

	m, err := Extract(log)
	require.NoError(t, err)

	assert.Equal(t, 2.0, m.NumDeletions)
	assert.Equal(t, 2.0, m.NumRevisions)
	assert.InDelta(t, 0.4, m.TotalDeletionsWords, 1e-9)
}

func TestExtractPasteAccounting(t *testing.T) {
	tests := []struct {
		name       string
		textChange []string
		wantEvents float64
		wantChars  float64
	}{
		{
			name:       "paste with text change",
			textChange: []string{"a", "hello world"},
			wantEvents: 1,
			wantChars:  11,
		},
		{
			name:       "paste with NoChange sentinel",
			textChange: []string{"a", types.NoChange},
			wantEvents: 1,
			wantChars:  0,
		},
		{
			name:       "paste with empty text change",
			textChange: []string{"a", ""},
			wantEvents: 1,
			wantChars:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &types.KeystrokeLog{
				EventTimeMs: []int64{0, 100},
				Activity:    []string{types.ActivityInput, types.ActivityPaste},
				TextChange:  tt.textChange,
			}

			m, err := Extract(log)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEvents, m.PasteEventCount)
			assert.Equal(t, tt.wantChars, m.PasteCharCount)
		})
	}
}

func TestExtractNonLinearInsertion(t *testing.T) {
	// The second input lands with the cursor behind the end of the text, so
	// it counts as a mid-document insertion and a revision.
	log := &types.KeystrokeLog{
		EventTimeMs:         []int64{0, 100, 200},
		Activity:            []string{types.ActivityInput, types.ActivityInput, types.ActivityInput},
		Output:              []string{"a", "b", "x"},
		TextChange:          []string{"ab", "NoChange", "xy"},
		CursorPosition:      []int{2, 1, 3},
		TextContentSnapshot: []string{"ab", "ab", "axyb"},
	}

	m, err := Extract(log)
	require.NoError(t, err)

	assert.Equal(t, 1.0, m.NumInsertions)
	assert.Equal(t, 2.0, m.TotalInsertions)
	assert.Equal(t, 1.0, m.NumRevisions)
}

func TestExtractRatesAndRatio(t *testing.T) {
	// Ten characters produced over fifty seconds with two recorded events.
	log := &types.KeystrokeLog{
		EventTimeMs:  []int64{0, 50000},
		FinalProduct: "abcdefghij",
	}

	m, err := Extract(log)
	require.NoError(t, err)

	assert.InDelta(t, 50.0, m.DurationSeconds, 1e-9)
	assert.InDelta(t, 12.0, m.CharactersPerMinute, 1e-9)
	// No activity column, so every event counts as a keystroke.
	assert.InDelta(t, 5.0, m.ProductProcessRatio, 1e-9)
	assert.Equal(t, 10, m.FinalLength)
	assert.Equal(t, 2, m.EventCount)
}

func TestExtractZeroDurationLog(t *testing.T) {
	log := &types.KeystrokeLog{
		EventTimeMs:  []int64{1000, 1000},
		FinalProduct: "ab",
	}

	m, err := Extract(log)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.CharactersPerMinute)
	assert.Equal(t, 0.0, m.DurationSeconds)
}

func TestExtractProductProcessRatioCountsInputsOnly(t *testing.T) {
	// Two inputs, one deletion: only the inputs count as keystrokes.
	log := &types.KeystrokeLog{
		EventTimeMs:  []int64{0, 100, 200},
		Activity:     []string{types.ActivityInput, types.ActivityInput, types.ActivityRemoveCut},
		FinalProduct: "a",
	}

	m, err := Extract(log)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, m.ProductProcessRatio, 1e-9)
}

func TestExtractDeterministic(t *testing.T) {
	log := makeTypingLog(50, 150)

	first, err := Extract(log)
	require.NoError(t, err)
	second, err := Extract(log)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.InDelta(t, 2.0, mean([]float64{1, 2, 3}), 1e-9)
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"odd count", []float64{3, 1, 2}, 2},
		{"even count", []float64{4, 1, 3, 2}, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, median(tt.input), 1e-9)
		})
	}
}

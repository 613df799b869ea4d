package analysis

import (
	"sort"

	"github.com/adelevett/MyTypeMeasure/internal/types"
)

const (
	// pauseThresholdMs classifies an inter-keystroke interval as a pause.
	pauseThresholdMs = 200.0
	// burstBreakMs is the IKI at which a production burst ends.
	burstBreakMs = 2000.0
	// wordsPerDeletion approximates words removed by one deletion event. A
	// single backspace carries no word count, so this is a fixed heuristic
	// increment kept for compatibility with existing scores.
	wordsPerDeletion = 0.2
)

// Outputs that terminate a sentence.
func isSentenceEnd(output string) bool {
	switch output {
	case ".", "!", "?":
		return true
	}
	return false
}

// Outputs that bound a word. A pause flanked by any of these on either side
// is not a within-word pause.
func isWordBoundary(output string) bool {
	switch output {
	case "Space", ".", ",", "!", "?", "Shift", "Backspace":
		return true
	}
	return false
}

// Extract walks a keystroke event log once and derives the full metric
// record. Logs with fewer than two events cannot yield a single interval and
// return ErrInsufficientData.
func Extract(log *types.KeystrokeLog) (*ExtractedMetrics, error) {
	n := log.Len()
	if n < 2 {
		return nil, ErrInsufficientData
	}

	times := log.EventTimeMs
	duration := float64(times[n-1]-times[0]) / 1000.0
	finalText := log.FinalText()

	hasActivity := len(log.Activity) > 0
	activityAt := func(i int) string {
		// Capture frontends that do not track activity imply plain input.
		if !hasActivity || i >= len(log.Activity) {
			return types.ActivityInput
		}
		return log.Activity[i]
	}
	outputAt := func(i int) string {
		if i >= len(log.Output) {
			return ""
		}
		return log.Output[i]
	}
	textChangeAt := func(i int) string {
		if i >= len(log.TextChange) {
			return ""
		}
		return log.TextChange[i]
	}
	cursorAt := func(i int) int {
		if i >= len(log.CursorPosition) {
			return 0
		}
		return log.CursorPosition[i]
	}
	snapshotLenAt := func(i int) int {
		if i >= len(log.TextContentSnapshot) {
			return 0
		}
		return len(log.TextContentSnapshot[i])
	}

	var (
		pauses               []float64
		beforeWordPauses     []float64
		beforeSentencePauses []float64
		withinWordCount      float64

		revisions     float64
		deletions     float64
		wordDeletions float64

		totalInsertions float64
		numInsertions   float64

		pasteEvents float64
		pasteChars  float64

		burstDurations []float64
	)

	burstStart := times[0]
	for i := 1; i < n; i++ {
		iki := float64(times[i] - times[i-1])
		activity := activityAt(i)
		output := outputAt(i)
		prevOutput := outputAt(i - 1)

		if activity == types.ActivityPaste {
			pasteEvents++
			if tc := textChangeAt(i); tc != "" && tc != types.NoChange {
				pasteChars += float64(len(tc))
			}
		}

		isDeletion := activity == types.ActivityRemoveCut || output == "Backspace"
		if isDeletion {
			deletions++
			revisions++
			wordDeletions += wordsPerDeletion
		}

		// An input landing before the current end of text is a non-linear
		// insertion: the writer jumped back instead of appending at the tip.
		if activity == types.ActivityInput && cursorAt(i-1) < snapshotLenAt(i-1) {
			numInsertions++
			revisions++
			if tc := textChangeAt(i); tc != "" && tc != types.NoChange {
				totalInsertions += float64(len(tc))
			} else {
				totalInsertions++
			}
		}

		if iki >= pauseThresholdMs {
			sec := iki / 1000.0
			pauses = append(pauses, sec)
			switch {
			case prevOutput == "Space" || i == 1:
				beforeWordPauses = append(beforeWordPauses, sec)
			case isSentenceEnd(prevOutput):
				beforeSentencePauses = append(beforeSentencePauses, sec)
			case !isWordBoundary(output) && !isWordBoundary(prevOutput):
				withinWordCount++
			}
		}

		// A burst ends on a deletion or a long gap; production ran through
		// the previous event, so the burst closes there and the boundary
		// event opens the next one.
		if isDeletion || iki >= burstBreakMs {
			if d := float64(times[i-1]-burstStart) / 1000.0; d > 0 {
				burstDurations = append(burstDurations, d)
			}
			burstStart = times[i]
		}
	}

	// Flush the trailing burst.
	if d := float64(times[n-1]-burstStart) / 1000.0; d > 0 {
		burstDurations = append(burstDurations, d)
	}

	totalKeystrokes := 0
	if hasActivity {
		for i := 0; i < n; i++ {
			if activityAt(i) == types.ActivityInput {
				totalKeystrokes++
			}
		}
	} else {
		totalKeystrokes = n
	}
	if totalKeystrokes < 1 {
		totalKeystrokes = 1
	}

	cpm := 0.0
	if duration > 0 {
		cpm = float64(len(finalText)) / duration * 60.0
	}

	return &ExtractedMetrics{
		ProductProcessRatio: float64(len(finalText)) / float64(totalKeystrokes),
		NumRevisions:        revisions,
		NumDeletions:        deletions,
		TotalDeletionsWords: wordDeletions,
		TotalInsertions:     totalInsertions,
		NumInsertions:       numInsertions,
		PasteEventCount:     pasteEvents,
		PasteCharCount:      pasteChars,
		RBurstLengthMedian:  median(burstDurations),
		CharactersPerMinute: cpm,

		PauseTimeMean:            mean(pauses),
		PauseWithinWordsCount:    withinWordCount,
		PauseBeforeWordsMean:     mean(beforeWordPauses),
		PauseBeforeSentencesMean: mean(beforeSentencePauses),

		DurationSeconds: duration,
		FinalLength:     len(finalText),
		EventCount:      n,
	}, nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := 0.0
	for _, v := range xs {
		s += v
	}
	return s / float64(len(xs))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	cp := append([]float64(nil), xs...)
	sort.Float64s(cp)
	mid := len(cp) / 2
	if len(cp)%2 == 1 {
		return cp[mid]
	}
	return 0.5 * (cp[mid-1] + cp[mid])
}

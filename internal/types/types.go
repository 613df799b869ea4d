package types

// Activity tags recorded by capture frontends.
const (
	ActivityInput     = "Input"
	ActivityRemoveCut = "Remove/Cut"
	ActivityPaste     = "Paste"
)

// NoChange is the sentinel a capture frontend records when an event did not
// alter the document text.
const NoChange = "NoChange"

// KeystrokeLog is the raw event log produced by an external capture
// mechanism, represented as parallel fields of equal length (one entry per
// keystroke or paste action). Field-length consistency is the producer's
// responsibility; the engine does not re-validate it.
type KeystrokeLog struct {
	EventID             []int    `json:"eventId"`
	EventTimeMs         []int64  `json:"eventTimeMs"`
	Activity            []string `json:"activity"`
	Output              []string `json:"output"`
	TextChange          []string `json:"textChange"`
	CursorPosition      []int    `json:"cursorPosition"`
	TextContentSnapshot []string `json:"textContentSnapshot"`

	// FinalProduct is the final document text. Empty means "not supplied";
	// the engine falls back to the last snapshot.
	FinalProduct string `json:"finalProduct,omitempty"`
}

// Len returns the number of recorded events.
func (l *KeystrokeLog) Len() int {
	return len(l.EventTimeMs)
}

// FinalText resolves the final document text: the explicit final product if
// present, otherwise the last snapshot, otherwise the empty string.
func (l *KeystrokeLog) FinalText() string {
	if l.FinalProduct != "" {
		return l.FinalProduct
	}
	if n := len(l.TextContentSnapshot); n > 0 {
		return l.TextContentSnapshot[n-1]
	}
	return ""
}

// Prefix returns a shallow copy of the log truncated to the first n events.
// The prefix's final product is recomputed from its own last snapshot.
func (l *KeystrokeLog) Prefix(n int) *KeystrokeLog {
	if n > l.Len() {
		n = l.Len()
	}
	p := &KeystrokeLog{EventTimeMs: l.EventTimeMs[:n]}
	if len(l.EventID) >= n {
		p.EventID = l.EventID[:n]
	}
	if len(l.Activity) >= n {
		p.Activity = l.Activity[:n]
	}
	if len(l.Output) >= n {
		p.Output = l.Output[:n]
	}
	if len(l.TextChange) >= n {
		p.TextChange = l.TextChange[:n]
	}
	if len(l.CursorPosition) >= n {
		p.CursorPosition = l.CursorPosition[:n]
	}
	if len(l.TextContentSnapshot) >= n {
		p.TextContentSnapshot = l.TextContentSnapshot[:n]
		if n > 0 {
			p.FinalProduct = l.TextContentSnapshot[n-1]
		}
	}
	return p
}

// WeightPatch is a partial weight configuration supplied by a caller. Any
// group or sub-metric weight present replaces the engine default; absent
// keys keep their defaults. Values are not validated here (out-of-range
// results are clamped at the score level, not the weight level).
type WeightPatch struct {
	Groups   map[string]float64 `json:"groups,omitempty"`
	Revision map[string]float64 `json:"revision,omitempty"`
	Fluency  map[string]float64 `json:"fluency,omitempty"`
	Pause    map[string]float64 `json:"pause,omitempty"`
	Paste    map[string]float64 `json:"paste,omitempty"`
}

// AnalyzeRequest is the request body for the analyze endpoint.
type AnalyzeRequest struct {
	Log       *KeystrokeLog `json:"log" binding:"required"`
	Calibrate bool          `json:"calibrate,omitempty"`
	Weights   *WeightPatch  `json:"weights,omitempty"`
	Profile   string        `json:"profile,omitempty"`
}

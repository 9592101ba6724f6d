package types

// Entry statuses. Failed entries still receive a 0.0 score in the output;
// the status exists for diagnostics only and does not change the two-column
// output shape.
const (
	StatusScored = "scored"
	StatusFailed = "failed"
)

// ScoreboardEntry pairs a document's original file name with its relevance
// score, rounded to 2 decimals.
type ScoreboardEntry struct {
	FileName       string  `json:"file_name"`
	RelevanceScore float64 `json:"relevance_score"`
	Status         string  `json:"status"`
	Cause          string  `json:"cause,omitempty"`
}

// Scoreboard holds one entry per processed document, in the enumeration
// order of the input folder.
type Scoreboard struct {
	Entries []ScoreboardEntry `json:"entries"`
}

// Failures returns the entries whose processing failed.
func (s *Scoreboard) Failures() []ScoreboardEntry {
	var failed []ScoreboardEntry
	for _, e := range s.Entries {
		if e.Status == StatusFailed {
			failed = append(failed, e)
		}
	}
	return failed
}

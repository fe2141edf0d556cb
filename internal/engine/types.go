// Package engine wires the mastery model, learning-rate personalization,
// roll-up aggregation, and item selection into the two operations the host
// application calls: Recalibrate and SelectItems.
package engine

import "github.com/pygrounds/adaptive/internal/selection"

// Attempt is one graded interaction, immutable once recorded. Produced by
// the surrounding application and consumed here in batches.
type Attempt struct {
	ItemID      int     `json:"item_id,omitempty"`
	Correct     bool    `json:"is_correct"`
	Difficulty  string  `json:"difficulty,omitempty"`
	Elapsed     float64 `json:"time_taken,omitempty"`
	TimeLimit   float64 `json:"time_limit,omitempty"`
	Mistakes    int     `json:"mistakes,omitempty"`
	GameType    string  `json:"game_type,omitempty"`
	SubtopicIDs []int   `json:"subtopic_ids"`

	// Meta carries game-specific extension data the core ignores.
	Meta map[string]string `json:"meta,omitempty"`
}

// Result is the per-subtopic outcome of a recalibration batch. Converged
// and ThresholdReached are advisory flags for session control; they never
// feed back into mastery arithmetic.
type Result struct {
	MasteryPct       float64
	Band             selection.Band
	Converged        bool
	ThresholdReached bool
}

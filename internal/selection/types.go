// Package selection ranks and samples candidate items for a learner: an
// expected-information-gain scorer over the personalized mastery prior,
// softmax sampling without replacement, and a stratified sampler that
// mixes weak, review, and maintenance subtopics under a diversity
// constraint. A Goldilocks band filter is available as an alternative
// policy.
package selection

import "math"

// Item is a read-only candidate tied to exactly one subtopic.
type Item struct {
	ID         int
	SubtopicID int
	GameType   string
	Difficulty string
}

// Band classifies a subtopic by persisted mastery.
type Band int

const (
	BandWeak Band = iota
	BandReview
	BandMaintenance
)

// Band thresholds: weak below 90, review in [90, 99), maintenance at or
// above 99 (the mastery ceiling caps percentages just under 100, so 99 is
// the reachable "capped" boundary).
const (
	reviewMin      = 90.0
	maintenanceMin = 99.0
)

func (b Band) String() string {
	switch b {
	case BandReview:
		return "review"
	case BandMaintenance:
		return "maintenance"
	}
	return "weak"
}

// BandOf classifies a mastery percentage. Subtopics without a persisted
// record are weak.
func BandOf(pct float64, hasRecord bool) Band {
	switch {
	case !hasRecord || pct < reviewMin:
		return BandWeak
	case pct < maintenanceMin:
		return BandReview
	default:
		return BandMaintenance
	}
}

// Prior computes the personalized subtopic prior from persisted mastery
// and the learner's global ability score, clamped to [0, 1].
func Prior(masteryPct, ability float64) float64 {
	k := clamp(masteryPct/100.0, 0, 1)
	return clamp(0.7*k+0.3*ability, 0, 1)
}

// Request carries one selection call. Items are already scoped to the
// learner's current zone and requested game type by the caller.
type Request struct {
	GameType string
	Limit    int
	Exclude  map[int]bool
	Ability  float64

	// Mastery holds persisted mastery percentages keyed by subtopic;
	// subtopics absent from the map have no record.
	Mastery map[int]float64

	Items []Item
}

// Policy selects item IDs for a request. Implementations return the IDs
// in selection order without duplicates; an empty pool yields an empty
// result, never an error.
type Policy interface {
	Select(req Request) []int
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

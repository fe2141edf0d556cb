// Package difficulty maps the heterogeneous difficulty labels and numbers
// attached to items and attempts onto a canonical scale, and derives the
// per-attempt impact weight used by the mastery model.
package difficulty

import "strings"

// Level is the ordinal difficulty bucket of the four canonical tiers.
type Level int

const (
	LevelBeginner Level = iota
	LevelIntermediate
	LevelAdvanced
	LevelMaster
)

// Canonical tier labels.
const (
	TierBeginner     = "beginner"
	TierIntermediate = "intermediate"
	TierAdvanced     = "advanced"
	TierMaster       = "master"
)

// Canonical normalizes a free-form difficulty label to one of the four
// canonical tiers. Unknown or empty input resolves to intermediate.
func Canonical(d string) string {
	d = strings.ToLower(strings.TrimSpace(d))
	switch d {
	case TierBeginner, TierIntermediate, TierAdvanced, TierMaster:
		return d
	}
	switch {
	case strings.HasPrefix(d, "beg"):
		return TierBeginner
	case strings.HasPrefix(d, "inter"):
		return TierIntermediate
	case strings.HasPrefix(d, "adv"):
		return TierAdvanced
	case strings.HasPrefix(d, "mast"):
		return TierMaster
	}
	return TierIntermediate
}

// ParseLevel returns the ordinal bucket for a difficulty label.
func ParseLevel(d string) Level {
	switch Canonical(d) {
	case TierBeginner:
		return LevelBeginner
	case TierAdvanced:
		return LevelAdvanced
	case TierMaster:
		return LevelMaster
	}
	return LevelIntermediate
}

// Centered maps a level onto [-1, 1] with intermediate/advanced straddling
// zero. Used to bias observation parameters by item hardness.
func (l Level) Centered() float64 {
	v := int(l)
	if v < 0 {
		v = 0
	}
	if v > 3 {
		v = 3
	}
	return (float64(v) - 1.5) / 1.5
}

func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return TierBeginner
	case LevelAdvanced:
		return TierAdvanced
	case LevelMaster:
		return TierMaster
	}
	return TierIntermediate
}

// Score maps a tier label onto [0, 1].
func Score(d string) float64 {
	switch Canonical(d) {
	case TierBeginner:
		return 0.0
	case TierAdvanced:
		return 0.67
	case TierMaster:
		return 1.0
	}
	return 0.33
}

// ScoreNumeric normalizes a numeric difficulty onto [0, 1]. Values already
// in [0, 1] pass through; 1-4 tier numbers map linearly; anything else
// resolves to 0.5.
func ScoreNumeric(v float64) float64 {
	if v >= 0.0 && v <= 1.0 {
		return v
	}
	if v >= 1.0 && v <= 4.0 {
		return (v - 1.0) / 3.0
	}
	return 0.5
}

// LowTiers and HighTiers partition the canonical tiers for the sampler's
// per-bucket difficulty gating.
var (
	LowTiers  = []string{TierBeginner, TierIntermediate}
	HighTiers = []string{TierAdvanced, TierMaster}
	AllTiers  = []string{TierBeginner, TierIntermediate, TierAdvanced, TierMaster}
)

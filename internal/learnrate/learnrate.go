// Package learnrate personalizes the mastery model's transition
// probability per learner and subtopic: a bounded multiplier derived from
// practice balance, combined geometrically with a persisted long-run scale
// maintained as an exponential moving average across sessions.
package learnrate

import "math"

const (
	// ScaleMin and ScaleMax bound the learning-rate multiplier.
	ScaleMin = 0.5
	ScaleMax = 1.5

	// EMAAlpha is the weight of the newest session scale when persisting.
	EMAAlpha = 0.2

	// Threshold is the mastery probability above which the advisory
	// threshold-reached flag is set.
	Threshold = 0.95
)

// PracticeMultiplier maps impact-weighted win/fail counters onto a bounded
// multiplier: consistently correct learners get a faster effective
// transition probability, struggling learners a slower one.
func PracticeMultiplier(wins, fails float64) float64 {
	n := math.Max(1.0, wins+fails)
	perf := (wins - fails) / n
	return clampScale(1.0 + 0.5*perf)
}

// EffectiveTransition combines the persisted long-run scale with the
// within-batch multiplier by geometric mean and applies it to the base
// transition probability.
func EffectiveTransition(pT, persisted, batch float64) float64 {
	combined := math.Sqrt(clampScale(persisted) * clampScale(batch))
	return math.Max(1e-4, math.Min(0.95, pT*combined))
}

// SessionScale is the value persisted after a batch: the geometric mean of
// the previously persisted scale and the batch's practice multiplier.
func SessionScale(persisted, batch float64) float64 {
	return clampScale(math.Sqrt(clampScale(persisted) * clampScale(batch)))
}

// EMA blends an old value toward a new one with the newer value weighted
// by alpha.
func EMA(old, next, alpha float64) float64 {
	return (1.0-alpha)*old + alpha*next
}

// NextScale computes the scale to persist. The first-ever write for a
// (learner, subtopic) sets the scale directly; later writes blend by EMA.
func NextScale(persisted float64, count int, session float64) float64 {
	session = clampScale(session)
	if count == 0 {
		return session
	}
	return EMA(persisted, session, EMAAlpha)
}

func clampScale(x float64) float64 {
	return math.Max(ScaleMin, math.Min(ScaleMax, x))
}

package learnrate

import "math"

const (
	// ConvergenceWindow is the number of trailing step deltas inspected.
	ConvergenceWindow = 3

	// ConvergenceEps is the per-step delta below which mastery is
	// considered settled.
	ConvergenceEps = 0.01
)

// Tracker watches the trailing step-to-step mastery deltas for one
// subtopic within a batch. Its flags are advisory outputs for session
// control and never alter mastery arithmetic.
type Tracker struct {
	deltas []float64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe records one absolute step delta, keeping only the trailing
// window.
func (t *Tracker) Observe(delta float64) {
	t.deltas = append(t.deltas, math.Abs(delta))
	if len(t.deltas) > ConvergenceWindow {
		t.deltas = t.deltas[len(t.deltas)-ConvergenceWindow:]
	}
}

// Converged reports whether a full window of deltas exists and all are
// within epsilon.
func (t *Tracker) Converged() bool {
	if len(t.deltas) < ConvergenceWindow {
		return false
	}
	for _, d := range t.deltas {
		if d > ConvergenceEps {
			return false
		}
	}
	return true
}

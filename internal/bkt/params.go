// Package bkt implements the two-state sequential mastery model: a
// Bayesian knowledge-tracing updater with difficulty-adjusted observation
// parameters and fractional impact application, plus the PFA-lite logistic
// model used to seed cold-start priors.
package bkt

// Params holds the free parameters of the sequential model. Zero values
// are not meaningful; start from DefaultParams.
type Params struct {
	PL0        float64 // initial prior, overridden by seeding
	PT         float64 // transition probability after a correct observation
	PTWrong    float64 // transition probability after an incorrect observation
	PS         float64 // slip
	PG         float64 // guess
	DecayWrong float64 // post-transition decay applied after an incorrect observation
	MinFloor   float64
	MaxCeiling float64
}

// DefaultParams returns the global baseline parameters.
func DefaultParams() Params {
	return Params{
		PL0:        0.20,
		PT:         0.10,
		PTWrong:    0.02,
		PS:         0.10,
		PG:         0.20,
		DecayWrong: 0.90,
		MinFloor:   0.001,
		MaxCeiling: 0.999,
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

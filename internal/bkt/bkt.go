package bkt

import (
	"math"

	"github.com/pygrounds/adaptive/internal/difficulty"
)

// UpdateOnce applies a single Bayesian update step to the mastery
// probability and clamps the result into [MinFloor, MaxCeiling].
func UpdateOnce(pKnow float64, correct bool, p Params) float64 {
	var num, den float64
	if correct {
		num = pKnow * (1.0 - p.PS)
		den = num + (1.0-pKnow)*p.PG
	} else {
		num = pKnow * p.PS
		den = num + (1.0-pKnow)*(1.0-p.PG)
	}
	post := 0.0
	if den != 0 {
		post = num / den
	}

	pT := p.PT
	if !correct {
		pT = p.PTWrong
	}
	next := post + (1.0-post)*pT
	if !correct {
		next *= p.DecayWrong
	}
	return clamp(next, p.MinFloor, p.MaxCeiling)
}

// UpdateFractional applies floor(impact) whole update steps, then one
// softened step scaled by the fractional remainder. Transition probability
// scales by the fraction and decay interpolates toward identity, so
// non-integer impact weights land between the neighbouring whole-step
// outcomes without discontinuities.
func UpdateFractional(pKnow float64, correct bool, p Params, impact float64) float64 {
	rounds := int(math.Max(0, math.Floor(impact)))
	for i := 0; i < rounds; i++ {
		pKnow = UpdateOnce(pKnow, correct, p)
	}

	frac := math.Max(0.0, impact-float64(rounds))
	if frac > 1e-6 {
		soft := p
		soft.PT = clamp(p.PT*frac, 1e-6, 0.95)
		soft.PTWrong = clamp(p.PTWrong*frac, 1e-6, 0.95)
		soft.DecayWrong = 1.0 - (1.0-p.DecayWrong)*frac
		pKnow = UpdateOnce(pKnow, correct, soft)
	}
	return pKnow
}

// ObserveParams returns slip, guess, and decay adjusted for item hardness.
// Harder items raise slip and lower guess; a wrong answer on an easy item
// loses more knowledge (smaller decay) than one on a hard item.
func ObserveParams(base Params, level difficulty.Level) (pS, pG, decay float64) {
	c := level.Centered()
	const sK, gK, dK = 0.04, 0.04, 0.07

	pS = clamp(base.PS+sK*c, 0.06, 0.14)
	pG = clamp(base.PG-gK*c, 0.12, 0.28)

	const targetEasy, targetHard = 0.80, 0.98
	target := targetEasy
	if c > 0 {
		target = targetHard
	}
	decay = base.DecayWrong + dK*(target-base.DecayWrong)
	decay += 0.05 * c
	decay = clamp(decay, 0.80, 0.98)
	return pS, pG, decay
}

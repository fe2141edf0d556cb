package bkt

import (
	"math"

	"github.com/pygrounds/adaptive/internal/difficulty"
)

// PFACoeffs are the coefficients of the PFA-lite logistic model. The model
// only seeds the initial mastery prior; it is never blended into the final
// mastery value.
type PFACoeffs struct {
	Beta0    float64
	BetaWin  float64
	BetaFail float64
	BiasBeg  float64
	BiasInt  float64
	BiasAdv  float64
	BiasMas  float64
}

// DefaultPFACoeffs returns the fitted coefficients. Beginner items carry
// the most favorable tier bias, master the least.
func DefaultPFACoeffs() PFACoeffs {
	return PFACoeffs{
		Beta0:    -1.00,
		BetaWin:  0.35,
		BetaFail: -0.60,
		BiasBeg:  0.30,
		BiasInt:  0.00,
		BiasAdv:  -0.25,
		BiasMas:  -0.45,
	}
}

// Prob evaluates the logistic model over impact-weighted win/fail counters
// at the given difficulty tier.
func Prob(wins, fails float64, diff string, c PFACoeffs) float64 {
	var bias float64
	switch difficulty.ParseLevel(diff) {
	case difficulty.LevelBeginner:
		bias = c.BiasBeg
	case difficulty.LevelIntermediate:
		bias = c.BiasInt
	case difficulty.LevelAdvanced:
		bias = c.BiasAdv
	case difficulty.LevelMaster:
		bias = c.BiasMas
	}
	z := c.Beta0 + c.BetaWin*wins + c.BetaFail*fails + bias
	return 1.0 / (1.0 + math.Exp(-z))
}

// SeedPrior chooses the initial mastery probability for a batch:
// a persisted mastery percentage wins, then the PFA probability if the
// batch has any practice signal, then the base prior.
func SeedPrior(existingPct *float64, wins, fails float64, diff string, c PFACoeffs, basePrior float64) float64 {
	if existingPct != nil {
		return clamp(*existingPct/100.0, 0.0, 1.0)
	}
	if wins+fails > 0.0 {
		return Prob(wins, fails, diff, c)
	}
	return basePrior
}

package bkt

import (
	"math"
	"testing"
)

func TestProb_BalancedIntermediate(t *testing.T) {
	c := DefaultPFACoeffs()
	// z = -1.0 at zero signal -> sigmoid ~0.2689.
	got := Prob(0, 0, "intermediate", c)
	if math.Abs(got-0.2689) > 0.001 {
		t.Errorf("Prob(0,0) = %f, want ~0.2689", got)
	}
}

func TestProb_WinsRaiseFailsLower(t *testing.T) {
	c := DefaultPFACoeffs()
	base := Prob(2, 2, "intermediate", c)
	if got := Prob(3, 2, "intermediate", c); got <= base {
		t.Errorf("extra win lowered probability: %f <= %f", got, base)
	}
	if got := Prob(2, 3, "intermediate", c); got >= base {
		t.Errorf("extra fail raised probability: %f >= %f", got, base)
	}
}

func TestProb_TierBiasOrdering(t *testing.T) {
	c := DefaultPFACoeffs()
	beg := Prob(1, 1, "beginner", c)
	inter := Prob(1, 1, "intermediate", c)
	adv := Prob(1, 1, "advanced", c)
	mas := Prob(1, 1, "master", c)
	if !(beg > inter && inter > adv && adv > mas) {
		t.Errorf("tier bias ordering broken: beg %f, inter %f, adv %f, mas %f",
			beg, inter, adv, mas)
	}
}

func TestSeedPrior_PersistedWins(t *testing.T) {
	c := DefaultPFACoeffs()
	pct := 62.0
	got := SeedPrior(&pct, 5, 1, "beginner", c, 0.20)
	if math.Abs(got-0.62) > 1e-9 {
		t.Errorf("persisted mastery ignored: got %f, want 0.62", got)
	}
}

func TestSeedPrior_PersistedClamped(t *testing.T) {
	c := DefaultPFACoeffs()
	pct := 140.0
	if got := SeedPrior(&pct, 0, 0, "intermediate", c, 0.20); got != 1.0 {
		t.Errorf("over-100 persisted pct = %f, want clamp 1.0", got)
	}
}

func TestSeedPrior_PFAWhenPracticeSignal(t *testing.T) {
	c := DefaultPFACoeffs()
	got := SeedPrior(nil, 2, 1, "intermediate", c, 0.20)
	want := Prob(2, 1, "intermediate", c)
	if got != want {
		t.Errorf("SeedPrior = %f, want PFA value %f", got, want)
	}
}

func TestSeedPrior_BasePriorColdStart(t *testing.T) {
	c := DefaultPFACoeffs()
	if got := SeedPrior(nil, 0, 0, "intermediate", c, 0.20); got != 0.20 {
		t.Errorf("cold start = %f, want base prior 0.20", got)
	}
}

package bkt

import (
	"math"
	"testing"

	"github.com/pygrounds/adaptive/internal/difficulty"
)

func TestUpdateOnce_CorrectRaises(t *testing.T) {
	p := DefaultParams()
	next := UpdateOnce(0.3, true, p)
	if next <= 0.3 {
		t.Errorf("correct observation lowered mastery: 0.3 -> %f", next)
	}
}

func TestUpdateOnce_IncorrectLowers(t *testing.T) {
	p := DefaultParams()
	next := UpdateOnce(0.7, false, p)
	if next >= 0.7 {
		t.Errorf("incorrect observation raised mastery: 0.7 -> %f", next)
	}
}

func TestUpdateOnce_Bounds(t *testing.T) {
	p := DefaultParams()
	pk := 0.5
	for i := 0; i < 200; i++ {
		pk = UpdateOnce(pk, true, p)
		if pk < p.MinFloor || pk > p.MaxCeiling {
			t.Fatalf("mastery escaped bounds after %d correct steps: %f", i+1, pk)
		}
	}
	pk = 0.5
	for i := 0; i < 200; i++ {
		pk = UpdateOnce(pk, false, p)
		if pk < p.MinFloor || pk > p.MaxCeiling {
			t.Fatalf("mastery escaped bounds after %d wrong steps: %f", i+1, pk)
		}
	}
}

func TestUpdateOnce_MonotoneInPrior(t *testing.T) {
	p := DefaultParams()
	lo := UpdateOnce(0.2, true, p)
	hi := UpdateOnce(0.6, true, p)
	if lo >= hi {
		t.Errorf("higher prior produced lower posterior: %f >= %f", lo, hi)
	}
}

func TestUpdateFractional_WholeImpactMatchesRepeatedSteps(t *testing.T) {
	p := DefaultParams()
	direct := UpdateOnce(UpdateOnce(0.3, true, p), true, p)
	frac := UpdateFractional(0.3, true, p, 2.0)
	if math.Abs(direct-frac) > 1e-12 {
		t.Errorf("impact 2.0 = %f, two whole steps = %f", frac, direct)
	}
}

func TestUpdateFractional_BetweenNeighbours(t *testing.T) {
	p := DefaultParams()
	one := UpdateFractional(0.3, true, p, 1.0)
	two := UpdateFractional(0.3, true, p, 2.0)
	mid := UpdateFractional(0.3, true, p, 1.5)
	if mid <= one || mid >= two {
		t.Errorf("impact 1.5 = %f, want inside (%f, %f)", mid, one, two)
	}
}

func TestUpdateFractional_ZeroImpactNoop(t *testing.T) {
	p := DefaultParams()
	if got := UpdateFractional(0.3, true, p, 0.0); got != 0.3 {
		t.Errorf("impact 0 moved mastery: 0.3 -> %f", got)
	}
}

func TestUpdateFractional_FractionalWrongStillLowers(t *testing.T) {
	p := DefaultParams()
	got := UpdateFractional(0.3, false, p, 0.4)
	if got >= 0.3 {
		t.Errorf("fractional wrong step should lower mastery: 0.3 -> %f", got)
	}
	if got < p.MinFloor {
		t.Errorf("fractional wrong step broke the floor: %f", got)
	}
}

func TestObserveParams_HardnessDirection(t *testing.T) {
	base := DefaultParams()
	sBeg, gBeg, _ := ObserveParams(base, difficulty.LevelBeginner)
	sMas, gMas, _ := ObserveParams(base, difficulty.LevelMaster)
	if sMas <= sBeg {
		t.Errorf("slip should rise with hardness: beginner %f, master %f", sBeg, sMas)
	}
	if gMas >= gBeg {
		t.Errorf("guess should fall with hardness: beginner %f, master %f", gBeg, gMas)
	}
}

func TestObserveParams_DecayDirection(t *testing.T) {
	base := DefaultParams()
	// A wrong answer on an easy item loses more knowledge than on a hard one.
	_, _, dBeg := ObserveParams(base, difficulty.LevelBeginner)
	_, _, dMas := ObserveParams(base, difficulty.LevelMaster)
	if dBeg >= dMas {
		t.Errorf("decay should be smaller on easy items: beginner %f, master %f", dBeg, dMas)
	}
}

func TestObserveParams_Bounds(t *testing.T) {
	base := DefaultParams()
	for _, lvl := range []difficulty.Level{
		difficulty.LevelBeginner, difficulty.LevelIntermediate,
		difficulty.LevelAdvanced, difficulty.LevelMaster,
	} {
		s, g, d := ObserveParams(base, lvl)
		if s < 0.06 || s > 0.14 {
			t.Errorf("slip out of bounds at level %v: %f", lvl, s)
		}
		if g < 0.12 || g > 0.28 {
			t.Errorf("guess out of bounds at level %v: %f", lvl, g)
		}
		if d < 0.80 || d > 0.98 {
			t.Errorf("decay out of bounds at level %v: %f", lvl, d)
		}
	}
}

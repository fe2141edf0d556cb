package selection

import (
	"math"
	"testing"
)

func TestBinaryEntropy(t *testing.T) {
	if got := BinaryEntropy(0.5); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("H(0.5) = %f, want 1.0", got)
	}
	if got := BinaryEntropy(0.0); got > 0.02 {
		t.Errorf("H(0) = %f, want near 0 (clamped input)", got)
	}
	if got := BinaryEntropy(1.0); got > 0.02 {
		t.Errorf("H(1) = %f, want near 0 (clamped input)", got)
	}
}

func TestEIG_NonNegative(t *testing.T) {
	for _, prior := range []float64{0.0, 0.1, 0.5, 0.9, 1.0} {
		for _, d := range []float64{0.0, 0.33, 0.67, 1.0} {
			if got := EIG(prior, d); got < 0 {
				t.Errorf("EIG(%f, %f) = %f, want >= 0", prior, d, got)
			}
		}
	}
}

func TestEIG_PeaksAtUncertainPrior(t *testing.T) {
	mid := EIG(0.5, 0.33)
	lo := EIG(0.02, 0.33)
	hi := EIG(0.98, 0.33)
	if mid <= lo || mid <= hi {
		t.Errorf("EIG should peak near uncertain priors: mid %f, lo %f, hi %f", mid, lo, hi)
	}
}

func TestEIG_NearCertainPriorNearZero(t *testing.T) {
	if got := EIG(0.99, 0.5); got > 0.15 {
		t.Errorf("EIG at near-certain prior = %f, want small", got)
	}
}

func TestEIG_MidDifficultyNearMaxAtUncertainPrior(t *testing.T) {
	// At prior 0.5 the gain barely varies with difficulty; a mid
	// difficulty must sit within 0.01 of the best over the whole range.
	var best float64
	for i := 0; i <= 100; i++ {
		if v := EIG(0.5, float64(i)/100); v > best {
			best = v
		}
	}
	if gap := best - EIG(0.5, 0.5); gap > 0.01 {
		t.Errorf("EIG(0.5, 0.5) trails the best difficulty by %f, want <= 0.01", gap)
	}
}

func TestEIG_ExtremePriorsApproachZero(t *testing.T) {
	for _, d := range []float64{0.0, 0.5, 1.0} {
		if got := EIG(0.001, d); got > 0.02 {
			t.Errorf("EIG(0.001, %f) = %f, want near 0", d, got)
		}
		if got := EIG(0.999, d); got > 0.02 {
			t.Errorf("EIG(0.999, %f) = %f, want near 0", d, got)
		}
	}
}

func TestBandOf(t *testing.T) {
	if got := BandOf(0, false); got != BandWeak {
		t.Errorf("no record = %v, want weak", got)
	}
	if got := BandOf(89.9, true); got != BandWeak {
		t.Errorf("89.9 = %v, want weak", got)
	}
	if got := BandOf(90, true); got != BandReview {
		t.Errorf("90 = %v, want review", got)
	}
	if got := BandOf(98.9, true); got != BandReview {
		t.Errorf("98.9 = %v, want review", got)
	}
	if got := BandOf(99, true); got != BandMaintenance {
		t.Errorf("99 = %v, want maintenance", got)
	}
}

func TestPrior_Blend(t *testing.T) {
	got := Prior(50, 0.5)
	want := 0.7*0.5 + 0.3*0.5
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("Prior(50, 0.5) = %f, want %f", got, want)
	}
	if got := Prior(200, 2.0); got != 1.0 {
		t.Errorf("out-of-range inputs = %f, want clamp 1.0", got)
	}
}

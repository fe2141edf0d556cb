package learnrate

import (
	"math"
	"testing"
)

func TestPracticeMultiplier_Bounds(t *testing.T) {
	if got := PracticeMultiplier(100, 0); got != ScaleMax {
		t.Errorf("all wins = %f, want %f", got, ScaleMax)
	}
	if got := PracticeMultiplier(0, 100); got != ScaleMin {
		t.Errorf("all fails = %f, want %f", got, ScaleMin)
	}
}

func TestPracticeMultiplier_Balanced(t *testing.T) {
	if got := PracticeMultiplier(3, 3); got != 1.0 {
		t.Errorf("balanced practice = %f, want 1.0", got)
	}
	if got := PracticeMultiplier(0, 0); got != 1.0 {
		t.Errorf("no practice = %f, want 1.0", got)
	}
}

func TestEffectiveTransition_NeutralScales(t *testing.T) {
	if got := EffectiveTransition(0.10, 1.0, 1.0); math.Abs(got-0.10) > 1e-12 {
		t.Errorf("neutral scales changed pT: %f", got)
	}
}

func TestEffectiveTransition_GeometricMean(t *testing.T) {
	got := EffectiveTransition(0.10, 1.5, 0.5)
	want := 0.10 * math.Sqrt(1.5*0.5)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("EffectiveTransition = %f, want %f", got, want)
	}
}

func TestEffectiveTransition_Capped(t *testing.T) {
	if got := EffectiveTransition(0.94, 1.5, 1.5); got != 0.95 {
		t.Errorf("upper cap = %f, want 0.95", got)
	}
	if got := EffectiveTransition(0.0, 1.0, 1.0); got != 1e-4 {
		t.Errorf("lower cap = %f, want 1e-4", got)
	}
}

func TestSessionScale_Bounds(t *testing.T) {
	for _, c := range []struct{ persisted, batch float64 }{
		{0.5, 0.5}, {1.5, 1.5}, {0.1, 10.0}, {1.0, 1.0},
	} {
		got := SessionScale(c.persisted, c.batch)
		if got < ScaleMin || got > ScaleMax {
			t.Errorf("SessionScale(%f, %f) = %f out of bounds", c.persisted, c.batch, got)
		}
	}
}

func TestNextScale_FirstWriteDirect(t *testing.T) {
	if got := NextScale(1.0, 0, 1.3); got != 1.3 {
		t.Errorf("first write = %f, want session value 1.3", got)
	}
}

func TestNextScale_LaterWritesBlend(t *testing.T) {
	got := NextScale(1.0, 4, 1.5)
	want := 0.8*1.0 + 0.2*1.5
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("EMA blend = %f, want %f", got, want)
	}
}

func TestTracker_ConvergedOnSmallDeltas(t *testing.T) {
	tr := NewTracker()
	for _, d := range []float64{0.2, 0.005, -0.003, 0.008} {
		tr.Observe(d)
	}
	if !tr.Converged() {
		t.Error("expected convergence with trailing deltas under epsilon")
	}
}

func TestTracker_NotConvergedOnLargeDelta(t *testing.T) {
	tr := NewTracker()
	for _, d := range []float64{0.005, 0.003, 0.05} {
		tr.Observe(d)
	}
	if tr.Converged() {
		t.Error("expected no convergence with a recent large delta")
	}
}

func TestTracker_NotConvergedBeforeWindowFull(t *testing.T) {
	tr := NewTracker()
	tr.Observe(0.001)
	tr.Observe(0.001)
	if tr.Converged() {
		t.Error("expected no convergence before the window fills")
	}
}

package difficulty

import (
	"math"
	"testing"
)

func TestCanonical_KnownTiers(t *testing.T) {
	for _, d := range []string{"beginner", "intermediate", "advanced", "master"} {
		if got := Canonical(d); got != d {
			t.Errorf("Canonical(%q) = %q, want %q", d, got, d)
		}
	}
}

func TestCanonical_Normalization(t *testing.T) {
	cases := map[string]string{
		"  Beginner ": TierBeginner,
		"ADVANCED":    TierAdvanced,
		"beg":         TierBeginner,
		"inter":       TierIntermediate,
		"mastery":     TierMaster,
		"":            TierIntermediate,
		"unknown":     TierIntermediate,
	}
	for in, want := range cases {
		if got := Canonical(in); got != want {
			t.Errorf("Canonical(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCentered_Range(t *testing.T) {
	if got := LevelBeginner.Centered(); got != -1.0 {
		t.Errorf("beginner centered = %f, want -1.0", got)
	}
	if got := LevelMaster.Centered(); got != 1.0 {
		t.Errorf("master centered = %f, want 1.0", got)
	}
	if got := LevelIntermediate.Centered(); math.Abs(got-(-1.0/3.0)) > 1e-9 {
		t.Errorf("intermediate centered = %f, want -1/3", got)
	}
	if got := LevelAdvanced.Centered(); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("advanced centered = %f, want 1/3", got)
	}
}

func TestScore_Tiers(t *testing.T) {
	cases := map[string]float64{
		"beginner":     0.0,
		"intermediate": 0.33,
		"advanced":     0.67,
		"master":       1.0,
	}
	for d, want := range cases {
		if got := Score(d); got != want {
			t.Errorf("Score(%q) = %f, want %f", d, got, want)
		}
	}
}

func TestScoreNumeric(t *testing.T) {
	if got := ScoreNumeric(0.4); got != 0.4 {
		t.Errorf("unit-interval passthrough = %f, want 0.4", got)
	}
	if got := ScoreNumeric(1.0); got != 1.0 {
		t.Errorf("boundary 1.0 = %f, want 1.0 (passthrough wins)", got)
	}
	if got := ScoreNumeric(4.0); got != 1.0 {
		t.Errorf("tier 4 = %f, want 1.0", got)
	}
	if got := ScoreNumeric(2.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("tier 2.5 = %f, want 0.5", got)
	}
	if got := ScoreNumeric(-3.0); got != 0.5 {
		t.Errorf("out-of-range = %f, want 0.5", got)
	}
}

func TestGameTypeOf(t *testing.T) {
	for _, tag := range []string{"coding", "code", "hangman", "debugging", "Hangman "} {
		if got := GameTypeOf(tag); got != GameCoding {
			t.Errorf("GameTypeOf(%q) = %q, want coding", tag, got)
		}
	}
	for _, tag := range []string{"quiz", "matching", "", "non_coding"} {
		if got := GameTypeOf(tag); got != GameNonCoding {
			t.Errorf("GameTypeOf(%q) = %q, want non_coding", tag, got)
		}
	}
}

func TestGameWeight(t *testing.T) {
	if got := GameWeight("debugging"); got != 2.0 {
		t.Errorf("coding weight = %f, want 2.0", got)
	}
	if got := GameWeight("quiz"); got != 1.0 {
		t.Errorf("non-coding weight = %f, want 1.0", got)
	}
}

func TestTimeMultiplier_NeutralOnMissingElapsed(t *testing.T) {
	if got := TimeMultiplier(0, 300, true); got != 1.0 {
		t.Errorf("zero elapsed = %f, want 1.0", got)
	}
	if got := TimeMultiplier(-5, 300, false); got != 1.0 {
		t.Errorf("negative elapsed = %f, want 1.0", got)
	}
}

func TestTimeMultiplier_FastCorrectBoosts(t *testing.T) {
	got := TimeMultiplier(60, 300, true)
	if got <= 1.0 || got > 1.10 {
		t.Errorf("fast correct = %f, want in (1.0, 1.10]", got)
	}
}

func TestTimeMultiplier_SlowCorrectShrinks(t *testing.T) {
	got := TimeMultiplier(600, 300, true)
	if got >= 1.0 || got < 0.90 {
		t.Errorf("slow correct = %f, want in [0.90, 1.0)", got)
	}
}

func TestTimeMultiplier_FastWrongShrinks(t *testing.T) {
	// A quick wrong answer suggests guessing; it should count for less.
	got := TimeMultiplier(60, 300, false)
	if got >= 1.0 || got < 0.90 {
		t.Errorf("fast wrong = %f, want in [0.90, 1.0)", got)
	}
}

func TestTimeMultiplier_Bounds(t *testing.T) {
	for _, elapsed := range []float64{1, 100, 300, 1000, 1e6} {
		for _, correct := range []bool{true, false} {
			got := TimeMultiplier(elapsed, 300, correct)
			if got < 0.90 || got > 1.10 {
				t.Errorf("TimeMultiplier(%f, 300, %t) = %f out of [0.90, 1.10]", elapsed, correct, got)
			}
		}
	}
}

func TestImpact_HardnessDirection(t *testing.T) {
	easyCorrect := Impact(1.0, true, LevelBeginner)
	hardCorrect := Impact(1.0, true, LevelMaster)
	if hardCorrect <= easyCorrect {
		t.Errorf("correct on master (%f) should outweigh beginner (%f)", hardCorrect, easyCorrect)
	}

	easyWrong := Impact(1.0, false, LevelBeginner)
	hardWrong := Impact(1.0, false, LevelMaster)
	if hardWrong >= easyWrong {
		t.Errorf("wrong on master (%f) should weigh less than beginner (%f)", hardWrong, easyWrong)
	}
}

func TestImpact_Clamped(t *testing.T) {
	if got := Impact(100.0, true, LevelMaster); got != 5.0 {
		t.Errorf("huge base = %f, want clamp 5.0", got)
	}
	if got := Impact(0.01, false, LevelBeginner); got != 0.5 {
		t.Errorf("tiny base = %f, want clamp 0.5", got)
	}
}

func TestExpectedTime(t *testing.T) {
	if got := ExpectedTime(120); got != 120 {
		t.Errorf("explicit limit = %f, want 120", got)
	}
	if got := ExpectedTime(0); got != DefaultExpectedTime {
		t.Errorf("no limit = %f, want default", got)
	}
}

func TestCapMistakes(t *testing.T) {
	if got := CapMistakes(-1); got != 0 {
		t.Errorf("negative = %d, want 0", got)
	}
	if got := CapMistakes(2); got != 2 {
		t.Errorf("in range = %d, want 2", got)
	}
	if got := CapMistakes(10); got != 3 {
		t.Errorf("over cap = %d, want 3", got)
	}
}

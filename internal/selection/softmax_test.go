package selection

import (
	"math"
	"math/rand"
	"testing"
)

func TestSoftmax_SumsToOne(t *testing.T) {
	probs := Softmax([]float64{0.1, 0.5, 0.3}, 0.2)
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %f, want 1.0", sum)
	}
}

func TestSoftmax_HigherScoreHigherProb(t *testing.T) {
	probs := Softmax([]float64{0.1, 0.5, 0.3}, 0.2)
	if !(probs[1] > probs[2] && probs[2] > probs[0]) {
		t.Errorf("ordering broken: %v", probs)
	}
}

func TestSoftmax_LowTemperatureSharpens(t *testing.T) {
	warm := Softmax([]float64{0.1, 0.5}, 1.0)
	cold := Softmax([]float64{0.1, 0.5}, 0.05)
	if cold[1] <= warm[1] {
		t.Errorf("lower temperature should concentrate mass: cold %f, warm %f", cold[1], warm[1])
	}
}

func TestSoftmax_Empty(t *testing.T) {
	if got := Softmax(nil, 0.2); got != nil {
		t.Errorf("empty input = %v, want nil", got)
	}
}

func TestSampleOne_RespectsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	counts := [2]int{}
	for i := 0; i < 2000; i++ {
		counts[sampleOne(rng, []float64{0.9, 0.1})]++
	}
	if counts[0] < counts[1] {
		t.Errorf("heavy weight drawn less often: %v", counts)
	}
}

func TestSampleOne_ZeroWeightsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		seen[sampleOne(rng, []float64{0, 0, 0})] = true
	}
	if len(seen) != 3 {
		t.Errorf("zero weights should fall back to uniform; saw %v", seen)
	}
}

func TestSubsample(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	idx := subsample(rng, 5, 10)
	if len(idx) != 5 {
		t.Errorf("k > n should return all %d indices, got %d", 5, len(idx))
	}

	idx = subsample(rng, 100, 10)
	if len(idx) != 10 {
		t.Fatalf("expected 10 indices, got %d", len(idx))
	}
	seen := map[int]bool{}
	for _, i := range idx {
		if seen[i] {
			t.Errorf("duplicate index %d", i)
		}
		seen[i] = true
	}
}

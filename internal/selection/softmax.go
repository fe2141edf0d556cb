package selection

import "math"

// Softmax converts scores to a probability distribution at the given
// temperature. Scores are shifted by their max before exponentiation to
// stay numerically stable at low temperatures.
func Softmax(xs []float64, temperature float64) []float64 {
	if len(xs) == 0 {
		return nil
	}
	t := math.Max(1e-6, temperature)
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	exps := make([]float64, len(xs))
	var sum float64
	for i, x := range xs {
		exps[i] = math.Exp((x - max) / t)
		sum += exps[i]
	}
	if sum <= 0 {
		uniform := 1.0 / float64(len(xs))
		for i := range exps {
			exps[i] = uniform
		}
		return exps
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}

// sampleOne draws an index from a weight slice. Weights need not sum to
// one; non-positive total falls back to uniform.
func sampleOne(rng drawSource, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	r := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if r <= cum {
			return i
		}
	}
	return len(weights) - 1
}

// subsample draws up to k distinct indices from [0, n) uniformly.
func subsample(rng drawSource, n, k int) []int {
	if k >= n {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	return rng.Perm(n)[:k]
}

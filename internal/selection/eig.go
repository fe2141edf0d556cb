package selection

import "math"

// Base observation rates for the selection-time response model. These are
// deliberately looser than the mastery model's parameters: at selection
// time the item is unseen and the response model only shapes ranking.
const (
	baseGuess = 0.25
	baseSlip  = 0.15
)

// BinaryEntropy returns H(p) in bits, with the input clamped to
// [0.001, 0.999].
func BinaryEntropy(p float64) float64 {
	p = clamp(p, 0.001, 0.999)
	return -(p*math.Log2(p) + (1-p)*math.Log2(1-p))
}

// EIG computes the expected reduction in entropy of the learner's
// knowledge estimate from observing a response to an item of normalized
// difficulty d, given the personalized prior. Items near the learner's
// uncertain middle ground score highest; near-certain subtopics score near
// zero either way.
func EIG(prior, d float64) float64 {
	g := baseGuess * (1.0 - 0.3*d)
	s := baseSlip * (1.0 + 0.5*d)

	pc := clamp(prior*(1-s)+(1-prior)*g, 0.01, 0.99)
	kc := clamp(prior*(1-s)/pc, 0, 1)
	kw := clamp(prior*s/(1-pc), 0, 1)

	hPrior := BinaryEntropy(prior)
	hPost := pc*BinaryEntropy(kc) + (1-pc)*BinaryEntropy(kw)
	return math.Max(0, hPrior-hPost)
}

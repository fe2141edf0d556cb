package difficulty

import (
	"math"
	"strings"
)

// Game type classifications.
const (
	GameCoding    = "coding"
	GameNonCoding = "non_coding"
)

var codingMinigames = map[string]bool{
	"hangman":   true,
	"debugging": true,
}

// DefaultExpectedTime is the fallback expected time (seconds) when an
// attempt carries no time limit and its minigame has no default.
const DefaultExpectedTime = 300.0

// GameTypeOf classifies a minigame or game-type tag as coding or
// non-coding. Unknown tags classify as non-coding.
func GameTypeOf(tag string) string {
	m := strings.ToLower(strings.TrimSpace(tag))
	switch {
	case m == GameCoding || m == "code" || codingMinigames[m]:
		return GameCoding
	default:
		return GameNonCoding
	}
}

// GameWeight returns the base impact weight for a game type. Coding items
// move mastery more per attempt.
func GameWeight(tag string) float64 {
	if GameTypeOf(tag) == GameCoding {
		return 2.0
	}
	return 1.0
}

// ExpectedTime resolves the reference time for an attempt: the explicit
// time limit if positive, else the shared minigame default.
func ExpectedTime(timeLimit float64) float64 {
	if timeLimit > 0 {
		return timeLimit
	}
	return DefaultExpectedTime
}

// TimeMultiplier weighs an attempt by elapsed time relative to expected
// time. Faster-than-expected correct answers count for more; slower wrong
// answers count for less. Bounded to [0.90, 1.10]; zero or missing elapsed
// time is neutral.
func TimeMultiplier(elapsed, expected float64, correct bool) float64 {
	if elapsed <= 0 {
		return 1.0
	}
	expected = math.Max(1e-6, expected)

	r := math.Min(2.0, math.Max(0.0, elapsed/expected))
	const (
		r0    = 0.8
		beta  = 2.0
		alpha = 0.20
	)
	sign := -1.0
	if correct {
		sign = 1.0
	}
	mult := 1.0 + sign*alpha*math.Tanh(beta*(r0-r))
	return math.Max(0.90, math.Min(1.10, mult))
}

// Impact scales a base weight by item hardness: correct answers on hard
// items count for more, wrong answers on hard items count for less.
// Clamped to [0.5, 5.0].
func Impact(baseWeight float64, correct bool, level Level) float64 {
	const k = 0.20
	c := level.Centered()
	scale := 1.0 - k*c
	if correct {
		scale = 1.0 + k*c
	}
	return math.Max(0.5, math.Min(5.0, baseWeight*scale))
}

// CapMistakes bounds a reported mistake count to [0, 3].
func CapMistakes(n int) int {
	if n < 0 {
		return 0
	}
	if n > 3 {
		return 3
	}
	return n
}

package selection

import (
	"math/rand"
	"sync"
)

// drawSource is the subset of math/rand draws the policies use. Both
// *rand.Rand and lockedRand satisfy it.
type drawSource interface {
	Float64() float64
	Intn(n int) int
	Perm(n int) []int
}

// lockedRand serializes draws from a shared math/rand source. Selection
// calls for different learners run concurrently against one policy
// instance, and *rand.Rand is not safe for concurrent use.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(rng *rand.Rand) *lockedRand {
	return &lockedRand{rng: rng}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

func (l *lockedRand) Perm(n int) []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Perm(n)
}

package selection

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/pygrounds/adaptive/internal/difficulty"
)

// Goldilocks difficulty bands: the acceptable predicted-success range per
// game class. Practice-heavy coding games tolerate a slightly harder band.
var (
	bandCoding    = [2]float64{0.65, 0.85}
	bandNonCoding = [2]float64{0.55, 0.80}
)

// Goldilocks is the alternative selection policy: filter candidates to
// those whose personalized prior falls inside the acceptable band, then
// sample uniformly. It ignores stratification and EIG entirely; kept as a
// selectable policy for experiments, not the default.
type Goldilocks struct {
	rng *lockedRand
}

// NewGoldilocks creates the band-filter policy.
func NewGoldilocks(rng *rand.Rand) *Goldilocks {
	return &Goldilocks{rng: newLockedRand(rng)}
}

// Select implements Policy.
func (g *Goldilocks) Select(req Request) []int {
	if req.Limit <= 0 || len(req.Items) == 0 {
		return nil
	}
	candidates := lo.Filter(req.Items, func(it Item, _ int) bool {
		return !req.Exclude[it.ID]
	})
	if len(candidates) == 0 {
		return nil
	}

	band := bandNonCoding
	if difficulty.GameTypeOf(req.GameType) == difficulty.GameCoding {
		band = bandCoding
	}

	filtered := lo.Filter(candidates, func(it Item, _ int) bool {
		p := Prior(req.Mastery[it.SubtopicID], req.Ability)
		return p >= band[0] && p <= band[1]
	})
	pool := filtered
	if len(pool) == 0 {
		pool = candidates
	}

	n := req.Limit
	if n > len(pool) {
		n = len(pool)
	}
	ids := make([]int, 0, n)
	for _, i := range g.rng.Perm(len(pool))[:n] {
		ids = append(ids, pool[i].ID)
	}
	return ids
}

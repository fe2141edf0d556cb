package selection

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/pygrounds/adaptive/internal/difficulty"
)

// Config holds the sampler tunables. Pass DefaultConfig unless an
// environment overrides the mix.
type Config struct {
	MixWeak         float64 // target fraction of weak-band draws
	MixReview       float64 // target fraction of review-band draws
	MaintProbCoding float64 // chance a coding request draws from maintenance
	Temperature     float64 // softmax temperature over EIG scores
	EvalPerTake     int     // sub-batch size per requested item
	EvalFloor       int     // minimum sub-batch size
}

// DefaultConfig returns the production mix: 75% weak, 15% review, the
// remainder maintenance.
func DefaultConfig() Config {
	return Config{
		MixWeak:         0.75,
		MixReview:       0.15,
		MaintProbCoding: 0.15,
		Temperature:     0.20,
		EvalPerTake:     10,
		EvalFloor:       80,
	}
}

// Sampler is the stratified EIG-softmax selection policy. Safe for
// concurrent Select calls; draws from the shared source are serialized.
type Sampler struct {
	cfg Config
	rng *lockedRand
}

// NewSampler creates a sampler drawing from the given source. The source
// is injectable so tests can pin draws.
func NewSampler(cfg Config, rng *rand.Rand) *Sampler {
	return &Sampler{cfg: cfg, rng: newLockedRand(rng)}
}

// drawState tracks one selection call: picked IDs in order plus the
// subtopics already represented, which later draws steer away from.
type drawState struct {
	order  []int
	picked map[int]bool
	subs   map[int]bool
	priors map[int]float64
}

// Select implements Policy.
func (s *Sampler) Select(req Request) []int {
	if req.Limit <= 0 || len(req.Items) == 0 {
		return nil
	}

	eligible := lo.Filter(req.Items, func(it Item, _ int) bool {
		return !req.Exclude[it.ID]
	})
	if len(eligible) == 0 {
		return nil
	}

	st := &drawState{
		picked: make(map[int]bool),
		subs:   make(map[int]bool),
		priors: make(map[int]float64),
	}
	for _, it := range eligible {
		if _, ok := st.priors[it.SubtopicID]; !ok {
			st.priors[it.SubtopicID] = Prior(req.Mastery[it.SubtopicID], req.Ability)
		}
	}

	if difficulty.GameTypeOf(req.GameType) == difficulty.GameCoding {
		return s.selectCoding(eligible, req, st)
	}
	return s.selectNonCoding(eligible, req, st)
}

// selectCoding picks exactly one item: usually from the weak pool, with a
// small chance of a maintenance refresher, falling back to uniform random
// choice when EIG sampling has nothing to work with.
func (s *Sampler) selectCoding(eligible []Item, req Request, st *drawState) []int {
	byBand := s.partition(eligible, req.Mastery)
	pool := byBand[BandWeak]
	if s.rng.Float64() < s.cfg.MaintProbCoding && len(byBand[BandMaintenance]) > 0 {
		pool = byBand[BandMaintenance]
	}
	if len(pool) == 0 {
		pool = byBand[BandWeak]
	}

	s.drawInto(st, pool, 1)
	if len(st.order) == 0 {
		fallback := byBand[BandWeak]
		if len(fallback) == 0 {
			fallback = eligible
		}
		if len(fallback) == 0 {
			return nil
		}
		return []int{fallback[s.rng.Intn(len(fallback))].ID}
	}
	return st.order[:1]
}

// selectNonCoding fills the 75/15/10 weak/review/maintenance allocation,
// sub-splitting weak by mastery thirds with difficulty gating, then
// backfills any shortfall from the remaining pool.
func (s *Sampler) selectNonCoding(eligible []Item, req Request, st *drawState) []int {
	byBand := s.partition(eligible, req.Mastery)

	k1 := max(1, round(float64(req.Limit)*s.cfg.MixWeak))
	k2 := max(0, round(float64(req.Limit)*s.cfg.MixReview))
	k3 := max(0, req.Limit-k1-k2)

	k1Low := round(float64(k1) * 0.55)
	k1Mid := round(float64(k1) * 0.35)
	k1High := max(0, k1-k1Low-k1Mid)

	weakLow, weakMid, weakHigh := s.splitWeak(byBand[BandWeak], req.Mastery)

	s.drawInto(st, gateTiers(weakLow, difficulty.LowTiers), k1Low)
	s.drawInto(st, weakMid, k1Mid)
	s.drawInto(st, gateTiers(weakHigh, difficulty.HighTiers), k1High)
	s.drawInto(st, byBand[BandReview], k2)
	s.drawInto(st, gateTiers(byBand[BandMaintenance], difficulty.HighTiers), k3)

	if len(st.order) < req.Limit {
		s.drawInto(st, eligible, req.Limit-len(st.order))
	}

	if len(st.order) > req.Limit {
		return st.order[:req.Limit]
	}
	return st.order
}

// partition groups items by the mastery band of their owning subtopic.
func (s *Sampler) partition(items []Item, mastery map[int]float64) map[Band][]Item {
	return lo.GroupBy(items, func(it Item) Band {
		pct, ok := mastery[it.SubtopicID]
		return BandOf(pct, ok)
	})
}

// splitWeak divides weak-band items into low/mid/high mastery sub-buckets
// at 50 and 85 percent.
func (s *Sampler) splitWeak(items []Item, mastery map[int]float64) (low, mid, high []Item) {
	for _, it := range items {
		switch m := mastery[it.SubtopicID]; {
		case m < 50:
			low = append(low, it)
		case m < 85:
			mid = append(mid, it)
		default:
			high = append(high, it)
		}
	}
	return low, mid, high
}

// gateTiers keeps only items whose difficulty tier is in the allowed set.
func gateTiers(items []Item, tiers []string) []Item {
	allowed := lo.SliceToMap(tiers, func(t string) (string, bool) { return t, true })
	return lo.Filter(items, func(it Item, _ int) bool {
		return allowed[difficulty.Canonical(it.Difficulty)]
	})
}

// drawInto samples up to take items from pool into the call state using
// softmax over EIG scores, skipping anything already picked and
// preferring subtopics not yet represented in this call.
func (s *Sampler) drawInto(st *drawState, pool []Item, take int) {
	if take <= 0 {
		return
	}
	remaining := lo.Filter(pool, func(it Item, _ int) bool {
		return !st.picked[it.ID]
	})
	if len(remaining) == 0 {
		return
	}

	// Score a random sub-batch rather than the whole pool; callers cap
	// cost through the eval sizing.
	batch := max(s.cfg.EvalPerTake*take, s.cfg.EvalFloor)
	idx := subsample(s.rng, len(remaining), batch)
	cand := make([]Item, len(idx))
	scores := make([]float64, len(idx))
	var maxScore float64
	for i, j := range idx {
		cand[i] = remaining[j]
		d := difficulty.Score(cand[i].Difficulty)
		scores[i] = EIG(st.priors[cand[i].SubtopicID], d)
		if scores[i] > maxScore {
			maxScore = scores[i]
		}
	}

	var probs []float64
	if maxScore <= 1e-9 {
		probs = make([]float64, len(cand))
		for i := range probs {
			probs[i] = 1.0
		}
	} else {
		probs = Softmax(scores, s.cfg.Temperature)
	}

	for n := 0; n < take && len(cand) > 0; n++ {
		pickable, weights := cand, probs
		if fresh := freshIndices(cand, st.subs); len(fresh) > 0 && len(fresh) < len(cand) {
			pickable = make([]Item, len(fresh))
			weights = make([]float64, len(fresh))
			for i, j := range fresh {
				pickable[i] = cand[j]
				weights[i] = probs[j]
			}
		}
		chosen := pickable[sampleOne(s.rng, weights)]

		st.order = append(st.order, chosen.ID)
		st.picked[chosen.ID] = true
		st.subs[chosen.SubtopicID] = true

		cand, probs = removeItem(cand, probs, chosen.ID)
	}
}

// freshIndices lists candidates whose subtopic has not been chosen yet in
// this call.
func freshIndices(cand []Item, chosenSubs map[int]bool) []int {
	var out []int
	for i, it := range cand {
		if !chosenSubs[it.SubtopicID] {
			out = append(out, i)
		}
	}
	return out
}

func removeItem(cand []Item, probs []float64, id int) ([]Item, []float64) {
	for i, it := range cand {
		if it.ID == id {
			cand = append(cand[:i], cand[i+1:]...)
			probs = append(probs[:i], probs[i+1:]...)
			break
		}
	}
	return cand, probs
}

func round(x float64) int {
	if x < 0 {
		return -int(-x + 0.5)
	}
	return int(x + 0.5)
}

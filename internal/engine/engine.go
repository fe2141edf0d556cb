package engine

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pygrounds/adaptive/internal/bkt"
	"github.com/pygrounds/adaptive/internal/difficulty"
	"github.com/pygrounds/adaptive/internal/learnrate"
	"github.com/pygrounds/adaptive/internal/selection"
	"github.com/pygrounds/adaptive/internal/store"
)

// lockStripes bounds the per-learner mutex table. Recalibration performs a
// write-read-write cycle per subtopic, so two batches for the same learner
// must never interleave.
const lockStripes = 64

// Deps are the persistence collaborators the engine reads and writes.
type Deps struct {
	Mastery    store.MasteryRepo
	LearnRates store.LearnRateRepo
	Abilities  store.AbilityRepo
	Rollups    store.RollupRepo
	Hierarchy  store.HierarchyRepo
	Items      store.ItemRepo
	Events     store.EventRepo
}

// Engine is the mastery estimator and item selector. All configuration is
// held in explicit immutable values; construct one per environment.
type Engine struct {
	params bkt.Params
	pfa    bkt.PFACoeffs
	policy selection.Policy
	deps   Deps
	log    *logrus.Logger
	locks  [lockStripes]sync.Mutex
}

// New creates an engine with the baseline model parameters and the given
// selection policy.
func New(deps Deps, policy selection.Policy, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.New()
	}
	return &Engine{
		params: bkt.DefaultParams(),
		pfa:    bkt.DefaultPFACoeffs(),
		policy: policy,
		deps:   deps,
		log:    log,
	}
}

// subtopicState accumulates one subtopic's trajectory through a batch.
type subtopicState struct {
	wins    float64
	fails   float64
	p       float64
	seeded  bool
	rate    store.LearningRate
	tracker *learnrate.Tracker
}

// Recalibrate processes one learner's batch of graded attempts: seeds a
// prior per touched subtopic, runs the sequential model over the batch,
// persists mastery and learning-rate records, and recomputes all roll-ups.
// Serialized per learner; deterministic given identical persisted state
// and batch.
func (e *Engine) Recalibrate(ctx context.Context, learner string, attempts []Attempt) (map[int]Result, error) {
	if learner == "" {
		return nil, fmt.Errorf("recalibrate: learner required")
	}

	lock := &e.locks[stripe(learner)]
	lock.Lock()
	defer lock.Unlock()

	existing, err := e.deps.Mastery.ForLearner(ctx, learner)
	if err != nil {
		return nil, fmt.Errorf("load mastery: %w", err)
	}

	batchID := uuid.NewString()
	states := make(map[int]*subtopicState)

	for _, att := range attempts {
		if len(att.SubtopicIDs) == 0 {
			// No resolvable subtopic: skipped for mastery purposes.
			continue
		}

		diff := difficulty.Canonical(att.Difficulty)
		level := difficulty.ParseLevel(diff)
		mistakes := difficulty.CapMistakes(att.Mistakes)

		base := difficulty.GameWeight(att.GameType) *
			difficulty.TimeMultiplier(att.Elapsed, difficulty.ExpectedTime(att.TimeLimit), att.Correct)
		impact := difficulty.Impact(base, att.Correct, level)

		e.appendEvent(ctx, learner, batchID, att, diff)

		for _, sid := range att.SubtopicIDs {
			st, ok := states[sid]
			if !ok {
				rate, err := e.deps.LearnRates.Get(ctx, learner, sid)
				if err != nil {
					return nil, fmt.Errorf("load learning rate: %w", err)
				}
				st = &subtopicState{rate: rate, tracker: learnrate.NewTracker()}
				states[sid] = st
			}

			if att.Correct {
				st.wins += impact
				st.fails += impact * float64(mistakes)
			} else {
				st.fails += impact * float64(1+mistakes)
			}

			if !st.seeded {
				var pct *float64
				if v, ok := existing[sid]; ok {
					pct = &v
				}
				st.p = bkt.SeedPrior(pct, st.wins, st.fails, diff, e.pfa, e.params.PL0)
				st.seeded = true
			}

			step := e.params
			step.PS, step.PG, step.DecayWrong = bkt.ObserveParams(e.params, level)
			step.PT = learnrate.EffectiveTransition(
				e.params.PT,
				st.rate.Scale,
				learnrate.PracticeMultiplier(st.wins, st.fails),
			)

			next := bkt.UpdateFractional(st.p, att.Correct, step, impact)
			st.tracker.Observe(next - st.p)
			st.p = next
		}
	}

	results := make(map[int]Result, len(states))
	for sid, st := range states {
		pct := clampPct(100.0 * st.p)

		if err := e.deps.Mastery.Upsert(ctx, store.Mastery{
			Learner:    learner,
			SubtopicID: sid,
			Pct:        pct,
		}); err != nil {
			return nil, fmt.Errorf("persist mastery: %w", err)
		}

		session := learnrate.SessionScale(st.rate.Scale, learnrate.PracticeMultiplier(st.wins, st.fails))
		if err := e.deps.LearnRates.Upsert(ctx, store.LearningRate{
			Learner:    learner,
			SubtopicID: sid,
			Scale:      learnrate.NextScale(st.rate.Scale, st.rate.Count, session),
			Count:      st.rate.Count + 1,
		}); err != nil {
			return nil, fmt.Errorf("persist learning rate: %w", err)
		}

		results[sid] = Result{
			MasteryPct:       pct,
			Band:             selection.BandOf(pct, true),
			Converged:        st.tracker.Converged(),
			ThresholdReached: st.p >= learnrate.Threshold,
		}
	}

	if err := e.rollUp(ctx, learner); err != nil {
		return nil, err
	}

	e.log.WithFields(logrus.Fields{
		"learner":   learner,
		"batch_id":  batchID,
		"attempts":  len(attempts),
		"subtopics": len(states),
	}).Info("recalibrated")

	return results, nil
}

// rollUp recomputes every topic and zone aggregate for the learner from
// the persisted mastery records.
func (e *Engine) rollUp(ctx context.Context, learner string) error {
	g, err := e.deps.Hierarchy.Graph(ctx)
	if err != nil {
		return fmt.Errorf("load hierarchy: %w", err)
	}
	mastery, err := e.deps.Mastery.ForLearner(ctx, learner)
	if err != nil {
		return fmt.Errorf("load mastery: %w", err)
	}

	topicPct := TopicProficiencies(g, mastery)
	if err := e.deps.Rollups.SaveTopics(ctx, learner, topicPct); err != nil {
		return fmt.Errorf("persist topic roll-up: %w", err)
	}
	zonePct := ZoneCompletions(g, topicPct)
	if err := e.deps.Rollups.SaveZones(ctx, learner, zonePct); err != nil {
		return fmt.Errorf("persist zone roll-up: %w", err)
	}
	return nil
}

// SelectItems picks up to limit items for the learner's current zone and
// the requested game type. Read-only with respect to mastery, except for
// the best-effort canonical-answer write-through on chosen coding items.
// Absence of content is a valid terminal state: an empty result, not an
// error.
func (e *Engine) SelectItems(ctx context.Context, learner, gameType string, limit int, excludeIDs []int) ([]int, error) {
	if limit <= 0 {
		return nil, nil
	}

	g, err := e.deps.Hierarchy.Graph(ctx)
	if err != nil {
		return nil, fmt.Errorf("load hierarchy: %w", err)
	}
	completion, err := e.deps.Rollups.ZoneCompletion(ctx, learner)
	if err != nil {
		return nil, fmt.Errorf("load zone completion: %w", err)
	}
	zone, ok := g.CurrentZone(completion)
	if !ok {
		return nil, nil
	}
	subIDs := g.ZoneSubtopicIDs(zone.ID)
	if len(subIDs) == 0 {
		return nil, nil
	}

	gt := difficulty.GameTypeOf(gameType)
	items, err := e.deps.Items.Candidates(ctx, gt, subIDs)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	mastery, err := e.deps.Mastery.ForLearner(ctx, learner)
	if err != nil {
		return nil, fmt.Errorf("load mastery: %w", err)
	}
	ability, err := e.deps.Abilities.Score(ctx, learner)
	if err != nil {
		return nil, fmt.Errorf("load ability: %w", err)
	}

	exclude := make(map[int]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		exclude[id] = true
	}

	ids := e.policy.Select(selection.Request{
		GameType: gt,
		Limit:    limit,
		Exclude:  exclude,
		Ability:  ability,
		Mastery:  mastery,
		Items:    items,
	})

	if gt == difficulty.GameCoding {
		for _, id := range ids {
			if err := e.deps.Items.EnsureAnswer(ctx, id); err != nil {
				e.log.WithError(err).WithField("item_id", id).Warn("answer write-through failed")
			}
		}
	}

	return ids, nil
}

// appendEvent records the attempt in the audit log. Failures are logged
// and do not abort the batch.
func (e *Engine) appendEvent(ctx context.Context, learner, batchID string, att Attempt, diff string) {
	err := e.deps.Events.AppendAttempt(ctx, store.AttemptEvent{
		Learner:     learner,
		BatchID:     batchID,
		ItemID:      att.ItemID,
		SubtopicIDs: att.SubtopicIDs,
		Correct:     att.Correct,
		Difficulty:  diff,
		GameType:    difficulty.GameTypeOf(att.GameType),
		Elapsed:     att.Elapsed,
		TimeLimit:   att.TimeLimit,
		Mistakes:    difficulty.CapMistakes(att.Mistakes),
	})
	if err != nil {
		e.log.WithError(err).Warn("attempt event append failed")
	}
}

func stripe(learner string) int {
	h := fnv.New32a()
	h.Write([]byte(learner))
	return int(h.Sum32() % lockStripes)
}

func clampPct(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

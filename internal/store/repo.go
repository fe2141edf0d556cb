package store

import (
	"context"

	"github.com/pygrounds/adaptive/internal/hierarchy"
	"github.com/pygrounds/adaptive/internal/selection"
)

// Mastery is one persisted mastery record, keyed by (learner, subtopic).
type Mastery struct {
	Learner    string
	SubtopicID int
	Pct        float64
}

// LearningRate is the persisted transition-probability scale for one
// learner and subtopic.
type LearningRate struct {
	Learner    string
	SubtopicID int
	Scale      float64
	Count      int
}

// AttemptEvent is one graded attempt appended to the audit log.
type AttemptEvent struct {
	Learner     string
	BatchID     string
	ItemID      int
	SubtopicIDs []int
	Correct     bool
	Difficulty  string
	GameType    string
	Elapsed     float64
	TimeLimit   float64
	Mistakes    int
}

// ItemSeed is a candidate item as loaded by the seed surface.
type ItemSeed struct {
	ID         int
	SubtopicID int
	GameType   string
	Difficulty string
	Answer     string
	Meta       map[string]any
}

// MasteryRepo reads and upserts mastery records.
type MasteryRepo interface {
	// ForLearner returns the learner's mastery percentages keyed by
	// subtopic. Absence is an empty map, not an error.
	ForLearner(ctx context.Context, learner string) (map[int]float64, error)

	// Upsert overwrites (or creates) one record.
	Upsert(ctx context.Context, rec Mastery) error
}

// LearnRateRepo reads and upserts learning-rate records.
type LearnRateRepo interface {
	// Get returns the record, or a cold-start default (scale 1.0,
	// count 0) when none exists.
	Get(ctx context.Context, learner string, subtopicID int) (LearningRate, error)

	Upsert(ctx context.Context, rec LearningRate) error
}

// AbilityRepo reads the externally maintained global ability score.
type AbilityRepo interface {
	// Score returns the learner's ability in [0, 1], or 0.5 when absent.
	Score(ctx context.Context, learner string) (float64, error)

	// SetScore upserts the score; exposed for seeding and tooling.
	SetScore(ctx context.Context, learner string, score float64) error
}

// RollupRepo persists and reads the derived topic/zone aggregates.
type RollupRepo interface {
	SaveTopics(ctx context.Context, learner string, pct map[int]float64) error
	SaveZones(ctx context.Context, learner string, pct map[int]float64) error

	// TopicProficiency returns topic percentages keyed by topic ID.
	TopicProficiency(ctx context.Context, learner string) (map[int]float64, error)

	// ZoneCompletion returns zone percentages keyed by zone ID.
	ZoneCompletion(ctx context.Context, learner string) (map[int]float64, error)
}

// HierarchyRepo loads and seeds the content hierarchy.
type HierarchyRepo interface {
	Graph(ctx context.Context) (*hierarchy.Graph, error)
	Seed(ctx context.Context, zones []hierarchy.Zone, topics []hierarchy.Topic, subs []hierarchy.Subtopic) error
}

// ItemRepo reads the candidate item pool.
type ItemRepo interface {
	// Candidates returns items of the given game type owned by any of
	// the subtopics.
	Candidates(ctx context.Context, gameType string, subtopicIDs []int) ([]selection.Item, error)

	// EnsureAnswer backfills a missing canonical answer on an item from
	// its extension metadata. Safe to call on items that already have
	// one.
	EnsureAnswer(ctx context.Context, itemID int) error

	Seed(ctx context.Context, items []ItemSeed) error
}

// EventRepo appends to the attempt audit log.
type EventRepo interface {
	AppendAttempt(ctx context.Context, ev AttemptEvent) error
}

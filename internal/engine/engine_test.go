package engine

import (
	"context"
	"math/rand"
	"testing"

	"github.com/pygrounds/adaptive/internal/hierarchy"
	"github.com/pygrounds/adaptive/internal/selection"
	"github.com/pygrounds/adaptive/internal/store"
)

// memStore is an in-memory implementation of every repository the engine
// depends on.
type memStore struct {
	mastery map[string]map[int]float64
	rates   map[string]map[int]store.LearningRate
	ability map[string]float64
	topics  map[string]map[int]float64
	zones   map[string]map[int]float64
	graph   *hierarchy.Graph
	items   []selection.Item
	answers map[int]string
	events  []store.AttemptEvent
}

func newMemStore(g *hierarchy.Graph, items []selection.Item) *memStore {
	return &memStore{
		mastery: map[string]map[int]float64{},
		rates:   map[string]map[int]store.LearningRate{},
		ability: map[string]float64{},
		topics:  map[string]map[int]float64{},
		zones:   map[string]map[int]float64{},
		graph:   g,
		items:   items,
		answers: map[int]string{},
	}
}

func (m *memStore) ForLearner(_ context.Context, learner string) (map[int]float64, error) {
	out := map[int]float64{}
	for k, v := range m.mastery[learner] {
		out[k] = v
	}
	return out, nil
}

func (m *memStore) Upsert(_ context.Context, rec store.Mastery) error {
	if m.mastery[rec.Learner] == nil {
		m.mastery[rec.Learner] = map[int]float64{}
	}
	m.mastery[rec.Learner][rec.SubtopicID] = rec.Pct
	return nil
}

func (m *memStore) Get(_ context.Context, learner string, subtopicID int) (store.LearningRate, error) {
	if r, ok := m.rates[learner][subtopicID]; ok {
		return r, nil
	}
	return store.LearningRate{Learner: learner, SubtopicID: subtopicID, Scale: 1.0}, nil
}

func (m *memStore) upsertRate(rec store.LearningRate) {
	if m.rates[rec.Learner] == nil {
		m.rates[rec.Learner] = map[int]store.LearningRate{}
	}
	m.rates[rec.Learner][rec.SubtopicID] = rec
}

func (m *memStore) Score(_ context.Context, learner string) (float64, error) {
	if s, ok := m.ability[learner]; ok {
		return s, nil
	}
	return 0.5, nil
}

func (m *memStore) SetScore(_ context.Context, learner string, score float64) error {
	m.ability[learner] = score
	return nil
}

func (m *memStore) SaveTopics(_ context.Context, learner string, pct map[int]float64) error {
	m.topics[learner] = pct
	return nil
}

func (m *memStore) SaveZones(_ context.Context, learner string, pct map[int]float64) error {
	m.zones[learner] = pct
	return nil
}

func (m *memStore) TopicProficiency(_ context.Context, learner string) (map[int]float64, error) {
	return m.topics[learner], nil
}

func (m *memStore) ZoneCompletion(_ context.Context, learner string) (map[int]float64, error) {
	return m.zones[learner], nil
}

func (m *memStore) Graph(_ context.Context) (*hierarchy.Graph, error) {
	return m.graph, nil
}

func (m *memStore) Seed(context.Context, []hierarchy.Zone, []hierarchy.Topic, []hierarchy.Subtopic) error {
	return nil
}

func (m *memStore) Candidates(_ context.Context, gameType string, subtopicIDs []int) ([]selection.Item, error) {
	allowed := map[int]bool{}
	for _, id := range subtopicIDs {
		allowed[id] = true
	}
	var out []selection.Item
	for _, it := range m.items {
		if it.GameType == gameType && allowed[it.SubtopicID] {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memStore) EnsureAnswer(_ context.Context, itemID int) error {
	if m.answers[itemID] == "" {
		m.answers[itemID] = "filled"
	}
	return nil
}

func (m *memStore) SeedItems(context.Context, []store.ItemSeed) error { return nil }

func (m *memStore) AppendAttempt(_ context.Context, ev store.AttemptEvent) error {
	m.events = append(m.events, ev)
	return nil
}

// rateRepo adapts memStore's learning-rate methods to the interface while
// keeping Upsert for mastery on the same struct.
type rateRepo struct{ m *memStore }

func (r rateRepo) Get(ctx context.Context, learner string, subtopicID int) (store.LearningRate, error) {
	return r.m.Get(ctx, learner, subtopicID)
}

func (r rateRepo) Upsert(_ context.Context, rec store.LearningRate) error {
	r.m.upsertRate(rec)
	return nil
}

type itemRepo struct{ m *memStore }

func (r itemRepo) Candidates(ctx context.Context, gameType string, subtopicIDs []int) ([]selection.Item, error) {
	return r.m.Candidates(ctx, gameType, subtopicIDs)
}

func (r itemRepo) EnsureAnswer(ctx context.Context, itemID int) error {
	return r.m.EnsureAnswer(ctx, itemID)
}

func (r itemRepo) Seed(ctx context.Context, items []store.ItemSeed) error {
	return r.m.SeedItems(ctx, items)
}

func testGraph() *hierarchy.Graph {
	return hierarchy.New(
		[]hierarchy.Zone{{ID: 1, Name: "Basics", Order: 1}, {ID: 2, Name: "Flow", Order: 2}},
		[]hierarchy.Topic{
			{ID: 10, ZoneID: 1, Name: "Variables", Order: 1},
			{ID: 20, ZoneID: 2, Name: "Loops", Order: 1},
		},
		[]hierarchy.Subtopic{
			{ID: 100, TopicID: 10, Name: "Assignment"},
			{ID: 101, TopicID: 10, Name: "Naming"},
			{ID: 200, TopicID: 20, Name: "For"},
		},
	)
}

func newTestEngine(m *memStore) *Engine {
	policy := selection.NewSampler(selection.DefaultConfig(), rand.New(rand.NewSource(1)))
	return New(Deps{
		Mastery:    m,
		LearnRates: rateRepo{m},
		Abilities:  m,
		Rollups:    m,
		Hierarchy:  m,
		Items:      itemRepo{m},
		Events:     m,
	}, policy, nil)
}

func correctAttempts(n int, subtopicID int) []Attempt {
	out := make([]Attempt, n)
	for i := range out {
		out[i] = Attempt{
			Correct:     true,
			Difficulty:  "beginner",
			GameType:    "quiz",
			SubtopicIDs: []int{subtopicID},
		}
	}
	return out
}

func TestRecalibrate_CorrectBatchRaisesMastery(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	eng := newTestEngine(m)

	results, err := eng.Recalibrate(context.Background(), "alice", correctAttempts(5, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, ok := results[100]
	if !ok {
		t.Fatalf("no result for subtopic 100: %v", results)
	}
	if r.MasteryPct <= 20.0 {
		t.Errorf("five correct answers should lift mastery above the prior: %f", r.MasteryPct)
	}
	if got := m.mastery["alice"][100]; got != r.MasteryPct {
		t.Errorf("persisted %f, reported %f", got, r.MasteryPct)
	}
}

func TestRecalibrate_SequentialCorrectAttemptsStrictlyIncrease(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	eng := newTestEngine(m)

	prev := 0.0
	for step := 1; step <= 5; step++ {
		results, err := eng.Recalibrate(context.Background(), "alice", correctAttempts(1, 100))
		if err != nil {
			t.Fatalf("step %d: unexpected error: %v", step, err)
		}
		pct := results[100].MasteryPct
		if pct <= prev {
			t.Fatalf("step %d: mastery did not increase: %f -> %f", step, prev, pct)
		}
		if got := m.mastery["alice"][100]; got != pct {
			t.Fatalf("step %d: persisted %f, reported %f", step, got, pct)
		}
		prev = pct
	}
}

func TestRecalibrate_WrongBatchLowersPersistedMastery(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	m.mastery["bob"] = map[int]float64{100: 70}
	eng := newTestEngine(m)

	attempts := []Attempt{
		{Correct: false, Difficulty: "beginner", GameType: "quiz", SubtopicIDs: []int{100}},
		{Correct: false, Difficulty: "beginner", GameType: "quiz", SubtopicIDs: []int{100}},
	}
	results, err := eng.Recalibrate(context.Background(), "bob", attempts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := results[100].MasteryPct; got >= 70 {
		t.Errorf("wrong answers should lower mastery from 70: %f", got)
	}
}

func TestRecalibrate_SkipsUnmappedAttempts(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	eng := newTestEngine(m)

	attempts := []Attempt{
		{Correct: true, Difficulty: "beginner", GameType: "quiz"},
	}
	results, err := eng.Recalibrate(context.Background(), "carol", attempts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("unmapped attempts should produce no results: %v", results)
	}
	if len(m.events) != 0 {
		t.Errorf("unmapped attempts should not be logged: %d events", len(m.events))
	}
}

func TestRecalibrate_RequiresLearner(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	eng := newTestEngine(m)
	if _, err := eng.Recalibrate(context.Background(), "", correctAttempts(1, 100)); err == nil {
		t.Error("expected error for empty learner")
	}
}

func TestRecalibrate_AppendsEventsWithSharedBatch(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	eng := newTestEngine(m)

	if _, err := eng.Recalibrate(context.Background(), "dave", correctAttempts(3, 100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(m.events))
	}
	batch := m.events[0].BatchID
	if batch == "" {
		t.Error("expected a non-empty batch ID")
	}
	for _, ev := range m.events {
		if ev.BatchID != batch {
			t.Errorf("events span batch IDs %q and %q", batch, ev.BatchID)
		}
	}
}

func TestRecalibrate_UpdatesLearningRate(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	eng := newTestEngine(m)

	if _, err := eng.Recalibrate(context.Background(), "erin", correctAttempts(4, 100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rate := m.rates["erin"][100]
	if rate.Count != 1 {
		t.Errorf("batch count = %d, want 1", rate.Count)
	}
	// An all-correct batch runs hot: the persisted scale moves above 1.
	if rate.Scale <= 1.0 {
		t.Errorf("all-correct batch should raise the scale: %f", rate.Scale)
	}
}

func TestRecalibrate_SavesRollups(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	eng := newTestEngine(m)

	if _, err := eng.Recalibrate(context.Background(), "fred", correctAttempts(3, 100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	topicPct, ok := m.topics["fred"][10]
	if !ok {
		t.Fatal("expected a proficiency entry for topic 10")
	}
	if topicPct != m.mastery["fred"][100] {
		t.Errorf("single-subtopic topic mean = %f, want %f", topicPct, m.mastery["fred"][100])
	}
	if _, ok := m.topics["fred"][20]; ok {
		t.Error("topic without recorded subtopics should have no entry")
	}
	if _, ok := m.zones["fred"][1]; !ok {
		t.Error("expected a completion entry for zone 1")
	}
}

func TestRecalibrate_Deterministic(t *testing.T) {
	attempts := []Attempt{
		{Correct: true, Difficulty: "advanced", GameType: "debugging", Elapsed: 40, TimeLimit: 120, SubtopicIDs: []int{100, 101}},
		{Correct: false, Difficulty: "intermediate", GameType: "quiz", Mistakes: 2, SubtopicIDs: []int{100}},
		{Correct: true, Difficulty: "master", GameType: "hangman", SubtopicIDs: []int{101}},
	}

	run := func() map[int]Result {
		m := newMemStore(testGraph(), nil)
		eng := newTestEngine(m)
		results, err := eng.Recalibrate(context.Background(), "gus", attempts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return results
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("result sets differ: %v vs %v", a, b)
	}
	for sid, ra := range a {
		if rb := b[sid]; ra != rb {
			t.Errorf("subtopic %d diverged: %+v vs %+v", sid, ra, rb)
		}
	}
}

func TestSelectItems_ScopedToCurrentZone(t *testing.T) {
	items := []selection.Item{
		{ID: 1, SubtopicID: 100, GameType: "non_coding", Difficulty: "beginner"},
		{ID: 2, SubtopicID: 101, GameType: "non_coding", Difficulty: "intermediate"},
		{ID: 3, SubtopicID: 200, GameType: "non_coding", Difficulty: "beginner"},
	}
	m := newMemStore(testGraph(), items)
	eng := newTestEngine(m)

	ids, err := eng.SelectItems(context.Background(), "alice", "quiz", 10, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range ids {
		if id == 3 {
			t.Errorf("item from a later zone selected: %v", ids)
		}
	}
	if len(ids) != 2 {
		t.Errorf("expected both zone-1 items, got %v", ids)
	}
}

func TestSelectItems_AdvancesZoneOnCompletion(t *testing.T) {
	items := []selection.Item{
		{ID: 1, SubtopicID: 100, GameType: "non_coding", Difficulty: "beginner"},
		{ID: 3, SubtopicID: 200, GameType: "non_coding", Difficulty: "beginner"},
	}
	m := newMemStore(testGraph(), items)
	m.zones["alice"] = map[int]float64{1: 100, 2: 0}
	eng := newTestEngine(m)

	ids, err := eng.SelectItems(context.Background(), "alice", "quiz", 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != 3 {
		t.Errorf("expected only the zone-2 item, got %v", ids)
	}
}

func TestSelectItems_ZeroLimit(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	eng := newTestEngine(m)
	ids, err := eng.SelectItems(context.Background(), "alice", "quiz", 0, nil)
	if err != nil || ids != nil {
		t.Errorf("zero limit: ids %v, err %v; want nil, nil", ids, err)
	}
}

func TestSelectItems_EmptyCatalog(t *testing.T) {
	m := newMemStore(testGraph(), nil)
	eng := newTestEngine(m)
	ids, err := eng.SelectItems(context.Background(), "alice", "quiz", 5, nil)
	if err != nil || ids != nil {
		t.Errorf("empty catalog: ids %v, err %v; want nil, nil", ids, err)
	}
}

func TestSelectItems_Excludes(t *testing.T) {
	items := []selection.Item{
		{ID: 1, SubtopicID: 100, GameType: "non_coding", Difficulty: "beginner"},
		{ID: 2, SubtopicID: 101, GameType: "non_coding", Difficulty: "beginner"},
	}
	m := newMemStore(testGraph(), items)
	eng := newTestEngine(m)

	ids, err := eng.SelectItems(context.Background(), "alice", "quiz", 5, []int{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != 2 {
		t.Errorf("expected only item 2, got %v", ids)
	}
}

func TestSelectItems_CodingFillsAnswers(t *testing.T) {
	items := []selection.Item{
		{ID: 7, SubtopicID: 100, GameType: "coding", Difficulty: "intermediate"},
	}
	m := newMemStore(testGraph(), items)
	eng := newTestEngine(m)

	ids, err := eng.SelectItems(context.Background(), "alice", "debugging", 1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != 7 {
		t.Fatalf("expected item 7, got %v", ids)
	}
	if m.answers[7] == "" {
		t.Error("expected the canonical answer write-through to run")
	}
}

package engine

import (
	"math"
	"testing"
)

func TestTopicProficiencies_MeanOfRecorded(t *testing.T) {
	g := testGraph()
	mastery := map[int]float64{100: 40, 101: 80}
	got := TopicProficiencies(g, mastery)
	if pct := got[10]; math.Abs(pct-60) > 1e-9 {
		t.Errorf("topic 10 = %f, want 60", pct)
	}
}

func TestTopicProficiencies_AbsentExcluded(t *testing.T) {
	g := testGraph()
	// Only one of topic 10's two subtopics has a record: the mean covers
	// recorded children only.
	got := TopicProficiencies(g, map[int]float64{100: 40})
	if pct := got[10]; pct != 40 {
		t.Errorf("topic 10 = %f, want 40", pct)
	}
	if _, ok := got[20]; ok {
		t.Error("topic with no recorded subtopics should have no entry")
	}
}

func TestZoneCompletions(t *testing.T) {
	g := testGraph()
	topicPct := map[int]float64{10: 60}
	got := ZoneCompletions(g, topicPct)
	if pct := got[1]; pct != 60 {
		t.Errorf("zone 1 = %f, want 60", pct)
	}
	if _, ok := got[2]; ok {
		t.Error("zone with no recorded topics should have no entry")
	}
}

func TestRollups_Idempotent(t *testing.T) {
	g := testGraph()
	mastery := map[int]float64{100: 33.3, 101: 66.6, 200: 10}
	a := TopicProficiencies(g, mastery)
	b := TopicProficiencies(g, mastery)
	for id, pct := range a {
		if b[id] != pct {
			t.Errorf("topic %d diverged across recomputation: %f vs %f", id, pct, b[id])
		}
	}
	za := ZoneCompletions(g, a)
	zb := ZoneCompletions(g, b)
	for id, pct := range za {
		if zb[id] != pct {
			t.Errorf("zone %d diverged across recomputation: %f vs %f", id, pct, zb[id])
		}
	}
}

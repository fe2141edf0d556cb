package hierarchy

import "testing"

func testGraph() *Graph {
	zones := []Zone{
		{ID: 2, Name: "Control Flow", Order: 2},
		{ID: 1, Name: "Basics", Order: 1},
	}
	topics := []Topic{
		{ID: 10, ZoneID: 1, Name: "Variables", Order: 1},
		{ID: 11, ZoneID: 1, Name: "Types", Order: 2},
		{ID: 20, ZoneID: 2, Name: "Loops", Order: 1},
	}
	subs := []Subtopic{
		{ID: 100, TopicID: 10, Name: "Assignment"},
		{ID: 101, TopicID: 10, Name: "Naming"},
		{ID: 110, TopicID: 11, Name: "Strings"},
		{ID: 200, TopicID: 20, Name: "For"},
	}
	return New(zones, topics, subs)
}

func TestZones_SortedByOrder(t *testing.T) {
	g := testGraph()
	zones := g.Zones()
	if len(zones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(zones))
	}
	if zones[0].ID != 1 || zones[1].ID != 2 {
		t.Errorf("zones out of order: %v", zones)
	}
}

func TestZoneSubtopicIDs(t *testing.T) {
	g := testGraph()
	ids := g.ZoneSubtopicIDs(1)
	if len(ids) != 3 {
		t.Fatalf("expected 3 subtopics in zone 1, got %v", ids)
	}
	want := map[int]bool{100: true, 101: true, 110: true}
	for _, id := range ids {
		if !want[id] {
			t.Errorf("unexpected subtopic %d in zone 1", id)
		}
	}
	if got := g.ZoneSubtopicIDs(2); len(got) != 1 || got[0] != 200 {
		t.Errorf("zone 2 subtopics = %v, want [200]", got)
	}
}

func TestCurrentZone_FirstIncomplete(t *testing.T) {
	g := testGraph()
	z, ok := g.CurrentZone(map[int]float64{1: 100, 2: 40})
	if !ok || z.ID != 2 {
		t.Errorf("current zone = %v (ok=%t), want zone 2", z, ok)
	}
}

func TestCurrentZone_NoRecordsStartsAtFirst(t *testing.T) {
	g := testGraph()
	z, ok := g.CurrentZone(nil)
	if !ok || z.ID != 1 {
		t.Errorf("current zone = %v (ok=%t), want zone 1", z, ok)
	}
}

func TestCurrentZone_AllCompleteStaysAtLast(t *testing.T) {
	g := testGraph()
	z, ok := g.CurrentZone(map[int]float64{1: 100, 2: 100})
	if !ok || z.ID != 2 {
		t.Errorf("current zone = %v (ok=%t), want last zone", z, ok)
	}
}

func TestCurrentZone_EmptyGraph(t *testing.T) {
	g := New(nil, nil, nil)
	if _, ok := g.CurrentZone(nil); ok {
		t.Error("expected ok=false for empty hierarchy")
	}
}

func TestOrphanTopicExcludedFromWalks(t *testing.T) {
	g := New(
		[]Zone{{ID: 1, Order: 1}},
		[]Topic{{ID: 10, ZoneID: 1}, {ID: 99, ZoneID: 7}},
		[]Subtopic{{ID: 100, TopicID: 10}},
	)
	if got := g.TopicsIn(1); len(got) != 1 || got[0].ID != 10 {
		t.Errorf("zone 1 topics = %v, want only topic 10", got)
	}
	if _, ok := g.Topic(99); !ok {
		t.Error("orphan topic should remain reachable by ID")
	}
}

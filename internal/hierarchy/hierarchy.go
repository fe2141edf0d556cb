// Package hierarchy models the zone → topic → subtopic containment used
// for roll-ups and for scoping candidate items to a learner's current
// zone.
package hierarchy

import "sort"

// Zone is the coarsest content level, ordered by Order.
type Zone struct {
	ID    int
	Name  string
	Order int
}

// Topic groups subtopics within a zone.
type Topic struct {
	ID     int
	ZoneID int
	Name   string
	Order  int
}

// Subtopic is the finest content level; mastery is tracked per subtopic.
type Subtopic struct {
	ID      int
	TopicID int
	Name    string
}

// Graph is an immutable in-memory view of the content hierarchy.
type Graph struct {
	zones        []Zone
	topics       map[int]Topic
	subtopics    map[int]Subtopic
	topicsByZone map[int][]Topic
	subsByTopic  map[int][]Subtopic
}

// New builds a graph from flat records. Zones and topics are ordered by
// their Order fields; topics referencing unknown zones (or subtopics
// referencing unknown topics) are kept reachable by direct lookup but
// excluded from containment walks.
func New(zones []Zone, topics []Topic, subs []Subtopic) *Graph {
	g := &Graph{
		zones:        append([]Zone(nil), zones...),
		topics:       make(map[int]Topic, len(topics)),
		subtopics:    make(map[int]Subtopic, len(subs)),
		topicsByZone: make(map[int][]Topic),
		subsByTopic:  make(map[int][]Subtopic),
	}
	sort.Slice(g.zones, func(i, j int) bool { return g.zones[i].Order < g.zones[j].Order })

	zoneIDs := make(map[int]bool, len(zones))
	for _, z := range zones {
		zoneIDs[z.ID] = true
	}
	for _, t := range topics {
		g.topics[t.ID] = t
		if zoneIDs[t.ZoneID] {
			g.topicsByZone[t.ZoneID] = append(g.topicsByZone[t.ZoneID], t)
		}
	}
	for id := range g.topicsByZone {
		ts := g.topicsByZone[id]
		sort.Slice(ts, func(i, j int) bool { return ts[i].Order < ts[j].Order })
	}
	for _, s := range subs {
		g.subtopics[s.ID] = s
		if _, ok := g.topics[s.TopicID]; ok {
			g.subsByTopic[s.TopicID] = append(g.subsByTopic[s.TopicID], s)
		}
	}
	return g
}

// Zones returns all zones in defined order.
func (g *Graph) Zones() []Zone {
	return g.zones
}

// Topic returns a topic by ID.
func (g *Graph) Topic(id int) (Topic, bool) {
	t, ok := g.topics[id]
	return t, ok
}

// Subtopic returns a subtopic by ID.
func (g *Graph) Subtopic(id int) (Subtopic, bool) {
	s, ok := g.subtopics[id]
	return s, ok
}

// TopicsIn returns the topics of a zone in defined order.
func (g *Graph) TopicsIn(zoneID int) []Topic {
	return g.topicsByZone[zoneID]
}

// SubtopicsIn returns the subtopics of a topic.
func (g *Graph) SubtopicsIn(topicID int) []Subtopic {
	return g.subsByTopic[topicID]
}

// ZoneSubtopicIDs returns every subtopic ID contained in a zone.
func (g *Graph) ZoneSubtopicIDs(zoneID int) []int {
	var ids []int
	for _, t := range g.topicsByZone[zoneID] {
		for _, s := range g.subsByTopic[t.ID] {
			ids = append(ids, s.ID)
		}
	}
	return ids
}

// CurrentZone resolves the learner's active zone: the first zone whose
// aggregated completion is below 100, else the last zone. ok is false when
// the hierarchy holds no zones at all.
func (g *Graph) CurrentZone(completion map[int]float64) (Zone, bool) {
	if len(g.zones) == 0 {
		return Zone{}, false
	}
	for _, z := range g.zones {
		if completion[z.ID] < 100.0 {
			return z, true
		}
	}
	return g.zones[len(g.zones)-1], true
}

package engine

import "github.com/pygrounds/adaptive/internal/hierarchy"

// TopicProficiencies averages subtopic mastery percentages per topic.
// Subtopics without a record are excluded from the mean, not counted as
// zero; topics with no recorded subtopics produce no entry at all.
func TopicProficiencies(g *hierarchy.Graph, mastery map[int]float64) map[int]float64 {
	out := make(map[int]float64)
	for _, z := range g.Zones() {
		for _, t := range g.TopicsIn(z.ID) {
			var sum float64
			var n int
			for _, s := range g.SubtopicsIn(t.ID) {
				if pct, ok := mastery[s.ID]; ok {
					sum += pct
					n++
				}
			}
			if n > 0 {
				out[t.ID] = sum / float64(n)
			}
		}
	}
	return out
}

// ZoneCompletions averages topic proficiencies per zone under the same
// exclusion rule. Pure and idempotent: recomputing on unchanged input
// yields identical percentages.
func ZoneCompletions(g *hierarchy.Graph, topicPct map[int]float64) map[int]float64 {
	out := make(map[int]float64)
	for _, z := range g.Zones() {
		var sum float64
		var n int
		for _, t := range g.TopicsIn(z.ID) {
			if pct, ok := topicPct[t.ID]; ok {
				sum += pct
				n++
			}
		}
		if n > 0 {
			out[z.ID] = sum / float64(n)
		}
	}
	return out
}

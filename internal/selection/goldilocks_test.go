package selection

import (
	"math/rand"
	"sync"
	"testing"
)

func TestGoldilocks_FiltersToBand(t *testing.T) {
	g := NewGoldilocks(rand.New(rand.NewSource(1)))
	// With ability 0.5, subtopic 10 has prior 0.7*0.6+0.15 = 0.57 (in the
	// non-coding band); subtopic 11 has prior 0.15 (below it).
	items := []Item{
		{ID: 1, SubtopicID: 10, GameType: "quiz", Difficulty: "intermediate"},
		{ID: 2, SubtopicID: 10, GameType: "quiz", Difficulty: "intermediate"},
		{ID: 3, SubtopicID: 11, GameType: "quiz", Difficulty: "intermediate"},
	}
	mastery := map[int]float64{10: 60, 11: 0}

	got := g.Select(Request{GameType: "quiz", Limit: 10, Ability: 0.5, Mastery: mastery, Items: items})
	if len(got) != 2 {
		t.Fatalf("expected the 2 in-band items, got %v", got)
	}
	for _, id := range got {
		if id == 3 {
			t.Errorf("out-of-band item selected: %v", got)
		}
	}
}

func TestGoldilocks_FallsBackWhenBandEmpty(t *testing.T) {
	g := NewGoldilocks(rand.New(rand.NewSource(1)))
	items := []Item{
		{ID: 1, SubtopicID: 10, GameType: "quiz", Difficulty: "beginner"},
		{ID: 2, SubtopicID: 10, GameType: "quiz", Difficulty: "beginner"},
	}
	// Prior 0.15 for everything: nothing in band, whole pool serves.
	got := g.Select(Request{GameType: "quiz", Limit: 1, Ability: 0.5, Mastery: nil, Items: items})
	if len(got) != 1 {
		t.Fatalf("expected fallback to full pool, got %v", got)
	}
}

func TestGoldilocks_HonorsExclusionsAndLimit(t *testing.T) {
	g := NewGoldilocks(rand.New(rand.NewSource(2)))
	items := itemsFor(1, 10, 10, "intermediate")
	got := g.Select(Request{
		GameType: "quiz",
		Limit:    4,
		Exclude:  map[int]bool{1: true},
		Ability:  0.5,
		Mastery:  map[int]float64{10: 60},
		Items:    items,
	})
	if len(got) != 4 {
		t.Fatalf("expected 4 items, got %v", got)
	}
	for _, id := range got {
		if id == 1 {
			t.Errorf("excluded item selected: %v", got)
		}
	}
}

func TestGoldilocks_ConcurrentCallers(t *testing.T) {
	g := NewGoldilocks(rand.New(rand.NewSource(4)))
	items := itemsFor(1, 30, 10, "intermediate")
	mastery := map[int]float64{10: 60}

	var wg sync.WaitGroup
	results := make([][]int, 8)
	for i := range results {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			results[slot] = g.Select(Request{
				GameType: "quiz", Limit: 3, Ability: 0.5, Mastery: mastery, Items: items,
			})
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		if len(got) != 3 {
			t.Errorf("expected 3 items per call, got %v", got)
		}
	}
}

func TestGoldilocks_EmptyPool(t *testing.T) {
	g := NewGoldilocks(rand.New(rand.NewSource(1)))
	if got := g.Select(Request{GameType: "quiz", Limit: 3}); got != nil {
		t.Errorf("empty pool = %v, want nil", got)
	}
}

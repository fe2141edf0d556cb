package store

import (
	"context"
	"fmt"

	"github.com/pygrounds/adaptive/ent"
	"github.com/pygrounds/adaptive/ent/item"
	"github.com/pygrounds/adaptive/internal/selection"
)

type itemRepo struct {
	client *ent.Client
}

func (r *itemRepo) Candidates(ctx context.Context, gameType string, subtopicIDs []int) ([]selection.Item, error) {
	if len(subtopicIDs) == 0 {
		return nil, nil
	}
	recs, err := r.client.Item.Query().
		Where(
			item.GameType(gameType),
			item.SubtopicIDIn(subtopicIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	out := make([]selection.Item, 0, len(recs))
	for _, it := range recs {
		out = append(out, selection.Item{
			ID:         it.ID,
			SubtopicID: it.SubtopicID,
			GameType:   it.GameType,
			Difficulty: it.Difficulty,
		})
	}
	return out, nil
}

// EnsureAnswer fills a missing canonical answer from the item's extension
// metadata. Contention is keyed by item and harmless: concurrent writers
// set the same value.
func (r *itemRepo) EnsureAnswer(ctx context.Context, itemID int) error {
	it, err := r.client.Item.Get(ctx, itemID)
	if err != nil {
		return fmt.Errorf("get item %d: %w", itemID, err)
	}
	if it.Answer != "" {
		return nil
	}
	fn, _ := it.Meta["function_name"].(string)
	if fn == "" {
		return nil
	}
	if _, err := it.Update().SetAnswer(fn).Save(ctx); err != nil {
		return fmt.Errorf("set answer on item %d: %w", itemID, err)
	}
	return nil
}

func (r *itemRepo) Seed(ctx context.Context, items []ItemSeed) error {
	for _, is := range items {
		builder := r.client.Item.Create().
			SetID(is.ID).
			SetSubtopicID(is.SubtopicID).
			SetGameType(is.GameType).
			SetDifficulty(is.Difficulty).
			SetAnswer(is.Answer)
		if is.Meta != nil {
			builder = builder.SetMeta(is.Meta)
		}
		if err := builder.OnConflict().UpdateNewValues().Exec(ctx); err != nil {
			return fmt.Errorf("seed item %d: %w", is.ID, err)
		}
	}
	return nil
}

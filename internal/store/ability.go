package store

import (
	"context"
	"fmt"

	"github.com/pygrounds/adaptive/ent"
	"github.com/pygrounds/adaptive/ent/ability"
)

type abilityRepo struct {
	client *ent.Client
}

func (r *abilityRepo) Score(ctx context.Context, learner string) (float64, error) {
	rec, err := r.client.Ability.Query().
		Where(ability.Learner(learner)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return 0.5, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query ability: %w", err)
	}
	score := rec.Score
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score, nil
}

func (r *abilityRepo) SetScore(ctx context.Context, learner string, score float64) error {
	existing, err := r.client.Ability.Query().
		Where(ability.Learner(learner)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = r.client.Ability.Create().
			SetLearner(learner).
			SetScore(score).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create ability: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("query ability: %w", err)
	}
	if _, err := existing.Update().SetScore(score).Save(ctx); err != nil {
		return fmt.Errorf("update ability: %w", err)
	}
	return nil
}

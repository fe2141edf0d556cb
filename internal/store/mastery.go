package store

import (
	"context"
	"fmt"

	"github.com/pygrounds/adaptive/ent"
	"github.com/pygrounds/adaptive/ent/learningrate"
	"github.com/pygrounds/adaptive/ent/masteryrecord"
)

type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) ForLearner(ctx context.Context, learner string) (map[int]float64, error) {
	recs, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.Learner(learner)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery: %w", err)
	}
	out := make(map[int]float64, len(recs))
	for _, m := range recs {
		out[m.SubtopicID] = m.Pct
	}
	return out, nil
}

func (r *masteryRepo) Upsert(ctx context.Context, rec Mastery) error {
	existing, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.Learner(rec.Learner),
			masteryrecord.SubtopicID(rec.SubtopicID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = r.client.MasteryRecord.Create().
			SetLearner(rec.Learner).
			SetSubtopicID(rec.SubtopicID).
			SetPct(rec.Pct).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("query mastery: %w", err)
	}
	if _, err := existing.Update().SetPct(rec.Pct).Save(ctx); err != nil {
		return fmt.Errorf("update mastery: %w", err)
	}
	return nil
}

type learnRateRepo struct {
	client *ent.Client
}

func (r *learnRateRepo) Get(ctx context.Context, learner string, subtopicID int) (LearningRate, error) {
	rec, err := r.client.LearningRate.Query().
		Where(
			learningrate.Learner(learner),
			learningrate.SubtopicID(subtopicID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		// Cold start: neutral scale, no prior sessions.
		return LearningRate{Learner: learner, SubtopicID: subtopicID, Scale: 1.0}, nil
	}
	if err != nil {
		return LearningRate{}, fmt.Errorf("query learning rate: %w", err)
	}
	return LearningRate{
		Learner:    rec.Learner,
		SubtopicID: rec.SubtopicID,
		Scale:      rec.Scale,
		Count:      rec.Count,
	}, nil
}

func (r *learnRateRepo) Upsert(ctx context.Context, rec LearningRate) error {
	existing, err := r.client.LearningRate.Query().
		Where(
			learningrate.Learner(rec.Learner),
			learningrate.SubtopicID(rec.SubtopicID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err = r.client.LearningRate.Create().
			SetLearner(rec.Learner).
			SetSubtopicID(rec.SubtopicID).
			SetScale(rec.Scale).
			SetCount(rec.Count).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create learning rate: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("query learning rate: %w", err)
	}
	_, err = existing.Update().
		SetScale(rec.Scale).
		SetCount(rec.Count).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update learning rate: %w", err)
	}
	return nil
}

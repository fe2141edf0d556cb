package store

import (
	"context"
	"fmt"

	"github.com/pygrounds/adaptive/ent"
	"github.com/pygrounds/adaptive/ent/topicproficiency"
	"github.com/pygrounds/adaptive/ent/zoneprogress"
)

type rollupRepo struct {
	client *ent.Client
}

func (r *rollupRepo) SaveTopics(ctx context.Context, learner string, pct map[int]float64) error {
	for topicID, p := range pct {
		existing, err := r.client.TopicProficiency.Query().
			Where(
				topicproficiency.Learner(learner),
				topicproficiency.TopicID(topicID),
			).
			Only(ctx)
		if ent.IsNotFound(err) {
			_, err = r.client.TopicProficiency.Create().
				SetLearner(learner).
				SetTopicID(topicID).
				SetPct(p).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create topic proficiency: %w", err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("query topic proficiency: %w", err)
		}
		if _, err := existing.Update().SetPct(p).Save(ctx); err != nil {
			return fmt.Errorf("update topic proficiency: %w", err)
		}
	}
	return nil
}

func (r *rollupRepo) SaveZones(ctx context.Context, learner string, pct map[int]float64) error {
	for zoneID, p := range pct {
		existing, err := r.client.ZoneProgress.Query().
			Where(
				zoneprogress.Learner(learner),
				zoneprogress.ZoneID(zoneID),
			).
			Only(ctx)
		if ent.IsNotFound(err) {
			_, err = r.client.ZoneProgress.Create().
				SetLearner(learner).
				SetZoneID(zoneID).
				SetPct(p).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create zone progress: %w", err)
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("query zone progress: %w", err)
		}
		if _, err := existing.Update().SetPct(p).Save(ctx); err != nil {
			return fmt.Errorf("update zone progress: %w", err)
		}
	}
	return nil
}

func (r *rollupRepo) TopicProficiency(ctx context.Context, learner string) (map[int]float64, error) {
	recs, err := r.client.TopicProficiency.Query().
		Where(topicproficiency.Learner(learner)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topic proficiency: %w", err)
	}
	out := make(map[int]float64, len(recs))
	for _, rec := range recs {
		out[rec.TopicID] = rec.Pct
	}
	return out, nil
}

func (r *rollupRepo) ZoneCompletion(ctx context.Context, learner string) (map[int]float64, error) {
	recs, err := r.client.ZoneProgress.Query().
		Where(zoneprogress.Learner(learner)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query zone progress: %w", err)
	}
	out := make(map[int]float64, len(recs))
	for _, rec := range recs {
		out[rec.ZoneID] = rec.Pct
	}
	return out, nil
}

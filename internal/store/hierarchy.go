package store

import (
	"context"
	"fmt"

	"github.com/pygrounds/adaptive/ent"
	"github.com/pygrounds/adaptive/internal/hierarchy"
)

type hierarchyRepo struct {
	client *ent.Client
}

func (r *hierarchyRepo) Graph(ctx context.Context) (*hierarchy.Graph, error) {
	zoneRecs, err := r.client.Zone.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query zones: %w", err)
	}
	topicRecs, err := r.client.Topic.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics: %w", err)
	}
	subRecs, err := r.client.Subtopic.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subtopics: %w", err)
	}

	zones := make([]hierarchy.Zone, 0, len(zoneRecs))
	for _, z := range zoneRecs {
		zones = append(zones, hierarchy.Zone{ID: z.ID, Name: z.Name, Order: z.Order})
	}
	topics := make([]hierarchy.Topic, 0, len(topicRecs))
	for _, t := range topicRecs {
		topics = append(topics, hierarchy.Topic{ID: t.ID, ZoneID: t.ZoneID, Name: t.Name, Order: t.Order})
	}
	subs := make([]hierarchy.Subtopic, 0, len(subRecs))
	for _, s := range subRecs {
		subs = append(subs, hierarchy.Subtopic{ID: s.ID, TopicID: s.TopicID, Name: s.Name})
	}
	return hierarchy.New(zones, topics, subs), nil
}

func (r *hierarchyRepo) Seed(ctx context.Context, zones []hierarchy.Zone, topics []hierarchy.Topic, subs []hierarchy.Subtopic) error {
	for _, z := range zones {
		err := r.client.Zone.Create().
			SetID(z.ID).
			SetName(z.Name).
			SetOrder(z.Order).
			OnConflict().
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed zone %d: %w", z.ID, err)
		}
	}
	for _, t := range topics {
		err := r.client.Topic.Create().
			SetID(t.ID).
			SetName(t.Name).
			SetZoneID(t.ZoneID).
			SetOrder(t.Order).
			OnConflict().
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed topic %d: %w", t.ID, err)
		}
	}
	for _, s := range subs {
		err := r.client.Subtopic.Create().
			SetID(s.ID).
			SetName(s.Name).
			SetTopicID(s.TopicID).
			OnConflict().
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed subtopic %d: %w", s.ID, err)
		}
	}
	return nil
}

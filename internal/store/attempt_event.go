package store

import (
	"context"
	"fmt"

	"github.com/pygrounds/adaptive/ent"
)

type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, ev AttemptEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetLearner(ev.Learner).
		SetBatchID(ev.BatchID).
		SetSubtopicIds(ev.SubtopicIDs).
		SetCorrect(ev.Correct).
		SetDifficulty(ev.Difficulty).
		SetGameType(ev.GameType).
		SetElapsed(ev.Elapsed).
		SetTimeLimit(ev.TimeLimit).
		SetMistakes(ev.Mistakes)

	if ev.ItemID != 0 {
		builder = builder.SetItemID(ev.ItemID)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

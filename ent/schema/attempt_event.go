package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded attempt as consumed by a recalibration
// batch, for audit and offline analysis.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").NotEmpty(),
		field.String("batch_id").NotEmpty(),
		field.Int("item_id").Optional(),
		field.JSON("subtopic_ids", []int{}),
		field.Bool("correct"),
		field.String("difficulty"),
		field.String("game_type"),
		field.Float("elapsed"),
		field.Float("time_limit"),
		field.Int("mistakes"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner"),
		index.Fields("batch_id"),
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryRecord holds the persisted mastery percentage for one learner and
// subtopic. Overwritten on every recalibration, never versioned.
type MasteryRecord struct {
	ent.Schema
}

func (MasteryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").NotEmpty(),
		field.Int("subtopic_id"),
		field.Float("pct"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (MasteryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner", "subtopic_id").Unique(),
	}
}

// LearningRate holds the per-learner, per-subtopic transition-probability
// scale, maintained as an exponential moving average across sessions.
type LearningRate struct {
	ent.Schema
}

func (LearningRate) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").NotEmpty(),
		field.Int("subtopic_id"),
		field.Float("scale").Default(1.0),
		field.Int("count").Default(0),
	}
}

func (LearningRate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner", "subtopic_id").Unique(),
	}
}

// Ability is the externally maintained global ability score per learner,
// read-only to the core.
type Ability struct {
	ent.Schema
}

func (Ability) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").NotEmpty().Unique(),
		field.Float("score").Default(0.5),
	}
}

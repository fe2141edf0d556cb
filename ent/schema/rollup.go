package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicProficiency is the derived per-topic roll-up of subtopic mastery.
type TopicProficiency struct {
	ent.Schema
}

func (TopicProficiency) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").NotEmpty(),
		field.Int("topic_id"),
		field.Float("pct"),
	}
}

func (TopicProficiency) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner", "topic_id").Unique(),
	}
}

// ZoneProgress is the derived per-zone completion roll-up.
type ZoneProgress struct {
	ent.Schema
}

func (ZoneProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner").NotEmpty(),
		field.Int("zone_id"),
		field.Float("pct"),
	}
}

func (ZoneProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner", "zone_id").Unique(),
	}
}

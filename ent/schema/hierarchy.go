package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Zone is the coarsest content level. IDs come from the content pipeline,
// so the id field is explicit rather than auto-generated.
type Zone struct {
	ent.Schema
}

func (Zone) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.String("name").NotEmpty(),
		field.Int("order"),
	}
}

// Topic groups subtopics within a zone.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.String("name").NotEmpty(),
		field.Int("zone_id"),
		field.Int("order"),
	}
}

func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("zone_id"),
	}
}

// Subtopic is the unit mastery is tracked against.
type Subtopic struct {
	ent.Schema
}

func (Subtopic) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.String("name").NotEmpty(),
		field.Int("topic_id"),
	}
}

func (Subtopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
	}
}

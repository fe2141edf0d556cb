package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item is a candidate practice item tied to exactly one subtopic. The
// meta map carries game-specific extension data (grid words, function
// names, and so on) that the core does not interpret beyond the
// canonical-answer write-through.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id"),
		field.Int("subtopic_id"),
		field.String("game_type").NotEmpty(),
		field.String("difficulty").Default("intermediate"),
		field.String("answer").Optional().Default(""),
		field.JSON("meta", map[string]any{}).Optional(),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subtopic_id"),
		index.Fields("game_type"),
	}
}

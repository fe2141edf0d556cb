// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AbilitiesColumns holds the columns for the "abilities" table.
	AbilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner", Type: field.TypeString, Unique: true},
		{Name: "score", Type: field.TypeFloat64, Default: 0.5},
	}
	// AbilitiesTable holds the schema information for the "abilities" table.
	AbilitiesTable = &schema.Table{
		Name:       "abilities",
		Columns:    AbilitiesColumns,
		PrimaryKey: []*schema.Column{AbilitiesColumns[0]},
	}
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "learner", Type: field.TypeString},
		{Name: "batch_id", Type: field.TypeString},
		{Name: "item_id", Type: field.TypeInt, Nullable: true},
		{Name: "subtopic_ids", Type: field.TypeJSON},
		{Name: "correct", Type: field.TypeBool},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "game_type", Type: field.TypeString},
		{Name: "elapsed", Type: field.TypeFloat64},
		{Name: "time_limit", Type: field.TypeFloat64},
		{Name: "mistakes", Type: field.TypeInt},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_learner",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_batch_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
		},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subtopic_id", Type: field.TypeInt},
		{Name: "game_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString, Default: "intermediate"},
		{Name: "answer", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_subtopic_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[1]},
			},
			{
				Name:    "item_game_type",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[2]},
			},
		},
	}
	// LearningRatesColumns holds the columns for the "learning_rates" table.
	LearningRatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeInt},
		{Name: "scale", Type: field.TypeFloat64, Default: 1},
		{Name: "count", Type: field.TypeInt, Default: 0},
	}
	// LearningRatesTable holds the schema information for the "learning_rates" table.
	LearningRatesTable = &schema.Table{
		Name:       "learning_rates",
		Columns:    LearningRatesColumns,
		PrimaryKey: []*schema.Column{LearningRatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningrate_learner_subtopic_id",
				Unique:  true,
				Columns: []*schema.Column{LearningRatesColumns[1], LearningRatesColumns[2]},
			},
		},
	}
	// MasteryRecordsColumns holds the columns for the "mastery_records" table.
	MasteryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner", Type: field.TypeString},
		{Name: "subtopic_id", Type: field.TypeInt},
		{Name: "pct", Type: field.TypeFloat64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MasteryRecordsTable holds the schema information for the "mastery_records" table.
	MasteryRecordsTable = &schema.Table{
		Name:       "mastery_records",
		Columns:    MasteryRecordsColumns,
		PrimaryKey: []*schema.Column{MasteryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryrecord_learner_subtopic_id",
				Unique:  true,
				Columns: []*schema.Column{MasteryRecordsColumns[1], MasteryRecordsColumns[2]},
			},
		},
	}
	// SubtopicsColumns holds the columns for the "subtopics" table.
	SubtopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeInt},
	}
	// SubtopicsTable holds the schema information for the "subtopics" table.
	SubtopicsTable = &schema.Table{
		Name:       "subtopics",
		Columns:    SubtopicsColumns,
		PrimaryKey: []*schema.Column{SubtopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopic_topic_id",
				Unique:  false,
				Columns: []*schema.Column{SubtopicsColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "zone_id", Type: field.TypeInt},
		{Name: "order", Type: field.TypeInt},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topic_zone_id",
				Unique:  false,
				Columns: []*schema.Column{TopicsColumns[2]},
			},
		},
	}
	// TopicProficienciesColumns holds the columns for the "topic_proficiencies" table.
	TopicProficienciesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner", Type: field.TypeString},
		{Name: "topic_id", Type: field.TypeInt},
		{Name: "pct", Type: field.TypeFloat64},
	}
	// TopicProficienciesTable holds the schema information for the "topic_proficiencies" table.
	TopicProficienciesTable = &schema.Table{
		Name:       "topic_proficiencies",
		Columns:    TopicProficienciesColumns,
		PrimaryKey: []*schema.Column{TopicProficienciesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "topicproficiency_learner_topic_id",
				Unique:  true,
				Columns: []*schema.Column{TopicProficienciesColumns[1], TopicProficienciesColumns[2]},
			},
		},
	}
	// ZonesColumns holds the columns for the "zones" table.
	ZonesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "order", Type: field.TypeInt},
	}
	// ZonesTable holds the schema information for the "zones" table.
	ZonesTable = &schema.Table{
		Name:       "zones",
		Columns:    ZonesColumns,
		PrimaryKey: []*schema.Column{ZonesColumns[0]},
	}
	// ZoneProgressesColumns holds the columns for the "zone_progresses" table.
	ZoneProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner", Type: field.TypeString},
		{Name: "zone_id", Type: field.TypeInt},
		{Name: "pct", Type: field.TypeFloat64},
	}
	// ZoneProgressesTable holds the schema information for the "zone_progresses" table.
	ZoneProgressesTable = &schema.Table{
		Name:       "zone_progresses",
		Columns:    ZoneProgressesColumns,
		PrimaryKey: []*schema.Column{ZoneProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "zoneprogress_learner_zone_id",
				Unique:  true,
				Columns: []*schema.Column{ZoneProgressesColumns[1], ZoneProgressesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AbilitiesTable,
		AttemptEventsTable,
		ItemsTable,
		LearningRatesTable,
		MasteryRecordsTable,
		SubtopicsTable,
		TopicsTable,
		TopicProficienciesTable,
		ZonesTable,
		ZoneProgressesTable,
	}
)

func init() {
}

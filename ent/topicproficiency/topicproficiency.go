// Code generated by ent, DO NOT EDIT.

package topicproficiency

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the topicproficiency type in the database.
	Label = "topic_proficiency"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearner holds the string denoting the learner field in the database.
	FieldLearner = "learner"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldPct holds the string denoting the pct field in the database.
	FieldPct = "pct"
	// Table holds the table name of the topicproficiency in the database.
	Table = "topic_proficiencies"
)

// Columns holds all SQL columns for topicproficiency fields.
var Columns = []string{
	FieldID,
	FieldLearner,
	FieldTopicID,
	FieldPct,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerValidator is a validator for the "learner" field. It is called by the builders before save.
	LearnerValidator func(string) error
)

// OrderOption defines the ordering options for the TopicProficiency queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearner orders the results by the learner field.
func ByLearner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearner, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByPct orders the results by the pct field.
func ByPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPct, opts...).ToFunc()
}

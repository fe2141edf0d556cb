// Code generated by ent, DO NOT EDIT.

package learningrate

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learningrate type in the database.
	Label = "learning_rate"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearner holds the string denoting the learner field in the database.
	FieldLearner = "learner"
	// FieldSubtopicID holds the string denoting the subtopic_id field in the database.
	FieldSubtopicID = "subtopic_id"
	// FieldScale holds the string denoting the scale field in the database.
	FieldScale = "scale"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// Table holds the table name of the learningrate in the database.
	Table = "learning_rates"
)

// Columns holds all SQL columns for learningrate fields.
var Columns = []string{
	FieldID,
	FieldLearner,
	FieldSubtopicID,
	FieldScale,
	FieldCount,
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
	// DefaultScale holds the default value on creation for the "scale" field.
	DefaultScale float64
	// DefaultCount holds the default value on creation for the "count" field.
	DefaultCount int
)

// OrderOption defines the ordering options for the LearningRate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearner orders the results by the learner field.
func ByLearner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearner, opts...).ToFunc()
}

// BySubtopicID orders the results by the subtopic_id field.
func BySubtopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtopicID, opts...).ToFunc()
}

// ByScale orders the results by the scale field.
func ByScale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScale, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}

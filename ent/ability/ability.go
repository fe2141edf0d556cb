// Code generated by ent, DO NOT EDIT.

package ability

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ability type in the database.
	Label = "ability"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearner holds the string denoting the learner field in the database.
	FieldLearner = "learner"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// Table holds the table name of the ability in the database.
	Table = "abilities"
)

// Columns holds all SQL columns for ability fields.
var Columns = []string{
	FieldID,
	FieldLearner,
	FieldScore,
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
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
)

// OrderOption defines the ordering options for the Ability queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearner orders the results by the learner field.
func ByLearner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearner, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package zoneprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the zoneprogress type in the database.
	Label = "zone_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearner holds the string denoting the learner field in the database.
	FieldLearner = "learner"
	// FieldZoneID holds the string denoting the zone_id field in the database.
	FieldZoneID = "zone_id"
	// FieldPct holds the string denoting the pct field in the database.
	FieldPct = "pct"
	// Table holds the table name of the zoneprogress in the database.
	Table = "zone_progresses"
)

// Columns holds all SQL columns for zoneprogress fields.
var Columns = []string{
	FieldID,
	FieldLearner,
	FieldZoneID,
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

// OrderOption defines the ordering options for the ZoneProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearner orders the results by the learner field.
func ByLearner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearner, opts...).ToFunc()
}

// ByZoneID orders the results by the zone_id field.
func ByZoneID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZoneID, opts...).ToFunc()
}

// ByPct orders the results by the pct field.
func ByPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPct, opts...).ToFunc()
}

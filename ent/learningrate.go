// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/learningrate"
)

// LearningRate is the model entity for the LearningRate schema.
type LearningRate struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner holds the value of the "learner" field.
	Learner string `json:"learner,omitempty"`
	// SubtopicID holds the value of the "subtopic_id" field.
	SubtopicID int `json:"subtopic_id,omitempty"`
	// Scale holds the value of the "scale" field.
	Scale float64 `json:"scale,omitempty"`
	// Count holds the value of the "count" field.
	Count        int `json:"count,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningRate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningrate.FieldScale:
			values[i] = new(sql.NullFloat64)
		case learningrate.FieldID, learningrate.FieldSubtopicID, learningrate.FieldCount:
			values[i] = new(sql.NullInt64)
		case learningrate.FieldLearner:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningRate fields.
func (lr *LearningRate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningrate.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			lr.ID = int(value.Int64)
		case learningrate.FieldLearner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner", values[i])
			} else if value.Valid {
				lr.Learner = value.String
			}
		case learningrate.FieldSubtopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_id", values[i])
			} else if value.Valid {
				lr.SubtopicID = int(value.Int64)
			}
		case learningrate.FieldScale:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field scale", values[i])
			} else if value.Valid {
				lr.Scale = value.Float64
			}
		case learningrate.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				lr.Count = int(value.Int64)
			}
		default:
			lr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningRate.
// This includes values selected through modifiers, order, etc.
func (lr *LearningRate) Value(name string) (ent.Value, error) {
	return lr.selectValues.Get(name)
}

// Update returns a builder for updating this LearningRate.
// Note that you need to call LearningRate.Unwrap() before calling this method if this LearningRate
// was returned from a transaction, and the transaction was committed or rolled back.
func (lr *LearningRate) Update() *LearningRateUpdateOne {
	return NewLearningRateClient(lr.config).UpdateOne(lr)
}

// Unwrap unwraps the LearningRate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (lr *LearningRate) Unwrap() *LearningRate {
	_tx, ok := lr.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningRate is not a transactional entity")
	}
	lr.config.driver = _tx.drv
	return lr
}

// String implements the fmt.Stringer.
func (lr *LearningRate) String() string {
	var builder strings.Builder
	builder.WriteString("LearningRate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", lr.ID))
	builder.WriteString("learner=")
	builder.WriteString(lr.Learner)
	builder.WriteString(", ")
	builder.WriteString("subtopic_id=")
	builder.WriteString(fmt.Sprintf("%v", lr.SubtopicID))
	builder.WriteString(", ")
	builder.WriteString("scale=")
	builder.WriteString(fmt.Sprintf("%v", lr.Scale))
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", lr.Count))
	builder.WriteByte(')')
	return builder.String()
}

// LearningRates is a parsable slice of LearningRate.
type LearningRates []*LearningRate

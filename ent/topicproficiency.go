// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/topicproficiency"
)

// TopicProficiency is the model entity for the TopicProficiency schema.
type TopicProficiency struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner holds the value of the "learner" field.
	Learner string `json:"learner,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID int `json:"topic_id,omitempty"`
	// Pct holds the value of the "pct" field.
	Pct          float64 `json:"pct,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicProficiency) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicproficiency.FieldPct:
			values[i] = new(sql.NullFloat64)
		case topicproficiency.FieldID, topicproficiency.FieldTopicID:
			values[i] = new(sql.NullInt64)
		case topicproficiency.FieldLearner:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicProficiency fields.
func (tp *TopicProficiency) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicproficiency.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			tp.ID = int(value.Int64)
		case topicproficiency.FieldLearner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner", values[i])
			} else if value.Valid {
				tp.Learner = value.String
			}
		case topicproficiency.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				tp.TopicID = int(value.Int64)
			}
		case topicproficiency.FieldPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pct", values[i])
			} else if value.Valid {
				tp.Pct = value.Float64
			}
		default:
			tp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicProficiency.
// This includes values selected through modifiers, order, etc.
func (tp *TopicProficiency) Value(name string) (ent.Value, error) {
	return tp.selectValues.Get(name)
}

// Update returns a builder for updating this TopicProficiency.
// Note that you need to call TopicProficiency.Unwrap() before calling this method if this TopicProficiency
// was returned from a transaction, and the transaction was committed or rolled back.
func (tp *TopicProficiency) Update() *TopicProficiencyUpdateOne {
	return NewTopicProficiencyClient(tp.config).UpdateOne(tp)
}

// Unwrap unwraps the TopicProficiency entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (tp *TopicProficiency) Unwrap() *TopicProficiency {
	_tx, ok := tp.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicProficiency is not a transactional entity")
	}
	tp.config.driver = _tx.drv
	return tp
}

// String implements the fmt.Stringer.
func (tp *TopicProficiency) String() string {
	var builder strings.Builder
	builder.WriteString("TopicProficiency(")
	builder.WriteString(fmt.Sprintf("id=%v, ", tp.ID))
	builder.WriteString("learner=")
	builder.WriteString(tp.Learner)
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", tp.TopicID))
	builder.WriteString(", ")
	builder.WriteString("pct=")
	builder.WriteString(fmt.Sprintf("%v", tp.Pct))
	builder.WriteByte(')')
	return builder.String()
}

// TopicProficiencies is a parsable slice of TopicProficiency.
type TopicProficiencies []*TopicProficiency

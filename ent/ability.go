// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/ability"
)

// Ability is the model entity for the Ability schema.
type Ability struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner holds the value of the "learner" field.
	Learner string `json:"learner,omitempty"`
	// Score holds the value of the "score" field.
	Score        float64 `json:"score,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Ability) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ability.FieldScore:
			values[i] = new(sql.NullFloat64)
		case ability.FieldID:
			values[i] = new(sql.NullInt64)
		case ability.FieldLearner:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Ability fields.
func (a *Ability) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ability.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			a.ID = int(value.Int64)
		case ability.FieldLearner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner", values[i])
			} else if value.Valid {
				a.Learner = value.String
			}
		case ability.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				a.Score = value.Float64
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Ability.
// This includes values selected through modifiers, order, etc.
func (a *Ability) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// Update returns a builder for updating this Ability.
// Note that you need to call Ability.Unwrap() before calling this method if this Ability
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Ability) Update() *AbilityUpdateOne {
	return NewAbilityClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Ability entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Ability) Unwrap() *Ability {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Ability is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Ability) String() string {
	var builder strings.Builder
	builder.WriteString("Ability(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("learner=")
	builder.WriteString(a.Learner)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", a.Score))
	builder.WriteByte(')')
	return builder.String()
}

// Abilities is a parsable slice of Ability.
type Abilities []*Ability

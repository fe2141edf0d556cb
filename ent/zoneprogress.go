// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/zoneprogress"
)

// ZoneProgress is the model entity for the ZoneProgress schema.
type ZoneProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Learner holds the value of the "learner" field.
	Learner string `json:"learner,omitempty"`
	// ZoneID holds the value of the "zone_id" field.
	ZoneID int `json:"zone_id,omitempty"`
	// Pct holds the value of the "pct" field.
	Pct          float64 `json:"pct,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ZoneProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case zoneprogress.FieldPct:
			values[i] = new(sql.NullFloat64)
		case zoneprogress.FieldID, zoneprogress.FieldZoneID:
			values[i] = new(sql.NullInt64)
		case zoneprogress.FieldLearner:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ZoneProgress fields.
func (zp *ZoneProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case zoneprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			zp.ID = int(value.Int64)
		case zoneprogress.FieldLearner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner", values[i])
			} else if value.Valid {
				zp.Learner = value.String
			}
		case zoneprogress.FieldZoneID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field zone_id", values[i])
			} else if value.Valid {
				zp.ZoneID = int(value.Int64)
			}
		case zoneprogress.FieldPct:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field pct", values[i])
			} else if value.Valid {
				zp.Pct = value.Float64
			}
		default:
			zp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ZoneProgress.
// This includes values selected through modifiers, order, etc.
func (zp *ZoneProgress) Value(name string) (ent.Value, error) {
	return zp.selectValues.Get(name)
}

// Update returns a builder for updating this ZoneProgress.
// Note that you need to call ZoneProgress.Unwrap() before calling this method if this ZoneProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (zp *ZoneProgress) Update() *ZoneProgressUpdateOne {
	return NewZoneProgressClient(zp.config).UpdateOne(zp)
}

// Unwrap unwraps the ZoneProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (zp *ZoneProgress) Unwrap() *ZoneProgress {
	_tx, ok := zp.config.driver.(*txDriver)
	if !ok {
		panic("ent: ZoneProgress is not a transactional entity")
	}
	zp.config.driver = _tx.drv
	return zp
}

// String implements the fmt.Stringer.
func (zp *ZoneProgress) String() string {
	var builder strings.Builder
	builder.WriteString("ZoneProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", zp.ID))
	builder.WriteString("learner=")
	builder.WriteString(zp.Learner)
	builder.WriteString(", ")
	builder.WriteString("zone_id=")
	builder.WriteString(fmt.Sprintf("%v", zp.ZoneID))
	builder.WriteString(", ")
	builder.WriteString("pct=")
	builder.WriteString(fmt.Sprintf("%v", zp.Pct))
	builder.WriteByte(')')
	return builder.String()
}

// ZoneProgresses is a parsable slice of ZoneProgress.
type ZoneProgresses []*ZoneProgress

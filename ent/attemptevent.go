// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/attemptevent"
)

// AttemptEvent is the model entity for the AttemptEvent schema.
type AttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Learner holds the value of the "learner" field.
	Learner string `json:"learner,omitempty"`
	// BatchID holds the value of the "batch_id" field.
	BatchID string `json:"batch_id,omitempty"`
	// ItemID holds the value of the "item_id" field.
	ItemID int `json:"item_id,omitempty"`
	// SubtopicIds holds the value of the "subtopic_ids" field.
	SubtopicIds []int `json:"subtopic_ids,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// GameType holds the value of the "game_type" field.
	GameType string `json:"game_type,omitempty"`
	// Elapsed holds the value of the "elapsed" field.
	Elapsed float64 `json:"elapsed,omitempty"`
	// TimeLimit holds the value of the "time_limit" field.
	TimeLimit float64 `json:"time_limit,omitempty"`
	// Mistakes holds the value of the "mistakes" field.
	Mistakes     int `json:"mistakes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldSubtopicIds:
			values[i] = new([]byte)
		case attemptevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case attemptevent.FieldElapsed, attemptevent.FieldTimeLimit:
			values[i] = new(sql.NullFloat64)
		case attemptevent.FieldID, attemptevent.FieldSequence, attemptevent.FieldItemID, attemptevent.FieldMistakes:
			values[i] = new(sql.NullInt64)
		case attemptevent.FieldLearner, attemptevent.FieldBatchID, attemptevent.FieldDifficulty, attemptevent.FieldGameType:
			values[i] = new(sql.NullString)
		case attemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptEvent fields.
func (ae *AttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ae.ID = int(value.Int64)
		case attemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ae.Sequence = value.Int64
			}
		case attemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ae.Timestamp = value.Time
			}
		case attemptevent.FieldLearner:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner", values[i])
			} else if value.Valid {
				ae.Learner = value.String
			}
		case attemptevent.FieldBatchID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field batch_id", values[i])
			} else if value.Valid {
				ae.BatchID = value.String
			}
		case attemptevent.FieldItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_id", values[i])
			} else if value.Valid {
				ae.ItemID = int(value.Int64)
			}
		case attemptevent.FieldSubtopicIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ae.SubtopicIds); err != nil {
					return fmt.Errorf("unmarshal field subtopic_ids: %w", err)
				}
			}
		case attemptevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				ae.Correct = value.Bool
			}
		case attemptevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				ae.Difficulty = value.String
			}
		case attemptevent.FieldGameType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_type", values[i])
			} else if value.Valid {
				ae.GameType = value.String
			}
		case attemptevent.FieldElapsed:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed", values[i])
			} else if value.Valid {
				ae.Elapsed = value.Float64
			}
		case attemptevent.FieldTimeLimit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_limit", values[i])
			} else if value.Valid {
				ae.TimeLimit = value.Float64
			}
		case attemptevent.FieldMistakes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mistakes", values[i])
			} else if value.Valid {
				ae.Mistakes = int(value.Int64)
			}
		default:
			ae.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptEvent.
// This includes values selected through modifiers, order, etc.
func (ae *AttemptEvent) Value(name string) (ent.Value, error) {
	return ae.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptEvent.
// Note that you need to call AttemptEvent.Unwrap() before calling this method if this AttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ae *AttemptEvent) Update() *AttemptEventUpdateOne {
	return NewAttemptEventClient(ae.config).UpdateOne(ae)
}

// Unwrap unwraps the AttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ae *AttemptEvent) Unwrap() *AttemptEvent {
	_tx, ok := ae.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptEvent is not a transactional entity")
	}
	ae.config.driver = _tx.drv
	return ae
}

// String implements the fmt.Stringer.
func (ae *AttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ae.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ae.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ae.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner=")
	builder.WriteString(ae.Learner)
	builder.WriteString(", ")
	builder.WriteString("batch_id=")
	builder.WriteString(ae.BatchID)
	builder.WriteString(", ")
	builder.WriteString("item_id=")
	builder.WriteString(fmt.Sprintf("%v", ae.ItemID))
	builder.WriteString(", ")
	builder.WriteString("subtopic_ids=")
	builder.WriteString(fmt.Sprintf("%v", ae.SubtopicIds))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", ae.Correct))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(ae.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("game_type=")
	builder.WriteString(ae.GameType)
	builder.WriteString(", ")
	builder.WriteString("elapsed=")
	builder.WriteString(fmt.Sprintf("%v", ae.Elapsed))
	builder.WriteString(", ")
	builder.WriteString("time_limit=")
	builder.WriteString(fmt.Sprintf("%v", ae.TimeLimit))
	builder.WriteString(", ")
	builder.WriteString("mistakes=")
	builder.WriteString(fmt.Sprintf("%v", ae.Mistakes))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptEvents is a parsable slice of AttemptEvent.
type AttemptEvents []*AttemptEvent

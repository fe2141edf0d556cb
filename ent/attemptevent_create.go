// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (aec *AttemptEventCreate) SetSequence(i int64) *AttemptEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetTimestamp sets the "timestamp" field.
func (aec *AttemptEventCreate) SetTimestamp(t time.Time) *AttemptEventCreate {
	aec.mutation.SetTimestamp(t)
	return aec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableTimestamp(t *time.Time) *AttemptEventCreate {
	if t != nil {
		aec.SetTimestamp(*t)
	}
	return aec
}

// SetLearner sets the "learner" field.
func (aec *AttemptEventCreate) SetLearner(s string) *AttemptEventCreate {
	aec.mutation.SetLearner(s)
	return aec
}

// SetBatchID sets the "batch_id" field.
func (aec *AttemptEventCreate) SetBatchID(s string) *AttemptEventCreate {
	aec.mutation.SetBatchID(s)
	return aec
}

// SetItemID sets the "item_id" field.
func (aec *AttemptEventCreate) SetItemID(i int) *AttemptEventCreate {
	aec.mutation.SetItemID(i)
	return aec
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableItemID(i *int) *AttemptEventCreate {
	if i != nil {
		aec.SetItemID(*i)
	}
	return aec
}

// SetSubtopicIds sets the "subtopic_ids" field.
func (aec *AttemptEventCreate) SetSubtopicIds(i []int) *AttemptEventCreate {
	aec.mutation.SetSubtopicIds(i)
	return aec
}

// SetCorrect sets the "correct" field.
func (aec *AttemptEventCreate) SetCorrect(b bool) *AttemptEventCreate {
	aec.mutation.SetCorrect(b)
	return aec
}

// SetDifficulty sets the "difficulty" field.
func (aec *AttemptEventCreate) SetDifficulty(s string) *AttemptEventCreate {
	aec.mutation.SetDifficulty(s)
	return aec
}

// SetGameType sets the "game_type" field.
func (aec *AttemptEventCreate) SetGameType(s string) *AttemptEventCreate {
	aec.mutation.SetGameType(s)
	return aec
}

// SetElapsed sets the "elapsed" field.
func (aec *AttemptEventCreate) SetElapsed(f float64) *AttemptEventCreate {
	aec.mutation.SetElapsed(f)
	return aec
}

// SetTimeLimit sets the "time_limit" field.
func (aec *AttemptEventCreate) SetTimeLimit(f float64) *AttemptEventCreate {
	aec.mutation.SetTimeLimit(f)
	return aec
}

// SetMistakes sets the "mistakes" field.
func (aec *AttemptEventCreate) SetMistakes(i int) *AttemptEventCreate {
	aec.mutation.SetMistakes(i)
	return aec
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aec *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return aec.mutation
}

// Save creates the AttemptEvent in the database.
func (aec *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AttemptEventCreate) defaults() {
	if _, ok := aec.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		aec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AttemptEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := aec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := aec.mutation.Learner(); !ok {
		return &ValidationError{Name: "learner", err: errors.New(`ent: missing required field "AttemptEvent.learner"`)}
	}
	if v, ok := aec.mutation.Learner(); ok {
		if err := attemptevent.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner": %w`, err)}
		}
	}
	if _, ok := aec.mutation.BatchID(); !ok {
		return &ValidationError{Name: "batch_id", err: errors.New(`ent: missing required field "AttemptEvent.batch_id"`)}
	}
	if v, ok := aec.mutation.BatchID(); ok {
		if err := attemptevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.batch_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.SubtopicIds(); !ok {
		return &ValidationError{Name: "subtopic_ids", err: errors.New(`ent: missing required field "AttemptEvent.subtopic_ids"`)}
	}
	if _, ok := aec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := aec.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AttemptEvent.difficulty"`)}
	}
	if _, ok := aec.mutation.GameType(); !ok {
		return &ValidationError{Name: "game_type", err: errors.New(`ent: missing required field "AttemptEvent.game_type"`)}
	}
	if _, ok := aec.mutation.Elapsed(); !ok {
		return &ValidationError{Name: "elapsed", err: errors.New(`ent: missing required field "AttemptEvent.elapsed"`)}
	}
	if _, ok := aec.mutation.TimeLimit(); !ok {
		return &ValidationError{Name: "time_limit", err: errors.New(`ent: missing required field "AttemptEvent.time_limit"`)}
	}
	if _, ok := aec.mutation.Mistakes(); !ok {
		return &ValidationError{Name: "mistakes", err: errors.New(`ent: missing required field "AttemptEvent.mistakes"`)}
	}
	return nil
}

func (aec *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = aec.conflict
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := aec.mutation.Learner(); ok {
		_spec.SetField(attemptevent.FieldLearner, field.TypeString, value)
		_node.Learner = value
	}
	if value, ok := aec.mutation.BatchID(); ok {
		_spec.SetField(attemptevent.FieldBatchID, field.TypeString, value)
		_node.BatchID = value
	}
	if value, ok := aec.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeInt, value)
		_node.ItemID = value
	}
	if value, ok := aec.mutation.SubtopicIds(); ok {
		_spec.SetField(attemptevent.FieldSubtopicIds, field.TypeJSON, value)
		_node.SubtopicIds = value
	}
	if value, ok := aec.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := aec.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := aec.mutation.GameType(); ok {
		_spec.SetField(attemptevent.FieldGameType, field.TypeString, value)
		_node.GameType = value
	}
	if value, ok := aec.mutation.Elapsed(); ok {
		_spec.SetField(attemptevent.FieldElapsed, field.TypeFloat64, value)
		_node.Elapsed = value
	}
	if value, ok := aec.mutation.TimeLimit(); ok {
		_spec.SetField(attemptevent.FieldTimeLimit, field.TypeFloat64, value)
		_node.TimeLimit = value
	}
	if value, ok := aec.mutation.Mistakes(); ok {
		_spec.SetField(attemptevent.FieldMistakes, field.TypeInt, value)
		_node.Mistakes = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (aec *AttemptEventCreate) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertOne {
	aec.conflict = opts
	return &AttemptEventUpsertOne{
		create: aec,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (aec *AttemptEventCreate) OnConflictColumns(columns ...string) *AttemptEventUpsertOne {
	aec.conflict = append(aec.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertOne{
		create: aec,
	}
}

type (
	// AttemptEventUpsertOne is the builder for "upsert"-ing
	//  one AttemptEvent node.
	AttemptEventUpsertOne struct {
		create *AttemptEventCreate
	}

	// AttemptEventUpsert is the "OnConflict" setter.
	AttemptEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearner sets the "learner" field.
func (u *AttemptEventUpsert) SetLearner(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldLearner, v)
	return u
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateLearner() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldLearner)
	return u
}

// SetBatchID sets the "batch_id" field.
func (u *AttemptEventUpsert) SetBatchID(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldBatchID, v)
	return u
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateBatchID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldBatchID)
	return u
}

// SetItemID sets the "item_id" field.
func (u *AttemptEventUpsert) SetItemID(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldItemID, v)
	return u
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateItemID() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldItemID)
	return u
}

// AddItemID adds v to the "item_id" field.
func (u *AttemptEventUpsert) AddItemID(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldItemID, v)
	return u
}

// ClearItemID clears the value of the "item_id" field.
func (u *AttemptEventUpsert) ClearItemID() *AttemptEventUpsert {
	u.SetNull(attemptevent.FieldItemID)
	return u
}

// SetSubtopicIds sets the "subtopic_ids" field.
func (u *AttemptEventUpsert) SetSubtopicIds(v []int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldSubtopicIds, v)
	return u
}

// UpdateSubtopicIds sets the "subtopic_ids" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateSubtopicIds() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldSubtopicIds)
	return u
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsert) SetCorrect(v bool) *AttemptEventUpsert {
	u.Set(attemptevent.FieldCorrect, v)
	return u
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateCorrect() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldCorrect)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *AttemptEventUpsert) SetDifficulty(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateDifficulty() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldDifficulty)
	return u
}

// SetGameType sets the "game_type" field.
func (u *AttemptEventUpsert) SetGameType(v string) *AttemptEventUpsert {
	u.Set(attemptevent.FieldGameType, v)
	return u
}

// UpdateGameType sets the "game_type" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateGameType() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldGameType)
	return u
}

// SetElapsed sets the "elapsed" field.
func (u *AttemptEventUpsert) SetElapsed(v float64) *AttemptEventUpsert {
	u.Set(attemptevent.FieldElapsed, v)
	return u
}

// UpdateElapsed sets the "elapsed" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateElapsed() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldElapsed)
	return u
}

// AddElapsed adds v to the "elapsed" field.
func (u *AttemptEventUpsert) AddElapsed(v float64) *AttemptEventUpsert {
	u.Add(attemptevent.FieldElapsed, v)
	return u
}

// SetTimeLimit sets the "time_limit" field.
func (u *AttemptEventUpsert) SetTimeLimit(v float64) *AttemptEventUpsert {
	u.Set(attemptevent.FieldTimeLimit, v)
	return u
}

// UpdateTimeLimit sets the "time_limit" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateTimeLimit() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldTimeLimit)
	return u
}

// AddTimeLimit adds v to the "time_limit" field.
func (u *AttemptEventUpsert) AddTimeLimit(v float64) *AttemptEventUpsert {
	u.Add(attemptevent.FieldTimeLimit, v)
	return u
}

// SetMistakes sets the "mistakes" field.
func (u *AttemptEventUpsert) SetMistakes(v int) *AttemptEventUpsert {
	u.Set(attemptevent.FieldMistakes, v)
	return u
}

// UpdateMistakes sets the "mistakes" field to the value that was provided on create.
func (u *AttemptEventUpsert) UpdateMistakes() *AttemptEventUpsert {
	u.SetExcluded(attemptevent.FieldMistakes)
	return u
}

// AddMistakes adds v to the "mistakes" field.
func (u *AttemptEventUpsert) AddMistakes(v int) *AttemptEventUpsert {
	u.Add(attemptevent.FieldMistakes, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertOne) UpdateNewValues() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(attemptevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(attemptevent.FieldTimestamp)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttemptEventUpsertOne) Ignore() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertOne) DoNothing() *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreate.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertOne) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *AttemptEventUpsertOne) SetLearner(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateLearner() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLearner()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *AttemptEventUpsertOne) SetBatchID(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateBatchID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateBatchID()
	})
}

// SetItemID sets the "item_id" field.
func (u *AttemptEventUpsertOne) SetItemID(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetItemID(v)
	})
}

// AddItemID adds v to the "item_id" field.
func (u *AttemptEventUpsertOne) AddItemID(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateItemID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateItemID()
	})
}

// ClearItemID clears the value of the "item_id" field.
func (u *AttemptEventUpsertOne) ClearItemID() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.ClearItemID()
	})
}

// SetSubtopicIds sets the "subtopic_ids" field.
func (u *AttemptEventUpsertOne) SetSubtopicIds(v []int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSubtopicIds(v)
	})
}

// UpdateSubtopicIds sets the "subtopic_ids" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateSubtopicIds() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSubtopicIds()
	})
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsertOne) SetCorrect(v bool) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateCorrect() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *AttemptEventUpsertOne) SetDifficulty(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateDifficulty() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateDifficulty()
	})
}

// SetGameType sets the "game_type" field.
func (u *AttemptEventUpsertOne) SetGameType(v string) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetGameType(v)
	})
}

// UpdateGameType sets the "game_type" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateGameType() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateGameType()
	})
}

// SetElapsed sets the "elapsed" field.
func (u *AttemptEventUpsertOne) SetElapsed(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetElapsed(v)
	})
}

// AddElapsed adds v to the "elapsed" field.
func (u *AttemptEventUpsertOne) AddElapsed(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddElapsed(v)
	})
}

// UpdateElapsed sets the "elapsed" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateElapsed() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateElapsed()
	})
}

// SetTimeLimit sets the "time_limit" field.
func (u *AttemptEventUpsertOne) SetTimeLimit(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTimeLimit(v)
	})
}

// AddTimeLimit adds v to the "time_limit" field.
func (u *AttemptEventUpsertOne) AddTimeLimit(v float64) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddTimeLimit(v)
	})
}

// UpdateTimeLimit sets the "time_limit" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateTimeLimit() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTimeLimit()
	})
}

// SetMistakes sets the "mistakes" field.
func (u *AttemptEventUpsertOne) SetMistakes(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetMistakes(v)
	})
}

// AddMistakes adds v to the "mistakes" field.
func (u *AttemptEventUpsertOne) AddMistakes(v int) *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddMistakes(v)
	})
}

// UpdateMistakes sets the "mistakes" field to the value that was provided on create.
func (u *AttemptEventUpsertOne) UpdateMistakes() *AttemptEventUpsertOne {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateMistakes()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttemptEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttemptEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
	conflict []sql.ConflictOption
}

// Save creates the AttemptEvent entities in the database.
func (aecb *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AttemptEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = aecb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AttemptEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttemptEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (aecb *AttemptEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttemptEventUpsertBulk {
	aecb.conflict = opts
	return &AttemptEventUpsertBulk{
		create: aecb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (aecb *AttemptEventCreateBulk) OnConflictColumns(columns ...string) *AttemptEventUpsertBulk {
	aecb.conflict = append(aecb.conflict, sql.ConflictColumns(columns...))
	return &AttemptEventUpsertBulk{
		create: aecb,
	}
}

// AttemptEventUpsertBulk is the builder for "upsert"-ing
// a bulk of AttemptEvent nodes.
type AttemptEventUpsertBulk struct {
	create *AttemptEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) UpdateNewValues() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(attemptevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(attemptevent.FieldTimestamp)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AttemptEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttemptEventUpsertBulk) Ignore() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttemptEventUpsertBulk) DoNothing() *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttemptEventCreateBulk.OnConflict
// documentation for more info.
func (u *AttemptEventUpsertBulk) Update(set func(*AttemptEventUpsert)) *AttemptEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttemptEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *AttemptEventUpsertBulk) SetLearner(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateLearner() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateLearner()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *AttemptEventUpsertBulk) SetBatchID(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateBatchID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateBatchID()
	})
}

// SetItemID sets the "item_id" field.
func (u *AttemptEventUpsertBulk) SetItemID(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetItemID(v)
	})
}

// AddItemID adds v to the "item_id" field.
func (u *AttemptEventUpsertBulk) AddItemID(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddItemID(v)
	})
}

// UpdateItemID sets the "item_id" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateItemID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateItemID()
	})
}

// ClearItemID clears the value of the "item_id" field.
func (u *AttemptEventUpsertBulk) ClearItemID() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.ClearItemID()
	})
}

// SetSubtopicIds sets the "subtopic_ids" field.
func (u *AttemptEventUpsertBulk) SetSubtopicIds(v []int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetSubtopicIds(v)
	})
}

// UpdateSubtopicIds sets the "subtopic_ids" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateSubtopicIds() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateSubtopicIds()
	})
}

// SetCorrect sets the "correct" field.
func (u *AttemptEventUpsertBulk) SetCorrect(v bool) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetCorrect(v)
	})
}

// UpdateCorrect sets the "correct" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateCorrect() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateCorrect()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *AttemptEventUpsertBulk) SetDifficulty(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateDifficulty() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateDifficulty()
	})
}

// SetGameType sets the "game_type" field.
func (u *AttemptEventUpsertBulk) SetGameType(v string) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetGameType(v)
	})
}

// UpdateGameType sets the "game_type" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateGameType() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateGameType()
	})
}

// SetElapsed sets the "elapsed" field.
func (u *AttemptEventUpsertBulk) SetElapsed(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetElapsed(v)
	})
}

// AddElapsed adds v to the "elapsed" field.
func (u *AttemptEventUpsertBulk) AddElapsed(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddElapsed(v)
	})
}

// UpdateElapsed sets the "elapsed" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateElapsed() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateElapsed()
	})
}

// SetTimeLimit sets the "time_limit" field.
func (u *AttemptEventUpsertBulk) SetTimeLimit(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetTimeLimit(v)
	})
}

// AddTimeLimit adds v to the "time_limit" field.
func (u *AttemptEventUpsertBulk) AddTimeLimit(v float64) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddTimeLimit(v)
	})
}

// UpdateTimeLimit sets the "time_limit" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateTimeLimit() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateTimeLimit()
	})
}

// SetMistakes sets the "mistakes" field.
func (u *AttemptEventUpsertBulk) SetMistakes(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.SetMistakes(v)
	})
}

// AddMistakes adds v to the "mistakes" field.
func (u *AttemptEventUpsertBulk) AddMistakes(v int) *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.AddMistakes(v)
	})
}

// UpdateMistakes sets the "mistakes" field to the value that was provided on create.
func (u *AttemptEventUpsertBulk) UpdateMistakes() *AttemptEventUpsertBulk {
	return u.Update(func(s *AttemptEventUpsert) {
		s.UpdateMistakes()
	})
}

// Exec executes the query.
func (u *AttemptEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttemptEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttemptEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttemptEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

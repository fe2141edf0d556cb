// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/attemptevent"
	"github.com/pygrounds/adaptive/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeu *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetLearner sets the "learner" field.
func (aeu *AttemptEventUpdate) SetLearner(s string) *AttemptEventUpdate {
	aeu.mutation.SetLearner(s)
	return aeu
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableLearner(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetLearner(*s)
	}
	return aeu
}

// SetBatchID sets the "batch_id" field.
func (aeu *AttemptEventUpdate) SetBatchID(s string) *AttemptEventUpdate {
	aeu.mutation.SetBatchID(s)
	return aeu
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableBatchID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetBatchID(*s)
	}
	return aeu
}

// SetItemID sets the "item_id" field.
func (aeu *AttemptEventUpdate) SetItemID(i int) *AttemptEventUpdate {
	aeu.mutation.ResetItemID()
	aeu.mutation.SetItemID(i)
	return aeu
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableItemID(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetItemID(*i)
	}
	return aeu
}

// AddItemID adds i to the "item_id" field.
func (aeu *AttemptEventUpdate) AddItemID(i int) *AttemptEventUpdate {
	aeu.mutation.AddItemID(i)
	return aeu
}

// ClearItemID clears the value of the "item_id" field.
func (aeu *AttemptEventUpdate) ClearItemID() *AttemptEventUpdate {
	aeu.mutation.ClearItemID()
	return aeu
}

// SetSubtopicIds sets the "subtopic_ids" field.
func (aeu *AttemptEventUpdate) SetSubtopicIds(i []int) *AttemptEventUpdate {
	aeu.mutation.SetSubtopicIds(i)
	return aeu
}

// AppendSubtopicIds appends i to the "subtopic_ids" field.
func (aeu *AttemptEventUpdate) AppendSubtopicIds(i []int) *AttemptEventUpdate {
	aeu.mutation.AppendSubtopicIds(i)
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AttemptEventUpdate) SetCorrect(b bool) *AttemptEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableCorrect(b *bool) *AttemptEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// SetDifficulty sets the "difficulty" field.
func (aeu *AttemptEventUpdate) SetDifficulty(s string) *AttemptEventUpdate {
	aeu.mutation.SetDifficulty(s)
	return aeu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableDifficulty(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetDifficulty(*s)
	}
	return aeu
}

// SetGameType sets the "game_type" field.
func (aeu *AttemptEventUpdate) SetGameType(s string) *AttemptEventUpdate {
	aeu.mutation.SetGameType(s)
	return aeu
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableGameType(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetGameType(*s)
	}
	return aeu
}

// SetElapsed sets the "elapsed" field.
func (aeu *AttemptEventUpdate) SetElapsed(f float64) *AttemptEventUpdate {
	aeu.mutation.ResetElapsed()
	aeu.mutation.SetElapsed(f)
	return aeu
}

// SetNillableElapsed sets the "elapsed" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableElapsed(f *float64) *AttemptEventUpdate {
	if f != nil {
		aeu.SetElapsed(*f)
	}
	return aeu
}

// AddElapsed adds f to the "elapsed" field.
func (aeu *AttemptEventUpdate) AddElapsed(f float64) *AttemptEventUpdate {
	aeu.mutation.AddElapsed(f)
	return aeu
}

// SetTimeLimit sets the "time_limit" field.
func (aeu *AttemptEventUpdate) SetTimeLimit(f float64) *AttemptEventUpdate {
	aeu.mutation.ResetTimeLimit()
	aeu.mutation.SetTimeLimit(f)
	return aeu
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableTimeLimit(f *float64) *AttemptEventUpdate {
	if f != nil {
		aeu.SetTimeLimit(*f)
	}
	return aeu
}

// AddTimeLimit adds f to the "time_limit" field.
func (aeu *AttemptEventUpdate) AddTimeLimit(f float64) *AttemptEventUpdate {
	aeu.mutation.AddTimeLimit(f)
	return aeu
}

// SetMistakes sets the "mistakes" field.
func (aeu *AttemptEventUpdate) SetMistakes(i int) *AttemptEventUpdate {
	aeu.mutation.ResetMistakes()
	aeu.mutation.SetMistakes(i)
	return aeu
}

// SetNillableMistakes sets the "mistakes" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableMistakes(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetMistakes(*i)
	}
	return aeu
}

// AddMistakes adds i to the "mistakes" field.
func (aeu *AttemptEventUpdate) AddMistakes(i int) *AttemptEventUpdate {
	aeu.mutation.AddMistakes(i)
	return aeu
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeu *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AttemptEventUpdate) check() error {
	if v, ok := aeu.mutation.Learner(); ok {
		if err := attemptevent.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.BatchID(); ok {
		if err := attemptevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.batch_id": %w`, err)}
		}
	}
	return nil
}

func (aeu *AttemptEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.Learner(); ok {
		_spec.SetField(attemptevent.FieldLearner, field.TypeString, value)
	}
	if value, ok := aeu.mutation.BatchID(); ok {
		_spec.SetField(attemptevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedItemID(); ok {
		_spec.AddField(attemptevent.FieldItemID, field.TypeInt, value)
	}
	if aeu.mutation.ItemIDCleared() {
		_spec.ClearField(attemptevent.FieldItemID, field.TypeInt)
	}
	if value, ok := aeu.mutation.SubtopicIds(); ok {
		_spec.SetField(attemptevent.FieldSubtopicIds, field.TypeJSON, value)
	}
	if value, ok := aeu.mutation.AppendedSubtopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldSubtopicIds, value)
		})
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := aeu.mutation.GameType(); ok {
		_spec.SetField(attemptevent.FieldGameType, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Elapsed(); ok {
		_spec.SetField(attemptevent.FieldElapsed, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.AddedElapsed(); ok {
		_spec.AddField(attemptevent.FieldElapsed, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.TimeLimit(); ok {
		_spec.SetField(attemptevent.FieldTimeLimit, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.AddedTimeLimit(); ok {
		_spec.AddField(attemptevent.FieldTimeLimit, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.Mistakes(); ok {
		_spec.SetField(attemptevent.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedMistakes(); ok {
		_spec.AddField(attemptevent.FieldMistakes, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetLearner sets the "learner" field.
func (aeuo *AttemptEventUpdateOne) SetLearner(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetLearner(s)
	return aeuo
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableLearner(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetLearner(*s)
	}
	return aeuo
}

// SetBatchID sets the "batch_id" field.
func (aeuo *AttemptEventUpdateOne) SetBatchID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetBatchID(s)
	return aeuo
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableBatchID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetBatchID(*s)
	}
	return aeuo
}

// SetItemID sets the "item_id" field.
func (aeuo *AttemptEventUpdateOne) SetItemID(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetItemID()
	aeuo.mutation.SetItemID(i)
	return aeuo
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableItemID(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetItemID(*i)
	}
	return aeuo
}

// AddItemID adds i to the "item_id" field.
func (aeuo *AttemptEventUpdateOne) AddItemID(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddItemID(i)
	return aeuo
}

// ClearItemID clears the value of the "item_id" field.
func (aeuo *AttemptEventUpdateOne) ClearItemID() *AttemptEventUpdateOne {
	aeuo.mutation.ClearItemID()
	return aeuo
}

// SetSubtopicIds sets the "subtopic_ids" field.
func (aeuo *AttemptEventUpdateOne) SetSubtopicIds(i []int) *AttemptEventUpdateOne {
	aeuo.mutation.SetSubtopicIds(i)
	return aeuo
}

// AppendSubtopicIds appends i to the "subtopic_ids" field.
func (aeuo *AttemptEventUpdateOne) AppendSubtopicIds(i []int) *AttemptEventUpdateOne {
	aeuo.mutation.AppendSubtopicIds(i)
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AttemptEventUpdateOne) SetCorrect(b bool) *AttemptEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableCorrect(b *bool) *AttemptEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// SetDifficulty sets the "difficulty" field.
func (aeuo *AttemptEventUpdateOne) SetDifficulty(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetDifficulty(s)
	return aeuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableDifficulty(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetDifficulty(*s)
	}
	return aeuo
}

// SetGameType sets the "game_type" field.
func (aeuo *AttemptEventUpdateOne) SetGameType(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetGameType(s)
	return aeuo
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableGameType(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetGameType(*s)
	}
	return aeuo
}

// SetElapsed sets the "elapsed" field.
func (aeuo *AttemptEventUpdateOne) SetElapsed(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.ResetElapsed()
	aeuo.mutation.SetElapsed(f)
	return aeuo
}

// SetNillableElapsed sets the "elapsed" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableElapsed(f *float64) *AttemptEventUpdateOne {
	if f != nil {
		aeuo.SetElapsed(*f)
	}
	return aeuo
}

// AddElapsed adds f to the "elapsed" field.
func (aeuo *AttemptEventUpdateOne) AddElapsed(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.AddElapsed(f)
	return aeuo
}

// SetTimeLimit sets the "time_limit" field.
func (aeuo *AttemptEventUpdateOne) SetTimeLimit(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.ResetTimeLimit()
	aeuo.mutation.SetTimeLimit(f)
	return aeuo
}

// SetNillableTimeLimit sets the "time_limit" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableTimeLimit(f *float64) *AttemptEventUpdateOne {
	if f != nil {
		aeuo.SetTimeLimit(*f)
	}
	return aeuo
}

// AddTimeLimit adds f to the "time_limit" field.
func (aeuo *AttemptEventUpdateOne) AddTimeLimit(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.AddTimeLimit(f)
	return aeuo
}

// SetMistakes sets the "mistakes" field.
func (aeuo *AttemptEventUpdateOne) SetMistakes(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetMistakes()
	aeuo.mutation.SetMistakes(i)
	return aeuo
}

// SetNillableMistakes sets the "mistakes" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableMistakes(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetMistakes(*i)
	}
	return aeuo
}

// AddMistakes adds i to the "mistakes" field.
func (aeuo *AttemptEventUpdateOne) AddMistakes(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddMistakes(i)
	return aeuo
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeuo *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeuo *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AttemptEvent entity.
func (aeuo *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AttemptEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.Learner(); ok {
		if err := attemptevent.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.BatchID(); ok {
		if err := attemptevent.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.batch_id": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.Learner(); ok {
		_spec.SetField(attemptevent.FieldLearner, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.BatchID(); ok {
		_spec.SetField(attemptevent.FieldBatchID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.ItemID(); ok {
		_spec.SetField(attemptevent.FieldItemID, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedItemID(); ok {
		_spec.AddField(attemptevent.FieldItemID, field.TypeInt, value)
	}
	if aeuo.mutation.ItemIDCleared() {
		_spec.ClearField(attemptevent.FieldItemID, field.TypeInt)
	}
	if value, ok := aeuo.mutation.SubtopicIds(); ok {
		_spec.SetField(attemptevent.FieldSubtopicIds, field.TypeJSON, value)
	}
	if value, ok := aeuo.mutation.AppendedSubtopicIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldSubtopicIds, value)
		})
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.GameType(); ok {
		_spec.SetField(attemptevent.FieldGameType, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Elapsed(); ok {
		_spec.SetField(attemptevent.FieldElapsed, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.AddedElapsed(); ok {
		_spec.AddField(attemptevent.FieldElapsed, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.TimeLimit(); ok {
		_spec.SetField(attemptevent.FieldTimeLimit, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.AddedTimeLimit(); ok {
		_spec.AddField(attemptevent.FieldTimeLimit, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.Mistakes(); ok {
		_spec.SetField(attemptevent.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedMistakes(); ok {
		_spec.AddField(attemptevent.FieldMistakes, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}

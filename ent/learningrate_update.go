// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/learningrate"
	"github.com/pygrounds/adaptive/ent/predicate"
)

// LearningRateUpdate is the builder for updating LearningRate entities.
type LearningRateUpdate struct {
	config
	hooks    []Hook
	mutation *LearningRateMutation
}

// Where appends a list predicates to the LearningRateUpdate builder.
func (lru *LearningRateUpdate) Where(ps ...predicate.LearningRate) *LearningRateUpdate {
	lru.mutation.Where(ps...)
	return lru
}

// SetLearner sets the "learner" field.
func (lru *LearningRateUpdate) SetLearner(s string) *LearningRateUpdate {
	lru.mutation.SetLearner(s)
	return lru
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (lru *LearningRateUpdate) SetNillableLearner(s *string) *LearningRateUpdate {
	if s != nil {
		lru.SetLearner(*s)
	}
	return lru
}

// SetSubtopicID sets the "subtopic_id" field.
func (lru *LearningRateUpdate) SetSubtopicID(i int) *LearningRateUpdate {
	lru.mutation.ResetSubtopicID()
	lru.mutation.SetSubtopicID(i)
	return lru
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (lru *LearningRateUpdate) SetNillableSubtopicID(i *int) *LearningRateUpdate {
	if i != nil {
		lru.SetSubtopicID(*i)
	}
	return lru
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (lru *LearningRateUpdate) AddSubtopicID(i int) *LearningRateUpdate {
	lru.mutation.AddSubtopicID(i)
	return lru
}

// SetScale sets the "scale" field.
func (lru *LearningRateUpdate) SetScale(f float64) *LearningRateUpdate {
	lru.mutation.ResetScale()
	lru.mutation.SetScale(f)
	return lru
}

// SetNillableScale sets the "scale" field if the given value is not nil.
func (lru *LearningRateUpdate) SetNillableScale(f *float64) *LearningRateUpdate {
	if f != nil {
		lru.SetScale(*f)
	}
	return lru
}

// AddScale adds f to the "scale" field.
func (lru *LearningRateUpdate) AddScale(f float64) *LearningRateUpdate {
	lru.mutation.AddScale(f)
	return lru
}

// SetCount sets the "count" field.
func (lru *LearningRateUpdate) SetCount(i int) *LearningRateUpdate {
	lru.mutation.ResetCount()
	lru.mutation.SetCount(i)
	return lru
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (lru *LearningRateUpdate) SetNillableCount(i *int) *LearningRateUpdate {
	if i != nil {
		lru.SetCount(*i)
	}
	return lru
}

// AddCount adds i to the "count" field.
func (lru *LearningRateUpdate) AddCount(i int) *LearningRateUpdate {
	lru.mutation.AddCount(i)
	return lru
}

// Mutation returns the LearningRateMutation object of the builder.
func (lru *LearningRateUpdate) Mutation() *LearningRateMutation {
	return lru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lru *LearningRateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, lru.sqlSave, lru.mutation, lru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lru *LearningRateUpdate) SaveX(ctx context.Context) int {
	affected, err := lru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lru *LearningRateUpdate) Exec(ctx context.Context) error {
	_, err := lru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lru *LearningRateUpdate) ExecX(ctx context.Context) {
	if err := lru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lru *LearningRateUpdate) check() error {
	if v, ok := lru.mutation.Learner(); ok {
		if err := learningrate.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "LearningRate.learner": %w`, err)}
		}
	}
	return nil
}

func (lru *LearningRateUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningrate.Table, learningrate.Columns, sqlgraph.NewFieldSpec(learningrate.FieldID, field.TypeInt))
	if ps := lru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lru.mutation.Learner(); ok {
		_spec.SetField(learningrate.FieldLearner, field.TypeString, value)
	}
	if value, ok := lru.mutation.SubtopicID(); ok {
		_spec.SetField(learningrate.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := lru.mutation.AddedSubtopicID(); ok {
		_spec.AddField(learningrate.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := lru.mutation.Scale(); ok {
		_spec.SetField(learningrate.FieldScale, field.TypeFloat64, value)
	}
	if value, ok := lru.mutation.AddedScale(); ok {
		_spec.AddField(learningrate.FieldScale, field.TypeFloat64, value)
	}
	if value, ok := lru.mutation.Count(); ok {
		_spec.SetField(learningrate.FieldCount, field.TypeInt, value)
	}
	if value, ok := lru.mutation.AddedCount(); ok {
		_spec.AddField(learningrate.FieldCount, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningrate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lru.mutation.done = true
	return n, nil
}

// LearningRateUpdateOne is the builder for updating a single LearningRate entity.
type LearningRateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningRateMutation
}

// SetLearner sets the "learner" field.
func (lruo *LearningRateUpdateOne) SetLearner(s string) *LearningRateUpdateOne {
	lruo.mutation.SetLearner(s)
	return lruo
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (lruo *LearningRateUpdateOne) SetNillableLearner(s *string) *LearningRateUpdateOne {
	if s != nil {
		lruo.SetLearner(*s)
	}
	return lruo
}

// SetSubtopicID sets the "subtopic_id" field.
func (lruo *LearningRateUpdateOne) SetSubtopicID(i int) *LearningRateUpdateOne {
	lruo.mutation.ResetSubtopicID()
	lruo.mutation.SetSubtopicID(i)
	return lruo
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (lruo *LearningRateUpdateOne) SetNillableSubtopicID(i *int) *LearningRateUpdateOne {
	if i != nil {
		lruo.SetSubtopicID(*i)
	}
	return lruo
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (lruo *LearningRateUpdateOne) AddSubtopicID(i int) *LearningRateUpdateOne {
	lruo.mutation.AddSubtopicID(i)
	return lruo
}

// SetScale sets the "scale" field.
func (lruo *LearningRateUpdateOne) SetScale(f float64) *LearningRateUpdateOne {
	lruo.mutation.ResetScale()
	lruo.mutation.SetScale(f)
	return lruo
}

// SetNillableScale sets the "scale" field if the given value is not nil.
func (lruo *LearningRateUpdateOne) SetNillableScale(f *float64) *LearningRateUpdateOne {
	if f != nil {
		lruo.SetScale(*f)
	}
	return lruo
}

// AddScale adds f to the "scale" field.
func (lruo *LearningRateUpdateOne) AddScale(f float64) *LearningRateUpdateOne {
	lruo.mutation.AddScale(f)
	return lruo
}

// SetCount sets the "count" field.
func (lruo *LearningRateUpdateOne) SetCount(i int) *LearningRateUpdateOne {
	lruo.mutation.ResetCount()
	lruo.mutation.SetCount(i)
	return lruo
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (lruo *LearningRateUpdateOne) SetNillableCount(i *int) *LearningRateUpdateOne {
	if i != nil {
		lruo.SetCount(*i)
	}
	return lruo
}

// AddCount adds i to the "count" field.
func (lruo *LearningRateUpdateOne) AddCount(i int) *LearningRateUpdateOne {
	lruo.mutation.AddCount(i)
	return lruo
}

// Mutation returns the LearningRateMutation object of the builder.
func (lruo *LearningRateUpdateOne) Mutation() *LearningRateMutation {
	return lruo.mutation
}

// Where appends a list predicates to the LearningRateUpdate builder.
func (lruo *LearningRateUpdateOne) Where(ps ...predicate.LearningRate) *LearningRateUpdateOne {
	lruo.mutation.Where(ps...)
	return lruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lruo *LearningRateUpdateOne) Select(field string, fields ...string) *LearningRateUpdateOne {
	lruo.fields = append([]string{field}, fields...)
	return lruo
}

// Save executes the query and returns the updated LearningRate entity.
func (lruo *LearningRateUpdateOne) Save(ctx context.Context) (*LearningRate, error) {
	return withHooks(ctx, lruo.sqlSave, lruo.mutation, lruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lruo *LearningRateUpdateOne) SaveX(ctx context.Context) *LearningRate {
	node, err := lruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lruo *LearningRateUpdateOne) Exec(ctx context.Context) error {
	_, err := lruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lruo *LearningRateUpdateOne) ExecX(ctx context.Context) {
	if err := lruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lruo *LearningRateUpdateOne) check() error {
	if v, ok := lruo.mutation.Learner(); ok {
		if err := learningrate.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "LearningRate.learner": %w`, err)}
		}
	}
	return nil
}

func (lruo *LearningRateUpdateOne) sqlSave(ctx context.Context) (_node *LearningRate, err error) {
	if err := lruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningrate.Table, learningrate.Columns, sqlgraph.NewFieldSpec(learningrate.FieldID, field.TypeInt))
	id, ok := lruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningRate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningrate.FieldID)
		for _, f := range fields {
			if !learningrate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningrate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lruo.mutation.Learner(); ok {
		_spec.SetField(learningrate.FieldLearner, field.TypeString, value)
	}
	if value, ok := lruo.mutation.SubtopicID(); ok {
		_spec.SetField(learningrate.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := lruo.mutation.AddedSubtopicID(); ok {
		_spec.AddField(learningrate.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := lruo.mutation.Scale(); ok {
		_spec.SetField(learningrate.FieldScale, field.TypeFloat64, value)
	}
	if value, ok := lruo.mutation.AddedScale(); ok {
		_spec.AddField(learningrate.FieldScale, field.TypeFloat64, value)
	}
	if value, ok := lruo.mutation.Count(); ok {
		_spec.SetField(learningrate.FieldCount, field.TypeInt, value)
	}
	if value, ok := lruo.mutation.AddedCount(); ok {
		_spec.AddField(learningrate.FieldCount, field.TypeInt, value)
	}
	_node = &LearningRate{config: lruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningrate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lruo.mutation.done = true
	return _node, nil
}

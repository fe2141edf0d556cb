// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/predicate"
	"github.com/pygrounds/adaptive/ent/topicproficiency"
)

// TopicProficiencyUpdate is the builder for updating TopicProficiency entities.
type TopicProficiencyUpdate struct {
	config
	hooks    []Hook
	mutation *TopicProficiencyMutation
}

// Where appends a list predicates to the TopicProficiencyUpdate builder.
func (tpu *TopicProficiencyUpdate) Where(ps ...predicate.TopicProficiency) *TopicProficiencyUpdate {
	tpu.mutation.Where(ps...)
	return tpu
}

// SetLearner sets the "learner" field.
func (tpu *TopicProficiencyUpdate) SetLearner(s string) *TopicProficiencyUpdate {
	tpu.mutation.SetLearner(s)
	return tpu
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (tpu *TopicProficiencyUpdate) SetNillableLearner(s *string) *TopicProficiencyUpdate {
	if s != nil {
		tpu.SetLearner(*s)
	}
	return tpu
}

// SetTopicID sets the "topic_id" field.
func (tpu *TopicProficiencyUpdate) SetTopicID(i int) *TopicProficiencyUpdate {
	tpu.mutation.ResetTopicID()
	tpu.mutation.SetTopicID(i)
	return tpu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (tpu *TopicProficiencyUpdate) SetNillableTopicID(i *int) *TopicProficiencyUpdate {
	if i != nil {
		tpu.SetTopicID(*i)
	}
	return tpu
}

// AddTopicID adds i to the "topic_id" field.
func (tpu *TopicProficiencyUpdate) AddTopicID(i int) *TopicProficiencyUpdate {
	tpu.mutation.AddTopicID(i)
	return tpu
}

// SetPct sets the "pct" field.
func (tpu *TopicProficiencyUpdate) SetPct(f float64) *TopicProficiencyUpdate {
	tpu.mutation.ResetPct()
	tpu.mutation.SetPct(f)
	return tpu
}

// SetNillablePct sets the "pct" field if the given value is not nil.
func (tpu *TopicProficiencyUpdate) SetNillablePct(f *float64) *TopicProficiencyUpdate {
	if f != nil {
		tpu.SetPct(*f)
	}
	return tpu
}

// AddPct adds f to the "pct" field.
func (tpu *TopicProficiencyUpdate) AddPct(f float64) *TopicProficiencyUpdate {
	tpu.mutation.AddPct(f)
	return tpu
}

// Mutation returns the TopicProficiencyMutation object of the builder.
func (tpu *TopicProficiencyUpdate) Mutation() *TopicProficiencyMutation {
	return tpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tpu *TopicProficiencyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, tpu.sqlSave, tpu.mutation, tpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tpu *TopicProficiencyUpdate) SaveX(ctx context.Context) int {
	affected, err := tpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tpu *TopicProficiencyUpdate) Exec(ctx context.Context) error {
	_, err := tpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpu *TopicProficiencyUpdate) ExecX(ctx context.Context) {
	if err := tpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tpu *TopicProficiencyUpdate) check() error {
	if v, ok := tpu.mutation.Learner(); ok {
		if err := topicproficiency.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "TopicProficiency.learner": %w`, err)}
		}
	}
	return nil
}

func (tpu *TopicProficiencyUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicproficiency.Table, topicproficiency.Columns, sqlgraph.NewFieldSpec(topicproficiency.FieldID, field.TypeInt))
	if ps := tpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tpu.mutation.Learner(); ok {
		_spec.SetField(topicproficiency.FieldLearner, field.TypeString, value)
	}
	if value, ok := tpu.mutation.TopicID(); ok {
		_spec.SetField(topicproficiency.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := tpu.mutation.AddedTopicID(); ok {
		_spec.AddField(topicproficiency.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := tpu.mutation.Pct(); ok {
		_spec.SetField(topicproficiency.FieldPct, field.TypeFloat64, value)
	}
	if value, ok := tpu.mutation.AddedPct(); ok {
		_spec.AddField(topicproficiency.FieldPct, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicproficiency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tpu.mutation.done = true
	return n, nil
}

// TopicProficiencyUpdateOne is the builder for updating a single TopicProficiency entity.
type TopicProficiencyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicProficiencyMutation
}

// SetLearner sets the "learner" field.
func (tpuo *TopicProficiencyUpdateOne) SetLearner(s string) *TopicProficiencyUpdateOne {
	tpuo.mutation.SetLearner(s)
	return tpuo
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (tpuo *TopicProficiencyUpdateOne) SetNillableLearner(s *string) *TopicProficiencyUpdateOne {
	if s != nil {
		tpuo.SetLearner(*s)
	}
	return tpuo
}

// SetTopicID sets the "topic_id" field.
func (tpuo *TopicProficiencyUpdateOne) SetTopicID(i int) *TopicProficiencyUpdateOne {
	tpuo.mutation.ResetTopicID()
	tpuo.mutation.SetTopicID(i)
	return tpuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (tpuo *TopicProficiencyUpdateOne) SetNillableTopicID(i *int) *TopicProficiencyUpdateOne {
	if i != nil {
		tpuo.SetTopicID(*i)
	}
	return tpuo
}

// AddTopicID adds i to the "topic_id" field.
func (tpuo *TopicProficiencyUpdateOne) AddTopicID(i int) *TopicProficiencyUpdateOne {
	tpuo.mutation.AddTopicID(i)
	return tpuo
}

// SetPct sets the "pct" field.
func (tpuo *TopicProficiencyUpdateOne) SetPct(f float64) *TopicProficiencyUpdateOne {
	tpuo.mutation.ResetPct()
	tpuo.mutation.SetPct(f)
	return tpuo
}

// SetNillablePct sets the "pct" field if the given value is not nil.
func (tpuo *TopicProficiencyUpdateOne) SetNillablePct(f *float64) *TopicProficiencyUpdateOne {
	if f != nil {
		tpuo.SetPct(*f)
	}
	return tpuo
}

// AddPct adds f to the "pct" field.
func (tpuo *TopicProficiencyUpdateOne) AddPct(f float64) *TopicProficiencyUpdateOne {
	tpuo.mutation.AddPct(f)
	return tpuo
}

// Mutation returns the TopicProficiencyMutation object of the builder.
func (tpuo *TopicProficiencyUpdateOne) Mutation() *TopicProficiencyMutation {
	return tpuo.mutation
}

// Where appends a list predicates to the TopicProficiencyUpdate builder.
func (tpuo *TopicProficiencyUpdateOne) Where(ps ...predicate.TopicProficiency) *TopicProficiencyUpdateOne {
	tpuo.mutation.Where(ps...)
	return tpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tpuo *TopicProficiencyUpdateOne) Select(field string, fields ...string) *TopicProficiencyUpdateOne {
	tpuo.fields = append([]string{field}, fields...)
	return tpuo
}

// Save executes the query and returns the updated TopicProficiency entity.
func (tpuo *TopicProficiencyUpdateOne) Save(ctx context.Context) (*TopicProficiency, error) {
	return withHooks(ctx, tpuo.sqlSave, tpuo.mutation, tpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tpuo *TopicProficiencyUpdateOne) SaveX(ctx context.Context) *TopicProficiency {
	node, err := tpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tpuo *TopicProficiencyUpdateOne) Exec(ctx context.Context) error {
	_, err := tpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpuo *TopicProficiencyUpdateOne) ExecX(ctx context.Context) {
	if err := tpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tpuo *TopicProficiencyUpdateOne) check() error {
	if v, ok := tpuo.mutation.Learner(); ok {
		if err := topicproficiency.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "TopicProficiency.learner": %w`, err)}
		}
	}
	return nil
}

func (tpuo *TopicProficiencyUpdateOne) sqlSave(ctx context.Context) (_node *TopicProficiency, err error) {
	if err := tpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicproficiency.Table, topicproficiency.Columns, sqlgraph.NewFieldSpec(topicproficiency.FieldID, field.TypeInt))
	id, ok := tpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicProficiency.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicproficiency.FieldID)
		for _, f := range fields {
			if !topicproficiency.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicproficiency.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tpuo.mutation.Learner(); ok {
		_spec.SetField(topicproficiency.FieldLearner, field.TypeString, value)
	}
	if value, ok := tpuo.mutation.TopicID(); ok {
		_spec.SetField(topicproficiency.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := tpuo.mutation.AddedTopicID(); ok {
		_spec.AddField(topicproficiency.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := tpuo.mutation.Pct(); ok {
		_spec.SetField(topicproficiency.FieldPct, field.TypeFloat64, value)
	}
	if value, ok := tpuo.mutation.AddedPct(); ok {
		_spec.AddField(topicproficiency.FieldPct, field.TypeFloat64, value)
	}
	_node = &TopicProficiency{config: tpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicproficiency.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tpuo.mutation.done = true
	return _node, nil
}

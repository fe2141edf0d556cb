// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/ability"
	"github.com/pygrounds/adaptive/ent/predicate"
)

// AbilityUpdate is the builder for updating Ability entities.
type AbilityUpdate struct {
	config
	hooks    []Hook
	mutation *AbilityMutation
}

// Where appends a list predicates to the AbilityUpdate builder.
func (au *AbilityUpdate) Where(ps ...predicate.Ability) *AbilityUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetLearner sets the "learner" field.
func (au *AbilityUpdate) SetLearner(s string) *AbilityUpdate {
	au.mutation.SetLearner(s)
	return au
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (au *AbilityUpdate) SetNillableLearner(s *string) *AbilityUpdate {
	if s != nil {
		au.SetLearner(*s)
	}
	return au
}

// SetScore sets the "score" field.
func (au *AbilityUpdate) SetScore(f float64) *AbilityUpdate {
	au.mutation.ResetScore()
	au.mutation.SetScore(f)
	return au
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (au *AbilityUpdate) SetNillableScore(f *float64) *AbilityUpdate {
	if f != nil {
		au.SetScore(*f)
	}
	return au
}

// AddScore adds f to the "score" field.
func (au *AbilityUpdate) AddScore(f float64) *AbilityUpdate {
	au.mutation.AddScore(f)
	return au
}

// Mutation returns the AbilityMutation object of the builder.
func (au *AbilityUpdate) Mutation() *AbilityMutation {
	return au.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AbilityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AbilityUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AbilityUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AbilityUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *AbilityUpdate) check() error {
	if v, ok := au.mutation.Learner(); ok {
		if err := ability.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "Ability.learner": %w`, err)}
		}
	}
	return nil
}

func (au *AbilityUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(ability.Table, ability.Columns, sqlgraph.NewFieldSpec(ability.FieldID, field.TypeInt))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.Learner(); ok {
		_spec.SetField(ability.FieldLearner, field.TypeString, value)
	}
	if value, ok := au.mutation.Score(); ok {
		_spec.SetField(ability.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := au.mutation.AddedScore(); ok {
		_spec.AddField(ability.FieldScore, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AbilityUpdateOne is the builder for updating a single Ability entity.
type AbilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AbilityMutation
}

// SetLearner sets the "learner" field.
func (auo *AbilityUpdateOne) SetLearner(s string) *AbilityUpdateOne {
	auo.mutation.SetLearner(s)
	return auo
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (auo *AbilityUpdateOne) SetNillableLearner(s *string) *AbilityUpdateOne {
	if s != nil {
		auo.SetLearner(*s)
	}
	return auo
}

// SetScore sets the "score" field.
func (auo *AbilityUpdateOne) SetScore(f float64) *AbilityUpdateOne {
	auo.mutation.ResetScore()
	auo.mutation.SetScore(f)
	return auo
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (auo *AbilityUpdateOne) SetNillableScore(f *float64) *AbilityUpdateOne {
	if f != nil {
		auo.SetScore(*f)
	}
	return auo
}

// AddScore adds f to the "score" field.
func (auo *AbilityUpdateOne) AddScore(f float64) *AbilityUpdateOne {
	auo.mutation.AddScore(f)
	return auo
}

// Mutation returns the AbilityMutation object of the builder.
func (auo *AbilityUpdateOne) Mutation() *AbilityMutation {
	return auo.mutation
}

// Where appends a list predicates to the AbilityUpdate builder.
func (auo *AbilityUpdateOne) Where(ps ...predicate.Ability) *AbilityUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AbilityUpdateOne) Select(field string, fields ...string) *AbilityUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Ability entity.
func (auo *AbilityUpdateOne) Save(ctx context.Context) (*Ability, error) {
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AbilityUpdateOne) SaveX(ctx context.Context) *Ability {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AbilityUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AbilityUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *AbilityUpdateOne) check() error {
	if v, ok := auo.mutation.Learner(); ok {
		if err := ability.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "Ability.learner": %w`, err)}
		}
	}
	return nil
}

func (auo *AbilityUpdateOne) sqlSave(ctx context.Context) (_node *Ability, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ability.Table, ability.Columns, sqlgraph.NewFieldSpec(ability.FieldID, field.TypeInt))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Ability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ability.FieldID)
		for _, f := range fields {
			if !ability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ability.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.Learner(); ok {
		_spec.SetField(ability.FieldLearner, field.TypeString, value)
	}
	if value, ok := auo.mutation.Score(); ok {
		_spec.SetField(ability.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := auo.mutation.AddedScore(); ok {
		_spec.AddField(ability.FieldScore, field.TypeFloat64, value)
	}
	_node = &Ability{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}

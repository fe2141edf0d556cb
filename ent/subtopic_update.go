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
	"github.com/pygrounds/adaptive/ent/subtopic"
)

// SubtopicUpdate is the builder for updating Subtopic entities.
type SubtopicUpdate struct {
	config
	hooks    []Hook
	mutation *SubtopicMutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (su *SubtopicUpdate) Where(ps ...predicate.Subtopic) *SubtopicUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetName sets the "name" field.
func (su *SubtopicUpdate) SetName(s string) *SubtopicUpdate {
	su.mutation.SetName(s)
	return su
}

// SetNillableName sets the "name" field if the given value is not nil.
func (su *SubtopicUpdate) SetNillableName(s *string) *SubtopicUpdate {
	if s != nil {
		su.SetName(*s)
	}
	return su
}

// SetTopicID sets the "topic_id" field.
func (su *SubtopicUpdate) SetTopicID(i int) *SubtopicUpdate {
	su.mutation.ResetTopicID()
	su.mutation.SetTopicID(i)
	return su
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (su *SubtopicUpdate) SetNillableTopicID(i *int) *SubtopicUpdate {
	if i != nil {
		su.SetTopicID(*i)
	}
	return su
}

// AddTopicID adds i to the "topic_id" field.
func (su *SubtopicUpdate) AddTopicID(i int) *SubtopicUpdate {
	su.mutation.AddTopicID(i)
	return su
}

// Mutation returns the SubtopicMutation object of the builder.
func (su *SubtopicUpdate) Mutation() *SubtopicMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SubtopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SubtopicUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SubtopicUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SubtopicUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *SubtopicUpdate) check() error {
	if v, ok := su.mutation.Name(); ok {
		if err := subtopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subtopic.name": %w`, err)}
		}
	}
	return nil
}

func (su *SubtopicUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.Name(); ok {
		_spec.SetField(subtopic.FieldName, field.TypeString, value)
	}
	if value, ok := su.mutation.TopicID(); ok {
		_spec.SetField(subtopic.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedTopicID(); ok {
		_spec.AddField(subtopic.FieldTopicID, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SubtopicUpdateOne is the builder for updating a single Subtopic entity.
type SubtopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtopicMutation
}

// SetName sets the "name" field.
func (suo *SubtopicUpdateOne) SetName(s string) *SubtopicUpdateOne {
	suo.mutation.SetName(s)
	return suo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (suo *SubtopicUpdateOne) SetNillableName(s *string) *SubtopicUpdateOne {
	if s != nil {
		suo.SetName(*s)
	}
	return suo
}

// SetTopicID sets the "topic_id" field.
func (suo *SubtopicUpdateOne) SetTopicID(i int) *SubtopicUpdateOne {
	suo.mutation.ResetTopicID()
	suo.mutation.SetTopicID(i)
	return suo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (suo *SubtopicUpdateOne) SetNillableTopicID(i *int) *SubtopicUpdateOne {
	if i != nil {
		suo.SetTopicID(*i)
	}
	return suo
}

// AddTopicID adds i to the "topic_id" field.
func (suo *SubtopicUpdateOne) AddTopicID(i int) *SubtopicUpdateOne {
	suo.mutation.AddTopicID(i)
	return suo
}

// Mutation returns the SubtopicMutation object of the builder.
func (suo *SubtopicUpdateOne) Mutation() *SubtopicMutation {
	return suo.mutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (suo *SubtopicUpdateOne) Where(ps ...predicate.Subtopic) *SubtopicUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SubtopicUpdateOne) Select(field string, fields ...string) *SubtopicUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Subtopic entity.
func (suo *SubtopicUpdateOne) Save(ctx context.Context) (*Subtopic, error) {
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SubtopicUpdateOne) SaveX(ctx context.Context) *Subtopic {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SubtopicUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SubtopicUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *SubtopicUpdateOne) check() error {
	if v, ok := suo.mutation.Name(); ok {
		if err := subtopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subtopic.name": %w`, err)}
		}
	}
	return nil
}

func (suo *SubtopicUpdateOne) sqlSave(ctx context.Context) (_node *Subtopic, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subtopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopic.FieldID)
		for _, f := range fields {
			if !subtopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtopic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.Name(); ok {
		_spec.SetField(subtopic.FieldName, field.TypeString, value)
	}
	if value, ok := suo.mutation.TopicID(); ok {
		_spec.SetField(subtopic.FieldTopicID, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedTopicID(); ok {
		_spec.AddField(subtopic.FieldTopicID, field.TypeInt, value)
	}
	_node = &Subtopic{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}

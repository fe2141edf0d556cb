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
	"github.com/pygrounds/adaptive/ent/zone"
)

// ZoneUpdate is the builder for updating Zone entities.
type ZoneUpdate struct {
	config
	hooks    []Hook
	mutation *ZoneMutation
}

// Where appends a list predicates to the ZoneUpdate builder.
func (zu *ZoneUpdate) Where(ps ...predicate.Zone) *ZoneUpdate {
	zu.mutation.Where(ps...)
	return zu
}

// SetName sets the "name" field.
func (zu *ZoneUpdate) SetName(s string) *ZoneUpdate {
	zu.mutation.SetName(s)
	return zu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (zu *ZoneUpdate) SetNillableName(s *string) *ZoneUpdate {
	if s != nil {
		zu.SetName(*s)
	}
	return zu
}

// SetOrder sets the "order" field.
func (zu *ZoneUpdate) SetOrder(i int) *ZoneUpdate {
	zu.mutation.ResetOrder()
	zu.mutation.SetOrder(i)
	return zu
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (zu *ZoneUpdate) SetNillableOrder(i *int) *ZoneUpdate {
	if i != nil {
		zu.SetOrder(*i)
	}
	return zu
}

// AddOrder adds i to the "order" field.
func (zu *ZoneUpdate) AddOrder(i int) *ZoneUpdate {
	zu.mutation.AddOrder(i)
	return zu
}

// Mutation returns the ZoneMutation object of the builder.
func (zu *ZoneUpdate) Mutation() *ZoneMutation {
	return zu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (zu *ZoneUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, zu.sqlSave, zu.mutation, zu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (zu *ZoneUpdate) SaveX(ctx context.Context) int {
	affected, err := zu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (zu *ZoneUpdate) Exec(ctx context.Context) error {
	_, err := zu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (zu *ZoneUpdate) ExecX(ctx context.Context) {
	if err := zu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (zu *ZoneUpdate) check() error {
	if v, ok := zu.mutation.Name(); ok {
		if err := zone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Zone.name": %w`, err)}
		}
	}
	return nil
}

func (zu *ZoneUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := zu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(zone.Table, zone.Columns, sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt))
	if ps := zu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := zu.mutation.Name(); ok {
		_spec.SetField(zone.FieldName, field.TypeString, value)
	}
	if value, ok := zu.mutation.Order(); ok {
		_spec.SetField(zone.FieldOrder, field.TypeInt, value)
	}
	if value, ok := zu.mutation.AddedOrder(); ok {
		_spec.AddField(zone.FieldOrder, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, zu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{zone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	zu.mutation.done = true
	return n, nil
}

// ZoneUpdateOne is the builder for updating a single Zone entity.
type ZoneUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ZoneMutation
}

// SetName sets the "name" field.
func (zuo *ZoneUpdateOne) SetName(s string) *ZoneUpdateOne {
	zuo.mutation.SetName(s)
	return zuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (zuo *ZoneUpdateOne) SetNillableName(s *string) *ZoneUpdateOne {
	if s != nil {
		zuo.SetName(*s)
	}
	return zuo
}

// SetOrder sets the "order" field.
func (zuo *ZoneUpdateOne) SetOrder(i int) *ZoneUpdateOne {
	zuo.mutation.ResetOrder()
	zuo.mutation.SetOrder(i)
	return zuo
}

// SetNillableOrder sets the "order" field if the given value is not nil.
func (zuo *ZoneUpdateOne) SetNillableOrder(i *int) *ZoneUpdateOne {
	if i != nil {
		zuo.SetOrder(*i)
	}
	return zuo
}

// AddOrder adds i to the "order" field.
func (zuo *ZoneUpdateOne) AddOrder(i int) *ZoneUpdateOne {
	zuo.mutation.AddOrder(i)
	return zuo
}

// Mutation returns the ZoneMutation object of the builder.
func (zuo *ZoneUpdateOne) Mutation() *ZoneMutation {
	return zuo.mutation
}

// Where appends a list predicates to the ZoneUpdate builder.
func (zuo *ZoneUpdateOne) Where(ps ...predicate.Zone) *ZoneUpdateOne {
	zuo.mutation.Where(ps...)
	return zuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (zuo *ZoneUpdateOne) Select(field string, fields ...string) *ZoneUpdateOne {
	zuo.fields = append([]string{field}, fields...)
	return zuo
}

// Save executes the query and returns the updated Zone entity.
func (zuo *ZoneUpdateOne) Save(ctx context.Context) (*Zone, error) {
	return withHooks(ctx, zuo.sqlSave, zuo.mutation, zuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (zuo *ZoneUpdateOne) SaveX(ctx context.Context) *Zone {
	node, err := zuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (zuo *ZoneUpdateOne) Exec(ctx context.Context) error {
	_, err := zuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (zuo *ZoneUpdateOne) ExecX(ctx context.Context) {
	if err := zuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (zuo *ZoneUpdateOne) check() error {
	if v, ok := zuo.mutation.Name(); ok {
		if err := zone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Zone.name": %w`, err)}
		}
	}
	return nil
}

func (zuo *ZoneUpdateOne) sqlSave(ctx context.Context) (_node *Zone, err error) {
	if err := zuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(zone.Table, zone.Columns, sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt))
	id, ok := zuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Zone.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := zuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, zone.FieldID)
		for _, f := range fields {
			if !zone.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != zone.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := zuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := zuo.mutation.Name(); ok {
		_spec.SetField(zone.FieldName, field.TypeString, value)
	}
	if value, ok := zuo.mutation.Order(); ok {
		_spec.SetField(zone.FieldOrder, field.TypeInt, value)
	}
	if value, ok := zuo.mutation.AddedOrder(); ok {
		_spec.AddField(zone.FieldOrder, field.TypeInt, value)
	}
	_node = &Zone{config: zuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, zuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{zone.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	zuo.mutation.done = true
	return _node, nil
}

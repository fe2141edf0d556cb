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
	"github.com/pygrounds/adaptive/ent/zoneprogress"
)

// ZoneProgressUpdate is the builder for updating ZoneProgress entities.
type ZoneProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ZoneProgressMutation
}

// Where appends a list predicates to the ZoneProgressUpdate builder.
func (zpu *ZoneProgressUpdate) Where(ps ...predicate.ZoneProgress) *ZoneProgressUpdate {
	zpu.mutation.Where(ps...)
	return zpu
}

// SetLearner sets the "learner" field.
func (zpu *ZoneProgressUpdate) SetLearner(s string) *ZoneProgressUpdate {
	zpu.mutation.SetLearner(s)
	return zpu
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (zpu *ZoneProgressUpdate) SetNillableLearner(s *string) *ZoneProgressUpdate {
	if s != nil {
		zpu.SetLearner(*s)
	}
	return zpu
}

// SetZoneID sets the "zone_id" field.
func (zpu *ZoneProgressUpdate) SetZoneID(i int) *ZoneProgressUpdate {
	zpu.mutation.ResetZoneID()
	zpu.mutation.SetZoneID(i)
	return zpu
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (zpu *ZoneProgressUpdate) SetNillableZoneID(i *int) *ZoneProgressUpdate {
	if i != nil {
		zpu.SetZoneID(*i)
	}
	return zpu
}

// AddZoneID adds i to the "zone_id" field.
func (zpu *ZoneProgressUpdate) AddZoneID(i int) *ZoneProgressUpdate {
	zpu.mutation.AddZoneID(i)
	return zpu
}

// SetPct sets the "pct" field.
func (zpu *ZoneProgressUpdate) SetPct(f float64) *ZoneProgressUpdate {
	zpu.mutation.ResetPct()
	zpu.mutation.SetPct(f)
	return zpu
}

// SetNillablePct sets the "pct" field if the given value is not nil.
func (zpu *ZoneProgressUpdate) SetNillablePct(f *float64) *ZoneProgressUpdate {
	if f != nil {
		zpu.SetPct(*f)
	}
	return zpu
}

// AddPct adds f to the "pct" field.
func (zpu *ZoneProgressUpdate) AddPct(f float64) *ZoneProgressUpdate {
	zpu.mutation.AddPct(f)
	return zpu
}

// Mutation returns the ZoneProgressMutation object of the builder.
func (zpu *ZoneProgressUpdate) Mutation() *ZoneProgressMutation {
	return zpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (zpu *ZoneProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, zpu.sqlSave, zpu.mutation, zpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (zpu *ZoneProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := zpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (zpu *ZoneProgressUpdate) Exec(ctx context.Context) error {
	_, err := zpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (zpu *ZoneProgressUpdate) ExecX(ctx context.Context) {
	if err := zpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (zpu *ZoneProgressUpdate) check() error {
	if v, ok := zpu.mutation.Learner(); ok {
		if err := zoneprogress.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "ZoneProgress.learner": %w`, err)}
		}
	}
	return nil
}

func (zpu *ZoneProgressUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := zpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(zoneprogress.Table, zoneprogress.Columns, sqlgraph.NewFieldSpec(zoneprogress.FieldID, field.TypeInt))
	if ps := zpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := zpu.mutation.Learner(); ok {
		_spec.SetField(zoneprogress.FieldLearner, field.TypeString, value)
	}
	if value, ok := zpu.mutation.ZoneID(); ok {
		_spec.SetField(zoneprogress.FieldZoneID, field.TypeInt, value)
	}
	if value, ok := zpu.mutation.AddedZoneID(); ok {
		_spec.AddField(zoneprogress.FieldZoneID, field.TypeInt, value)
	}
	if value, ok := zpu.mutation.Pct(); ok {
		_spec.SetField(zoneprogress.FieldPct, field.TypeFloat64, value)
	}
	if value, ok := zpu.mutation.AddedPct(); ok {
		_spec.AddField(zoneprogress.FieldPct, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, zpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{zoneprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	zpu.mutation.done = true
	return n, nil
}

// ZoneProgressUpdateOne is the builder for updating a single ZoneProgress entity.
type ZoneProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ZoneProgressMutation
}

// SetLearner sets the "learner" field.
func (zpuo *ZoneProgressUpdateOne) SetLearner(s string) *ZoneProgressUpdateOne {
	zpuo.mutation.SetLearner(s)
	return zpuo
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (zpuo *ZoneProgressUpdateOne) SetNillableLearner(s *string) *ZoneProgressUpdateOne {
	if s != nil {
		zpuo.SetLearner(*s)
	}
	return zpuo
}

// SetZoneID sets the "zone_id" field.
func (zpuo *ZoneProgressUpdateOne) SetZoneID(i int) *ZoneProgressUpdateOne {
	zpuo.mutation.ResetZoneID()
	zpuo.mutation.SetZoneID(i)
	return zpuo
}

// SetNillableZoneID sets the "zone_id" field if the given value is not nil.
func (zpuo *ZoneProgressUpdateOne) SetNillableZoneID(i *int) *ZoneProgressUpdateOne {
	if i != nil {
		zpuo.SetZoneID(*i)
	}
	return zpuo
}

// AddZoneID adds i to the "zone_id" field.
func (zpuo *ZoneProgressUpdateOne) AddZoneID(i int) *ZoneProgressUpdateOne {
	zpuo.mutation.AddZoneID(i)
	return zpuo
}

// SetPct sets the "pct" field.
func (zpuo *ZoneProgressUpdateOne) SetPct(f float64) *ZoneProgressUpdateOne {
	zpuo.mutation.ResetPct()
	zpuo.mutation.SetPct(f)
	return zpuo
}

// SetNillablePct sets the "pct" field if the given value is not nil.
func (zpuo *ZoneProgressUpdateOne) SetNillablePct(f *float64) *ZoneProgressUpdateOne {
	if f != nil {
		zpuo.SetPct(*f)
	}
	return zpuo
}

// AddPct adds f to the "pct" field.
func (zpuo *ZoneProgressUpdateOne) AddPct(f float64) *ZoneProgressUpdateOne {
	zpuo.mutation.AddPct(f)
	return zpuo
}

// Mutation returns the ZoneProgressMutation object of the builder.
func (zpuo *ZoneProgressUpdateOne) Mutation() *ZoneProgressMutation {
	return zpuo.mutation
}

// Where appends a list predicates to the ZoneProgressUpdate builder.
func (zpuo *ZoneProgressUpdateOne) Where(ps ...predicate.ZoneProgress) *ZoneProgressUpdateOne {
	zpuo.mutation.Where(ps...)
	return zpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (zpuo *ZoneProgressUpdateOne) Select(field string, fields ...string) *ZoneProgressUpdateOne {
	zpuo.fields = append([]string{field}, fields...)
	return zpuo
}

// Save executes the query and returns the updated ZoneProgress entity.
func (zpuo *ZoneProgressUpdateOne) Save(ctx context.Context) (*ZoneProgress, error) {
	return withHooks(ctx, zpuo.sqlSave, zpuo.mutation, zpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (zpuo *ZoneProgressUpdateOne) SaveX(ctx context.Context) *ZoneProgress {
	node, err := zpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (zpuo *ZoneProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := zpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (zpuo *ZoneProgressUpdateOne) ExecX(ctx context.Context) {
	if err := zpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (zpuo *ZoneProgressUpdateOne) check() error {
	if v, ok := zpuo.mutation.Learner(); ok {
		if err := zoneprogress.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "ZoneProgress.learner": %w`, err)}
		}
	}
	return nil
}

func (zpuo *ZoneProgressUpdateOne) sqlSave(ctx context.Context) (_node *ZoneProgress, err error) {
	if err := zpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(zoneprogress.Table, zoneprogress.Columns, sqlgraph.NewFieldSpec(zoneprogress.FieldID, field.TypeInt))
	id, ok := zpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ZoneProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := zpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, zoneprogress.FieldID)
		for _, f := range fields {
			if !zoneprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != zoneprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := zpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := zpuo.mutation.Learner(); ok {
		_spec.SetField(zoneprogress.FieldLearner, field.TypeString, value)
	}
	if value, ok := zpuo.mutation.ZoneID(); ok {
		_spec.SetField(zoneprogress.FieldZoneID, field.TypeInt, value)
	}
	if value, ok := zpuo.mutation.AddedZoneID(); ok {
		_spec.AddField(zoneprogress.FieldZoneID, field.TypeInt, value)
	}
	if value, ok := zpuo.mutation.Pct(); ok {
		_spec.SetField(zoneprogress.FieldPct, field.TypeFloat64, value)
	}
	if value, ok := zpuo.mutation.AddedPct(); ok {
		_spec.AddField(zoneprogress.FieldPct, field.TypeFloat64, value)
	}
	_node = &ZoneProgress{config: zpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, zpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{zoneprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	zpuo.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/predicate"
	"github.com/pygrounds/adaptive/ent/zoneprogress"
)

// ZoneProgressDelete is the builder for deleting a ZoneProgress entity.
type ZoneProgressDelete struct {
	config
	hooks    []Hook
	mutation *ZoneProgressMutation
}

// Where appends a list predicates to the ZoneProgressDelete builder.
func (zpd *ZoneProgressDelete) Where(ps ...predicate.ZoneProgress) *ZoneProgressDelete {
	zpd.mutation.Where(ps...)
	return zpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (zpd *ZoneProgressDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, zpd.sqlExec, zpd.mutation, zpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (zpd *ZoneProgressDelete) ExecX(ctx context.Context) int {
	n, err := zpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (zpd *ZoneProgressDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(zoneprogress.Table, sqlgraph.NewFieldSpec(zoneprogress.FieldID, field.TypeInt))
	if ps := zpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, zpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	zpd.mutation.done = true
	return affected, err
}

// ZoneProgressDeleteOne is the builder for deleting a single ZoneProgress entity.
type ZoneProgressDeleteOne struct {
	zpd *ZoneProgressDelete
}

// Where appends a list predicates to the ZoneProgressDelete builder.
func (zpdo *ZoneProgressDeleteOne) Where(ps ...predicate.ZoneProgress) *ZoneProgressDeleteOne {
	zpdo.zpd.mutation.Where(ps...)
	return zpdo
}

// Exec executes the deletion query.
func (zpdo *ZoneProgressDeleteOne) Exec(ctx context.Context) error {
	n, err := zpdo.zpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{zoneprogress.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (zpdo *ZoneProgressDeleteOne) ExecX(ctx context.Context) {
	if err := zpdo.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/predicate"
	"github.com/pygrounds/adaptive/ent/zone"
)

// ZoneDelete is the builder for deleting a Zone entity.
type ZoneDelete struct {
	config
	hooks    []Hook
	mutation *ZoneMutation
}

// Where appends a list predicates to the ZoneDelete builder.
func (zd *ZoneDelete) Where(ps ...predicate.Zone) *ZoneDelete {
	zd.mutation.Where(ps...)
	return zd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (zd *ZoneDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, zd.sqlExec, zd.mutation, zd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (zd *ZoneDelete) ExecX(ctx context.Context) int {
	n, err := zd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (zd *ZoneDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(zone.Table, sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt))
	if ps := zd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, zd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	zd.mutation.done = true
	return affected, err
}

// ZoneDeleteOne is the builder for deleting a single Zone entity.
type ZoneDeleteOne struct {
	zd *ZoneDelete
}

// Where appends a list predicates to the ZoneDelete builder.
func (zdo *ZoneDeleteOne) Where(ps ...predicate.Zone) *ZoneDeleteOne {
	zdo.zd.mutation.Where(ps...)
	return zdo
}

// Exec executes the deletion query.
func (zdo *ZoneDeleteOne) Exec(ctx context.Context) error {
	n, err := zdo.zd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{zone.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (zdo *ZoneDeleteOne) ExecX(ctx context.Context) {
	if err := zdo.Exec(ctx); err != nil {
		panic(err)
	}
}

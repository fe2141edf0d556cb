// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/predicate"
	"github.com/pygrounds/adaptive/ent/topicproficiency"
)

// TopicProficiencyDelete is the builder for deleting a TopicProficiency entity.
type TopicProficiencyDelete struct {
	config
	hooks    []Hook
	mutation *TopicProficiencyMutation
}

// Where appends a list predicates to the TopicProficiencyDelete builder.
func (tpd *TopicProficiencyDelete) Where(ps ...predicate.TopicProficiency) *TopicProficiencyDelete {
	tpd.mutation.Where(ps...)
	return tpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (tpd *TopicProficiencyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, tpd.sqlExec, tpd.mutation, tpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (tpd *TopicProficiencyDelete) ExecX(ctx context.Context) int {
	n, err := tpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (tpd *TopicProficiencyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(topicproficiency.Table, sqlgraph.NewFieldSpec(topicproficiency.FieldID, field.TypeInt))
	if ps := tpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, tpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	tpd.mutation.done = true
	return affected, err
}

// TopicProficiencyDeleteOne is the builder for deleting a single TopicProficiency entity.
type TopicProficiencyDeleteOne struct {
	tpd *TopicProficiencyDelete
}

// Where appends a list predicates to the TopicProficiencyDelete builder.
func (tpdo *TopicProficiencyDeleteOne) Where(ps ...predicate.TopicProficiency) *TopicProficiencyDeleteOne {
	tpdo.tpd.mutation.Where(ps...)
	return tpdo
}

// Exec executes the deletion query.
func (tpdo *TopicProficiencyDeleteOne) Exec(ctx context.Context) error {
	n, err := tpdo.tpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{topicproficiency.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (tpdo *TopicProficiencyDeleteOne) ExecX(ctx context.Context) {
	if err := tpdo.Exec(ctx); err != nil {
		panic(err)
	}
}

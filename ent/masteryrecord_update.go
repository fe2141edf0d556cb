// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/masteryrecord"
	"github.com/pygrounds/adaptive/ent/predicate"
)

// MasteryRecordUpdate is the builder for updating MasteryRecord entities.
type MasteryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (mru *MasteryRecordUpdate) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdate {
	mru.mutation.Where(ps...)
	return mru
}

// SetLearner sets the "learner" field.
func (mru *MasteryRecordUpdate) SetLearner(s string) *MasteryRecordUpdate {
	mru.mutation.SetLearner(s)
	return mru
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (mru *MasteryRecordUpdate) SetNillableLearner(s *string) *MasteryRecordUpdate {
	if s != nil {
		mru.SetLearner(*s)
	}
	return mru
}

// SetSubtopicID sets the "subtopic_id" field.
func (mru *MasteryRecordUpdate) SetSubtopicID(i int) *MasteryRecordUpdate {
	mru.mutation.ResetSubtopicID()
	mru.mutation.SetSubtopicID(i)
	return mru
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (mru *MasteryRecordUpdate) SetNillableSubtopicID(i *int) *MasteryRecordUpdate {
	if i != nil {
		mru.SetSubtopicID(*i)
	}
	return mru
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (mru *MasteryRecordUpdate) AddSubtopicID(i int) *MasteryRecordUpdate {
	mru.mutation.AddSubtopicID(i)
	return mru
}

// SetPct sets the "pct" field.
func (mru *MasteryRecordUpdate) SetPct(f float64) *MasteryRecordUpdate {
	mru.mutation.ResetPct()
	mru.mutation.SetPct(f)
	return mru
}

// SetNillablePct sets the "pct" field if the given value is not nil.
func (mru *MasteryRecordUpdate) SetNillablePct(f *float64) *MasteryRecordUpdate {
	if f != nil {
		mru.SetPct(*f)
	}
	return mru
}

// AddPct adds f to the "pct" field.
func (mru *MasteryRecordUpdate) AddPct(f float64) *MasteryRecordUpdate {
	mru.mutation.AddPct(f)
	return mru
}

// SetUpdatedAt sets the "updated_at" field.
func (mru *MasteryRecordUpdate) SetUpdatedAt(t time.Time) *MasteryRecordUpdate {
	mru.mutation.SetUpdatedAt(t)
	return mru
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (mru *MasteryRecordUpdate) Mutation() *MasteryRecordMutation {
	return mru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mru *MasteryRecordUpdate) Save(ctx context.Context) (int, error) {
	mru.defaults()
	return withHooks(ctx, mru.sqlSave, mru.mutation, mru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mru *MasteryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := mru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mru *MasteryRecordUpdate) Exec(ctx context.Context) error {
	_, err := mru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mru *MasteryRecordUpdate) ExecX(ctx context.Context) {
	if err := mru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mru *MasteryRecordUpdate) defaults() {
	if _, ok := mru.mutation.UpdatedAt(); !ok {
		v := masteryrecord.UpdateDefaultUpdatedAt()
		mru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mru *MasteryRecordUpdate) check() error {
	if v, ok := mru.mutation.Learner(); ok {
		if err := masteryrecord.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner": %w`, err)}
		}
	}
	return nil
}

func (mru *MasteryRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := mru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	if ps := mru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mru.mutation.Learner(); ok {
		_spec.SetField(masteryrecord.FieldLearner, field.TypeString, value)
	}
	if value, ok := mru.mutation.SubtopicID(); ok {
		_spec.SetField(masteryrecord.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := mru.mutation.AddedSubtopicID(); ok {
		_spec.AddField(masteryrecord.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := mru.mutation.Pct(); ok {
		_spec.SetField(masteryrecord.FieldPct, field.TypeFloat64, value)
	}
	if value, ok := mru.mutation.AddedPct(); ok {
		_spec.AddField(masteryrecord.FieldPct, field.TypeFloat64, value)
	}
	if value, ok := mru.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mru.mutation.done = true
	return n, nil
}

// MasteryRecordUpdateOne is the builder for updating a single MasteryRecord entity.
type MasteryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryRecordMutation
}

// SetLearner sets the "learner" field.
func (mruo *MasteryRecordUpdateOne) SetLearner(s string) *MasteryRecordUpdateOne {
	mruo.mutation.SetLearner(s)
	return mruo
}

// SetNillableLearner sets the "learner" field if the given value is not nil.
func (mruo *MasteryRecordUpdateOne) SetNillableLearner(s *string) *MasteryRecordUpdateOne {
	if s != nil {
		mruo.SetLearner(*s)
	}
	return mruo
}

// SetSubtopicID sets the "subtopic_id" field.
func (mruo *MasteryRecordUpdateOne) SetSubtopicID(i int) *MasteryRecordUpdateOne {
	mruo.mutation.ResetSubtopicID()
	mruo.mutation.SetSubtopicID(i)
	return mruo
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (mruo *MasteryRecordUpdateOne) SetNillableSubtopicID(i *int) *MasteryRecordUpdateOne {
	if i != nil {
		mruo.SetSubtopicID(*i)
	}
	return mruo
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (mruo *MasteryRecordUpdateOne) AddSubtopicID(i int) *MasteryRecordUpdateOne {
	mruo.mutation.AddSubtopicID(i)
	return mruo
}

// SetPct sets the "pct" field.
func (mruo *MasteryRecordUpdateOne) SetPct(f float64) *MasteryRecordUpdateOne {
	mruo.mutation.ResetPct()
	mruo.mutation.SetPct(f)
	return mruo
}

// SetNillablePct sets the "pct" field if the given value is not nil.
func (mruo *MasteryRecordUpdateOne) SetNillablePct(f *float64) *MasteryRecordUpdateOne {
	if f != nil {
		mruo.SetPct(*f)
	}
	return mruo
}

// AddPct adds f to the "pct" field.
func (mruo *MasteryRecordUpdateOne) AddPct(f float64) *MasteryRecordUpdateOne {
	mruo.mutation.AddPct(f)
	return mruo
}

// SetUpdatedAt sets the "updated_at" field.
func (mruo *MasteryRecordUpdateOne) SetUpdatedAt(t time.Time) *MasteryRecordUpdateOne {
	mruo.mutation.SetUpdatedAt(t)
	return mruo
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (mruo *MasteryRecordUpdateOne) Mutation() *MasteryRecordMutation {
	return mruo.mutation
}

// Where appends a list predicates to the MasteryRecordUpdate builder.
func (mruo *MasteryRecordUpdateOne) Where(ps ...predicate.MasteryRecord) *MasteryRecordUpdateOne {
	mruo.mutation.Where(ps...)
	return mruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (mruo *MasteryRecordUpdateOne) Select(field string, fields ...string) *MasteryRecordUpdateOne {
	mruo.fields = append([]string{field}, fields...)
	return mruo
}

// Save executes the query and returns the updated MasteryRecord entity.
func (mruo *MasteryRecordUpdateOne) Save(ctx context.Context) (*MasteryRecord, error) {
	mruo.defaults()
	return withHooks(ctx, mruo.sqlSave, mruo.mutation, mruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mruo *MasteryRecordUpdateOne) SaveX(ctx context.Context) *MasteryRecord {
	node, err := mruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (mruo *MasteryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := mruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mruo *MasteryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := mruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mruo *MasteryRecordUpdateOne) defaults() {
	if _, ok := mruo.mutation.UpdatedAt(); !ok {
		v := masteryrecord.UpdateDefaultUpdatedAt()
		mruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mruo *MasteryRecordUpdateOne) check() error {
	if v, ok := mruo.mutation.Learner(); ok {
		if err := masteryrecord.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner": %w`, err)}
		}
	}
	return nil
}

func (mruo *MasteryRecordUpdateOne) sqlSave(ctx context.Context) (_node *MasteryRecord, err error) {
	if err := mruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryrecord.Table, masteryrecord.Columns, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	id, ok := mruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := mruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryrecord.FieldID)
		for _, f := range fields {
			if !masteryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := mruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mruo.mutation.Learner(); ok {
		_spec.SetField(masteryrecord.FieldLearner, field.TypeString, value)
	}
	if value, ok := mruo.mutation.SubtopicID(); ok {
		_spec.SetField(masteryrecord.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := mruo.mutation.AddedSubtopicID(); ok {
		_spec.AddField(masteryrecord.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := mruo.mutation.Pct(); ok {
		_spec.SetField(masteryrecord.FieldPct, field.TypeFloat64, value)
	}
	if value, ok := mruo.mutation.AddedPct(); ok {
		_spec.AddField(masteryrecord.FieldPct, field.TypeFloat64, value)
	}
	if value, ok := mruo.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MasteryRecord{config: mruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, mruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	mruo.mutation.done = true
	return _node, nil
}

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
)

// MasteryRecordCreate is the builder for creating a MasteryRecord entity.
type MasteryRecordCreate struct {
	config
	mutation *MasteryRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearner sets the "learner" field.
func (mrc *MasteryRecordCreate) SetLearner(s string) *MasteryRecordCreate {
	mrc.mutation.SetLearner(s)
	return mrc
}

// SetSubtopicID sets the "subtopic_id" field.
func (mrc *MasteryRecordCreate) SetSubtopicID(i int) *MasteryRecordCreate {
	mrc.mutation.SetSubtopicID(i)
	return mrc
}

// SetPct sets the "pct" field.
func (mrc *MasteryRecordCreate) SetPct(f float64) *MasteryRecordCreate {
	mrc.mutation.SetPct(f)
	return mrc
}

// SetUpdatedAt sets the "updated_at" field.
func (mrc *MasteryRecordCreate) SetUpdatedAt(t time.Time) *MasteryRecordCreate {
	mrc.mutation.SetUpdatedAt(t)
	return mrc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (mrc *MasteryRecordCreate) SetNillableUpdatedAt(t *time.Time) *MasteryRecordCreate {
	if t != nil {
		mrc.SetUpdatedAt(*t)
	}
	return mrc
}

// Mutation returns the MasteryRecordMutation object of the builder.
func (mrc *MasteryRecordCreate) Mutation() *MasteryRecordMutation {
	return mrc.mutation
}

// Save creates the MasteryRecord in the database.
func (mrc *MasteryRecordCreate) Save(ctx context.Context) (*MasteryRecord, error) {
	mrc.defaults()
	return withHooks(ctx, mrc.sqlSave, mrc.mutation, mrc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mrc *MasteryRecordCreate) SaveX(ctx context.Context) *MasteryRecord {
	v, err := mrc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mrc *MasteryRecordCreate) Exec(ctx context.Context) error {
	_, err := mrc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mrc *MasteryRecordCreate) ExecX(ctx context.Context) {
	if err := mrc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mrc *MasteryRecordCreate) defaults() {
	if _, ok := mrc.mutation.UpdatedAt(); !ok {
		v := masteryrecord.DefaultUpdatedAt()
		mrc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mrc *MasteryRecordCreate) check() error {
	if _, ok := mrc.mutation.Learner(); !ok {
		return &ValidationError{Name: "learner", err: errors.New(`ent: missing required field "MasteryRecord.learner"`)}
	}
	if v, ok := mrc.mutation.Learner(); ok {
		if err := masteryrecord.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "MasteryRecord.learner": %w`, err)}
		}
	}
	if _, ok := mrc.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "MasteryRecord.subtopic_id"`)}
	}
	if _, ok := mrc.mutation.Pct(); !ok {
		return &ValidationError{Name: "pct", err: errors.New(`ent: missing required field "MasteryRecord.pct"`)}
	}
	if _, ok := mrc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MasteryRecord.updated_at"`)}
	}
	return nil
}

func (mrc *MasteryRecordCreate) sqlSave(ctx context.Context) (*MasteryRecord, error) {
	if err := mrc.check(); err != nil {
		return nil, err
	}
	_node, _spec := mrc.createSpec()
	if err := sqlgraph.CreateNode(ctx, mrc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	mrc.mutation.id = &_node.ID
	mrc.mutation.done = true
	return _node, nil
}

func (mrc *MasteryRecordCreate) createSpec() (*MasteryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &MasteryRecord{config: mrc.config}
		_spec = sqlgraph.NewCreateSpec(masteryrecord.Table, sqlgraph.NewFieldSpec(masteryrecord.FieldID, field.TypeInt))
	)
	_spec.OnConflict = mrc.conflict
	if value, ok := mrc.mutation.Learner(); ok {
		_spec.SetField(masteryrecord.FieldLearner, field.TypeString, value)
		_node.Learner = value
	}
	if value, ok := mrc.mutation.SubtopicID(); ok {
		_spec.SetField(masteryrecord.FieldSubtopicID, field.TypeInt, value)
		_node.SubtopicID = value
	}
	if value, ok := mrc.mutation.Pct(); ok {
		_spec.SetField(masteryrecord.FieldPct, field.TypeFloat64, value)
		_node.Pct = value
	}
	if value, ok := mrc.mutation.UpdatedAt(); ok {
		_spec.SetField(masteryrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.Create().
//		SetLearner(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (mrc *MasteryRecordCreate) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertOne {
	mrc.conflict = opts
	return &MasteryRecordUpsertOne{
		create: mrc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (mrc *MasteryRecordCreate) OnConflictColumns(columns ...string) *MasteryRecordUpsertOne {
	mrc.conflict = append(mrc.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertOne{
		create: mrc,
	}
}

type (
	// MasteryRecordUpsertOne is the builder for "upsert"-ing
	//  one MasteryRecord node.
	MasteryRecordUpsertOne struct {
		create *MasteryRecordCreate
	}

	// MasteryRecordUpsert is the "OnConflict" setter.
	MasteryRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearner sets the "learner" field.
func (u *MasteryRecordUpsert) SetLearner(v string) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldLearner, v)
	return u
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateLearner() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldLearner)
	return u
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *MasteryRecordUpsert) SetSubtopicID(v int) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldSubtopicID, v)
	return u
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateSubtopicID() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldSubtopicID)
	return u
}

// AddSubtopicID adds v to the "subtopic_id" field.
func (u *MasteryRecordUpsert) AddSubtopicID(v int) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldSubtopicID, v)
	return u
}

// SetPct sets the "pct" field.
func (u *MasteryRecordUpsert) SetPct(v float64) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldPct, v)
	return u
}

// UpdatePct sets the "pct" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdatePct() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldPct)
	return u
}

// AddPct adds v to the "pct" field.
func (u *MasteryRecordUpsert) AddPct(v float64) *MasteryRecordUpsert {
	u.Add(masteryrecord.FieldPct, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MasteryRecordUpsert) SetUpdatedAt(v time.Time) *MasteryRecordUpsert {
	u.Set(masteryrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MasteryRecordUpsert) UpdateUpdatedAt() *MasteryRecordUpsert {
	u.SetExcluded(masteryrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertOne) UpdateNewValues() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MasteryRecordUpsertOne) Ignore() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertOne) DoNothing() *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreate.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertOne) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *MasteryRecordUpsertOne) SetLearner(v string) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateLearner() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLearner()
	})
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *MasteryRecordUpsertOne) SetSubtopicID(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetSubtopicID(v)
	})
}

// AddSubtopicID adds v to the "subtopic_id" field.
func (u *MasteryRecordUpsertOne) AddSubtopicID(v int) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddSubtopicID(v)
	})
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateSubtopicID() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateSubtopicID()
	})
}

// SetPct sets the "pct" field.
func (u *MasteryRecordUpsertOne) SetPct(v float64) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetPct(v)
	})
}

// AddPct adds v to the "pct" field.
func (u *MasteryRecordUpsertOne) AddPct(v float64) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddPct(v)
	})
}

// UpdatePct sets the "pct" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdatePct() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdatePct()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MasteryRecordUpsertOne) SetUpdatedAt(v time.Time) *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertOne) UpdateUpdatedAt() *MasteryRecordUpsertOne {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MasteryRecordUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MasteryRecordUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MasteryRecordCreateBulk is the builder for creating many MasteryRecord entities in bulk.
type MasteryRecordCreateBulk struct {
	config
	err      error
	builders []*MasteryRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the MasteryRecord entities in the database.
func (mrcb *MasteryRecordCreateBulk) Save(ctx context.Context) ([]*MasteryRecord, error) {
	if mrcb.err != nil {
		return nil, mrcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mrcb.builders))
	nodes := make([]*MasteryRecord, len(mrcb.builders))
	mutators := make([]Mutator, len(mrcb.builders))
	for i := range mrcb.builders {
		func(i int, root context.Context) {
			builder := mrcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MasteryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, mrcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = mrcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mrcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, mrcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mrcb *MasteryRecordCreateBulk) SaveX(ctx context.Context) []*MasteryRecord {
	v, err := mrcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mrcb *MasteryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := mrcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mrcb *MasteryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := mrcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MasteryRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MasteryRecordUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (mrcb *MasteryRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *MasteryRecordUpsertBulk {
	mrcb.conflict = opts
	return &MasteryRecordUpsertBulk{
		create: mrcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (mrcb *MasteryRecordCreateBulk) OnConflictColumns(columns ...string) *MasteryRecordUpsertBulk {
	mrcb.conflict = append(mrcb.conflict, sql.ConflictColumns(columns...))
	return &MasteryRecordUpsertBulk{
		create: mrcb,
	}
}

// MasteryRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of MasteryRecord nodes.
type MasteryRecordUpsertBulk struct {
	create *MasteryRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) UpdateNewValues() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MasteryRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MasteryRecordUpsertBulk) Ignore() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MasteryRecordUpsertBulk) DoNothing() *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MasteryRecordCreateBulk.OnConflict
// documentation for more info.
func (u *MasteryRecordUpsertBulk) Update(set func(*MasteryRecordUpsert)) *MasteryRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MasteryRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *MasteryRecordUpsertBulk) SetLearner(v string) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateLearner() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateLearner()
	})
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *MasteryRecordUpsertBulk) SetSubtopicID(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetSubtopicID(v)
	})
}

// AddSubtopicID adds v to the "subtopic_id" field.
func (u *MasteryRecordUpsertBulk) AddSubtopicID(v int) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddSubtopicID(v)
	})
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateSubtopicID() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateSubtopicID()
	})
}

// SetPct sets the "pct" field.
func (u *MasteryRecordUpsertBulk) SetPct(v float64) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetPct(v)
	})
}

// AddPct adds v to the "pct" field.
func (u *MasteryRecordUpsertBulk) AddPct(v float64) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.AddPct(v)
	})
}

// UpdatePct sets the "pct" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdatePct() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdatePct()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MasteryRecordUpsertBulk) SetUpdatedAt(v time.Time) *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MasteryRecordUpsertBulk) UpdateUpdatedAt() *MasteryRecordUpsertBulk {
	return u.Update(func(s *MasteryRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *MasteryRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MasteryRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MasteryRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MasteryRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

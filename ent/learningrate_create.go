// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/learningrate"
)

// LearningRateCreate is the builder for creating a LearningRate entity.
type LearningRateCreate struct {
	config
	mutation *LearningRateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearner sets the "learner" field.
func (lrc *LearningRateCreate) SetLearner(s string) *LearningRateCreate {
	lrc.mutation.SetLearner(s)
	return lrc
}

// SetSubtopicID sets the "subtopic_id" field.
func (lrc *LearningRateCreate) SetSubtopicID(i int) *LearningRateCreate {
	lrc.mutation.SetSubtopicID(i)
	return lrc
}

// SetScale sets the "scale" field.
func (lrc *LearningRateCreate) SetScale(f float64) *LearningRateCreate {
	lrc.mutation.SetScale(f)
	return lrc
}

// SetNillableScale sets the "scale" field if the given value is not nil.
func (lrc *LearningRateCreate) SetNillableScale(f *float64) *LearningRateCreate {
	if f != nil {
		lrc.SetScale(*f)
	}
	return lrc
}

// SetCount sets the "count" field.
func (lrc *LearningRateCreate) SetCount(i int) *LearningRateCreate {
	lrc.mutation.SetCount(i)
	return lrc
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (lrc *LearningRateCreate) SetNillableCount(i *int) *LearningRateCreate {
	if i != nil {
		lrc.SetCount(*i)
	}
	return lrc
}

// Mutation returns the LearningRateMutation object of the builder.
func (lrc *LearningRateCreate) Mutation() *LearningRateMutation {
	return lrc.mutation
}

// Save creates the LearningRate in the database.
func (lrc *LearningRateCreate) Save(ctx context.Context) (*LearningRate, error) {
	lrc.defaults()
	return withHooks(ctx, lrc.sqlSave, lrc.mutation, lrc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lrc *LearningRateCreate) SaveX(ctx context.Context) *LearningRate {
	v, err := lrc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lrc *LearningRateCreate) Exec(ctx context.Context) error {
	_, err := lrc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lrc *LearningRateCreate) ExecX(ctx context.Context) {
	if err := lrc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lrc *LearningRateCreate) defaults() {
	if _, ok := lrc.mutation.Scale(); !ok {
		v := learningrate.DefaultScale
		lrc.mutation.SetScale(v)
	}
	if _, ok := lrc.mutation.Count(); !ok {
		v := learningrate.DefaultCount
		lrc.mutation.SetCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lrc *LearningRateCreate) check() error {
	if _, ok := lrc.mutation.Learner(); !ok {
		return &ValidationError{Name: "learner", err: errors.New(`ent: missing required field "LearningRate.learner"`)}
	}
	if v, ok := lrc.mutation.Learner(); ok {
		if err := learningrate.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "LearningRate.learner": %w`, err)}
		}
	}
	if _, ok := lrc.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "LearningRate.subtopic_id"`)}
	}
	if _, ok := lrc.mutation.Scale(); !ok {
		return &ValidationError{Name: "scale", err: errors.New(`ent: missing required field "LearningRate.scale"`)}
	}
	if _, ok := lrc.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "LearningRate.count"`)}
	}
	return nil
}

func (lrc *LearningRateCreate) sqlSave(ctx context.Context) (*LearningRate, error) {
	if err := lrc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lrc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lrc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lrc.mutation.id = &_node.ID
	lrc.mutation.done = true
	return _node, nil
}

func (lrc *LearningRateCreate) createSpec() (*LearningRate, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningRate{config: lrc.config}
		_spec = sqlgraph.NewCreateSpec(learningrate.Table, sqlgraph.NewFieldSpec(learningrate.FieldID, field.TypeInt))
	)
	_spec.OnConflict = lrc.conflict
	if value, ok := lrc.mutation.Learner(); ok {
		_spec.SetField(learningrate.FieldLearner, field.TypeString, value)
		_node.Learner = value
	}
	if value, ok := lrc.mutation.SubtopicID(); ok {
		_spec.SetField(learningrate.FieldSubtopicID, field.TypeInt, value)
		_node.SubtopicID = value
	}
	if value, ok := lrc.mutation.Scale(); ok {
		_spec.SetField(learningrate.FieldScale, field.TypeFloat64, value)
		_node.Scale = value
	}
	if value, ok := lrc.mutation.Count(); ok {
		_spec.SetField(learningrate.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearningRate.Create().
//		SetLearner(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearningRateUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (lrc *LearningRateCreate) OnConflict(opts ...sql.ConflictOption) *LearningRateUpsertOne {
	lrc.conflict = opts
	return &LearningRateUpsertOne{
		create: lrc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearningRate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (lrc *LearningRateCreate) OnConflictColumns(columns ...string) *LearningRateUpsertOne {
	lrc.conflict = append(lrc.conflict, sql.ConflictColumns(columns...))
	return &LearningRateUpsertOne{
		create: lrc,
	}
}

type (
	// LearningRateUpsertOne is the builder for "upsert"-ing
	//  one LearningRate node.
	LearningRateUpsertOne struct {
		create *LearningRateCreate
	}

	// LearningRateUpsert is the "OnConflict" setter.
	LearningRateUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearner sets the "learner" field.
func (u *LearningRateUpsert) SetLearner(v string) *LearningRateUpsert {
	u.Set(learningrate.FieldLearner, v)
	return u
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *LearningRateUpsert) UpdateLearner() *LearningRateUpsert {
	u.SetExcluded(learningrate.FieldLearner)
	return u
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *LearningRateUpsert) SetSubtopicID(v int) *LearningRateUpsert {
	u.Set(learningrate.FieldSubtopicID, v)
	return u
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *LearningRateUpsert) UpdateSubtopicID() *LearningRateUpsert {
	u.SetExcluded(learningrate.FieldSubtopicID)
	return u
}

// AddSubtopicID adds v to the "subtopic_id" field.
func (u *LearningRateUpsert) AddSubtopicID(v int) *LearningRateUpsert {
	u.Add(learningrate.FieldSubtopicID, v)
	return u
}

// SetScale sets the "scale" field.
func (u *LearningRateUpsert) SetScale(v float64) *LearningRateUpsert {
	u.Set(learningrate.FieldScale, v)
	return u
}

// UpdateScale sets the "scale" field to the value that was provided on create.
func (u *LearningRateUpsert) UpdateScale() *LearningRateUpsert {
	u.SetExcluded(learningrate.FieldScale)
	return u
}

// AddScale adds v to the "scale" field.
func (u *LearningRateUpsert) AddScale(v float64) *LearningRateUpsert {
	u.Add(learningrate.FieldScale, v)
	return u
}

// SetCount sets the "count" field.
func (u *LearningRateUpsert) SetCount(v int) *LearningRateUpsert {
	u.Set(learningrate.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *LearningRateUpsert) UpdateCount() *LearningRateUpsert {
	u.SetExcluded(learningrate.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *LearningRateUpsert) AddCount(v int) *LearningRateUpsert {
	u.Add(learningrate.FieldCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LearningRate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LearningRateUpsertOne) UpdateNewValues() *LearningRateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearningRate.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LearningRateUpsertOne) Ignore() *LearningRateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearningRateUpsertOne) DoNothing() *LearningRateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearningRateCreate.OnConflict
// documentation for more info.
func (u *LearningRateUpsertOne) Update(set func(*LearningRateUpsert)) *LearningRateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearningRateUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *LearningRateUpsertOne) SetLearner(v string) *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *LearningRateUpsertOne) UpdateLearner() *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.UpdateLearner()
	})
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *LearningRateUpsertOne) SetSubtopicID(v int) *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.SetSubtopicID(v)
	})
}

// AddSubtopicID adds v to the "subtopic_id" field.
func (u *LearningRateUpsertOne) AddSubtopicID(v int) *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.AddSubtopicID(v)
	})
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *LearningRateUpsertOne) UpdateSubtopicID() *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.UpdateSubtopicID()
	})
}

// SetScale sets the "scale" field.
func (u *LearningRateUpsertOne) SetScale(v float64) *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.SetScale(v)
	})
}

// AddScale adds v to the "scale" field.
func (u *LearningRateUpsertOne) AddScale(v float64) *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.AddScale(v)
	})
}

// UpdateScale sets the "scale" field to the value that was provided on create.
func (u *LearningRateUpsertOne) UpdateScale() *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.UpdateScale()
	})
}

// SetCount sets the "count" field.
func (u *LearningRateUpsertOne) SetCount(v int) *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *LearningRateUpsertOne) AddCount(v int) *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *LearningRateUpsertOne) UpdateCount() *LearningRateUpsertOne {
	return u.Update(func(s *LearningRateUpsert) {
		s.UpdateCount()
	})
}

// Exec executes the query.
func (u *LearningRateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearningRateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearningRateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LearningRateUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LearningRateUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LearningRateCreateBulk is the builder for creating many LearningRate entities in bulk.
type LearningRateCreateBulk struct {
	config
	err      error
	builders []*LearningRateCreate
	conflict []sql.ConflictOption
}

// Save creates the LearningRate entities in the database.
func (lrcb *LearningRateCreateBulk) Save(ctx context.Context) ([]*LearningRate, error) {
	if lrcb.err != nil {
		return nil, lrcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lrcb.builders))
	nodes := make([]*LearningRate, len(lrcb.builders))
	mutators := make([]Mutator, len(lrcb.builders))
	for i := range lrcb.builders {
		func(i int, root context.Context) {
			builder := lrcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningRateMutation)
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
					_, err = mutators[i+1].Mutate(root, lrcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = lrcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lrcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lrcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lrcb *LearningRateCreateBulk) SaveX(ctx context.Context) []*LearningRate {
	v, err := lrcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lrcb *LearningRateCreateBulk) Exec(ctx context.Context) error {
	_, err := lrcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lrcb *LearningRateCreateBulk) ExecX(ctx context.Context) {
	if err := lrcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearningRate.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearningRateUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (lrcb *LearningRateCreateBulk) OnConflict(opts ...sql.ConflictOption) *LearningRateUpsertBulk {
	lrcb.conflict = opts
	return &LearningRateUpsertBulk{
		create: lrcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearningRate.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (lrcb *LearningRateCreateBulk) OnConflictColumns(columns ...string) *LearningRateUpsertBulk {
	lrcb.conflict = append(lrcb.conflict, sql.ConflictColumns(columns...))
	return &LearningRateUpsertBulk{
		create: lrcb,
	}
}

// LearningRateUpsertBulk is the builder for "upsert"-ing
// a bulk of LearningRate nodes.
type LearningRateUpsertBulk struct {
	create *LearningRateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LearningRate.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LearningRateUpsertBulk) UpdateNewValues() *LearningRateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearningRate.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LearningRateUpsertBulk) Ignore() *LearningRateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearningRateUpsertBulk) DoNothing() *LearningRateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearningRateCreateBulk.OnConflict
// documentation for more info.
func (u *LearningRateUpsertBulk) Update(set func(*LearningRateUpsert)) *LearningRateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearningRateUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *LearningRateUpsertBulk) SetLearner(v string) *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *LearningRateUpsertBulk) UpdateLearner() *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.UpdateLearner()
	})
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *LearningRateUpsertBulk) SetSubtopicID(v int) *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.SetSubtopicID(v)
	})
}

// AddSubtopicID adds v to the "subtopic_id" field.
func (u *LearningRateUpsertBulk) AddSubtopicID(v int) *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.AddSubtopicID(v)
	})
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *LearningRateUpsertBulk) UpdateSubtopicID() *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.UpdateSubtopicID()
	})
}

// SetScale sets the "scale" field.
func (u *LearningRateUpsertBulk) SetScale(v float64) *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.SetScale(v)
	})
}

// AddScale adds v to the "scale" field.
func (u *LearningRateUpsertBulk) AddScale(v float64) *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.AddScale(v)
	})
}

// UpdateScale sets the "scale" field to the value that was provided on create.
func (u *LearningRateUpsertBulk) UpdateScale() *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.UpdateScale()
	})
}

// SetCount sets the "count" field.
func (u *LearningRateUpsertBulk) SetCount(v int) *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *LearningRateUpsertBulk) AddCount(v int) *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *LearningRateUpsertBulk) UpdateCount() *LearningRateUpsertBulk {
	return u.Update(func(s *LearningRateUpsert) {
		s.UpdateCount()
	})
}

// Exec executes the query.
func (u *LearningRateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LearningRateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearningRateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearningRateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

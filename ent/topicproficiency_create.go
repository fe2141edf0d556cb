// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/topicproficiency"
)

// TopicProficiencyCreate is the builder for creating a TopicProficiency entity.
type TopicProficiencyCreate struct {
	config
	mutation *TopicProficiencyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearner sets the "learner" field.
func (tpc *TopicProficiencyCreate) SetLearner(s string) *TopicProficiencyCreate {
	tpc.mutation.SetLearner(s)
	return tpc
}

// SetTopicID sets the "topic_id" field.
func (tpc *TopicProficiencyCreate) SetTopicID(i int) *TopicProficiencyCreate {
	tpc.mutation.SetTopicID(i)
	return tpc
}

// SetPct sets the "pct" field.
func (tpc *TopicProficiencyCreate) SetPct(f float64) *TopicProficiencyCreate {
	tpc.mutation.SetPct(f)
	return tpc
}

// Mutation returns the TopicProficiencyMutation object of the builder.
func (tpc *TopicProficiencyCreate) Mutation() *TopicProficiencyMutation {
	return tpc.mutation
}

// Save creates the TopicProficiency in the database.
func (tpc *TopicProficiencyCreate) Save(ctx context.Context) (*TopicProficiency, error) {
	return withHooks(ctx, tpc.sqlSave, tpc.mutation, tpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tpc *TopicProficiencyCreate) SaveX(ctx context.Context) *TopicProficiency {
	v, err := tpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tpc *TopicProficiencyCreate) Exec(ctx context.Context) error {
	_, err := tpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpc *TopicProficiencyCreate) ExecX(ctx context.Context) {
	if err := tpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tpc *TopicProficiencyCreate) check() error {
	if _, ok := tpc.mutation.Learner(); !ok {
		return &ValidationError{Name: "learner", err: errors.New(`ent: missing required field "TopicProficiency.learner"`)}
	}
	if v, ok := tpc.mutation.Learner(); ok {
		if err := topicproficiency.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "TopicProficiency.learner": %w`, err)}
		}
	}
	if _, ok := tpc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TopicProficiency.topic_id"`)}
	}
	if _, ok := tpc.mutation.Pct(); !ok {
		return &ValidationError{Name: "pct", err: errors.New(`ent: missing required field "TopicProficiency.pct"`)}
	}
	return nil
}

func (tpc *TopicProficiencyCreate) sqlSave(ctx context.Context) (*TopicProficiency, error) {
	if err := tpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tpc.mutation.id = &_node.ID
	tpc.mutation.done = true
	return _node, nil
}

func (tpc *TopicProficiencyCreate) createSpec() (*TopicProficiency, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicProficiency{config: tpc.config}
		_spec = sqlgraph.NewCreateSpec(topicproficiency.Table, sqlgraph.NewFieldSpec(topicproficiency.FieldID, field.TypeInt))
	)
	_spec.OnConflict = tpc.conflict
	if value, ok := tpc.mutation.Learner(); ok {
		_spec.SetField(topicproficiency.FieldLearner, field.TypeString, value)
		_node.Learner = value
	}
	if value, ok := tpc.mutation.TopicID(); ok {
		_spec.SetField(topicproficiency.FieldTopicID, field.TypeInt, value)
		_node.TopicID = value
	}
	if value, ok := tpc.mutation.Pct(); ok {
		_spec.SetField(topicproficiency.FieldPct, field.TypeFloat64, value)
		_node.Pct = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicProficiency.Create().
//		SetLearner(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicProficiencyUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (tpc *TopicProficiencyCreate) OnConflict(opts ...sql.ConflictOption) *TopicProficiencyUpsertOne {
	tpc.conflict = opts
	return &TopicProficiencyUpsertOne{
		create: tpc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicProficiency.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tpc *TopicProficiencyCreate) OnConflictColumns(columns ...string) *TopicProficiencyUpsertOne {
	tpc.conflict = append(tpc.conflict, sql.ConflictColumns(columns...))
	return &TopicProficiencyUpsertOne{
		create: tpc,
	}
}

type (
	// TopicProficiencyUpsertOne is the builder for "upsert"-ing
	//  one TopicProficiency node.
	TopicProficiencyUpsertOne struct {
		create *TopicProficiencyCreate
	}

	// TopicProficiencyUpsert is the "OnConflict" setter.
	TopicProficiencyUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearner sets the "learner" field.
func (u *TopicProficiencyUpsert) SetLearner(v string) *TopicProficiencyUpsert {
	u.Set(topicproficiency.FieldLearner, v)
	return u
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *TopicProficiencyUpsert) UpdateLearner() *TopicProficiencyUpsert {
	u.SetExcluded(topicproficiency.FieldLearner)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *TopicProficiencyUpsert) SetTopicID(v int) *TopicProficiencyUpsert {
	u.Set(topicproficiency.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *TopicProficiencyUpsert) UpdateTopicID() *TopicProficiencyUpsert {
	u.SetExcluded(topicproficiency.FieldTopicID)
	return u
}

// AddTopicID adds v to the "topic_id" field.
func (u *TopicProficiencyUpsert) AddTopicID(v int) *TopicProficiencyUpsert {
	u.Add(topicproficiency.FieldTopicID, v)
	return u
}

// SetPct sets the "pct" field.
func (u *TopicProficiencyUpsert) SetPct(v float64) *TopicProficiencyUpsert {
	u.Set(topicproficiency.FieldPct, v)
	return u
}

// UpdatePct sets the "pct" field to the value that was provided on create.
func (u *TopicProficiencyUpsert) UpdatePct() *TopicProficiencyUpsert {
	u.SetExcluded(topicproficiency.FieldPct)
	return u
}

// AddPct adds v to the "pct" field.
func (u *TopicProficiencyUpsert) AddPct(v float64) *TopicProficiencyUpsert {
	u.Add(topicproficiency.FieldPct, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TopicProficiency.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicProficiencyUpsertOne) UpdateNewValues() *TopicProficiencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicProficiency.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TopicProficiencyUpsertOne) Ignore() *TopicProficiencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicProficiencyUpsertOne) DoNothing() *TopicProficiencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicProficiencyCreate.OnConflict
// documentation for more info.
func (u *TopicProficiencyUpsertOne) Update(set func(*TopicProficiencyUpsert)) *TopicProficiencyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicProficiencyUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *TopicProficiencyUpsertOne) SetLearner(v string) *TopicProficiencyUpsertOne {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *TopicProficiencyUpsertOne) UpdateLearner() *TopicProficiencyUpsertOne {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.UpdateLearner()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *TopicProficiencyUpsertOne) SetTopicID(v int) *TopicProficiencyUpsertOne {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *TopicProficiencyUpsertOne) AddTopicID(v int) *TopicProficiencyUpsertOne {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *TopicProficiencyUpsertOne) UpdateTopicID() *TopicProficiencyUpsertOne {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.UpdateTopicID()
	})
}

// SetPct sets the "pct" field.
func (u *TopicProficiencyUpsertOne) SetPct(v float64) *TopicProficiencyUpsertOne {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.SetPct(v)
	})
}

// AddPct adds v to the "pct" field.
func (u *TopicProficiencyUpsertOne) AddPct(v float64) *TopicProficiencyUpsertOne {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.AddPct(v)
	})
}

// UpdatePct sets the "pct" field to the value that was provided on create.
func (u *TopicProficiencyUpsertOne) UpdatePct() *TopicProficiencyUpsertOne {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.UpdatePct()
	})
}

// Exec executes the query.
func (u *TopicProficiencyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicProficiencyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicProficiencyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TopicProficiencyUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TopicProficiencyUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TopicProficiencyCreateBulk is the builder for creating many TopicProficiency entities in bulk.
type TopicProficiencyCreateBulk struct {
	config
	err      error
	builders []*TopicProficiencyCreate
	conflict []sql.ConflictOption
}

// Save creates the TopicProficiency entities in the database.
func (tpcb *TopicProficiencyCreateBulk) Save(ctx context.Context) ([]*TopicProficiency, error) {
	if tpcb.err != nil {
		return nil, tpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tpcb.builders))
	nodes := make([]*TopicProficiency, len(tpcb.builders))
	mutators := make([]Mutator, len(tpcb.builders))
	for i := range tpcb.builders {
		func(i int, root context.Context) {
			builder := tpcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicProficiencyMutation)
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
					_, err = mutators[i+1].Mutate(root, tpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = tpcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tpcb *TopicProficiencyCreateBulk) SaveX(ctx context.Context) []*TopicProficiency {
	v, err := tpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tpcb *TopicProficiencyCreateBulk) Exec(ctx context.Context) error {
	_, err := tpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tpcb *TopicProficiencyCreateBulk) ExecX(ctx context.Context) {
	if err := tpcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TopicProficiency.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TopicProficiencyUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (tpcb *TopicProficiencyCreateBulk) OnConflict(opts ...sql.ConflictOption) *TopicProficiencyUpsertBulk {
	tpcb.conflict = opts
	return &TopicProficiencyUpsertBulk{
		create: tpcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TopicProficiency.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tpcb *TopicProficiencyCreateBulk) OnConflictColumns(columns ...string) *TopicProficiencyUpsertBulk {
	tpcb.conflict = append(tpcb.conflict, sql.ConflictColumns(columns...))
	return &TopicProficiencyUpsertBulk{
		create: tpcb,
	}
}

// TopicProficiencyUpsertBulk is the builder for "upsert"-ing
// a bulk of TopicProficiency nodes.
type TopicProficiencyUpsertBulk struct {
	create *TopicProficiencyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TopicProficiency.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TopicProficiencyUpsertBulk) UpdateNewValues() *TopicProficiencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TopicProficiency.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TopicProficiencyUpsertBulk) Ignore() *TopicProficiencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TopicProficiencyUpsertBulk) DoNothing() *TopicProficiencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TopicProficiencyCreateBulk.OnConflict
// documentation for more info.
func (u *TopicProficiencyUpsertBulk) Update(set func(*TopicProficiencyUpsert)) *TopicProficiencyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TopicProficiencyUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *TopicProficiencyUpsertBulk) SetLearner(v string) *TopicProficiencyUpsertBulk {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *TopicProficiencyUpsertBulk) UpdateLearner() *TopicProficiencyUpsertBulk {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.UpdateLearner()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *TopicProficiencyUpsertBulk) SetTopicID(v int) *TopicProficiencyUpsertBulk {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *TopicProficiencyUpsertBulk) AddTopicID(v int) *TopicProficiencyUpsertBulk {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *TopicProficiencyUpsertBulk) UpdateTopicID() *TopicProficiencyUpsertBulk {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.UpdateTopicID()
	})
}

// SetPct sets the "pct" field.
func (u *TopicProficiencyUpsertBulk) SetPct(v float64) *TopicProficiencyUpsertBulk {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.SetPct(v)
	})
}

// AddPct adds v to the "pct" field.
func (u *TopicProficiencyUpsertBulk) AddPct(v float64) *TopicProficiencyUpsertBulk {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.AddPct(v)
	})
}

// UpdatePct sets the "pct" field to the value that was provided on create.
func (u *TopicProficiencyUpsertBulk) UpdatePct() *TopicProficiencyUpsertBulk {
	return u.Update(func(s *TopicProficiencyUpsert) {
		s.UpdatePct()
	})
}

// Exec executes the query.
func (u *TopicProficiencyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TopicProficiencyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TopicProficiencyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TopicProficiencyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/ability"
)

// AbilityCreate is the builder for creating a Ability entity.
type AbilityCreate struct {
	config
	mutation *AbilityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearner sets the "learner" field.
func (ac *AbilityCreate) SetLearner(s string) *AbilityCreate {
	ac.mutation.SetLearner(s)
	return ac
}

// SetScore sets the "score" field.
func (ac *AbilityCreate) SetScore(f float64) *AbilityCreate {
	ac.mutation.SetScore(f)
	return ac
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (ac *AbilityCreate) SetNillableScore(f *float64) *AbilityCreate {
	if f != nil {
		ac.SetScore(*f)
	}
	return ac
}

// Mutation returns the AbilityMutation object of the builder.
func (ac *AbilityCreate) Mutation() *AbilityMutation {
	return ac.mutation
}

// Save creates the Ability in the database.
func (ac *AbilityCreate) Save(ctx context.Context) (*Ability, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AbilityCreate) SaveX(ctx context.Context) *Ability {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AbilityCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AbilityCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AbilityCreate) defaults() {
	if _, ok := ac.mutation.Score(); !ok {
		v := ability.DefaultScore
		ac.mutation.SetScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AbilityCreate) check() error {
	if _, ok := ac.mutation.Learner(); !ok {
		return &ValidationError{Name: "learner", err: errors.New(`ent: missing required field "Ability.learner"`)}
	}
	if v, ok := ac.mutation.Learner(); ok {
		if err := ability.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "Ability.learner": %w`, err)}
		}
	}
	if _, ok := ac.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Ability.score"`)}
	}
	return nil
}

func (ac *AbilityCreate) sqlSave(ctx context.Context) (*Ability, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AbilityCreate) createSpec() (*Ability, *sqlgraph.CreateSpec) {
	var (
		_node = &Ability{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(ability.Table, sqlgraph.NewFieldSpec(ability.FieldID, field.TypeInt))
	)
	_spec.OnConflict = ac.conflict
	if value, ok := ac.mutation.Learner(); ok {
		_spec.SetField(ability.FieldLearner, field.TypeString, value)
		_node.Learner = value
	}
	if value, ok := ac.mutation.Score(); ok {
		_spec.SetField(ability.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ability.Create().
//		SetLearner(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AbilityUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (ac *AbilityCreate) OnConflict(opts ...sql.ConflictOption) *AbilityUpsertOne {
	ac.conflict = opts
	return &AbilityUpsertOne{
		create: ac,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ac *AbilityCreate) OnConflictColumns(columns ...string) *AbilityUpsertOne {
	ac.conflict = append(ac.conflict, sql.ConflictColumns(columns...))
	return &AbilityUpsertOne{
		create: ac,
	}
}

type (
	// AbilityUpsertOne is the builder for "upsert"-ing
	//  one Ability node.
	AbilityUpsertOne struct {
		create *AbilityCreate
	}

	// AbilityUpsert is the "OnConflict" setter.
	AbilityUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearner sets the "learner" field.
func (u *AbilityUpsert) SetLearner(v string) *AbilityUpsert {
	u.Set(ability.FieldLearner, v)
	return u
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *AbilityUpsert) UpdateLearner() *AbilityUpsert {
	u.SetExcluded(ability.FieldLearner)
	return u
}

// SetScore sets the "score" field.
func (u *AbilityUpsert) SetScore(v float64) *AbilityUpsert {
	u.Set(ability.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *AbilityUpsert) UpdateScore() *AbilityUpsert {
	u.SetExcluded(ability.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *AbilityUpsert) AddScore(v float64) *AbilityUpsert {
	u.Add(ability.FieldScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Ability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AbilityUpsertOne) UpdateNewValues() *AbilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ability.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AbilityUpsertOne) Ignore() *AbilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AbilityUpsertOne) DoNothing() *AbilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AbilityCreate.OnConflict
// documentation for more info.
func (u *AbilityUpsertOne) Update(set func(*AbilityUpsert)) *AbilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AbilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *AbilityUpsertOne) SetLearner(v string) *AbilityUpsertOne {
	return u.Update(func(s *AbilityUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *AbilityUpsertOne) UpdateLearner() *AbilityUpsertOne {
	return u.Update(func(s *AbilityUpsert) {
		s.UpdateLearner()
	})
}

// SetScore sets the "score" field.
func (u *AbilityUpsertOne) SetScore(v float64) *AbilityUpsertOne {
	return u.Update(func(s *AbilityUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *AbilityUpsertOne) AddScore(v float64) *AbilityUpsertOne {
	return u.Update(func(s *AbilityUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *AbilityUpsertOne) UpdateScore() *AbilityUpsertOne {
	return u.Update(func(s *AbilityUpsert) {
		s.UpdateScore()
	})
}

// Exec executes the query.
func (u *AbilityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AbilityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AbilityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AbilityUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AbilityUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AbilityCreateBulk is the builder for creating many Ability entities in bulk.
type AbilityCreateBulk struct {
	config
	err      error
	builders []*AbilityCreate
	conflict []sql.ConflictOption
}

// Save creates the Ability entities in the database.
func (acb *AbilityCreateBulk) Save(ctx context.Context) ([]*Ability, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Ability, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AbilityMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = acb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AbilityCreateBulk) SaveX(ctx context.Context) []*Ability {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AbilityCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AbilityCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Ability.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AbilityUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (acb *AbilityCreateBulk) OnConflict(opts ...sql.ConflictOption) *AbilityUpsertBulk {
	acb.conflict = opts
	return &AbilityUpsertBulk{
		create: acb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Ability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (acb *AbilityCreateBulk) OnConflictColumns(columns ...string) *AbilityUpsertBulk {
	acb.conflict = append(acb.conflict, sql.ConflictColumns(columns...))
	return &AbilityUpsertBulk{
		create: acb,
	}
}

// AbilityUpsertBulk is the builder for "upsert"-ing
// a bulk of Ability nodes.
type AbilityUpsertBulk struct {
	create *AbilityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Ability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AbilityUpsertBulk) UpdateNewValues() *AbilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Ability.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AbilityUpsertBulk) Ignore() *AbilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AbilityUpsertBulk) DoNothing() *AbilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AbilityCreateBulk.OnConflict
// documentation for more info.
func (u *AbilityUpsertBulk) Update(set func(*AbilityUpsert)) *AbilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AbilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *AbilityUpsertBulk) SetLearner(v string) *AbilityUpsertBulk {
	return u.Update(func(s *AbilityUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *AbilityUpsertBulk) UpdateLearner() *AbilityUpsertBulk {
	return u.Update(func(s *AbilityUpsert) {
		s.UpdateLearner()
	})
}

// SetScore sets the "score" field.
func (u *AbilityUpsertBulk) SetScore(v float64) *AbilityUpsertBulk {
	return u.Update(func(s *AbilityUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *AbilityUpsertBulk) AddScore(v float64) *AbilityUpsertBulk {
	return u.Update(func(s *AbilityUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *AbilityUpsertBulk) UpdateScore() *AbilityUpsertBulk {
	return u.Update(func(s *AbilityUpsert) {
		s.UpdateScore()
	})
}

// Exec executes the query.
func (u *AbilityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AbilityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AbilityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AbilityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/zoneprogress"
)

// ZoneProgressCreate is the builder for creating a ZoneProgress entity.
type ZoneProgressCreate struct {
	config
	mutation *ZoneProgressMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLearner sets the "learner" field.
func (zpc *ZoneProgressCreate) SetLearner(s string) *ZoneProgressCreate {
	zpc.mutation.SetLearner(s)
	return zpc
}

// SetZoneID sets the "zone_id" field.
func (zpc *ZoneProgressCreate) SetZoneID(i int) *ZoneProgressCreate {
	zpc.mutation.SetZoneID(i)
	return zpc
}

// SetPct sets the "pct" field.
func (zpc *ZoneProgressCreate) SetPct(f float64) *ZoneProgressCreate {
	zpc.mutation.SetPct(f)
	return zpc
}

// Mutation returns the ZoneProgressMutation object of the builder.
func (zpc *ZoneProgressCreate) Mutation() *ZoneProgressMutation {
	return zpc.mutation
}

// Save creates the ZoneProgress in the database.
func (zpc *ZoneProgressCreate) Save(ctx context.Context) (*ZoneProgress, error) {
	return withHooks(ctx, zpc.sqlSave, zpc.mutation, zpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (zpc *ZoneProgressCreate) SaveX(ctx context.Context) *ZoneProgress {
	v, err := zpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (zpc *ZoneProgressCreate) Exec(ctx context.Context) error {
	_, err := zpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (zpc *ZoneProgressCreate) ExecX(ctx context.Context) {
	if err := zpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (zpc *ZoneProgressCreate) check() error {
	if _, ok := zpc.mutation.Learner(); !ok {
		return &ValidationError{Name: "learner", err: errors.New(`ent: missing required field "ZoneProgress.learner"`)}
	}
	if v, ok := zpc.mutation.Learner(); ok {
		if err := zoneprogress.LearnerValidator(v); err != nil {
			return &ValidationError{Name: "learner", err: fmt.Errorf(`ent: validator failed for field "ZoneProgress.learner": %w`, err)}
		}
	}
	if _, ok := zpc.mutation.ZoneID(); !ok {
		return &ValidationError{Name: "zone_id", err: errors.New(`ent: missing required field "ZoneProgress.zone_id"`)}
	}
	if _, ok := zpc.mutation.Pct(); !ok {
		return &ValidationError{Name: "pct", err: errors.New(`ent: missing required field "ZoneProgress.pct"`)}
	}
	return nil
}

func (zpc *ZoneProgressCreate) sqlSave(ctx context.Context) (*ZoneProgress, error) {
	if err := zpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := zpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, zpc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	zpc.mutation.id = &_node.ID
	zpc.mutation.done = true
	return _node, nil
}

func (zpc *ZoneProgressCreate) createSpec() (*ZoneProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &ZoneProgress{config: zpc.config}
		_spec = sqlgraph.NewCreateSpec(zoneprogress.Table, sqlgraph.NewFieldSpec(zoneprogress.FieldID, field.TypeInt))
	)
	_spec.OnConflict = zpc.conflict
	if value, ok := zpc.mutation.Learner(); ok {
		_spec.SetField(zoneprogress.FieldLearner, field.TypeString, value)
		_node.Learner = value
	}
	if value, ok := zpc.mutation.ZoneID(); ok {
		_spec.SetField(zoneprogress.FieldZoneID, field.TypeInt, value)
		_node.ZoneID = value
	}
	if value, ok := zpc.mutation.Pct(); ok {
		_spec.SetField(zoneprogress.FieldPct, field.TypeFloat64, value)
		_node.Pct = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ZoneProgress.Create().
//		SetLearner(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ZoneProgressUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (zpc *ZoneProgressCreate) OnConflict(opts ...sql.ConflictOption) *ZoneProgressUpsertOne {
	zpc.conflict = opts
	return &ZoneProgressUpsertOne{
		create: zpc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ZoneProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (zpc *ZoneProgressCreate) OnConflictColumns(columns ...string) *ZoneProgressUpsertOne {
	zpc.conflict = append(zpc.conflict, sql.ConflictColumns(columns...))
	return &ZoneProgressUpsertOne{
		create: zpc,
	}
}

type (
	// ZoneProgressUpsertOne is the builder for "upsert"-ing
	//  one ZoneProgress node.
	ZoneProgressUpsertOne struct {
		create *ZoneProgressCreate
	}

	// ZoneProgressUpsert is the "OnConflict" setter.
	ZoneProgressUpsert struct {
		*sql.UpdateSet
	}
)

// SetLearner sets the "learner" field.
func (u *ZoneProgressUpsert) SetLearner(v string) *ZoneProgressUpsert {
	u.Set(zoneprogress.FieldLearner, v)
	return u
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *ZoneProgressUpsert) UpdateLearner() *ZoneProgressUpsert {
	u.SetExcluded(zoneprogress.FieldLearner)
	return u
}

// SetZoneID sets the "zone_id" field.
func (u *ZoneProgressUpsert) SetZoneID(v int) *ZoneProgressUpsert {
	u.Set(zoneprogress.FieldZoneID, v)
	return u
}

// UpdateZoneID sets the "zone_id" field to the value that was provided on create.
func (u *ZoneProgressUpsert) UpdateZoneID() *ZoneProgressUpsert {
	u.SetExcluded(zoneprogress.FieldZoneID)
	return u
}

// AddZoneID adds v to the "zone_id" field.
func (u *ZoneProgressUpsert) AddZoneID(v int) *ZoneProgressUpsert {
	u.Add(zoneprogress.FieldZoneID, v)
	return u
}

// SetPct sets the "pct" field.
func (u *ZoneProgressUpsert) SetPct(v float64) *ZoneProgressUpsert {
	u.Set(zoneprogress.FieldPct, v)
	return u
}

// UpdatePct sets the "pct" field to the value that was provided on create.
func (u *ZoneProgressUpsert) UpdatePct() *ZoneProgressUpsert {
	u.SetExcluded(zoneprogress.FieldPct)
	return u
}

// AddPct adds v to the "pct" field.
func (u *ZoneProgressUpsert) AddPct(v float64) *ZoneProgressUpsert {
	u.Add(zoneprogress.FieldPct, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ZoneProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ZoneProgressUpsertOne) UpdateNewValues() *ZoneProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ZoneProgress.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ZoneProgressUpsertOne) Ignore() *ZoneProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ZoneProgressUpsertOne) DoNothing() *ZoneProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ZoneProgressCreate.OnConflict
// documentation for more info.
func (u *ZoneProgressUpsertOne) Update(set func(*ZoneProgressUpsert)) *ZoneProgressUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ZoneProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *ZoneProgressUpsertOne) SetLearner(v string) *ZoneProgressUpsertOne {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *ZoneProgressUpsertOne) UpdateLearner() *ZoneProgressUpsertOne {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.UpdateLearner()
	})
}

// SetZoneID sets the "zone_id" field.
func (u *ZoneProgressUpsertOne) SetZoneID(v int) *ZoneProgressUpsertOne {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.SetZoneID(v)
	})
}

// AddZoneID adds v to the "zone_id" field.
func (u *ZoneProgressUpsertOne) AddZoneID(v int) *ZoneProgressUpsertOne {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.AddZoneID(v)
	})
}

// UpdateZoneID sets the "zone_id" field to the value that was provided on create.
func (u *ZoneProgressUpsertOne) UpdateZoneID() *ZoneProgressUpsertOne {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.UpdateZoneID()
	})
}

// SetPct sets the "pct" field.
func (u *ZoneProgressUpsertOne) SetPct(v float64) *ZoneProgressUpsertOne {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.SetPct(v)
	})
}

// AddPct adds v to the "pct" field.
func (u *ZoneProgressUpsertOne) AddPct(v float64) *ZoneProgressUpsertOne {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.AddPct(v)
	})
}

// UpdatePct sets the "pct" field to the value that was provided on create.
func (u *ZoneProgressUpsertOne) UpdatePct() *ZoneProgressUpsertOne {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.UpdatePct()
	})
}

// Exec executes the query.
func (u *ZoneProgressUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ZoneProgressCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ZoneProgressUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ZoneProgressUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ZoneProgressUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ZoneProgressCreateBulk is the builder for creating many ZoneProgress entities in bulk.
type ZoneProgressCreateBulk struct {
	config
	err      error
	builders []*ZoneProgressCreate
	conflict []sql.ConflictOption
}

// Save creates the ZoneProgress entities in the database.
func (zpcb *ZoneProgressCreateBulk) Save(ctx context.Context) ([]*ZoneProgress, error) {
	if zpcb.err != nil {
		return nil, zpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(zpcb.builders))
	nodes := make([]*ZoneProgress, len(zpcb.builders))
	mutators := make([]Mutator, len(zpcb.builders))
	for i := range zpcb.builders {
		func(i int, root context.Context) {
			builder := zpcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ZoneProgressMutation)
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
					_, err = mutators[i+1].Mutate(root, zpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = zpcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, zpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, zpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (zpcb *ZoneProgressCreateBulk) SaveX(ctx context.Context) []*ZoneProgress {
	v, err := zpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (zpcb *ZoneProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := zpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (zpcb *ZoneProgressCreateBulk) ExecX(ctx context.Context) {
	if err := zpcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ZoneProgress.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ZoneProgressUpsert) {
//			SetLearner(v+v).
//		}).
//		Exec(ctx)
func (zpcb *ZoneProgressCreateBulk) OnConflict(opts ...sql.ConflictOption) *ZoneProgressUpsertBulk {
	zpcb.conflict = opts
	return &ZoneProgressUpsertBulk{
		create: zpcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ZoneProgress.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (zpcb *ZoneProgressCreateBulk) OnConflictColumns(columns ...string) *ZoneProgressUpsertBulk {
	zpcb.conflict = append(zpcb.conflict, sql.ConflictColumns(columns...))
	return &ZoneProgressUpsertBulk{
		create: zpcb,
	}
}

// ZoneProgressUpsertBulk is the builder for "upsert"-ing
// a bulk of ZoneProgress nodes.
type ZoneProgressUpsertBulk struct {
	create *ZoneProgressCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ZoneProgress.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ZoneProgressUpsertBulk) UpdateNewValues() *ZoneProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ZoneProgress.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ZoneProgressUpsertBulk) Ignore() *ZoneProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ZoneProgressUpsertBulk) DoNothing() *ZoneProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ZoneProgressCreateBulk.OnConflict
// documentation for more info.
func (u *ZoneProgressUpsertBulk) Update(set func(*ZoneProgressUpsert)) *ZoneProgressUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ZoneProgressUpsert{UpdateSet: update})
	}))
	return u
}

// SetLearner sets the "learner" field.
func (u *ZoneProgressUpsertBulk) SetLearner(v string) *ZoneProgressUpsertBulk {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.SetLearner(v)
	})
}

// UpdateLearner sets the "learner" field to the value that was provided on create.
func (u *ZoneProgressUpsertBulk) UpdateLearner() *ZoneProgressUpsertBulk {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.UpdateLearner()
	})
}

// SetZoneID sets the "zone_id" field.
func (u *ZoneProgressUpsertBulk) SetZoneID(v int) *ZoneProgressUpsertBulk {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.SetZoneID(v)
	})
}

// AddZoneID adds v to the "zone_id" field.
func (u *ZoneProgressUpsertBulk) AddZoneID(v int) *ZoneProgressUpsertBulk {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.AddZoneID(v)
	})
}

// UpdateZoneID sets the "zone_id" field to the value that was provided on create.
func (u *ZoneProgressUpsertBulk) UpdateZoneID() *ZoneProgressUpsertBulk {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.UpdateZoneID()
	})
}

// SetPct sets the "pct" field.
func (u *ZoneProgressUpsertBulk) SetPct(v float64) *ZoneProgressUpsertBulk {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.SetPct(v)
	})
}

// AddPct adds v to the "pct" field.
func (u *ZoneProgressUpsertBulk) AddPct(v float64) *ZoneProgressUpsertBulk {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.AddPct(v)
	})
}

// UpdatePct sets the "pct" field to the value that was provided on create.
func (u *ZoneProgressUpsertBulk) UpdatePct() *ZoneProgressUpsertBulk {
	return u.Update(func(s *ZoneProgressUpsert) {
		s.UpdatePct()
	})
}

// Exec executes the query.
func (u *ZoneProgressUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ZoneProgressCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ZoneProgressCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ZoneProgressUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

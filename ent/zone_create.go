// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/zone"
)

// ZoneCreate is the builder for creating a Zone entity.
type ZoneCreate struct {
	config
	mutation *ZoneMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (zc *ZoneCreate) SetName(s string) *ZoneCreate {
	zc.mutation.SetName(s)
	return zc
}

// SetOrder sets the "order" field.
func (zc *ZoneCreate) SetOrder(i int) *ZoneCreate {
	zc.mutation.SetOrder(i)
	return zc
}

// SetID sets the "id" field.
func (zc *ZoneCreate) SetID(i int) *ZoneCreate {
	zc.mutation.SetID(i)
	return zc
}

// Mutation returns the ZoneMutation object of the builder.
func (zc *ZoneCreate) Mutation() *ZoneMutation {
	return zc.mutation
}

// Save creates the Zone in the database.
func (zc *ZoneCreate) Save(ctx context.Context) (*Zone, error) {
	return withHooks(ctx, zc.sqlSave, zc.mutation, zc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (zc *ZoneCreate) SaveX(ctx context.Context) *Zone {
	v, err := zc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (zc *ZoneCreate) Exec(ctx context.Context) error {
	_, err := zc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (zc *ZoneCreate) ExecX(ctx context.Context) {
	if err := zc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (zc *ZoneCreate) check() error {
	if _, ok := zc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Zone.name"`)}
	}
	if v, ok := zc.mutation.Name(); ok {
		if err := zone.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Zone.name": %w`, err)}
		}
	}
	if _, ok := zc.mutation.Order(); !ok {
		return &ValidationError{Name: "order", err: errors.New(`ent: missing required field "Zone.order"`)}
	}
	return nil
}

func (zc *ZoneCreate) sqlSave(ctx context.Context) (*Zone, error) {
	if err := zc.check(); err != nil {
		return nil, err
	}
	_node, _spec := zc.createSpec()
	if err := sqlgraph.CreateNode(ctx, zc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	zc.mutation.id = &_node.ID
	zc.mutation.done = true
	return _node, nil
}

func (zc *ZoneCreate) createSpec() (*Zone, *sqlgraph.CreateSpec) {
	var (
		_node = &Zone{config: zc.config}
		_spec = sqlgraph.NewCreateSpec(zone.Table, sqlgraph.NewFieldSpec(zone.FieldID, field.TypeInt))
	)
	_spec.OnConflict = zc.conflict
	if id, ok := zc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := zc.mutation.Name(); ok {
		_spec.SetField(zone.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := zc.mutation.Order(); ok {
		_spec.SetField(zone.FieldOrder, field.TypeInt, value)
		_node.Order = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Zone.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ZoneUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (zc *ZoneCreate) OnConflict(opts ...sql.ConflictOption) *ZoneUpsertOne {
	zc.conflict = opts
	return &ZoneUpsertOne{
		create: zc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Zone.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (zc *ZoneCreate) OnConflictColumns(columns ...string) *ZoneUpsertOne {
	zc.conflict = append(zc.conflict, sql.ConflictColumns(columns...))
	return &ZoneUpsertOne{
		create: zc,
	}
}

type (
	// ZoneUpsertOne is the builder for "upsert"-ing
	//  one Zone node.
	ZoneUpsertOne struct {
		create *ZoneCreate
	}

	// ZoneUpsert is the "OnConflict" setter.
	ZoneUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ZoneUpsert) SetName(v string) *ZoneUpsert {
	u.Set(zone.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ZoneUpsert) UpdateName() *ZoneUpsert {
	u.SetExcluded(zone.FieldName)
	return u
}

// SetOrder sets the "order" field.
func (u *ZoneUpsert) SetOrder(v int) *ZoneUpsert {
	u.Set(zone.FieldOrder, v)
	return u
}

// UpdateOrder sets the "order" field to the value that was provided on create.
func (u *ZoneUpsert) UpdateOrder() *ZoneUpsert {
	u.SetExcluded(zone.FieldOrder)
	return u
}

// AddOrder adds v to the "order" field.
func (u *ZoneUpsert) AddOrder(v int) *ZoneUpsert {
	u.Add(zone.FieldOrder, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Zone.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(zone.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ZoneUpsertOne) UpdateNewValues() *ZoneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(zone.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Zone.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ZoneUpsertOne) Ignore() *ZoneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ZoneUpsertOne) DoNothing() *ZoneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ZoneCreate.OnConflict
// documentation for more info.
func (u *ZoneUpsertOne) Update(set func(*ZoneUpsert)) *ZoneUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ZoneUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ZoneUpsertOne) SetName(v string) *ZoneUpsertOne {
	return u.Update(func(s *ZoneUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ZoneUpsertOne) UpdateName() *ZoneUpsertOne {
	return u.Update(func(s *ZoneUpsert) {
		s.UpdateName()
	})
}

// SetOrder sets the "order" field.
func (u *ZoneUpsertOne) SetOrder(v int) *ZoneUpsertOne {
	return u.Update(func(s *ZoneUpsert) {
		s.SetOrder(v)
	})
}

// AddOrder adds v to the "order" field.
func (u *ZoneUpsertOne) AddOrder(v int) *ZoneUpsertOne {
	return u.Update(func(s *ZoneUpsert) {
		s.AddOrder(v)
	})
}

// UpdateOrder sets the "order" field to the value that was provided on create.
func (u *ZoneUpsertOne) UpdateOrder() *ZoneUpsertOne {
	return u.Update(func(s *ZoneUpsert) {
		s.UpdateOrder()
	})
}

// Exec executes the query.
func (u *ZoneUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ZoneCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ZoneUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ZoneUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ZoneUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ZoneCreateBulk is the builder for creating many Zone entities in bulk.
type ZoneCreateBulk struct {
	config
	err      error
	builders []*ZoneCreate
	conflict []sql.ConflictOption
}

// Save creates the Zone entities in the database.
func (zcb *ZoneCreateBulk) Save(ctx context.Context) ([]*Zone, error) {
	if zcb.err != nil {
		return nil, zcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(zcb.builders))
	nodes := make([]*Zone, len(zcb.builders))
	mutators := make([]Mutator, len(zcb.builders))
	for i := range zcb.builders {
		func(i int, root context.Context) {
			builder := zcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ZoneMutation)
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
					_, err = mutators[i+1].Mutate(root, zcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = zcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, zcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
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
		if _, err := mutators[0].Mutate(ctx, zcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (zcb *ZoneCreateBulk) SaveX(ctx context.Context) []*Zone {
	v, err := zcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (zcb *ZoneCreateBulk) Exec(ctx context.Context) error {
	_, err := zcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (zcb *ZoneCreateBulk) ExecX(ctx context.Context) {
	if err := zcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Zone.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ZoneUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (zcb *ZoneCreateBulk) OnConflict(opts ...sql.ConflictOption) *ZoneUpsertBulk {
	zcb.conflict = opts
	return &ZoneUpsertBulk{
		create: zcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Zone.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (zcb *ZoneCreateBulk) OnConflictColumns(columns ...string) *ZoneUpsertBulk {
	zcb.conflict = append(zcb.conflict, sql.ConflictColumns(columns...))
	return &ZoneUpsertBulk{
		create: zcb,
	}
}

// ZoneUpsertBulk is the builder for "upsert"-ing
// a bulk of Zone nodes.
type ZoneUpsertBulk struct {
	create *ZoneCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Zone.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(zone.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ZoneUpsertBulk) UpdateNewValues() *ZoneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(zone.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Zone.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ZoneUpsertBulk) Ignore() *ZoneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ZoneUpsertBulk) DoNothing() *ZoneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ZoneCreateBulk.OnConflict
// documentation for more info.
func (u *ZoneUpsertBulk) Update(set func(*ZoneUpsert)) *ZoneUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ZoneUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ZoneUpsertBulk) SetName(v string) *ZoneUpsertBulk {
	return u.Update(func(s *ZoneUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ZoneUpsertBulk) UpdateName() *ZoneUpsertBulk {
	return u.Update(func(s *ZoneUpsert) {
		s.UpdateName()
	})
}

// SetOrder sets the "order" field.
func (u *ZoneUpsertBulk) SetOrder(v int) *ZoneUpsertBulk {
	return u.Update(func(s *ZoneUpsert) {
		s.SetOrder(v)
	})
}

// AddOrder adds v to the "order" field.
func (u *ZoneUpsertBulk) AddOrder(v int) *ZoneUpsertBulk {
	return u.Update(func(s *ZoneUpsert) {
		s.AddOrder(v)
	})
}

// UpdateOrder sets the "order" field to the value that was provided on create.
func (u *ZoneUpsertBulk) UpdateOrder() *ZoneUpsertBulk {
	return u.Update(func(s *ZoneUpsert) {
		s.UpdateOrder()
	})
}

// Exec executes the query.
func (u *ZoneUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ZoneCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ZoneCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ZoneUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

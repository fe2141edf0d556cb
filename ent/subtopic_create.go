// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/subtopic"
)

// SubtopicCreate is the builder for creating a Subtopic entity.
type SubtopicCreate struct {
	config
	mutation *SubtopicMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (sc *SubtopicCreate) SetName(s string) *SubtopicCreate {
	sc.mutation.SetName(s)
	return sc
}

// SetTopicID sets the "topic_id" field.
func (sc *SubtopicCreate) SetTopicID(i int) *SubtopicCreate {
	sc.mutation.SetTopicID(i)
	return sc
}

// SetID sets the "id" field.
func (sc *SubtopicCreate) SetID(i int) *SubtopicCreate {
	sc.mutation.SetID(i)
	return sc
}

// Mutation returns the SubtopicMutation object of the builder.
func (sc *SubtopicCreate) Mutation() *SubtopicMutation {
	return sc.mutation
}

// Save creates the Subtopic in the database.
func (sc *SubtopicCreate) Save(ctx context.Context) (*Subtopic, error) {
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SubtopicCreate) SaveX(ctx context.Context) *Subtopic {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SubtopicCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SubtopicCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SubtopicCreate) check() error {
	if _, ok := sc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Subtopic.name"`)}
	}
	if v, ok := sc.mutation.Name(); ok {
		if err := subtopic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Subtopic.name": %w`, err)}
		}
	}
	if _, ok := sc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "Subtopic.topic_id"`)}
	}
	return nil
}

func (sc *SubtopicCreate) sqlSave(ctx context.Context) (*Subtopic, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SubtopicCreate) createSpec() (*Subtopic, *sqlgraph.CreateSpec) {
	var (
		_node = &Subtopic{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(subtopic.Table, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	)
	_spec.OnConflict = sc.conflict
	if id, ok := sc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := sc.mutation.Name(); ok {
		_spec.SetField(subtopic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := sc.mutation.TopicID(); ok {
		_spec.SetField(subtopic.FieldTopicID, field.TypeInt, value)
		_node.TopicID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Subtopic.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubtopicUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (sc *SubtopicCreate) OnConflict(opts ...sql.ConflictOption) *SubtopicUpsertOne {
	sc.conflict = opts
	return &SubtopicUpsertOne{
		create: sc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subtopic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sc *SubtopicCreate) OnConflictColumns(columns ...string) *SubtopicUpsertOne {
	sc.conflict = append(sc.conflict, sql.ConflictColumns(columns...))
	return &SubtopicUpsertOne{
		create: sc,
	}
}

type (
	// SubtopicUpsertOne is the builder for "upsert"-ing
	//  one Subtopic node.
	SubtopicUpsertOne struct {
		create *SubtopicCreate
	}

	// SubtopicUpsert is the "OnConflict" setter.
	SubtopicUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *SubtopicUpsert) SetName(v string) *SubtopicUpsert {
	u.Set(subtopic.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SubtopicUpsert) UpdateName() *SubtopicUpsert {
	u.SetExcluded(subtopic.FieldName)
	return u
}

// SetTopicID sets the "topic_id" field.
func (u *SubtopicUpsert) SetTopicID(v int) *SubtopicUpsert {
	u.Set(subtopic.FieldTopicID, v)
	return u
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *SubtopicUpsert) UpdateTopicID() *SubtopicUpsert {
	u.SetExcluded(subtopic.FieldTopicID)
	return u
}

// AddTopicID adds v to the "topic_id" field.
func (u *SubtopicUpsert) AddTopicID(v int) *SubtopicUpsert {
	u.Add(subtopic.FieldTopicID, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Subtopic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(subtopic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubtopicUpsertOne) UpdateNewValues() *SubtopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(subtopic.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subtopic.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubtopicUpsertOne) Ignore() *SubtopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubtopicUpsertOne) DoNothing() *SubtopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubtopicCreate.OnConflict
// documentation for more info.
func (u *SubtopicUpsertOne) Update(set func(*SubtopicUpsert)) *SubtopicUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubtopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *SubtopicUpsertOne) SetName(v string) *SubtopicUpsertOne {
	return u.Update(func(s *SubtopicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SubtopicUpsertOne) UpdateName() *SubtopicUpsertOne {
	return u.Update(func(s *SubtopicUpsert) {
		s.UpdateName()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *SubtopicUpsertOne) SetTopicID(v int) *SubtopicUpsertOne {
	return u.Update(func(s *SubtopicUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *SubtopicUpsertOne) AddTopicID(v int) *SubtopicUpsertOne {
	return u.Update(func(s *SubtopicUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *SubtopicUpsertOne) UpdateTopicID() *SubtopicUpsertOne {
	return u.Update(func(s *SubtopicUpsert) {
		s.UpdateTopicID()
	})
}

// Exec executes the query.
func (u *SubtopicUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubtopicCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubtopicUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubtopicUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubtopicUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubtopicCreateBulk is the builder for creating many Subtopic entities in bulk.
type SubtopicCreateBulk struct {
	config
	err      error
	builders []*SubtopicCreate
	conflict []sql.ConflictOption
}

// Save creates the Subtopic entities in the database.
func (scb *SubtopicCreateBulk) Save(ctx context.Context) ([]*Subtopic, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Subtopic, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubtopicMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = scb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SubtopicCreateBulk) SaveX(ctx context.Context) []*Subtopic {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SubtopicCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SubtopicCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Subtopic.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubtopicUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (scb *SubtopicCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubtopicUpsertBulk {
	scb.conflict = opts
	return &SubtopicUpsertBulk{
		create: scb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Subtopic.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (scb *SubtopicCreateBulk) OnConflictColumns(columns ...string) *SubtopicUpsertBulk {
	scb.conflict = append(scb.conflict, sql.ConflictColumns(columns...))
	return &SubtopicUpsertBulk{
		create: scb,
	}
}

// SubtopicUpsertBulk is the builder for "upsert"-ing
// a bulk of Subtopic nodes.
type SubtopicUpsertBulk struct {
	create *SubtopicCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Subtopic.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(subtopic.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubtopicUpsertBulk) UpdateNewValues() *SubtopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(subtopic.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Subtopic.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubtopicUpsertBulk) Ignore() *SubtopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubtopicUpsertBulk) DoNothing() *SubtopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubtopicCreateBulk.OnConflict
// documentation for more info.
func (u *SubtopicUpsertBulk) Update(set func(*SubtopicUpsert)) *SubtopicUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubtopicUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *SubtopicUpsertBulk) SetName(v string) *SubtopicUpsertBulk {
	return u.Update(func(s *SubtopicUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *SubtopicUpsertBulk) UpdateName() *SubtopicUpsertBulk {
	return u.Update(func(s *SubtopicUpsert) {
		s.UpdateName()
	})
}

// SetTopicID sets the "topic_id" field.
func (u *SubtopicUpsertBulk) SetTopicID(v int) *SubtopicUpsertBulk {
	return u.Update(func(s *SubtopicUpsert) {
		s.SetTopicID(v)
	})
}

// AddTopicID adds v to the "topic_id" field.
func (u *SubtopicUpsertBulk) AddTopicID(v int) *SubtopicUpsertBulk {
	return u.Update(func(s *SubtopicUpsert) {
		s.AddTopicID(v)
	})
}

// UpdateTopicID sets the "topic_id" field to the value that was provided on create.
func (u *SubtopicUpsertBulk) UpdateTopicID() *SubtopicUpsertBulk {
	return u.Update(func(s *SubtopicUpsert) {
		s.UpdateTopicID()
	})
}

// Exec executes the query.
func (u *SubtopicUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubtopicCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubtopicCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubtopicUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/pygrounds/adaptive/ent/item"
)

// ItemCreate is the builder for creating a Item entity.
type ItemCreate struct {
	config
	mutation *ItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSubtopicID sets the "subtopic_id" field.
func (ic *ItemCreate) SetSubtopicID(i int) *ItemCreate {
	ic.mutation.SetSubtopicID(i)
	return ic
}

// SetGameType sets the "game_type" field.
func (ic *ItemCreate) SetGameType(s string) *ItemCreate {
	ic.mutation.SetGameType(s)
	return ic
}

// SetDifficulty sets the "difficulty" field.
func (ic *ItemCreate) SetDifficulty(s string) *ItemCreate {
	ic.mutation.SetDifficulty(s)
	return ic
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (ic *ItemCreate) SetNillableDifficulty(s *string) *ItemCreate {
	if s != nil {
		ic.SetDifficulty(*s)
	}
	return ic
}

// SetAnswer sets the "answer" field.
func (ic *ItemCreate) SetAnswer(s string) *ItemCreate {
	ic.mutation.SetAnswer(s)
	return ic
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (ic *ItemCreate) SetNillableAnswer(s *string) *ItemCreate {
	if s != nil {
		ic.SetAnswer(*s)
	}
	return ic
}

// SetMeta sets the "meta" field.
func (ic *ItemCreate) SetMeta(m map[string]interface{}) *ItemCreate {
	ic.mutation.SetMeta(m)
	return ic
}

// SetID sets the "id" field.
func (ic *ItemCreate) SetID(i int) *ItemCreate {
	ic.mutation.SetID(i)
	return ic
}

// Mutation returns the ItemMutation object of the builder.
func (ic *ItemCreate) Mutation() *ItemMutation {
	return ic.mutation
}

// Save creates the Item in the database.
func (ic *ItemCreate) Save(ctx context.Context) (*Item, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *ItemCreate) SaveX(ctx context.Context) *Item {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *ItemCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *ItemCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *ItemCreate) defaults() {
	if _, ok := ic.mutation.Difficulty(); !ok {
		v := item.DefaultDifficulty
		ic.mutation.SetDifficulty(v)
	}
	if _, ok := ic.mutation.Answer(); !ok {
		v := item.DefaultAnswer
		ic.mutation.SetAnswer(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *ItemCreate) check() error {
	if _, ok := ic.mutation.SubtopicID(); !ok {
		return &ValidationError{Name: "subtopic_id", err: errors.New(`ent: missing required field "Item.subtopic_id"`)}
	}
	if _, ok := ic.mutation.GameType(); !ok {
		return &ValidationError{Name: "game_type", err: errors.New(`ent: missing required field "Item.game_type"`)}
	}
	if v, ok := ic.mutation.GameType(); ok {
		if err := item.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "Item.game_type": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Item.difficulty"`)}
	}
	return nil
}

func (ic *ItemCreate) sqlSave(ctx context.Context) (*Item, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *ItemCreate) createSpec() (*Item, *sqlgraph.CreateSpec) {
	var (
		_node = &Item{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(item.Table, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	)
	_spec.OnConflict = ic.conflict
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ic.mutation.SubtopicID(); ok {
		_spec.SetField(item.FieldSubtopicID, field.TypeInt, value)
		_node.SubtopicID = value
	}
	if value, ok := ic.mutation.GameType(); ok {
		_spec.SetField(item.FieldGameType, field.TypeString, value)
		_node.GameType = value
	}
	if value, ok := ic.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := ic.mutation.Answer(); ok {
		_spec.SetField(item.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := ic.mutation.Meta(); ok {
		_spec.SetField(item.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Item.Create().
//		SetSubtopicID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemUpsert) {
//			SetSubtopicID(v+v).
//		}).
//		Exec(ctx)
func (ic *ItemCreate) OnConflict(opts ...sql.ConflictOption) *ItemUpsertOne {
	ic.conflict = opts
	return &ItemUpsertOne{
		create: ic,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ic *ItemCreate) OnConflictColumns(columns ...string) *ItemUpsertOne {
	ic.conflict = append(ic.conflict, sql.ConflictColumns(columns...))
	return &ItemUpsertOne{
		create: ic,
	}
}

type (
	// ItemUpsertOne is the builder for "upsert"-ing
	//  one Item node.
	ItemUpsertOne struct {
		create *ItemCreate
	}

	// ItemUpsert is the "OnConflict" setter.
	ItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetSubtopicID sets the "subtopic_id" field.
func (u *ItemUpsert) SetSubtopicID(v int) *ItemUpsert {
	u.Set(item.FieldSubtopicID, v)
	return u
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *ItemUpsert) UpdateSubtopicID() *ItemUpsert {
	u.SetExcluded(item.FieldSubtopicID)
	return u
}

// AddSubtopicID adds v to the "subtopic_id" field.
func (u *ItemUpsert) AddSubtopicID(v int) *ItemUpsert {
	u.Add(item.FieldSubtopicID, v)
	return u
}

// SetGameType sets the "game_type" field.
func (u *ItemUpsert) SetGameType(v string) *ItemUpsert {
	u.Set(item.FieldGameType, v)
	return u
}

// UpdateGameType sets the "game_type" field to the value that was provided on create.
func (u *ItemUpsert) UpdateGameType() *ItemUpsert {
	u.SetExcluded(item.FieldGameType)
	return u
}

// SetDifficulty sets the "difficulty" field.
func (u *ItemUpsert) SetDifficulty(v string) *ItemUpsert {
	u.Set(item.FieldDifficulty, v)
	return u
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *ItemUpsert) UpdateDifficulty() *ItemUpsert {
	u.SetExcluded(item.FieldDifficulty)
	return u
}

// SetAnswer sets the "answer" field.
func (u *ItemUpsert) SetAnswer(v string) *ItemUpsert {
	u.Set(item.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *ItemUpsert) UpdateAnswer() *ItemUpsert {
	u.SetExcluded(item.FieldAnswer)
	return u
}

// ClearAnswer clears the value of the "answer" field.
func (u *ItemUpsert) ClearAnswer() *ItemUpsert {
	u.SetNull(item.FieldAnswer)
	return u
}

// SetMeta sets the "meta" field.
func (u *ItemUpsert) SetMeta(v map[string]interface{}) *ItemUpsert {
	u.Set(item.FieldMeta, v)
	return u
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *ItemUpsert) UpdateMeta() *ItemUpsert {
	u.SetExcluded(item.FieldMeta)
	return u
}

// ClearMeta clears the value of the "meta" field.
func (u *ItemUpsert) ClearMeta() *ItemUpsert {
	u.SetNull(item.FieldMeta)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(item.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ItemUpsertOne) UpdateNewValues() *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(item.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Item.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ItemUpsertOne) Ignore() *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemUpsertOne) DoNothing() *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemCreate.OnConflict
// documentation for more info.
func (u *ItemUpsertOne) Update(set func(*ItemUpsert)) *ItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *ItemUpsertOne) SetSubtopicID(v int) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetSubtopicID(v)
	})
}

// AddSubtopicID adds v to the "subtopic_id" field.
func (u *ItemUpsertOne) AddSubtopicID(v int) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.AddSubtopicID(v)
	})
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateSubtopicID() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateSubtopicID()
	})
}

// SetGameType sets the "game_type" field.
func (u *ItemUpsertOne) SetGameType(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetGameType(v)
	})
}

// UpdateGameType sets the "game_type" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateGameType() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateGameType()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *ItemUpsertOne) SetDifficulty(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateDifficulty() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateDifficulty()
	})
}

// SetAnswer sets the "answer" field.
func (u *ItemUpsertOne) SetAnswer(v string) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateAnswer() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateAnswer()
	})
}

// ClearAnswer clears the value of the "answer" field.
func (u *ItemUpsertOne) ClearAnswer() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearAnswer()
	})
}

// SetMeta sets the "meta" field.
func (u *ItemUpsertOne) SetMeta(v map[string]interface{}) *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.SetMeta(v)
	})
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *ItemUpsertOne) UpdateMeta() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateMeta()
	})
}

// ClearMeta clears the value of the "meta" field.
func (u *ItemUpsertOne) ClearMeta() *ItemUpsertOne {
	return u.Update(func(s *ItemUpsert) {
		s.ClearMeta()
	})
}

// Exec executes the query.
func (u *ItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ItemUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ItemUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ItemCreateBulk is the builder for creating many Item entities in bulk.
type ItemCreateBulk struct {
	config
	err      error
	builders []*ItemCreate
	conflict []sql.ConflictOption
}

// Save creates the Item entities in the database.
func (icb *ItemCreateBulk) Save(ctx context.Context) ([]*Item, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Item, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemMutation)
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
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = icb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *ItemCreateBulk) SaveX(ctx context.Context) []*Item {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *ItemCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *ItemCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Item.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemUpsert) {
//			SetSubtopicID(v+v).
//		}).
//		Exec(ctx)
func (icb *ItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ItemUpsertBulk {
	icb.conflict = opts
	return &ItemUpsertBulk{
		create: icb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (icb *ItemCreateBulk) OnConflictColumns(columns ...string) *ItemUpsertBulk {
	icb.conflict = append(icb.conflict, sql.ConflictColumns(columns...))
	return &ItemUpsertBulk{
		create: icb,
	}
}

// ItemUpsertBulk is the builder for "upsert"-ing
// a bulk of Item nodes.
type ItemUpsertBulk struct {
	create *ItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(item.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ItemUpsertBulk) UpdateNewValues() *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(item.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Item.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ItemUpsertBulk) Ignore() *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemUpsertBulk) DoNothing() *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemCreateBulk.OnConflict
// documentation for more info.
func (u *ItemUpsertBulk) Update(set func(*ItemUpsert)) *ItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetSubtopicID sets the "subtopic_id" field.
func (u *ItemUpsertBulk) SetSubtopicID(v int) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetSubtopicID(v)
	})
}

// AddSubtopicID adds v to the "subtopic_id" field.
func (u *ItemUpsertBulk) AddSubtopicID(v int) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.AddSubtopicID(v)
	})
}

// UpdateSubtopicID sets the "subtopic_id" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateSubtopicID() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateSubtopicID()
	})
}

// SetGameType sets the "game_type" field.
func (u *ItemUpsertBulk) SetGameType(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetGameType(v)
	})
}

// UpdateGameType sets the "game_type" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateGameType() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateGameType()
	})
}

// SetDifficulty sets the "difficulty" field.
func (u *ItemUpsertBulk) SetDifficulty(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetDifficulty(v)
	})
}

// UpdateDifficulty sets the "difficulty" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateDifficulty() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateDifficulty()
	})
}

// SetAnswer sets the "answer" field.
func (u *ItemUpsertBulk) SetAnswer(v string) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateAnswer() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateAnswer()
	})
}

// ClearAnswer clears the value of the "answer" field.
func (u *ItemUpsertBulk) ClearAnswer() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearAnswer()
	})
}

// SetMeta sets the "meta" field.
func (u *ItemUpsertBulk) SetMeta(v map[string]interface{}) *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.SetMeta(v)
	})
}

// UpdateMeta sets the "meta" field to the value that was provided on create.
func (u *ItemUpsertBulk) UpdateMeta() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.UpdateMeta()
	})
}

// ClearMeta clears the value of the "meta" field.
func (u *ItemUpsertBulk) ClearMeta() *ItemUpsertBulk {
	return u.Update(func(s *ItemUpsert) {
		s.ClearMeta()
	})
}

// Exec executes the query.
func (u *ItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

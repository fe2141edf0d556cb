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
	"github.com/pygrounds/adaptive/ent/predicate"
)

// ItemUpdate is the builder for updating Item entities.
type ItemUpdate struct {
	config
	hooks    []Hook
	mutation *ItemMutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (iu *ItemUpdate) Where(ps ...predicate.Item) *ItemUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetSubtopicID sets the "subtopic_id" field.
func (iu *ItemUpdate) SetSubtopicID(i int) *ItemUpdate {
	iu.mutation.ResetSubtopicID()
	iu.mutation.SetSubtopicID(i)
	return iu
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableSubtopicID(i *int) *ItemUpdate {
	if i != nil {
		iu.SetSubtopicID(*i)
	}
	return iu
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (iu *ItemUpdate) AddSubtopicID(i int) *ItemUpdate {
	iu.mutation.AddSubtopicID(i)
	return iu
}

// SetGameType sets the "game_type" field.
func (iu *ItemUpdate) SetGameType(s string) *ItemUpdate {
	iu.mutation.SetGameType(s)
	return iu
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableGameType(s *string) *ItemUpdate {
	if s != nil {
		iu.SetGameType(*s)
	}
	return iu
}

// SetDifficulty sets the "difficulty" field.
func (iu *ItemUpdate) SetDifficulty(s string) *ItemUpdate {
	iu.mutation.SetDifficulty(s)
	return iu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableDifficulty(s *string) *ItemUpdate {
	if s != nil {
		iu.SetDifficulty(*s)
	}
	return iu
}

// SetAnswer sets the "answer" field.
func (iu *ItemUpdate) SetAnswer(s string) *ItemUpdate {
	iu.mutation.SetAnswer(s)
	return iu
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (iu *ItemUpdate) SetNillableAnswer(s *string) *ItemUpdate {
	if s != nil {
		iu.SetAnswer(*s)
	}
	return iu
}

// ClearAnswer clears the value of the "answer" field.
func (iu *ItemUpdate) ClearAnswer() *ItemUpdate {
	iu.mutation.ClearAnswer()
	return iu
}

// SetMeta sets the "meta" field.
func (iu *ItemUpdate) SetMeta(m map[string]interface{}) *ItemUpdate {
	iu.mutation.SetMeta(m)
	return iu
}

// ClearMeta clears the value of the "meta" field.
func (iu *ItemUpdate) ClearMeta() *ItemUpdate {
	iu.mutation.ClearMeta()
	return iu
}

// Mutation returns the ItemMutation object of the builder.
func (iu *ItemUpdate) Mutation() *ItemMutation {
	return iu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *ItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *ItemUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *ItemUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *ItemUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *ItemUpdate) check() error {
	if v, ok := iu.mutation.GameType(); ok {
		if err := item.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "Item.game_type": %w`, err)}
		}
	}
	return nil
}

func (iu *ItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.SubtopicID(); ok {
		_spec.SetField(item.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := iu.mutation.AddedSubtopicID(); ok {
		_spec.AddField(item.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := iu.mutation.GameType(); ok {
		_spec.SetField(item.FieldGameType, field.TypeString, value)
	}
	if value, ok := iu.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := iu.mutation.Answer(); ok {
		_spec.SetField(item.FieldAnswer, field.TypeString, value)
	}
	if iu.mutation.AnswerCleared() {
		_spec.ClearField(item.FieldAnswer, field.TypeString)
	}
	if value, ok := iu.mutation.Meta(); ok {
		_spec.SetField(item.FieldMeta, field.TypeJSON, value)
	}
	if iu.mutation.MetaCleared() {
		_spec.ClearField(item.FieldMeta, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// ItemUpdateOne is the builder for updating a single Item entity.
type ItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemMutation
}

// SetSubtopicID sets the "subtopic_id" field.
func (iuo *ItemUpdateOne) SetSubtopicID(i int) *ItemUpdateOne {
	iuo.mutation.ResetSubtopicID()
	iuo.mutation.SetSubtopicID(i)
	return iuo
}

// SetNillableSubtopicID sets the "subtopic_id" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableSubtopicID(i *int) *ItemUpdateOne {
	if i != nil {
		iuo.SetSubtopicID(*i)
	}
	return iuo
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (iuo *ItemUpdateOne) AddSubtopicID(i int) *ItemUpdateOne {
	iuo.mutation.AddSubtopicID(i)
	return iuo
}

// SetGameType sets the "game_type" field.
func (iuo *ItemUpdateOne) SetGameType(s string) *ItemUpdateOne {
	iuo.mutation.SetGameType(s)
	return iuo
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableGameType(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetGameType(*s)
	}
	return iuo
}

// SetDifficulty sets the "difficulty" field.
func (iuo *ItemUpdateOne) SetDifficulty(s string) *ItemUpdateOne {
	iuo.mutation.SetDifficulty(s)
	return iuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableDifficulty(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetDifficulty(*s)
	}
	return iuo
}

// SetAnswer sets the "answer" field.
func (iuo *ItemUpdateOne) SetAnswer(s string) *ItemUpdateOne {
	iuo.mutation.SetAnswer(s)
	return iuo
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (iuo *ItemUpdateOne) SetNillableAnswer(s *string) *ItemUpdateOne {
	if s != nil {
		iuo.SetAnswer(*s)
	}
	return iuo
}

// ClearAnswer clears the value of the "answer" field.
func (iuo *ItemUpdateOne) ClearAnswer() *ItemUpdateOne {
	iuo.mutation.ClearAnswer()
	return iuo
}

// SetMeta sets the "meta" field.
func (iuo *ItemUpdateOne) SetMeta(m map[string]interface{}) *ItemUpdateOne {
	iuo.mutation.SetMeta(m)
	return iuo
}

// ClearMeta clears the value of the "meta" field.
func (iuo *ItemUpdateOne) ClearMeta() *ItemUpdateOne {
	iuo.mutation.ClearMeta()
	return iuo
}

// Mutation returns the ItemMutation object of the builder.
func (iuo *ItemUpdateOne) Mutation() *ItemMutation {
	return iuo.mutation
}

// Where appends a list predicates to the ItemUpdate builder.
func (iuo *ItemUpdateOne) Where(ps ...predicate.Item) *ItemUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *ItemUpdateOne) Select(field string, fields ...string) *ItemUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Item entity.
func (iuo *ItemUpdateOne) Save(ctx context.Context) (*Item, error) {
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *ItemUpdateOne) SaveX(ctx context.Context) *Item {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *ItemUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *ItemUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *ItemUpdateOne) check() error {
	if v, ok := iuo.mutation.GameType(); ok {
		if err := item.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "Item.game_type": %w`, err)}
		}
	}
	return nil
}

func (iuo *ItemUpdateOne) sqlSave(ctx context.Context) (_node *Item, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(item.Table, item.Columns, sqlgraph.NewFieldSpec(item.FieldID, field.TypeInt))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Item.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, item.FieldID)
		for _, f := range fields {
			if !item.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != item.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.SubtopicID(); ok {
		_spec.SetField(item.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.AddedSubtopicID(); ok {
		_spec.AddField(item.FieldSubtopicID, field.TypeInt, value)
	}
	if value, ok := iuo.mutation.GameType(); ok {
		_spec.SetField(item.FieldGameType, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Difficulty(); ok {
		_spec.SetField(item.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Answer(); ok {
		_spec.SetField(item.FieldAnswer, field.TypeString, value)
	}
	if iuo.mutation.AnswerCleared() {
		_spec.ClearField(item.FieldAnswer, field.TypeString)
	}
	if value, ok := iuo.mutation.Meta(); ok {
		_spec.SetField(item.FieldMeta, field.TypeJSON, value)
	}
	if iuo.mutation.MetaCleared() {
		_spec.ClearField(item.FieldMeta, field.TypeJSON)
	}
	_node = &Item{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{item.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}

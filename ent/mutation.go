// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/ability"
	"github.com/pygrounds/adaptive/ent/attemptevent"
	"github.com/pygrounds/adaptive/ent/item"
	"github.com/pygrounds/adaptive/ent/learningrate"
	"github.com/pygrounds/adaptive/ent/masteryrecord"
	"github.com/pygrounds/adaptive/ent/predicate"
	"github.com/pygrounds/adaptive/ent/subtopic"
	"github.com/pygrounds/adaptive/ent/topic"
	"github.com/pygrounds/adaptive/ent/topicproficiency"
	"github.com/pygrounds/adaptive/ent/zone"
	"github.com/pygrounds/adaptive/ent/zoneprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAbility          = "Ability"
	TypeAttemptEvent     = "AttemptEvent"
	TypeItem             = "Item"
	TypeLearningRate     = "LearningRate"
	TypeMasteryRecord    = "MasteryRecord"
	TypeSubtopic         = "Subtopic"
	TypeTopic            = "Topic"
	TypeTopicProficiency = "TopicProficiency"
	TypeZone             = "Zone"
	TypeZoneProgress     = "ZoneProgress"
)

// AbilityMutation represents an operation that mutates the Ability nodes in the graph.
type AbilityMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner       *string
	score         *float64
	addscore      *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Ability, error)
	predicates    []predicate.Ability
}

var _ ent.Mutation = (*AbilityMutation)(nil)

// abilityOption allows management of the mutation configuration using functional options.
type abilityOption func(*AbilityMutation)

// newAbilityMutation creates new mutation for the Ability entity.
func newAbilityMutation(c config, op Op, opts ...abilityOption) *AbilityMutation {
	m := &AbilityMutation{
		config:        c,
		op:            op,
		typ:           TypeAbility,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAbilityID sets the ID field of the mutation.
func withAbilityID(id int) abilityOption {
	return func(m *AbilityMutation) {
		var (
			err   error
			once  sync.Once
			value *Ability
		)
		m.oldValue = func(ctx context.Context) (*Ability, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Ability.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAbility sets the old Ability of the mutation.
func withAbility(node *Ability) abilityOption {
	return func(m *AbilityMutation) {
		m.oldValue = func(context.Context) (*Ability, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AbilityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AbilityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AbilityMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AbilityMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Ability.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearner sets the "learner" field.
func (m *AbilityMutation) SetLearner(s string) {
	m.learner = &s
}

// Learner returns the value of the "learner" field in the mutation.
func (m *AbilityMutation) Learner() (r string, exists bool) {
	v := m.learner
	if v == nil {
		return
	}
	return *v, true
}

// OldLearner returns the old "learner" field's value of the Ability entity.
// If the Ability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbilityMutation) OldLearner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearner: %w", err)
	}
	return oldValue.Learner, nil
}

// ResetLearner resets all changes to the "learner" field.
func (m *AbilityMutation) ResetLearner() {
	m.learner = nil
}

// SetScore sets the "score" field.
func (m *AbilityMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *AbilityMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Ability entity.
// If the Ability object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AbilityMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *AbilityMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *AbilityMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *AbilityMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// Where appends a list predicates to the AbilityMutation builder.
func (m *AbilityMutation) Where(ps ...predicate.Ability) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AbilityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AbilityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Ability, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AbilityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AbilityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Ability).
func (m *AbilityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AbilityMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.learner != nil {
		fields = append(fields, ability.FieldLearner)
	}
	if m.score != nil {
		fields = append(fields, ability.FieldScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AbilityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ability.FieldLearner:
		return m.Learner()
	case ability.FieldScore:
		return m.Score()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AbilityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ability.FieldLearner:
		return m.OldLearner(ctx)
	case ability.FieldScore:
		return m.OldScore(ctx)
	}
	return nil, fmt.Errorf("unknown Ability field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AbilityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ability.FieldLearner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearner(v)
		return nil
	case ability.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	}
	return fmt.Errorf("unknown Ability field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AbilityMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, ability.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AbilityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ability.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AbilityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ability.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Ability numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AbilityMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AbilityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AbilityMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Ability nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AbilityMutation) ResetField(name string) error {
	switch name {
	case ability.FieldLearner:
		m.ResetLearner()
		return nil
	case ability.FieldScore:
		m.ResetScore()
		return nil
	}
	return fmt.Errorf("unknown Ability field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AbilityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AbilityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AbilityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AbilityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AbilityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AbilityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AbilityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Ability unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AbilityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Ability edge %s", name)
}

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	learner            *string
	batch_id           *string
	item_id            *int
	additem_id         *int
	subtopic_ids       *[]int
	appendsubtopic_ids []int
	correct            *bool
	difficulty         *string
	game_type          *string
	elapsed            *float64
	addelapsed         *float64
	time_limit         *float64
	addtime_limit      *float64
	mistakes           *int
	addmistakes        *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AttemptEvent, error)
	predicates         []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetLearner sets the "learner" field.
func (m *AttemptEventMutation) SetLearner(s string) {
	m.learner = &s
}

// Learner returns the value of the "learner" field in the mutation.
func (m *AttemptEventMutation) Learner() (r string, exists bool) {
	v := m.learner
	if v == nil {
		return
	}
	return *v, true
}

// OldLearner returns the old "learner" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldLearner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearner: %w", err)
	}
	return oldValue.Learner, nil
}

// ResetLearner resets all changes to the "learner" field.
func (m *AttemptEventMutation) ResetLearner() {
	m.learner = nil
}

// SetBatchID sets the "batch_id" field.
func (m *AttemptEventMutation) SetBatchID(s string) {
	m.batch_id = &s
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *AttemptEventMutation) BatchID() (r string, exists bool) {
	v := m.batch_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldBatchID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *AttemptEventMutation) ResetBatchID() {
	m.batch_id = nil
}

// SetItemID sets the "item_id" field.
func (m *AttemptEventMutation) SetItemID(i int) {
	m.item_id = &i
	m.additem_id = nil
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *AttemptEventMutation) ItemID() (r int, exists bool) {
	v := m.item_id
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldItemID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// AddItemID adds i to the "item_id" field.
func (m *AttemptEventMutation) AddItemID(i int) {
	if m.additem_id != nil {
		*m.additem_id += i
	} else {
		m.additem_id = &i
	}
}

// AddedItemID returns the value that was added to the "item_id" field in this mutation.
func (m *AttemptEventMutation) AddedItemID() (r int, exists bool) {
	v := m.additem_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearItemID clears the value of the "item_id" field.
func (m *AttemptEventMutation) ClearItemID() {
	m.item_id = nil
	m.additem_id = nil
	m.clearedFields[attemptevent.FieldItemID] = struct{}{}
}

// ItemIDCleared returns if the "item_id" field was cleared in this mutation.
func (m *AttemptEventMutation) ItemIDCleared() bool {
	_, ok := m.clearedFields[attemptevent.FieldItemID]
	return ok
}

// ResetItemID resets all changes to the "item_id" field.
func (m *AttemptEventMutation) ResetItemID() {
	m.item_id = nil
	m.additem_id = nil
	delete(m.clearedFields, attemptevent.FieldItemID)
}

// SetSubtopicIds sets the "subtopic_ids" field.
func (m *AttemptEventMutation) SetSubtopicIds(i []int) {
	m.subtopic_ids = &i
	m.appendsubtopic_ids = nil
}

// SubtopicIds returns the value of the "subtopic_ids" field in the mutation.
func (m *AttemptEventMutation) SubtopicIds() (r []int, exists bool) {
	v := m.subtopic_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicIds returns the old "subtopic_ids" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSubtopicIds(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicIds: %w", err)
	}
	return oldValue.SubtopicIds, nil
}

// AppendSubtopicIds adds i to the "subtopic_ids" field.
func (m *AttemptEventMutation) AppendSubtopicIds(i []int) {
	m.appendsubtopic_ids = append(m.appendsubtopic_ids, i...)
}

// AppendedSubtopicIds returns the list of values that were appended to the "subtopic_ids" field in this mutation.
func (m *AttemptEventMutation) AppendedSubtopicIds() ([]int, bool) {
	if len(m.appendsubtopic_ids) == 0 {
		return nil, false
	}
	return m.appendsubtopic_ids, true
}

// ResetSubtopicIds resets all changes to the "subtopic_ids" field.
func (m *AttemptEventMutation) ResetSubtopicIds() {
	m.subtopic_ids = nil
	m.appendsubtopic_ids = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *AttemptEventMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *AttemptEventMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *AttemptEventMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetGameType sets the "game_type" field.
func (m *AttemptEventMutation) SetGameType(s string) {
	m.game_type = &s
}

// GameType returns the value of the "game_type" field in the mutation.
func (m *AttemptEventMutation) GameType() (r string, exists bool) {
	v := m.game_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGameType returns the old "game_type" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldGameType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGameType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGameType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGameType: %w", err)
	}
	return oldValue.GameType, nil
}

// ResetGameType resets all changes to the "game_type" field.
func (m *AttemptEventMutation) ResetGameType() {
	m.game_type = nil
}

// SetElapsed sets the "elapsed" field.
func (m *AttemptEventMutation) SetElapsed(f float64) {
	m.elapsed = &f
	m.addelapsed = nil
}

// Elapsed returns the value of the "elapsed" field in the mutation.
func (m *AttemptEventMutation) Elapsed() (r float64, exists bool) {
	v := m.elapsed
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsed returns the old "elapsed" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldElapsed(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsed: %w", err)
	}
	return oldValue.Elapsed, nil
}

// AddElapsed adds f to the "elapsed" field.
func (m *AttemptEventMutation) AddElapsed(f float64) {
	if m.addelapsed != nil {
		*m.addelapsed += f
	} else {
		m.addelapsed = &f
	}
}

// AddedElapsed returns the value that was added to the "elapsed" field in this mutation.
func (m *AttemptEventMutation) AddedElapsed() (r float64, exists bool) {
	v := m.addelapsed
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsed resets all changes to the "elapsed" field.
func (m *AttemptEventMutation) ResetElapsed() {
	m.elapsed = nil
	m.addelapsed = nil
}

// SetTimeLimit sets the "time_limit" field.
func (m *AttemptEventMutation) SetTimeLimit(f float64) {
	m.time_limit = &f
	m.addtime_limit = nil
}

// TimeLimit returns the value of the "time_limit" field in the mutation.
func (m *AttemptEventMutation) TimeLimit() (r float64, exists bool) {
	v := m.time_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeLimit returns the old "time_limit" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimeLimit(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeLimit: %w", err)
	}
	return oldValue.TimeLimit, nil
}

// AddTimeLimit adds f to the "time_limit" field.
func (m *AttemptEventMutation) AddTimeLimit(f float64) {
	if m.addtime_limit != nil {
		*m.addtime_limit += f
	} else {
		m.addtime_limit = &f
	}
}

// AddedTimeLimit returns the value that was added to the "time_limit" field in this mutation.
func (m *AttemptEventMutation) AddedTimeLimit() (r float64, exists bool) {
	v := m.addtime_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeLimit resets all changes to the "time_limit" field.
func (m *AttemptEventMutation) ResetTimeLimit() {
	m.time_limit = nil
	m.addtime_limit = nil
}

// SetMistakes sets the "mistakes" field.
func (m *AttemptEventMutation) SetMistakes(i int) {
	m.mistakes = &i
	m.addmistakes = nil
}

// Mistakes returns the value of the "mistakes" field in the mutation.
func (m *AttemptEventMutation) Mistakes() (r int, exists bool) {
	v := m.mistakes
	if v == nil {
		return
	}
	return *v, true
}

// OldMistakes returns the old "mistakes" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldMistakes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMistakes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMistakes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMistakes: %w", err)
	}
	return oldValue.Mistakes, nil
}

// AddMistakes adds i to the "mistakes" field.
func (m *AttemptEventMutation) AddMistakes(i int) {
	if m.addmistakes != nil {
		*m.addmistakes += i
	} else {
		m.addmistakes = &i
	}
}

// AddedMistakes returns the value that was added to the "mistakes" field in this mutation.
func (m *AttemptEventMutation) AddedMistakes() (r int, exists bool) {
	v := m.addmistakes
	if v == nil {
		return
	}
	return *v, true
}

// ResetMistakes resets all changes to the "mistakes" field.
func (m *AttemptEventMutation) ResetMistakes() {
	m.mistakes = nil
	m.addmistakes = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.learner != nil {
		fields = append(fields, attemptevent.FieldLearner)
	}
	if m.batch_id != nil {
		fields = append(fields, attemptevent.FieldBatchID)
	}
	if m.item_id != nil {
		fields = append(fields, attemptevent.FieldItemID)
	}
	if m.subtopic_ids != nil {
		fields = append(fields, attemptevent.FieldSubtopicIds)
	}
	if m.correct != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	if m.difficulty != nil {
		fields = append(fields, attemptevent.FieldDifficulty)
	}
	if m.game_type != nil {
		fields = append(fields, attemptevent.FieldGameType)
	}
	if m.elapsed != nil {
		fields = append(fields, attemptevent.FieldElapsed)
	}
	if m.time_limit != nil {
		fields = append(fields, attemptevent.FieldTimeLimit)
	}
	if m.mistakes != nil {
		fields = append(fields, attemptevent.FieldMistakes)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldLearner:
		return m.Learner()
	case attemptevent.FieldBatchID:
		return m.BatchID()
	case attemptevent.FieldItemID:
		return m.ItemID()
	case attemptevent.FieldSubtopicIds:
		return m.SubtopicIds()
	case attemptevent.FieldCorrect:
		return m.Correct()
	case attemptevent.FieldDifficulty:
		return m.Difficulty()
	case attemptevent.FieldGameType:
		return m.GameType()
	case attemptevent.FieldElapsed:
		return m.Elapsed()
	case attemptevent.FieldTimeLimit:
		return m.TimeLimit()
	case attemptevent.FieldMistakes:
		return m.Mistakes()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldLearner:
		return m.OldLearner(ctx)
	case attemptevent.FieldBatchID:
		return m.OldBatchID(ctx)
	case attemptevent.FieldItemID:
		return m.OldItemID(ctx)
	case attemptevent.FieldSubtopicIds:
		return m.OldSubtopicIds(ctx)
	case attemptevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case attemptevent.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case attemptevent.FieldGameType:
		return m.OldGameType(ctx)
	case attemptevent.FieldElapsed:
		return m.OldElapsed(ctx)
	case attemptevent.FieldTimeLimit:
		return m.OldTimeLimit(ctx)
	case attemptevent.FieldMistakes:
		return m.OldMistakes(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldLearner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearner(v)
		return nil
	case attemptevent.FieldBatchID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case attemptevent.FieldItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case attemptevent.FieldSubtopicIds:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicIds(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attemptevent.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case attemptevent.FieldGameType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGameType(v)
		return nil
	case attemptevent.FieldElapsed:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsed(v)
		return nil
	case attemptevent.FieldTimeLimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeLimit(v)
		return nil
	case attemptevent.FieldMistakes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMistakes(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.additem_id != nil {
		fields = append(fields, attemptevent.FieldItemID)
	}
	if m.addelapsed != nil {
		fields = append(fields, attemptevent.FieldElapsed)
	}
	if m.addtime_limit != nil {
		fields = append(fields, attemptevent.FieldTimeLimit)
	}
	if m.addmistakes != nil {
		fields = append(fields, attemptevent.FieldMistakes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	case attemptevent.FieldItemID:
		return m.AddedItemID()
	case attemptevent.FieldElapsed:
		return m.AddedElapsed()
	case attemptevent.FieldTimeLimit:
		return m.AddedTimeLimit()
	case attemptevent.FieldMistakes:
		return m.AddedMistakes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case attemptevent.FieldItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemID(v)
		return nil
	case attemptevent.FieldElapsed:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsed(v)
		return nil
	case attemptevent.FieldTimeLimit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeLimit(v)
		return nil
	case attemptevent.FieldMistakes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMistakes(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attemptevent.FieldItemID) {
		fields = append(fields, attemptevent.FieldItemID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	switch name {
	case attemptevent.FieldItemID:
		m.ClearItemID()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldLearner:
		m.ResetLearner()
		return nil
	case attemptevent.FieldBatchID:
		m.ResetBatchID()
		return nil
	case attemptevent.FieldItemID:
		m.ResetItemID()
		return nil
	case attemptevent.FieldSubtopicIds:
		m.ResetSubtopicIds()
		return nil
	case attemptevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attemptevent.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case attemptevent.FieldGameType:
		m.ResetGameType()
		return nil
	case attemptevent.FieldElapsed:
		m.ResetElapsed()
		return nil
	case attemptevent.FieldTimeLimit:
		m.ResetTimeLimit()
		return nil
	case attemptevent.FieldMistakes:
		m.ResetMistakes()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// ItemMutation represents an operation that mutates the Item nodes in the graph.
type ItemMutation struct {
	config
	op             Op
	typ            string
	id             *int
	subtopic_id    *int
	addsubtopic_id *int
	game_type      *string
	difficulty     *string
	answer         *string
	meta           *map[string]interface{}
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Item, error)
	predicates     []predicate.Item
}

var _ ent.Mutation = (*ItemMutation)(nil)

// itemOption allows management of the mutation configuration using functional options.
type itemOption func(*ItemMutation)

// newItemMutation creates new mutation for the Item entity.
func newItemMutation(c config, op Op, opts ...itemOption) *ItemMutation {
	m := &ItemMutation{
		config:        c,
		op:            op,
		typ:           TypeItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withItemID sets the ID field of the mutation.
func withItemID(id int) itemOption {
	return func(m *ItemMutation) {
		var (
			err   error
			once  sync.Once
			value *Item
		)
		m.oldValue = func(ctx context.Context) (*Item, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Item.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withItem sets the old Item of the mutation.
func withItem(node *Item) itemOption {
	return func(m *ItemMutation) {
		m.oldValue = func(context.Context) (*Item, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Item entities.
func (m *ItemMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Item.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubtopicID sets the "subtopic_id" field.
func (m *ItemMutation) SetSubtopicID(i int) {
	m.subtopic_id = &i
	m.addsubtopic_id = nil
}

// SubtopicID returns the value of the "subtopic_id" field in the mutation.
func (m *ItemMutation) SubtopicID() (r int, exists bool) {
	v := m.subtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicID returns the old "subtopic_id" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldSubtopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicID: %w", err)
	}
	return oldValue.SubtopicID, nil
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (m *ItemMutation) AddSubtopicID(i int) {
	if m.addsubtopic_id != nil {
		*m.addsubtopic_id += i
	} else {
		m.addsubtopic_id = &i
	}
}

// AddedSubtopicID returns the value that was added to the "subtopic_id" field in this mutation.
func (m *ItemMutation) AddedSubtopicID() (r int, exists bool) {
	v := m.addsubtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtopicID resets all changes to the "subtopic_id" field.
func (m *ItemMutation) ResetSubtopicID() {
	m.subtopic_id = nil
	m.addsubtopic_id = nil
}

// SetGameType sets the "game_type" field.
func (m *ItemMutation) SetGameType(s string) {
	m.game_type = &s
}

// GameType returns the value of the "game_type" field in the mutation.
func (m *ItemMutation) GameType() (r string, exists bool) {
	v := m.game_type
	if v == nil {
		return
	}
	return *v, true
}

// OldGameType returns the old "game_type" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldGameType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGameType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGameType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGameType: %w", err)
	}
	return oldValue.GameType, nil
}

// ResetGameType resets all changes to the "game_type" field.
func (m *ItemMutation) ResetGameType() {
	m.game_type = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *ItemMutation) SetDifficulty(s string) {
	m.difficulty = &s
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *ItemMutation) Difficulty() (r string, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldDifficulty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *ItemMutation) ResetDifficulty() {
	m.difficulty = nil
}

// SetAnswer sets the "answer" field.
func (m *ItemMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *ItemMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ClearAnswer clears the value of the "answer" field.
func (m *ItemMutation) ClearAnswer() {
	m.answer = nil
	m.clearedFields[item.FieldAnswer] = struct{}{}
}

// AnswerCleared returns if the "answer" field was cleared in this mutation.
func (m *ItemMutation) AnswerCleared() bool {
	_, ok := m.clearedFields[item.FieldAnswer]
	return ok
}

// ResetAnswer resets all changes to the "answer" field.
func (m *ItemMutation) ResetAnswer() {
	m.answer = nil
	delete(m.clearedFields, item.FieldAnswer)
}

// SetMeta sets the "meta" field.
func (m *ItemMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *ItemMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the Item entity.
// If the Item object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ItemMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *ItemMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[item.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *ItemMutation) MetaCleared() bool {
	_, ok := m.clearedFields[item.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *ItemMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, item.FieldMeta)
}

// Where appends a list predicates to the ItemMutation builder.
func (m *ItemMutation) Where(ps ...predicate.Item) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Item, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Item).
func (m *ItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ItemMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.subtopic_id != nil {
		fields = append(fields, item.FieldSubtopicID)
	}
	if m.game_type != nil {
		fields = append(fields, item.FieldGameType)
	}
	if m.difficulty != nil {
		fields = append(fields, item.FieldDifficulty)
	}
	if m.answer != nil {
		fields = append(fields, item.FieldAnswer)
	}
	if m.meta != nil {
		fields = append(fields, item.FieldMeta)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case item.FieldSubtopicID:
		return m.SubtopicID()
	case item.FieldGameType:
		return m.GameType()
	case item.FieldDifficulty:
		return m.Difficulty()
	case item.FieldAnswer:
		return m.Answer()
	case item.FieldMeta:
		return m.Meta()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case item.FieldSubtopicID:
		return m.OldSubtopicID(ctx)
	case item.FieldGameType:
		return m.OldGameType(ctx)
	case item.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case item.FieldAnswer:
		return m.OldAnswer(ctx)
	case item.FieldMeta:
		return m.OldMeta(ctx)
	}
	return nil, fmt.Errorf("unknown Item field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case item.FieldSubtopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicID(v)
		return nil
	case item.FieldGameType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGameType(v)
		return nil
	case item.FieldDifficulty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case item.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case item.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ItemMutation) AddedFields() []string {
	var fields []string
	if m.addsubtopic_id != nil {
		fields = append(fields, item.FieldSubtopicID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case item.FieldSubtopicID:
		return m.AddedSubtopicID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case item.FieldSubtopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtopicID(v)
		return nil
	}
	return fmt.Errorf("unknown Item numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(item.FieldAnswer) {
		fields = append(fields, item.FieldAnswer)
	}
	if m.FieldCleared(item.FieldMeta) {
		fields = append(fields, item.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ItemMutation) ClearField(name string) error {
	switch name {
	case item.FieldAnswer:
		m.ClearAnswer()
		return nil
	case item.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown Item nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ItemMutation) ResetField(name string) error {
	switch name {
	case item.FieldSubtopicID:
		m.ResetSubtopicID()
		return nil
	case item.FieldGameType:
		m.ResetGameType()
		return nil
	case item.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case item.FieldAnswer:
		m.ResetAnswer()
		return nil
	case item.FieldMeta:
		m.ResetMeta()
		return nil
	}
	return fmt.Errorf("unknown Item field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Item unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Item edge %s", name)
}

// LearningRateMutation represents an operation that mutates the LearningRate nodes in the graph.
type LearningRateMutation struct {
	config
	op             Op
	typ            string
	id             *int
	learner        *string
	subtopic_id    *int
	addsubtopic_id *int
	scale          *float64
	addscale       *float64
	count          *int
	addcount       *int
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*LearningRate, error)
	predicates     []predicate.LearningRate
}

var _ ent.Mutation = (*LearningRateMutation)(nil)

// learningrateOption allows management of the mutation configuration using functional options.
type learningrateOption func(*LearningRateMutation)

// newLearningRateMutation creates new mutation for the LearningRate entity.
func newLearningRateMutation(c config, op Op, opts ...learningrateOption) *LearningRateMutation {
	m := &LearningRateMutation{
		config:        c,
		op:            op,
		typ:           TypeLearningRate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearningRateID sets the ID field of the mutation.
func withLearningRateID(id int) learningrateOption {
	return func(m *LearningRateMutation) {
		var (
			err   error
			once  sync.Once
			value *LearningRate
		)
		m.oldValue = func(ctx context.Context) (*LearningRate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearningRate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearningRate sets the old LearningRate of the mutation.
func withLearningRate(node *LearningRate) learningrateOption {
	return func(m *LearningRateMutation) {
		m.oldValue = func(context.Context) (*LearningRate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearningRateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearningRateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearningRateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearningRateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearningRate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearner sets the "learner" field.
func (m *LearningRateMutation) SetLearner(s string) {
	m.learner = &s
}

// Learner returns the value of the "learner" field in the mutation.
func (m *LearningRateMutation) Learner() (r string, exists bool) {
	v := m.learner
	if v == nil {
		return
	}
	return *v, true
}

// OldLearner returns the old "learner" field's value of the LearningRate entity.
// If the LearningRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRateMutation) OldLearner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearner: %w", err)
	}
	return oldValue.Learner, nil
}

// ResetLearner resets all changes to the "learner" field.
func (m *LearningRateMutation) ResetLearner() {
	m.learner = nil
}

// SetSubtopicID sets the "subtopic_id" field.
func (m *LearningRateMutation) SetSubtopicID(i int) {
	m.subtopic_id = &i
	m.addsubtopic_id = nil
}

// SubtopicID returns the value of the "subtopic_id" field in the mutation.
func (m *LearningRateMutation) SubtopicID() (r int, exists bool) {
	v := m.subtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicID returns the old "subtopic_id" field's value of the LearningRate entity.
// If the LearningRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRateMutation) OldSubtopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicID: %w", err)
	}
	return oldValue.SubtopicID, nil
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (m *LearningRateMutation) AddSubtopicID(i int) {
	if m.addsubtopic_id != nil {
		*m.addsubtopic_id += i
	} else {
		m.addsubtopic_id = &i
	}
}

// AddedSubtopicID returns the value that was added to the "subtopic_id" field in this mutation.
func (m *LearningRateMutation) AddedSubtopicID() (r int, exists bool) {
	v := m.addsubtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtopicID resets all changes to the "subtopic_id" field.
func (m *LearningRateMutation) ResetSubtopicID() {
	m.subtopic_id = nil
	m.addsubtopic_id = nil
}

// SetScale sets the "scale" field.
func (m *LearningRateMutation) SetScale(f float64) {
	m.scale = &f
	m.addscale = nil
}

// Scale returns the value of the "scale" field in the mutation.
func (m *LearningRateMutation) Scale() (r float64, exists bool) {
	v := m.scale
	if v == nil {
		return
	}
	return *v, true
}

// OldScale returns the old "scale" field's value of the LearningRate entity.
// If the LearningRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRateMutation) OldScale(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScale: %w", err)
	}
	return oldValue.Scale, nil
}

// AddScale adds f to the "scale" field.
func (m *LearningRateMutation) AddScale(f float64) {
	if m.addscale != nil {
		*m.addscale += f
	} else {
		m.addscale = &f
	}
}

// AddedScale returns the value that was added to the "scale" field in this mutation.
func (m *LearningRateMutation) AddedScale() (r float64, exists bool) {
	v := m.addscale
	if v == nil {
		return
	}
	return *v, true
}

// ResetScale resets all changes to the "scale" field.
func (m *LearningRateMutation) ResetScale() {
	m.scale = nil
	m.addscale = nil
}

// SetCount sets the "count" field.
func (m *LearningRateMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *LearningRateMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the LearningRate entity.
// If the LearningRate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearningRateMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *LearningRateMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *LearningRateMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *LearningRateMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// Where appends a list predicates to the LearningRateMutation builder.
func (m *LearningRateMutation) Where(ps ...predicate.LearningRate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearningRateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearningRateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearningRate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearningRateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearningRateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearningRate).
func (m *LearningRateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearningRateMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.learner != nil {
		fields = append(fields, learningrate.FieldLearner)
	}
	if m.subtopic_id != nil {
		fields = append(fields, learningrate.FieldSubtopicID)
	}
	if m.scale != nil {
		fields = append(fields, learningrate.FieldScale)
	}
	if m.count != nil {
		fields = append(fields, learningrate.FieldCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearningRateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learningrate.FieldLearner:
		return m.Learner()
	case learningrate.FieldSubtopicID:
		return m.SubtopicID()
	case learningrate.FieldScale:
		return m.Scale()
	case learningrate.FieldCount:
		return m.Count()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearningRateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learningrate.FieldLearner:
		return m.OldLearner(ctx)
	case learningrate.FieldSubtopicID:
		return m.OldSubtopicID(ctx)
	case learningrate.FieldScale:
		return m.OldScale(ctx)
	case learningrate.FieldCount:
		return m.OldCount(ctx)
	}
	return nil, fmt.Errorf("unknown LearningRate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningRateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learningrate.FieldLearner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearner(v)
		return nil
	case learningrate.FieldSubtopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicID(v)
		return nil
	case learningrate.FieldScale:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScale(v)
		return nil
	case learningrate.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	}
	return fmt.Errorf("unknown LearningRate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearningRateMutation) AddedFields() []string {
	var fields []string
	if m.addsubtopic_id != nil {
		fields = append(fields, learningrate.FieldSubtopicID)
	}
	if m.addscale != nil {
		fields = append(fields, learningrate.FieldScale)
	}
	if m.addcount != nil {
		fields = append(fields, learningrate.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearningRateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learningrate.FieldSubtopicID:
		return m.AddedSubtopicID()
	case learningrate.FieldScale:
		return m.AddedScale()
	case learningrate.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearningRateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learningrate.FieldSubtopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtopicID(v)
		return nil
	case learningrate.FieldScale:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScale(v)
		return nil
	case learningrate.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown LearningRate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearningRateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearningRateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearningRateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LearningRate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearningRateMutation) ResetField(name string) error {
	switch name {
	case learningrate.FieldLearner:
		m.ResetLearner()
		return nil
	case learningrate.FieldSubtopicID:
		m.ResetSubtopicID()
		return nil
	case learningrate.FieldScale:
		m.ResetScale()
		return nil
	case learningrate.FieldCount:
		m.ResetCount()
		return nil
	}
	return fmt.Errorf("unknown LearningRate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearningRateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearningRateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearningRateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearningRateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearningRateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearningRateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearningRateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearningRate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearningRateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearningRate edge %s", name)
}

// MasteryRecordMutation represents an operation that mutates the MasteryRecord nodes in the graph.
type MasteryRecordMutation struct {
	config
	op             Op
	typ            string
	id             *int
	learner        *string
	subtopic_id    *int
	addsubtopic_id *int
	pct            *float64
	addpct         *float64
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*MasteryRecord, error)
	predicates     []predicate.MasteryRecord
}

var _ ent.Mutation = (*MasteryRecordMutation)(nil)

// masteryrecordOption allows management of the mutation configuration using functional options.
type masteryrecordOption func(*MasteryRecordMutation)

// newMasteryRecordMutation creates new mutation for the MasteryRecord entity.
func newMasteryRecordMutation(c config, op Op, opts ...masteryrecordOption) *MasteryRecordMutation {
	m := &MasteryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeMasteryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMasteryRecordID sets the ID field of the mutation.
func withMasteryRecordID(id int) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *MasteryRecord
		)
		m.oldValue = func(ctx context.Context) (*MasteryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MasteryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMasteryRecord sets the old MasteryRecord of the mutation.
func withMasteryRecord(node *MasteryRecord) masteryrecordOption {
	return func(m *MasteryRecordMutation) {
		m.oldValue = func(context.Context) (*MasteryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MasteryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MasteryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MasteryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MasteryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MasteryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearner sets the "learner" field.
func (m *MasteryRecordMutation) SetLearner(s string) {
	m.learner = &s
}

// Learner returns the value of the "learner" field in the mutation.
func (m *MasteryRecordMutation) Learner() (r string, exists bool) {
	v := m.learner
	if v == nil {
		return
	}
	return *v, true
}

// OldLearner returns the old "learner" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldLearner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearner: %w", err)
	}
	return oldValue.Learner, nil
}

// ResetLearner resets all changes to the "learner" field.
func (m *MasteryRecordMutation) ResetLearner() {
	m.learner = nil
}

// SetSubtopicID sets the "subtopic_id" field.
func (m *MasteryRecordMutation) SetSubtopicID(i int) {
	m.subtopic_id = &i
	m.addsubtopic_id = nil
}

// SubtopicID returns the value of the "subtopic_id" field in the mutation.
func (m *MasteryRecordMutation) SubtopicID() (r int, exists bool) {
	v := m.subtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtopicID returns the old "subtopic_id" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldSubtopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtopicID: %w", err)
	}
	return oldValue.SubtopicID, nil
}

// AddSubtopicID adds i to the "subtopic_id" field.
func (m *MasteryRecordMutation) AddSubtopicID(i int) {
	if m.addsubtopic_id != nil {
		*m.addsubtopic_id += i
	} else {
		m.addsubtopic_id = &i
	}
}

// AddedSubtopicID returns the value that was added to the "subtopic_id" field in this mutation.
func (m *MasteryRecordMutation) AddedSubtopicID() (r int, exists bool) {
	v := m.addsubtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtopicID resets all changes to the "subtopic_id" field.
func (m *MasteryRecordMutation) ResetSubtopicID() {
	m.subtopic_id = nil
	m.addsubtopic_id = nil
}

// SetPct sets the "pct" field.
func (m *MasteryRecordMutation) SetPct(f float64) {
	m.pct = &f
	m.addpct = nil
}

// Pct returns the value of the "pct" field in the mutation.
func (m *MasteryRecordMutation) Pct() (r float64, exists bool) {
	v := m.pct
	if v == nil {
		return
	}
	return *v, true
}

// OldPct returns the old "pct" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPct: %w", err)
	}
	return oldValue.Pct, nil
}

// AddPct adds f to the "pct" field.
func (m *MasteryRecordMutation) AddPct(f float64) {
	if m.addpct != nil {
		*m.addpct += f
	} else {
		m.addpct = &f
	}
}

// AddedPct returns the value that was added to the "pct" field in this mutation.
func (m *MasteryRecordMutation) AddedPct() (r float64, exists bool) {
	v := m.addpct
	if v == nil {
		return
	}
	return *v, true
}

// ResetPct resets all changes to the "pct" field.
func (m *MasteryRecordMutation) ResetPct() {
	m.pct = nil
	m.addpct = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MasteryRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MasteryRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MasteryRecord entity.
// If the MasteryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MasteryRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MasteryRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MasteryRecordMutation builder.
func (m *MasteryRecordMutation) Where(ps ...predicate.MasteryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MasteryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MasteryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MasteryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MasteryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MasteryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MasteryRecord).
func (m *MasteryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MasteryRecordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.learner != nil {
		fields = append(fields, masteryrecord.FieldLearner)
	}
	if m.subtopic_id != nil {
		fields = append(fields, masteryrecord.FieldSubtopicID)
	}
	if m.pct != nil {
		fields = append(fields, masteryrecord.FieldPct)
	}
	if m.updated_at != nil {
		fields = append(fields, masteryrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MasteryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldLearner:
		return m.Learner()
	case masteryrecord.FieldSubtopicID:
		return m.SubtopicID()
	case masteryrecord.FieldPct:
		return m.Pct()
	case masteryrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MasteryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case masteryrecord.FieldLearner:
		return m.OldLearner(ctx)
	case masteryrecord.FieldSubtopicID:
		return m.OldSubtopicID(ctx)
	case masteryrecord.FieldPct:
		return m.OldPct(ctx)
	case masteryrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MasteryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldLearner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearner(v)
		return nil
	case masteryrecord.FieldSubtopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtopicID(v)
		return nil
	case masteryrecord.FieldPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPct(v)
		return nil
	case masteryrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MasteryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsubtopic_id != nil {
		fields = append(fields, masteryrecord.FieldSubtopicID)
	}
	if m.addpct != nil {
		fields = append(fields, masteryrecord.FieldPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MasteryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case masteryrecord.FieldSubtopicID:
		return m.AddedSubtopicID()
	case masteryrecord.FieldPct:
		return m.AddedPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MasteryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case masteryrecord.FieldSubtopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtopicID(v)
		return nil
	case masteryrecord.FieldPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPct(v)
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MasteryRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MasteryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown MasteryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MasteryRecordMutation) ResetField(name string) error {
	switch name {
	case masteryrecord.FieldLearner:
		m.ResetLearner()
		return nil
	case masteryrecord.FieldSubtopicID:
		m.ResetSubtopicID()
		return nil
	case masteryrecord.FieldPct:
		m.ResetPct()
		return nil
	case masteryrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MasteryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MasteryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MasteryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MasteryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MasteryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MasteryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MasteryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MasteryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MasteryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MasteryRecord edge %s", name)
}

// SubtopicMutation represents an operation that mutates the Subtopic nodes in the graph.
type SubtopicMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	topic_id      *int
	addtopic_id   *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Subtopic, error)
	predicates    []predicate.Subtopic
}

var _ ent.Mutation = (*SubtopicMutation)(nil)

// subtopicOption allows management of the mutation configuration using functional options.
type subtopicOption func(*SubtopicMutation)

// newSubtopicMutation creates new mutation for the Subtopic entity.
func newSubtopicMutation(c config, op Op, opts ...subtopicOption) *SubtopicMutation {
	m := &SubtopicMutation{
		config:        c,
		op:            op,
		typ:           TypeSubtopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubtopicID sets the ID field of the mutation.
func withSubtopicID(id int) subtopicOption {
	return func(m *SubtopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Subtopic
		)
		m.oldValue = func(ctx context.Context) (*Subtopic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subtopic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubtopic sets the old Subtopic of the mutation.
func withSubtopic(node *Subtopic) subtopicOption {
	return func(m *SubtopicMutation) {
		m.oldValue = func(context.Context) (*Subtopic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubtopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubtopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Subtopic entities.
func (m *SubtopicMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubtopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubtopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subtopic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SubtopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SubtopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Subtopic entity.
// If the Subtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SubtopicMutation) ResetName() {
	m.name = nil
}

// SetTopicID sets the "topic_id" field.
func (m *SubtopicMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *SubtopicMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Subtopic entity.
// If the Subtopic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubtopicMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *SubtopicMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *SubtopicMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *SubtopicMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// Where appends a list predicates to the SubtopicMutation builder.
func (m *SubtopicMutation) Where(ps ...predicate.Subtopic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubtopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubtopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subtopic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubtopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubtopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subtopic).
func (m *SubtopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubtopicMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, subtopic.FieldName)
	}
	if m.topic_id != nil {
		fields = append(fields, subtopic.FieldTopicID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubtopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subtopic.FieldName:
		return m.Name()
	case subtopic.FieldTopicID:
		return m.TopicID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubtopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subtopic.FieldName:
		return m.OldName(ctx)
	case subtopic.FieldTopicID:
		return m.OldTopicID(ctx)
	}
	return nil, fmt.Errorf("unknown Subtopic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subtopic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case subtopic.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	}
	return fmt.Errorf("unknown Subtopic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubtopicMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, subtopic.FieldTopicID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubtopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subtopic.FieldTopicID:
		return m.AddedTopicID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubtopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subtopic.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	}
	return fmt.Errorf("unknown Subtopic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubtopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubtopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubtopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Subtopic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubtopicMutation) ResetField(name string) error {
	switch name {
	case subtopic.FieldName:
		m.ResetName()
		return nil
	case subtopic.FieldTopicID:
		m.ResetTopicID()
		return nil
	}
	return fmt.Errorf("unknown Subtopic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubtopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubtopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubtopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubtopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubtopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubtopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubtopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Subtopic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubtopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Subtopic edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	zone_id       *int
	addzone_id    *int
	_order        *int
	add_order     *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Topic, error)
	predicates    []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id int) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Topic entities.
func (m *TopicMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TopicMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TopicMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TopicMutation) ResetName() {
	m.name = nil
}

// SetZoneID sets the "zone_id" field.
func (m *TopicMutation) SetZoneID(i int) {
	m.zone_id = &i
	m.addzone_id = nil
}

// ZoneID returns the value of the "zone_id" field in the mutation.
func (m *TopicMutation) ZoneID() (r int, exists bool) {
	v := m.zone_id
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneID returns the old "zone_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldZoneID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneID: %w", err)
	}
	return oldValue.ZoneID, nil
}

// AddZoneID adds i to the "zone_id" field.
func (m *TopicMutation) AddZoneID(i int) {
	if m.addzone_id != nil {
		*m.addzone_id += i
	} else {
		m.addzone_id = &i
	}
}

// AddedZoneID returns the value that was added to the "zone_id" field in this mutation.
func (m *TopicMutation) AddedZoneID() (r int, exists bool) {
	v := m.addzone_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetZoneID resets all changes to the "zone_id" field.
func (m *TopicMutation) ResetZoneID() {
	m.zone_id = nil
	m.addzone_id = nil
}

// SetOrder sets the "order" field.
func (m *TopicMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *TopicMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *TopicMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *TopicMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *TopicMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, topic.FieldName)
	}
	if m.zone_id != nil {
		fields = append(fields, topic.FieldZoneID)
	}
	if m._order != nil {
		fields = append(fields, topic.FieldOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldName:
		return m.Name()
	case topic.FieldZoneID:
		return m.ZoneID()
	case topic.FieldOrder:
		return m.Order()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldName:
		return m.OldName(ctx)
	case topic.FieldZoneID:
		return m.OldZoneID(ctx)
	case topic.FieldOrder:
		return m.OldOrder(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case topic.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneID(v)
		return nil
	case topic.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	var fields []string
	if m.addzone_id != nil {
		fields = append(fields, topic.FieldZoneID)
	}
	if m.add_order != nil {
		fields = append(fields, topic.FieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldZoneID:
		return m.AddedZoneID()
	case topic.FieldOrder:
		return m.AddedOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topic.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddZoneID(v)
		return nil
	case topic.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldName:
		m.ResetName()
		return nil
	case topic.FieldZoneID:
		m.ResetZoneID()
		return nil
	case topic.FieldOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Topic edge %s", name)
}

// TopicProficiencyMutation represents an operation that mutates the TopicProficiency nodes in the graph.
type TopicProficiencyMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner       *string
	topic_id      *int
	addtopic_id   *int
	pct           *float64
	addpct        *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TopicProficiency, error)
	predicates    []predicate.TopicProficiency
}

var _ ent.Mutation = (*TopicProficiencyMutation)(nil)

// topicproficiencyOption allows management of the mutation configuration using functional options.
type topicproficiencyOption func(*TopicProficiencyMutation)

// newTopicProficiencyMutation creates new mutation for the TopicProficiency entity.
func newTopicProficiencyMutation(c config, op Op, opts ...topicproficiencyOption) *TopicProficiencyMutation {
	m := &TopicProficiencyMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicProficiency,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicProficiencyID sets the ID field of the mutation.
func withTopicProficiencyID(id int) topicproficiencyOption {
	return func(m *TopicProficiencyMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicProficiency
		)
		m.oldValue = func(ctx context.Context) (*TopicProficiency, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicProficiency.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicProficiency sets the old TopicProficiency of the mutation.
func withTopicProficiency(node *TopicProficiency) topicproficiencyOption {
	return func(m *TopicProficiencyMutation) {
		m.oldValue = func(context.Context) (*TopicProficiency, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicProficiencyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicProficiencyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicProficiencyMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicProficiencyMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicProficiency.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearner sets the "learner" field.
func (m *TopicProficiencyMutation) SetLearner(s string) {
	m.learner = &s
}

// Learner returns the value of the "learner" field in the mutation.
func (m *TopicProficiencyMutation) Learner() (r string, exists bool) {
	v := m.learner
	if v == nil {
		return
	}
	return *v, true
}

// OldLearner returns the old "learner" field's value of the TopicProficiency entity.
// If the TopicProficiency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProficiencyMutation) OldLearner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearner: %w", err)
	}
	return oldValue.Learner, nil
}

// ResetLearner resets all changes to the "learner" field.
func (m *TopicProficiencyMutation) ResetLearner() {
	m.learner = nil
}

// SetTopicID sets the "topic_id" field.
func (m *TopicProficiencyMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TopicProficiencyMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the TopicProficiency entity.
// If the TopicProficiency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProficiencyMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *TopicProficiencyMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *TopicProficiencyMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TopicProficiencyMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetPct sets the "pct" field.
func (m *TopicProficiencyMutation) SetPct(f float64) {
	m.pct = &f
	m.addpct = nil
}

// Pct returns the value of the "pct" field in the mutation.
func (m *TopicProficiencyMutation) Pct() (r float64, exists bool) {
	v := m.pct
	if v == nil {
		return
	}
	return *v, true
}

// OldPct returns the old "pct" field's value of the TopicProficiency entity.
// If the TopicProficiency object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicProficiencyMutation) OldPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPct: %w", err)
	}
	return oldValue.Pct, nil
}

// AddPct adds f to the "pct" field.
func (m *TopicProficiencyMutation) AddPct(f float64) {
	if m.addpct != nil {
		*m.addpct += f
	} else {
		m.addpct = &f
	}
}

// AddedPct returns the value that was added to the "pct" field in this mutation.
func (m *TopicProficiencyMutation) AddedPct() (r float64, exists bool) {
	v := m.addpct
	if v == nil {
		return
	}
	return *v, true
}

// ResetPct resets all changes to the "pct" field.
func (m *TopicProficiencyMutation) ResetPct() {
	m.pct = nil
	m.addpct = nil
}

// Where appends a list predicates to the TopicProficiencyMutation builder.
func (m *TopicProficiencyMutation) Where(ps ...predicate.TopicProficiency) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicProficiencyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicProficiencyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicProficiency, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicProficiencyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicProficiencyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicProficiency).
func (m *TopicProficiencyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicProficiencyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.learner != nil {
		fields = append(fields, topicproficiency.FieldLearner)
	}
	if m.topic_id != nil {
		fields = append(fields, topicproficiency.FieldTopicID)
	}
	if m.pct != nil {
		fields = append(fields, topicproficiency.FieldPct)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicProficiencyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicproficiency.FieldLearner:
		return m.Learner()
	case topicproficiency.FieldTopicID:
		return m.TopicID()
	case topicproficiency.FieldPct:
		return m.Pct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicProficiencyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicproficiency.FieldLearner:
		return m.OldLearner(ctx)
	case topicproficiency.FieldTopicID:
		return m.OldTopicID(ctx)
	case topicproficiency.FieldPct:
		return m.OldPct(ctx)
	}
	return nil, fmt.Errorf("unknown TopicProficiency field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProficiencyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicproficiency.FieldLearner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearner(v)
		return nil
	case topicproficiency.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case topicproficiency.FieldPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPct(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProficiency field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicProficiencyMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, topicproficiency.FieldTopicID)
	}
	if m.addpct != nil {
		fields = append(fields, topicproficiency.FieldPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicProficiencyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicproficiency.FieldTopicID:
		return m.AddedTopicID()
	case topicproficiency.FieldPct:
		return m.AddedPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicProficiencyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicproficiency.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case topicproficiency.FieldPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPct(v)
		return nil
	}
	return fmt.Errorf("unknown TopicProficiency numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicProficiencyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicProficiencyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicProficiencyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TopicProficiency nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicProficiencyMutation) ResetField(name string) error {
	switch name {
	case topicproficiency.FieldLearner:
		m.ResetLearner()
		return nil
	case topicproficiency.FieldTopicID:
		m.ResetTopicID()
		return nil
	case topicproficiency.FieldPct:
		m.ResetPct()
		return nil
	}
	return fmt.Errorf("unknown TopicProficiency field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicProficiencyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicProficiencyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicProficiencyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicProficiencyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicProficiencyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicProficiencyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicProficiencyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TopicProficiency unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicProficiencyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TopicProficiency edge %s", name)
}

// ZoneMutation represents an operation that mutates the Zone nodes in the graph.
type ZoneMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	_order        *int
	add_order     *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Zone, error)
	predicates    []predicate.Zone
}

var _ ent.Mutation = (*ZoneMutation)(nil)

// zoneOption allows management of the mutation configuration using functional options.
type zoneOption func(*ZoneMutation)

// newZoneMutation creates new mutation for the Zone entity.
func newZoneMutation(c config, op Op, opts ...zoneOption) *ZoneMutation {
	m := &ZoneMutation{
		config:        c,
		op:            op,
		typ:           TypeZone,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withZoneID sets the ID field of the mutation.
func withZoneID(id int) zoneOption {
	return func(m *ZoneMutation) {
		var (
			err   error
			once  sync.Once
			value *Zone
		)
		m.oldValue = func(ctx context.Context) (*Zone, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Zone.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withZone sets the old Zone of the mutation.
func withZone(node *Zone) zoneOption {
	return func(m *ZoneMutation) {
		m.oldValue = func(context.Context) (*Zone, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ZoneMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ZoneMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Zone entities.
func (m *ZoneMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ZoneMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ZoneMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Zone.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ZoneMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ZoneMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ZoneMutation) ResetName() {
	m.name = nil
}

// SetOrder sets the "order" field.
func (m *ZoneMutation) SetOrder(i int) {
	m._order = &i
	m.add_order = nil
}

// Order returns the value of the "order" field in the mutation.
func (m *ZoneMutation) Order() (r int, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrder returns the old "order" field's value of the Zone entity.
// If the Zone object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneMutation) OldOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrder: %w", err)
	}
	return oldValue.Order, nil
}

// AddOrder adds i to the "order" field.
func (m *ZoneMutation) AddOrder(i int) {
	if m.add_order != nil {
		*m.add_order += i
	} else {
		m.add_order = &i
	}
}

// AddedOrder returns the value that was added to the "order" field in this mutation.
func (m *ZoneMutation) AddedOrder() (r int, exists bool) {
	v := m.add_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrder resets all changes to the "order" field.
func (m *ZoneMutation) ResetOrder() {
	m._order = nil
	m.add_order = nil
}

// Where appends a list predicates to the ZoneMutation builder.
func (m *ZoneMutation) Where(ps ...predicate.Zone) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ZoneMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ZoneMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Zone, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ZoneMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ZoneMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Zone).
func (m *ZoneMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ZoneMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, zone.FieldName)
	}
	if m._order != nil {
		fields = append(fields, zone.FieldOrder)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ZoneMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case zone.FieldName:
		return m.Name()
	case zone.FieldOrder:
		return m.Order()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ZoneMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case zone.FieldName:
		return m.OldName(ctx)
	case zone.FieldOrder:
		return m.OldOrder(ctx)
	}
	return nil, fmt.Errorf("unknown Zone field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZoneMutation) SetField(name string, value ent.Value) error {
	switch name {
	case zone.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case zone.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Zone field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ZoneMutation) AddedFields() []string {
	var fields []string
	if m.add_order != nil {
		fields = append(fields, zone.FieldOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ZoneMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case zone.FieldOrder:
		return m.AddedOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZoneMutation) AddField(name string, value ent.Value) error {
	switch name {
	case zone.FieldOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Zone numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ZoneMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ZoneMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ZoneMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Zone nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ZoneMutation) ResetField(name string) error {
	switch name {
	case zone.FieldName:
		m.ResetName()
		return nil
	case zone.FieldOrder:
		m.ResetOrder()
		return nil
	}
	return fmt.Errorf("unknown Zone field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ZoneMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ZoneMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ZoneMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ZoneMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ZoneMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ZoneMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ZoneMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Zone unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ZoneMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Zone edge %s", name)
}

// ZoneProgressMutation represents an operation that mutates the ZoneProgress nodes in the graph.
type ZoneProgressMutation struct {
	config
	op            Op
	typ           string
	id            *int
	learner       *string
	zone_id       *int
	addzone_id    *int
	pct           *float64
	addpct        *float64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ZoneProgress, error)
	predicates    []predicate.ZoneProgress
}

var _ ent.Mutation = (*ZoneProgressMutation)(nil)

// zoneprogressOption allows management of the mutation configuration using functional options.
type zoneprogressOption func(*ZoneProgressMutation)

// newZoneProgressMutation creates new mutation for the ZoneProgress entity.
func newZoneProgressMutation(c config, op Op, opts ...zoneprogressOption) *ZoneProgressMutation {
	m := &ZoneProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeZoneProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withZoneProgressID sets the ID field of the mutation.
func withZoneProgressID(id int) zoneprogressOption {
	return func(m *ZoneProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *ZoneProgress
		)
		m.oldValue = func(ctx context.Context) (*ZoneProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ZoneProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withZoneProgress sets the old ZoneProgress of the mutation.
func withZoneProgress(node *ZoneProgress) zoneprogressOption {
	return func(m *ZoneProgressMutation) {
		m.oldValue = func(context.Context) (*ZoneProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ZoneProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ZoneProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ZoneProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ZoneProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ZoneProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearner sets the "learner" field.
func (m *ZoneProgressMutation) SetLearner(s string) {
	m.learner = &s
}

// Learner returns the value of the "learner" field in the mutation.
func (m *ZoneProgressMutation) Learner() (r string, exists bool) {
	v := m.learner
	if v == nil {
		return
	}
	return *v, true
}

// OldLearner returns the old "learner" field's value of the ZoneProgress entity.
// If the ZoneProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneProgressMutation) OldLearner(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearner: %w", err)
	}
	return oldValue.Learner, nil
}

// ResetLearner resets all changes to the "learner" field.
func (m *ZoneProgressMutation) ResetLearner() {
	m.learner = nil
}

// SetZoneID sets the "zone_id" field.
func (m *ZoneProgressMutation) SetZoneID(i int) {
	m.zone_id = &i
	m.addzone_id = nil
}

// ZoneID returns the value of the "zone_id" field in the mutation.
func (m *ZoneProgressMutation) ZoneID() (r int, exists bool) {
	v := m.zone_id
	if v == nil {
		return
	}
	return *v, true
}

// OldZoneID returns the old "zone_id" field's value of the ZoneProgress entity.
// If the ZoneProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneProgressMutation) OldZoneID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZoneID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZoneID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZoneID: %w", err)
	}
	return oldValue.ZoneID, nil
}

// AddZoneID adds i to the "zone_id" field.
func (m *ZoneProgressMutation) AddZoneID(i int) {
	if m.addzone_id != nil {
		*m.addzone_id += i
	} else {
		m.addzone_id = &i
	}
}

// AddedZoneID returns the value that was added to the "zone_id" field in this mutation.
func (m *ZoneProgressMutation) AddedZoneID() (r int, exists bool) {
	v := m.addzone_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetZoneID resets all changes to the "zone_id" field.
func (m *ZoneProgressMutation) ResetZoneID() {
	m.zone_id = nil
	m.addzone_id = nil
}

// SetPct sets the "pct" field.
func (m *ZoneProgressMutation) SetPct(f float64) {
	m.pct = &f
	m.addpct = nil
}

// Pct returns the value of the "pct" field in the mutation.
func (m *ZoneProgressMutation) Pct() (r float64, exists bool) {
	v := m.pct
	if v == nil {
		return
	}
	return *v, true
}

// OldPct returns the old "pct" field's value of the ZoneProgress entity.
// If the ZoneProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZoneProgressMutation) OldPct(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPct is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPct requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPct: %w", err)
	}
	return oldValue.Pct, nil
}

// AddPct adds f to the "pct" field.
func (m *ZoneProgressMutation) AddPct(f float64) {
	if m.addpct != nil {
		*m.addpct += f
	} else {
		m.addpct = &f
	}
}

// AddedPct returns the value that was added to the "pct" field in this mutation.
func (m *ZoneProgressMutation) AddedPct() (r float64, exists bool) {
	v := m.addpct
	if v == nil {
		return
	}
	return *v, true
}

// ResetPct resets all changes to the "pct" field.
func (m *ZoneProgressMutation) ResetPct() {
	m.pct = nil
	m.addpct = nil
}

// Where appends a list predicates to the ZoneProgressMutation builder.
func (m *ZoneProgressMutation) Where(ps ...predicate.ZoneProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ZoneProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ZoneProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ZoneProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ZoneProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ZoneProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ZoneProgress).
func (m *ZoneProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ZoneProgressMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.learner != nil {
		fields = append(fields, zoneprogress.FieldLearner)
	}
	if m.zone_id != nil {
		fields = append(fields, zoneprogress.FieldZoneID)
	}
	if m.pct != nil {
		fields = append(fields, zoneprogress.FieldPct)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ZoneProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case zoneprogress.FieldLearner:
		return m.Learner()
	case zoneprogress.FieldZoneID:
		return m.ZoneID()
	case zoneprogress.FieldPct:
		return m.Pct()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ZoneProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case zoneprogress.FieldLearner:
		return m.OldLearner(ctx)
	case zoneprogress.FieldZoneID:
		return m.OldZoneID(ctx)
	case zoneprogress.FieldPct:
		return m.OldPct(ctx)
	}
	return nil, fmt.Errorf("unknown ZoneProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZoneProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case zoneprogress.FieldLearner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearner(v)
		return nil
	case zoneprogress.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZoneID(v)
		return nil
	case zoneprogress.FieldPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPct(v)
		return nil
	}
	return fmt.Errorf("unknown ZoneProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ZoneProgressMutation) AddedFields() []string {
	var fields []string
	if m.addzone_id != nil {
		fields = append(fields, zoneprogress.FieldZoneID)
	}
	if m.addpct != nil {
		fields = append(fields, zoneprogress.FieldPct)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ZoneProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case zoneprogress.FieldZoneID:
		return m.AddedZoneID()
	case zoneprogress.FieldPct:
		return m.AddedPct()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZoneProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case zoneprogress.FieldZoneID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddZoneID(v)
		return nil
	case zoneprogress.FieldPct:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPct(v)
		return nil
	}
	return fmt.Errorf("unknown ZoneProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ZoneProgressMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ZoneProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ZoneProgressMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ZoneProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ZoneProgressMutation) ResetField(name string) error {
	switch name {
	case zoneprogress.FieldLearner:
		m.ResetLearner()
		return nil
	case zoneprogress.FieldZoneID:
		m.ResetZoneID()
		return nil
	case zoneprogress.FieldPct:
		m.ResetPct()
		return nil
	}
	return fmt.Errorf("unknown ZoneProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ZoneProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ZoneProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ZoneProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ZoneProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ZoneProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ZoneProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ZoneProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ZoneProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ZoneProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ZoneProgress edge %s", name)
}

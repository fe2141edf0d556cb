// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/pygrounds/adaptive/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/pygrounds/adaptive/ent/ability"
	"github.com/pygrounds/adaptive/ent/attemptevent"
	"github.com/pygrounds/adaptive/ent/item"
	"github.com/pygrounds/adaptive/ent/learningrate"
	"github.com/pygrounds/adaptive/ent/masteryrecord"
	"github.com/pygrounds/adaptive/ent/subtopic"
	"github.com/pygrounds/adaptive/ent/topic"
	"github.com/pygrounds/adaptive/ent/topicproficiency"
	"github.com/pygrounds/adaptive/ent/zone"
	"github.com/pygrounds/adaptive/ent/zoneprogress"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Ability is the client for interacting with the Ability builders.
	Ability *AbilityClient
	// AttemptEvent is the client for interacting with the AttemptEvent builders.
	AttemptEvent *AttemptEventClient
	// Item is the client for interacting with the Item builders.
	Item *ItemClient
	// LearningRate is the client for interacting with the LearningRate builders.
	LearningRate *LearningRateClient
	// MasteryRecord is the client for interacting with the MasteryRecord builders.
	MasteryRecord *MasteryRecordClient
	// Subtopic is the client for interacting with the Subtopic builders.
	Subtopic *SubtopicClient
	// Topic is the client for interacting with the Topic builders.
	Topic *TopicClient
	// TopicProficiency is the client for interacting with the TopicProficiency builders.
	TopicProficiency *TopicProficiencyClient
	// Zone is the client for interacting with the Zone builders.
	Zone *ZoneClient
	// ZoneProgress is the client for interacting with the ZoneProgress builders.
	ZoneProgress *ZoneProgressClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Ability = NewAbilityClient(c.config)
	c.AttemptEvent = NewAttemptEventClient(c.config)
	c.Item = NewItemClient(c.config)
	c.LearningRate = NewLearningRateClient(c.config)
	c.MasteryRecord = NewMasteryRecordClient(c.config)
	c.Subtopic = NewSubtopicClient(c.config)
	c.Topic = NewTopicClient(c.config)
	c.TopicProficiency = NewTopicProficiencyClient(c.config)
	c.Zone = NewZoneClient(c.config)
	c.ZoneProgress = NewZoneProgressClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Ability:          NewAbilityClient(cfg),
		AttemptEvent:     NewAttemptEventClient(cfg),
		Item:             NewItemClient(cfg),
		LearningRate:     NewLearningRateClient(cfg),
		MasteryRecord:    NewMasteryRecordClient(cfg),
		Subtopic:         NewSubtopicClient(cfg),
		Topic:            NewTopicClient(cfg),
		TopicProficiency: NewTopicProficiencyClient(cfg),
		Zone:             NewZoneClient(cfg),
		ZoneProgress:     NewZoneProgressClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		Ability:          NewAbilityClient(cfg),
		AttemptEvent:     NewAttemptEventClient(cfg),
		Item:             NewItemClient(cfg),
		LearningRate:     NewLearningRateClient(cfg),
		MasteryRecord:    NewMasteryRecordClient(cfg),
		Subtopic:         NewSubtopicClient(cfg),
		Topic:            NewTopicClient(cfg),
		TopicProficiency: NewTopicProficiencyClient(cfg),
		Zone:             NewZoneClient(cfg),
		ZoneProgress:     NewZoneProgressClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Ability.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Ability, c.AttemptEvent, c.Item, c.LearningRate, c.MasteryRecord, c.Subtopic,
		c.Topic, c.TopicProficiency, c.Zone, c.ZoneProgress,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Ability, c.AttemptEvent, c.Item, c.LearningRate, c.MasteryRecord, c.Subtopic,
		c.Topic, c.TopicProficiency, c.Zone, c.ZoneProgress,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AbilityMutation:
		return c.Ability.mutate(ctx, m)
	case *AttemptEventMutation:
		return c.AttemptEvent.mutate(ctx, m)
	case *ItemMutation:
		return c.Item.mutate(ctx, m)
	case *LearningRateMutation:
		return c.LearningRate.mutate(ctx, m)
	case *MasteryRecordMutation:
		return c.MasteryRecord.mutate(ctx, m)
	case *SubtopicMutation:
		return c.Subtopic.mutate(ctx, m)
	case *TopicMutation:
		return c.Topic.mutate(ctx, m)
	case *TopicProficiencyMutation:
		return c.TopicProficiency.mutate(ctx, m)
	case *ZoneMutation:
		return c.Zone.mutate(ctx, m)
	case *ZoneProgressMutation:
		return c.ZoneProgress.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AbilityClient is a client for the Ability schema.
type AbilityClient struct {
	config
}

// NewAbilityClient returns a client for the Ability from the given config.
func NewAbilityClient(c config) *AbilityClient {
	return &AbilityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ability.Hooks(f(g(h())))`.
func (c *AbilityClient) Use(hooks ...Hook) {
	c.hooks.Ability = append(c.hooks.Ability, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ability.Intercept(f(g(h())))`.
func (c *AbilityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Ability = append(c.inters.Ability, interceptors...)
}

// Create returns a builder for creating a Ability entity.
func (c *AbilityClient) Create() *AbilityCreate {
	mutation := newAbilityMutation(c.config, OpCreate)
	return &AbilityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Ability entities.
func (c *AbilityClient) CreateBulk(builders ...*AbilityCreate) *AbilityCreateBulk {
	return &AbilityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AbilityClient) MapCreateBulk(slice any, setFunc func(*AbilityCreate, int)) *AbilityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AbilityCreateBulk{err: fmt.Errorf("calling to AbilityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AbilityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AbilityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Ability.
func (c *AbilityClient) Update() *AbilityUpdate {
	mutation := newAbilityMutation(c.config, OpUpdate)
	return &AbilityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AbilityClient) UpdateOne(a *Ability) *AbilityUpdateOne {
	mutation := newAbilityMutation(c.config, OpUpdateOne, withAbility(a))
	return &AbilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AbilityClient) UpdateOneID(id int) *AbilityUpdateOne {
	mutation := newAbilityMutation(c.config, OpUpdateOne, withAbilityID(id))
	return &AbilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Ability.
func (c *AbilityClient) Delete() *AbilityDelete {
	mutation := newAbilityMutation(c.config, OpDelete)
	return &AbilityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AbilityClient) DeleteOne(a *Ability) *AbilityDeleteOne {
	return c.DeleteOneID(a.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AbilityClient) DeleteOneID(id int) *AbilityDeleteOne {
	builder := c.Delete().Where(ability.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AbilityDeleteOne{builder}
}

// Query returns a query builder for Ability.
func (c *AbilityClient) Query() *AbilityQuery {
	return &AbilityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAbility},
		inters: c.Interceptors(),
	}
}

// Get returns a Ability entity by its id.
func (c *AbilityClient) Get(ctx context.Context, id int) (*Ability, error) {
	return c.Query().Where(ability.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AbilityClient) GetX(ctx context.Context, id int) *Ability {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AbilityClient) Hooks() []Hook {
	return c.hooks.Ability
}

// Interceptors returns the client interceptors.
func (c *AbilityClient) Interceptors() []Interceptor {
	return c.inters.Ability
}

func (c *AbilityClient) mutate(ctx context.Context, m *AbilityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AbilityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AbilityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AbilityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AbilityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Ability mutation op: %q", m.Op())
	}
}

// AttemptEventClient is a client for the AttemptEvent schema.
type AttemptEventClient struct {
	config
}

// NewAttemptEventClient returns a client for the AttemptEvent from the given config.
func NewAttemptEventClient(c config) *AttemptEventClient {
	return &AttemptEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptevent.Hooks(f(g(h())))`.
func (c *AttemptEventClient) Use(hooks ...Hook) {
	c.hooks.AttemptEvent = append(c.hooks.AttemptEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptevent.Intercept(f(g(h())))`.
func (c *AttemptEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptEvent = append(c.inters.AttemptEvent, interceptors...)
}

// Create returns a builder for creating a AttemptEvent entity.
func (c *AttemptEventClient) Create() *AttemptEventCreate {
	mutation := newAttemptEventMutation(c.config, OpCreate)
	return &AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptEvent entities.
func (c *AttemptEventClient) CreateBulk(builders ...*AttemptEventCreate) *AttemptEventCreateBulk {
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptEventClient) MapCreateBulk(slice any, setFunc func(*AttemptEventCreate, int)) *AttemptEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptEventCreateBulk{err: fmt.Errorf("calling to AttemptEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptEvent.
func (c *AttemptEventClient) Update() *AttemptEventUpdate {
	mutation := newAttemptEventMutation(c.config, OpUpdate)
	return &AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptEventClient) UpdateOne(ae *AttemptEvent) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEvent(ae))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptEventClient) UpdateOneID(id int) *AttemptEventUpdateOne {
	mutation := newAttemptEventMutation(c.config, OpUpdateOne, withAttemptEventID(id))
	return &AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptEvent.
func (c *AttemptEventClient) Delete() *AttemptEventDelete {
	mutation := newAttemptEventMutation(c.config, OpDelete)
	return &AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptEventClient) DeleteOne(ae *AttemptEvent) *AttemptEventDeleteOne {
	return c.DeleteOneID(ae.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptEventClient) DeleteOneID(id int) *AttemptEventDeleteOne {
	builder := c.Delete().Where(attemptevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptEventDeleteOne{builder}
}

// Query returns a query builder for AttemptEvent.
func (c *AttemptEventClient) Query() *AttemptEventQuery {
	return &AttemptEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptEvent entity by its id.
func (c *AttemptEventClient) Get(ctx context.Context, id int) (*AttemptEvent, error) {
	return c.Query().Where(attemptevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptEventClient) GetX(ctx context.Context, id int) *AttemptEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptEventClient) Hooks() []Hook {
	return c.hooks.AttemptEvent
}

// Interceptors returns the client interceptors.
func (c *AttemptEventClient) Interceptors() []Interceptor {
	return c.inters.AttemptEvent
}

func (c *AttemptEventClient) mutate(ctx context.Context, m *AttemptEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptEvent mutation op: %q", m.Op())
	}
}

// ItemClient is a client for the Item schema.
type ItemClient struct {
	config
}

// NewItemClient returns a client for the Item from the given config.
func NewItemClient(c config) *ItemClient {
	return &ItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `item.Hooks(f(g(h())))`.
func (c *ItemClient) Use(hooks ...Hook) {
	c.hooks.Item = append(c.hooks.Item, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `item.Intercept(f(g(h())))`.
func (c *ItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.Item = append(c.inters.Item, interceptors...)
}

// Create returns a builder for creating a Item entity.
func (c *ItemClient) Create() *ItemCreate {
	mutation := newItemMutation(c.config, OpCreate)
	return &ItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Item entities.
func (c *ItemClient) CreateBulk(builders ...*ItemCreate) *ItemCreateBulk {
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemClient) MapCreateBulk(slice any, setFunc func(*ItemCreate, int)) *ItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemCreateBulk{err: fmt.Errorf("calling to ItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Item.
func (c *ItemClient) Update() *ItemUpdate {
	mutation := newItemMutation(c.config, OpUpdate)
	return &ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemClient) UpdateOne(i *Item) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItem(i))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemClient) UpdateOneID(id int) *ItemUpdateOne {
	mutation := newItemMutation(c.config, OpUpdateOne, withItemID(id))
	return &ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Item.
func (c *ItemClient) Delete() *ItemDelete {
	mutation := newItemMutation(c.config, OpDelete)
	return &ItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemClient) DeleteOne(i *Item) *ItemDeleteOne {
	return c.DeleteOneID(i.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemClient) DeleteOneID(id int) *ItemDeleteOne {
	builder := c.Delete().Where(item.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemDeleteOne{builder}
}

// Query returns a query builder for Item.
func (c *ItemClient) Query() *ItemQuery {
	return &ItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItem},
		inters: c.Interceptors(),
	}
}

// Get returns a Item entity by its id.
func (c *ItemClient) Get(ctx context.Context, id int) (*Item, error) {
	return c.Query().Where(item.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemClient) GetX(ctx context.Context, id int) *Item {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemClient) Hooks() []Hook {
	return c.hooks.Item
}

// Interceptors returns the client interceptors.
func (c *ItemClient) Interceptors() []Interceptor {
	return c.inters.Item
}

func (c *ItemClient) mutate(ctx context.Context, m *ItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Item mutation op: %q", m.Op())
	}
}

// LearningRateClient is a client for the LearningRate schema.
type LearningRateClient struct {
	config
}

// NewLearningRateClient returns a client for the LearningRate from the given config.
func NewLearningRateClient(c config) *LearningRateClient {
	return &LearningRateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learningrate.Hooks(f(g(h())))`.
func (c *LearningRateClient) Use(hooks ...Hook) {
	c.hooks.LearningRate = append(c.hooks.LearningRate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learningrate.Intercept(f(g(h())))`.
func (c *LearningRateClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearningRate = append(c.inters.LearningRate, interceptors...)
}

// Create returns a builder for creating a LearningRate entity.
func (c *LearningRateClient) Create() *LearningRateCreate {
	mutation := newLearningRateMutation(c.config, OpCreate)
	return &LearningRateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearningRate entities.
func (c *LearningRateClient) CreateBulk(builders ...*LearningRateCreate) *LearningRateCreateBulk {
	return &LearningRateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearningRateClient) MapCreateBulk(slice any, setFunc func(*LearningRateCreate, int)) *LearningRateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearningRateCreateBulk{err: fmt.Errorf("calling to LearningRateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearningRateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearningRateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearningRate.
func (c *LearningRateClient) Update() *LearningRateUpdate {
	mutation := newLearningRateMutation(c.config, OpUpdate)
	return &LearningRateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearningRateClient) UpdateOne(lr *LearningRate) *LearningRateUpdateOne {
	mutation := newLearningRateMutation(c.config, OpUpdateOne, withLearningRate(lr))
	return &LearningRateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearningRateClient) UpdateOneID(id int) *LearningRateUpdateOne {
	mutation := newLearningRateMutation(c.config, OpUpdateOne, withLearningRateID(id))
	return &LearningRateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearningRate.
func (c *LearningRateClient) Delete() *LearningRateDelete {
	mutation := newLearningRateMutation(c.config, OpDelete)
	return &LearningRateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearningRateClient) DeleteOne(lr *LearningRate) *LearningRateDeleteOne {
	return c.DeleteOneID(lr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearningRateClient) DeleteOneID(id int) *LearningRateDeleteOne {
	builder := c.Delete().Where(learningrate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearningRateDeleteOne{builder}
}

// Query returns a query builder for LearningRate.
func (c *LearningRateClient) Query() *LearningRateQuery {
	return &LearningRateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearningRate},
		inters: c.Interceptors(),
	}
}

// Get returns a LearningRate entity by its id.
func (c *LearningRateClient) Get(ctx context.Context, id int) (*LearningRate, error) {
	return c.Query().Where(learningrate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearningRateClient) GetX(ctx context.Context, id int) *LearningRate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearningRateClient) Hooks() []Hook {
	return c.hooks.LearningRate
}

// Interceptors returns the client interceptors.
func (c *LearningRateClient) Interceptors() []Interceptor {
	return c.inters.LearningRate
}

func (c *LearningRateClient) mutate(ctx context.Context, m *LearningRateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearningRateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearningRateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearningRateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearningRateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearningRate mutation op: %q", m.Op())
	}
}

// MasteryRecordClient is a client for the MasteryRecord schema.
type MasteryRecordClient struct {
	config
}

// NewMasteryRecordClient returns a client for the MasteryRecord from the given config.
func NewMasteryRecordClient(c config) *MasteryRecordClient {
	return &MasteryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryrecord.Hooks(f(g(h())))`.
func (c *MasteryRecordClient) Use(hooks ...Hook) {
	c.hooks.MasteryRecord = append(c.hooks.MasteryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryrecord.Intercept(f(g(h())))`.
func (c *MasteryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryRecord = append(c.inters.MasteryRecord, interceptors...)
}

// Create returns a builder for creating a MasteryRecord entity.
func (c *MasteryRecordClient) Create() *MasteryRecordCreate {
	mutation := newMasteryRecordMutation(c.config, OpCreate)
	return &MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryRecord entities.
func (c *MasteryRecordClient) CreateBulk(builders ...*MasteryRecordCreate) *MasteryRecordCreateBulk {
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryRecordClient) MapCreateBulk(slice any, setFunc func(*MasteryRecordCreate, int)) *MasteryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryRecordCreateBulk{err: fmt.Errorf("calling to MasteryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryRecord.
func (c *MasteryRecordClient) Update() *MasteryRecordUpdate {
	mutation := newMasteryRecordMutation(c.config, OpUpdate)
	return &MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryRecordClient) UpdateOne(mr *MasteryRecord) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecord(mr))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryRecordClient) UpdateOneID(id int) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecordID(id))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryRecord.
func (c *MasteryRecordClient) Delete() *MasteryRecordDelete {
	mutation := newMasteryRecordMutation(c.config, OpDelete)
	return &MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryRecordClient) DeleteOne(mr *MasteryRecord) *MasteryRecordDeleteOne {
	return c.DeleteOneID(mr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryRecordClient) DeleteOneID(id int) *MasteryRecordDeleteOne {
	builder := c.Delete().Where(masteryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryRecordDeleteOne{builder}
}

// Query returns a query builder for MasteryRecord.
func (c *MasteryRecordClient) Query() *MasteryRecordQuery {
	return &MasteryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryRecord entity by its id.
func (c *MasteryRecordClient) Get(ctx context.Context, id int) (*MasteryRecord, error) {
	return c.Query().Where(masteryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryRecordClient) GetX(ctx context.Context, id int) *MasteryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryRecordClient) Hooks() []Hook {
	return c.hooks.MasteryRecord
}

// Interceptors returns the client interceptors.
func (c *MasteryRecordClient) Interceptors() []Interceptor {
	return c.inters.MasteryRecord
}

func (c *MasteryRecordClient) mutate(ctx context.Context, m *MasteryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryRecord mutation op: %q", m.Op())
	}
}

// SubtopicClient is a client for the Subtopic schema.
type SubtopicClient struct {
	config
}

// NewSubtopicClient returns a client for the Subtopic from the given config.
func NewSubtopicClient(c config) *SubtopicClient {
	return &SubtopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtopic.Hooks(f(g(h())))`.
func (c *SubtopicClient) Use(hooks ...Hook) {
	c.hooks.Subtopic = append(c.hooks.Subtopic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtopic.Intercept(f(g(h())))`.
func (c *SubtopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subtopic = append(c.inters.Subtopic, interceptors...)
}

// Create returns a builder for creating a Subtopic entity.
func (c *SubtopicClient) Create() *SubtopicCreate {
	mutation := newSubtopicMutation(c.config, OpCreate)
	return &SubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subtopic entities.
func (c *SubtopicClient) CreateBulk(builders ...*SubtopicCreate) *SubtopicCreateBulk {
	return &SubtopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubtopicClient) MapCreateBulk(slice any, setFunc func(*SubtopicCreate, int)) *SubtopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubtopicCreateBulk{err: fmt.Errorf("calling to SubtopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubtopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubtopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subtopic.
func (c *SubtopicClient) Update() *SubtopicUpdate {
	mutation := newSubtopicMutation(c.config, OpUpdate)
	return &SubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubtopicClient) UpdateOne(s *Subtopic) *SubtopicUpdateOne {
	mutation := newSubtopicMutation(c.config, OpUpdateOne, withSubtopic(s))
	return &SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubtopicClient) UpdateOneID(id int) *SubtopicUpdateOne {
	mutation := newSubtopicMutation(c.config, OpUpdateOne, withSubtopicID(id))
	return &SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subtopic.
func (c *SubtopicClient) Delete() *SubtopicDelete {
	mutation := newSubtopicMutation(c.config, OpDelete)
	return &SubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubtopicClient) DeleteOne(s *Subtopic) *SubtopicDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubtopicClient) DeleteOneID(id int) *SubtopicDeleteOne {
	builder := c.Delete().Where(subtopic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubtopicDeleteOne{builder}
}

// Query returns a query builder for Subtopic.
func (c *SubtopicClient) Query() *SubtopicQuery {
	return &SubtopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubtopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Subtopic entity by its id.
func (c *SubtopicClient) Get(ctx context.Context, id int) (*Subtopic, error) {
	return c.Query().Where(subtopic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubtopicClient) GetX(ctx context.Context, id int) *Subtopic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SubtopicClient) Hooks() []Hook {
	return c.hooks.Subtopic
}

// Interceptors returns the client interceptors.
func (c *SubtopicClient) Interceptors() []Interceptor {
	return c.inters.Subtopic
}

func (c *SubtopicClient) mutate(ctx context.Context, m *SubtopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubtopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubtopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubtopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubtopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subtopic mutation op: %q", m.Op())
	}
}

// TopicClient is a client for the Topic schema.
type TopicClient struct {
	config
}

// NewTopicClient returns a client for the Topic from the given config.
func NewTopicClient(c config) *TopicClient {
	return &TopicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topic.Hooks(f(g(h())))`.
func (c *TopicClient) Use(hooks ...Hook) {
	c.hooks.Topic = append(c.hooks.Topic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topic.Intercept(f(g(h())))`.
func (c *TopicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Topic = append(c.inters.Topic, interceptors...)
}

// Create returns a builder for creating a Topic entity.
func (c *TopicClient) Create() *TopicCreate {
	mutation := newTopicMutation(c.config, OpCreate)
	return &TopicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Topic entities.
func (c *TopicClient) CreateBulk(builders ...*TopicCreate) *TopicCreateBulk {
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicClient) MapCreateBulk(slice any, setFunc func(*TopicCreate, int)) *TopicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicCreateBulk{err: fmt.Errorf("calling to TopicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Topic.
func (c *TopicClient) Update() *TopicUpdate {
	mutation := newTopicMutation(c.config, OpUpdate)
	return &TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicClient) UpdateOne(t *Topic) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopic(t))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicClient) UpdateOneID(id int) *TopicUpdateOne {
	mutation := newTopicMutation(c.config, OpUpdateOne, withTopicID(id))
	return &TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Topic.
func (c *TopicClient) Delete() *TopicDelete {
	mutation := newTopicMutation(c.config, OpDelete)
	return &TopicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicClient) DeleteOne(t *Topic) *TopicDeleteOne {
	return c.DeleteOneID(t.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicClient) DeleteOneID(id int) *TopicDeleteOne {
	builder := c.Delete().Where(topic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicDeleteOne{builder}
}

// Query returns a query builder for Topic.
func (c *TopicClient) Query() *TopicQuery {
	return &TopicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopic},
		inters: c.Interceptors(),
	}
}

// Get returns a Topic entity by its id.
func (c *TopicClient) Get(ctx context.Context, id int) (*Topic, error) {
	return c.Query().Where(topic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicClient) GetX(ctx context.Context, id int) *Topic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicClient) Hooks() []Hook {
	return c.hooks.Topic
}

// Interceptors returns the client interceptors.
func (c *TopicClient) Interceptors() []Interceptor {
	return c.inters.Topic
}

func (c *TopicClient) mutate(ctx context.Context, m *TopicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Topic mutation op: %q", m.Op())
	}
}

// TopicProficiencyClient is a client for the TopicProficiency schema.
type TopicProficiencyClient struct {
	config
}

// NewTopicProficiencyClient returns a client for the TopicProficiency from the given config.
func NewTopicProficiencyClient(c config) *TopicProficiencyClient {
	return &TopicProficiencyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `topicproficiency.Hooks(f(g(h())))`.
func (c *TopicProficiencyClient) Use(hooks ...Hook) {
	c.hooks.TopicProficiency = append(c.hooks.TopicProficiency, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `topicproficiency.Intercept(f(g(h())))`.
func (c *TopicProficiencyClient) Intercept(interceptors ...Interceptor) {
	c.inters.TopicProficiency = append(c.inters.TopicProficiency, interceptors...)
}

// Create returns a builder for creating a TopicProficiency entity.
func (c *TopicProficiencyClient) Create() *TopicProficiencyCreate {
	mutation := newTopicProficiencyMutation(c.config, OpCreate)
	return &TopicProficiencyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TopicProficiency entities.
func (c *TopicProficiencyClient) CreateBulk(builders ...*TopicProficiencyCreate) *TopicProficiencyCreateBulk {
	return &TopicProficiencyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TopicProficiencyClient) MapCreateBulk(slice any, setFunc func(*TopicProficiencyCreate, int)) *TopicProficiencyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TopicProficiencyCreateBulk{err: fmt.Errorf("calling to TopicProficiencyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TopicProficiencyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TopicProficiencyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TopicProficiency.
func (c *TopicProficiencyClient) Update() *TopicProficiencyUpdate {
	mutation := newTopicProficiencyMutation(c.config, OpUpdate)
	return &TopicProficiencyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TopicProficiencyClient) UpdateOne(tp *TopicProficiency) *TopicProficiencyUpdateOne {
	mutation := newTopicProficiencyMutation(c.config, OpUpdateOne, withTopicProficiency(tp))
	return &TopicProficiencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TopicProficiencyClient) UpdateOneID(id int) *TopicProficiencyUpdateOne {
	mutation := newTopicProficiencyMutation(c.config, OpUpdateOne, withTopicProficiencyID(id))
	return &TopicProficiencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TopicProficiency.
func (c *TopicProficiencyClient) Delete() *TopicProficiencyDelete {
	mutation := newTopicProficiencyMutation(c.config, OpDelete)
	return &TopicProficiencyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TopicProficiencyClient) DeleteOne(tp *TopicProficiency) *TopicProficiencyDeleteOne {
	return c.DeleteOneID(tp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TopicProficiencyClient) DeleteOneID(id int) *TopicProficiencyDeleteOne {
	builder := c.Delete().Where(topicproficiency.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TopicProficiencyDeleteOne{builder}
}

// Query returns a query builder for TopicProficiency.
func (c *TopicProficiencyClient) Query() *TopicProficiencyQuery {
	return &TopicProficiencyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTopicProficiency},
		inters: c.Interceptors(),
	}
}

// Get returns a TopicProficiency entity by its id.
func (c *TopicProficiencyClient) Get(ctx context.Context, id int) (*TopicProficiency, error) {
	return c.Query().Where(topicproficiency.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TopicProficiencyClient) GetX(ctx context.Context, id int) *TopicProficiency {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TopicProficiencyClient) Hooks() []Hook {
	return c.hooks.TopicProficiency
}

// Interceptors returns the client interceptors.
func (c *TopicProficiencyClient) Interceptors() []Interceptor {
	return c.inters.TopicProficiency
}

func (c *TopicProficiencyClient) mutate(ctx context.Context, m *TopicProficiencyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TopicProficiencyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TopicProficiencyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TopicProficiencyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TopicProficiencyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TopicProficiency mutation op: %q", m.Op())
	}
}

// ZoneClient is a client for the Zone schema.
type ZoneClient struct {
	config
}

// NewZoneClient returns a client for the Zone from the given config.
func NewZoneClient(c config) *ZoneClient {
	return &ZoneClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `zone.Hooks(f(g(h())))`.
func (c *ZoneClient) Use(hooks ...Hook) {
	c.hooks.Zone = append(c.hooks.Zone, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `zone.Intercept(f(g(h())))`.
func (c *ZoneClient) Intercept(interceptors ...Interceptor) {
	c.inters.Zone = append(c.inters.Zone, interceptors...)
}

// Create returns a builder for creating a Zone entity.
func (c *ZoneClient) Create() *ZoneCreate {
	mutation := newZoneMutation(c.config, OpCreate)
	return &ZoneCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Zone entities.
func (c *ZoneClient) CreateBulk(builders ...*ZoneCreate) *ZoneCreateBulk {
	return &ZoneCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ZoneClient) MapCreateBulk(slice any, setFunc func(*ZoneCreate, int)) *ZoneCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ZoneCreateBulk{err: fmt.Errorf("calling to ZoneClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ZoneCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ZoneCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Zone.
func (c *ZoneClient) Update() *ZoneUpdate {
	mutation := newZoneMutation(c.config, OpUpdate)
	return &ZoneUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ZoneClient) UpdateOne(z *Zone) *ZoneUpdateOne {
	mutation := newZoneMutation(c.config, OpUpdateOne, withZone(z))
	return &ZoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ZoneClient) UpdateOneID(id int) *ZoneUpdateOne {
	mutation := newZoneMutation(c.config, OpUpdateOne, withZoneID(id))
	return &ZoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Zone.
func (c *ZoneClient) Delete() *ZoneDelete {
	mutation := newZoneMutation(c.config, OpDelete)
	return &ZoneDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ZoneClient) DeleteOne(z *Zone) *ZoneDeleteOne {
	return c.DeleteOneID(z.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ZoneClient) DeleteOneID(id int) *ZoneDeleteOne {
	builder := c.Delete().Where(zone.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ZoneDeleteOne{builder}
}

// Query returns a query builder for Zone.
func (c *ZoneClient) Query() *ZoneQuery {
	return &ZoneQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeZone},
		inters: c.Interceptors(),
	}
}

// Get returns a Zone entity by its id.
func (c *ZoneClient) Get(ctx context.Context, id int) (*Zone, error) {
	return c.Query().Where(zone.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ZoneClient) GetX(ctx context.Context, id int) *Zone {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ZoneClient) Hooks() []Hook {
	return c.hooks.Zone
}

// Interceptors returns the client interceptors.
func (c *ZoneClient) Interceptors() []Interceptor {
	return c.inters.Zone
}

func (c *ZoneClient) mutate(ctx context.Context, m *ZoneMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ZoneCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ZoneUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ZoneUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ZoneDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Zone mutation op: %q", m.Op())
	}
}

// ZoneProgressClient is a client for the ZoneProgress schema.
type ZoneProgressClient struct {
	config
}

// NewZoneProgressClient returns a client for the ZoneProgress from the given config.
func NewZoneProgressClient(c config) *ZoneProgressClient {
	return &ZoneProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `zoneprogress.Hooks(f(g(h())))`.
func (c *ZoneProgressClient) Use(hooks ...Hook) {
	c.hooks.ZoneProgress = append(c.hooks.ZoneProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `zoneprogress.Intercept(f(g(h())))`.
func (c *ZoneProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.ZoneProgress = append(c.inters.ZoneProgress, interceptors...)
}

// Create returns a builder for creating a ZoneProgress entity.
func (c *ZoneProgressClient) Create() *ZoneProgressCreate {
	mutation := newZoneProgressMutation(c.config, OpCreate)
	return &ZoneProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ZoneProgress entities.
func (c *ZoneProgressClient) CreateBulk(builders ...*ZoneProgressCreate) *ZoneProgressCreateBulk {
	return &ZoneProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ZoneProgressClient) MapCreateBulk(slice any, setFunc func(*ZoneProgressCreate, int)) *ZoneProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ZoneProgressCreateBulk{err: fmt.Errorf("calling to ZoneProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ZoneProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ZoneProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ZoneProgress.
func (c *ZoneProgressClient) Update() *ZoneProgressUpdate {
	mutation := newZoneProgressMutation(c.config, OpUpdate)
	return &ZoneProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ZoneProgressClient) UpdateOne(zp *ZoneProgress) *ZoneProgressUpdateOne {
	mutation := newZoneProgressMutation(c.config, OpUpdateOne, withZoneProgress(zp))
	return &ZoneProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ZoneProgressClient) UpdateOneID(id int) *ZoneProgressUpdateOne {
	mutation := newZoneProgressMutation(c.config, OpUpdateOne, withZoneProgressID(id))
	return &ZoneProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ZoneProgress.
func (c *ZoneProgressClient) Delete() *ZoneProgressDelete {
	mutation := newZoneProgressMutation(c.config, OpDelete)
	return &ZoneProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ZoneProgressClient) DeleteOne(zp *ZoneProgress) *ZoneProgressDeleteOne {
	return c.DeleteOneID(zp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ZoneProgressClient) DeleteOneID(id int) *ZoneProgressDeleteOne {
	builder := c.Delete().Where(zoneprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ZoneProgressDeleteOne{builder}
}

// Query returns a query builder for ZoneProgress.
func (c *ZoneProgressClient) Query() *ZoneProgressQuery {
	return &ZoneProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeZoneProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a ZoneProgress entity by its id.
func (c *ZoneProgressClient) Get(ctx context.Context, id int) (*ZoneProgress, error) {
	return c.Query().Where(zoneprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ZoneProgressClient) GetX(ctx context.Context, id int) *ZoneProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ZoneProgressClient) Hooks() []Hook {
	return c.hooks.ZoneProgress
}

// Interceptors returns the client interceptors.
func (c *ZoneProgressClient) Interceptors() []Interceptor {
	return c.inters.ZoneProgress
}

func (c *ZoneProgressClient) mutate(ctx context.Context, m *ZoneProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ZoneProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ZoneProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ZoneProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ZoneProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ZoneProgress mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Ability, AttemptEvent, Item, LearningRate, MasteryRecord, Subtopic, Topic,
		TopicProficiency, Zone, ZoneProgress []ent.Hook
	}
	inters struct {
		Ability, AttemptEvent, Item, LearningRate, MasteryRecord, Subtopic, Topic,
		TopicProficiency, Zone, ZoneProgress []ent.Interceptor
	}
)

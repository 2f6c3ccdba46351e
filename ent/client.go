// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/strandkit/strand/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/strandkit/strand/ent/deadletter"
	"github.com/strandkit/strand/ent/event"
	"github.com/strandkit/strand/ent/intent"
	"github.com/strandkit/strand/ent/pmstate"
	"github.com/strandkit/strand/ent/scope"
	"github.com/strandkit/strand/ent/streamstate"
	"github.com/strandkit/strand/ent/workitem"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DeadLetter is the client for interacting with the DeadLetter builders.
	DeadLetter *DeadLetterClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Intent is the client for interacting with the Intent builders.
	Intent *IntentClient
	// PMState is the client for interacting with the PMState builders.
	PMState *PMStateClient
	// Scope is the client for interacting with the Scope builders.
	Scope *ScopeClient
	// StreamState is the client for interacting with the StreamState builders.
	StreamState *StreamStateClient
	// WorkItem is the client for interacting with the WorkItem builders.
	WorkItem *WorkItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DeadLetter = NewDeadLetterClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Intent = NewIntentClient(c.config)
	c.PMState = NewPMStateClient(c.config)
	c.Scope = NewScopeClient(c.config)
	c.StreamState = NewStreamStateClient(c.config)
	c.WorkItem = NewWorkItemClient(c.config)
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
		ctx:         ctx,
		config:      cfg,
		DeadLetter:  NewDeadLetterClient(cfg),
		Event:       NewEventClient(cfg),
		Intent:      NewIntentClient(cfg),
		PMState:     NewPMStateClient(cfg),
		Scope:       NewScopeClient(cfg),
		StreamState: NewStreamStateClient(cfg),
		WorkItem:    NewWorkItemClient(cfg),
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
		ctx:         ctx,
		config:      cfg,
		DeadLetter:  NewDeadLetterClient(cfg),
		Event:       NewEventClient(cfg),
		Intent:      NewIntentClient(cfg),
		PMState:     NewPMStateClient(cfg),
		Scope:       NewScopeClient(cfg),
		StreamState: NewStreamStateClient(cfg),
		WorkItem:    NewWorkItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DeadLetter.
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
		c.DeadLetter, c.Event, c.Intent, c.PMState, c.Scope, c.StreamState, c.WorkItem,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.DeadLetter, c.Event, c.Intent, c.PMState, c.Scope, c.StreamState, c.WorkItem,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DeadLetterMutation:
		return c.DeadLetter.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *IntentMutation:
		return c.Intent.mutate(ctx, m)
	case *PMStateMutation:
		return c.PMState.mutate(ctx, m)
	case *ScopeMutation:
		return c.Scope.mutate(ctx, m)
	case *StreamStateMutation:
		return c.StreamState.mutate(ctx, m)
	case *WorkItemMutation:
		return c.WorkItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DeadLetterClient is a client for the DeadLetter schema.
type DeadLetterClient struct {
	config
}

// NewDeadLetterClient returns a client for the DeadLetter from the given config.
func NewDeadLetterClient(c config) *DeadLetterClient {
	return &DeadLetterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deadletter.Hooks(f(g(h())))`.
func (c *DeadLetterClient) Use(hooks ...Hook) {
	c.hooks.DeadLetter = append(c.hooks.DeadLetter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deadletter.Intercept(f(g(h())))`.
func (c *DeadLetterClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeadLetter = append(c.inters.DeadLetter, interceptors...)
}

// Create returns a builder for creating a DeadLetter entity.
func (c *DeadLetterClient) Create() *DeadLetterCreate {
	mutation := newDeadLetterMutation(c.config, OpCreate)
	return &DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeadLetter entities.
func (c *DeadLetterClient) CreateBulk(builders ...*DeadLetterCreate) *DeadLetterCreateBulk {
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeadLetterClient) MapCreateBulk(slice any, setFunc func(*DeadLetterCreate, int)) *DeadLetterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeadLetterCreateBulk{err: fmt.Errorf("calling to DeadLetterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeadLetterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeadLetter.
func (c *DeadLetterClient) Update() *DeadLetterUpdate {
	mutation := newDeadLetterMutation(c.config, OpUpdate)
	return &DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeadLetterClient) UpdateOne(_m *DeadLetter) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetter(_m))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeadLetterClient) UpdateOneID(id int) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetterID(id))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeadLetter.
func (c *DeadLetterClient) Delete() *DeadLetterDelete {
	mutation := newDeadLetterMutation(c.config, OpDelete)
	return &DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeadLetterClient) DeleteOne(_m *DeadLetter) *DeadLetterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeadLetterClient) DeleteOneID(id int) *DeadLetterDeleteOne {
	builder := c.Delete().Where(deadletter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeadLetterDeleteOne{builder}
}

// Query returns a query builder for DeadLetter.
func (c *DeadLetterClient) Query() *DeadLetterQuery {
	return &DeadLetterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeadLetter},
		inters: c.Interceptors(),
	}
}

// Get returns a DeadLetter entity by its id.
func (c *DeadLetterClient) Get(ctx context.Context, id int) (*DeadLetter, error) {
	return c.Query().Where(deadletter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeadLetterClient) GetX(ctx context.Context, id int) *DeadLetter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeadLetterClient) Hooks() []Hook {
	return c.hooks.DeadLetter
}

// Interceptors returns the client interceptors.
func (c *DeadLetterClient) Interceptors() []Interceptor {
	return c.inters.DeadLetter
}

func (c *DeadLetterClient) mutate(ctx context.Context, m *DeadLetterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeadLetter mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// IntentClient is a client for the Intent schema.
type IntentClient struct {
	config
}

// NewIntentClient returns a client for the Intent from the given config.
func NewIntentClient(c config) *IntentClient {
	return &IntentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `intent.Hooks(f(g(h())))`.
func (c *IntentClient) Use(hooks ...Hook) {
	c.hooks.Intent = append(c.hooks.Intent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `intent.Intercept(f(g(h())))`.
func (c *IntentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Intent = append(c.inters.Intent, interceptors...)
}

// Create returns a builder for creating a Intent entity.
func (c *IntentClient) Create() *IntentCreate {
	mutation := newIntentMutation(c.config, OpCreate)
	return &IntentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Intent entities.
func (c *IntentClient) CreateBulk(builders ...*IntentCreate) *IntentCreateBulk {
	return &IntentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntentClient) MapCreateBulk(slice any, setFunc func(*IntentCreate, int)) *IntentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntentCreateBulk{err: fmt.Errorf("calling to IntentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Intent.
func (c *IntentClient) Update() *IntentUpdate {
	mutation := newIntentMutation(c.config, OpUpdate)
	return &IntentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntentClient) UpdateOne(_m *Intent) *IntentUpdateOne {
	mutation := newIntentMutation(c.config, OpUpdateOne, withIntent(_m))
	return &IntentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntentClient) UpdateOneID(id int) *IntentUpdateOne {
	mutation := newIntentMutation(c.config, OpUpdateOne, withIntentID(id))
	return &IntentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Intent.
func (c *IntentClient) Delete() *IntentDelete {
	mutation := newIntentMutation(c.config, OpDelete)
	return &IntentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntentClient) DeleteOne(_m *Intent) *IntentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntentClient) DeleteOneID(id int) *IntentDeleteOne {
	builder := c.Delete().Where(intent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntentDeleteOne{builder}
}

// Query returns a query builder for Intent.
func (c *IntentClient) Query() *IntentQuery {
	return &IntentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntent},
		inters: c.Interceptors(),
	}
}

// Get returns a Intent entity by its id.
func (c *IntentClient) Get(ctx context.Context, id int) (*Intent, error) {
	return c.Query().Where(intent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntentClient) GetX(ctx context.Context, id int) *Intent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IntentClient) Hooks() []Hook {
	return c.hooks.Intent
}

// Interceptors returns the client interceptors.
func (c *IntentClient) Interceptors() []Interceptor {
	return c.inters.Intent
}

func (c *IntentClient) mutate(ctx context.Context, m *IntentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Intent mutation op: %q", m.Op())
	}
}

// PMStateClient is a client for the PMState schema.
type PMStateClient struct {
	config
}

// NewPMStateClient returns a client for the PMState from the given config.
func NewPMStateClient(c config) *PMStateClient {
	return &PMStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pmstate.Hooks(f(g(h())))`.
func (c *PMStateClient) Use(hooks ...Hook) {
	c.hooks.PMState = append(c.hooks.PMState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pmstate.Intercept(f(g(h())))`.
func (c *PMStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.PMState = append(c.inters.PMState, interceptors...)
}

// Create returns a builder for creating a PMState entity.
func (c *PMStateClient) Create() *PMStateCreate {
	mutation := newPMStateMutation(c.config, OpCreate)
	return &PMStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PMState entities.
func (c *PMStateClient) CreateBulk(builders ...*PMStateCreate) *PMStateCreateBulk {
	return &PMStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PMStateClient) MapCreateBulk(slice any, setFunc func(*PMStateCreate, int)) *PMStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PMStateCreateBulk{err: fmt.Errorf("calling to PMStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PMStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PMStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PMState.
func (c *PMStateClient) Update() *PMStateUpdate {
	mutation := newPMStateMutation(c.config, OpUpdate)
	return &PMStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PMStateClient) UpdateOne(_m *PMState) *PMStateUpdateOne {
	mutation := newPMStateMutation(c.config, OpUpdateOne, withPMState(_m))
	return &PMStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PMStateClient) UpdateOneID(id int) *PMStateUpdateOne {
	mutation := newPMStateMutation(c.config, OpUpdateOne, withPMStateID(id))
	return &PMStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PMState.
func (c *PMStateClient) Delete() *PMStateDelete {
	mutation := newPMStateMutation(c.config, OpDelete)
	return &PMStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PMStateClient) DeleteOne(_m *PMState) *PMStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PMStateClient) DeleteOneID(id int) *PMStateDeleteOne {
	builder := c.Delete().Where(pmstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PMStateDeleteOne{builder}
}

// Query returns a query builder for PMState.
func (c *PMStateClient) Query() *PMStateQuery {
	return &PMStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePMState},
		inters: c.Interceptors(),
	}
}

// Get returns a PMState entity by its id.
func (c *PMStateClient) Get(ctx context.Context, id int) (*PMState, error) {
	return c.Query().Where(pmstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PMStateClient) GetX(ctx context.Context, id int) *PMState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PMStateClient) Hooks() []Hook {
	return c.hooks.PMState
}

// Interceptors returns the client interceptors.
func (c *PMStateClient) Interceptors() []Interceptor {
	return c.inters.PMState
}

func (c *PMStateClient) mutate(ctx context.Context, m *PMStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PMStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PMStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PMStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PMStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PMState mutation op: %q", m.Op())
	}
}

// ScopeClient is a client for the Scope schema.
type ScopeClient struct {
	config
}

// NewScopeClient returns a client for the Scope from the given config.
func NewScopeClient(c config) *ScopeClient {
	return &ScopeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scope.Hooks(f(g(h())))`.
func (c *ScopeClient) Use(hooks ...Hook) {
	c.hooks.Scope = append(c.hooks.Scope, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scope.Intercept(f(g(h())))`.
func (c *ScopeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Scope = append(c.inters.Scope, interceptors...)
}

// Create returns a builder for creating a Scope entity.
func (c *ScopeClient) Create() *ScopeCreate {
	mutation := newScopeMutation(c.config, OpCreate)
	return &ScopeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Scope entities.
func (c *ScopeClient) CreateBulk(builders ...*ScopeCreate) *ScopeCreateBulk {
	return &ScopeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScopeClient) MapCreateBulk(slice any, setFunc func(*ScopeCreate, int)) *ScopeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScopeCreateBulk{err: fmt.Errorf("calling to ScopeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScopeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScopeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Scope.
func (c *ScopeClient) Update() *ScopeUpdate {
	mutation := newScopeMutation(c.config, OpUpdate)
	return &ScopeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScopeClient) UpdateOne(_m *Scope) *ScopeUpdateOne {
	mutation := newScopeMutation(c.config, OpUpdateOne, withScope(_m))
	return &ScopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScopeClient) UpdateOneID(id int) *ScopeUpdateOne {
	mutation := newScopeMutation(c.config, OpUpdateOne, withScopeID(id))
	return &ScopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Scope.
func (c *ScopeClient) Delete() *ScopeDelete {
	mutation := newScopeMutation(c.config, OpDelete)
	return &ScopeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScopeClient) DeleteOne(_m *Scope) *ScopeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScopeClient) DeleteOneID(id int) *ScopeDeleteOne {
	builder := c.Delete().Where(scope.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScopeDeleteOne{builder}
}

// Query returns a query builder for Scope.
func (c *ScopeClient) Query() *ScopeQuery {
	return &ScopeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScope},
		inters: c.Interceptors(),
	}
}

// Get returns a Scope entity by its id.
func (c *ScopeClient) Get(ctx context.Context, id int) (*Scope, error) {
	return c.Query().Where(scope.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScopeClient) GetX(ctx context.Context, id int) *Scope {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScopeClient) Hooks() []Hook {
	return c.hooks.Scope
}

// Interceptors returns the client interceptors.
func (c *ScopeClient) Interceptors() []Interceptor {
	return c.inters.Scope
}

func (c *ScopeClient) mutate(ctx context.Context, m *ScopeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScopeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScopeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScopeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScopeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Scope mutation op: %q", m.Op())
	}
}

// StreamStateClient is a client for the StreamState schema.
type StreamStateClient struct {
	config
}

// NewStreamStateClient returns a client for the StreamState from the given config.
func NewStreamStateClient(c config) *StreamStateClient {
	return &StreamStateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `streamstate.Hooks(f(g(h())))`.
func (c *StreamStateClient) Use(hooks ...Hook) {
	c.hooks.StreamState = append(c.hooks.StreamState, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `streamstate.Intercept(f(g(h())))`.
func (c *StreamStateClient) Intercept(interceptors ...Interceptor) {
	c.inters.StreamState = append(c.inters.StreamState, interceptors...)
}

// Create returns a builder for creating a StreamState entity.
func (c *StreamStateClient) Create() *StreamStateCreate {
	mutation := newStreamStateMutation(c.config, OpCreate)
	return &StreamStateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StreamState entities.
func (c *StreamStateClient) CreateBulk(builders ...*StreamStateCreate) *StreamStateCreateBulk {
	return &StreamStateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StreamStateClient) MapCreateBulk(slice any, setFunc func(*StreamStateCreate, int)) *StreamStateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StreamStateCreateBulk{err: fmt.Errorf("calling to StreamStateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StreamStateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StreamStateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StreamState.
func (c *StreamStateClient) Update() *StreamStateUpdate {
	mutation := newStreamStateMutation(c.config, OpUpdate)
	return &StreamStateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StreamStateClient) UpdateOne(_m *StreamState) *StreamStateUpdateOne {
	mutation := newStreamStateMutation(c.config, OpUpdateOne, withStreamState(_m))
	return &StreamStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StreamStateClient) UpdateOneID(id int) *StreamStateUpdateOne {
	mutation := newStreamStateMutation(c.config, OpUpdateOne, withStreamStateID(id))
	return &StreamStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StreamState.
func (c *StreamStateClient) Delete() *StreamStateDelete {
	mutation := newStreamStateMutation(c.config, OpDelete)
	return &StreamStateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StreamStateClient) DeleteOne(_m *StreamState) *StreamStateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StreamStateClient) DeleteOneID(id int) *StreamStateDeleteOne {
	builder := c.Delete().Where(streamstate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StreamStateDeleteOne{builder}
}

// Query returns a query builder for StreamState.
func (c *StreamStateClient) Query() *StreamStateQuery {
	return &StreamStateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStreamState},
		inters: c.Interceptors(),
	}
}

// Get returns a StreamState entity by its id.
func (c *StreamStateClient) Get(ctx context.Context, id int) (*StreamState, error) {
	return c.Query().Where(streamstate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StreamStateClient) GetX(ctx context.Context, id int) *StreamState {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StreamStateClient) Hooks() []Hook {
	return c.hooks.StreamState
}

// Interceptors returns the client interceptors.
func (c *StreamStateClient) Interceptors() []Interceptor {
	return c.inters.StreamState
}

func (c *StreamStateClient) mutate(ctx context.Context, m *StreamStateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StreamStateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StreamStateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StreamStateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StreamStateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StreamState mutation op: %q", m.Op())
	}
}

// WorkItemClient is a client for the WorkItem schema.
type WorkItemClient struct {
	config
}

// NewWorkItemClient returns a client for the WorkItem from the given config.
func NewWorkItemClient(c config) *WorkItemClient {
	return &WorkItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workitem.Hooks(f(g(h())))`.
func (c *WorkItemClient) Use(hooks ...Hook) {
	c.hooks.WorkItem = append(c.hooks.WorkItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workitem.Intercept(f(g(h())))`.
func (c *WorkItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkItem = append(c.inters.WorkItem, interceptors...)
}

// Create returns a builder for creating a WorkItem entity.
func (c *WorkItemClient) Create() *WorkItemCreate {
	mutation := newWorkItemMutation(c.config, OpCreate)
	return &WorkItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkItem entities.
func (c *WorkItemClient) CreateBulk(builders ...*WorkItemCreate) *WorkItemCreateBulk {
	return &WorkItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkItemClient) MapCreateBulk(slice any, setFunc func(*WorkItemCreate, int)) *WorkItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkItemCreateBulk{err: fmt.Errorf("calling to WorkItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkItem.
func (c *WorkItemClient) Update() *WorkItemUpdate {
	mutation := newWorkItemMutation(c.config, OpUpdate)
	return &WorkItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkItemClient) UpdateOne(_m *WorkItem) *WorkItemUpdateOne {
	mutation := newWorkItemMutation(c.config, OpUpdateOne, withWorkItem(_m))
	return &WorkItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkItemClient) UpdateOneID(id int) *WorkItemUpdateOne {
	mutation := newWorkItemMutation(c.config, OpUpdateOne, withWorkItemID(id))
	return &WorkItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkItem.
func (c *WorkItemClient) Delete() *WorkItemDelete {
	mutation := newWorkItemMutation(c.config, OpDelete)
	return &WorkItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkItemClient) DeleteOne(_m *WorkItem) *WorkItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkItemClient) DeleteOneID(id int) *WorkItemDeleteOne {
	builder := c.Delete().Where(workitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkItemDeleteOne{builder}
}

// Query returns a query builder for WorkItem.
func (c *WorkItemClient) Query() *WorkItemQuery {
	return &WorkItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkItem},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkItem entity by its id.
func (c *WorkItemClient) Get(ctx context.Context, id int) (*WorkItem, error) {
	return c.Query().Where(workitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkItemClient) GetX(ctx context.Context, id int) *WorkItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkItemClient) Hooks() []Hook {
	return c.hooks.WorkItem
}

// Interceptors returns the client interceptors.
func (c *WorkItemClient) Interceptors() []Interceptor {
	return c.inters.WorkItem
}

func (c *WorkItemClient) mutate(ctx context.Context, m *WorkItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DeadLetter, Event, Intent, PMState, Scope, StreamState, WorkItem []ent.Hook
	}
	inters struct {
		DeadLetter, Event, Intent, PMState, Scope, StreamState,
		WorkItem []ent.Interceptor
	}
)

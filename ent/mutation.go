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
	"github.com/strandkit/strand/ent/deadletter"
	"github.com/strandkit/strand/ent/event"
	"github.com/strandkit/strand/ent/intent"
	"github.com/strandkit/strand/ent/pmstate"
	"github.com/strandkit/strand/ent/predicate"
	"github.com/strandkit/strand/ent/scope"
	"github.com/strandkit/strand/ent/streamstate"
	"github.com/strandkit/strand/ent/workitem"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDeadLetter  = "DeadLetter"
	TypeEvent       = "Event"
	TypeIntent      = "Intent"
	TypePMState     = "PMState"
	TypeScope       = "Scope"
	TypeStreamState = "StreamState"
	TypeWorkItem    = "WorkItem"
)

// DeadLetterMutation represents an operation that mutates the DeadLetter nodes in the graph.
type DeadLetterMutation struct {
	config
	op             Op
	typ            string
	id             *int
	subscription   *string
	event          *map[string]interface{}
	error_message  *string
	attempts       *int
	addattempts    *int
	failed_command *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*DeadLetter, error)
	predicates     []predicate.DeadLetter
}

var _ ent.Mutation = (*DeadLetterMutation)(nil)

// deadletterOption allows management of the mutation configuration using functional options.
type deadletterOption func(*DeadLetterMutation)

// newDeadLetterMutation creates new mutation for the DeadLetter entity.
func newDeadLetterMutation(c config, op Op, opts ...deadletterOption) *DeadLetterMutation {
	m := &DeadLetterMutation{
		config:        c,
		op:            op,
		typ:           TypeDeadLetter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeadLetterID sets the ID field of the mutation.
func withDeadLetterID(id int) deadletterOption {
	return func(m *DeadLetterMutation) {
		var (
			err   error
			once  sync.Once
			value *DeadLetter
		)
		m.oldValue = func(ctx context.Context) (*DeadLetter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeadLetter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeadLetter sets the old DeadLetter of the mutation.
func withDeadLetter(node *DeadLetter) deadletterOption {
	return func(m *DeadLetterMutation) {
		m.oldValue = func(context.Context) (*DeadLetter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeadLetterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeadLetterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeadLetterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeadLetterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeadLetter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubscription sets the "subscription" field.
func (m *DeadLetterMutation) SetSubscription(s string) {
	m.subscription = &s
}

// Subscription returns the value of the "subscription" field in the mutation.
func (m *DeadLetterMutation) Subscription() (r string, exists bool) {
	v := m.subscription
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscription returns the old "subscription" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldSubscription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscription: %w", err)
	}
	return oldValue.Subscription, nil
}

// ResetSubscription resets all changes to the "subscription" field.
func (m *DeadLetterMutation) ResetSubscription() {
	m.subscription = nil
}

// SetEvent sets the "event" field.
func (m *DeadLetterMutation) SetEvent(value map[string]interface{}) {
	m.event = &value
}

// Event returns the value of the "event" field in the mutation.
func (m *DeadLetterMutation) Event() (r map[string]interface{}, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEvent returns the old "event" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldEvent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvent: %w", err)
	}
	return oldValue.Event, nil
}

// ResetEvent resets all changes to the "event" field.
func (m *DeadLetterMutation) ResetEvent() {
	m.event = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DeadLetterMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DeadLetterMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DeadLetterMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetAttempts sets the "attempts" field.
func (m *DeadLetterMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *DeadLetterMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *DeadLetterMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *DeadLetterMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *DeadLetterMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetFailedCommand sets the "failed_command" field.
func (m *DeadLetterMutation) SetFailedCommand(value map[string]interface{}) {
	m.failed_command = &value
}

// FailedCommand returns the value of the "failed_command" field in the mutation.
func (m *DeadLetterMutation) FailedCommand() (r map[string]interface{}, exists bool) {
	v := m.failed_command
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCommand returns the old "failed_command" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldFailedCommand(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCommand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCommand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCommand: %w", err)
	}
	return oldValue.FailedCommand, nil
}

// ClearFailedCommand clears the value of the "failed_command" field.
func (m *DeadLetterMutation) ClearFailedCommand() {
	m.failed_command = nil
	m.clearedFields[deadletter.FieldFailedCommand] = struct{}{}
}

// FailedCommandCleared returns if the "failed_command" field was cleared in this mutation.
func (m *DeadLetterMutation) FailedCommandCleared() bool {
	_, ok := m.clearedFields[deadletter.FieldFailedCommand]
	return ok
}

// ResetFailedCommand resets all changes to the "failed_command" field.
func (m *DeadLetterMutation) ResetFailedCommand() {
	m.failed_command = nil
	delete(m.clearedFields, deadletter.FieldFailedCommand)
}

// SetCreatedAt sets the "created_at" field.
func (m *DeadLetterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeadLetterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeadLetter entity.
// If the DeadLetter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeadLetterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeadLetterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DeadLetterMutation builder.
func (m *DeadLetterMutation) Where(ps ...predicate.DeadLetter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeadLetterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeadLetterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeadLetter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeadLetterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeadLetterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeadLetter).
func (m *DeadLetterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeadLetterMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.subscription != nil {
		fields = append(fields, deadletter.FieldSubscription)
	}
	if m.event != nil {
		fields = append(fields, deadletter.FieldEvent)
	}
	if m.error_message != nil {
		fields = append(fields, deadletter.FieldErrorMessage)
	}
	if m.attempts != nil {
		fields = append(fields, deadletter.FieldAttempts)
	}
	if m.failed_command != nil {
		fields = append(fields, deadletter.FieldFailedCommand)
	}
	if m.created_at != nil {
		fields = append(fields, deadletter.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeadLetterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldSubscription:
		return m.Subscription()
	case deadletter.FieldEvent:
		return m.Event()
	case deadletter.FieldErrorMessage:
		return m.ErrorMessage()
	case deadletter.FieldAttempts:
		return m.Attempts()
	case deadletter.FieldFailedCommand:
		return m.FailedCommand()
	case deadletter.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeadLetterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deadletter.FieldSubscription:
		return m.OldSubscription(ctx)
	case deadletter.FieldEvent:
		return m.OldEvent(ctx)
	case deadletter.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case deadletter.FieldAttempts:
		return m.OldAttempts(ctx)
	case deadletter.FieldFailedCommand:
		return m.OldFailedCommand(ctx)
	case deadletter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeadLetter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldSubscription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscription(v)
		return nil
	case deadletter.FieldEvent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvent(v)
		return nil
	case deadletter.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case deadletter.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case deadletter.FieldFailedCommand:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCommand(v)
		return nil
	case deadletter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeadLetterMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, deadletter.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeadLetterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deadletter.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeadLetterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deadletter.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown DeadLetter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeadLetterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deadletter.FieldFailedCommand) {
		fields = append(fields, deadletter.FieldFailedCommand)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeadLetterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeadLetterMutation) ClearField(name string) error {
	switch name {
	case deadletter.FieldFailedCommand:
		m.ClearFailedCommand()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeadLetterMutation) ResetField(name string) error {
	switch name {
	case deadletter.FieldSubscription:
		m.ResetSubscription()
		return nil
	case deadletter.FieldEvent:
		m.ResetEvent()
		return nil
	case deadletter.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case deadletter.FieldAttempts:
		m.ResetAttempts()
		return nil
	case deadletter.FieldFailedCommand:
		m.ResetFailedCommand()
		return nil
	case deadletter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DeadLetter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeadLetterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeadLetterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeadLetterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeadLetterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeadLetterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeadLetterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeadLetterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeadLetter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeadLetterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeadLetter edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	event_id          *string
	event_type        *string
	stream_type       *string
	stream_id         *string
	stream_version    *int
	addstream_version *int
	occurred_at       *time.Time
	category          *event.Category
	schema_version    *int
	addschema_version *int
	payload           *map[string]interface{}
	correlation_id    *string
	causation_id      *string
	user_id           *string
	outcome           *event.Outcome
	bounded_context   *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Event, error)
	predicates        []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *EventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventMutation) ResetEventID() {
	m.event_id = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetStreamType sets the "stream_type" field.
func (m *EventMutation) SetStreamType(s string) {
	m.stream_type = &s
}

// StreamType returns the value of the "stream_type" field in the mutation.
func (m *EventMutation) StreamType() (r string, exists bool) {
	v := m.stream_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamType returns the old "stream_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStreamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamType: %w", err)
	}
	return oldValue.StreamType, nil
}

// ResetStreamType resets all changes to the "stream_type" field.
func (m *EventMutation) ResetStreamType() {
	m.stream_type = nil
}

// SetStreamID sets the "stream_id" field.
func (m *EventMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *EventMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *EventMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetStreamVersion sets the "stream_version" field.
func (m *EventMutation) SetStreamVersion(i int) {
	m.stream_version = &i
	m.addstream_version = nil
}

// StreamVersion returns the value of the "stream_version" field in the mutation.
func (m *EventMutation) StreamVersion() (r int, exists bool) {
	v := m.stream_version
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamVersion returns the old "stream_version" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldStreamVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamVersion: %w", err)
	}
	return oldValue.StreamVersion, nil
}

// AddStreamVersion adds i to the "stream_version" field.
func (m *EventMutation) AddStreamVersion(i int) {
	if m.addstream_version != nil {
		*m.addstream_version += i
	} else {
		m.addstream_version = &i
	}
}

// AddedStreamVersion returns the value that was added to the "stream_version" field in this mutation.
func (m *EventMutation) AddedStreamVersion() (r int, exists bool) {
	v := m.addstream_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetStreamVersion resets all changes to the "stream_version" field.
func (m *EventMutation) ResetStreamVersion() {
	m.stream_version = nil
	m.addstream_version = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *EventMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *EventMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *EventMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetCategory sets the "category" field.
func (m *EventMutation) SetCategory(e event.Category) {
	m.category = &e
}

// Category returns the value of the "category" field in the mutation.
func (m *EventMutation) Category() (r event.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCategory(ctx context.Context) (v event.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *EventMutation) ResetCategory() {
	m.category = nil
}

// SetSchemaVersion sets the "schema_version" field.
func (m *EventMutation) SetSchemaVersion(i int) {
	m.schema_version = &i
	m.addschema_version = nil
}

// SchemaVersion returns the value of the "schema_version" field in the mutation.
func (m *EventMutation) SchemaVersion() (r int, exists bool) {
	v := m.schema_version
	if v == nil {
		return
	}
	return *v, true
}

// OldSchemaVersion returns the old "schema_version" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSchemaVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSchemaVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSchemaVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSchemaVersion: %w", err)
	}
	return oldValue.SchemaVersion, nil
}

// AddSchemaVersion adds i to the "schema_version" field.
func (m *EventMutation) AddSchemaVersion(i int) {
	if m.addschema_version != nil {
		*m.addschema_version += i
	} else {
		m.addschema_version = &i
	}
}

// AddedSchemaVersion returns the value that was added to the "schema_version" field in this mutation.
func (m *EventMutation) AddedSchemaVersion() (r int, exists bool) {
	v := m.addschema_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetSchemaVersion resets all changes to the "schema_version" field.
func (m *EventMutation) ResetSchemaVersion() {
	m.schema_version = nil
	m.addschema_version = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCorrelationID sets the "correlation_id" field.
func (m *EventMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *EventMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCorrelationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *EventMutation) ResetCorrelationID() {
	m.correlation_id = nil
}

// SetCausationID sets the "causation_id" field.
func (m *EventMutation) SetCausationID(s string) {
	m.causation_id = &s
}

// CausationID returns the value of the "causation_id" field in the mutation.
func (m *EventMutation) CausationID() (r string, exists bool) {
	v := m.causation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCausationID returns the old "causation_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCausationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCausationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCausationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCausationID: %w", err)
	}
	return oldValue.CausationID, nil
}

// ResetCausationID resets all changes to the "causation_id" field.
func (m *EventMutation) ResetCausationID() {
	m.causation_id = nil
}

// SetUserID sets the "user_id" field.
func (m *EventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *EventMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[event.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *EventMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[event.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EventMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, event.FieldUserID)
}

// SetOutcome sets the "outcome" field.
func (m *EventMutation) SetOutcome(e event.Outcome) {
	m.outcome = &e
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *EventMutation) Outcome() (r event.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldOutcome(ctx context.Context) (v event.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *EventMutation) ResetOutcome() {
	m.outcome = nil
}

// SetBoundedContext sets the "bounded_context" field.
func (m *EventMutation) SetBoundedContext(s string) {
	m.bounded_context = &s
}

// BoundedContext returns the value of the "bounded_context" field in the mutation.
func (m *EventMutation) BoundedContext() (r string, exists bool) {
	v := m.bounded_context
	if v == nil {
		return
	}
	return *v, true
}

// OldBoundedContext returns the old "bounded_context" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldBoundedContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoundedContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoundedContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoundedContext: %w", err)
	}
	return oldValue.BoundedContext, nil
}

// ClearBoundedContext clears the value of the "bounded_context" field.
func (m *EventMutation) ClearBoundedContext() {
	m.bounded_context = nil
	m.clearedFields[event.FieldBoundedContext] = struct{}{}
}

// BoundedContextCleared returns if the "bounded_context" field was cleared in this mutation.
func (m *EventMutation) BoundedContextCleared() bool {
	_, ok := m.clearedFields[event.FieldBoundedContext]
	return ok
}

// ResetBoundedContext resets all changes to the "bounded_context" field.
func (m *EventMutation) ResetBoundedContext() {
	m.bounded_context = nil
	delete(m.clearedFields, event.FieldBoundedContext)
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.event_id != nil {
		fields = append(fields, event.FieldEventID)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.stream_type != nil {
		fields = append(fields, event.FieldStreamType)
	}
	if m.stream_id != nil {
		fields = append(fields, event.FieldStreamID)
	}
	if m.stream_version != nil {
		fields = append(fields, event.FieldStreamVersion)
	}
	if m.occurred_at != nil {
		fields = append(fields, event.FieldOccurredAt)
	}
	if m.category != nil {
		fields = append(fields, event.FieldCategory)
	}
	if m.schema_version != nil {
		fields = append(fields, event.FieldSchemaVersion)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.correlation_id != nil {
		fields = append(fields, event.FieldCorrelationID)
	}
	if m.causation_id != nil {
		fields = append(fields, event.FieldCausationID)
	}
	if m.user_id != nil {
		fields = append(fields, event.FieldUserID)
	}
	if m.outcome != nil {
		fields = append(fields, event.FieldOutcome)
	}
	if m.bounded_context != nil {
		fields = append(fields, event.FieldBoundedContext)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldEventID:
		return m.EventID()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldStreamType:
		return m.StreamType()
	case event.FieldStreamID:
		return m.StreamID()
	case event.FieldStreamVersion:
		return m.StreamVersion()
	case event.FieldOccurredAt:
		return m.OccurredAt()
	case event.FieldCategory:
		return m.Category()
	case event.FieldSchemaVersion:
		return m.SchemaVersion()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCorrelationID:
		return m.CorrelationID()
	case event.FieldCausationID:
		return m.CausationID()
	case event.FieldUserID:
		return m.UserID()
	case event.FieldOutcome:
		return m.Outcome()
	case event.FieldBoundedContext:
		return m.BoundedContext()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldEventID:
		return m.OldEventID(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldStreamType:
		return m.OldStreamType(ctx)
	case event.FieldStreamID:
		return m.OldStreamID(ctx)
	case event.FieldStreamVersion:
		return m.OldStreamVersion(ctx)
	case event.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case event.FieldCategory:
		return m.OldCategory(ctx)
	case event.FieldSchemaVersion:
		return m.OldSchemaVersion(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case event.FieldCausationID:
		return m.OldCausationID(ctx)
	case event.FieldUserID:
		return m.OldUserID(ctx)
	case event.FieldOutcome:
		return m.OldOutcome(ctx)
	case event.FieldBoundedContext:
		return m.OldBoundedContext(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldStreamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamType(v)
		return nil
	case event.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case event.FieldStreamVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamVersion(v)
		return nil
	case event.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case event.FieldCategory:
		v, ok := value.(event.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case event.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSchemaVersion(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case event.FieldCausationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCausationID(v)
		return nil
	case event.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case event.FieldOutcome:
		v, ok := value.(event.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case event.FieldBoundedContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoundedContext(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	var fields []string
	if m.addstream_version != nil {
		fields = append(fields, event.FieldStreamVersion)
	}
	if m.addschema_version != nil {
		fields = append(fields, event.FieldSchemaVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case event.FieldStreamVersion:
		return m.AddedStreamVersion()
	case event.FieldSchemaVersion:
		return m.AddedSchemaVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case event.FieldStreamVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStreamVersion(v)
		return nil
	case event.FieldSchemaVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSchemaVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldUserID) {
		fields = append(fields, event.FieldUserID)
	}
	if m.FieldCleared(event.FieldBoundedContext) {
		fields = append(fields, event.FieldBoundedContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldUserID:
		m.ClearUserID()
		return nil
	case event.FieldBoundedContext:
		m.ClearBoundedContext()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldEventID:
		m.ResetEventID()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldStreamType:
		m.ResetStreamType()
		return nil
	case event.FieldStreamID:
		m.ResetStreamID()
		return nil
	case event.FieldStreamVersion:
		m.ResetStreamVersion()
		return nil
	case event.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case event.FieldCategory:
		m.ResetCategory()
		return nil
	case event.FieldSchemaVersion:
		m.ResetSchemaVersion()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case event.FieldCausationID:
		m.ResetCausationID()
		return nil
	case event.FieldUserID:
		m.ResetUserID()
		return nil
	case event.FieldOutcome:
		m.ResetOutcome()
		return nil
	case event.FieldBoundedContext:
		m.ResetBoundedContext()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// IntentMutation represents an operation that mutates the Intent nodes in the graph.
type IntentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	intent_key          *string
	operation_type      *string
	stream_type         *string
	stream_id           *string
	status              *intent.Status
	timeout_ms          *int
	addtimeout_ms       *int
	expires_at          *time.Time
	completion_event_id *string
	error_message       *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Intent, error)
	predicates          []predicate.Intent
}

var _ ent.Mutation = (*IntentMutation)(nil)

// intentOption allows management of the mutation configuration using functional options.
type intentOption func(*IntentMutation)

// newIntentMutation creates new mutation for the Intent entity.
func newIntentMutation(c config, op Op, opts ...intentOption) *IntentMutation {
	m := &IntentMutation{
		config:        c,
		op:            op,
		typ:           TypeIntent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntentID sets the ID field of the mutation.
func withIntentID(id int) intentOption {
	return func(m *IntentMutation) {
		var (
			err   error
			once  sync.Once
			value *Intent
		)
		m.oldValue = func(ctx context.Context) (*Intent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Intent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntent sets the old Intent of the mutation.
func withIntent(node *Intent) intentOption {
	return func(m *IntentMutation) {
		m.oldValue = func(context.Context) (*Intent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Intent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntentKey sets the "intent_key" field.
func (m *IntentMutation) SetIntentKey(s string) {
	m.intent_key = &s
}

// IntentKey returns the value of the "intent_key" field in the mutation.
func (m *IntentMutation) IntentKey() (r string, exists bool) {
	v := m.intent_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentKey returns the old "intent_key" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldIntentKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentKey: %w", err)
	}
	return oldValue.IntentKey, nil
}

// ResetIntentKey resets all changes to the "intent_key" field.
func (m *IntentMutation) ResetIntentKey() {
	m.intent_key = nil
}

// SetOperationType sets the "operation_type" field.
func (m *IntentMutation) SetOperationType(s string) {
	m.operation_type = &s
}

// OperationType returns the value of the "operation_type" field in the mutation.
func (m *IntentMutation) OperationType() (r string, exists bool) {
	v := m.operation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOperationType returns the old "operation_type" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldOperationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperationType: %w", err)
	}
	return oldValue.OperationType, nil
}

// ResetOperationType resets all changes to the "operation_type" field.
func (m *IntentMutation) ResetOperationType() {
	m.operation_type = nil
}

// SetStreamType sets the "stream_type" field.
func (m *IntentMutation) SetStreamType(s string) {
	m.stream_type = &s
}

// StreamType returns the value of the "stream_type" field in the mutation.
func (m *IntentMutation) StreamType() (r string, exists bool) {
	v := m.stream_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamType returns the old "stream_type" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldStreamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamType: %w", err)
	}
	return oldValue.StreamType, nil
}

// ResetStreamType resets all changes to the "stream_type" field.
func (m *IntentMutation) ResetStreamType() {
	m.stream_type = nil
}

// SetStreamID sets the "stream_id" field.
func (m *IntentMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *IntentMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *IntentMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetStatus sets the "status" field.
func (m *IntentMutation) SetStatus(i intent.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IntentMutation) Status() (r intent.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldStatus(ctx context.Context) (v intent.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IntentMutation) ResetStatus() {
	m.status = nil
}

// SetTimeoutMs sets the "timeout_ms" field.
func (m *IntentMutation) SetTimeoutMs(i int) {
	m.timeout_ms = &i
	m.addtimeout_ms = nil
}

// TimeoutMs returns the value of the "timeout_ms" field in the mutation.
func (m *IntentMutation) TimeoutMs() (r int, exists bool) {
	v := m.timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMs returns the old "timeout_ms" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldTimeoutMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMs: %w", err)
	}
	return oldValue.TimeoutMs, nil
}

// AddTimeoutMs adds i to the "timeout_ms" field.
func (m *IntentMutation) AddTimeoutMs(i int) {
	if m.addtimeout_ms != nil {
		*m.addtimeout_ms += i
	} else {
		m.addtimeout_ms = &i
	}
}

// AddedTimeoutMs returns the value that was added to the "timeout_ms" field in this mutation.
func (m *IntentMutation) AddedTimeoutMs() (r int, exists bool) {
	v := m.addtimeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutMs resets all changes to the "timeout_ms" field.
func (m *IntentMutation) ResetTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *IntentMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *IntentMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *IntentMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCompletionEventID sets the "completion_event_id" field.
func (m *IntentMutation) SetCompletionEventID(s string) {
	m.completion_event_id = &s
}

// CompletionEventID returns the value of the "completion_event_id" field in the mutation.
func (m *IntentMutation) CompletionEventID() (r string, exists bool) {
	v := m.completion_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionEventID returns the old "completion_event_id" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldCompletionEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionEventID: %w", err)
	}
	return oldValue.CompletionEventID, nil
}

// ClearCompletionEventID clears the value of the "completion_event_id" field.
func (m *IntentMutation) ClearCompletionEventID() {
	m.completion_event_id = nil
	m.clearedFields[intent.FieldCompletionEventID] = struct{}{}
}

// CompletionEventIDCleared returns if the "completion_event_id" field was cleared in this mutation.
func (m *IntentMutation) CompletionEventIDCleared() bool {
	_, ok := m.clearedFields[intent.FieldCompletionEventID]
	return ok
}

// ResetCompletionEventID resets all changes to the "completion_event_id" field.
func (m *IntentMutation) ResetCompletionEventID() {
	m.completion_event_id = nil
	delete(m.clearedFields, intent.FieldCompletionEventID)
}

// SetErrorMessage sets the "error_message" field.
func (m *IntentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *IntentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *IntentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[intent.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *IntentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[intent.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *IntentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, intent.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *IntentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *IntentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *IntentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Intent entity.
// If the Intent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *IntentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the IntentMutation builder.
func (m *IntentMutation) Where(ps ...predicate.Intent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Intent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Intent).
func (m *IntentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.intent_key != nil {
		fields = append(fields, intent.FieldIntentKey)
	}
	if m.operation_type != nil {
		fields = append(fields, intent.FieldOperationType)
	}
	if m.stream_type != nil {
		fields = append(fields, intent.FieldStreamType)
	}
	if m.stream_id != nil {
		fields = append(fields, intent.FieldStreamID)
	}
	if m.status != nil {
		fields = append(fields, intent.FieldStatus)
	}
	if m.timeout_ms != nil {
		fields = append(fields, intent.FieldTimeoutMs)
	}
	if m.expires_at != nil {
		fields = append(fields, intent.FieldExpiresAt)
	}
	if m.completion_event_id != nil {
		fields = append(fields, intent.FieldCompletionEventID)
	}
	if m.error_message != nil {
		fields = append(fields, intent.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, intent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, intent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case intent.FieldIntentKey:
		return m.IntentKey()
	case intent.FieldOperationType:
		return m.OperationType()
	case intent.FieldStreamType:
		return m.StreamType()
	case intent.FieldStreamID:
		return m.StreamID()
	case intent.FieldStatus:
		return m.Status()
	case intent.FieldTimeoutMs:
		return m.TimeoutMs()
	case intent.FieldExpiresAt:
		return m.ExpiresAt()
	case intent.FieldCompletionEventID:
		return m.CompletionEventID()
	case intent.FieldErrorMessage:
		return m.ErrorMessage()
	case intent.FieldCreatedAt:
		return m.CreatedAt()
	case intent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case intent.FieldIntentKey:
		return m.OldIntentKey(ctx)
	case intent.FieldOperationType:
		return m.OldOperationType(ctx)
	case intent.FieldStreamType:
		return m.OldStreamType(ctx)
	case intent.FieldStreamID:
		return m.OldStreamID(ctx)
	case intent.FieldStatus:
		return m.OldStatus(ctx)
	case intent.FieldTimeoutMs:
		return m.OldTimeoutMs(ctx)
	case intent.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case intent.FieldCompletionEventID:
		return m.OldCompletionEventID(ctx)
	case intent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case intent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case intent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Intent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case intent.FieldIntentKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentKey(v)
		return nil
	case intent.FieldOperationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperationType(v)
		return nil
	case intent.FieldStreamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamType(v)
		return nil
	case intent.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case intent.FieldStatus:
		v, ok := value.(intent.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case intent.FieldTimeoutMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMs(v)
		return nil
	case intent.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case intent.FieldCompletionEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionEventID(v)
		return nil
	case intent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case intent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case intent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Intent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntentMutation) AddedFields() []string {
	var fields []string
	if m.addtimeout_ms != nil {
		fields = append(fields, intent.FieldTimeoutMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case intent.FieldTimeoutMs:
		return m.AddedTimeoutMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case intent.FieldTimeoutMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMs(v)
		return nil
	}
	return fmt.Errorf("unknown Intent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(intent.FieldCompletionEventID) {
		fields = append(fields, intent.FieldCompletionEventID)
	}
	if m.FieldCleared(intent.FieldErrorMessage) {
		fields = append(fields, intent.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntentMutation) ClearField(name string) error {
	switch name {
	case intent.FieldCompletionEventID:
		m.ClearCompletionEventID()
		return nil
	case intent.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Intent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntentMutation) ResetField(name string) error {
	switch name {
	case intent.FieldIntentKey:
		m.ResetIntentKey()
		return nil
	case intent.FieldOperationType:
		m.ResetOperationType()
		return nil
	case intent.FieldStreamType:
		m.ResetStreamType()
		return nil
	case intent.FieldStreamID:
		m.ResetStreamID()
		return nil
	case intent.FieldStatus:
		m.ResetStatus()
		return nil
	case intent.FieldTimeoutMs:
		m.ResetTimeoutMs()
		return nil
	case intent.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case intent.FieldCompletionEventID:
		m.ResetCompletionEventID()
		return nil
	case intent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case intent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case intent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Intent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntentMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntentMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntentMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntentMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Intent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntentMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Intent edge %s", name)
}

// PMStateMutation represents an operation that mutates the PMState nodes in the graph.
type PMStateMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	pm_name                 *string
	instance_id             *string
	status                  *pmstate.Status
	last_global_position    *int
	addlast_global_position *int
	commands_emitted        *int
	addcommands_emitted     *int
	commands_failed         *int
	addcommands_failed      *int
	state_version           *int
	addstate_version        *int
	custom_state            *map[string]interface{}
	trigger_event_id        *string
	correlation_id          *string
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*PMState, error)
	predicates              []predicate.PMState
}

var _ ent.Mutation = (*PMStateMutation)(nil)

// pmstateOption allows management of the mutation configuration using functional options.
type pmstateOption func(*PMStateMutation)

// newPMStateMutation creates new mutation for the PMState entity.
func newPMStateMutation(c config, op Op, opts ...pmstateOption) *PMStateMutation {
	m := &PMStateMutation{
		config:        c,
		op:            op,
		typ:           TypePMState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPMStateID sets the ID field of the mutation.
func withPMStateID(id int) pmstateOption {
	return func(m *PMStateMutation) {
		var (
			err   error
			once  sync.Once
			value *PMState
		)
		m.oldValue = func(ctx context.Context) (*PMState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PMState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPMState sets the old PMState of the mutation.
func withPMState(node *PMState) pmstateOption {
	return func(m *PMStateMutation) {
		m.oldValue = func(context.Context) (*PMState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PMStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PMStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PMStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PMStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PMState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPmName sets the "pm_name" field.
func (m *PMStateMutation) SetPmName(s string) {
	m.pm_name = &s
}

// PmName returns the value of the "pm_name" field in the mutation.
func (m *PMStateMutation) PmName() (r string, exists bool) {
	v := m.pm_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPmName returns the old "pm_name" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldPmName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPmName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPmName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPmName: %w", err)
	}
	return oldValue.PmName, nil
}

// ResetPmName resets all changes to the "pm_name" field.
func (m *PMStateMutation) ResetPmName() {
	m.pm_name = nil
}

// SetInstanceID sets the "instance_id" field.
func (m *PMStateMutation) SetInstanceID(s string) {
	m.instance_id = &s
}

// InstanceID returns the value of the "instance_id" field in the mutation.
func (m *PMStateMutation) InstanceID() (r string, exists bool) {
	v := m.instance_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceID returns the old "instance_id" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldInstanceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceID: %w", err)
	}
	return oldValue.InstanceID, nil
}

// ResetInstanceID resets all changes to the "instance_id" field.
func (m *PMStateMutation) ResetInstanceID() {
	m.instance_id = nil
}

// SetStatus sets the "status" field.
func (m *PMStateMutation) SetStatus(pm pmstate.Status) {
	m.status = &pm
}

// Status returns the value of the "status" field in the mutation.
func (m *PMStateMutation) Status() (r pmstate.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldStatus(ctx context.Context) (v pmstate.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PMStateMutation) ResetStatus() {
	m.status = nil
}

// SetLastGlobalPosition sets the "last_global_position" field.
func (m *PMStateMutation) SetLastGlobalPosition(i int) {
	m.last_global_position = &i
	m.addlast_global_position = nil
}

// LastGlobalPosition returns the value of the "last_global_position" field in the mutation.
func (m *PMStateMutation) LastGlobalPosition() (r int, exists bool) {
	v := m.last_global_position
	if v == nil {
		return
	}
	return *v, true
}

// OldLastGlobalPosition returns the old "last_global_position" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldLastGlobalPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastGlobalPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastGlobalPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastGlobalPosition: %w", err)
	}
	return oldValue.LastGlobalPosition, nil
}

// AddLastGlobalPosition adds i to the "last_global_position" field.
func (m *PMStateMutation) AddLastGlobalPosition(i int) {
	if m.addlast_global_position != nil {
		*m.addlast_global_position += i
	} else {
		m.addlast_global_position = &i
	}
}

// AddedLastGlobalPosition returns the value that was added to the "last_global_position" field in this mutation.
func (m *PMStateMutation) AddedLastGlobalPosition() (r int, exists bool) {
	v := m.addlast_global_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastGlobalPosition resets all changes to the "last_global_position" field.
func (m *PMStateMutation) ResetLastGlobalPosition() {
	m.last_global_position = nil
	m.addlast_global_position = nil
}

// SetCommandsEmitted sets the "commands_emitted" field.
func (m *PMStateMutation) SetCommandsEmitted(i int) {
	m.commands_emitted = &i
	m.addcommands_emitted = nil
}

// CommandsEmitted returns the value of the "commands_emitted" field in the mutation.
func (m *PMStateMutation) CommandsEmitted() (r int, exists bool) {
	v := m.commands_emitted
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandsEmitted returns the old "commands_emitted" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldCommandsEmitted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandsEmitted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandsEmitted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandsEmitted: %w", err)
	}
	return oldValue.CommandsEmitted, nil
}

// AddCommandsEmitted adds i to the "commands_emitted" field.
func (m *PMStateMutation) AddCommandsEmitted(i int) {
	if m.addcommands_emitted != nil {
		*m.addcommands_emitted += i
	} else {
		m.addcommands_emitted = &i
	}
}

// AddedCommandsEmitted returns the value that was added to the "commands_emitted" field in this mutation.
func (m *PMStateMutation) AddedCommandsEmitted() (r int, exists bool) {
	v := m.addcommands_emitted
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommandsEmitted resets all changes to the "commands_emitted" field.
func (m *PMStateMutation) ResetCommandsEmitted() {
	m.commands_emitted = nil
	m.addcommands_emitted = nil
}

// SetCommandsFailed sets the "commands_failed" field.
func (m *PMStateMutation) SetCommandsFailed(i int) {
	m.commands_failed = &i
	m.addcommands_failed = nil
}

// CommandsFailed returns the value of the "commands_failed" field in the mutation.
func (m *PMStateMutation) CommandsFailed() (r int, exists bool) {
	v := m.commands_failed
	if v == nil {
		return
	}
	return *v, true
}

// OldCommandsFailed returns the old "commands_failed" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldCommandsFailed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCommandsFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCommandsFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCommandsFailed: %w", err)
	}
	return oldValue.CommandsFailed, nil
}

// AddCommandsFailed adds i to the "commands_failed" field.
func (m *PMStateMutation) AddCommandsFailed(i int) {
	if m.addcommands_failed != nil {
		*m.addcommands_failed += i
	} else {
		m.addcommands_failed = &i
	}
}

// AddedCommandsFailed returns the value that was added to the "commands_failed" field in this mutation.
func (m *PMStateMutation) AddedCommandsFailed() (r int, exists bool) {
	v := m.addcommands_failed
	if v == nil {
		return
	}
	return *v, true
}

// ResetCommandsFailed resets all changes to the "commands_failed" field.
func (m *PMStateMutation) ResetCommandsFailed() {
	m.commands_failed = nil
	m.addcommands_failed = nil
}

// SetStateVersion sets the "state_version" field.
func (m *PMStateMutation) SetStateVersion(i int) {
	m.state_version = &i
	m.addstate_version = nil
}

// StateVersion returns the value of the "state_version" field in the mutation.
func (m *PMStateMutation) StateVersion() (r int, exists bool) {
	v := m.state_version
	if v == nil {
		return
	}
	return *v, true
}

// OldStateVersion returns the old "state_version" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldStateVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateVersion: %w", err)
	}
	return oldValue.StateVersion, nil
}

// AddStateVersion adds i to the "state_version" field.
func (m *PMStateMutation) AddStateVersion(i int) {
	if m.addstate_version != nil {
		*m.addstate_version += i
	} else {
		m.addstate_version = &i
	}
}

// AddedStateVersion returns the value that was added to the "state_version" field in this mutation.
func (m *PMStateMutation) AddedStateVersion() (r int, exists bool) {
	v := m.addstate_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetStateVersion resets all changes to the "state_version" field.
func (m *PMStateMutation) ResetStateVersion() {
	m.state_version = nil
	m.addstate_version = nil
}

// SetCustomState sets the "custom_state" field.
func (m *PMStateMutation) SetCustomState(value map[string]interface{}) {
	m.custom_state = &value
}

// CustomState returns the value of the "custom_state" field in the mutation.
func (m *PMStateMutation) CustomState() (r map[string]interface{}, exists bool) {
	v := m.custom_state
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomState returns the old "custom_state" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldCustomState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomState: %w", err)
	}
	return oldValue.CustomState, nil
}

// ClearCustomState clears the value of the "custom_state" field.
func (m *PMStateMutation) ClearCustomState() {
	m.custom_state = nil
	m.clearedFields[pmstate.FieldCustomState] = struct{}{}
}

// CustomStateCleared returns if the "custom_state" field was cleared in this mutation.
func (m *PMStateMutation) CustomStateCleared() bool {
	_, ok := m.clearedFields[pmstate.FieldCustomState]
	return ok
}

// ResetCustomState resets all changes to the "custom_state" field.
func (m *PMStateMutation) ResetCustomState() {
	m.custom_state = nil
	delete(m.clearedFields, pmstate.FieldCustomState)
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (m *PMStateMutation) SetTriggerEventID(s string) {
	m.trigger_event_id = &s
}

// TriggerEventID returns the value of the "trigger_event_id" field in the mutation.
func (m *PMStateMutation) TriggerEventID() (r string, exists bool) {
	v := m.trigger_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerEventID returns the old "trigger_event_id" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldTriggerEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerEventID: %w", err)
	}
	return oldValue.TriggerEventID, nil
}

// ClearTriggerEventID clears the value of the "trigger_event_id" field.
func (m *PMStateMutation) ClearTriggerEventID() {
	m.trigger_event_id = nil
	m.clearedFields[pmstate.FieldTriggerEventID] = struct{}{}
}

// TriggerEventIDCleared returns if the "trigger_event_id" field was cleared in this mutation.
func (m *PMStateMutation) TriggerEventIDCleared() bool {
	_, ok := m.clearedFields[pmstate.FieldTriggerEventID]
	return ok
}

// ResetTriggerEventID resets all changes to the "trigger_event_id" field.
func (m *PMStateMutation) ResetTriggerEventID() {
	m.trigger_event_id = nil
	delete(m.clearedFields, pmstate.FieldTriggerEventID)
}

// SetCorrelationID sets the "correlation_id" field.
func (m *PMStateMutation) SetCorrelationID(s string) {
	m.correlation_id = &s
}

// CorrelationID returns the value of the "correlation_id" field in the mutation.
func (m *PMStateMutation) CorrelationID() (r string, exists bool) {
	v := m.correlation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationID returns the old "correlation_id" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldCorrelationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationID: %w", err)
	}
	return oldValue.CorrelationID, nil
}

// ClearCorrelationID clears the value of the "correlation_id" field.
func (m *PMStateMutation) ClearCorrelationID() {
	m.correlation_id = nil
	m.clearedFields[pmstate.FieldCorrelationID] = struct{}{}
}

// CorrelationIDCleared returns if the "correlation_id" field was cleared in this mutation.
func (m *PMStateMutation) CorrelationIDCleared() bool {
	_, ok := m.clearedFields[pmstate.FieldCorrelationID]
	return ok
}

// ResetCorrelationID resets all changes to the "correlation_id" field.
func (m *PMStateMutation) ResetCorrelationID() {
	m.correlation_id = nil
	delete(m.clearedFields, pmstate.FieldCorrelationID)
}

// SetCreatedAt sets the "created_at" field.
func (m *PMStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PMStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PMStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PMStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PMStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PMState entity.
// If the PMState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PMStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PMStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PMStateMutation builder.
func (m *PMStateMutation) Where(ps ...predicate.PMState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PMStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PMStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PMState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PMStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PMStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PMState).
func (m *PMStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PMStateMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.pm_name != nil {
		fields = append(fields, pmstate.FieldPmName)
	}
	if m.instance_id != nil {
		fields = append(fields, pmstate.FieldInstanceID)
	}
	if m.status != nil {
		fields = append(fields, pmstate.FieldStatus)
	}
	if m.last_global_position != nil {
		fields = append(fields, pmstate.FieldLastGlobalPosition)
	}
	if m.commands_emitted != nil {
		fields = append(fields, pmstate.FieldCommandsEmitted)
	}
	if m.commands_failed != nil {
		fields = append(fields, pmstate.FieldCommandsFailed)
	}
	if m.state_version != nil {
		fields = append(fields, pmstate.FieldStateVersion)
	}
	if m.custom_state != nil {
		fields = append(fields, pmstate.FieldCustomState)
	}
	if m.trigger_event_id != nil {
		fields = append(fields, pmstate.FieldTriggerEventID)
	}
	if m.correlation_id != nil {
		fields = append(fields, pmstate.FieldCorrelationID)
	}
	if m.created_at != nil {
		fields = append(fields, pmstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pmstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PMStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pmstate.FieldPmName:
		return m.PmName()
	case pmstate.FieldInstanceID:
		return m.InstanceID()
	case pmstate.FieldStatus:
		return m.Status()
	case pmstate.FieldLastGlobalPosition:
		return m.LastGlobalPosition()
	case pmstate.FieldCommandsEmitted:
		return m.CommandsEmitted()
	case pmstate.FieldCommandsFailed:
		return m.CommandsFailed()
	case pmstate.FieldStateVersion:
		return m.StateVersion()
	case pmstate.FieldCustomState:
		return m.CustomState()
	case pmstate.FieldTriggerEventID:
		return m.TriggerEventID()
	case pmstate.FieldCorrelationID:
		return m.CorrelationID()
	case pmstate.FieldCreatedAt:
		return m.CreatedAt()
	case pmstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PMStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pmstate.FieldPmName:
		return m.OldPmName(ctx)
	case pmstate.FieldInstanceID:
		return m.OldInstanceID(ctx)
	case pmstate.FieldStatus:
		return m.OldStatus(ctx)
	case pmstate.FieldLastGlobalPosition:
		return m.OldLastGlobalPosition(ctx)
	case pmstate.FieldCommandsEmitted:
		return m.OldCommandsEmitted(ctx)
	case pmstate.FieldCommandsFailed:
		return m.OldCommandsFailed(ctx)
	case pmstate.FieldStateVersion:
		return m.OldStateVersion(ctx)
	case pmstate.FieldCustomState:
		return m.OldCustomState(ctx)
	case pmstate.FieldTriggerEventID:
		return m.OldTriggerEventID(ctx)
	case pmstate.FieldCorrelationID:
		return m.OldCorrelationID(ctx)
	case pmstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pmstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PMState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PMStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pmstate.FieldPmName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPmName(v)
		return nil
	case pmstate.FieldInstanceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceID(v)
		return nil
	case pmstate.FieldStatus:
		v, ok := value.(pmstate.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pmstate.FieldLastGlobalPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastGlobalPosition(v)
		return nil
	case pmstate.FieldCommandsEmitted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandsEmitted(v)
		return nil
	case pmstate.FieldCommandsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCommandsFailed(v)
		return nil
	case pmstate.FieldStateVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateVersion(v)
		return nil
	case pmstate.FieldCustomState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomState(v)
		return nil
	case pmstate.FieldTriggerEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerEventID(v)
		return nil
	case pmstate.FieldCorrelationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationID(v)
		return nil
	case pmstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pmstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PMState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PMStateMutation) AddedFields() []string {
	var fields []string
	if m.addlast_global_position != nil {
		fields = append(fields, pmstate.FieldLastGlobalPosition)
	}
	if m.addcommands_emitted != nil {
		fields = append(fields, pmstate.FieldCommandsEmitted)
	}
	if m.addcommands_failed != nil {
		fields = append(fields, pmstate.FieldCommandsFailed)
	}
	if m.addstate_version != nil {
		fields = append(fields, pmstate.FieldStateVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PMStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pmstate.FieldLastGlobalPosition:
		return m.AddedLastGlobalPosition()
	case pmstate.FieldCommandsEmitted:
		return m.AddedCommandsEmitted()
	case pmstate.FieldCommandsFailed:
		return m.AddedCommandsFailed()
	case pmstate.FieldStateVersion:
		return m.AddedStateVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PMStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pmstate.FieldLastGlobalPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastGlobalPosition(v)
		return nil
	case pmstate.FieldCommandsEmitted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommandsEmitted(v)
		return nil
	case pmstate.FieldCommandsFailed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCommandsFailed(v)
		return nil
	case pmstate.FieldStateVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStateVersion(v)
		return nil
	}
	return fmt.Errorf("unknown PMState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PMStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pmstate.FieldCustomState) {
		fields = append(fields, pmstate.FieldCustomState)
	}
	if m.FieldCleared(pmstate.FieldTriggerEventID) {
		fields = append(fields, pmstate.FieldTriggerEventID)
	}
	if m.FieldCleared(pmstate.FieldCorrelationID) {
		fields = append(fields, pmstate.FieldCorrelationID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PMStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PMStateMutation) ClearField(name string) error {
	switch name {
	case pmstate.FieldCustomState:
		m.ClearCustomState()
		return nil
	case pmstate.FieldTriggerEventID:
		m.ClearTriggerEventID()
		return nil
	case pmstate.FieldCorrelationID:
		m.ClearCorrelationID()
		return nil
	}
	return fmt.Errorf("unknown PMState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PMStateMutation) ResetField(name string) error {
	switch name {
	case pmstate.FieldPmName:
		m.ResetPmName()
		return nil
	case pmstate.FieldInstanceID:
		m.ResetInstanceID()
		return nil
	case pmstate.FieldStatus:
		m.ResetStatus()
		return nil
	case pmstate.FieldLastGlobalPosition:
		m.ResetLastGlobalPosition()
		return nil
	case pmstate.FieldCommandsEmitted:
		m.ResetCommandsEmitted()
		return nil
	case pmstate.FieldCommandsFailed:
		m.ResetCommandsFailed()
		return nil
	case pmstate.FieldStateVersion:
		m.ResetStateVersion()
		return nil
	case pmstate.FieldCustomState:
		m.ResetCustomState()
		return nil
	case pmstate.FieldTriggerEventID:
		m.ResetTriggerEventID()
		return nil
	case pmstate.FieldCorrelationID:
		m.ResetCorrelationID()
		return nil
	case pmstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pmstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PMState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PMStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PMStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PMStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PMStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PMStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PMStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PMStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PMState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PMStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PMState edge %s", name)
}

// ScopeMutation represents an operation that mutates the Scope nodes in the graph.
type ScopeMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	scope_key          *string
	current_version    *int
	addcurrent_version *int
	streams            *[]string
	appendstreams      []string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Scope, error)
	predicates         []predicate.Scope
}

var _ ent.Mutation = (*ScopeMutation)(nil)

// scopeOption allows management of the mutation configuration using functional options.
type scopeOption func(*ScopeMutation)

// newScopeMutation creates new mutation for the Scope entity.
func newScopeMutation(c config, op Op, opts ...scopeOption) *ScopeMutation {
	m := &ScopeMutation{
		config:        c,
		op:            op,
		typ:           TypeScope,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScopeID sets the ID field of the mutation.
func withScopeID(id int) scopeOption {
	return func(m *ScopeMutation) {
		var (
			err   error
			once  sync.Once
			value *Scope
		)
		m.oldValue = func(ctx context.Context) (*Scope, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Scope.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScope sets the old Scope of the mutation.
func withScope(node *Scope) scopeOption {
	return func(m *ScopeMutation) {
		m.oldValue = func(context.Context) (*Scope, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScopeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScopeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScopeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScopeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Scope.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScopeKey sets the "scope_key" field.
func (m *ScopeMutation) SetScopeKey(s string) {
	m.scope_key = &s
}

// ScopeKey returns the value of the "scope_key" field in the mutation.
func (m *ScopeMutation) ScopeKey() (r string, exists bool) {
	v := m.scope_key
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeKey returns the old "scope_key" field's value of the Scope entity.
// If the Scope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScopeMutation) OldScopeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeKey: %w", err)
	}
	return oldValue.ScopeKey, nil
}

// ResetScopeKey resets all changes to the "scope_key" field.
func (m *ScopeMutation) ResetScopeKey() {
	m.scope_key = nil
}

// SetCurrentVersion sets the "current_version" field.
func (m *ScopeMutation) SetCurrentVersion(i int) {
	m.current_version = &i
	m.addcurrent_version = nil
}

// CurrentVersion returns the value of the "current_version" field in the mutation.
func (m *ScopeMutation) CurrentVersion() (r int, exists bool) {
	v := m.current_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentVersion returns the old "current_version" field's value of the Scope entity.
// If the Scope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScopeMutation) OldCurrentVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentVersion: %w", err)
	}
	return oldValue.CurrentVersion, nil
}

// AddCurrentVersion adds i to the "current_version" field.
func (m *ScopeMutation) AddCurrentVersion(i int) {
	if m.addcurrent_version != nil {
		*m.addcurrent_version += i
	} else {
		m.addcurrent_version = &i
	}
}

// AddedCurrentVersion returns the value that was added to the "current_version" field in this mutation.
func (m *ScopeMutation) AddedCurrentVersion() (r int, exists bool) {
	v := m.addcurrent_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentVersion resets all changes to the "current_version" field.
func (m *ScopeMutation) ResetCurrentVersion() {
	m.current_version = nil
	m.addcurrent_version = nil
}

// SetStreams sets the "streams" field.
func (m *ScopeMutation) SetStreams(s []string) {
	m.streams = &s
	m.appendstreams = nil
}

// Streams returns the value of the "streams" field in the mutation.
func (m *ScopeMutation) Streams() (r []string, exists bool) {
	v := m.streams
	if v == nil {
		return
	}
	return *v, true
}

// OldStreams returns the old "streams" field's value of the Scope entity.
// If the Scope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScopeMutation) OldStreams(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreams: %w", err)
	}
	return oldValue.Streams, nil
}

// AppendStreams adds s to the "streams" field.
func (m *ScopeMutation) AppendStreams(s []string) {
	m.appendstreams = append(m.appendstreams, s...)
}

// AppendedStreams returns the list of values that were appended to the "streams" field in this mutation.
func (m *ScopeMutation) AppendedStreams() ([]string, bool) {
	if len(m.appendstreams) == 0 {
		return nil, false
	}
	return m.appendstreams, true
}

// ResetStreams resets all changes to the "streams" field.
func (m *ScopeMutation) ResetStreams() {
	m.streams = nil
	m.appendstreams = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScopeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScopeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Scope entity.
// If the Scope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScopeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScopeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScopeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScopeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Scope entity.
// If the Scope object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScopeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ScopeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ScopeMutation builder.
func (m *ScopeMutation) Where(ps ...predicate.Scope) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScopeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScopeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Scope, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScopeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScopeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Scope).
func (m *ScopeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScopeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.scope_key != nil {
		fields = append(fields, scope.FieldScopeKey)
	}
	if m.current_version != nil {
		fields = append(fields, scope.FieldCurrentVersion)
	}
	if m.streams != nil {
		fields = append(fields, scope.FieldStreams)
	}
	if m.created_at != nil {
		fields = append(fields, scope.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scope.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScopeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scope.FieldScopeKey:
		return m.ScopeKey()
	case scope.FieldCurrentVersion:
		return m.CurrentVersion()
	case scope.FieldStreams:
		return m.Streams()
	case scope.FieldCreatedAt:
		return m.CreatedAt()
	case scope.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScopeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scope.FieldScopeKey:
		return m.OldScopeKey(ctx)
	case scope.FieldCurrentVersion:
		return m.OldCurrentVersion(ctx)
	case scope.FieldStreams:
		return m.OldStreams(ctx)
	case scope.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scope.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Scope field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScopeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scope.FieldScopeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeKey(v)
		return nil
	case scope.FieldCurrentVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentVersion(v)
		return nil
	case scope.FieldStreams:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreams(v)
		return nil
	case scope.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scope.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Scope field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScopeMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_version != nil {
		fields = append(fields, scope.FieldCurrentVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScopeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scope.FieldCurrentVersion:
		return m.AddedCurrentVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScopeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scope.FieldCurrentVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Scope numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScopeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScopeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScopeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Scope nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScopeMutation) ResetField(name string) error {
	switch name {
	case scope.FieldScopeKey:
		m.ResetScopeKey()
		return nil
	case scope.FieldCurrentVersion:
		m.ResetCurrentVersion()
		return nil
	case scope.FieldStreams:
		m.ResetStreams()
		return nil
	case scope.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scope.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Scope field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScopeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScopeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScopeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScopeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScopeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScopeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScopeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Scope unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScopeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Scope edge %s", name)
}

// StreamStateMutation represents an operation that mutates the StreamState nodes in the graph.
type StreamStateMutation struct {
	config
	op               Op
	typ              string
	id               *int
	stream_type      *string
	stream_id        *string
	version          *int
	addversion       *int
	state            *map[string]interface{}
	state_version    *int
	addstate_version *int
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*StreamState, error)
	predicates       []predicate.StreamState
}

var _ ent.Mutation = (*StreamStateMutation)(nil)

// streamstateOption allows management of the mutation configuration using functional options.
type streamstateOption func(*StreamStateMutation)

// newStreamStateMutation creates new mutation for the StreamState entity.
func newStreamStateMutation(c config, op Op, opts ...streamstateOption) *StreamStateMutation {
	m := &StreamStateMutation{
		config:        c,
		op:            op,
		typ:           TypeStreamState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStreamStateID sets the ID field of the mutation.
func withStreamStateID(id int) streamstateOption {
	return func(m *StreamStateMutation) {
		var (
			err   error
			once  sync.Once
			value *StreamState
		)
		m.oldValue = func(ctx context.Context) (*StreamState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StreamState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStreamState sets the old StreamState of the mutation.
func withStreamState(node *StreamState) streamstateOption {
	return func(m *StreamStateMutation) {
		m.oldValue = func(context.Context) (*StreamState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StreamStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StreamStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StreamStateMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StreamStateMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StreamState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStreamType sets the "stream_type" field.
func (m *StreamStateMutation) SetStreamType(s string) {
	m.stream_type = &s
}

// StreamType returns the value of the "stream_type" field in the mutation.
func (m *StreamStateMutation) StreamType() (r string, exists bool) {
	v := m.stream_type
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamType returns the old "stream_type" field's value of the StreamState entity.
// If the StreamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamStateMutation) OldStreamType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamType: %w", err)
	}
	return oldValue.StreamType, nil
}

// ResetStreamType resets all changes to the "stream_type" field.
func (m *StreamStateMutation) ResetStreamType() {
	m.stream_type = nil
}

// SetStreamID sets the "stream_id" field.
func (m *StreamStateMutation) SetStreamID(s string) {
	m.stream_id = &s
}

// StreamID returns the value of the "stream_id" field in the mutation.
func (m *StreamStateMutation) StreamID() (r string, exists bool) {
	v := m.stream_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStreamID returns the old "stream_id" field's value of the StreamState entity.
// If the StreamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamStateMutation) OldStreamID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStreamID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStreamID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStreamID: %w", err)
	}
	return oldValue.StreamID, nil
}

// ResetStreamID resets all changes to the "stream_id" field.
func (m *StreamStateMutation) ResetStreamID() {
	m.stream_id = nil
}

// SetVersion sets the "version" field.
func (m *StreamStateMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *StreamStateMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the StreamState entity.
// If the StreamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamStateMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *StreamStateMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *StreamStateMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *StreamStateMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetState sets the "state" field.
func (m *StreamStateMutation) SetState(value map[string]interface{}) {
	m.state = &value
}

// State returns the value of the "state" field in the mutation.
func (m *StreamStateMutation) State() (r map[string]interface{}, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the StreamState entity.
// If the StreamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamStateMutation) OldState(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *StreamStateMutation) ResetState() {
	m.state = nil
}

// SetStateVersion sets the "state_version" field.
func (m *StreamStateMutation) SetStateVersion(i int) {
	m.state_version = &i
	m.addstate_version = nil
}

// StateVersion returns the value of the "state_version" field in the mutation.
func (m *StreamStateMutation) StateVersion() (r int, exists bool) {
	v := m.state_version
	if v == nil {
		return
	}
	return *v, true
}

// OldStateVersion returns the old "state_version" field's value of the StreamState entity.
// If the StreamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamStateMutation) OldStateVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateVersion: %w", err)
	}
	return oldValue.StateVersion, nil
}

// AddStateVersion adds i to the "state_version" field.
func (m *StreamStateMutation) AddStateVersion(i int) {
	if m.addstate_version != nil {
		*m.addstate_version += i
	} else {
		m.addstate_version = &i
	}
}

// AddedStateVersion returns the value that was added to the "state_version" field in this mutation.
func (m *StreamStateMutation) AddedStateVersion() (r int, exists bool) {
	v := m.addstate_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetStateVersion resets all changes to the "state_version" field.
func (m *StreamStateMutation) ResetStateVersion() {
	m.state_version = nil
	m.addstate_version = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StreamStateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StreamStateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StreamState entity.
// If the StreamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamStateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StreamStateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StreamStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StreamStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StreamState entity.
// If the StreamState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StreamStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *StreamStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StreamStateMutation builder.
func (m *StreamStateMutation) Where(ps ...predicate.StreamState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StreamStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StreamStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StreamState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StreamStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StreamStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StreamState).
func (m *StreamStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StreamStateMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.stream_type != nil {
		fields = append(fields, streamstate.FieldStreamType)
	}
	if m.stream_id != nil {
		fields = append(fields, streamstate.FieldStreamID)
	}
	if m.version != nil {
		fields = append(fields, streamstate.FieldVersion)
	}
	if m.state != nil {
		fields = append(fields, streamstate.FieldState)
	}
	if m.state_version != nil {
		fields = append(fields, streamstate.FieldStateVersion)
	}
	if m.created_at != nil {
		fields = append(fields, streamstate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, streamstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StreamStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case streamstate.FieldStreamType:
		return m.StreamType()
	case streamstate.FieldStreamID:
		return m.StreamID()
	case streamstate.FieldVersion:
		return m.Version()
	case streamstate.FieldState:
		return m.State()
	case streamstate.FieldStateVersion:
		return m.StateVersion()
	case streamstate.FieldCreatedAt:
		return m.CreatedAt()
	case streamstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StreamStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case streamstate.FieldStreamType:
		return m.OldStreamType(ctx)
	case streamstate.FieldStreamID:
		return m.OldStreamID(ctx)
	case streamstate.FieldVersion:
		return m.OldVersion(ctx)
	case streamstate.FieldState:
		return m.OldState(ctx)
	case streamstate.FieldStateVersion:
		return m.OldStateVersion(ctx)
	case streamstate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case streamstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StreamState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreamStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case streamstate.FieldStreamType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamType(v)
		return nil
	case streamstate.FieldStreamID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStreamID(v)
		return nil
	case streamstate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case streamstate.FieldState:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case streamstate.FieldStateVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateVersion(v)
		return nil
	case streamstate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case streamstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StreamState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StreamStateMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, streamstate.FieldVersion)
	}
	if m.addstate_version != nil {
		fields = append(fields, streamstate.FieldStateVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StreamStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case streamstate.FieldVersion:
		return m.AddedVersion()
	case streamstate.FieldStateVersion:
		return m.AddedStateVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StreamStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case streamstate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case streamstate.FieldStateVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStateVersion(v)
		return nil
	}
	return fmt.Errorf("unknown StreamState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StreamStateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StreamStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StreamStateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown StreamState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StreamStateMutation) ResetField(name string) error {
	switch name {
	case streamstate.FieldStreamType:
		m.ResetStreamType()
		return nil
	case streamstate.FieldStreamID:
		m.ResetStreamID()
		return nil
	case streamstate.FieldVersion:
		m.ResetVersion()
		return nil
	case streamstate.FieldState:
		m.ResetState()
		return nil
	case streamstate.FieldStateVersion:
		m.ResetStateVersion()
		return nil
	case streamstate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case streamstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StreamState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StreamStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StreamStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StreamStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StreamStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StreamStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StreamStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StreamStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StreamState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StreamStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StreamState edge %s", name)
}

// WorkItemMutation represents an operation that mutates the WorkItem nodes in the graph.
type WorkItemMutation struct {
	config
	op              Op
	typ             string
	id              *int
	ref             *string
	args            *map[string]interface{}
	delivery        *map[string]interface{}
	partition_key   *string
	priority        *int
	addpriority     *int
	status          *workitem.Status
	attempts        *int
	addattempts     *int
	max_attempts    *int
	addmax_attempts *int
	run_after       *time.Time
	on_complete     *string
	pod_id          *string
	last_heartbeat  *time.Time
	error_message   *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*WorkItem, error)
	predicates      []predicate.WorkItem
}

var _ ent.Mutation = (*WorkItemMutation)(nil)

// workitemOption allows management of the mutation configuration using functional options.
type workitemOption func(*WorkItemMutation)

// newWorkItemMutation creates new mutation for the WorkItem entity.
func newWorkItemMutation(c config, op Op, opts ...workitemOption) *WorkItemMutation {
	m := &WorkItemMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkItemID sets the ID field of the mutation.
func withWorkItemID(id int) workitemOption {
	return func(m *WorkItemMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkItem
		)
		m.oldValue = func(ctx context.Context) (*WorkItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkItem sets the old WorkItem of the mutation.
func withWorkItem(node *WorkItem) workitemOption {
	return func(m *WorkItemMutation) {
		m.oldValue = func(context.Context) (*WorkItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRef sets the "ref" field.
func (m *WorkItemMutation) SetRef(s string) {
	m.ref = &s
}

// Ref returns the value of the "ref" field in the mutation.
func (m *WorkItemMutation) Ref() (r string, exists bool) {
	v := m.ref
	if v == nil {
		return
	}
	return *v, true
}

// OldRef returns the old "ref" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRef: %w", err)
	}
	return oldValue.Ref, nil
}

// ResetRef resets all changes to the "ref" field.
func (m *WorkItemMutation) ResetRef() {
	m.ref = nil
}

// SetArgs sets the "args" field.
func (m *WorkItemMutation) SetArgs(value map[string]interface{}) {
	m.args = &value
}

// Args returns the value of the "args" field in the mutation.
func (m *WorkItemMutation) Args() (r map[string]interface{}, exists bool) {
	v := m.args
	if v == nil {
		return
	}
	return *v, true
}

// OldArgs returns the old "args" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldArgs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArgs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArgs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArgs: %w", err)
	}
	return oldValue.Args, nil
}

// ResetArgs resets all changes to the "args" field.
func (m *WorkItemMutation) ResetArgs() {
	m.args = nil
}

// SetDelivery sets the "delivery" field.
func (m *WorkItemMutation) SetDelivery(value map[string]interface{}) {
	m.delivery = &value
}

// Delivery returns the value of the "delivery" field in the mutation.
func (m *WorkItemMutation) Delivery() (r map[string]interface{}, exists bool) {
	v := m.delivery
	if v == nil {
		return
	}
	return *v, true
}

// OldDelivery returns the old "delivery" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldDelivery(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDelivery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDelivery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDelivery: %w", err)
	}
	return oldValue.Delivery, nil
}

// ClearDelivery clears the value of the "delivery" field.
func (m *WorkItemMutation) ClearDelivery() {
	m.delivery = nil
	m.clearedFields[workitem.FieldDelivery] = struct{}{}
}

// DeliveryCleared returns if the "delivery" field was cleared in this mutation.
func (m *WorkItemMutation) DeliveryCleared() bool {
	_, ok := m.clearedFields[workitem.FieldDelivery]
	return ok
}

// ResetDelivery resets all changes to the "delivery" field.
func (m *WorkItemMutation) ResetDelivery() {
	m.delivery = nil
	delete(m.clearedFields, workitem.FieldDelivery)
}

// SetPartitionKey sets the "partition_key" field.
func (m *WorkItemMutation) SetPartitionKey(s string) {
	m.partition_key = &s
}

// PartitionKey returns the value of the "partition_key" field in the mutation.
func (m *WorkItemMutation) PartitionKey() (r string, exists bool) {
	v := m.partition_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPartitionKey returns the old "partition_key" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldPartitionKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPartitionKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPartitionKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPartitionKey: %w", err)
	}
	return oldValue.PartitionKey, nil
}

// ResetPartitionKey resets all changes to the "partition_key" field.
func (m *WorkItemMutation) ResetPartitionKey() {
	m.partition_key = nil
}

// SetPriority sets the "priority" field.
func (m *WorkItemMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *WorkItemMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *WorkItemMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *WorkItemMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *WorkItemMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *WorkItemMutation) SetStatus(w workitem.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkItemMutation) Status() (r workitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldStatus(ctx context.Context) (v workitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkItemMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *WorkItemMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *WorkItemMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *WorkItemMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *WorkItemMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *WorkItemMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *WorkItemMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *WorkItemMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *WorkItemMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *WorkItemMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *WorkItemMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetRunAfter sets the "run_after" field.
func (m *WorkItemMutation) SetRunAfter(t time.Time) {
	m.run_after = &t
}

// RunAfter returns the value of the "run_after" field in the mutation.
func (m *WorkItemMutation) RunAfter() (r time.Time, exists bool) {
	v := m.run_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAfter returns the old "run_after" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldRunAfter(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAfter: %w", err)
	}
	return oldValue.RunAfter, nil
}

// ResetRunAfter resets all changes to the "run_after" field.
func (m *WorkItemMutation) ResetRunAfter() {
	m.run_after = nil
}

// SetOnComplete sets the "on_complete" field.
func (m *WorkItemMutation) SetOnComplete(s string) {
	m.on_complete = &s
}

// OnComplete returns the value of the "on_complete" field in the mutation.
func (m *WorkItemMutation) OnComplete() (r string, exists bool) {
	v := m.on_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldOnComplete returns the old "on_complete" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldOnComplete(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOnComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOnComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOnComplete: %w", err)
	}
	return oldValue.OnComplete, nil
}

// ClearOnComplete clears the value of the "on_complete" field.
func (m *WorkItemMutation) ClearOnComplete() {
	m.on_complete = nil
	m.clearedFields[workitem.FieldOnComplete] = struct{}{}
}

// OnCompleteCleared returns if the "on_complete" field was cleared in this mutation.
func (m *WorkItemMutation) OnCompleteCleared() bool {
	_, ok := m.clearedFields[workitem.FieldOnComplete]
	return ok
}

// ResetOnComplete resets all changes to the "on_complete" field.
func (m *WorkItemMutation) ResetOnComplete() {
	m.on_complete = nil
	delete(m.clearedFields, workitem.FieldOnComplete)
}

// SetPodID sets the "pod_id" field.
func (m *WorkItemMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *WorkItemMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *WorkItemMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[workitem.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *WorkItemMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[workitem.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *WorkItemMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, workitem.FieldPodID)
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (m *WorkItemMutation) SetLastHeartbeat(t time.Time) {
	m.last_heartbeat = &t
}

// LastHeartbeat returns the value of the "last_heartbeat" field in the mutation.
func (m *WorkItemMutation) LastHeartbeat() (r time.Time, exists bool) {
	v := m.last_heartbeat
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeat returns the old "last_heartbeat" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldLastHeartbeat(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeat: %w", err)
	}
	return oldValue.LastHeartbeat, nil
}

// ClearLastHeartbeat clears the value of the "last_heartbeat" field.
func (m *WorkItemMutation) ClearLastHeartbeat() {
	m.last_heartbeat = nil
	m.clearedFields[workitem.FieldLastHeartbeat] = struct{}{}
}

// LastHeartbeatCleared returns if the "last_heartbeat" field was cleared in this mutation.
func (m *WorkItemMutation) LastHeartbeatCleared() bool {
	_, ok := m.clearedFields[workitem.FieldLastHeartbeat]
	return ok
}

// ResetLastHeartbeat resets all changes to the "last_heartbeat" field.
func (m *WorkItemMutation) ResetLastHeartbeat() {
	m.last_heartbeat = nil
	delete(m.clearedFields, workitem.FieldLastHeartbeat)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkItemMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkItemMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkItemMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workitem.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkItemMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workitem.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkItemMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workitem.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkItem entity.
// If the WorkItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkItemMutation builder.
func (m *WorkItemMutation) Where(ps ...predicate.WorkItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkItem).
func (m *WorkItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkItemMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.ref != nil {
		fields = append(fields, workitem.FieldRef)
	}
	if m.args != nil {
		fields = append(fields, workitem.FieldArgs)
	}
	if m.delivery != nil {
		fields = append(fields, workitem.FieldDelivery)
	}
	if m.partition_key != nil {
		fields = append(fields, workitem.FieldPartitionKey)
	}
	if m.priority != nil {
		fields = append(fields, workitem.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, workitem.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, workitem.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, workitem.FieldMaxAttempts)
	}
	if m.run_after != nil {
		fields = append(fields, workitem.FieldRunAfter)
	}
	if m.on_complete != nil {
		fields = append(fields, workitem.FieldOnComplete)
	}
	if m.pod_id != nil {
		fields = append(fields, workitem.FieldPodID)
	}
	if m.last_heartbeat != nil {
		fields = append(fields, workitem.FieldLastHeartbeat)
	}
	if m.error_message != nil {
		fields = append(fields, workitem.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, workitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workitem.FieldRef:
		return m.Ref()
	case workitem.FieldArgs:
		return m.Args()
	case workitem.FieldDelivery:
		return m.Delivery()
	case workitem.FieldPartitionKey:
		return m.PartitionKey()
	case workitem.FieldPriority:
		return m.Priority()
	case workitem.FieldStatus:
		return m.Status()
	case workitem.FieldAttempts:
		return m.Attempts()
	case workitem.FieldMaxAttempts:
		return m.MaxAttempts()
	case workitem.FieldRunAfter:
		return m.RunAfter()
	case workitem.FieldOnComplete:
		return m.OnComplete()
	case workitem.FieldPodID:
		return m.PodID()
	case workitem.FieldLastHeartbeat:
		return m.LastHeartbeat()
	case workitem.FieldErrorMessage:
		return m.ErrorMessage()
	case workitem.FieldCreatedAt:
		return m.CreatedAt()
	case workitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workitem.FieldRef:
		return m.OldRef(ctx)
	case workitem.FieldArgs:
		return m.OldArgs(ctx)
	case workitem.FieldDelivery:
		return m.OldDelivery(ctx)
	case workitem.FieldPartitionKey:
		return m.OldPartitionKey(ctx)
	case workitem.FieldPriority:
		return m.OldPriority(ctx)
	case workitem.FieldStatus:
		return m.OldStatus(ctx)
	case workitem.FieldAttempts:
		return m.OldAttempts(ctx)
	case workitem.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case workitem.FieldRunAfter:
		return m.OldRunAfter(ctx)
	case workitem.FieldOnComplete:
		return m.OldOnComplete(ctx)
	case workitem.FieldPodID:
		return m.OldPodID(ctx)
	case workitem.FieldLastHeartbeat:
		return m.OldLastHeartbeat(ctx)
	case workitem.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workitem.FieldRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRef(v)
		return nil
	case workitem.FieldArgs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArgs(v)
		return nil
	case workitem.FieldDelivery:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDelivery(v)
		return nil
	case workitem.FieldPartitionKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPartitionKey(v)
		return nil
	case workitem.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case workitem.FieldStatus:
		v, ok := value.(workitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workitem.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case workitem.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case workitem.FieldRunAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAfter(v)
		return nil
	case workitem.FieldOnComplete:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOnComplete(v)
		return nil
	case workitem.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case workitem.FieldLastHeartbeat:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeat(v)
		return nil
	case workitem.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkItemMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, workitem.FieldPriority)
	}
	if m.addattempts != nil {
		fields = append(fields, workitem.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, workitem.FieldMaxAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workitem.FieldPriority:
		return m.AddedPriority()
	case workitem.FieldAttempts:
		return m.AddedAttempts()
	case workitem.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workitem.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case workitem.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case workitem.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown WorkItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workitem.FieldDelivery) {
		fields = append(fields, workitem.FieldDelivery)
	}
	if m.FieldCleared(workitem.FieldOnComplete) {
		fields = append(fields, workitem.FieldOnComplete)
	}
	if m.FieldCleared(workitem.FieldPodID) {
		fields = append(fields, workitem.FieldPodID)
	}
	if m.FieldCleared(workitem.FieldLastHeartbeat) {
		fields = append(fields, workitem.FieldLastHeartbeat)
	}
	if m.FieldCleared(workitem.FieldErrorMessage) {
		fields = append(fields, workitem.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkItemMutation) ClearField(name string) error {
	switch name {
	case workitem.FieldDelivery:
		m.ClearDelivery()
		return nil
	case workitem.FieldOnComplete:
		m.ClearOnComplete()
		return nil
	case workitem.FieldPodID:
		m.ClearPodID()
		return nil
	case workitem.FieldLastHeartbeat:
		m.ClearLastHeartbeat()
		return nil
	case workitem.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown WorkItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkItemMutation) ResetField(name string) error {
	switch name {
	case workitem.FieldRef:
		m.ResetRef()
		return nil
	case workitem.FieldArgs:
		m.ResetArgs()
		return nil
	case workitem.FieldDelivery:
		m.ResetDelivery()
		return nil
	case workitem.FieldPartitionKey:
		m.ResetPartitionKey()
		return nil
	case workitem.FieldPriority:
		m.ResetPriority()
		return nil
	case workitem.FieldStatus:
		m.ResetStatus()
		return nil
	case workitem.FieldAttempts:
		m.ResetAttempts()
		return nil
	case workitem.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case workitem.FieldRunAfter:
		m.ResetRunAfter()
		return nil
	case workitem.FieldOnComplete:
		m.ResetOnComplete()
		return nil
	case workitem.FieldPodID:
		m.ResetPodID()
		return nil
	case workitem.FieldLastHeartbeat:
		m.ResetLastHeartbeat()
		return nil
	case workitem.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkItem edge %s", name)
}

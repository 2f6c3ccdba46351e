// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/strandkit/strand/ent/event"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *EventCreate) SetEventID(v string) *EventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventCreate) SetEventType(v string) *EventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetStreamType sets the "stream_type" field.
func (_c *EventCreate) SetStreamType(v string) *EventCreate {
	_c.mutation.SetStreamType(v)
	return _c
}

// SetStreamID sets the "stream_id" field.
func (_c *EventCreate) SetStreamID(v string) *EventCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetStreamVersion sets the "stream_version" field.
func (_c *EventCreate) SetStreamVersion(v int) *EventCreate {
	_c.mutation.SetStreamVersion(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *EventCreate) SetOccurredAt(v time.Time) *EventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *EventCreate) SetNillableOccurredAt(v *time.Time) *EventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *EventCreate) SetCategory(v event.Category) *EventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *EventCreate) SetNillableCategory(v *event.Category) *EventCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *EventCreate) SetSchemaVersion(v int) *EventCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_c *EventCreate) SetNillableSchemaVersion(v *int) *EventCreate {
	if v != nil {
		_c.SetSchemaVersion(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *EventCreate) SetPayload(v map[string]interface{}) *EventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *EventCreate) SetCorrelationID(v string) *EventCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetCausationID sets the "causation_id" field.
func (_c *EventCreate) SetCausationID(v string) *EventCreate {
	_c.mutation.SetCausationID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EventCreate) SetUserID(v string) *EventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableUserID(v *string) *EventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *EventCreate) SetOutcome(v event.Outcome) *EventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_c *EventCreate) SetNillableOutcome(v *event.Outcome) *EventCreate {
	if v != nil {
		_c.SetOutcome(*v)
	}
	return _c
}

// SetBoundedContext sets the "bounded_context" field.
func (_c *EventCreate) SetBoundedContext(v string) *EventCreate {
	_c.mutation.SetBoundedContext(v)
	return _c
}

// SetNillableBoundedContext sets the "bounded_context" field if the given value is not nil.
func (_c *EventCreate) SetNillableBoundedContext(v *string) *EventCreate {
	if v != nil {
		_c.SetBoundedContext(*v)
	}
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := event.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := event.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		v := event.DefaultSchemaVersion
		_c.mutation.SetSchemaVersion(v)
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		v := event.DefaultOutcome
		_c.mutation.SetOutcome(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "Event.event_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "Event.event_type"`)}
	}
	if _, ok := _c.mutation.StreamType(); !ok {
		return &ValidationError{Name: "stream_type", err: errors.New(`ent: missing required field "Event.stream_type"`)}
	}
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "Event.stream_id"`)}
	}
	if _, ok := _c.mutation.StreamVersion(); !ok {
		return &ValidationError{Name: "stream_version", err: errors.New(`ent: missing required field "Event.stream_version"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "Event.occurred_at"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Event.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := event.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Event.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "Event.schema_version"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Event.payload"`)}
	}
	if _, ok := _c.mutation.CorrelationID(); !ok {
		return &ValidationError{Name: "correlation_id", err: errors.New(`ent: missing required field "Event.correlation_id"`)}
	}
	if _, ok := _c.mutation.CausationID(); !ok {
		return &ValidationError{Name: "causation_id", err: errors.New(`ent: missing required field "Event.causation_id"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "Event.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := event.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Event.outcome": %w`, err)}
		}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(event.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(event.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.StreamType(); ok {
		_spec.SetField(event.FieldStreamType, field.TypeString, value)
		_node.StreamType = value
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(event.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.StreamVersion(); ok {
		_spec.SetField(event.FieldStreamVersion, field.TypeInt, value)
		_node.StreamVersion = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(event.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(event.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(event.FieldSchemaVersion, field.TypeInt, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(event.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(event.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = value
	}
	if value, ok := _c.mutation.CausationID(); ok {
		_spec.SetField(event.FieldCausationID, field.TypeString, value)
		_node.CausationID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(event.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(event.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.BoundedContext(); ok {
		_spec.SetField(event.FieldBoundedContext, field.TypeString, value)
		_node.BoundedContext = value
	}
	return _node, _spec
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

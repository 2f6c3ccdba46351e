// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/strandkit/strand/ent/intent"
)

// IntentCreate is the builder for creating a Intent entity.
type IntentCreate struct {
	config
	mutation *IntentMutation
	hooks    []Hook
}

// SetIntentKey sets the "intent_key" field.
func (_c *IntentCreate) SetIntentKey(v string) *IntentCreate {
	_c.mutation.SetIntentKey(v)
	return _c
}

// SetOperationType sets the "operation_type" field.
func (_c *IntentCreate) SetOperationType(v string) *IntentCreate {
	_c.mutation.SetOperationType(v)
	return _c
}

// SetStreamType sets the "stream_type" field.
func (_c *IntentCreate) SetStreamType(v string) *IntentCreate {
	_c.mutation.SetStreamType(v)
	return _c
}

// SetStreamID sets the "stream_id" field.
func (_c *IntentCreate) SetStreamID(v string) *IntentCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *IntentCreate) SetStatus(v intent.Status) *IntentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IntentCreate) SetNillableStatus(v *intent.Status) *IntentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *IntentCreate) SetTimeoutMs(v int) *IntentCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *IntentCreate) SetExpiresAt(v time.Time) *IntentCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCompletionEventID sets the "completion_event_id" field.
func (_c *IntentCreate) SetCompletionEventID(v string) *IntentCreate {
	_c.mutation.SetCompletionEventID(v)
	return _c
}

// SetNillableCompletionEventID sets the "completion_event_id" field if the given value is not nil.
func (_c *IntentCreate) SetNillableCompletionEventID(v *string) *IntentCreate {
	if v != nil {
		_c.SetCompletionEventID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *IntentCreate) SetErrorMessage(v string) *IntentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *IntentCreate) SetNillableErrorMessage(v *string) *IntentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntentCreate) SetCreatedAt(v time.Time) *IntentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntentCreate) SetNillableCreatedAt(v *time.Time) *IntentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *IntentCreate) SetUpdatedAt(v time.Time) *IntentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *IntentCreate) SetNillableUpdatedAt(v *time.Time) *IntentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the IntentMutation object of the builder.
func (_c *IntentCreate) Mutation() *IntentMutation {
	return _c.mutation
}

// Save creates the Intent in the database.
func (_c *IntentCreate) Save(ctx context.Context) (*Intent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntentCreate) SaveX(ctx context.Context) *Intent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := intent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := intent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := intent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntentCreate) check() error {
	if _, ok := _c.mutation.IntentKey(); !ok {
		return &ValidationError{Name: "intent_key", err: errors.New(`ent: missing required field "Intent.intent_key"`)}
	}
	if _, ok := _c.mutation.OperationType(); !ok {
		return &ValidationError{Name: "operation_type", err: errors.New(`ent: missing required field "Intent.operation_type"`)}
	}
	if _, ok := _c.mutation.StreamType(); !ok {
		return &ValidationError{Name: "stream_type", err: errors.New(`ent: missing required field "Intent.stream_type"`)}
	}
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "Intent.stream_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Intent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := intent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Intent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		return &ValidationError{Name: "timeout_ms", err: errors.New(`ent: missing required field "Intent.timeout_ms"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "Intent.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Intent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Intent.updated_at"`)}
	}
	return nil
}

func (_c *IntentCreate) sqlSave(ctx context.Context) (*Intent, error) {
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

func (_c *IntentCreate) createSpec() (*Intent, *sqlgraph.CreateSpec) {
	var (
		_node = &Intent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(intent.Table, sqlgraph.NewFieldSpec(intent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.IntentKey(); ok {
		_spec.SetField(intent.FieldIntentKey, field.TypeString, value)
		_node.IntentKey = value
	}
	if value, ok := _c.mutation.OperationType(); ok {
		_spec.SetField(intent.FieldOperationType, field.TypeString, value)
		_node.OperationType = value
	}
	if value, ok := _c.mutation.StreamType(); ok {
		_spec.SetField(intent.FieldStreamType, field.TypeString, value)
		_node.StreamType = value
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(intent.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(intent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(intent.FieldTimeoutMs, field.TypeInt, value)
		_node.TimeoutMs = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(intent.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CompletionEventID(); ok {
		_spec.SetField(intent.FieldCompletionEventID, field.TypeString, value)
		_node.CompletionEventID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(intent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(intent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(intent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// IntentCreateBulk is the builder for creating many Intent entities in bulk.
type IntentCreateBulk struct {
	config
	err      error
	builders []*IntentCreate
}

// Save creates the Intent entities in the database.
func (_c *IntentCreateBulk) Save(ctx context.Context) ([]*Intent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Intent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntentMutation)
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
func (_c *IntentCreateBulk) SaveX(ctx context.Context) []*Intent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

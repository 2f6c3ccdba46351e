// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/strandkit/strand/ent/pmstate"
)

// PMStateCreate is the builder for creating a PMState entity.
type PMStateCreate struct {
	config
	mutation *PMStateMutation
	hooks    []Hook
}

// SetPmName sets the "pm_name" field.
func (_c *PMStateCreate) SetPmName(v string) *PMStateCreate {
	_c.mutation.SetPmName(v)
	return _c
}

// SetInstanceID sets the "instance_id" field.
func (_c *PMStateCreate) SetInstanceID(v string) *PMStateCreate {
	_c.mutation.SetInstanceID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PMStateCreate) SetStatus(v pmstate.Status) *PMStateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PMStateCreate) SetNillableStatus(v *pmstate.Status) *PMStateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastGlobalPosition sets the "last_global_position" field.
func (_c *PMStateCreate) SetLastGlobalPosition(v int) *PMStateCreate {
	_c.mutation.SetLastGlobalPosition(v)
	return _c
}

// SetNillableLastGlobalPosition sets the "last_global_position" field if the given value is not nil.
func (_c *PMStateCreate) SetNillableLastGlobalPosition(v *int) *PMStateCreate {
	if v != nil {
		_c.SetLastGlobalPosition(*v)
	}
	return _c
}

// SetCommandsEmitted sets the "commands_emitted" field.
func (_c *PMStateCreate) SetCommandsEmitted(v int) *PMStateCreate {
	_c.mutation.SetCommandsEmitted(v)
	return _c
}

// SetNillableCommandsEmitted sets the "commands_emitted" field if the given value is not nil.
func (_c *PMStateCreate) SetNillableCommandsEmitted(v *int) *PMStateCreate {
	if v != nil {
		_c.SetCommandsEmitted(*v)
	}
	return _c
}

// SetCommandsFailed sets the "commands_failed" field.
func (_c *PMStateCreate) SetCommandsFailed(v int) *PMStateCreate {
	_c.mutation.SetCommandsFailed(v)
	return _c
}

// SetNillableCommandsFailed sets the "commands_failed" field if the given value is not nil.
func (_c *PMStateCreate) SetNillableCommandsFailed(v *int) *PMStateCreate {
	if v != nil {
		_c.SetCommandsFailed(*v)
	}
	return _c
}

// SetStateVersion sets the "state_version" field.
func (_c *PMStateCreate) SetStateVersion(v int) *PMStateCreate {
	_c.mutation.SetStateVersion(v)
	return _c
}

// SetNillableStateVersion sets the "state_version" field if the given value is not nil.
func (_c *PMStateCreate) SetNillableStateVersion(v *int) *PMStateCreate {
	if v != nil {
		_c.SetStateVersion(*v)
	}
	return _c
}

// SetCustomState sets the "custom_state" field.
func (_c *PMStateCreate) SetCustomState(v map[string]interface{}) *PMStateCreate {
	_c.mutation.SetCustomState(v)
	return _c
}

// SetTriggerEventID sets the "trigger_event_id" field.
func (_c *PMStateCreate) SetTriggerEventID(v string) *PMStateCreate {
	_c.mutation.SetTriggerEventID(v)
	return _c
}

// SetNillableTriggerEventID sets the "trigger_event_id" field if the given value is not nil.
func (_c *PMStateCreate) SetNillableTriggerEventID(v *string) *PMStateCreate {
	if v != nil {
		_c.SetTriggerEventID(*v)
	}
	return _c
}

// SetCorrelationID sets the "correlation_id" field.
func (_c *PMStateCreate) SetCorrelationID(v string) *PMStateCreate {
	_c.mutation.SetCorrelationID(v)
	return _c
}

// SetNillableCorrelationID sets the "correlation_id" field if the given value is not nil.
func (_c *PMStateCreate) SetNillableCorrelationID(v *string) *PMStateCreate {
	if v != nil {
		_c.SetCorrelationID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PMStateCreate) SetCreatedAt(v time.Time) *PMStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PMStateCreate) SetNillableCreatedAt(v *time.Time) *PMStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PMStateCreate) SetUpdatedAt(v time.Time) *PMStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PMStateCreate) SetNillableUpdatedAt(v *time.Time) *PMStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the PMStateMutation object of the builder.
func (_c *PMStateCreate) Mutation() *PMStateMutation {
	return _c.mutation
}

// Save creates the PMState in the database.
func (_c *PMStateCreate) Save(ctx context.Context) (*PMState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PMStateCreate) SaveX(ctx context.Context) *PMState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PMStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PMStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PMStateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pmstate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LastGlobalPosition(); !ok {
		v := pmstate.DefaultLastGlobalPosition
		_c.mutation.SetLastGlobalPosition(v)
	}
	if _, ok := _c.mutation.CommandsEmitted(); !ok {
		v := pmstate.DefaultCommandsEmitted
		_c.mutation.SetCommandsEmitted(v)
	}
	if _, ok := _c.mutation.CommandsFailed(); !ok {
		v := pmstate.DefaultCommandsFailed
		_c.mutation.SetCommandsFailed(v)
	}
	if _, ok := _c.mutation.StateVersion(); !ok {
		v := pmstate.DefaultStateVersion
		_c.mutation.SetStateVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pmstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pmstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PMStateCreate) check() error {
	if _, ok := _c.mutation.PmName(); !ok {
		return &ValidationError{Name: "pm_name", err: errors.New(`ent: missing required field "PMState.pm_name"`)}
	}
	if _, ok := _c.mutation.InstanceID(); !ok {
		return &ValidationError{Name: "instance_id", err: errors.New(`ent: missing required field "PMState.instance_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PMState.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pmstate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PMState.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastGlobalPosition(); !ok {
		return &ValidationError{Name: "last_global_position", err: errors.New(`ent: missing required field "PMState.last_global_position"`)}
	}
	if _, ok := _c.mutation.CommandsEmitted(); !ok {
		return &ValidationError{Name: "commands_emitted", err: errors.New(`ent: missing required field "PMState.commands_emitted"`)}
	}
	if _, ok := _c.mutation.CommandsFailed(); !ok {
		return &ValidationError{Name: "commands_failed", err: errors.New(`ent: missing required field "PMState.commands_failed"`)}
	}
	if _, ok := _c.mutation.StateVersion(); !ok {
		return &ValidationError{Name: "state_version", err: errors.New(`ent: missing required field "PMState.state_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PMState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PMState.updated_at"`)}
	}
	return nil
}

func (_c *PMStateCreate) sqlSave(ctx context.Context) (*PMState, error) {
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

func (_c *PMStateCreate) createSpec() (*PMState, *sqlgraph.CreateSpec) {
	var (
		_node = &PMState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pmstate.Table, sqlgraph.NewFieldSpec(pmstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PmName(); ok {
		_spec.SetField(pmstate.FieldPmName, field.TypeString, value)
		_node.PmName = value
	}
	if value, ok := _c.mutation.InstanceID(); ok {
		_spec.SetField(pmstate.FieldInstanceID, field.TypeString, value)
		_node.InstanceID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pmstate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastGlobalPosition(); ok {
		_spec.SetField(pmstate.FieldLastGlobalPosition, field.TypeInt, value)
		_node.LastGlobalPosition = value
	}
	if value, ok := _c.mutation.CommandsEmitted(); ok {
		_spec.SetField(pmstate.FieldCommandsEmitted, field.TypeInt, value)
		_node.CommandsEmitted = value
	}
	if value, ok := _c.mutation.CommandsFailed(); ok {
		_spec.SetField(pmstate.FieldCommandsFailed, field.TypeInt, value)
		_node.CommandsFailed = value
	}
	if value, ok := _c.mutation.StateVersion(); ok {
		_spec.SetField(pmstate.FieldStateVersion, field.TypeInt, value)
		_node.StateVersion = value
	}
	if value, ok := _c.mutation.CustomState(); ok {
		_spec.SetField(pmstate.FieldCustomState, field.TypeJSON, value)
		_node.CustomState = value
	}
	if value, ok := _c.mutation.TriggerEventID(); ok {
		_spec.SetField(pmstate.FieldTriggerEventID, field.TypeString, value)
		_node.TriggerEventID = &value
	}
	if value, ok := _c.mutation.CorrelationID(); ok {
		_spec.SetField(pmstate.FieldCorrelationID, field.TypeString, value)
		_node.CorrelationID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pmstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pmstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PMStateCreateBulk is the builder for creating many PMState entities in bulk.
type PMStateCreateBulk struct {
	config
	err      error
	builders []*PMStateCreate
}

// Save creates the PMState entities in the database.
func (_c *PMStateCreateBulk) Save(ctx context.Context) ([]*PMState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PMState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PMStateMutation)
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
func (_c *PMStateCreateBulk) SaveX(ctx context.Context) []*PMState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PMStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PMStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

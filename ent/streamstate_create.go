// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/strandkit/strand/ent/streamstate"
)

// StreamStateCreate is the builder for creating a StreamState entity.
type StreamStateCreate struct {
	config
	mutation *StreamStateMutation
	hooks    []Hook
}

// SetStreamType sets the "stream_type" field.
func (_c *StreamStateCreate) SetStreamType(v string) *StreamStateCreate {
	_c.mutation.SetStreamType(v)
	return _c
}

// SetStreamID sets the "stream_id" field.
func (_c *StreamStateCreate) SetStreamID(v string) *StreamStateCreate {
	_c.mutation.SetStreamID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *StreamStateCreate) SetVersion(v int) *StreamStateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetState sets the "state" field.
func (_c *StreamStateCreate) SetState(v map[string]interface{}) *StreamStateCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetStateVersion sets the "state_version" field.
func (_c *StreamStateCreate) SetStateVersion(v int) *StreamStateCreate {
	_c.mutation.SetStateVersion(v)
	return _c
}

// SetNillableStateVersion sets the "state_version" field if the given value is not nil.
func (_c *StreamStateCreate) SetNillableStateVersion(v *int) *StreamStateCreate {
	if v != nil {
		_c.SetStateVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StreamStateCreate) SetCreatedAt(v time.Time) *StreamStateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StreamStateCreate) SetNillableCreatedAt(v *time.Time) *StreamStateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StreamStateCreate) SetUpdatedAt(v time.Time) *StreamStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StreamStateCreate) SetNillableUpdatedAt(v *time.Time) *StreamStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the StreamStateMutation object of the builder.
func (_c *StreamStateCreate) Mutation() *StreamStateMutation {
	return _c.mutation
}

// Save creates the StreamState in the database.
func (_c *StreamStateCreate) Save(ctx context.Context) (*StreamState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StreamStateCreate) SaveX(ctx context.Context) *StreamState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreamStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreamStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StreamStateCreate) defaults() {
	if _, ok := _c.mutation.StateVersion(); !ok {
		v := streamstate.DefaultStateVersion
		_c.mutation.SetStateVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := streamstate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := streamstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StreamStateCreate) check() error {
	if _, ok := _c.mutation.StreamType(); !ok {
		return &ValidationError{Name: "stream_type", err: errors.New(`ent: missing required field "StreamState.stream_type"`)}
	}
	if _, ok := _c.mutation.StreamID(); !ok {
		return &ValidationError{Name: "stream_id", err: errors.New(`ent: missing required field "StreamState.stream_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "StreamState.version"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "StreamState.state"`)}
	}
	if _, ok := _c.mutation.StateVersion(); !ok {
		return &ValidationError{Name: "state_version", err: errors.New(`ent: missing required field "StreamState.state_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StreamState.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StreamState.updated_at"`)}
	}
	return nil
}

func (_c *StreamStateCreate) sqlSave(ctx context.Context) (*StreamState, error) {
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

func (_c *StreamStateCreate) createSpec() (*StreamState, *sqlgraph.CreateSpec) {
	var (
		_node = &StreamState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(streamstate.Table, sqlgraph.NewFieldSpec(streamstate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.StreamType(); ok {
		_spec.SetField(streamstate.FieldStreamType, field.TypeString, value)
		_node.StreamType = value
	}
	if value, ok := _c.mutation.StreamID(); ok {
		_spec.SetField(streamstate.FieldStreamID, field.TypeString, value)
		_node.StreamID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(streamstate.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(streamstate.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.StateVersion(); ok {
		_spec.SetField(streamstate.FieldStateVersion, field.TypeInt, value)
		_node.StateVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(streamstate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(streamstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// StreamStateCreateBulk is the builder for creating many StreamState entities in bulk.
type StreamStateCreateBulk struct {
	config
	err      error
	builders []*StreamStateCreate
}

// Save creates the StreamState entities in the database.
func (_c *StreamStateCreateBulk) Save(ctx context.Context) ([]*StreamState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StreamState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StreamStateMutation)
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
func (_c *StreamStateCreateBulk) SaveX(ctx context.Context) []*StreamState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreamStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreamStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

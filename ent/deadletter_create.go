// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/strandkit/strand/ent/deadletter"
)

// DeadLetterCreate is the builder for creating a DeadLetter entity.
type DeadLetterCreate struct {
	config
	mutation *DeadLetterMutation
	hooks    []Hook
}

// SetSubscription sets the "subscription" field.
func (_c *DeadLetterCreate) SetSubscription(v string) *DeadLetterCreate {
	_c.mutation.SetSubscription(v)
	return _c
}

// SetEvent sets the "event" field.
func (_c *DeadLetterCreate) SetEvent(v map[string]interface{}) *DeadLetterCreate {
	_c.mutation.SetEvent(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DeadLetterCreate) SetErrorMessage(v string) *DeadLetterCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *DeadLetterCreate) SetAttempts(v int) *DeadLetterCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetFailedCommand sets the "failed_command" field.
func (_c *DeadLetterCreate) SetFailedCommand(v map[string]interface{}) *DeadLetterCreate {
	_c.mutation.SetFailedCommand(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeadLetterCreate) SetCreatedAt(v time.Time) *DeadLetterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeadLetterCreate) SetNillableCreatedAt(v *time.Time) *DeadLetterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the DeadLetterMutation object of the builder.
func (_c *DeadLetterCreate) Mutation() *DeadLetterMutation {
	return _c.mutation
}

// Save creates the DeadLetter in the database.
func (_c *DeadLetterCreate) Save(ctx context.Context) (*DeadLetter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeadLetterCreate) SaveX(ctx context.Context) *DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeadLetterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deadletter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeadLetterCreate) check() error {
	if _, ok := _c.mutation.Subscription(); !ok {
		return &ValidationError{Name: "subscription", err: errors.New(`ent: missing required field "DeadLetter.subscription"`)}
	}
	if _, ok := _c.mutation.Event(); !ok {
		return &ValidationError{Name: "event", err: errors.New(`ent: missing required field "DeadLetter.event"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "DeadLetter.error_message"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "DeadLetter.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeadLetter.created_at"`)}
	}
	return nil
}

func (_c *DeadLetterCreate) sqlSave(ctx context.Context) (*DeadLetter, error) {
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

func (_c *DeadLetterCreate) createSpec() (*DeadLetter, *sqlgraph.CreateSpec) {
	var (
		_node = &DeadLetter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deadletter.Table, sqlgraph.NewFieldSpec(deadletter.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Subscription(); ok {
		_spec.SetField(deadletter.FieldSubscription, field.TypeString, value)
		_node.Subscription = value
	}
	if value, ok := _c.mutation.Event(); ok {
		_spec.SetField(deadletter.FieldEvent, field.TypeJSON, value)
		_node.Event = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(deadletter.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(deadletter.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.FailedCommand(); ok {
		_spec.SetField(deadletter.FieldFailedCommand, field.TypeJSON, value)
		_node.FailedCommand = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deadletter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DeadLetterCreateBulk is the builder for creating many DeadLetter entities in bulk.
type DeadLetterCreateBulk struct {
	config
	err      error
	builders []*DeadLetterCreate
}

// Save creates the DeadLetter entities in the database.
func (_c *DeadLetterCreateBulk) Save(ctx context.Context) ([]*DeadLetter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeadLetter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeadLetterMutation)
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
func (_c *DeadLetterCreateBulk) SaveX(ctx context.Context) []*DeadLetter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeadLetterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeadLetterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

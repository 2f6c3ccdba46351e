// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/strandkit/strand/ent/scope"
)

// ScopeCreate is the builder for creating a Scope entity.
type ScopeCreate struct {
	config
	mutation *ScopeMutation
	hooks    []Hook
}

// SetScopeKey sets the "scope_key" field.
func (_c *ScopeCreate) SetScopeKey(v string) *ScopeCreate {
	_c.mutation.SetScopeKey(v)
	return _c
}

// SetCurrentVersion sets the "current_version" field.
func (_c *ScopeCreate) SetCurrentVersion(v int) *ScopeCreate {
	_c.mutation.SetCurrentVersion(v)
	return _c
}

// SetNillableCurrentVersion sets the "current_version" field if the given value is not nil.
func (_c *ScopeCreate) SetNillableCurrentVersion(v *int) *ScopeCreate {
	if v != nil {
		_c.SetCurrentVersion(*v)
	}
	return _c
}

// SetStreams sets the "streams" field.
func (_c *ScopeCreate) SetStreams(v []string) *ScopeCreate {
	_c.mutation.SetStreams(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScopeCreate) SetCreatedAt(v time.Time) *ScopeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScopeCreate) SetNillableCreatedAt(v *time.Time) *ScopeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScopeCreate) SetUpdatedAt(v time.Time) *ScopeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScopeCreate) SetNillableUpdatedAt(v *time.Time) *ScopeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ScopeMutation object of the builder.
func (_c *ScopeCreate) Mutation() *ScopeMutation {
	return _c.mutation
}

// Save creates the Scope in the database.
func (_c *ScopeCreate) Save(ctx context.Context) (*Scope, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScopeCreate) SaveX(ctx context.Context) *Scope {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScopeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScopeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScopeCreate) defaults() {
	if _, ok := _c.mutation.CurrentVersion(); !ok {
		v := scope.DefaultCurrentVersion
		_c.mutation.SetCurrentVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scope.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scope.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScopeCreate) check() error {
	if _, ok := _c.mutation.ScopeKey(); !ok {
		return &ValidationError{Name: "scope_key", err: errors.New(`ent: missing required field "Scope.scope_key"`)}
	}
	if _, ok := _c.mutation.CurrentVersion(); !ok {
		return &ValidationError{Name: "current_version", err: errors.New(`ent: missing required field "Scope.current_version"`)}
	}
	if _, ok := _c.mutation.Streams(); !ok {
		return &ValidationError{Name: "streams", err: errors.New(`ent: missing required field "Scope.streams"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Scope.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Scope.updated_at"`)}
	}
	return nil
}

func (_c *ScopeCreate) sqlSave(ctx context.Context) (*Scope, error) {
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

func (_c *ScopeCreate) createSpec() (*Scope, *sqlgraph.CreateSpec) {
	var (
		_node = &Scope{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scope.Table, sqlgraph.NewFieldSpec(scope.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ScopeKey(); ok {
		_spec.SetField(scope.FieldScopeKey, field.TypeString, value)
		_node.ScopeKey = value
	}
	if value, ok := _c.mutation.CurrentVersion(); ok {
		_spec.SetField(scope.FieldCurrentVersion, field.TypeInt, value)
		_node.CurrentVersion = value
	}
	if value, ok := _c.mutation.Streams(); ok {
		_spec.SetField(scope.FieldStreams, field.TypeJSON, value)
		_node.Streams = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scope.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scope.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ScopeCreateBulk is the builder for creating many Scope entities in bulk.
type ScopeCreateBulk struct {
	config
	err      error
	builders []*ScopeCreate
}

// Save creates the Scope entities in the database.
func (_c *ScopeCreateBulk) Save(ctx context.Context) ([]*Scope, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Scope, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScopeMutation)
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
func (_c *ScopeCreateBulk) SaveX(ctx context.Context) []*Scope {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScopeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScopeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
